package romaji

import "fmt"

// LongVowelStyle controls how long vowels are written.
type LongVowelStyle string

const (
	// LongVowelMacron writes long vowels with a macron (Tōkyō).
	LongVowelMacron LongVowelStyle = "macron"
	// LongVowelDoubled keeps the kana-literal doubled vowels (arigatou).
	LongVowelDoubled LongVowelStyle = "doubled"
	// LongVowelNone collapses long vowels to a single vowel (Tokyo).
	LongVowelNone LongVowelStyle = "none"
)

// ParticleWaHandling controls how the topic particle は is written when a
// token is flagged as a grammatical particle.
type ParticleWaHandling string

const (
	ParticleLiteral  ParticleWaHandling = "literal"  // は -> ha
	ParticlePhonetic ParticleWaHandling = "phonetic" // は -> wa
)

// NSyllabicStyle controls how moraic ん is written before labial consonants.
type NSyllabicStyle string

const (
	NSyllabicN             NSyllabicStyle = "n"               // always n (shinbun)
	NSyllabicMBeforeLabial NSyllabicStyle = "m-before-labial" // m before b/p/m (shimbun)
)

// Config holds the romanization style choices. It is immutable for the
// lifetime of a Romanizer.
type Config struct {
	LongVowelStyle          LongVowelStyle
	ParticleWaHandling      ParticleWaHandling
	NSyllabicStyle          NSyllabicStyle
	UseApostropheForMoraicN bool
}

// DefaultConfig returns the defaults matching common modified-Hepburn usage.
func DefaultConfig() Config {
	return Config{
		LongVowelStyle:          LongVowelDoubled,
		ParticleWaHandling:      ParticlePhonetic,
		NSyllabicStyle:          NSyllabicMBeforeLabial,
		UseApostropheForMoraicN: true,
	}
}

// Validate checks that every option carries a recognized value.
func (c Config) Validate() error {
	switch c.LongVowelStyle {
	case LongVowelMacron, LongVowelDoubled, LongVowelNone:
	default:
		return fmt.Errorf("unknown long vowel style: %q", c.LongVowelStyle)
	}
	switch c.ParticleWaHandling {
	case ParticleLiteral, ParticlePhonetic:
	default:
		return fmt.Errorf("unknown particle handling: %q", c.ParticleWaHandling)
	}
	switch c.NSyllabicStyle {
	case NSyllabicN, NSyllabicMBeforeLabial:
	default:
		return fmt.Errorf("unknown syllabic n style: %q", c.NSyllabicStyle)
	}
	return nil
}
