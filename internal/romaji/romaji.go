package romaji

import "strings"

// Romanizer converts kana readings into Hepburn-style romaji under a fixed
// Config. It holds no mutable state; the same (reading, config) always yields
// identical output.
type Romanizer struct {
	cfg Config
}

// New creates a Romanizer, validating the configuration first.
func New(cfg Config) (*Romanizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Romanizer{cfg: cfg}, nil
}

// Config returns the style configuration this Romanizer was built with.
func (rz *Romanizer) Config() Config {
	return rz.cfg
}

// Digraphs (きゃ, しゃ, ...), Hepburn-style.
var hiraDigraphs = map[string]string{
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
}

// Single kana to romaji. っ and ー map to the empty string because they are
// handled positionally, not as standalone mora.
var hiraMono = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'を': "o",
	'ん': "n",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo",
	'っ': "",
	'ー': "",
}

// Greetings whose final は is the fossilized topic particle and is read wa
// even outside any particle context.
var lexicalWaTail = map[string]bool{
	"こんにちは": true,
	"こんばんは": true,
}

// Romanize converts a kana reading to romaji. Katakana is folded to hiragana
// first. Unmapped characters pass through unchanged and are returned in the
// second value so the caller can surface a partial-romanization warning.
func (rz *Romanizer) Romanize(reading string) (string, []string) {
	if reading == "" {
		return "", nil
	}

	hira := foldToHiragana(reading)

	waTail := false
	if lexicalWaTail[string(hira)] {
		waTail = true
		hira = hira[:len(hira)-1]
	}

	var chunks []string
	var unmapped []string

	for i := 0; i < len(hira); {
		c := hira[i]

		// Sokuon: double the following consonant.
		if c == 'っ' {
			if next := nextChunk(hira, i+1); next != "" {
				if first := next[0]; first >= 'a' && first <= 'z' {
					chunks = append(chunks, string(first))
				}
			}
			i++
			continue
		}

		// Moraic n.
		if c == 'ん' {
			chunks = append(chunks, rz.moraicN(hira, i+1))
			i++
			continue
		}

		// Digraphs like きゃ, しゃ.
		if i+1 < len(hira) {
			if d, ok := hiraDigraphs[string(hira[i:i+2])]; ok {
				chunks = append(chunks, d)
				i += 2
				continue
			}
		}

		// Chōon: prolong the previous vowel.
		if c == 'ー' {
			if v := lastVowel(chunks); v != 0 {
				chunks = append(chunks, string(v))
			}
			i++
			continue
		}

		if m, ok := hiraMono[c]; ok {
			chunks = append(chunks, m)
		} else {
			chunks = append(chunks, string(c))
			unmapped = append(unmapped, string(c))
		}
		i++
	}

	if waTail {
		chunks = append(chunks, "wa")
	}

	return rz.applyLongVowelStyle(strings.Join(chunks, "")), unmapped
}

// RomanizeToken romanizes a single token, honoring the particle flag supplied
// by the caller. Only the particles with an irregular reading (は, へ) differ
// from the plain mapping; を already romanizes as o.
func (rz *Romanizer) RomanizeToken(reading string, particle bool) (string, []string) {
	if particle {
		switch string(foldToHiragana(reading)) {
		case "は":
			if rz.cfg.ParticleWaHandling == ParticlePhonetic {
				return "wa", nil
			}
			return "ha", nil
		case "へ":
			if rz.cfg.ParticleWaHandling == ParticlePhonetic {
				return "e", nil
			}
			return "he", nil
		}
	}
	return rz.Romanize(reading)
}

// moraicN renders ん based on the chunk that follows at position i.
func (rz *Romanizer) moraicN(hira []rune, i int) string {
	next := nextChunk(hira, i)
	if next == "" {
		return "n"
	}
	switch first := next[0]; {
	case strings.IndexByte("aeiouy", first) >= 0:
		if rz.cfg.UseApostropheForMoraicN {
			return "n'"
		}
		return "n"
	case first == 'b' || first == 'm' || first == 'p':
		if rz.cfg.NSyllabicStyle == NSyllabicMBeforeLabial {
			return "m"
		}
		return "n"
	default:
		return "n"
	}
}

// nextChunk peeks the romaji for the kana at pos, considering digraphs.
func nextChunk(hira []rune, pos int) string {
	if pos >= len(hira) {
		return ""
	}
	if pos+1 < len(hira) {
		if d, ok := hiraDigraphs[string(hira[pos:pos+2])]; ok {
			return d
		}
	}
	return hiraMono[hira[pos]]
}

// lastVowel returns the last vowel of the most recent chunk, or 0.
func lastVowel(chunks []string) byte {
	if len(chunks) == 0 {
		return 0
	}
	last := chunks[len(chunks)-1]
	for i := len(last) - 1; i >= 0; i-- {
		if strings.IndexByte("aeiou", last[i]) >= 0 {
			return last[i]
		}
	}
	return 0
}

var macronPairs = [...][2]string{
	{"aa", "ā"}, {"ii", "ī"}, {"uu", "ū"}, {"ee", "ē"}, {"oo", "ō"}, {"ou", "ō"},
}

var collapsedPairs = [...][2]string{
	{"aa", "a"}, {"ii", "i"}, {"uu", "u"}, {"ee", "e"}, {"oo", "o"}, {"ou", "o"},
}

// applyLongVowelStyle rewrites long-vowel sequences in the assembled romaji.
// Lexically perfect long-vowel detection needs dictionary knowledge; this
// covers the common patterns.
func (rz *Romanizer) applyLongVowelStyle(s string) string {
	var pairs [][2]string
	switch rz.cfg.LongVowelStyle {
	case LongVowelMacron:
		pairs = macronPairs[:]
	case LongVowelNone:
		pairs = collapsedPairs[:]
	default:
		return s
	}
	for _, p := range pairs {
		s = strings.ReplaceAll(s, p[0], p[1])
	}
	return s
}

// foldToHiragana converts katakana runes to their hiragana equivalents and
// leaves everything else untouched.
func foldToHiragana(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return runes
}
