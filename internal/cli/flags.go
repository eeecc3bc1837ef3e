package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	DictPath  string
	OutputDir string
	BatchFile string
	DeckName  string
	AnkiCSV   bool
	SkipAudio bool
	POSHint   string

	// Romanization flags
	LongVowelStyle string
	ParticleWa     string
	NSyllabicStyle string
	ApostropheN    bool

	// Audio flags
	AudioProvider string
	AudioFormat   string
	Concurrency   int

	// OpenAI flags
	OpenAIModel string
	OpenAIVoice string
	OpenAISpeed float64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName:       "Japanese Vocabulary",
		LongVowelStyle: "doubled",
		ParticleWa:     "phonetic",
		NSyllabicStyle: "m-before-labial",
		ApostropheN:    true,
		AudioProvider:  "languagepod",
		AudioFormat:    "mp3",
		Concurrency:    4,
		OpenAIModel:    "gpt-4o-mini-tts",
		OpenAIVoice:    "alloy",
		OpenAISpeed:    1.0,
	}
}
