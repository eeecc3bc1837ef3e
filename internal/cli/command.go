package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jbcc [term]",
		Short: "Japanese Bulk Anki Card Creator",
		Long: `jbcc creates Anki flashcard records from Japanese words and kanji.

Each term is resolved against an in-memory JMdict dictionary, its reading is
transliterated into Hepburn romaji, and a pronunciation clip is fetched when
audio is enabled. Lines that cannot be resolved are reported per line; one
bad term never aborts the rest of the batch.

Examples:
  jbcc 日本語                   # Create one card via CLI
  jbcc --batch words.txt        # Process multiple terms from file
  jbcc --batch words.txt --skip-audio --anki-csv`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultDictPath := filepath.Join(home, ".local", "share", "jbcc", "jmdict.db")
	defaultOutputDir := filepath.Join(home, ".local", "state", "jbcc", "cards")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.jbcc.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.DictPath, "dict", "d", defaultDictPath, "JMdict SQLite database path")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process terms from file (one per line, optional '= part-of-speech' hint)")
	cmd.Flags().StringVar(&flags.POSHint, "pos-hint", "", "Part-of-speech hint for disambiguating a single term")
	cmd.Flags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip audio fetching")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Write an Anki import CSV alongside the card records")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for the export")

	// Romanization flags
	cmd.Flags().StringVar(&flags.LongVowelStyle, "long-vowel-style", flags.LongVowelStyle, "Long vowel style: macron, doubled or none")
	cmd.Flags().StringVar(&flags.ParticleWa, "particle-wa", flags.ParticleWa, "Topic particle は handling: literal or phonetic")
	cmd.Flags().StringVar(&flags.NSyllabicStyle, "syllabic-n", flags.NSyllabicStyle, "Syllabic ん style: n or m-before-labial")
	cmd.Flags().BoolVar(&flags.ApostropheN, "apostrophe-n", flags.ApostropheN, "Write n' before vowels and y (shin'you)")

	// Audio flags
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Audio source: languagepod, openai or disabled")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (mp3 or wav)")
	cmd.Flags().IntVar(&flags.Concurrency, "concurrency", flags.Concurrency, "Maximum concurrent audio fetches")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, echo, nova, ...")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dictionary.path", cmd.Flags().Lookup("dict"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("romaji.long_vowel_style", cmd.Flags().Lookup("long-vowel-style"))
	viper.BindPFlag("romaji.particle_wa", cmd.Flags().Lookup("particle-wa"))
	viper.BindPFlag("romaji.syllabic_n", cmd.Flags().Lookup("syllabic-n"))
	viper.BindPFlag("romaji.apostrophe_n", cmd.Flags().Lookup("apostrophe-n"))
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-provider"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.concurrency", cmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".jbcc" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jbcc")
	}

	// Environment variables
	viper.SetEnvPrefix("JBCC")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("audio.openai_key")
}
