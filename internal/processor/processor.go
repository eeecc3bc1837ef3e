package processor

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/anki"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/audio"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/batch"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/card"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/cli"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/romaji"
)

// Processor handles the main term processing logic
type Processor struct {
	flags *cli.Flags
	index *dictionary.Index
}

// NewProcessor creates a new term processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// ProcessBatch processes multiple terms from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no terms found in %s", p.flags.BatchFile)
	}

	lines := make([]card.Line, len(entries))
	for i, entry := range entries {
		lines[i] = card.Line{Text: entry.Term, POSHint: entry.POSHint}
	}

	return p.process(lines)
}

// ProcessSingleTerm processes a single term from the command line
func (p *Processor) ProcessSingleTerm(term string) error {
	return p.process([]card.Line{{Text: term, POSHint: p.flags.POSHint}})
}

func (p *Processor) process(lines []card.Line) error {
	// Configuration problems are fatal before any line is touched.
	runner, err := p.buildRunner()
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := runner.Run(ctx, lines)
	if err != nil {
		if len(result) > 0 {
			fmt.Fprintf(os.Stderr, "Aborted after %d/%d terms: %v\n", len(result), len(lines), err)
		}
		return err
	}

	p.printSummary(result)

	if p.flags.AnkiCSV {
		outputPath, err := p.generateAnkiFile(result, runner.Mapping)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Printf("\nAnki import file created: %s\n", outputPath)
		}
	}

	return nil
}

// buildRunner assembles the pipeline from flags and config file values.
func (p *Processor) buildRunner() (*card.Runner, error) {
	if err := p.loadIndex(); err != nil {
		return nil, err
	}

	romanizer, err := romaji.New(p.romajiConfig())
	if err != nil {
		return nil, fmt.Errorf("invalid romanization configuration: %w", err)
	}

	mapping, err := fieldMappingFromConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid field mapping: %w", err)
	}

	fetcher, err := audio.NewFetcher(p.audioConfig())
	if err != nil {
		return nil, fmt.Errorf("invalid audio configuration: %w", err)
	}

	return &card.Runner{
		Index:         p.index,
		Romanizer:     romanizer,
		Fetcher:       fetcher,
		Mapping:       mapping,
		Concurrency:   p.flags.Concurrency,
		FetchInterval: viper.GetDuration("audio.fetch_interval"),
		AudioFormat:   p.flags.AudioFormat,
	}, nil
}

// loadIndex reads the dictionary database once per process.
func (p *Processor) loadIndex() error {
	if p.index != nil {
		return nil
	}

	entries, err := dictionary.LoadSQLite(p.flags.DictPath)
	if err != nil {
		return fmt.Errorf("failed to load dictionary from %s: %w", p.flags.DictPath, err)
	}
	p.index = dictionary.NewIndex(entries)
	fmt.Printf("Loaded %d dictionary entries\n", p.index.Len())
	return nil
}

func (p *Processor) romajiConfig() romaji.Config {
	return romaji.Config{
		LongVowelStyle:          romaji.LongVowelStyle(p.flags.LongVowelStyle),
		ParticleWaHandling:      romaji.ParticleWaHandling(p.flags.ParticleWa),
		NSyllabicStyle:          romaji.NSyllabicStyle(p.flags.NSyllabicStyle),
		UseApostropheForMoraicN: p.flags.ApostropheN,
	}
}

func (p *Processor) audioConfig() *audio.Config {
	config := audio.DefaultConfig()
	config.Provider = p.flags.AudioProvider
	if p.flags.SkipAudio {
		config.Provider = "disabled"
	}
	config.Format = p.flags.AudioFormat
	if timeout := viper.GetDuration("audio.timeout"); timeout > 0 {
		config.Timeout = timeout
	} else {
		config.Timeout = 30 * time.Second
	}
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = p.flags.OpenAIModel
	config.OpenAIVoice = p.flags.OpenAIVoice
	config.OpenAISpeed = p.flags.OpenAISpeed
	return config
}

// defaultFieldTargets mirrors the role names of a stock Japanese note type.
var defaultFieldTargets = map[string]string{
	"Expression": "Expression",
	"Reading":    "Reading",
	"Romaji":     "Romaji",
	"Gloss1":     "Glossary",
	"Gloss2":     "Glossary 2",
	"Gloss3":     "Glossary 3",
	"Audio":      "Audio",
}

// fieldMappingFromConfig builds the role to note-field mapping, letting a
// "fields" section in the config file override the defaults. Viper lowercases
// map keys, so role names are matched case-insensitively; unknown roles are
// passed through for NewFieldMapping to reject.
func fieldMappingFromConfig() (card.FieldMapping, error) {
	raw := make(map[string]string, len(defaultFieldTargets))
	for role, target := range defaultFieldTargets {
		raw[role] = target
	}

	for key, target := range viper.GetStringMapString("fields") {
		name := key
		for _, role := range card.RoleOrder {
			if strings.EqualFold(string(role), key) {
				name = string(role)
				break
			}
		}
		if target == "" {
			// Explicitly unassigned roles are dropped from the output.
			delete(raw, name)
			continue
		}
		raw[name] = target
	}

	return card.NewFieldMapping(raw)
}

// printSummary reports per-line outcomes and overall statistics.
func (p *Processor) printSummary(result card.BatchResult) {
	created := 0
	var notFound, ambiguous, warnings []string

	for _, slot := range result {
		if slot.Record != nil {
			created++
		}
		if slot.HasDiagnostic(card.DiagNotFound) {
			notFound = append(notFound, slot.Input)
		}
		if slot.HasDiagnostic(card.DiagAmbiguous) {
			ambiguous = append(ambiguous, slot.Input)
		}
		if slot.HasDiagnostic(card.DiagPartialRomanization) || slot.HasDiagnostic(card.DiagAudioUnavailable) {
			warnings = append(warnings, slot.Input)
		}
	}

	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total terms: %d\n", len(result))
	fmt.Printf("Cards created: %d\n", created)
	if len(notFound) > 0 {
		fmt.Printf("Not found: %d (%s)\n", len(notFound), strings.Join(notFound, ", "))
	}
	if len(ambiguous) > 0 {
		fmt.Printf("Ambiguous (best match used): %d (%s)\n", len(ambiguous), strings.Join(ambiguous, ", "))
	}
	if len(warnings) > 0 {
		fmt.Printf("Warnings: %d (%s)\n", len(warnings), strings.Join(warnings, ", "))
	}
	fmt.Printf("================================\n")
}

// generateAnkiFile writes the CSV and media files and returns the CSV path.
func (p *Processor) generateAnkiFile(result card.BatchResult, mapping card.FieldMapping) (string, error) {
	outputPath := filepath.Join(p.flags.OutputDir, "anki_import.csv")

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		MediaFolder:    p.flags.OutputDir,
		IncludeHeaders: true,
	}, mapping)
	gen.AddResult(result)

	if err := gen.GenerateCSV(); err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	written, err := gen.WriteMedia()
	if err != nil {
		return "", fmt.Errorf("failed to write media files: %w", err)
	}

	total, withAudio, withDiagnostics := gen.Stats()
	fmt.Printf("  Generated %d cards (%d with audio, %d with warnings), %d media files\n",
		total, withAudio, withDiagnostics, written)

	return outputPath, nil
}
