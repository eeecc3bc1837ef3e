package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/card"
)

// GeneratorOptions configures the Anki export.
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	MediaFolder    string // Folder audio clips are written to
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults.
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		MediaFolder:    ".",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files from batch results. Columns
// follow the field mapping's target names, in semantic role order.
type Generator struct {
	options *GeneratorOptions
	mapping card.FieldMapping
	slots   card.BatchResult
}

// NewGenerator creates a new Anki generator.
func NewGenerator(options *GeneratorOptions, mapping card.FieldMapping) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		mapping: mapping,
	}
}

// AddResult appends a batch result to the export set. Slots without a record
// are kept for Stats but never written to the CSV.
func (g *Generator) AddResult(result card.BatchResult) {
	g.slots = append(g.slots, result...)
}

// Columns returns the CSV header: the mapped target field names in role
// order.
func (g *Generator) Columns() []string {
	var columns []string
	for _, role := range card.RoleOrder {
		if target, ok := g.mapping.Target(role); ok {
			columns = append(columns, target)
		}
	}
	return columns
}

// GenerateCSV creates a CSV file for Anki import.
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	columns := g.Columns()
	if g.options.IncludeHeaders {
		if err := writer.Write(columns); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, slot := range g.slots {
		if slot.Record == nil {
			continue
		}
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = slot.Record[column]
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// WriteMedia dumps the fetched audio clips into the media folder and returns
// the number of files written.
func (g *Generator) WriteMedia() (int, error) {
	written := 0
	for _, slot := range g.slots {
		if !slot.Audio.Present() || slot.Audio.Filename == "" {
			continue
		}
		path := filepath.Join(g.options.MediaFolder, slot.Audio.Filename)
		if err := os.WriteFile(path, slot.Audio.Data, 0644); err != nil {
			return written, fmt.Errorf("failed to write audio file %s: %w", slot.Audio.Filename, err)
		}
		written++
	}
	return written, nil
}

// Stats returns statistics about the export set.
func (g *Generator) Stats() (totalCards, withAudio, withDiagnostics int) {
	for _, slot := range g.slots {
		if slot.Record != nil {
			totalCards++
		}
		if slot.Audio.Present() {
			withAudio++
		}
		if len(slot.Diagnostics) > 0 {
			withDiagnostics++
		}
	}
	return
}
