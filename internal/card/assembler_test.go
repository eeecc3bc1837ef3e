package card

import (
	"reflect"
	"testing"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/audio"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/resolver"
)

func fullMapping(t *testing.T) FieldMapping {
	t.Helper()
	mapping, err := NewFieldMapping(map[string]string{
		"Expression": "Expression",
		"Reading":    "Reading",
		"Romaji":     "Romaji",
		"Gloss1":     "Glossary",
		"Gloss2":     "Glossary 2",
		"Gloss3":     "Glossary 3",
		"Audio":      "Audio",
	})
	if err != nil {
		t.Fatalf("NewFieldMapping() error = %v", err)
	}
	return mapping
}

func resolvedMatch(entry *dictionary.Entry) resolver.Match {
	return resolver.Match{
		Input:  entry.Expression,
		Status: resolver.StatusResolved,
		Entry:  entry,
	}
}

func TestAssemble(t *testing.T) {
	entry := &dictionary.Entry{
		Expression:   "日本語",
		Reading:      "にほんご",
		Glosses:      []string{"Japanese (language)"},
		PartOfSpeech: "noun",
		Common:       true,
	}

	clip := audio.Result{
		Data:     []byte{0xFF, 0xFB},
		Format:   "mp3",
		Filename: "jbcc_日本語_a1b2c3d4.mp3",
	}

	record := Assemble(resolvedMatch(entry), "nihongo", clip, fullMapping(t))

	want := Record{
		"Expression": "日本語",
		"Reading":    "にほんご",
		"Romaji":     "nihongo",
		"Glossary":   "Japanese (language)",
		"Audio":      "[sound:jbcc_日本語_a1b2c3d4.mp3]",
	}
	if !reflect.DeepEqual(record, want) {
		t.Errorf("Assemble() = %v, want %v", record, want)
	}
}

func TestAssembleOmissions(t *testing.T) {
	entry := &dictionary.Entry{
		Expression: "ありがとう",
		Glosses:    []string{"thank you", "thanks"},
	}

	record := Assemble(resolvedMatch(entry), "arigatou", audio.Result{Reason: audio.ReasonDisabled}, fullMapping(t))

	// Kana-only entry: reading falls back to the expression.
	if got := record["Reading"]; got != "ありがとう" {
		t.Errorf("Reading = %q, want expression fallback", got)
	}
	// Missing data is omitted, not set to an empty string.
	if _, ok := record["Glossary 3"]; ok {
		t.Error("Glossary 3 should be absent when the entry has two glosses")
	}
	if _, ok := record["Audio"]; ok {
		t.Error("Audio should be absent when no clip was fetched")
	}
	if got := record["Glossary 2"]; got != "thanks" {
		t.Errorf("Glossary 2 = %q, want thanks", got)
	}
}

func TestAssembleUnmappedRolesDropped(t *testing.T) {
	mapping, err := NewFieldMapping(map[string]string{
		"Expression": "Front",
		"Gloss1":     "Back",
	})
	if err != nil {
		t.Fatalf("NewFieldMapping() error = %v", err)
	}

	entry := &dictionary.Entry{
		Expression: "日本語",
		Reading:    "にほんご",
		Glosses:    []string{"Japanese (language)"},
	}

	record := Assemble(resolvedMatch(entry), "nihongo", audio.Result{}, mapping)

	want := Record{
		"Front": "日本語",
		"Back":  "Japanese (language)",
	}
	if !reflect.DeepEqual(record, want) {
		t.Errorf("Assemble() = %v, want %v", record, want)
	}
}

func TestAssembleNoEntry(t *testing.T) {
	match := resolver.Match{Input: "xyz123", Status: resolver.StatusNotFound}

	if record := Assemble(match, "", audio.Result{}, fullMapping(t)); record != nil {
		t.Errorf("Assemble() = %v, want nil for unresolved match", record)
	}
}

func TestAssembleAudioWithoutFilename(t *testing.T) {
	entry := &dictionary.Entry{Expression: "ねこ", Reading: "ねこ", Glosses: []string{"cat"}}

	// A clip that was never assigned a media filename cannot be referenced.
	clip := audio.Result{Data: []byte{0xFF}, Format: "mp3"}
	record := Assemble(resolvedMatch(entry), "neko", clip, fullMapping(t))

	if _, ok := record["Audio"]; ok {
		t.Error("Audio should be absent without a filename")
	}
}
