package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
)

// FixtureEntries returns a small set of dictionary entries covering the
// common test cases: a resolved word, an ambiguous pair sharing a
// reading, and a greeting.
func FixtureEntries() []dictionary.Entry {
	return []dictionary.Entry{
		{
			Sequence:     1582710,
			Expression:   "日本語",
			Reading:      "にほんご",
			Glosses:      []string{"Japanese (language)"},
			PartOfSpeech: "noun",
			Common:       true,
		},
		{
			Sequence:     1223940,
			Expression:   "ありがとう",
			Reading:      "ありがとう",
			Glosses:      []string{"thank you", "thanks"},
			PartOfSpeech: "interjection",
			Common:       true,
		},
		{
			Sequence:     1289400,
			Expression:   "こんにちは",
			Reading:      "こんにちは",
			Glosses:      []string{"hello", "good day"},
			PartOfSpeech: "interjection",
			Common:       true,
		},
		{
			Sequence:     1469800,
			Expression:   "橋",
			Reading:      "はし",
			Glosses:      []string{"bridge"},
			PartOfSpeech: "noun",
			Common:       true,
		},
		{
			Sequence:     1469810,
			Expression:   "箸",
			Reading:      "はし",
			Glosses:      []string{"chopsticks"},
			PartOfSpeech: "noun",
			Common:       false,
		},
	}
}

// FixtureIndex builds an in-memory index from FixtureEntries.
func FixtureIndex(t *testing.T) *dictionary.Index {
	t.Helper()
	return dictionary.NewIndex(FixtureEntries())
}

// CreateTestFile creates a test file with content, making parent
// directories as needed.
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
