package dictionary

import (
	"strings"

	"golang.org/x/text/width"
)

// Entry is a single dictionary sense group as loaded from the JMdict-derived
// database. Identity is the (Expression, Reading) pair; one expression may map
// to several entries.
type Entry struct {
	Sequence     int64    // JMdict ent_seq
	Expression   string   // kanji or kana surface form
	Reading      string   // kana reading, may be empty for kana-only entries
	Glosses      []string // up to three definition strings, in priority order
	PartOfSpeech string
	Common       bool // carries the JMdict priority flag
}

// Index is the read-only lookup structure over dictionary entries. It is built
// once and never mutated afterwards, so lookups are safe from any number of
// goroutines.
type Index struct {
	byKey map[string][]*Entry
	count int
}

// NewIndex builds an index over the given entries. Each entry is keyed by the
// normalized forms of both its expression and its reading, preserving insertion
// order within a key. Entries with an identical (expression, reading) pair are
// inserted only once.
func NewIndex(entries []Entry) *Index {
	ix := &Index{byKey: make(map[string][]*Entry)}
	seen := make(map[[2]string]bool, len(entries))

	for i := range entries {
		e := &entries[i]
		id := [2]string{e.Expression, e.Reading}
		if seen[id] {
			continue
		}
		seen[id] = true
		ix.count++

		exprKey := Normalize(e.Expression)
		if exprKey != "" {
			ix.byKey[exprKey] = append(ix.byKey[exprKey], e)
		}
		readKey := Normalize(e.Reading)
		if readKey != "" && readKey != exprKey {
			ix.byKey[readKey] = append(ix.byKey[readKey], e)
		}
	}

	return ix
}

// Lookup returns all entries stored under the given key, in insertion order.
// The key must already be normalized (see Normalize); the index performs no
// normalization of its own. The returned slice is shared and must not be
// modified.
func (ix *Index) Lookup(text string) []*Entry {
	return ix.byKey[text]
}

// Len returns the number of distinct (expression, reading) entries indexed.
func (ix *Index) Len() int {
	return ix.count
}

// Normalize prepares raw text for index lookup: full-width ASCII is folded to
// half-width, half-width katakana to full-width, Latin letters are lowercased
// and surrounding whitespace is trimmed. Kanji and regular kana pass through
// unchanged.
func Normalize(s string) string {
	s = width.Fold.String(s)
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}
