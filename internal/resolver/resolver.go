package resolver

import (
	"strings"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
)

// Status classifies the outcome of resolving one input term.
type Status int

const (
	StatusNotFound Status = iota
	StatusResolved
	StatusAmbiguous
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusAmbiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

// Match is the result of resolving a raw input term against the dictionary
// index. For ambiguous terms Entry holds the deterministic pick and
// Candidates the full set, in index insertion order.
type Match struct {
	Input      string
	Normalized string
	Status     Status
	Entry      *dictionary.Entry
	Candidates []*dictionary.Entry
}

// Resolve normalizes rawText, looks it up in the index and applies the
// tie-break policy when several entries share the surface form. posHint, when
// non-empty, is matched against entry part-of-speech tags first. Empty or
// whitespace-only input resolves to NotFound without touching the index.
func Resolve(rawText, posHint string, ix *dictionary.Index) Match {
	m := Match{Input: rawText}

	m.Normalized = dictionary.Normalize(rawText)
	if m.Normalized == "" {
		return m
	}

	candidates := ix.Lookup(m.Normalized)
	switch len(candidates) {
	case 0:
		return m
	case 1:
		m.Status = StatusResolved
		m.Entry = candidates[0]
		return m
	}

	m.Status = StatusAmbiguous
	m.Candidates = candidates
	m.Entry = pick(candidates, posHint)
	return m
}

// pick chooses one entry out of several candidates: a part-of-speech hint
// match wins, then common-flagged entries, then the entry with the most
// glosses. Ties keep the first-inserted entry so the choice is reproducible.
func pick(candidates []*dictionary.Entry, posHint string) *dictionary.Entry {
	if posHint != "" {
		hint := strings.ToLower(strings.TrimSpace(posHint))
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.PartOfSpeech), hint) {
				return c
			}
		}
	}

	pool := candidates
	if common := commonOnly(candidates); len(common) > 0 {
		pool = common
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if len(c.Glosses) > len(best.Glosses) {
			best = c
		}
	}
	return best
}

func commonOnly(candidates []*dictionary.Entry) []*dictionary.Entry {
	var out []*dictionary.Entry
	for _, c := range candidates {
		if c.Common {
			out = append(out, c)
		}
	}
	return out
}
