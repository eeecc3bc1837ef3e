package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/audio"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/resolver"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/romaji"
)

// DiagnosticKind classifies a per-line diagnostic.
type DiagnosticKind int

const (
	DiagNotFound DiagnosticKind = iota
	DiagAmbiguous
	DiagPartialRomanization
	DiagAudioUnavailable
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagNotFound:
		return "not found"
	case DiagAmbiguous:
		return "ambiguous"
	case DiagPartialRomanization:
		return "partial romanization"
	case DiagAudioUnavailable:
		return "audio unavailable"
	default:
		return "unknown"
	}
}

// Diagnostic is one recoverable problem attached to a line's result slot.
// Several diagnostics may co-occur on a single line.
type Diagnostic struct {
	Kind       DiagnosticKind
	Detail     string
	Candidates []*dictionary.Entry // full candidate set, DiagAmbiguous only
	Reason     audio.Reason        // DiagAudioUnavailable only
}

// Slot is one line's result: the assembled record (nil when the term was not
// found) plus any diagnostics.
type Slot struct {
	Input       string
	Match       resolver.Match
	Record      Record
	Audio       audio.Result
	Diagnostics []Diagnostic
}

// Failed reports whether no card could be produced for this line.
func (s Slot) Failed() bool {
	return s.Record == nil
}

// HasDiagnostic reports whether the slot carries a diagnostic of the kind.
func (s Slot) HasDiagnostic(kind DiagnosticKind) bool {
	for _, d := range s.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// BatchResult is the ordered outcome of a batch run, one slot per input line.
type BatchResult []Slot

// Line is one raw input line with an optional part-of-speech hint for
// disambiguation.
type Line struct {
	Text    string
	POSHint string
}

// Runner drives the lookup-and-assembly pipeline over a batch of input
// lines. Resolution and romanization are pure and run synchronously per
// line; audio fetches run concurrently with a bounded group and are routed
// back to their line index so the output order always matches input order.
type Runner struct {
	Index     *dictionary.Index
	Romanizer *romaji.Romanizer
	Fetcher   audio.Fetcher
	Mapping   FieldMapping

	// Concurrency bounds the number of in-flight audio fetches; zero means
	// a small default.
	Concurrency int
	// FetchInterval spaces out audio requests; zero disables rate limiting.
	FetchInterval time.Duration
	// AudioFormat names the clip file extension used for media filenames.
	AudioFormat string
}

const defaultConcurrency = 4

// Run processes every line independently and returns one slot per line.
// Per-line failures become diagnostics and never abort sibling lines; the
// returned error is non-nil only for configuration problems detected before
// processing starts, or for cancellation. On cancellation the already
// completed slots are returned alongside the context error.
func (r *Runner) Run(ctx context.Context, lines []Line) (BatchResult, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	slots := make(BatchResult, 0, len(lines))
	romajiByIndex := make([]string, len(lines))

	// Phase 1: resolve and romanize, line by line. Pure work, checked for
	// cancellation at each iteration boundary.
	for i, line := range lines {
		select {
		case <-ctx.Done():
			return slots, ctx.Err()
		default:
		}

		slot := Slot{Input: line.Text}
		slot.Match = resolver.Resolve(line.Text, line.POSHint, r.Index)

		switch slot.Match.Status {
		case resolver.StatusNotFound:
			slot.Diagnostics = append(slot.Diagnostics, Diagnostic{
				Kind:   DiagNotFound,
				Detail: fmt.Sprintf("no dictionary entry for %q", line.Text),
			})

		default:
			if slot.Match.Status == resolver.StatusAmbiguous {
				slot.Diagnostics = append(slot.Diagnostics, Diagnostic{
					Kind:       DiagAmbiguous,
					Detail:     fmt.Sprintf("%d candidate entries", len(slot.Match.Candidates)),
					Candidates: slot.Match.Candidates,
				})
			}

			reading := slot.Match.Entry.Reading
			if reading == "" {
				reading = slot.Match.Entry.Expression
			}
			text, unmapped := r.Romanizer.Romanize(reading)
			romajiByIndex[i] = text
			if len(unmapped) > 0 {
				slot.Diagnostics = append(slot.Diagnostics, Diagnostic{
					Kind:   DiagPartialRomanization,
					Detail: fmt.Sprintf("unmapped characters: %s", strings.Join(unmapped, " ")),
				})
			}
		}

		slots = append(slots, slot)
	}

	// Phase 2: fetch audio for resolved lines, bounded and order-preserving.
	if r.audioWanted() {
		r.fetchAudio(ctx, slots)
	}

	// Phase 3: assemble records in input order.
	for i := range slots {
		if slots[i].Match.Entry == nil {
			continue
		}
		if reason := slots[i].Audio.Reason; reason == audio.ReasonNetworkError || reason == audio.ReasonNotFoundRemotely {
			slots[i].Diagnostics = append(slots[i].Diagnostics, Diagnostic{
				Kind:   DiagAudioUnavailable,
				Detail: reason.String(),
				Reason: reason,
			})
		}
		slots[i].Record = Assemble(slots[i].Match, romajiByIndex[i], slots[i].Audio, r.Mapping)
	}

	return slots, nil
}

// audioWanted reports whether fetching audio can contribute anything to the
// output. Without a mapped Audio field the clip would be dropped, so no
// fetch is issued at all.
func (r *Runner) audioWanted() bool {
	_, mapped := r.Mapping.Target(RoleAudio)
	return mapped
}

// fetchAudio runs one fetch per resolved entry, at most once per line, and
// writes each result back to its slot by index.
func (r *Runner) fetchAudio(ctx context.Context, slots BatchResult) {
	limit := r.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var limiter *rate.Limiter
	if r.FetchInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(r.FetchInterval), 1)
	}

	format := r.AudioFormat
	if format == "" {
		format = "mp3"
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i := range slots {
		entry := slots[i].Match.Entry
		if entry == nil {
			continue
		}
		i := i
		eg.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(egCtx); err != nil {
					// The batch was aborted before this request went out;
					// leaving the slot unset keeps user cancellation from
					// being reported as a transport failure.
					return nil
				}
			}
			result := r.Fetcher.Fetch(egCtx, entry)
			if result.Present() {
				result.Filename = internal.AudioFilename(entry.Expression, entry.Reading, format)
			}
			slots[i].Audio = result
			return nil
		})
	}

	// Workers only report through their slot, so Wait cannot fail.
	_ = eg.Wait()
}

func (r *Runner) validate() error {
	if r.Index == nil {
		return fmt.Errorf("dictionary index is not configured")
	}
	if r.Romanizer == nil {
		return fmt.Errorf("romanizer is not configured")
	}
	if r.Fetcher == nil {
		return fmt.Errorf("audio fetcher is not configured")
	}
	if len(r.Mapping) == 0 {
		return fmt.Errorf("field mapping is not configured")
	}
	return nil
}
