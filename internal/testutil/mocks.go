package testutil

import (
	"context"
	"sync"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/audio"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
)

// MockFetcher is an audio.Fetcher that serves canned results keyed by
// entry reading. It records every fetch so tests can assert call counts
// even when fetches run concurrently.
type MockFetcher struct {
	mu      sync.Mutex
	Results map[string]audio.Result
	Err     map[string]audio.Reason
	calls   []string
}

// NewMockFetcher creates a mock fetcher with empty result tables.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Results: make(map[string]audio.Result),
		Err:     make(map[string]audio.Reason),
	}
}

// Fetch returns the canned result for the entry's reading, or a
// not-found result when nothing was registered.
func (m *MockFetcher) Fetch(ctx context.Context, entry *dictionary.Entry) audio.Result {
	m.mu.Lock()
	m.calls = append(m.calls, entry.Reading)
	m.mu.Unlock()

	if reason, ok := m.Err[entry.Reading]; ok {
		return audio.Result{Reason: reason}
	}
	if result, ok := m.Results[entry.Reading]; ok {
		return result
	}
	return audio.Result{Reason: audio.ReasonNotFoundRemotely}
}

// WithAudio registers mock audio bytes for a reading.
func (m *MockFetcher) WithAudio(reading string, data []byte) *MockFetcher {
	m.Results[reading] = audio.Result{Data: data, Format: "mp3"}
	return m
}

// Calls returns a copy of the recorded fetch readings.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns how many fetches were recorded.
func (m *MockFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockAudioData returns a minimal MP3 frame header usable as fake audio.
func MockAudioData() []byte {
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}
