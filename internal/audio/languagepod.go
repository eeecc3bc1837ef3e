package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
)

// defaultLanguagePodURL serves pronunciation clips keyed by kanji and kana.
const defaultLanguagePodURL = "https://assets.languagepod101.com/dictionary/japanese/audiomp3.php"

// The service answers unknown words with a fixed-size apology clip instead of
// an HTTP error; any body of exactly this length is a remote miss.
const languagePodNotFoundSize = 52288

// LanguagePodFetcher downloads native pronunciation clips over HTTP. A
// circuit breaker keeps a failing remote from stalling every line of a batch.
type LanguagePodFetcher struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

// NewLanguagePodFetcher creates a fetcher against the public endpoint, or
// against config.BaseURL when set.
func NewLanguagePodFetcher(config *Config) *LanguagePodFetcher {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultLanguagePodURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "languagepod",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A remote miss is a healthy answer; only transport trouble should
		// open the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || err == errNotFoundRemotely
		},
	})

	return &LanguagePodFetcher{
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		baseURL: baseURL,
	}
}

// Fetch downloads the clip for the entry's (expression, reading) pair. All
// failures degrade into an absence reason.
func (f *LanguagePodFetcher) Fetch(ctx context.Context, entry *dictionary.Entry) Result {
	kana := entry.Reading
	if kana == "" {
		kana = entry.Expression
	}

	query := url.Values{}
	query.Set("kanji", entry.Expression)
	query.Set("kana", kana)
	requestURL := f.baseURL + "?" + query.Encode()

	body, err := f.breaker.Execute(func() (interface{}, error) {
		return f.download(ctx, requestURL)
	})
	if err != nil {
		if err == errNotFoundRemotely {
			return Result{Reason: ReasonNotFoundRemotely}
		}
		return Result{Reason: ReasonNetworkError}
	}

	data := body.([]byte)
	if len(data) == languagePodNotFoundSize {
		return Result{Reason: ReasonNotFoundRemotely}
	}

	return Result{Data: data, Format: "mp3"}
}

// errNotFoundRemotely marks an HTTP 404 so it is not counted against the
// breaker the same way as transport failures would be surfaced.
var errNotFoundRemotely = fmt.Errorf("audio not found remotely")

func (f *LanguagePodFetcher) download(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFoundRemotely
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	return data, nil
}
