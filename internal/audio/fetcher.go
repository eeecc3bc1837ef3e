package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
)

// Reason explains why no audio clip is attached to a Result.
type Reason int

const (
	ReasonNone Reason = iota // audio is present
	ReasonDisabled
	ReasonNetworkError
	ReasonNotFoundRemotely
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonDisabled:
		return "audio disabled"
	case ReasonNetworkError:
		return "network error"
	case ReasonNotFoundRemotely:
		return "no pronunciation available"
	default:
		return "unknown"
	}
}

// Result is the outcome of one audio fetch: either a clip (Data plus Format)
// or an absence Reason. Filename is assigned by the caller once it decides
// where the clip will live.
type Result struct {
	Data     []byte
	Format   string
	Filename string
	Reason   Reason
}

// Present reports whether the result carries an audio clip.
func (r Result) Present() bool {
	return r.Reason == ReasonNone && len(r.Data) > 0
}

// Fetcher obtains a pronunciation clip for a resolved dictionary entry.
// Implementations never fail hard: any error degrades into an absence Reason
// so card assembly can proceed without audio.
type Fetcher interface {
	Fetch(ctx context.Context, entry *dictionary.Entry) Result
}

// Config holds common configuration for audio fetchers.
type Config struct {
	Provider string // "disabled", "languagepod" or "openai"
	Format   string // "mp3" or "wav"
	Timeout  time.Duration

	// languagepod settings
	BaseURL string // override for tests; empty means the public endpoint

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice string  // "alloy", "echo", "nova", ...
	OpenAISpeed float64 // 0.25 to 4.0
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "languagepod",
		Format:      "mp3",
		Timeout:     30 * time.Second,
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "alloy",
		OpenAISpeed: 1.0,
	}
}

// NewFetcher creates the appropriate audio fetcher based on configuration.
func NewFetcher(config *Config) (Fetcher, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "disabled", "":
		return Disabled{}, nil

	case "languagepod":
		return NewLanguagePodFetcher(config), nil

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIFetcher(config), nil

	default:
		return nil, fmt.Errorf("unknown audio provider: %s", config.Provider)
	}
}

// Disabled is the no-op fetcher used when audio is switched off. It never
// touches the network.
type Disabled struct{}

// Fetch always reports the disabled reason.
func (Disabled) Fetch(ctx context.Context, entry *dictionary.Entry) Result {
	return Result{Reason: ReasonDisabled}
}
