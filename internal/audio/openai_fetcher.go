package audio

import (
	"context"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/dictionary"
)

// OpenAIFetcher synthesizes pronunciation clips with OpenAI TTS, speaking the
// entry's kana reading.
type OpenAIFetcher struct {
	client *openai.Client
	config *Config
}

// NewOpenAIFetcher creates a new OpenAI TTS fetcher.
func NewOpenAIFetcher(config *Config) *OpenAIFetcher {
	return &OpenAIFetcher{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}
}

// Fetch synthesizes audio for the entry's reading. API and transport errors
// degrade into a network-error reason.
func (f *OpenAIFetcher) Fetch(ctx context.Context, entry *dictionary.Entry) Result {
	text := entry.Reading
	if text == "" {
		text = entry.Expression
	}
	if err := ValidateJapaneseText(text); err != nil {
		return Result{Reason: ReasonNotFoundRemotely}
	}

	req := openai.CreateSpeechRequest{
		Model: openai.SpeechModel(f.config.OpenAIModel),
		Input: text,
		Voice: openai.SpeechVoice(f.config.OpenAIVoice),
		Speed: f.config.OpenAISpeed,
	}
	switch f.config.Format {
	case "wav":
		req.ResponseFormat = openai.SpeechResponseFormatWav
	default:
		req.ResponseFormat = openai.SpeechResponseFormatMp3
	}

	response, err := f.client.CreateSpeech(ctx, req)
	if err != nil {
		return Result{Reason: ReasonNetworkError}
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil || len(data) == 0 {
		return Result{Reason: ReasonNetworkError}
	}

	format := f.config.Format
	if format == "" {
		format = "mp3"
	}
	return Result{Data: data, Format: format}
}
