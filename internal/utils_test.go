package internal

import (
	"strings"
	"testing"
)

func TestAudioFilename(t *testing.T) {
	name := AudioFilename("日本語", "にほんご", "mp3")

	if !strings.HasPrefix(name, "jbcc_日本語_") {
		t.Errorf("AudioFilename() = %q, want jbcc_日本語_ prefix", name)
	}
	if !strings.HasSuffix(name, ".mp3") {
		t.Errorf("AudioFilename() = %q, want .mp3 suffix", name)
	}

	// Same input always yields the same name.
	if again := AudioFilename("日本語", "にほんご", "mp3"); again != name {
		t.Errorf("AudioFilename() not deterministic: %q vs %q", name, again)
	}

	// Different readings of the same expression must not collide.
	other := AudioFilename("日本語", "にっぽんご", "mp3")
	if other == name {
		t.Error("AudioFilename() collided for different readings")
	}

	if wav := AudioFilename("日本語", "にほんご", "wav"); !strings.HasSuffix(wav, ".wav") {
		t.Errorf("AudioFilename() = %q, want .wav suffix", wav)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "kanji kept",
			input: "日本語",
			want:  "日本語",
		},
		{
			name:  "kana kept",
			input: "ありがとうテスト",
			want:  "ありがとうテスト",
		},
		{
			name:  "latin and digits kept",
			input: "JLPT-N5",
			want:  "JLPT-N5",
		},
		{
			name:  "separators replaced",
			input: "a/b\\c d",
			want:  "a_b_c_d",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
