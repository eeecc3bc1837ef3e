package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateJapaneseText validates that the input contains Japanese script
// worth pronouncing (kana or kanji).
func ValidateJapaneseText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	hasJapanese := false
	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			hasJapanese = true
			break
		}
	}

	if !hasJapanese {
		return fmt.Errorf("text must contain kana or kanji")
	}

	return nil
}
