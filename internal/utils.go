package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"unicode"
)

// AudioFilename creates a deterministic media filename for an entry's
// pronunciation clip. The same (expression, reading) pair always yields the
// same name so re-running a batch overwrites instead of accumulating files.
// Format: jbcc_<sanitized expression>_<md5(expression|reading)[:8]>.<format>
func AudioFilename(expression, reading, format string) string {
	h := md5.Sum([]byte(expression + "\x00" + reading))
	hashStr := hex.EncodeToString(h[:])[:8]
	return fmt.Sprintf("jbcc_%s_%s.%s", SanitizeFilename(expression), hashStr, format)
}

// SanitizeFilename creates a safe filename fragment from a string. Kana and
// kanji are kept since Anki media names may contain them.
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if isFilenameSafe(r) {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

func isFilenameSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || r == '-' || r == '_' ||
		unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han)
}
