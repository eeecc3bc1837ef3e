package card

import (
	"fmt"

	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/audio"
	"github.com/TrumanHarp/Japanese-Bulk-Card-Creator/internal/resolver"
)

// Record is one assembled flashcard: external field name to value. It is
// never mutated after Assemble returns it.
type Record map[string]string

// Assemble combines a resolved match, its romanization and an optional audio
// result into a field-mapped record. Fields whose data is missing are left
// out entirely rather than set to an empty string, so a downstream import can
// tell "no data" from "intentionally blank". The reading falls back to the
// expression for kana-only entries.
func Assemble(match resolver.Match, romajiText string, audioResult audio.Result, mapping FieldMapping) Record {
	entry := match.Entry
	if entry == nil {
		return nil
	}

	record := make(Record)
	set := func(role FieldRole, value string) {
		if value == "" {
			return
		}
		if target, ok := mapping.Target(role); ok {
			record[target] = value
		}
	}

	set(RoleExpression, entry.Expression)

	reading := entry.Reading
	if reading == "" {
		reading = entry.Expression
	}
	set(RoleReading, reading)

	set(RoleRomaji, romajiText)

	for i, role := range []FieldRole{RoleGloss1, RoleGloss2, RoleGloss3} {
		if i < len(entry.Glosses) {
			set(role, entry.Glosses[i])
		}
	}

	if audioResult.Present() && audioResult.Filename != "" {
		set(RoleAudio, fmt.Sprintf("[sound:%s]", audioResult.Filename))
	}

	return record
}
