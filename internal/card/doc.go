// Package card assembles field-mapped flashcard records from resolved
// dictionary entries and drives the batch loop with per-line failure
// isolation: one result slot per input line, diagnostics instead of aborts.
package card
