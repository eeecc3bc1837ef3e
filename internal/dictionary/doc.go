// Package dictionary provides the in-memory bilingual dictionary index used
// to resolve user-entered Japanese terms. The index is built once from a
// JMdict-derived SQLite database and is read-only afterwards.
package dictionary
