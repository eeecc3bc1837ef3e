package dictionary

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"
)

func createFixtureDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jmdict.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open fixture database: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE entries (
			ent_seq INTEGER PRIMARY KEY,
			expression TEXT NOT NULL,
			reading TEXT,
			gloss1 TEXT,
			gloss2 TEXT,
			gloss3 TEXT,
			pos TEXT,
			common INTEGER
		)`)
	if err != nil {
		t.Fatalf("Failed to create entries table: %v", err)
	}

	rows := [][]interface{}{
		{1582710, "日本語", "にほんご", "Japanese (language)", nil, nil, "noun", 1},
		{1223940, "ありがとう", nil, "thank you", "thanks", nil, "interjection", 1},
		{1469800, "橋", "はし", "bridge", nil, nil, "noun", 0},
	}
	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO entries (ent_seq, expression, reading, gloss1, gloss2, gloss3, pos, common)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, r...)
		if err != nil {
			t.Fatalf("Failed to insert fixture row: %v", err)
		}
	}

	return path
}

func TestLoadSQLite(t *testing.T) {
	path := createFixtureDB(t)

	entries, err := LoadSQLite(path)
	if err != nil {
		t.Fatalf("LoadSQLite() error = %v", err)
	}

	want := []Entry{
		{
			Sequence:     1223940,
			Expression:   "ありがとう",
			Glosses:      []string{"thank you", "thanks"},
			PartOfSpeech: "interjection",
			Common:       true,
		},
		{
			Sequence:     1469800,
			Expression:   "橋",
			Reading:      "はし",
			Glosses:      []string{"bridge"},
			PartOfSpeech: "noun",
			Common:       false,
		},
		{
			Sequence:     1582710,
			Expression:   "日本語",
			Reading:      "にほんご",
			Glosses:      []string{"Japanese (language)"},
			PartOfSpeech: "noun",
			Common:       true,
		},
	}

	if !reflect.DeepEqual(entries, want) {
		t.Errorf("LoadSQLite() = %+v, want %+v", entries, want)
	}
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open fixture database: %v", err)
	}
	db.Close()

	if _, err := LoadSQLite(path); err == nil {
		t.Error("LoadSQLite() expected error for database without entries table")
	}
}
