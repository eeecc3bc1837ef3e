package dictionary

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads all entries from a JMdict-style SQLite database, as
// produced by the XML-to-SQLite conversion tool. The expected schema is a
// single "entries" table with columns (ent_seq, expression, reading, gloss1,
// gloss2, gloss3, pos, common).
func LoadSQLite(path string) ([]Entry, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT ent_seq, expression, reading, gloss1, gloss2, gloss3, pos, common
		FROM entries
		ORDER BY ent_seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dictionary entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			reading    sql.NullString
			g1, g2, g3 sql.NullString
			pos        sql.NullString
			common     sql.NullInt64
		)
		if err := rows.Scan(&e.Sequence, &e.Expression, &reading, &g1, &g2, &g3, &pos, &common); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary row: %w", err)
		}
		e.Reading = reading.String
		for _, g := range []sql.NullString{g1, g2, g3} {
			if g.Valid && g.String != "" {
				e.Glosses = append(e.Glosses, g.String)
			}
		}
		e.PartOfSpeech = pos.String
		e.Common = common.Int64 != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary entries: %w", err)
	}

	return entries, nil
}
