/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlcorpus package that works
over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/wordtree/corpus/sqlcorpus"
)

var dialect = sqlcorpus.Dialect{
	CreateStatements: []string{
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			word TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS labels (
			split TEXT NOT NULL,
			document INTEGER NOT NULL,
			label TEXT NOT NULL,
			PRIMARY KEY (split, document))`,
		`CREATE TABLE IF NOT EXISTS occurrences (
			split TEXT NOT NULL,
			document INTEGER NOT NULL,
			word INTEGER NOT NULL REFERENCES words(id))`,
		`CREATE INDEX IF NOT EXISTS occurrences_split ON occurrences (split, document)`,
	},
	Placeholder: sqlcorpus.QuestionMark,
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqlcorpus.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return sqlcorpus.NewAdapter(db, dialect), nil
}
