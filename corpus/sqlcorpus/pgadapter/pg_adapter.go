/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlcorpus package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	"github.com/pbanos/wordtree/corpus/sqlcorpus"
)

var dialect = sqlcorpus.Dialect{
	CreateStatements: []string{
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			word TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS labels (
			split VARCHAR(16) NOT NULL,
			document INTEGER NOT NULL,
			label VARCHAR(1) NOT NULL,
			PRIMARY KEY (split, document))`,
		`CREATE TABLE IF NOT EXISTS occurrences (
			split VARCHAR(16) NOT NULL,
			document INTEGER NOT NULL,
			word INTEGER NOT NULL REFERENCES words(id))`,
		`CREATE INDEX IF NOT EXISTS occurrences_split ON occurrences (split, document)`,
	},
	Placeholder: sqlcorpus.Dollar,
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlcorpus.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return sqlcorpus.NewAdapter(db, dialect), nil
}
