package sqlcorpus

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/feature"
)

/*
MaxRowInsertionsPerStatement is the maximum number of rows that are added
with a single insert command. Trying to add more will result in making more
insertion commands.
*/
const MaxRowInsertionsPerStatement = 100

/*
Dialect holds what differs between the SQL databases an Adapter can work on:
the statements to create the corpus tables and the placeholder for the nth
(1-based) parameter of a statement.
*/
type Dialect struct {
	CreateStatements []string
	Placeholder      func(n int) string
}

// QuestionMark is a placeholder function returning ? for every parameter
func QuestionMark(int) string {
	return "?"
}

// Dollar is a placeholder function returning $n for the nth parameter
func Dollar(n int) string {
	return fmt.Sprintf("$%d", n)
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

type adapter struct {
	// db is nil for adapters working within a transaction
	db      *sql.DB
	q       queryer
	dialect Dialect
}

/*
NewAdapter takes a database and a dialect and returns an Adapter that
works on the database using the dialect.
*/
func NewAdapter(db *sql.DB, d Dialect) Adapter {
	return &adapter{db, db, d}
}

func (a *adapter) Transaction(ctx context.Context, lambda func(Adapter) error) error {
	if a.db == nil {
		return lambda(a)
	}
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %v", err)
	}
	if err = lambda(&adapter{q: tx, dialect: a.dialect}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rolling back: %v)", err, rerr)
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %v", err)
	}
	return nil
}

func (a *adapter) CreateTables(ctx context.Context) error {
	for _, stmt := range a.dialect.CreateStatements {
		if _, err := a.q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("running table creation statement: %v", err)
		}
	}
	return nil
}

func (a *adapter) ClearCorpus(ctx context.Context) error {
	for _, table := range []string{"occurrences", "labels", "words"} {
		if _, err := a.q.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %v", table, err)
		}
	}
	return nil
}

func (a *adapter) AddWords(ctx context.Context, words []string) (int, error) {
	rows := make([][]interface{}, 0, len(words))
	for i, w := range words {
		rows = append(rows, []interface{}{i + 1, w})
	}
	return a.insert(ctx, "words", []string{"id", "word"}, rows)
}

func (a *adapter) ListWords(ctx context.Context) ([]string, error) {
	var words []string
	err := a.query(ctx, "SELECT word FROM words ORDER BY id", nil, func(rows *sql.Rows) error {
		var w string
		if err := rows.Scan(&w); err != nil {
			return err
		}
		words = append(words, w)
		return nil
	})
	return words, err
}

func (a *adapter) AddLabels(ctx context.Context, split string, labels []feature.Label) (int, error) {
	rows := make([][]interface{}, 0, len(labels))
	for i, l := range labels {
		rows = append(rows, []interface{}{split, i + 1, string(l)})
	}
	return a.insert(ctx, "labels", []string{"split", "document", "label"}, rows)
}

func (a *adapter) ListLabels(ctx context.Context, split string) ([]feature.Label, error) {
	var labels []feature.Label
	stmt := fmt.Sprintf("SELECT label FROM labels WHERE split = %s ORDER BY document", a.dialect.Placeholder(1))
	err := a.query(ctx, stmt, []interface{}{split}, func(rows *sql.Rows) error {
		var l string
		if err := rows.Scan(&l); err != nil {
			return err
		}
		labels = append(labels, feature.Label(l))
		return nil
	})
	return labels, err
}

func (a *adapter) AddOccurrences(ctx context.Context, split string, occurrences []corpus.Occurrence) (int, error) {
	rows := make([][]interface{}, 0, len(occurrences))
	for _, o := range occurrences {
		rows = append(rows, []interface{}{split, o.Document, o.Word})
	}
	return a.insert(ctx, "occurrences", []string{"split", "document", "word"}, rows)
}

func (a *adapter) ListOccurrences(ctx context.Context, split string) ([]corpus.Occurrence, error) {
	var occurrences []corpus.Occurrence
	stmt := fmt.Sprintf("SELECT document, word FROM occurrences WHERE split = %s ORDER BY document, word", a.dialect.Placeholder(1))
	err := a.query(ctx, stmt, []interface{}{split}, func(rows *sql.Rows) error {
		var o corpus.Occurrence
		if err := rows.Scan(&o.Document, &o.Word); err != nil {
			return err
		}
		occurrences = append(occurrences, o)
		return nil
	})
	return occurrences, err
}

func (a *adapter) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *adapter) query(ctx context.Context, stmt string, args []interface{}, lambda func(*sql.Rows) error) error {
	rows, err := a.q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err = lambda(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

/*
insert adds the given rows to the table in chunks of at most
MaxRowInsertionsPerStatement rows, returning the number of rows added.
*/
func (a *adapter) insert(ctx context.Context, table string, columns []string, rows [][]interface{}) (int, error) {
	for chunkStart := 0; chunkStart < len(rows); chunkStart += MaxRowInsertionsPerStatement {
		chunkEnd := chunkStart + MaxRowInsertionsPerStatement
		if chunkEnd > len(rows) {
			chunkEnd = len(rows)
		}
		chunk := rows[chunkStart:chunkEnd]
		var insertStmtBuffer bytes.Buffer
		insertStmtBuffer.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", ")))
		args := make([]interface{}, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if i > 0 {
				insertStmtBuffer.WriteString(", ")
			}
			insertStmtBuffer.WriteString("(")
			for j, v := range row {
				if j > 0 {
					insertStmtBuffer.WriteString(", ")
				}
				args = append(args, v)
				insertStmtBuffer.WriteString(a.dialect.Placeholder(len(args)))
			}
			insertStmtBuffer.WriteString(")")
		}
		if _, err := a.q.ExecContext(ctx, insertStmtBuffer.String(), args...); err != nil {
			return chunkStart, fmt.Errorf("inserting %d rows into %s: %v", len(chunk), table, err)
		}
	}
	return len(rows), nil
}
