package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/corpus/mongocorpus"
	"github.com/pbanos/wordtree/corpus/rediscorpus"
	"github.com/pbanos/wordtree/corpus/sqlcorpus"
	"github.com/pbanos/wordtree/corpus/sqlcorpus/pgadapter"
	"github.com/pbanos/wordtree/corpus/sqlcorpus/sqlite3adapter"
	"github.com/pbanos/wordtree/corpus/text"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

const (
	kindText     = "text"
	kindSQLite3  = "sqlite3"
	kindPostgres = "postgresql"
	kindMongo    = "mongodb"
	kindRedis    = "redis"
)

/*
locationKind takes the location of a corpus and returns the kind of backend
it points to: a PostgreSQL, MongoDB or redis URL, an SQLite3 (.db) file or
otherwise a text corpus directory or manifest.
*/
func locationKind(location string) string {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return kindPostgres
	case strings.HasPrefix(location, "mongodb://"):
		return kindMongo
	case strings.HasPrefix(location, "redis://"):
		return kindRedis
	case strings.HasSuffix(location, ".db"):
		return kindSQLite3
	}
	return kindText
}

/*
backend holds what is needed to read or write a corpus at a location, and a
function to release it.
*/
type backend struct {
	kind    string
	sql     sqlcorpus.Adapter
	session *mgo.Session
	rc      *redis.Client
	path    string
	close   func() error
}

func (rcc *rootCmdConfig) openBackend(location string) (*backend, error) {
	b := &backend{kind: locationKind(location), path: location, close: func() error { return nil }}
	var err error
	switch b.kind {
	case kindPostgres:
		rcc.Logf("Creating PostgreSQL adapter for url %s...", location)
		b.sql, err = pgadapter.New(location)
		if err == nil {
			b.close = b.sql.Close
		}
	case kindSQLite3:
		rcc.Logf("Creating SQLite3 adapter for file %s...", location)
		b.sql, err = sqlite3adapter.New(location)
		if err == nil {
			b.close = b.sql.Close
		}
	case kindMongo:
		rcc.Logf("Connecting to MongoDB at %s...", location)
		b.session, err = mgo.Dial(location)
		if err == nil {
			b.close = func() error { b.session.Close(); return nil }
		}
	case kindRedis:
		rcc.Logf("Connecting to redis at %s...", location)
		var opts *redis.Options
		opts, err = redis.ParseURL(location)
		if err == nil {
			b.rc = redis.NewClient(opts)
			b.close = b.rc.Close
		}
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s corpus at %s: %v", b.kind, location, err)
	}
	return b, nil
}

func (rcc *rootCmdConfig) source(b *backend) (corpus.Source, error) {
	switch b.kind {
	case kindPostgres, kindSQLite3:
		return sqlcorpus.Open(b.sql), nil
	case kindMongo:
		return mongocorpus.Open(b.session), nil
	case kindRedis:
		return rediscorpus.Open(b.rc, rcc.v.GetString("redis-prefix")), nil
	}
	return text.New(b.path)
}

func (rcc *rootCmdConfig) write(ctx context.Context, b *backend, c *corpus.Corpus) error {
	switch b.kind {
	case kindPostgres, kindSQLite3:
		return sqlcorpus.Write(ctx, b.sql, c)
	case kindMongo:
		return mongocorpus.Write(ctx, b.session, c)
	case kindRedis:
		return rediscorpus.Write(ctx, b.rc, rcc.v.GetString("redis-prefix"), c)
	}
	return text.Write(ctx, b.path, c)
}

/*
loadCorpus takes a context and the location of a corpus and returns the
validated corpus loaded from it.
*/
func (rcc *rootCmdConfig) loadCorpus(ctx context.Context, location string) (*corpus.Corpus, error) {
	b, err := rcc.openBackend(location)
	if err != nil {
		return nil, err
	}
	defer b.close()
	src, err := rcc.source(b)
	if err != nil {
		return nil, err
	}
	rcc.Logf("Loading words, training and testing data from %s...", location)
	c, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus from %s: %v", location, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("loading corpus from %s: %v", location, err)
	}
	rcc.Logf("No. of words: %d", c.Vocabulary.Size())
	rcc.Logf("No. of training documents: %d", c.Training.Count())
	rcc.Logf("No. of test documents: %d", c.Testing.Count())
	return c, nil
}
