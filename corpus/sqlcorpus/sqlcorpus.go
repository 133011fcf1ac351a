/*
Package sqlcorpus provides a corpus.Source backed by an SQL database, and the
means to write a corpus into one. Database specifics are handled by an
Adapter, see the sqlite3adapter and pgadapter subpackages.

The corpus is stored in three tables: words, with the vocabulary; labels,
with the label of every document of each split; and occurrences, with a row
for every word appearing in a document.
*/
package sqlcorpus

import (
	"context"
	"fmt"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/logger"
	"go.uber.org/zap"
)

type source struct {
	db Adapter
}

/*
Open takes an Adapter to a database backend and returns a corpus.Source
that loads the corpus stored on it.
*/
func Open(a Adapter) corpus.Source {
	return &source{a}
}

func (s *source) Load(ctx context.Context) (*corpus.Corpus, error) {
	words, err := s.db.ListWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	c := &corpus.Corpus{Vocabulary: feature.Vocabulary(words)}
	for _, name := range corpus.Splits {
		split, _ := c.Split(name)
		labels, err := s.db.ListLabels(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("listing %s labels: %w", name, err)
		}
		occurrences, err := s.db.ListOccurrences(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("listing %s occurrences: %w", name, err)
		}
		documents, err := corpus.Sparsify(len(words), len(labels), occurrences)
		if err != nil {
			return nil, fmt.Errorf("loading %s split: %w", name, err)
		}
		split.Documents, split.Labels = documents, labels
		logger.FromContext(ctx).Debug("loaded split from database", zap.String("split", name), zap.Int("documents", len(labels)))
	}
	return c, nil
}

/*
Write takes a context, an Adapter and a corpus and stores the corpus on the
adapter's database, creating the tables if they do not exist and replacing
any corpus previously stored on them. The replacement happens in a single
transaction: on failure the previous corpus is kept.
*/
func Write(ctx context.Context, a Adapter, c *corpus.Corpus) error {
	if err := a.CreateTables(ctx); err != nil {
		return err
	}
	return a.Transaction(ctx, func(a Adapter) error {
		return write(ctx, a, c)
	})
}

func write(ctx context.Context, a Adapter, c *corpus.Corpus) error {
	if err := a.ClearCorpus(ctx); err != nil {
		return err
	}
	if _, err := a.AddWords(ctx, c.Vocabulary); err != nil {
		return fmt.Errorf("adding words: %w", err)
	}
	for _, name := range corpus.Splits {
		split, _ := c.Split(name)
		if _, err := a.AddLabels(ctx, name, split.Labels); err != nil {
			return fmt.Errorf("adding %s labels: %w", name, err)
		}
		n, err := a.AddOccurrences(ctx, name, corpus.Occurrences(split.Documents))
		if err != nil {
			return fmt.Errorf("adding %s occurrences: %w", name, err)
		}
		logger.FromContext(ctx).Debug("wrote split to database", zap.String("split", name), zap.Int("documents", split.Count()), zap.Int("occurrences", n))
	}
	return nil
}
