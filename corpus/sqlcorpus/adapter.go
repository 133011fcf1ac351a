package sqlcorpus

import (
	"context"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/feature"
)

/*
Adapter is an interface providing the methods
needed to store a corpus in a database backend.

Words are identified by their 1-based position in the vocabulary and
documents by their 1-based position in their split.
*/
type Adapter interface {
	CreateTables(ctx context.Context) error
	// Transaction runs lambda with an Adapter whose operations belong to a
	// single transaction, committed if lambda returns nil and rolled back
	// otherwise.
	Transaction(ctx context.Context, lambda func(Adapter) error) error
	ClearCorpus(ctx context.Context) error

	AddWords(ctx context.Context, words []string) (int, error)
	ListWords(ctx context.Context) ([]string, error)

	AddLabels(ctx context.Context, split string, labels []feature.Label) (int, error)
	ListLabels(ctx context.Context, split string) ([]feature.Label, error)

	AddOccurrences(ctx context.Context, split string, occurrences []corpus.Occurrence) (int, error)
	ListOccurrences(ctx context.Context, split string) ([]corpus.Occurrence, error)

	Close() error
}
