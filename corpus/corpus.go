/*
Package corpus provides the documents and labels trees are grown and tested
on, loaded from one of several sources, as feature matrices over a shared
vocabulary.
*/
package corpus

import (
	"context"
	"fmt"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/feature"
)

const (
	// Training is the name of the split trees are grown on
	Training = "training"
	// Testing is the name of the split trees are tested against
	Testing = "testing"
)

// Splits lists the names of the splits of a corpus in order
var Splits = []string{Training, Testing}

/*
Split holds a list of documents and the list of their labels.
*/
type Split struct {
	Documents []feature.Document
	Labels    []feature.Label
}

// Count returns the number of documents in the split
func (s *Split) Count() int {
	return len(s.Documents)
}

// Dataset returns a dataset with the documents and labels of the split
func (s *Split) Dataset() (*dataset.Dataset, error) {
	return dataset.New(s.Documents, s.Labels)
}

/*
Corpus represents a vocabulary and the training and testing splits of
documents over it.
*/
type Corpus struct {
	Vocabulary feature.Vocabulary
	Training   Split
	Testing    Split
}

/*
Source is an interface for places a corpus can be loaded from.

Its Load method takes a context that implementations may use to allow
cancelling the operation and returns the corpus or an error.
*/
type Source interface {
	Load(ctx context.Context) (*Corpus, error)
}

/*
Split takes the name of a split and returns a pointer to it on the corpus,
or an error if there is no split with that name.
*/
func (c *Corpus) Split(name string) (*Split, error) {
	switch name {
	case Training:
		return &c.Training, nil
	case Testing:
		return &c.Testing, nil
	}
	return nil, fmt.Errorf("unknown corpus split %q", name)
}

/*
Validate returns an error if any split of the corpus has a different number
of documents and labels, a document whose length differs from the
vocabulary size or an invalid label.
*/
func (c *Corpus) Validate() error {
	for _, name := range Splits {
		s, _ := c.Split(name)
		if len(s.Documents) != len(s.Labels) {
			return fmt.Errorf("%s split: %w: %d documents, %d labels", name, dataset.ErrShapeMismatch, len(s.Documents), len(s.Labels))
		}
		for i, d := range s.Documents {
			if len(d) != c.Vocabulary.Size() {
				return fmt.Errorf("%s split: document %d: %w: %d flags for %d words", name, i, dataset.ErrRaggedDocument, len(d), c.Vocabulary.Size())
			}
			if err := s.Labels[i].Valid(); err != nil {
				return fmt.Errorf("%s split: document %d: %w: %v", name, i, dataset.ErrUnknownLabel, err)
			}
		}
	}
	return nil
}
