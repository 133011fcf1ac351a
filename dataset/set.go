/*
Package dataset pairs documents with their labels and provides the
information gain scoring and plurality labeling that trees are grown with.
*/
package dataset

import (
	"fmt"

	"github.com/pbanos/wordtree/feature"
)

/*
Dataset represents an ordered collection of documents and their labels.

Subsets obtained with SubsetWith or Partition share the documents and labels
of the dataset they come from and only keep the positions of their members,
so a document's label travels with it through every partition and no
document is ever copied or modified.
*/
type Dataset struct {
	documents []feature.Document
	labels    []feature.Label
	positions []int
	width     int
}

/*
New takes a slice of documents and a slice of labels and returns a dataset
pairing them by position, or an error if the slices have different lengths,
the documents do not all have the same length or a label is not valid.
An empty dataset is allowed.
*/
func New(documents []feature.Document, labels []feature.Label) (*Dataset, error) {
	if len(documents) != len(labels) {
		return nil, fmt.Errorf("%w: %d documents, %d labels", ErrShapeMismatch, len(documents), len(labels))
	}
	width := 0
	if len(documents) > 0 {
		width = len(documents[0])
	}
	positions := make([]int, len(documents))
	for i, d := range documents {
		if len(d) != width {
			return nil, fmt.Errorf("%w: document %d has %d features, expected %d", ErrRaggedDocument, i, len(d), width)
		}
		if err := labels[i].Valid(); err != nil {
			return nil, fmt.Errorf("%w: label %d: %v", ErrUnknownLabel, i, err)
		}
		positions[i] = i
	}
	return &Dataset{documents, labels, positions, width}, nil
}

// Count returns the number of documents in the dataset
func (s *Dataset) Count() int {
	return len(s.positions)
}

// Width returns the number of features of every document in the dataset
func (s *Dataset) Width() int {
	return s.width
}

// Document returns the i-th document of the dataset
func (s *Dataset) Document(i int) feature.Document {
	return s.documents[s.positions[i]]
}

// Label returns the label of the i-th document of the dataset
func (s *Dataset) Label(i int) feature.Label {
	return s.labels[s.positions[i]]
}

/*
Positions returns the positions the members of the dataset had on the
dataset originally built with New, in order.
*/
func (s *Dataset) Positions() []int {
	return append([]int(nil), s.positions...)
}

/*
Documents returns a new slice with the documents of the dataset, in order.
*/
func (s *Dataset) Documents() []feature.Document {
	result := make([]feature.Document, len(s.positions))
	for i, p := range s.positions {
		result[i] = s.documents[p]
	}
	return result
}

/*
Labels returns a new slice with the labels of the dataset, in order.
*/
func (s *Dataset) Labels() []feature.Label {
	result := make([]feature.Label, len(s.positions))
	for i, p := range s.positions {
		result[i] = s.labels[p]
	}
	return result
}

/*
CountLabels returns the number of documents labeled LabelOne and the number
of documents with any other label.
*/
func (s *Dataset) CountLabels() (ones, others int) {
	for _, p := range s.positions {
		if s.labels[p] == feature.LabelOne {
			ones++
		} else {
			others++
		}
	}
	return
}

/*
Uniform returns whether every document in the dataset has the same label,
and that label. An empty dataset is not uniform.
*/
func (s *Dataset) Uniform() (feature.Label, bool) {
	if len(s.positions) == 0 {
		return "", false
	}
	l := s.labels[s.positions[0]]
	for _, p := range s.positions[1:] {
		if s.labels[p] != l {
			return "", false
		}
	}
	return l, true
}

/*
SubsetWith takes a criterion and returns the subset of documents satisfying
it, or an error if the criterion's feature is out of the dataset's range.
*/
func (s *Dataset) SubsetWith(c feature.Criterion) (*Dataset, error) {
	if c.Feature < 0 || c.Feature >= s.width {
		return nil, fmt.Errorf("subsetting on feature %d of a dataset with %d features", c.Feature, s.width)
	}
	var positions []int
	for _, p := range s.positions {
		if s.documents[p][c.Feature] == c.Present {
			positions = append(positions, p)
		}
	}
	return s.subset(positions), nil
}

/*
Partition takes a feature index and splits the dataset into the subset of
documents containing the feature and the subset of documents lacking it. The
feature must be in the range of the dataset.
*/
func (s *Dataset) Partition(f int) (yes, no *Dataset) {
	yesPositions := make([]int, 0, len(s.positions))
	var noPositions []int
	for _, p := range s.positions {
		if s.documents[p][f] {
			yesPositions = append(yesPositions, p)
		} else {
			noPositions = append(noPositions, p)
		}
	}
	return s.subset(yesPositions), s.subset(noPositions)
}

func (s *Dataset) subset(positions []int) *Dataset {
	return &Dataset{s.documents, s.labels, positions, s.width}
}
