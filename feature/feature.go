/*
Package feature defines the binary bag-of-words representation trees are
grown from: documents as presence flags over a vocabulary, and the two class
labels they are paired with.
*/
package feature

import (
	"fmt"
	"strings"
)

/*
Label is the class a document belongs to. Only LabelOne and LabelTwo are
valid values.
*/
type Label string

const (
	// LabelOne is the class "1"
	LabelOne = Label("1")
	// LabelTwo is the class "2", the reference class when computing entropy
	LabelTwo = Label("2")
)

/*
Valid returns an error if the label is neither LabelOne nor LabelTwo
*/
func (l Label) Valid() error {
	if l != LabelOne && l != LabelTwo {
		return fmt.Errorf("unknown label %q", string(l))
	}
	return nil
}

func (l Label) String() string {
	return string(l)
}

/*
Document represents a text as the presence or absence of every word in a
vocabulary. The flag at index i is true when the document contains word i.
*/
type Document []bool

/*
NewDocument takes a slice of 0/1 flags and returns the document they
describe or an error if any flag is not 0 or 1.
*/
func NewDocument(flags ...int) (Document, error) {
	d := make(Document, len(flags))
	for i, f := range flags {
		switch f {
		case 0:
		case 1:
			d[i] = true
		default:
			return nil, fmt.Errorf("flag %d for feature %d is not binary", f, i)
		}
	}
	return d, nil
}

/*
Has returns whether the document contains the feature with the given index.
Indexes outside the document are reported as absent.
*/
func (d Document) Has(f int) bool {
	return f >= 0 && f < len(d) && d[f]
}

// Len returns the number of features the document has flags for
func (d Document) Len() int {
	return len(d)
}

func (d Document) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}

/*
Vocabulary holds the word for every feature index.
*/
type Vocabulary []string

/*
Name returns the word for the given feature index, or a placeholder naming
the index when the vocabulary does not cover it.
*/
func (v Vocabulary) Name(f int) string {
	if f >= 0 && f < len(v) {
		return v[f]
	}
	return fmt.Sprintf("#%d", f)
}

// Size returns the number of words in the vocabulary
func (v Vocabulary) Size() int {
	return len(v)
}
