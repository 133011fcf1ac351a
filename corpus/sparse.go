package corpus

import (
	"fmt"

	"github.com/pbanos/wordtree/feature"
)

/*
Occurrence represents the appearance of a word in a document, both
identified by their 1-based position.
*/
type Occurrence struct {
	Document int
	Word     int
}

/*
Sparsify takes a vocabulary size, a document count and a list of
occurrences and returns the documents they describe, each one with a flag
for every word in the vocabulary. Repeated occurrences are allowed. An error
is returned if an occurrence falls out of the given bounds.
*/
func Sparsify(vocabularySize, documentCount int, occurrences []Occurrence) ([]feature.Document, error) {
	documents := make([]feature.Document, documentCount)
	for i := range documents {
		documents[i] = make(feature.Document, vocabularySize)
	}
	for _, o := range occurrences {
		if o.Document < 1 || o.Document > documentCount {
			return nil, fmt.Errorf("occurrence of word %d in document %d: document out of range 1-%d", o.Word, o.Document, documentCount)
		}
		if o.Word < 1 || o.Word > vocabularySize {
			return nil, fmt.Errorf("occurrence of word %d in document %d: word out of range 1-%d", o.Word, o.Document, vocabularySize)
		}
		documents[o.Document-1][o.Word-1] = true
	}
	return documents, nil
}

/*
Occurrences takes a list of documents and returns the occurrences of words
in them, ordered by document and word.
*/
func Occurrences(documents []feature.Document) []Occurrence {
	var result []Occurrence
	for i, d := range documents {
		for w, present := range d {
			if present {
				result = append(result, Occurrence{Document: i + 1, Word: w + 1})
			}
		}
	}
	return result
}
