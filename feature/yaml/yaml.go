/*
Package yaml provides methods to parse a feature.Vocabulary
from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/wordtree/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadVocabulary takes a slice of bytes with a vocabulary specification in YML
and returns the vocabulary parsed from it or an error.
The YML is expected to be an object containing a words property whose value
is the list of words, in feature index order.
*/
func ReadVocabulary(md []byte) (feature.Vocabulary, error) {
	metadata := struct {
		Words []interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml vocabulary: %v", err)
	}
	if metadata.Words == nil {
		return nil, fmt.Errorf("vocabulary file has no words")
	}
	words := make(feature.Vocabulary, 0, len(metadata.Words))
	for i, w := range metadata.Words {
		switch w := w.(type) {
		case string:
			words = append(words, w)
		case int, float64, bool:
			words = append(words, fmt.Sprintf("%v", w))
		default:
			return nil, fmt.Errorf("invalid word declaration at position %d of type %T", i, w)
		}
	}
	return words, nil
}

/*
ReadVocabularyFromFile takes a filepath string, reads its contents and uses
ReadVocabulary to parse it and return the vocabulary or an error.
*/
func ReadVocabularyFromFile(filepath string) (feature.Vocabulary, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary yml file %s: %v", filepath, err)
	}
	v, err := ReadVocabulary(md)
	if err != nil {
		err = fmt.Errorf("parsing vocabulary yml file %s: %v", filepath, err)
	}
	return v, err
}
