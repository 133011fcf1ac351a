/*
Package text provides a corpus.Source for corpora stored as plain text files:
a file with a word per line, files with a pair of document and word numbers
per line for the occurrences of each split and files with a label per line
for the documents of each split.
*/
package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/feature/yaml"
	"github.com/pbanos/wordtree/logger"
	"go.uber.org/zap"
)

// Default names of the files of a corpus directory
const (
	WordsFile          = "words.txt"
	TrainingDataFile   = "trainData.txt"
	TrainingLabelsFile = "trainLabel.txt"
	TestingDataFile    = "testData.txt"
	TestingLabelsFile  = "testLabel.txt"
)

/*
Files holds the paths to the files of a text corpus. The testing paths are
optional: a corpus without them has an empty testing split.
*/
type Files struct {
	Words          string `yaml:"words"`
	TrainingData   string `yaml:"training_data"`
	TrainingLabels string `yaml:"training_labels"`
	TestingData    string `yaml:"testing_data,omitempty"`
	TestingLabels  string `yaml:"testing_labels,omitempty"`
}

/*
DefaultFiles takes the path to a directory and returns the Files with the
default file names on it. The testing files are left empty if the testing
data file does not exist.
*/
func DefaultFiles(dir string) Files {
	f := Files{
		Words:          filepath.Join(dir, WordsFile),
		TrainingData:   filepath.Join(dir, TrainingDataFile),
		TrainingLabels: filepath.Join(dir, TrainingLabelsFile),
	}
	if _, err := os.Stat(filepath.Join(dir, TestingDataFile)); err == nil {
		f.TestingData = filepath.Join(dir, TestingDataFile)
		f.TestingLabels = filepath.Join(dir, TestingLabelsFile)
	}
	return f
}

type source struct {
	files Files
}

/*
New takes a path to either a corpus directory or a YAML manifest and returns
a corpus.Source that reads the corpus from the files it names, or an error
if the path cannot be accessed or the manifest cannot be parsed.
*/
func New(path string) (corpus.Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening text corpus: %w", err)
	}
	if info.IsDir() {
		return NewFromFiles(DefaultFiles(path)), nil
	}
	files, err := ReadManifestFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewFromFiles(files), nil
}

// NewFromFiles returns a corpus.Source that reads the given files
func NewFromFiles(files Files) corpus.Source {
	return &source{files}
}

func (s *source) Load(ctx context.Context) (*corpus.Corpus, error) {
	log := logger.FromContext(ctx)
	vocabulary, err := readVocabulary(s.files.Words)
	if err != nil {
		return nil, err
	}
	log.Debug("read vocabulary", zap.String("path", s.files.Words), zap.Int("words", vocabulary.Size()))
	c := &corpus.Corpus{Vocabulary: vocabulary}
	paths := map[string][2]string{
		corpus.Training: {s.files.TrainingData, s.files.TrainingLabels},
		corpus.Testing:  {s.files.TestingData, s.files.TestingLabels},
	}
	for _, name := range corpus.Splits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := paths[name]
		if p[0] == "" && p[1] == "" && name == corpus.Testing {
			continue
		}
		split, _ := c.Split(name)
		if err := readSplit(split, vocabulary.Size(), p[0], p[1]); err != nil {
			return nil, fmt.Errorf("reading %s split: %w", name, err)
		}
		log.Debug("read split", zap.String("split", name), zap.Int("documents", split.Count()))
	}
	return c, nil
}

func readVocabulary(path string) (feature.Vocabulary, error) {
	if ext := filepath.Ext(path); ext == ".yml" || ext == ".yaml" {
		return yaml.ReadVocabularyFromFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	defer f.Close()
	v, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	return v, nil
}

func readSplit(split *corpus.Split, vocabularySize int, dataPath, labelsPath string) error {
	lf, err := os.Open(labelsPath)
	if err != nil {
		return err
	}
	defer lf.Close()
	labels, err := ReadLabels(lf)
	if err != nil {
		return fmt.Errorf("parsing labels %s: %w", labelsPath, err)
	}
	df, err := os.Open(dataPath)
	if err != nil {
		return err
	}
	defer df.Close()
	occurrences, err := ReadOccurrences(df)
	if err != nil {
		return fmt.Errorf("parsing data %s: %w", dataPath, err)
	}
	documents, err := corpus.Sparsify(vocabularySize, len(labels), occurrences)
	if err != nil {
		return err
	}
	split.Documents = documents
	split.Labels = labels
	return nil
}

/*
ReadWords takes an io.Reader and returns the vocabulary formed by the first
token of each non-blank line read from it.
*/
func ReadWords(r io.Reader) (feature.Vocabulary, error) {
	var words feature.Vocabulary
	err := eachLine(r, func(_ int, fields []string) error {
		words = append(words, fields[0])
		return nil
	})
	return words, err
}

/*
ReadLabels takes an io.Reader and returns the labels formed by the first
token of each non-blank line read from it. An error is returned if any of
them is not a valid label.
*/
func ReadLabels(r io.Reader) ([]feature.Label, error) {
	var labels []feature.Label
	err := eachLine(r, func(n int, fields []string) error {
		l := feature.Label(fields[0])
		if err := l.Valid(); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		labels = append(labels, l)
		return nil
	})
	return labels, err
}

/*
ReadOccurrences takes an io.Reader and returns the occurrences formed by
the pair of document and word numbers on each non-blank line read from it.
*/
func ReadOccurrences(r io.Reader) ([]corpus.Occurrence, error) {
	var occurrences []corpus.Occurrence
	err := eachLine(r, func(n int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected document and word numbers, got %q", n, strings.Join(fields, " "))
		}
		d, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: document number: %w", n, err)
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("line %d: word number: %w", n, err)
		}
		occurrences = append(occurrences, corpus.Occurrence{Document: d, Word: w})
		return nil
	})
	return occurrences, err
}

func eachLine(r io.Reader, lambda func(int, []string) error) error {
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := lambda(n, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}
