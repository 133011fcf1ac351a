package text

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/logger"
	"go.uber.org/zap"
)

/*
Write takes a context, a directory and a corpus and writes the corpus files
with their default names into the directory, creating it if needed. The
testing files are only written if the testing split has documents.
*/
func Write(ctx context.Context, dir string, c *corpus.Corpus) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("writing text corpus: %w", err)
	}
	files := DefaultFiles(dir)
	files.TestingData = filepath.Join(dir, TestingDataFile)
	files.TestingLabels = filepath.Join(dir, TestingLabelsFile)
	err := writeLines(files.Words, func(w *bufio.Writer) error {
		for _, word := range c.Vocabulary {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	splits := []struct {
		name         string
		data, labels string
		split        *corpus.Split
	}{
		{corpus.Training, files.TrainingData, files.TrainingLabels, &c.Training},
		{corpus.Testing, files.TestingData, files.TestingLabels, &c.Testing},
	}
	for _, s := range splits {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.name == corpus.Testing && s.split.Count() == 0 {
			continue
		}
		if err := writeSplit(s.split, s.data, s.labels); err != nil {
			return fmt.Errorf("writing %s split: %w", s.name, err)
		}
		logger.FromContext(ctx).Debug("wrote split", zap.String("split", s.name), zap.String("dir", dir))
	}
	return nil
}

func writeSplit(s *corpus.Split, dataPath, labelsPath string) error {
	err := writeLines(labelsPath, func(w *bufio.Writer) error {
		for _, l := range s.Labels {
			if _, err := fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return writeLines(dataPath, func(w *bufio.Writer) error {
		for _, o := range corpus.Occurrences(s.Documents) {
			if _, err := fmt.Fprintf(w, "%d %d\n", o.Document, o.Word); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeLines(path string, lambda func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err = lambda(w); err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
