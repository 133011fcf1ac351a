package text

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"
)

/*
ReadManifest takes a YAML document naming the files of a corpus and returns
them, with relative paths resolved against the given base directory.

An example manifest:

	words: vocabulary.txt
	training_data: train/data.txt
	training_labels: train/labels.txt
	testing_data: test/data.txt
	testing_labels: test/labels.txt
*/
func ReadManifest(md []byte, base string) (Files, error) {
	var files Files
	if err := yaml.UnmarshalStrict(md, &files); err != nil {
		return files, fmt.Errorf("parsing corpus manifest: %w", err)
	}
	if files.Words == "" || files.TrainingData == "" || files.TrainingLabels == "" {
		return files, fmt.Errorf("parsing corpus manifest: words, training_data and training_labels are required")
	}
	if (files.TestingData == "") != (files.TestingLabels == "") {
		return files, fmt.Errorf("parsing corpus manifest: testing_data and testing_labels must be given together")
	}
	for _, p := range []*string{&files.Words, &files.TrainingData, &files.TrainingLabels, &files.TestingData, &files.TestingLabels} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
	return files, nil
}

/*
ReadManifestFromFile takes a path to a YAML manifest and returns the Files it
names, resolved against the manifest's directory.
*/
func ReadManifestFromFile(path string) (Files, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return Files{}, fmt.Errorf("reading corpus manifest: %w", err)
	}
	return ReadManifest(md, filepath.Dir(path))
}

/*
WriteManifest returns the YAML document describing the given files.
*/
func WriteManifest(files Files) ([]byte, error) {
	return yaml.Marshal(files)
}
