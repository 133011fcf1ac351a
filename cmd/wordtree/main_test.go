package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/wordtree"
	"github.com/pbanos/wordtree/corpus/text"
	"github.com/stretchr/testify/assert"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// writeCorpus writes a corpus where the first word separates the labels
func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		text.WordsFile:          "god\nchip\n",
		text.TrainingDataFile:   "1 1\n2 1\n2 2\n4 2\n",
		text.TrainingLabelsFile: "1\n1\n2\n2\n",
		text.TestingDataFile:    "1 1\n2 2\n",
		text.TestingLabelsFile:  "1\n1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := cliParser()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "wordtree v0.1.0\n", execute(t, "version"))
}

func TestGrow(t *testing.T) {
	dir := writeCorpus(t)
	metricsFile := filepath.Join(t.TempDir(), "metrics.prom")
	out := execute(t, "grow", "-i", dir, "-n", "1", "--progress=false", "--print-tree", "--metrics-file", metricsFile)
	assert.Contains(t, out, "contains god => 1 (2 docs)")
	assert.Contains(t, out, "Training accuracy: 1.000000\n")
	assert.Contains(t, out, "Testing accuracy: 0.500000\n")

	m, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(m), `wordtree_accuracy_ratio{split="testing"} 0.5`)
}

func TestGrowRecursive(t *testing.T) {
	out := execute(t, "grow", "-i", writeCorpus(t), "--strategy", "recursive", "--progress=false")
	assert.True(t, strings.HasPrefix(out, "Training accuracy: 1.000000\n"))
}

func TestGrowFromConfigFile(t *testing.T) {
	dir := writeCorpus(t)
	cfg := filepath.Join(t.TempDir(), "wordtree.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: "+dir+"\nprogress: false\nprint-tree: true\n"), 0o644))
	out := execute(t, "grow", "--config", cfg)
	assert.Contains(t, out, "[0] { god? gain 1.0000, 4 docs }")
}

func TestImportThenGrow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")
	execute(t, "import", "-i", writeCorpus(t), "-o", db)
	out := execute(t, "grow", "-i", db, "--progress=false")
	assert.Equal(t, "Training accuracy: 1.000000\nTesting accuracy: 0.500000\n", out)

	exported := filepath.Join(t.TempDir(), "exported")
	execute(t, "import", "-i", db, "-o", exported)
	words, err := os.ReadFile(filepath.Join(exported, text.WordsFile))
	require.NoError(t, err)
	assert.Equal(t, "god\nchip\n", string(words))
}

func TestGrowOptions(t *testing.T) {
	rcc := &rootCmdConfig{v: viper.New()}
	growCmd(rcc)
	gcc := &growCmdConfig{rcc}
	opts, err := gcc.options()
	require.NoError(t, err)
	assert.Equal(t, 100, opts.MaxNodes)
	assert.Equal(t, wordtree.BestFirst, opts.Strategy)

	rcc.v.Set("max-nodes", 0)
	_, err = gcc.options()
	assert.True(t, errors.Is(err, wordtree.ErrInvalidNodeBudget))

	rcc.v.Set("max-nodes", 5)
	rcc.v.Set("strategy", "random")
	_, err = gcc.options()
	assert.True(t, errors.Is(err, wordtree.ErrUnknownStrategy))
}

func TestLocationKind(t *testing.T) {
	cases := map[string]string{
		"postgresql://localhost/wordtree": kindPostgres,
		"postgres://localhost/wordtree":   kindPostgres,
		"mongodb://localhost/wordtree":    kindMongo,
		"redis://localhost:6379/0":        kindRedis,
		"corpus.db":                       kindSQLite3,
		"corpus/":                         kindText,
		"corpus.yml":                      kindText,
	}
	for location, kind := range cases {
		assert.Equal(t, kind, locationKind(location), location)
	}
}
