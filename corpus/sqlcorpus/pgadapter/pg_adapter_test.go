package pgadapter

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/wordtree/corpus"
	"github.com/pbanos/wordtree/corpus/sqlcorpus"
	"github.com/pbanos/wordtree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenLoad(t *testing.T) {
	url := os.Getenv("WORDTREE_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("WORDTREE_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()
	a, err := New(url)
	require.NoError(t, err)
	defer a.Close()
	c := &corpus.Corpus{
		Vocabulary: feature.Vocabulary{"god", "chip"},
		Training: corpus.Split{
			Documents: []feature.Document{{true, false}, {false, true}},
			Labels:    []feature.Label{"1", "2"},
		},
		Testing: corpus.Split{
			Documents: []feature.Document{{true, true}},
			Labels:    []feature.Label{"1"},
		},
	}
	require.NoError(t, sqlcorpus.Write(ctx, a, c))
	got, err := sqlcorpus.Open(a).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
