package wordtree

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/logger"
	"github.com/pbanos/wordtree/metrics"
	"github.com/pbanos/wordtree/queue"
	"github.com/pbanos/wordtree/tree"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBestFirstSplitCount(t *testing.T) {
	docs, labels := randomData(rand.New(rand.NewSource(5)), 60, 10)
	for _, k := range []int{1, 2, 5, 12} {
		tr, err := BuildTree(context.Background(), docs, labels, k, BestFirst)
		require.NoError(t, err)
		assert.Equal(t, k, tr.Decisions(), "k=%d", k)
		leaves := tr.Leaves()
		assert.Len(t, leaves, k+1, "k=%d", k)
		var weight int
		for _, l := range leaves {
			weight += l.Weight
		}
		assert.Equal(t, len(docs), weight, "every document reaches exactly one leaf")
		assert.Equal(t, len(docs), tr.Root().Weight)
	}
}

func TestBestFirstFrontierPartitionsDataset(t *testing.T) {
	docs, labels := randomData(rand.New(rand.NewSource(9)), 40, 8)
	s, err := dataset.New(docs, labels)
	require.NoError(t, err)

	b := tree.NewBuilder()
	root := b.Leaf(s.Plurality(), s.Count())
	frontier := queue.NewFrontier(queue.NewTask(root, s))
	for k := 1; k <= 6; k++ {
		pos, task, _ := frontier.Best()
		tasks, err := BranchOut(b, task)
		require.NoError(t, err)
		require.NoError(t, frontier.Replace(pos, tasks...))

		var positions []int
		for _, task := range frontier.Tasks() {
			positions = append(positions, task.Dataset.Positions()...)
		}
		sort.Ints(positions)
		want := make([]int, len(docs))
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, positions, "after %d splits", k)
		assert.Equal(t, k+1, frontier.Len())
	}
}

func TestBestFirstLeafLabelsArePathPluralities(t *testing.T) {
	docs, labels := randomData(rand.New(rand.NewSource(13)), 50, 6)
	tr, err := BuildTree(context.Background(), docs, labels, 4, BestFirst)
	require.NoError(t, err)
	ones := make(map[int]int)
	others := make(map[int]int)
	for i, d := range docs {
		id := leafFor(t, tr, d)
		if labels[i] == feature.LabelOne {
			ones[id]++
		} else {
			others[id]++
		}
	}
	for _, l := range tr.Leaves() {
		want := feature.LabelTwo
		if ones[l.ID] > others[l.ID] {
			want = feature.LabelOne
		}
		assert.Equal(t, want, l.Label, "leaf %d", l.ID)
		assert.Equal(t, ones[l.ID]+others[l.ID], l.Weight, "leaf %d", l.ID)
	}
}

// leafFor returns the ID of the leaf the document ends at
func leafFor(t *testing.T, tr *tree.Tree, d feature.Document) int {
	n := tr.Root()
	for !n.IsLeaf() {
		next, err := n.Next(d)
		require.NoError(t, err)
		n, _ = tr.Node(next)
	}
	return n.ID
}

func TestBestFirstAccuracyNeverDecreases(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for round := 0; round < 5; round++ {
		docs, labels := randomData(r, 100, 15)
		previous := 0.0
		for maxNodes := 1; maxNodes <= 20; maxNodes++ {
			tr, err := BuildTree(context.Background(), docs, labels, maxNodes, BestFirst)
			require.NoError(t, err)
			acc, err := tr.Evaluate(docs, labels)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, acc, previous, "round %d max nodes %d", round, maxNodes)
			previous = acc
		}
	}
}

func TestBestFirstReusesFeatures(t *testing.T) {
	// only feature 0 exists, so every split after the first reuses it
	docs, labels := perfectSplitData()
	for i := range docs {
		docs[i] = docs[i][:1]
	}
	tr, err := BuildTree(context.Background(), docs, labels, 3, BestFirst)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Decisions())
	require.NoError(t, tr.Traverse(false, func(n tree.Node) error {
		if !n.IsLeaf() {
			assert.Equal(t, 0, n.Feature)
		}
		return nil
	}))
}

func TestGrowReportsProgress(t *testing.T) {
	docs, labels := randomData(rand.New(rand.NewSource(1)), 30, 5)
	s, err := dataset.New(docs, labels)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.ContextWithLogger(context.Background(), zap.New(core))
	splitsBefore := testutil.ToFloat64(metrics.SplitsTotal.WithLabelValues("best-first"))

	var calls [][2]int
	_, err = Grow(ctx, s, Options{MaxNodes: 4, Progress: func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}})
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}, calls)
	assert.Equal(t, 4, logs.FilterMessageSnippet("adding node").Len())
	assert.Equal(t, 1, logs.FilterMessage("adding node 4 of 4").Len())
	assert.Equal(t, 1, logs.FilterMessage("grown tree").Len())
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.SplitsTotal.WithLabelValues("best-first"))-splitsBefore)
}
