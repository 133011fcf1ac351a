package wordtree

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{BestFirst, Recursive}

func perfectSplitData() ([]feature.Document, []feature.Label) {
	return []feature.Document{{true, false}, {true, false}, {false, true}, {false, true}},
		[]feature.Label{"1", "1", "2", "2"}
}

func randomData(r *rand.Rand, n, width int) ([]feature.Document, []feature.Label) {
	docs := make([]feature.Document, n)
	labels := make([]feature.Label, n)
	for i := range docs {
		docs[i] = make(feature.Document, width)
		for f := range docs[i] {
			docs[i][f] = r.Intn(3) == 0
		}
		// the label depends loosely on the first features
		score := 0
		for f := 0; f < 3 && f < width; f++ {
			if docs[i][f] {
				score++
			}
		}
		labels[i] = feature.LabelOne
		if score+r.Intn(2) >= 2 {
			labels[i] = feature.LabelTwo
		}
	}
	return docs, labels
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("best-first")
	require.NoError(t, err)
	assert.Equal(t, BestFirst, s)
	s, err = ParseStrategy("recursive")
	require.NoError(t, err)
	assert.Equal(t, Recursive, s)
	_, err = ParseStrategy("greedy")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
	assert.Equal(t, "recursive", Recursive.String())
}

func TestBuildTreeErrors(t *testing.T) {
	ctx := context.Background()
	docs, labels := perfectSplitData()
	cases := []struct {
		name     string
		docs     []feature.Document
		labels   []feature.Label
		maxNodes int
		strategy Strategy
		err      error
	}{
		{"ShapeMismatch", docs, labels[:3], 3, BestFirst, dataset.ErrShapeMismatch},
		{"Empty", nil, nil, 3, Recursive, dataset.ErrEmptyDataset},
		{"ZeroBudget", docs, labels, 0, BestFirst, ErrInvalidNodeBudget},
		{"NoFeatures", []feature.Document{{}, {}}, labels[:2], 1, BestFirst, ErrNoFeatures},
		{"UnknownStrategy", docs, labels, 3, Strategy(9), ErrUnknownStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := BuildTree(ctx, tc.docs, tc.labels, tc.maxNodes, tc.strategy)
			assert.Nil(t, tr)
			if !errors.Is(err, tc.err) {
				t.Errorf("BuildTree() error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestGrowNilDataset(t *testing.T) {
	for _, s := range strategies {
		tr, err := Grow(context.Background(), nil, Options{MaxNodes: 3, Strategy: s})
		assert.Nil(t, tr)
		assert.True(t, errors.Is(err, dataset.ErrEmptyDataset), "%v: %v", s, err)
	}
}

func TestBuildTreeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	docs, labels := perfectSplitData()
	for _, s := range strategies {
		tr, err := BuildTree(ctx, docs, labels, 5, s)
		assert.Nil(t, tr)
		assert.True(t, errors.Is(err, context.Canceled), "%v: %v", s, err)
	}
}

func TestPerfectSplitScenario(t *testing.T) {
	docs, labels := perfectSplitData()
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			tr, err := BuildTree(context.Background(), docs, labels, 2, s)
			require.NoError(t, err)
			root := tr.Root()
			require.Equal(t, tree.Decision, root.Kind)
			assert.Equal(t, 0, root.Feature)
			assert.InDelta(t, 1.0, root.Gain, 1e-12)

			acc, err := tr.Evaluate(docs, labels)
			require.NoError(t, err)
			assert.Equal(t, 1.0, acc)
		})
	}
}

func TestUninformativeFeatureIsNeverChosen(t *testing.T) {
	// feature 0 is in every document, feature 1 separates the labels
	docs := []feature.Document{{true, true}, {true, true}, {true, false}, {true, false}, {true, true}}
	labels := []feature.Label{"1", "1", "2", "2", "1"}
	budgets := map[Strategy]int{BestFirst: 1, Recursive: 3}
	for s, maxNodes := range budgets {
		t.Run(s.String(), func(t *testing.T) {
			tr, err := BuildTree(context.Background(), docs, labels, maxNodes, s)
			require.NoError(t, err)
			assert.Equal(t, 1, tr.Decisions())
			assert.Equal(t, 1, tr.Root().Feature)
			acc, err := tr.Evaluate(docs, labels)
			require.NoError(t, err)
			assert.Equal(t, 1.0, acc)
		})
	}
}

func TestTieBreakPrefersLowerIndex(t *testing.T) {
	// features 1 and 2 are identical, feature 0 is noise
	docs := []feature.Document{
		{true, true, true},
		{false, true, true},
		{true, false, false},
		{false, false, false},
		{true, true, true},
	}
	labels := []feature.Label{"1", "1", "2", "2", "2"}
	for _, s := range strategies {
		for run := 0; run < 5; run++ {
			tr, err := BuildTree(context.Background(), docs, labels, 2, s)
			require.NoError(t, err)
			assert.Equal(t, 1, tr.Root().Feature, "%v run %d", s, run)
		}
	}
}

func TestRecursiveUniformLabels(t *testing.T) {
	docs := []feature.Document{{true, false}, {false, true}, {true, true}}
	labels := []feature.Label{"2", "2", "2"}
	for _, maxNodes := range []int{1, 10} {
		tr, err := BuildTree(context.Background(), docs, labels, maxNodes, Recursive)
		require.NoError(t, err)
		assert.Equal(t, 1, tr.Len())
		assert.Equal(t, 0, tr.Decisions())
		assert.Equal(t, tree.Leaf, tr.Root().Kind)
		assert.Equal(t, feature.LabelTwo, tr.Root().Label)
	}
}

func TestRecursiveBudget(t *testing.T) {
	docs, labels := randomData(rand.New(rand.NewSource(3)), 80, 12)
	for _, maxNodes := range []int{1, 2, 4, 8} {
		tr, err := BuildTree(context.Background(), docs, labels, maxNodes, Recursive)
		require.NoError(t, err)
		assert.LessOrEqual(t, tr.Decisions(), maxNodes-1)
		assert.Equal(t, tr.Decisions()+1, len(tr.Leaves()))
		assert.Equal(t, maxNodes, tr.MaxNodes())
	}
}
