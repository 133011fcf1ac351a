/*
Package wordtree grows binary decision trees that classify bag-of-words
documents into one of two labels, choosing splitting words greedily by
information gain.

Two growth strategies are available: BestFirst, which repeatedly splits the
leaf whose best split yields the most information gain until a number of
splits is reached, and Recursive, which develops the tree depth-first,
never reusing a feature, until a number of nodes is reached or the labels
at a node are uniform.
*/
package wordtree

import (
	"context"
	"fmt"
	"time"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/logger"
	"github.com/pbanos/wordtree/metrics"
	"github.com/pbanos/wordtree/tree"
	"go.uber.org/zap"
)

// Strategy selects how a tree is grown
type Strategy int

const (
	// BestFirst grows a tree by splitting, as many times as the node budget
	// allows, the leaf whose best split has the highest information gain.
	BestFirst Strategy = iota
	// Recursive grows a tree depth-first, no branch first, never splitting
	// twice on the same feature, until the node budget is consumed.
	Recursive
)

func (s Strategy) String() string {
	switch s {
	case BestFirst:
		return "best-first"
	case Recursive:
		return "recursive"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy takes the name of a strategy and returns it or an error if
// the name is unknown.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "best-first", "bestfirst", "":
		return BestFirst, nil
	case "recursive":
		return Recursive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options holds the configuration for growing a tree
type Options struct {
	// MaxNodes is the node budget. For BestFirst it is the number of
	// splits performed; for Recursive the number of nodes that can be
	// counted, the root included, before remaining leaves are closed.
	MaxNodes int
	// Strategy is the growth strategy, BestFirst by default.
	Strategy Strategy
	// Progress, when not nil, is called after every split with the
	// number of splits done so far and the node budget.
	Progress func(done, total int)
}

/*
BuildTree takes a context, a slice of documents, the slice of their labels,
a node budget and a strategy and returns the tree grown from them, or an
error if the documents and labels do not make up a valid non-empty dataset
or the tree cannot be grown.
*/
func BuildTree(ctx context.Context, documents []feature.Document, labels []feature.Label, maxNodes int, s Strategy) (*tree.Tree, error) {
	ds, err := dataset.New(documents, labels)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	return Grow(ctx, ds, Options{MaxNodes: maxNodes, Strategy: s})
}

/*
Grow takes a context, a dataset and some options and grows a tree on the
dataset according to them. The logger in the context receives the progress
of the growth. An error is returned if the options are invalid, the dataset
is empty or the context is cancelled before the tree is complete; no tree is
returned in that case.
*/
func Grow(ctx context.Context, s *dataset.Dataset, opts Options) (*tree.Tree, error) {
	if opts.MaxNodes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNodeBudget, opts.MaxNodes)
	}
	if s == nil || s.Count() == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	l := logger.FromContext(ctx).With(zap.Stringer("strategy", opts.Strategy))
	l.Info("growing tree",
		zap.Int("documents", s.Count()),
		zap.Int("features", s.Width()),
		zap.Int("max_nodes", opts.MaxNodes))
	start := time.Now()
	var t *tree.Tree
	var err error
	switch opts.Strategy {
	case BestFirst:
		t, err = growBestFirst(ctx, s, opts, l)
	case Recursive:
		t, err = growRecursive(ctx, s, opts, l)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownStrategy, opts.Strategy)
	}
	if err != nil {
		return nil, err
	}
	metrics.GrowDuration.WithLabelValues(opts.Strategy.String()).Observe(time.Since(start).Seconds())
	l.Info("grown tree",
		zap.Int("nodes", t.Len()),
		zap.Int("decisions", t.Decisions()),
		zap.Int("depth", t.Depth()),
		zap.Duration("elapsed", time.Since(start)))
	return t, nil
}
