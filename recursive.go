package wordtree

import (
	"context"
	"fmt"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/metrics"
	"github.com/pbanos/wordtree/tree"
	"go.uber.org/zap"
)

// recursion holds the state shared by every step of a recursive growth: the
// nodes counted against the budget and the features already split on
// anywhere in the tree.
type recursion struct {
	builder   *tree.Builder
	opts      Options
	nodes     int
	used      []bool
	usedCount int
	l         *zap.Logger
}

// growRecursive develops the tree depth-first, no branch first. The node
// count starts at 1 for the root.
func growRecursive(ctx context.Context, s *dataset.Dataset, opts Options, l *zap.Logger) (*tree.Tree, error) {
	r := &recursion{
		builder: tree.NewBuilder(),
		opts:    opts,
		nodes:   1,
		used:    make([]bool, s.Width()),
		l:       l,
	}
	root, err := r.develop(ctx, s, s)
	if err != nil {
		return nil, err
	}
	return r.builder.Tree(root, opts.MaxNodes)
}

// develop builds the subtree for the documents in s, whose parent node had
// the documents in parent, and returns the ID of its root. Once the budget is
// spent every leaf, empty ones included, takes the plurality of its own
// documents.
func (r *recursion) develop(ctx context.Context, s, parent *dataset.Dataset) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if r.nodes >= r.opts.MaxNodes {
		return r.builder.Leaf(s.Plurality(), s.Count()), nil
	}
	if s.Count() == 0 {
		return r.builder.Leaf(parent.Plurality(), 0), nil
	}
	if label, ok := s.Uniform(); ok {
		return r.builder.Leaf(label, s.Count()), nil
	}
	f, gain, ok := s.BestFeature(r.isUsed)
	metrics.GainEvaluationsTotal.WithLabelValues(r.opts.Strategy.String()).Add(float64(len(r.used) - r.usedCount))
	if !ok {
		r.l.Debug("no unused features left", zap.Int("documents", s.Count()))
		return r.builder.Leaf(s.Plurality(), s.Count()), nil
	}
	r.used[f] = true
	r.usedCount++
	r.nodes++
	r.l.Debug(fmt.Sprintf("adding node %d of %d", r.nodes, r.opts.MaxNodes),
		zap.Int("feature", f),
		zap.Float64("gain", gain),
		zap.Int("documents", s.Count()))
	metrics.SplitsTotal.WithLabelValues(r.opts.Strategy.String()).Inc()
	if r.opts.Progress != nil {
		r.opts.Progress(r.nodes-1, r.opts.MaxNodes)
	}
	p := newPartition(s, f, gain)
	no, err := r.develop(ctx, p.No, s)
	if err != nil {
		return 0, err
	}
	yes, err := r.develop(ctx, p.Yes, s)
	if err != nil {
		return 0, err
	}
	return r.builder.Decision(f, p.InformationGain(), yes, no)
}

func (r *recursion) isUsed(f int) bool {
	return r.used[f]
}
