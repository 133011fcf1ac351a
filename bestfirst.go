package wordtree

import (
	"context"
	"fmt"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/feature"
	"github.com/pbanos/wordtree/metrics"
	"github.com/pbanos/wordtree/queue"
	"github.com/pbanos/wordtree/tree"
	"go.uber.org/zap"
)

// growBestFirst starts with the whole dataset on a single leaf and splits
// opts.MaxNodes times the leaf whose best split yields the most information
// gain. The first split is therefore the one on the best feature over the
// whole dataset.
func growBestFirst(ctx context.Context, s *dataset.Dataset, opts Options, l *zap.Logger) (*tree.Tree, error) {
	if s.Width() == 0 {
		return nil, ErrNoFeatures
	}
	strategy := opts.Strategy.String()
	b := tree.NewBuilder()
	root := b.Leaf(s.Plurality(), s.Count())
	frontier := queue.NewFrontier(queue.NewTask(root, s))
	for splits := 0; splits < opts.MaxNodes; splits++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos, task, evaluated := frontier.Best()
		metrics.GainEvaluationsTotal.WithLabelValues(strategy).Add(float64(evaluated * s.Width()))
		split := task.BestSplit()
		l.Debug(fmt.Sprintf("adding node %d of %d", splits+1, opts.MaxNodes),
			zap.Int("node", task.NodeID),
			zap.Int("feature", split.Feature),
			zap.Float64("gain", split.Gain),
			zap.Int("documents", task.Dataset.Count()))
		tasks, err := BranchOut(b, task)
		if err != nil {
			return nil, err
		}
		if err = frontier.Replace(pos, tasks...); err != nil {
			return nil, err
		}
		metrics.SplitsTotal.WithLabelValues(strategy).Inc()
		if opts.Progress != nil {
			opts.Progress(splits+1, opts.MaxNodes)
		}
	}
	return b.Tree(root, opts.MaxNodes)
}

/*
BranchOut takes a tree builder and a task for one of its leaves, splits the
leaf on the task's best split and returns the tasks to develop the resulting
children, the one for documents containing the feature first. Each child is
labeled with the plurality label of its branch over the leaf's documents.
*/
func BranchOut(b *tree.Builder, task *queue.Task) ([]*queue.Task, error) {
	split := task.BestSplit()
	p := newPartition(task.Dataset, split.Feature, split.Gain)
	yesLabel, err := task.Dataset.PathPlurality(feature.NewPresenceCriterion(p.Feature))
	if err != nil {
		return nil, fmt.Errorf("branching out node %d: %w", task.NodeID, err)
	}
	noLabel, err := task.Dataset.PathPlurality(feature.NewAbsenceCriterion(p.Feature))
	if err != nil {
		return nil, fmt.Errorf("branching out node %d: %w", task.NodeID, err)
	}
	yes, no, err := b.Split(task.NodeID, p.Feature, p.InformationGain(),
		yesLabel, p.Yes.Count(), noLabel, p.No.Count())
	if err != nil {
		return nil, fmt.Errorf("branching out node %d: %w", task.NodeID, err)
	}
	return []*queue.Task{queue.NewTask(yes, p.Yes), queue.NewTask(no, p.No)}, nil
}
