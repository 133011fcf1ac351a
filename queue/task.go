package queue

import (
	"fmt"

	"github.com/pbanos/wordtree/dataset"
)

// Task represents a leaf to be developed on a growing tree.
type Task struct {
	// The ID of the leaf on the tree builder
	NodeID int
	// The dataset of training documents that
	// reached the leaf
	Dataset *dataset.Dataset
	// The best split for the leaf once evaluated
	split *Split
}

// Split is the best feature to split a leaf on and
// the information gain it yields.
type Split struct {
	Feature int
	Gain    float64
}

// NewTask takes the ID of a leaf and the dataset that reached
// it and returns a task to develop it.
func NewTask(nodeID int, s *dataset.Dataset) *Task {
	return &Task{NodeID: nodeID, Dataset: s}
}

// Evaluated returns whether the best split for the
// task has already been computed.
func (t *Task) Evaluated() bool {
	return t.split != nil
}

// Evaluate computes the best split for the task's
// dataset unless already computed, and returns
// whether it had to be computed. A leaf's dataset
// does not change, so the result holds for the whole
// life of the task.
func (t *Task) Evaluate() bool {
	if t.split != nil {
		return false
	}
	f, gain, _ := t.Dataset.BestFeature(nil)
	t.split = &Split{Feature: f, Gain: gain}
	return true
}

// BestSplit returns the best split for the task,
// evaluating it first if necessary.
func (t *Task) BestSplit() Split {
	t.Evaluate()
	return *t.split
}

func (t *Task) String() string {
	if t.split == nil {
		return fmt.Sprintf("{Task %d}", t.NodeID)
	}
	return fmt.Sprintf("{Task %d: feature %d gain %f}", t.NodeID, t.split.Feature, t.split.Gain)
}
