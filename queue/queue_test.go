package queue

import (
	"testing"

	"github.com/pbanos/wordtree/dataset"
	"github.com/pbanos/wordtree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(t *testing.T, docs []feature.Document, labels ...feature.Label) *dataset.Dataset {
	s, err := dataset.New(docs, labels)
	require.NoError(t, err)
	return s
}

func TestTaskEvaluateIsMemoized(t *testing.T) {
	s := newDataset(t, []feature.Document{{false, true}, {true, true}}, feature.LabelOne, feature.LabelTwo)
	task := NewTask(3, s)
	assert.False(t, task.Evaluated())
	assert.True(t, task.Evaluate())
	assert.True(t, task.Evaluated())
	assert.False(t, task.Evaluate())
	assert.Equal(t, Split{Feature: 0, Gain: 1.0}, task.BestSplit())
	assert.Contains(t, task.String(), "feature 0")
}

func TestFrontierBest(t *testing.T) {
	pure := newDataset(t, []feature.Document{{true}, {false}}, feature.LabelOne, feature.LabelOne)
	mixed := newDataset(t, []feature.Document{{true}, {false}}, feature.LabelOne, feature.LabelTwo)
	f := NewFrontier(NewTask(0, pure), NewTask(1, mixed), NewTask(2, mixed))

	pos, task, evaluated := f.Best()
	assert.Equal(t, 1, pos, "first task with the highest gain")
	assert.Equal(t, 1, task.NodeID)
	assert.Equal(t, 3, evaluated)

	_, _, evaluated = f.Best()
	assert.Equal(t, 0, evaluated, "evaluations are kept across calls")

	pos, task, _ = NewFrontier(NewTask(0, pure), NewTask(1, pure)).Best()
	assert.Equal(t, 0, pos, "ties resolve to the first task")
	assert.Equal(t, 0, task.NodeID)

	pos, task, _ = NewFrontier().Best()
	assert.Equal(t, -1, pos)
	assert.Nil(t, task)
}

func TestFrontierReplace(t *testing.T) {
	s := newDataset(t, []feature.Document{{true}}, feature.LabelOne)
	f := NewFrontier(NewTask(0, s), NewTask(1, s), NewTask(2, s))
	require.NoError(t, f.Replace(1, NewTask(3, s), NewTask(4, s)))

	ids := []int{}
	for _, task := range f.Tasks() {
		ids = append(ids, task.NodeID)
	}
	assert.Equal(t, []int{0, 3, 4, 2}, ids)
	assert.Equal(t, 4, f.Len())
	assert.Error(t, f.Replace(4, NewTask(5, s)))
	assert.Contains(t, f.String(), "{Task 3}")
}
