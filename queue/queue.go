package queue

import (
	"fmt"
	"strings"
)

// Frontier holds the tasks for the leaves of a growing
// tree in traversal order: when a leaf is split, the
// tasks for its children take its place, the one for
// the yes branch first.
type Frontier struct {
	tasks []*Task
}

// NewFrontier returns a frontier holding the given
// tasks in the given order.
func NewFrontier(tasks ...*Task) *Frontier {
	return &Frontier{tasks: append([]*Task(nil), tasks...)}
}

// Len returns the number of tasks in the frontier
func (f *Frontier) Len() int {
	return len(f.tasks)
}

// Tasks returns the tasks in the frontier in order
func (f *Frontier) Tasks() []*Task {
	return append([]*Task(nil), f.tasks...)
}

// Best evaluates every task that has not been evaluated
// yet and returns the position and the task whose best
// split has the highest information gain, the first one
// in order on ties, along with the number of tasks it
// had to evaluate. It returns -1 and a nil task on an
// empty frontier.
func (f *Frontier) Best() (int, *Task, int) {
	pos, evaluated := -1, 0
	var best *Task
	for i, t := range f.tasks {
		if t.Evaluate() {
			evaluated++
		}
		if best == nil || t.split.Gain > best.split.Gain {
			pos, best = i, t
		}
	}
	return pos, best, evaluated
}

// Replace takes a position in the frontier and a list
// of tasks and puts the tasks in place of the one at
// the position, in order.
func (f *Frontier) Replace(pos int, tasks ...*Task) error {
	if pos < 0 || pos >= len(f.tasks) {
		return fmt.Errorf("replacing task at position %d of a frontier with %d tasks", pos, len(f.tasks))
	}
	result := make([]*Task, 0, len(f.tasks)-1+len(tasks))
	result = append(result, f.tasks[:pos]...)
	result = append(result, tasks...)
	result = append(result, f.tasks[pos+1:]...)
	f.tasks = result
	return nil
}

func (f *Frontier) String() string {
	parts := make([]string, len(f.tasks))
	for i, t := range f.tasks {
		parts[i] = t.String()
	}
	return fmt.Sprintf("{Frontier %s}", strings.Join(parts, " "))
}
