package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/wordtree/feature"
)

// Tree represents a binary decision tree over document features. Its nodes
// are kept in an arena indexed by node ID, with the root at ID 0 and the
// rest numbered in depth-first order, yes branch first. A Tree is not
// modified once built.
type Tree struct {
	nodes    []Node
	maxNodes int
}

// Root returns the root node of the tree
func (t *Tree) Root() Node {
	return t.nodes[0]
}

// Node returns the node with the given ID and whether it exists
func (t *Tree) Node(id int) (Node, bool) {
	if id < 0 || id >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.nodes)
}

// MaxNodes returns the node budget the tree was grown under
func (t *Tree) MaxNodes() int {
	return t.maxNodes
}

// Decisions returns the number of decision nodes in the tree
func (t *Tree) Decisions() int {
	var count int
	for _, n := range t.nodes {
		if n.Kind == Decision {
			count++
		}
	}
	return count
}

// Leaves returns the leaves of the tree in depth-first order, yes branch first
func (t *Tree) Leaves() []Node {
	var leaves []Node
	t.Traverse(false, func(n Node) error {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return nil
	})
	return leaves
}

// Depth returns the number of decisions on the longest path from the root
// to a leaf
func (t *Tree) Depth() int {
	return t.depth(0)
}

func (t *Tree) depth(id int) int {
	n := t.nodes[id]
	if n.IsLeaf() {
		return 0
	}
	yes, no := t.depth(n.Yes), t.depth(n.No)
	if yes > no {
		return yes + 1
	}
	return no + 1
}

// Classify takes a document and returns the label the tree predicts for it,
// or an error if the document has no flag for a feature the tree asks about.
func (t *Tree) Classify(d feature.Document) (feature.Label, error) {
	n := t.nodes[0]
	for n.Kind == Decision {
		next, err := n.Next(d)
		if err != nil {
			return "", fmt.Errorf("classifying document at node %d: %w", n.ID, err)
		}
		n = t.nodes[next]
	}
	return n.Label, nil
}

/*
Evaluate takes a slice of documents and the slice of their labels and
returns the fraction of documents the tree classifies with their label.
An error is returned if there are no documents, the slices differ in length
or a document cannot be classified.
*/
func (t *Tree) Evaluate(documents []feature.Document, labels []feature.Label) (float64, error) {
	if len(documents) != len(labels) {
		return 0.0, fmt.Errorf("%w: %d documents, %d labels", ErrShapeMismatch, len(documents), len(labels))
	}
	if len(labels) == 0 {
		return 0.0, ErrEmptyDataset
	}
	var correct int
	for i, d := range documents {
		l, err := t.Classify(d)
		if err != nil {
			return 0.0, fmt.Errorf("evaluating document %d: %w", i, err)
		}
		if l == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}

// Traverse takes a bottomup boolean and an error-returning function that
// takes a node and goes through the tree running the function with every
// traversed node, yes branch before no branch.
// Traverse will call the function with a parent node before calling it for
// its children if bottomup is false, and after its children if bottomup is
// true. If the call to the function returns an error, the traversing is
// aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(Node) error) error {
	return t.traverse(0, bottomup, f)
}

func (t *Tree) traverse(id int, bottomup bool, f func(Node) error) error {
	n := t.nodes[id]
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	if n.Kind == Decision {
		for _, c := range []int{n.Yes, n.No} {
			if err := t.traverse(c, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(n)
	}
	return nil
}

func (t *Tree) copyFrom(nodes []Node, id, parentID int) int {
	n := nodes[id]
	n.ID = len(t.nodes)
	n.ParentID = parentID
	t.nodes = append(t.nodes, n)
	if n.Kind == Decision {
		yes := t.copyFrom(nodes, nodes[id].Yes, n.ID)
		no := t.copyFrom(nodes, nodes[id].No, n.ID)
		t.nodes[n.ID].Yes = yes
		t.nodes[n.ID].No = no
	}
	return n.ID
}

func (t *Tree) String() string {
	return t.Format(nil)
}

// Format returns a drawing of the tree naming features with the words in the
// given vocabulary
func (t *Tree) Format(v feature.Vocabulary) string {
	return t.subtreeString(0, "", v)
}

func (t *Tree) subtreeString(id int, criterion string, v feature.Vocabulary) string {
	n := t.nodes[id]
	result := fmt.Sprintf("[%d]", id)
	if criterion != "" {
		result = fmt.Sprintf("%s %s", result, criterion)
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%s => %s (%d docs)\n", result, n.Label, n.Weight)
	}
	result = fmt.Sprintf("%s { %s? gain %.4f, %d docs }\n", result, v.Name(n.Feature), n.Gain, n.Weight)
	children := []struct {
		id        int
		criterion feature.Criterion
	}{
		{n.Yes, feature.NewPresenceCriterion(n.Feature)},
		{n.No, feature.NewAbsenceCriterion(n.Feature)},
	}
	for i, c := range children {
		for j, line := range strings.Split(t.subtreeString(c.id, c.criterion.Describe(v), v), "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
