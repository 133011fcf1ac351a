package tree

import (
	"fmt"

	"github.com/pbanos/wordtree/feature"
)

/*
Builder holds the nodes of a tree while it is being grown. Nodes are
created as leaves and can be turned into decision nodes exactly once, either
bottom-up with Decision or top-down with Split. Trees obtained from the
builder do not change when the builder goes on growing.
*/
type Builder struct {
	nodes []Node
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

/*
Leaf takes a label and the number of training documents it was computed
from and creates a leaf node without parent, returning its ID.
*/
func (b *Builder) Leaf(label feature.Label, weight int) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, ParentID: -1, Kind: Leaf, Label: label, Weight: weight})
	return id
}

/*
Decision takes a feature index, the information gain of splitting on it and
the IDs of two parentless nodes and creates a decision node above them,
returning its ID or an error if the children cannot be adopted.
*/
func (b *Builder) Decision(f int, gain float64, yes, no int) (int, error) {
	for _, c := range []int{yes, no} {
		if c < 0 || c >= len(b.nodes) {
			return 0, fmt.Errorf("adopting node %d: %w", c, ErrUnknownNode)
		}
		if b.nodes[c].ParentID != -1 {
			return 0, fmt.Errorf("adopting node %d: already under node %d", c, b.nodes[c].ParentID)
		}
	}
	if yes == no {
		return 0, fmt.Errorf("adopting node %d as both children", yes)
	}
	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{
		ID:       id,
		ParentID: -1,
		Kind:     Decision,
		Feature:  f,
		Yes:      yes,
		No:       no,
		Gain:     gain,
		Weight:   b.nodes[yes].Weight + b.nodes[no].Weight,
	})
	b.nodes[yes].ParentID = id
	b.nodes[no].ParentID = id
	return id, nil
}

/*
Split takes the ID of a leaf, a feature index, the information gain of
splitting on it and the labels and weights of the children for documents
containing and lacking the feature. It creates both children as leaves and
turns the node into a decision node on the feature, returning the IDs of the
children. An error is returned if the node does not exist or is not a leaf.
*/
func (b *Builder) Split(id, f int, gain float64, yesLabel feature.Label, yesWeight int, noLabel feature.Label, noWeight int) (yes, no int, err error) {
	if id < 0 || id >= len(b.nodes) {
		return 0, 0, fmt.Errorf("splitting node %d: %w", id, ErrUnknownNode)
	}
	if b.nodes[id].Kind != Leaf {
		return 0, 0, fmt.Errorf("splitting node %d: %w", id, ErrNotLeaf)
	}
	yes = b.Leaf(yesLabel, yesWeight)
	no = b.Leaf(noLabel, noWeight)
	b.nodes[yes].ParentID = id
	b.nodes[no].ParentID = id
	n := &b.nodes[id]
	n.Kind = Decision
	n.Label = ""
	n.Feature = f
	n.Gain = gain
	n.Yes = yes
	n.No = no
	return yes, no, nil
}

// Node returns the node with the given ID and whether it exists
func (b *Builder) Node(id int) (Node, bool) {
	if id < 0 || id >= len(b.nodes) {
		return Node{}, false
	}
	return b.nodes[id], true
}

// Len returns the number of nodes created so far
func (b *Builder) Len() int {
	return len(b.nodes)
}

/*
Tree takes the ID of a parentless node and the node budget the tree was
grown under and returns the tree rooted at that node. Only nodes reachable
from the root become part of the tree, renumbered in depth-first order.
*/
func (b *Builder) Tree(root, maxNodes int) (*Tree, error) {
	n, ok := b.Node(root)
	if !ok {
		return nil, fmt.Errorf("building tree from node %d: %w", root, ErrUnknownNode)
	}
	if n.ParentID != -1 {
		return nil, fmt.Errorf("building tree from node %d: node has parent %d", root, n.ParentID)
	}
	t := &Tree{maxNodes: maxNodes}
	t.copyFrom(b.nodes, root, -1)
	return t, nil
}
