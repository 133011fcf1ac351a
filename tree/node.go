package tree

import (
	"fmt"

	"github.com/pbanos/wordtree/feature"
)

// Kind tells leaf nodes apart from decision nodes
type Kind uint8

const (
	// Leaf nodes predict a label
	Leaf Kind = iota
	// Decision nodes ask whether a document contains a feature
	Decision
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Decision:
		return "decision"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

/*
Node is a node of the tree
*/
type Node struct {
	// An ID to identify the node: its index in the tree
	ID int
	// The ID for the parent of the node in the tree, -1 for the root
	ParentID int
	// Whether the node is a leaf or a decision
	Kind Kind
	// The label predicted by a leaf node
	Label feature.Label
	// The feature a decision node asks about
	Feature int
	// The IDs of the nodes under a decision node for documents that
	// contain (Yes) and lack (No) its feature
	Yes, No int
	// The information gain obtained by the split of a decision node
	Gain float64
	// The number of training documents that reached the node
	Weight int
}

// IsLeaf returns whether the node is a leaf
func (n Node) IsLeaf() bool {
	return n.Kind == Leaf
}

/*
Next takes a document and returns the ID of the child of a decision node
the document must move on to, or an error if the document has no flag for
the node's feature.
*/
func (n Node) Next(d feature.Document) (int, error) {
	ok, err := feature.NewPresenceCriterion(n.Feature).SatisfiedBy(d)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDocumentTooShort, err)
	}
	if ok {
		return n.Yes, nil
	}
	return n.No, nil
}
