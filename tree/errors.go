package tree

// Error represents an error related with trees and their use
type Error string

/*
ErrEmptyDataset is the error returned by Evaluate when given no documents,
as accuracy is undefined for them.
*/
const ErrEmptyDataset = Error("tree: cannot evaluate on an empty dataset")

/*
ErrShapeMismatch is the error returned by Evaluate when the number of
documents and labels differ.
*/
const ErrShapeMismatch = Error("tree: document and label counts differ")

/*
ErrDocumentTooShort is the error returned by Classify when a document has no
flag for a feature the tree asks about.
*/
const ErrDocumentTooShort = Error("tree: document has no flag for split feature")

/*
ErrNotLeaf is the error returned by a Builder when asked to split a node that
is already a decision node.
*/
const ErrNotLeaf = Error("tree: node is not a leaf")

/*
ErrUnknownNode is the error returned by a Builder when given the ID of a
node it does not hold.
*/
const ErrUnknownNode = Error("tree: unknown node")

func (e Error) Error() string {
	return string(e)
}
