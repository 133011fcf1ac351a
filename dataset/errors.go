package dataset

import "errors"

var (
	// ErrShapeMismatch indicates documents and labels of different lengths.
	ErrShapeMismatch = errors.New("dataset: document and label counts differ")
	// ErrRaggedDocument indicates a document whose length differs from the vocabulary size.
	ErrRaggedDocument = errors.New("dataset: document length differs from vocabulary size")
	// ErrUnknownLabel indicates a label other than "1" or "2".
	ErrUnknownLabel = errors.New("dataset: unknown label")
	// ErrEmptyDataset indicates a dataset without documents.
	ErrEmptyDataset = errors.New("dataset: no documents")
)
