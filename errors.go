package wordtree

import "errors"

var (
	// ErrInvalidNodeBudget indicates a node budget below 1.
	ErrInvalidNodeBudget = errors.New("wordtree: node budget must be a positive integer")
	// ErrNoFeatures indicates best-first growth over documents without features.
	ErrNoFeatures = errors.New("wordtree: documents have no features to split on")
	// ErrUnknownStrategy indicates a strategy other than best-first or recursive.
	ErrUnknownStrategy = errors.New("wordtree: unknown growth strategy")
)
