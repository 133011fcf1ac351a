package feature

import "fmt"

/*
Criterion represents a constraint on a document: the presence (or absence)
of a feature. The yes branch of a decision node is reached by documents
satisfying the presence criterion for the node's feature, the no branch by
documents satisfying the absence criterion.
*/
type Criterion struct {
	Feature int
	Present bool
}

/*
NewPresenceCriterion takes a feature index and returns the criterion
satisfied by documents containing it.
*/
func NewPresenceCriterion(f int) Criterion {
	return Criterion{Feature: f, Present: true}
}

/*
NewAbsenceCriterion takes a feature index and returns the criterion
satisfied by documents not containing it.
*/
func NewAbsenceCriterion(f int) Criterion {
	return Criterion{Feature: f}
}

/*
SatisfiedBy receives a document and returns a boolean indicating if the
document satisfies the criterion, or an error if the document has no flag for
the criterion's feature.
*/
func (c Criterion) SatisfiedBy(d Document) (bool, error) {
	if c.Feature < 0 || c.Feature >= len(d) {
		return false, fmt.Errorf("document with %d features has no flag for feature %d", len(d), c.Feature)
	}
	return d[c.Feature] == c.Present, nil
}

/*
Describe returns the criterion as text using the words in the given
vocabulary.
*/
func (c Criterion) Describe(v Vocabulary) string {
	if c.Present {
		return fmt.Sprintf("contains %s", v.Name(c.Feature))
	}
	return fmt.Sprintf("lacks %s", v.Name(c.Feature))
}

func (c Criterion) String() string {
	return c.Describe(nil)
}
