package dataset

import "github.com/pbanos/wordtree/feature"

/*
Plurality returns LabelOne if more documents in the dataset are labeled
LabelOne than otherwise, and LabelTwo in any other case (ties included).
*/
func (s *Dataset) Plurality() feature.Label {
	ones, others := s.CountLabels()
	return plurality(ones, others)
}

/*
PathPlurality takes the criterion of a branch and returns the plurality
label among the documents of the dataset satisfying it, or an error if the
criterion's feature is out of range. Ties resolve to LabelTwo.

It is meant to be called on the subset of a node before splitting it, to
label the child for the given branch.
*/
func (s *Dataset) PathPlurality(c feature.Criterion) (feature.Label, error) {
	branch, err := s.SubsetWith(c)
	if err != nil {
		return "", err
	}
	return branch.Plurality(), nil
}

func plurality(ones, others int) feature.Label {
	if ones > others {
		return feature.LabelOne
	}
	return feature.LabelTwo
}
