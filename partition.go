package wordtree

import (
	"github.com/pbanos/wordtree/dataset"
)

/*
Partition represents a partition of a dataset according to the presence of
a feature, with the information gain it yields to predict the label.
*/
type Partition struct {
	Feature         int
	Yes             *dataset.Dataset
	No              *dataset.Dataset
	informationGain float64
}

// newPartition takes a dataset, a feature index and the information gain of
// splitting on it and returns the partition of the dataset on the feature.
func newPartition(s *dataset.Dataset, f int, informationGain float64) *Partition {
	yes, no := s.Partition(f)
	return &Partition{f, yes, no, informationGain}
}

// InformationGain returns the information gain of the partition
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}
