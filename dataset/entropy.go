package dataset

import (
	"math"

	"github.com/pbanos/wordtree/feature"
)

/*
Entropy returns the binary entropy in bits of a variable that is true with
probability q: 0 when q is exactly 0 or 1, and
-(q·log2(q) + (1-q)·log2(1-q)) otherwise.
*/
func Entropy(q float64) float64 {
	if q == 0 || q == 1 {
		return 0
	}
	return -(q*math.Log2(q) + (1-q)*math.Log2(1-q))
}

/*
InformationGain takes a feature index, a slice of documents and the slice of
their labels and returns the reduction in label entropy obtained by splitting
the documents on the presence of the feature. Entropy is measured on the
proportion of LabelTwo documents. An empty slice of documents yields 0.

The documents must all have a flag for the feature and the slices must have
the same length.
*/
func InformationGain(f int, documents []feature.Document, labels []feature.Label) float64 {
	var c splitCounts
	for i, d := range documents {
		c.add(d[f], labels[i])
	}
	return c.gain()
}

/*
InformationGain returns the reduction in label entropy obtained by splitting
the dataset on the presence of the feature with the given index.
*/
func (s *Dataset) InformationGain(f int) float64 {
	var c splitCounts
	for _, p := range s.positions {
		c.add(s.documents[p][f], s.labels[p])
	}
	return c.gain()
}

/*
BestFeature returns the index of the feature yielding the maximum
information gain on the dataset together with that gain. Features are
evaluated in ascending index order and the first one reaching the maximum
is kept. Features for which skip returns true are not considered; skip may
be nil. The returned boolean is false when no feature could be evaluated.
*/
func (s *Dataset) BestFeature(skip func(int) bool) (int, float64, bool) {
	best, bestGain, ok := 0, 0.0, false
	for f := 0; f < s.width; f++ {
		if skip != nil && skip(f) {
			continue
		}
		gain := s.InformationGain(f)
		if !ok || gain > bestGain {
			best, bestGain, ok = f, gain, true
		}
	}
	return best, bestGain, ok
}

// splitCounts holds the label counts on each branch of a split
type splitCounts struct {
	// positives (LabelTwo) and negatives on documents containing the feature
	pYes, nYes int
	// positives (LabelTwo) and negatives on documents lacking the feature
	pNo, nNo int
}

func (c *splitCounts) add(present bool, l feature.Label) {
	positive := l == feature.LabelTwo
	switch {
	case present && positive:
		c.pYes++
	case present:
		c.nYes++
	case positive:
		c.pNo++
	default:
		c.nNo++
	}
}

func (c *splitCounts) gain() float64 {
	p := c.pYes + c.pNo
	total := p + c.nYes + c.nNo
	if total == 0 {
		return 0.0
	}
	h := Entropy(float64(p) / float64(total))
	remainder := branchRemainder(c.pYes, c.nYes, total) + branchRemainder(c.pNo, c.nNo, total)
	return h - remainder
}

func branchRemainder(pk, nk, total int) float64 {
	if pk+nk == 0 {
		return 0
	}
	return float64(pk+nk) / float64(total) * Entropy(float64(pk)/float64(pk+nk))
}
