package dataset

import (
	"math/rand"
	"testing"

	"github.com/pbanos/wordtree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	assert.Equal(t, 0.0, Entropy(0))
	assert.Equal(t, 0.0, Entropy(1))
	assert.InDelta(t, 1.0, Entropy(0.5), 1e-12)
	assert.InDelta(t, 0.811278, Entropy(0.25), 1e-6)
	assert.InDelta(t, Entropy(0.25), Entropy(0.75), 1e-12)
}

func TestInformationGainPerfectSplit(t *testing.T) {
	d := docs([]int{1, 0}, []int{1, 0}, []int{0, 1}, []int{0, 1})
	l := labels("1", "1", "2", "2")
	assert.InDelta(t, 1.0, InformationGain(0, d, l), 1e-12)
	assert.InDelta(t, 1.0, InformationGain(1, d, l), 1e-12)
}

func TestInformationGainUninformativeFeature(t *testing.T) {
	d := docs([]int{1, 1}, []int{1, 1}, []int{1, 0}, []int{1, 0})
	l := labels("1", "1", "2", "2")
	assert.Equal(t, 0.0, InformationGain(0, d, l))
	assert.InDelta(t, 1.0, InformationGain(1, d, l), 1e-12)
}

func TestInformationGainEmpty(t *testing.T) {
	assert.Equal(t, 0.0, InformationGain(3, nil, nil))
	s, err := New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.InformationGain(0))
}

func TestInformationGainMatchesMethod(t *testing.T) {
	d := docs([]int{1, 0, 1}, []int{1, 1, 0}, []int{0, 1, 1}, []int{0, 0, 1}, []int{1, 1, 1})
	l := labels("1", "2", "2", "1", "1")
	s, err := New(d, l)
	require.NoError(t, err)
	for f := 0; f < 3; f++ {
		assert.Equal(t, InformationGain(f, d, l), s.InformationGain(f), "feature %d", f)
	}
	yes, _ := s.Partition(0)
	assert.Equal(t, InformationGain(1, yes.Documents(), yes.Labels()), yes.InformationGain(1))
}

func randomDataset(r *rand.Rand, n, width int) ([]feature.Document, []feature.Label) {
	d := make([]feature.Document, n)
	l := make([]feature.Label, n)
	for i := range d {
		d[i] = make(feature.Document, width)
		for f := range d[i] {
			d[i][f] = r.Intn(2) == 1
		}
		l[i] = feature.LabelOne
		if r.Intn(2) == 1 {
			l[i] = feature.LabelTwo
		}
	}
	return d, l
}

func TestInformationGainPermutationInvariance(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		d, l := randomDataset(r, 1+r.Intn(30), 4)
		for f := 0; f < 4; f++ {
			want := InformationGain(f, d, l)
			pd := append([]feature.Document(nil), d...)
			pl := append([]feature.Label(nil), l...)
			r.Shuffle(len(pd), func(i, j int) {
				pd[i], pd[j] = pd[j], pd[i]
				pl[i], pl[j] = pl[j], pl[i]
			})
			assert.Equal(t, want, InformationGain(f, pd, pl))
		}
	}
}

func TestInformationGainBounds(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		d, l := randomDataset(r, r.Intn(40), 5)
		for f := 0; f < 5; f++ {
			g := InformationGain(f, d, l)
			assert.GreaterOrEqual(t, g, -1e-12)
			assert.LessOrEqual(t, g, 1.0+1e-12)
		}
	}
}

func TestBestFeature(t *testing.T) {
	// features 0 and 2 split perfectly, feature 1 is present everywhere
	d := docs([]int{0, 1, 1}, []int{0, 1, 1}, []int{1, 1, 0}, []int{1, 1, 0})
	s, err := New(d, labels("1", "1", "2", "2"))
	require.NoError(t, err)

	f, gain, ok := s.BestFeature(nil)
	require.True(t, ok)
	assert.Equal(t, 0, f)
	assert.InDelta(t, 1.0, gain, 1e-12)

	f, _, ok = s.BestFeature(func(f int) bool { return f == 0 })
	require.True(t, ok)
	assert.Equal(t, 2, f)

	f, gain, ok = s.BestFeature(func(f int) bool { return f != 1 })
	require.True(t, ok)
	assert.Equal(t, 1, f)
	assert.Equal(t, 0.0, gain)

	_, _, ok = s.BestFeature(func(int) bool { return true })
	assert.False(t, ok)
}

func TestBestFeatureTieBreakIsReproducible(t *testing.T) {
	d := docs([]int{0, 1, 0, 1}, []int{1, 0, 1, 0}, []int{0, 1, 1, 0}, []int{1, 0, 0, 1})
	s, err := New(d, labels("1", "2", "1", "2"))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		f, _, _ := s.BestFeature(nil)
		assert.Equal(t, 0, f)
	}
}
