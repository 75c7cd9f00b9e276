package tree

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Example pairs an entity identifier with its target label. The identifier
// is resolved to a feature object only through a Mapping.
type Example struct {
	ID     int
	Target int
}

// LabelCount is one entry of ClassDistribution.MostCommon.
type LabelCount struct {
	Label int
	Count int
}

// ClassDistribution is the multiset of target labels held by a node.
type ClassDistribution struct {
	counts map[int]int
	order  []int
	total  int
}

// NewClassDistribution counts the targets of examples.
func NewClassDistribution(examples []Example) ClassDistribution {
	d := ClassDistribution{counts: make(map[int]int)}
	for _, ex := range examples {
		d.add(ex.Target)
	}
	return d
}

// DistributionOf counts the given labels.
func DistributionOf(labels ...int) ClassDistribution {
	d := ClassDistribution{counts: make(map[int]int)}
	for _, l := range labels {
		d.add(l)
	}
	return d
}

func (d *ClassDistribution) add(label int) {
	if _, ok := d.counts[label]; !ok {
		d.order = append(d.order, label)
	}
	d.counts[label]++
	d.total++
}

// Count returns the frequency of label.
func (d ClassDistribution) Count(label int) int {
	return d.counts[label]
}

// Total returns the size of the multiset.
func (d ClassDistribution) Total() int {
	return d.total
}

// Labels returns the distinct labels in first-seen order.
func (d ClassDistribution) Labels() []int {
	return slices.Clone(d.order)
}

// MostCommon returns every label with its count, most frequent first.
// Equal counts keep first-seen order.
func (d ClassDistribution) MostCommon() []LabelCount {
	out := make([]LabelCount, 0, len(d.order))
	for _, l := range d.order {
		out = append(out, LabelCount{Label: l, Count: d.counts[l]})
	}
	slices.SortStableFunc(out, func(a, b LabelCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}

// Median returns the median of the multiset. For an even number of labels
// the two middle values are averaged and truncated toward zero. An empty
// distribution reports ok == false.
func (d ClassDistribution) Median() (median int, ok bool) {
	if d.total == 0 {
		return 0, false
	}
	labels := slices.Sorted(slices.Values(d.order))
	lo := d.nth(labels, (d.total-1)/2)
	hi := d.nth(labels, d.total/2)
	return (lo + hi) / 2, true
}

// nth returns the i-th smallest element of the multiset.
func (d ClassDistribution) nth(sorted []int, i int) int {
	seen := 0
	for _, l := range sorted {
		seen += d.counts[l]
		if i < seen {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

// Entropy returns the Shannon entropy of the distribution in bits. Empty and
// single-label distributions have zero entropy.
func (d ClassDistribution) Entropy() float64 {
	if len(d.order) <= 1 {
		return 0
	}
	p := make([]float64, 0, len(d.order))
	for _, l := range d.order {
		p = append(p, float64(d.counts[l])/float64(d.total))
	}
	return stat.Entropy(p) / math.Ln2
}
