package movies

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strconv"

	"github.com/Motwg/RandomForest/tree"
)

// Predicate is a test over a Movie.
type Predicate = tree.Predicate[Movie]

// template builds a predicate whose threshold is taken from an anchor
// movie. It reports false when the anchor lacks the attribute.
type template func(anchor Movie, rng *rand.Rand) (Predicate, bool)

var templates = []template{
	budgetAbove,
	revenueAtLeast,
	releasedAfter,
	anyGenre,
	voteCountAbove,
	voteAverageAbove,
	popularityAbove,
	languageIs,
	anyCompany,
	collectionIs,
}

// Generator draws atomic movie predicates for tree growth. Each predicate
// compares one attribute against the value held by a training movie picked
// uniformly from the node, so thresholds always fall inside the data.
type Generator struct {
	mapping tree.Mapping[Movie]
}

// NewGenerator creates a Generator resolving node examples through mapping.
func NewGenerator(mapping tree.Mapping[Movie]) *Generator {
	return &Generator{mapping: mapping}
}

// Predicates implements tree.Generator. The sequence is infinite unless
// the node is empty or its movies are unknown to the mapping.
func (g *Generator) Predicates(node *tree.Node[Movie], rng *rand.Rand) iter.Seq[Predicate] {
	return func(yield func(Predicate) bool) {
		if len(node.Examples) == 0 {
			return
		}
		for {
			ex := node.Examples[rng.IntN(len(node.Examples))]
			anchor, ok := g.mapping.Lookup(ex.ID)
			if !ok {
				return
			}
			p, ok := drawTemplate(anchor, rng)
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// drawTemplate picks one of the templates applicable to anchor.
func drawTemplate(anchor Movie, rng *rand.Rand) (Predicate, bool) {
	applicable := make([]Predicate, 0, len(templates))
	for _, t := range templates {
		if p, ok := t(anchor, rng); ok {
			applicable = append(applicable, p)
		}
	}
	if len(applicable) == 0 {
		return Predicate{}, false
	}
	return applicable[rng.IntN(len(applicable))], true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func budgetAbove(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	b := anchor.Budget
	return Predicate{
		Description: fmt.Sprintf("Budget > %d", b),
		Test:        func(m Movie) bool { return m.Budget > b },
	}, true
}

// revenueAtLeast keeps the anchor itself on the left side.
func revenueAtLeast(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	r := anchor.Revenue
	return Predicate{
		Description: fmt.Sprintf("Revenue > %d", r),
		Test:        func(m Movie) bool { return m.Revenue >= r },
	}, true
}

func releasedAfter(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	year, ok := anchor.ReleaseYear()
	if !ok {
		return Predicate{}, false
	}
	return Predicate{
		Description: fmt.Sprintf("Release after %d year", year),
		Test: func(m Movie) bool {
			y, ok := m.ReleaseYear()
			return ok && y > year
		},
	}, true
}

func anyGenre(anchor Movie, rng *rand.Rand) (Predicate, bool) {
	if len(anchor.Genres) == 0 {
		return Predicate{}, false
	}
	genre := anchor.Genres[rng.IntN(len(anchor.Genres))]
	return Predicate{
		Description: "Any genre = " + genre,
		Test:        func(m Movie) bool { return m.HasGenre(genre) },
	}, true
}

func voteCountAbove(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	c := anchor.VoteCount
	return Predicate{
		Description: "Vote count > " + formatFloat(c),
		Test:        func(m Movie) bool { return m.VoteCount > c },
	}, true
}

func voteAverageAbove(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	a := anchor.VoteAverage
	return Predicate{
		Description: "Vote avg > " + formatFloat(a),
		Test:        func(m Movie) bool { return m.VoteAverage > a },
	}, true
}

func popularityAbove(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	p := anchor.Popularity
	return Predicate{
		Description: "Popularity > " + formatFloat(p),
		Test:        func(m Movie) bool { return m.Popularity > p },
	}, true
}

func languageIs(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	l := anchor.Language
	return Predicate{
		Description: "Language = " + l,
		Test:        func(m Movie) bool { return m.Language == l },
	}, true
}

func anyCompany(anchor Movie, rng *rand.Rand) (Predicate, bool) {
	if len(anchor.Companies) == 0 {
		return Predicate{}, false
	}
	c := anchor.Companies[rng.IntN(len(anchor.Companies))]
	return Predicate{
		Description: "Any prod company = " + c,
		Test:        func(m Movie) bool { return m.HasCompany(c) },
	}, true
}

func collectionIs(anchor Movie, _ *rand.Rand) (Predicate, bool) {
	c := anchor.Collection
	return Predicate{
		Description: "Collection = " + c,
		Test:        func(m Movie) bool { return m.Collection == c },
	}, true
}
