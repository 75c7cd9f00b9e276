package movies

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/Motwg/RandomForest/ensemble"
	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/tree"
)

var toyStory = Movie{
	ID:          1,
	Title:       "Toy Story",
	Popularity:  21.9,
	Genres:      []string{"Animation", "Comedy", "Family"},
	VoteAverage: 7.7,
	VoteCount:   5415,
	ReleaseDate: "1995-10-30",
	Revenue:     373554033,
	Budget:      30000000,
	Collection:  "Toy Story Collection",
	Language:    "en",
	Companies:   []string{"Pixar Animation Studios"},
}

var heat = Movie{
	ID:          2,
	Title:       "Heat",
	Popularity:  17.9,
	Genres:      []string{"Action", "Crime", "Drama", "Thriller"},
	VoteAverage: 7.7,
	VoteCount:   1886,
	ReleaseDate: "1995-12-15",
	Revenue:     187436818,
	Budget:      60000000,
	Language:    "en",
	Companies:   []string{"Regency Enterprises", "Forward Pass", "Warner Bros."},
}

var bare = Movie{
	ID:          3,
	Title:       "Bare",
	Popularity:  0.5,
	VoteAverage: 5,
	Language:    "fr",
}

func TestTemplates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		name        string
		build       template
		anchor      Movie
		description string
		matches     []Movie
		misses      []Movie
	}{
		{"budget", budgetAbove, toyStory, "Budget > 30000000", []Movie{heat}, []Movie{toyStory, bare}},
		{"revenue includes anchor", revenueAtLeast, heat, "Revenue > 187436818", []Movie{heat, toyStory}, []Movie{bare}},
		{"release", releasedAfter, Movie{ReleaseDate: "1990-01-01"}, "Release after 1990 year", []Movie{heat, toyStory}, []Movie{bare}},
		{"vote count", voteCountAbove, heat, "Vote count > 1886", []Movie{toyStory}, []Movie{heat, bare}},
		{"vote average", voteAverageAbove, bare, "Vote avg > 5", []Movie{heat, toyStory}, []Movie{bare}},
		{"popularity", popularityAbove, heat, "Popularity > 17.9", []Movie{toyStory}, []Movie{heat, bare}},
		{"language", languageIs, bare, "Language = fr", []Movie{bare}, []Movie{heat, toyStory}},
		{"collection", collectionIs, toyStory, "Collection = Toy Story Collection", []Movie{toyStory}, []Movie{heat, bare}},
		{"company", anyCompany, toyStory, "Any prod company = Pixar Animation Studios", []Movie{toyStory}, []Movie{heat, bare}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.build(tt.anchor, rng)
			if !ok {
				t.Fatal("template not applicable")
			}
			if p.Description != tt.description {
				t.Errorf("Description = %q, want %q", p.Description, tt.description)
			}
			for _, m := range tt.matches {
				if !p.Test(m) {
					t.Errorf("%s should match %s", p.Description, m.Title)
				}
			}
			for _, m := range tt.misses {
				if p.Test(m) {
					t.Errorf("%s should not match %s", p.Description, m.Title)
				}
			}
		})
	}
}

func TestAnyGenrePicksAnchorGenre(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		p, ok := anyGenre(heat, rng)
		if !ok {
			t.Fatal("genre template not applicable")
		}
		genre := strings.TrimPrefix(p.Description, "Any genre = ")
		if !slices.Contains(heat.Genres, genre) {
			t.Errorf("genre %q is not one of the anchor's", genre)
		}
		if !p.Test(heat) {
			t.Error("genre predicate rejects its anchor")
		}
	}
}

func TestTemplatesSkipMissingAttributes(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for name, build := range map[string]template{
		"genre":   anyGenre,
		"company": anyCompany,
		"release": releasedAfter,
	} {
		if _, ok := build(bare, rng); ok {
			t.Errorf("%s template applied to a movie without the attribute", name)
		}
	}
}

func generated(t *testing.T, catalog tree.MapMapping[Movie], ids []int, n int) []string {
	t.Helper()
	examples := make([]tree.Example, len(ids))
	for i, id := range ids {
		examples[i] = tree.Example{ID: id}
	}
	node := tree.NewNode[Movie](examples, 0)
	rng := rand.New(rand.NewPCG(7, 8))

	var out []string
	for p := range NewGenerator(catalog).Predicates(node, rng) {
		out = append(out, p.Description)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestGeneratorCoversEveryTemplate(t *testing.T) {
	catalog := Catalog([]Movie{toyStory, heat})
	descriptions := generated(t, catalog, []int{1, 2}, 500)
	if len(descriptions) != 500 {
		t.Fatalf("generator ended after %d predicates", len(descriptions))
	}

	prefixes := []string{
		"Budget > ", "Revenue > ", "Release after ", "Any genre = ", "Vote count > ",
		"Vote avg > ", "Popularity > ", "Language = ", "Any prod company = ", "Collection = ",
	}
	for _, prefix := range prefixes {
		found := slices.ContainsFunc(descriptions, func(d string) bool {
			return strings.HasPrefix(d, prefix)
		})
		if !found {
			t.Errorf("no predicate starting with %q", prefix)
		}
	}
}

func TestGeneratorSkipsEmptyLists(t *testing.T) {
	catalog := Catalog([]Movie{bare})
	for _, d := range generated(t, catalog, []int{3}, 300) {
		for _, prefix := range []string{"Any genre = ", "Any prod company = ", "Release after "} {
			if strings.HasPrefix(d, prefix) {
				t.Fatalf("generated %q for a movie without that attribute", d)
			}
		}
	}
}

func TestGeneratorStopsOnUnknownMovie(t *testing.T) {
	catalog := Catalog([]Movie{toyStory})
	if got := generated(t, catalog, []int{42}, 10); len(got) != 0 {
		t.Errorf("generated %v for an unknown movie", got)
	}
	if got := generated(t, catalog, nil, 10); len(got) != 0 {
		t.Errorf("generated %v for an empty node", got)
	}
}

func TestForestOnMovies(t *testing.T) {
	var catalogue []Movie
	var ids, rates []int
	for i := range 40 {
		m := Movie{
			ID:          100 + i,
			Budget:      int64(i) * 1000000,
			Revenue:     int64(i) * 3000000,
			Popularity:  float64(i),
			VoteAverage: 5,
			ReleaseDate: "2000-01-01",
			Language:    "en",
		}
		catalogue = append(catalogue, m)
		ids = append(ids, m.ID)
		rates = append(rates, 1+i/10)
	}
	catalog := Catalog(catalogue)
	logger, _ := log.NewTestLogger(log.LevelError)

	forest := ensemble.NewForest(catalog, NewGenerator(catalog),
		ensemble.WithTrees(11), ensemble.WithValidate(4), ensemble.WithRandomState(9),
		ensemble.WithLogger(logger))
	if err := forest.Fit(slices.Values(ids), slices.Values(rates)); err != nil {
		t.Fatal(err)
	}

	preds, err := forest.PredictAll(ids)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range preds {
		if p < 1 || p > 4 {
			t.Errorf("prediction %d for movie %d is outside the training labels", p, ids[i])
		}
	}
	if forest.Stats().N != 4 {
		t.Errorf("Stats().N = %d, want 4", forest.Stats().N)
	}
}
