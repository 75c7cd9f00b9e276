package tree

import (
	"iter"
	"math/rand/v2"

	"github.com/Motwg/RandomForest/pkg/errors"
)

// Join modes.
const (
	ModeAnd = "and"
	ModeOr  = "or"
)

// Predicate is a named boolean test over a feature object.
type Predicate[F any] struct {
	Description string
	Test        func(F) bool
}

// Join combines two predicates with a logical "and" or "or". Any other mode
// returns an InvalidModeError.
func Join[F any](p1, p2 Predicate[F], mode string) (Predicate[F], error) {
	t1, t2 := p1.Test, p2.Test
	switch mode {
	case ModeAnd:
		return Predicate[F]{
			Description: p1.Description + " and " + p2.Description,
			Test:        func(f F) bool { return t1(f) && t2(f) },
		}, nil
	case ModeOr:
		return Predicate[F]{
			Description: p1.Description + " or " + p2.Description,
			Test:        func(f F) bool { return t1(f) || t2(f) },
		}, nil
	default:
		return Predicate[F]{}, errors.NewInvalidModeError(mode)
	}
}

// Compose draws k predicates from atoms. Each output is, with probability
// 1/2, the next atom unchanged; with probability 1/4 the conjunction of the
// next two atoms; and with probability 1/4 their disjunction. atoms must
// yield at least 2k items, otherwise ErrPredicatesExhausted is returned.
func Compose[F any](atoms iter.Seq[Predicate[F]], k int, rng *rand.Rand) ([]Predicate[F], error) {
	if k <= 0 {
		return nil, nil
	}

	next, stop := iter.Pull(atoms)
	defer stop()
	pull := func() (Predicate[F], error) {
		p, ok := next()
		if !ok {
			return p, errors.WithStack(errors.ErrPredicatesExhausted)
		}
		return p, nil
	}

	out := make([]Predicate[F], 0, k)
	for range k {
		draw := rng.IntN(4)
		if draw > 1 {
			p, err := pull()
			if err != nil {
				return nil, err
			}
			out = append(out, p)
			continue
		}

		mode := ModeOr
		if draw == 1 {
			mode = ModeAnd
		}
		p1, err := pull()
		if err != nil {
			return nil, err
		}
		p2, err := pull()
		if err != nil {
			return nil, err
		}
		joined, err := Join(p1, p2, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, joined)
	}
	return out, nil
}
