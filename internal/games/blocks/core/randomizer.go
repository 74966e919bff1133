package core

import (
	"fmt"
	"math/rand"
)

// Randomizer picks the identity of the next piece.
// Implementations never inspect the grid; level is a difficulty hint.
type Randomizer interface {
	Next(level int) Kind
}

// Randomizer policy names accepted by NewRandomizer.
const (
	PolicyUniform  = "uniform"
	PolicyWeighted = "weighted"
)

// NewRandomizer creates a seeded randomizer for the named policy.
// bias is only used by the weighted policy.
func NewRandomizer(policy string, seed int64, bias float64) (Randomizer, error) {
	rng := rand.New(rand.NewSource(seed))
	switch policy {
	case "", PolicyUniform:
		return &Uniform{rng: rng}, nil
	case PolicyWeighted:
		return NewWeighted(rng, bias), nil
	default:
		return nil, fmt.Errorf("core: unknown randomizer policy %q", policy)
	}
}

// Uniform draws every kind with equal probability regardless of level.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform randomizer seeded with seed.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen kind.
func (u *Uniform) Next(int) Kind {
	return Kind(u.rng.Intn(kindCount) + 1)
}

// maxWeightedLevel caps how far the weighted policy keeps skewing.
const maxWeightedLevel = 20

// Weighted raises the share of S and Z pieces as the level grows.
// Each kind keeps a base weight of 1, so nothing is ever starved.
type Weighted struct {
	rng  *rand.Rand
	bias float64 // extra S/Z weight per level above 1
}

// NewWeighted returns a level-biased randomizer. Negative bias is treated as 0.
func NewWeighted(rng *rand.Rand, bias float64) *Weighted {
	if bias < 0 {
		bias = 0
	}
	return &Weighted{rng: rng, bias: bias}
}

// Weights returns the selection weight of every kind at level, in Kinds() order.
func (w *Weighted) Weights(level int) []float64 {
	steps := min(max(level-1, 0), maxWeightedLevel)
	extra := w.bias * float64(steps)

	weights := make([]float64, kindCount)
	for i, k := range Kinds() {
		weights[i] = 1
		if k == KindS || k == KindZ {
			weights[i] += extra
		}
	}
	return weights
}

// Next draws a kind according to Weights(level).
func (w *Weighted) Next(level int) Kind {
	weights := w.Weights(level)
	total := 0.0
	for _, wt := range weights {
		total += wt
	}

	roll := w.rng.Float64() * total
	for i, wt := range weights {
		if roll < wt {
			return Kind(i + 1)
		}
		roll -= wt
	}
	return KindZ
}

// Sequence replays a fixed list of kinds in a cycle. It is a helper for
// tests and scripted boards; NewRandomizer does not offer it by name.
type Sequence struct {
	kinds []Kind
	next  int
}

// NewSequence returns a randomizer that cycles through kinds.
// It panics when kinds is empty or holds an unknown kind.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("core: empty piece sequence")
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic(fmt.Sprintf("core: unknown piece kind %d in sequence", k))
		}
	}
	return &Sequence{kinds: append([]Kind(nil), kinds...)}
}

// Next returns the next kind in the cycle.
func (s *Sequence) Next(int) Kind {
	k := s.kinds[s.next]
	s.next = (s.next + 1) % len(s.kinds)
	return k
}
