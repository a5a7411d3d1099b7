package random

import "math/rand/v2"

// Source yields uniformly distributed integers.
type Source interface {
	// IntN returns a value in [0, n). It may panic if n <= 0.
	IntN(n int) int
}

// New returns a deterministic Source for seed.
//
// The same seed always produces the same sequence, which is what tests and
// the -seed flag rely on.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewFromEntropy returns a Source seeded from crypto/rand along with the
// seed that was drawn.
func NewFromEntropy() (*rand.Rand, int64, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, 0, err
	}
	return New(seed), seed, nil
}

// Fixed is a Source that replays values in order, wrapping around when it
// runs out. Values are reduced modulo n so they always fall in [0, n).
type Fixed []int

// IntN implements Source.
func (f *Fixed) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	if len(*f) == 0 {
		return 0
	}
	v := (*f)[0]
	*f = append((*f)[1:], v)
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
