// Package content produces filler content of an exact byte length.
package content

import (
	"math/rand/v2"
	"runtime"

	"github.com/hailam/gerf/internal/ports"
)

// DefaultPadding closes the gap between the drawn tokens and the target size.
const DefaultPadding = '-'

// Generator draws filler tokens from a vocabulary until a byte budget is met.
// A Generator is not safe for concurrent use.
type Generator struct {
	vocab   Vocabulary
	rng     *rand.Rand
	pad     byte
	workers int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source tokens are drawn with.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}

// WithSeed makes the drawn tokens reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithWorkers sets how many goroutines join the final sequence.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithPadding sets the byte used to pad the sequence to its exact size.
func WithPadding(pad byte) Option {
	return func(g *Generator) {
		g.pad = pad
	}
}

// New returns a Generator drawing from the vocabulary of the given kind.
func New(kind ports.ContentKind, opts ...Option) (*Generator, error) {
	vocab, err := VocabularyFor(kind)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		vocab:   vocab,
		pad:     DefaultPadding,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g, nil
}

// Fill draws tokens until the drawn length reaches target. The length is
// checked one token behind, so the sequence usually overshoots by the last
// token. At most target tokens are drawn.
func (g *Generator) Fill(target uint64) *Sequence {
	s := &Sequence{
		vocab:   g.vocab,
		indices: make([]uint8, 0, g.vocab.capacityHint(target)),
		pad:     g.pad,
	}
	var length uint64
	for i := uint64(0); i < target; i++ {
		if n := len(s.indices); n > 0 {
			length += uint64(len(g.vocab[s.indices[n-1]]))
		}
		if length >= target {
			break
		}
		s.indices = append(s.indices, uint8(g.rng.IntN(len(g.vocab))))
	}
	s.limit = s.tokenLen()
	return s
}

// Sequence returns the exact-size token sequence for target.
func (g *Generator) Sequence(target uint64) *Sequence {
	s := g.Fill(target)
	s.Fit(target)
	return s
}

// Generate returns target bytes of filler content.
func (g *Generator) Generate(target uint64) []byte {
	return ConcatParallel(g.Sequence(target), g.workers)
}
