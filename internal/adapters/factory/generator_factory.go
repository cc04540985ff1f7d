package factory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hailam/gerf/internal/adapters/txt"
	"github.com/hailam/gerf/internal/content"
	"github.com/hailam/gerf/internal/ports"
)

// StaticGeneratorFactory provides concrete implementations for FileGenerators.
type StaticGeneratorFactory struct {
	generators map[ports.ContentKind]ports.FileGenerator
}

// NewStaticGeneratorFactory creates a new factory with a generator per
// vocabulary. opts are handed to every generator.
func NewStaticGeneratorFactory(opts ...content.Option) ports.GeneratorFactory {
	return &StaticGeneratorFactory{
		generators: map[ports.ContentKind]ports.FileGenerator{
			ports.ContentKindWords:   txt.New(ports.ContentKindWords, opts...),
			ports.ContentKindNumbers: txt.New(ports.ContentKindNumbers, opts...),
		},
	}
}

// For returns the appropriate FileGenerator for the given ContentKind.
func (f *StaticGeneratorFactory) For(k ports.ContentKind) (ports.FileGenerator, error) {
	gen, ok := f.generators[k]
	if !ok {
		return nil, fmt.Errorf("unsupported content kind: '%s' (supported: %s)", k, f.supported())
	}
	return gen, nil
}

// Kinds returns the content kinds the factory can serve, sorted.
func (f *StaticGeneratorFactory) Kinds() []ports.ContentKind {
	kinds := make([]ports.ContentKind, 0, len(f.generators))
	for k := range f.generators {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func (f *StaticGeneratorFactory) supported() string {
	names := make([]string, 0, len(f.generators))
	for _, k := range f.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
