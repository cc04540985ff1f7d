package txt

import (
	"os"

	"github.com/pkg/errors"

	"github.com/hailam/gerf/internal/content"
	"github.com/hailam/gerf/internal/ports"
)

// TxtGenerator writes plain-text filler drawn from one vocabulary.
type TxtGenerator struct {
	kind ports.ContentKind
	opts []content.Option
}

// New returns a generator for kind. The options are passed to every
// content.Generator it creates.
func New(kind ports.ContentKind, opts ...content.Option) ports.FileGenerator {
	return &TxtGenerator{kind: kind, opts: opts}
}

// Generate writes exactly size bytes of filler to path, replacing any
// existing content. The file carries no header or trailer.
func (g *TxtGenerator) Generate(path string, size uint64) error {
	gen, err := content.New(g.kind, g.opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, gen.Generate(size), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
