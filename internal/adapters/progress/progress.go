// Package progress shows a spinner while large files are generated.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/hailam/gerf/internal/ports"
)

// SpinnerFactory decorates every generator of the wrapped factory with a
// spinner for sizes above a threshold.
type SpinnerFactory struct {
	inner     ports.GeneratorFactory
	out       io.Writer
	threshold uint64
	enabled   bool
}

// NewSpinnerFactory wraps inner. The spinner is drawn on out and only when out
// is a terminal.
func NewSpinnerFactory(inner ports.GeneratorFactory, out io.Writer, threshold uint64) ports.GeneratorFactory {
	enabled := false
	if f, ok := out.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return &SpinnerFactory{inner: inner, out: out, threshold: threshold, enabled: enabled}
}

// For returns the wrapped generator for k.
func (f *SpinnerFactory) For(k ports.ContentKind) (ports.FileGenerator, error) {
	gen, err := f.inner.For(k)
	if err != nil {
		return nil, err
	}
	return &spinnerGenerator{inner: gen, factory: f}, nil
}

type spinnerGenerator struct {
	inner   ports.FileGenerator
	factory *SpinnerFactory
}

func (g *spinnerGenerator) Generate(outPath string, sizeBytes uint64) error {
	if g.factory.enabled && sizeBytes > g.factory.threshold {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(g.factory.out))
		s.Suffix = " generating " + humanize.IBytes(sizeBytes) + " of content"
		s.Start()
		defer s.Stop()
	}
	return g.inner.Generate(outPath, sizeBytes)
}
