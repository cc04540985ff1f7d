// Package policy guards against accidentally creating huge files.
package policy

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/hailam/gerf/internal/ports"
)

var (
	// ErrRefused is the parent of every policy refusal.
	ErrRefused = errors.New("refused by size policy")

	// ErrHardCap is returned for sizes above the hard maximum.
	ErrHardCap = fmt.Errorf("%w: size exceeds the maximum filesize", ErrRefused)

	// ErrDeclined is returned when the user does not confirm a large size.
	ErrDeclined = fmt.Errorf("%w: large filesize not confirmed", ErrRefused)
)

// Gate holds the soft warning threshold and the hard maximum.
type Gate struct {
	Warn uint64
	Max  uint64
}

// NewGate returns a Gate, rejecting a maximum below the warning threshold.
func NewGate(warn, maxSize uint64) (Gate, error) {
	if maxSize < warn {
		return Gate{}, errors.Errorf("maximum filesize %s is below the warning threshold %s",
			humanize.IBytes(maxSize), humanize.IBytes(warn))
	}
	return Gate{Warn: warn, Max: maxSize}, nil
}

// Check decides whether a file of size bytes may be generated. Sizes above
// Max are always refused. Sizes above Warn need exceed or a confirmation.
func (g Gate) Check(size uint64, exceed bool, c ports.Confirmer) error {
	if size > g.Max {
		return errors.Wrapf(ErrHardCap, "'%s' is above '%s'",
			humanize.IBytes(size), humanize.IBytes(g.Max))
	}
	if size <= g.Warn || exceed {
		return nil
	}
	if c == nil {
		return errors.Wrapf(ErrDeclined, "'%s' is above '%s'",
			humanize.IBytes(size), humanize.IBytes(g.Warn))
	}

	ok, err := c.Confirm(fmt.Sprintf("Are you sure you want to exceed the default maximum filesize of %s? [y/N]",
		humanize.IBytes(g.Warn)))
	if err != nil {
		return errors.Wrap(err, "could not get a confirmation")
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}
