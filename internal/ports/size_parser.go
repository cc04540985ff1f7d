package ports

import "github.com/hailam/gerf/internal/units"

// SizeParser parses a size argument (like "10" or "10MB") into bytes.
type SizeParser interface {
	Parse(spec string, unit units.Unit) (uint64, error)
}
