package utils

import (
	"github.com/hailam/gerf/internal/ports"
	"github.com/hailam/gerf/internal/units"
)

// UnitSizeParser adapts the units.ParseSize function to the ports.SizeParser interface.
type UnitSizeParser struct{}

// NewUnitSizeParser creates a new size parser adapter.
func NewUnitSizeParser() ports.SizeParser {
	return &UnitSizeParser{}
}

// Parse uses units.ParseSize to turn the size argument into bytes.
func (p *UnitSizeParser) Parse(spec string, unit units.Unit) (uint64, error) {
	return units.ParseSize(spec, unit)
}
