// Package units converts a magnitude and a unit into a byte count.
package units

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unit is a power-of-1024 size unit.
type Unit int

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
)

// ErrInvalidSize is returned for any size input that cannot be turned into a
// byte count.
var ErrInvalidSize = errors.New("invalid size")

var unitNames = map[Unit]string{
	Byte:     "B",
	Kilobyte: "KB",
	Megabyte: "MB",
	Gigabyte: "GB",
	Terabyte: "TB",
}

// suffixes maps accepted size suffixes to their unit.
var suffixes = map[string]Unit{
	"B": Byte,
	"K": Kilobyte, "KB": Kilobyte,
	"M": Megabyte, "MB": Megabyte,
	"G": Gigabyte, "GB": Gigabyte,
	"T": Terabyte, "TB": Terabyte,
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

var multipliers = [...]uint64{
	Byte:     1,
	Kilobyte: 1 << 10,
	Megabyte: 1 << 20,
	Gigabyte: 1 << 30,
	Terabyte: 1 << 40,
}

// Valid reports whether u is one of Byte through Terabyte.
func (u Unit) Valid() bool {
	return u >= Byte && int(u) < len(multipliers)
}

// Multiplier returns 1024^k for the k-th unit and 0 for an invalid unit.
func (u Unit) Multiplier() uint64 {
	if !u.Valid() {
		return 0
	}
	return multipliers[u]
}

// Normalize returns magnitude expressed in bytes. Results that do not fit in
// a uint64 saturate at math.MaxUint64. An invalid unit yields 0.
func Normalize(magnitude uint64, unit Unit) uint64 {
	hi, lo := bits.Mul64(magnitude, unit.Multiplier())
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// UnitFromFlags picks the unit selected by at most one of the given flags.
// No flag set means Byte.
func UnitFromFlags(kb, mb, gb, tb bool) (Unit, error) {
	unit := Byte
	set := 0
	for u, on := range map[Unit]bool{Kilobyte: kb, Megabyte: mb, Gigabyte: gb, Terabyte: tb} {
		if on {
			unit = u
			set++
		}
	}
	if set > 1 {
		return Byte, errors.Wrap(ErrInvalidSize, "only one unit flag may be set")
	}
	return unit, nil
}

// ParseSize parses strings like "500", "10K" or "4MB" into a number of bytes.
// A bare number is scaled by unit. A suffix takes the place of unit and may
// not be combined with anything but Byte.
func ParseSize(spec string, unit Unit) (uint64, error) {
	if !unit.Valid() {
		return 0, errors.Wrapf(ErrInvalidSize, "unknown unit %s", unit)
	}
	spec = strings.ToUpper(strings.TrimSpace(spec))
	if spec == "" {
		return 0, errors.Wrap(ErrInvalidSize, "size string is empty")
	}

	// Split into the numeric part and the suffix part
	numPart, suffix := spec, ""
	for i, r := range spec {
		if r < '0' || r > '9' {
			numPart, suffix = spec[:i], spec[i:]
			break
		}
	}
	if numPart == "" {
		return 0, errors.Wrapf(ErrInvalidSize, "expected a number as filesize, got '%s'", spec)
	}
	magnitude, err := strconv.ParseUint(numPart, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSize, "invalid size number '%s': %v", numPart, err)
	}

	if suffix != "" {
		suffixUnit, ok := suffixes[suffix]
		if !ok {
			return 0, errors.Wrapf(ErrInvalidSize, "unknown size suffix '%s'", suffix)
		}
		if unit != Byte && suffixUnit != unit {
			return 0, errors.Wrapf(ErrInvalidSize, "suffix '%s' conflicts with unit %s", suffix, unit)
		}
		unit = suffixUnit
	}
	return Normalize(magnitude, unit), nil
}
