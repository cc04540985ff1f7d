package application

import (
	"github.com/pkg/errors"

	"github.com/hailam/gerf/internal/policy"
)

var (
	// ErrInput marks sizes, units or content kinds that could not be parsed.
	ErrInput = errors.New("invalid input")
	// ErrPolicy marks requests refused by the size policy.
	ErrPolicy = policy.ErrRefused
	// ErrFileExists marks a destination that exists and may not be replaced.
	ErrFileExists = errors.New("file already exists")
	// ErrResource marks failures to create or write files.
	ErrResource = errors.New("resource error")
)

// classified attaches a category to an error while keeping the original
// chain reachable through errors.Is.
type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string { return c.err.Error() }

func (c *classified) Unwrap() []error { return []error{c.kind, c.err} }

func classify(kind, err error) error {
	return &classified{kind: kind, err: err}
}

// ExitCode maps an error returned by the service to a process exit code.
// Refusals and conflicts are user-correctable and exit 0.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrPolicy), errors.Is(err, ErrFileExists):
		return 0
	default:
		return 1
	}
}

// InputError marks err as an input error.
func InputError(err error) error {
	return classify(ErrInput, err)
}
