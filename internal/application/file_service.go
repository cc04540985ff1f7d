package application

import (
	"os"

	"github.com/pkg/errors"

	"github.com/hailam/gerf/internal/policy"
	"github.com/hailam/gerf/internal/ports"
	"github.com/hailam/gerf/internal/units"
)

// Request describes one file to create.
type Request struct {
	// Size is the size argument, e.g. "100" or "10KB".
	Size string
	Unit units.Unit
	Kind ports.ContentKind
	Path string
	// Exceed skips the confirmation for sizes above the warning threshold.
	Exceed bool
	// Override allows replacing an existing file at Path.
	Override bool
}

// FileService orchestrates file generation by parsing sizes, applying the
// size policy, selecting the correct generator, and invoking it.
type FileService struct {
	factory   ports.GeneratorFactory
	parser    ports.SizeParser
	gate      policy.Gate
	confirmer ports.Confirmer
}

// NewFileService constructs a FileService.
func NewFileService(factory ports.GeneratorFactory, parser ports.SizeParser, gate policy.Gate, confirmer ports.Confirmer) *FileService {
	return &FileService{factory: factory, parser: parser, gate: gate, confirmer: confirmer}
}

// CreateFile writes a file of the requested size and returns the number of
// bytes written.
func (s *FileService) CreateFile(req Request) (uint64, error) {
	// 1. Parse the size argument into bytes
	sizeBytes, err := s.parser.Parse(req.Size, req.Unit)
	if err != nil {
		return 0, classify(ErrInput, errors.Wrapf(err, "invalid size '%s'", req.Size))
	}

	// 2. Make sure the user doesn't accidentally produce huge files
	if err := s.gate.Check(sizeBytes, req.Exceed, s.confirmer); err != nil {
		if errors.Is(err, policy.ErrRefused) {
			return 0, err
		}
		return 0, classify(ErrResource, err)
	}

	// 3. Refuse to replace existing files unless asked to
	if _, err := os.Stat(req.Path); err == nil {
		if !req.Override {
			return 0, classify(ErrFileExists, errors.Errorf("the file '%s' already exists", req.Path))
		}
	} else if !os.IsNotExist(err) {
		return 0, classify(ErrResource, errors.Wrapf(err, "could not check '%s'", req.Path))
	}

	// 4. Retrieve the generator for this content kind
	generator, err := s.factory.For(req.Kind)
	if err != nil {
		return 0, classify(ErrInput, errors.Wrapf(err, "no generator for kind '%s'", req.Kind))
	}

	// 5. Invoke the generator
	if err := generator.Generate(req.Path, sizeBytes); err != nil {
		return 0, classify(ErrResource, errors.Wrapf(err, "failed to generate %s", req.Path))
	}
	return sizeBytes, nil
}
