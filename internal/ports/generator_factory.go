package ports

// GeneratorFactory is the port for looking up generators by ContentKind.
type GeneratorFactory interface {
	// For returns a FileGenerator for the given ContentKind, or an error if unsupported.
	For(k ContentKind) (FileGenerator, error)
}
