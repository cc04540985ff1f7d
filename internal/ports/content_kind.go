package ports

import (
	"fmt"
	"strings"
)

// ContentKind is the identifier for each filler vocabulary.
type ContentKind string

const (
	ContentKindWords   ContentKind = "words"
	ContentKindNumbers ContentKind = "numbers"
)

// ParseContentKind maps a user supplied name to a ContentKind. "lorem" is
// accepted for words.
func ParseContentKind(name string) (ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "words", "word", "lorem":
		return ContentKindWords, nil
	case "numbers", "number", "digits":
		return ContentKindNumbers, nil
	default:
		return "", fmt.Errorf("unsupported content kind: '%s'", name)
	}
}
