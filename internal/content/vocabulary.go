package content

import (
	"fmt"

	"github.com/hailam/gerf/internal/ports"
)

// Vocabulary is a table of filler tokens a Generator draws from. A
// vocabulary holds at most 256 tokens.
type Vocabulary []string

var words = [...]string{
	" ",
	"\n",
	"et",
	"est",
	"elit",
	"wasd",
	" ",
	"dolor",
	"labore",
	"eiusmod",
	"aliquaer",
	"adipisici",
}

var numbers = [...]string{
	" ",
	"\n",
	"0", "1", "2", "3", "4",
	"5", "6", "7", "8", "9",
}

// VocabularyFor returns a copy of the table backing the given kind.
func VocabularyFor(kind ports.ContentKind) (Vocabulary, error) {
	switch kind {
	case ports.ContentKindWords:
		return append(Vocabulary(nil), words[:]...), nil
	case ports.ContentKindNumbers:
		return append(Vocabulary(nil), numbers[:]...), nil
	default:
		return nil, fmt.Errorf("no vocabulary for content kind '%s'", kind)
	}
}

// Shortest returns the byte length of the shortest token.
func (v Vocabulary) Shortest() int {
	if len(v) == 0 {
		return 0
	}
	shortest := len(v[0])
	for _, tok := range v[1:] {
		shortest = min(shortest, len(tok))
	}
	return shortest
}

// capacityHint estimates how many tokens are drawn to fill target bytes,
// with some slack for tokens drawn longer than average.
func (v Vocabulary) capacityHint(target uint64) uint64 {
	var total uint64
	for _, tok := range v {
		total += uint64(len(tok))
	}
	if total == 0 {
		return 0
	}
	hint := target/total*uint64(len(v)) + uint64(len(v)) + 1
	return hint + hint/16
}
