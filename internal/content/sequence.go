package content

import "golang.org/x/sync/errgroup"

// Sequence is an ordered sequence of filler tokens held as one-byte indices
// into a vocabulary of at most 256 entries. After Fit only the first limit
// bytes of the tokens are emitted, followed by padding copies of pad.
type Sequence struct {
	vocab   Vocabulary
	indices []uint8
	limit   uint64
	pad     byte
	padding uint64
}

// parallelThreshold is the number of tokens below which ConcatParallel
// falls back to Concat.
var parallelThreshold = 1 << 14

// NewSequence returns the sequence of vocab entries at indices.
func NewSequence(vocab Vocabulary, pad byte, indices ...uint8) *Sequence {
	s := &Sequence{vocab: vocab, indices: indices, pad: pad}
	s.limit = s.tokenLen()
	return s
}

func (s *Sequence) tokenLen() uint64 {
	var n uint64
	for _, i := range s.indices {
		n += uint64(len(s.vocab[i]))
	}
	return n
}

// Len returns the byte length of the concatenated sequence.
func (s *Sequence) Len() uint64 {
	return s.limit + s.padding
}

// Tokens returns the sequence as strings, with a cut last token and one
// token per padding byte.
func (s *Sequence) Tokens() []string {
	tokens := make([]string, 0, uint64(len(s.indices))+s.padding)
	var acc uint64
	for _, i := range s.indices {
		tok := s.vocab[i]
		if acc+uint64(len(tok)) > s.limit {
			tok = tok[:s.limit-acc]
		}
		acc += uint64(len(tok))
		tokens = append(tokens, tok)
	}
	padding := string(s.pad)
	for n := s.padding; n > 0; n-- {
		tokens = append(tokens, padding)
	}
	return tokens
}

// Fit shrinks or pads the sequence so that it is exactly target bytes long.
// The last token is dropped, the gap is closed with padding and a sequence
// that is still too long is cut at byte target.
func (s *Sequence) Fit(target uint64) {
	if n := len(s.indices); n > 0 {
		s.indices = s.indices[:n-1]
	}

	length := s.tokenLen()
	if length <= target {
		s.limit = length
		s.padding = target - length
		return
	}

	// Keep only the tokens that reach into the first target bytes
	s.limit, s.padding = target, 0
	var acc uint64
	for n, i := range s.indices {
		if acc >= target {
			s.indices = s.indices[:n]
			return
		}
		acc += uint64(len(s.vocab[i]))
	}
}

// Concat joins the sequence in order.
func Concat(s *Sequence) []byte {
	buf := make([]byte, s.Len())
	n := s.copyTokens(buf[:s.limit], s.indices, 0)
	s.fillPadding(buf[n:])
	return buf
}

// ConcatParallel joins the sequence in order, splitting the tokens into at
// most workers contiguous chunks that are copied into a shared buffer at
// their precomputed offsets. The result is identical to Concat.
func ConcatParallel(s *Sequence, workers int) []byte {
	if workers < 2 || len(s.indices) < parallelThreshold {
		return Concat(s)
	}

	type chunk struct {
		lo, hi int
		offset uint64
	}
	chunkLen := (len(s.indices) + workers - 1) / workers
	chunks := make([]chunk, 0, workers)
	var offset uint64
	for lo := 0; lo < len(s.indices) && offset < s.limit; lo += chunkLen {
		hi := min(lo+chunkLen, len(s.indices))
		chunks = append(chunks, chunk{lo: lo, hi: hi, offset: offset})
		for _, i := range s.indices[lo:hi] {
			offset += uint64(len(s.vocab[i]))
		}
	}

	buf := make([]byte, s.Len())
	tokens := buf[:s.limit]
	var g errgroup.Group
	for _, c := range chunks {
		g.Go(func() error {
			s.copyTokens(tokens, s.indices[c.lo:c.hi], c.offset)
			return nil
		})
	}
	s.fillPadding(buf[s.limit:])
	_ = g.Wait()
	return buf
}

// copyTokens writes the tokens at indices into dst starting at offset and
// stops at the end of dst. It returns the offset after the last byte written.
func (s *Sequence) copyTokens(dst []byte, indices []uint8, offset uint64) uint64 {
	for _, i := range indices {
		if offset >= uint64(len(dst)) {
			break
		}
		offset += uint64(copy(dst[offset:], s.vocab[i]))
	}
	return offset
}

func (s *Sequence) fillPadding(dst []byte) {
	for i := range dst {
		dst[i] = s.pad
	}
}
