package content

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/gerf/internal/ports"
)

func TestGenerator_ExactLength(t *testing.T) {
	sizes := []uint64{0, 1, 2, 3, 7, 8, 9, 100, 1000, 4096, 65536, 100003}
	kinds := []ports.ContentKind{ports.ContentKindWords, ports.ContentKindNumbers}

	for _, kind := range kinds {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s_%d", kind, size), func(t *testing.T) {
				g, err := New(kind)
				require.NoError(t, err)
				assert.Len(t, g.Generate(size), int(size))
			})
		}
	}
}

func TestGenerator_SeededIsDeterministic(t *testing.T) {
	a, err := New(ports.ContentKindWords, WithSeed(7))
	require.NoError(t, err)
	b, err := New(ports.ContentKindWords, WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Generate(5000), b.Generate(5000))
}

func TestGenerator_DrawsFromVocabulary(t *testing.T) {
	g, err := New(ports.ContentKindNumbers, WithSeed(1), WithPadding('#'))
	require.NoError(t, err)

	for _, b := range g.Generate(10000) {
		ok := b == ' ' || b == '\n' || b == '#' || (b >= '0' && b <= '9')
		require.True(t, ok, "unexpected byte %q in numbers content", b)
	}
}

func TestGenerator_FillOvershootsByOneToken(t *testing.T) {
	g, err := New(ports.ContentKindWords, WithSeed(3))
	require.NoError(t, err)

	const target = 1000
	s := g.Fill(target)
	require.NotEmpty(t, s.indices)
	assert.GreaterOrEqual(t, s.Len(), uint64(target))

	s.indices = s.indices[:len(s.indices)-1]
	assert.Less(t, s.tokenLen(), uint64(target))
}

func TestGenerator_BelowShortestToken(t *testing.T) {
	vocab, err := VocabularyFor(ports.ContentKindWords)
	require.NoError(t, err)
	require.Equal(t, 1, vocab.Shortest())

	g, err := New(ports.ContentKindWords, WithSeed(9))
	require.NoError(t, err)
	assert.Len(t, g.Generate(uint64(vocab.Shortest())), vocab.Shortest())
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("emoji")
	assert.Error(t, err)
}

func TestVocabularyFor_ReturnsCopy(t *testing.T) {
	vocab, err := VocabularyFor(ports.ContentKindWords)
	require.NoError(t, err)
	require.Len(t, vocab, 12)
	vocab[0] = "changed"

	again, err := VocabularyFor(ports.ContentKindWords)
	require.NoError(t, err)
	assert.Equal(t, " ", again[0])
}

func TestGenerator_MemoryPerOutputByte(t *testing.T) {
	const target = 8 << 20

	for _, kind := range []ports.ContentKind{ports.ContentKindWords, ports.ContentKindNumbers} {
		t.Run(string(kind), func(t *testing.T) {
			g, err := New(kind, WithSeed(5), WithWorkers(4))
			require.NoError(t, err)

			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)
			out := g.Generate(target)
			runtime.ReadMemStats(&after)

			require.Len(t, out, target)
			perByte := float64(after.TotalAlloc-before.TotalAlloc) / target
			assert.Less(t, perByte, 3.0, "allocated %.2f bytes per output byte", perByte)
		})
	}
}

func TestVocabulary_CapacityHint(t *testing.T) {
	vocab, err := VocabularyFor(ports.ContentKindNumbers)
	require.NoError(t, err)
	// Every number token is one byte long, so the hint covers target draws
	assert.GreaterOrEqual(t, vocab.capacityHint(1000), uint64(1000))
	assert.Zero(t, Vocabulary{}.capacityHint(1000))
}
