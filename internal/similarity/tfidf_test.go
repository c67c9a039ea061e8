package similarity

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "senior python developer", "senior python developer", 0.999, 1},
		{"case insensitive", "Python Django", "python django", 0.999, 1},
		{"disjoint", "python django", "kubernetes terraform", 0, 0},
		{"partial overlap", "python django react", "python flask", 0.01, 0.99},
		{"one side only stop words", "the and of", "python developer", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestCosine_EmptyVocabulary(t *testing.T) {
	for _, pair := range [][2]string{{"", ""}, {"the a of", "and or"}, {"a b c", "1 2"}} {
		_, err := Cosine(pair[0], pair[1])
		assert.ErrorIs(t, err, ErrEmptyVocabulary)
	}
}

func TestCosine_Symmetric(t *testing.T) {
	a := "Senior Python Developer with Django and React experience"
	b := "Looking for a Python developer who knows Django"

	ab, err := Cosine(a, b)
	require.NoError(t, err)
	ba, err := Cosine(b, a)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)
}

func TestCosine_MoreOverlapScoresHigher(t *testing.T) {
	jd := "python django postgresql developer"

	low, err := Cosine("java spring developer", jd)
	require.NoError(t, err)
	high, err := Cosine("python django developer", jd)
	require.NoError(t, err)
	assert.Greater(t, high, low)
}

func TestTerms(t *testing.T) {
	got := terms("The Python developer, and the Python engineer")
	assert.Equal(t, map[string]int{
		"python":           2,
		"developer":        1,
		"engineer":         1,
		"python developer": 1,
		"developer python": 1,
		"python engineer":  1,
	}, got)
}

func TestVocabulary_Capped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxFeatures+100; i++ {
		b.WriteString("w")
		b.WriteString(strings.Repeat("x", i%7+1))
		b.WriteString(string(rune('a' + i%26)))
		b.WriteString(string(rune('a' + (i/26)%26)))
		b.WriteString(string(rune('a' + (i/676)%26)))
		b.WriteString(" ")
	}
	doc := terms(b.String())
	vocab := vocabulary([]map[string]int{doc})
	assert.Len(t, vocab, MaxFeatures)
	assert.IsIncreasing(t, vocab)
}

func TestCosine_Concurrent(t *testing.T) {
	want, err := Cosine("go developer kubernetes", "kubernetes go engineer")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Cosine("go developer kubernetes", "kubernetes go engineer")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
