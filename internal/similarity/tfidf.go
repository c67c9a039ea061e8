// Package similarity computes a bounded textual similarity between two documents using a
// TF-IDF vector space built fresh for every comparison.
package similarity

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// MaxFeatures caps the vocabulary size of a single comparison.
const MaxFeatures = 5000

// ErrEmptyVocabulary is returned when neither document has a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words or no words")

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Cosine returns the cosine similarity of a and b in [0,1]. It keeps no state between calls,
// so it may be used from any number of goroutines.
func Cosine(a, b string) (float64, error) {
	docs := [2]map[string]int{terms(a), terms(b)}

	vocab := vocabulary(docs[:])
	if len(vocab) == 0 {
		return 0, ErrEmptyVocabulary
	}

	idf := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		df := 0
		for _, d := range docs {
			if d[term] > 0 {
				df++
			}
		}
		// smoothed: as if one extra document held every term once
		idf[term] = math.Log(float64(1+len(docs))/float64(1+df)) + 1
	}

	va := weights(docs[0], vocab, idf)
	vb := weights(docs[1], vocab, idf)

	dot := 0.0
	for i := range vocab {
		dot += va[i] * vb[i]
	}
	return clamp(dot), nil
}

// terms counts the unigrams and bigrams of text after lower-casing and stop-word removal.
func terms(text string) map[string]int {
	var words []string
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		words = append(words, tok)
	}

	counts := make(map[string]int, 2*len(words))
	for i, w := range words {
		counts[w]++
		if i > 0 {
			counts[words[i-1]+" "+w]++
		}
	}
	return counts
}

// vocabulary returns the terms of all documents, keeping the MaxFeatures most frequent.
// Ties are broken alphabetically and the result is sorted alphabetically.
func vocabulary(docs []map[string]int) []string {
	total := make(map[string]int)
	for _, d := range docs {
		for term, n := range d {
			total[term] += n
		}
	}

	vocab := make([]string, 0, len(total))
	for term := range total {
		vocab = append(vocab, term)
	}

	if len(vocab) > MaxFeatures {
		sort.Slice(vocab, func(i, j int) bool {
			if total[vocab[i]] != total[vocab[j]] {
				return total[vocab[i]] > total[vocab[j]]
			}
			return vocab[i] < vocab[j]
		})
		vocab = vocab[:MaxFeatures]
	}
	sort.Strings(vocab)
	return vocab
}

// weights returns the L2-normalised TF-IDF vector of doc over vocab.
func weights(doc map[string]int, vocab []string, idf map[string]float64) []float64 {
	vec := make([]float64, len(vocab))
	norm := 0.0
	for i, term := range vocab {
		w := float64(doc[term]) * idf[term]
		vec[i] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
