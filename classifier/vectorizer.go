// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxFeatures caps the vocabulary at the most frequent terms across
	// the training corpus.
	MaxFeatures = 10000

	// MaxDocFreqRatio drops terms present in more than this share of
	// training documents.
	MaxDocFreqRatio = 0.95
)

// tfidfVectorizer turns text into l2-normalized term-weighted sparse
// vectors over a unigram+bigram vocabulary. Exported fields so the
// fitted state serializes as part of the model artifact.
type tfidfVectorizer struct {
	Vocabulary map[string]int
	Idf        []float64
}

// tokenize lower-cases, strips accents and splits into word tokens of
// at least two characters.
func tokenize(text string) []string {
	text = stripAccents(strings.ToLower(text))

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func stripAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return stripped
}

// ngrams returns unigrams plus adjacent bigrams.
func ngrams(tokens []string) []string {
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// fit builds the vocabulary and inverse document frequencies from the
// training corpus. Terms in more than MaxDocFreqRatio of the documents
// are dropped; the remainder is pruned to the MaxFeatures most frequent
// terms corpus-wide, ties broken alphabetically for determinism.
func (v *tfidfVectorizer) fit(docs []string) {
	n := len(docs)
	docFreq := map[string]int{}
	corpusFreq := map[string]int{}

	for _, doc := range docs {
		terms := ngrams(tokenize(doc))
		seen := map[string]bool{}
		for _, term := range terms {
			corpusFreq[term]++
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	maxDf := int(math.Floor(MaxDocFreqRatio * float64(n)))
	if maxDf < 1 {
		maxDf = 1
	}

	kept := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df <= maxDf {
			kept = append(kept, term)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if corpusFreq[kept[i]] != corpusFreq[kept[j]] {
			return corpusFreq[kept[i]] > corpusFreq[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > MaxFeatures {
		kept = kept[:MaxFeatures]
	}

	// Index terms alphabetically so the fitted state is independent of
	// map iteration order.
	sort.Strings(kept)

	v.Vocabulary = make(map[string]int, len(kept))
	v.Idf = make([]float64, len(kept))
	for i, term := range kept {
		v.Vocabulary[term] = i
		v.Idf[i] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}
}

// transform maps one document to a sparse, l2-normalized tf-idf vector.
func (v *tfidfVectorizer) transform(doc string) map[int]float64 {
	vec := map[int]float64{}
	for _, term := range ngrams(tokenize(doc)) {
		if idx, ok := v.Vocabulary[term]; ok {
			vec[idx] += v.Idf[idx]
		}
	}

	// Sum in ascending index order so the norm is reproducible.
	normSq := 0.0
	for _, idx := range sortedIndices(vec) {
		normSq += vec[idx] * vec[idx]
	}
	if normSq > 0 {
		scale := 1 / math.Sqrt(normSq)
		for idx := range vec {
			vec[idx] *= scale
		}
	}

	return vec
}

func (v *tfidfVectorizer) dimensions() int {
	return len(v.Idf)
}
