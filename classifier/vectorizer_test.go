// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"lowercases", "Hello World", []string{"hello", "world"}},
		{"drops single chars", "a bb c ddd", []string{"bb", "ddd"}},
		{"splits on punctuation", "verify,now!fast", []string{"verify", "now", "fast"}},
		{"strips accents", "café naïve", []string{"cafe", "naive"}},
		{"keeps digits", "win 1000 dollars", []string{"win", "1000", "dollars"}},
		{"empty", "", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokenize(tc.input))
		})
	}
}

func TestNgrams(t *testing.T) {
	grams := ngrams([]string{"verify", "your", "account"})

	assert.Equal(t, []string{"verify", "your", "account", "verify your", "your account"}, grams)
}

func TestNgramsSingleToken(t *testing.T) {
	assert.Equal(t, []string{"hello"}, ngrams([]string{"hello"}))
}

func TestVectorizerFitTransform(t *testing.T) {
	docs := []string{
		"verify your account",
		"meeting notes attached",
		"verify account details",
	}

	v := &tfidfVectorizer{}
	v.fit(docs)

	assert.NotEmpty(t, v.Vocabulary)
	assert.Len(t, v.Idf, len(v.Vocabulary))

	vec := v.transform("verify your account")
	assert.NotEmpty(t, vec)

	// Vectors are l2-normalized.
	norm := 0.0
	for _, value := range vec {
		norm += value * value
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestVectorizerIdf(t *testing.T) {
	// "common" appears in two of three docs, "rare" in one.
	v := &tfidfVectorizer{}
	v.fit([]string{"common rare", "common other", "third doc"})

	commonIdf := v.Idf[v.Vocabulary["common"]]
	rareIdf := v.Idf[v.Vocabulary["rare"]]

	assert.InDelta(t, math.Log(4.0/3.0)+1, commonIdf, 1e-9)
	assert.InDelta(t, math.Log(4.0/2.0)+1, rareIdf, 1e-9)
	assert.Less(t, commonIdf, rareIdf)
}

func TestVectorizerDropsUbiquitousTerms(t *testing.T) {
	// A term present in every document of a large corpus exceeds the
	// document frequency cutoff and is excluded from the vocabulary.
	docs := make([]string, 40)
	for i := range docs {
		docs[i] = "ubiquitous filler"
	}
	docs[0] = "ubiquitous special"

	v := &tfidfVectorizer{}
	v.fit(docs)

	_, hasUbiquitous := v.Vocabulary["ubiquitous"]
	_, hasSpecial := v.Vocabulary["special"]
	assert.False(t, hasUbiquitous)
	assert.True(t, hasSpecial)
}

func TestVectorizerUnknownTermsIgnored(t *testing.T) {
	v := &tfidfVectorizer{}
	v.fit([]string{"alpha beta", "alpha gamma"})

	vec := v.transform("completely unknown words")
	assert.Empty(t, vec)
}
