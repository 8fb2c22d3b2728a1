// Package similarity scores a resume against a job posting across lexical,
// skill, experience and education axes, with an optional embedding-backed
// semantic axis, and blends them into a single weighted match score.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabulary caps the term space of a single comparison. The vectorizer is
// refit for every resume/job pair; nothing is shared across calls.
const maxVocabulary = 1000

var wordRe = regexp.MustCompile(`[a-z0-9_]+`)

// stopWords are dropped before vectorization.
var stopWords = map[string]bool{
	"a": true, "about": true, "after": true, "all": true, "also": true,
	"an": true, "and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "but": true, "by": true,
	"can": true, "could": true, "do": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "he": true, "her": true,
	"his": true, "how": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "just": true, "more": true,
	"most": true, "my": true, "no": true, "not": true, "of": true,
	"on": true, "or": true, "other": true, "our": true, "out": true,
	"over": true, "so": true, "some": true, "than": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "to": true, "up": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "who": true, "will": true, "with": true,
	"would": true, "you": true, "your": true,
}

func tokenize(text string) []string {
	var tokens []string
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if !stopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// lexicalSimilarity computes the TF-IDF cosine similarity of two documents in
// [0, 1]. The vocabulary is built from just these two documents, capped at
// maxVocabulary terms by total frequency (ties broken alphabetically), so the
// result is deterministic for identical inputs.
func lexicalSimilarity(a, b string) float64 {
	aTokens := tokenize(a)
	bTokens := tokenize(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	aCounts := termCounts(aTokens)
	bCounts := termCounts(bTokens)

	vocab := buildVocabulary(aCounts, bCounts)

	aVec := tfidfVector(aCounts, bCounts, vocab)
	bVec := tfidfVector(bCounts, aCounts, vocab)

	return cosine(aVec, bVec)
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func buildVocabulary(aCounts, bCounts map[string]int) []string {
	totals := make(map[string]int, len(aCounts)+len(bCounts))
	for term, n := range aCounts {
		totals[term] += n
	}
	for term, n := range bCounts {
		totals[term] += n
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}
	return terms
}

// tfidfVector builds the smoothed TF-IDF vector for one document of the pair,
// L2 normalized. With two documents, idf = ln((1+2)/(1+df)) + 1.
func tfidfVector(doc, other map[string]int, vocab []string) []float64 {
	const nDocs = 2.0

	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := float64(doc[term])
		if tf == 0 {
			continue
		}
		df := 0.0
		if doc[term] > 0 {
			df++
		}
		if other[term] > 0 {
			df++
		}
		idf := math.Log((1+nDocs)/(1+df)) + 1
		vec[i] = tf * idf
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}

// cosine32 is the cosine similarity of two raw embedding vectors in [-1, 1].
func cosine32(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, aNorm, bNorm float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		aNorm += float64(a[i]) * float64(a[i])
		bNorm += float64(b[i]) * float64(b[i])
	}
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(aNorm) * math.Sqrt(bNorm))
}
