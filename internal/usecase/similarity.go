package usecase

import (
	"strings"
	"unicode/utf8"
)

// Similarity blend weights: token overlap dominates when the token sets
// agree, edit distance settles the remainder
const (
	jaccardBlendWeight = 0.8
	editBlendWeight    = 0.2
	substringScore     = 0.9
	jaccardBlendFloor  = 0.5
)

// Similarity scores how close two raw product names are, in [0, 1].
// Both inputs are normalized before comparison, so the score is symmetric.
// Rules apply in order and are mutually exclusive:
//  1. equal normalized forms score 1.0
//  2. one form a substring of the other scores 0.9
//  3. token sets with Jaccard above 0.5 blend Jaccard with edit similarity
//  4. everything else falls back to plain edit similarity
func Similarity(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 1.0
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return substringScore
	}

	tokensA := Tokenize(na)
	tokensB := Tokenize(nb)
	if len(tokensA) > 0 && len(tokensB) > 0 {
		if j := jaccard(tokensA, tokensB); j > jaccardBlendFloor {
			return jaccardBlendWeight*j + editBlendWeight*editSimilarity(na, nb)
		}
	}

	return editSimilarity(na, nb)
}

// jaccard computes |intersection| / |union| of two non-empty token sets
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// editSimilarity maps edit distance into [0, 1]: 1 - distance/max(len).
// Equal strings never reach here via Similarity, but the zero-length guard
// keeps the function total.
func editSimilarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshteinDistance(a, b))/float64(longest)
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return utf8.RuneCountInString(s2)
	}
	if len(s2) == 0 {
		return utf8.RuneCountInString(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
