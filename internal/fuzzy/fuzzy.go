// Package fuzzy provides edit-distance matching for flag suggestions.
// Used by getopt to offer a near-miss registered spelling for each
// unrecognized token.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds candidate strings within a maximum edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// Match is one candidate within range of the input.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" when none is within the
// maximum distance.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within the maximum distance, closest
// first. Among equal distances a longer common prefix wins, which favors
// spellings sharing the same flag marker.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	lowered := strings.ToLower(input)

	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)
		if lowered == candidateLower {
			continue // exact matches aren't suggestions
		}
		if d := m.distance(lowered, candidateLower); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return commonPrefixLen(lowered, strings.ToLower(matches[i].Value)) >
			commonPrefixLen(lowered, strings.ToLower(matches[j].Value))
	})

	return matches
}

// distance is the Levenshtein distance between a and b, computed with two
// rows and early termination once every path exceeds the maximum.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = minThree(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// FindBestFlag returns the flag spelling closest to input, or "" when none
// is within maxDistance.
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, flags)
}
