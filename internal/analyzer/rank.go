package analyzer

import "sort"

// TokenCount pairs a token with its number of occurrences.
type TokenCount struct {
	Token string
	Count int
}

// Rank counts occurrences of each distinct token and returns them in
// descending count order. Ties break by first occurrence in the input: of
// two tokens with equal counts, the one seen earlier ranks higher. A limit
// of zero or less returns all entries.
func Rank(tokens []string, limit int) []TokenCount {
	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	ranked := make([]TokenCount, 0, len(counts))
	for tok, n := range counts {
		ranked = append(ranked, TokenCount{Token: tok, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Token] < firstSeen[ranked[j].Token]
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
