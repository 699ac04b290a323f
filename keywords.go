package clipvault

import (
	"sort"
	"strings"
	"unicode"
)

// minKeywordLength filters out short function words the stopword list
// doesn't enumerate.
const minKeywordLength = 4

// DefaultStopwords returns the standard English stopword set used when
// deriving tags from article text. Construct once and pass explicitly.
func DefaultStopwords() map[string]struct{} {
	words := []string{
		"about", "above", "after", "again", "against", "along", "also",
		"among", "another", "because", "been", "before", "being", "below",
		"between", "both", "cannot", "could", "does", "doing", "down",
		"during", "each", "even", "every", "from", "further", "have",
		"having", "here", "herself", "himself", "into", "itself", "just",
		"like", "made", "make", "many", "more", "most", "much", "myself",
		"need", "only", "other", "over", "same", "should", "since", "some",
		"still", "such", "than", "that", "their", "theirs", "them", "then",
		"there", "these", "they", "this", "those", "through", "under",
		"until", "very", "want", "well", "were", "what", "when", "where",
		"which", "while", "will", "with", "would", "your", "yours",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ExtractKeywords returns up to count tags derived from the most frequent
// non-stopword terms in text, most frequent first with alphabetical
// tie-breaking. It is deterministic for a given input.
func ExtractKeywords(text string, count int, stopwords map[string]struct{}) []string {
	if count <= 0 || text == "" {
		return nil
	}

	freq := make(map[string]int)
	for _, word := range splitWords(text) {
		if len(word) < minKeywordLength {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		freq[word]++
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > count {
		terms = terms[:count]
	}
	return terms
}

// splitWords lowercases text and splits it on anything that is not a letter
// or digit.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
