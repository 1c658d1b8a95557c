package dedup

import "strings"

// Words too common to distinguish one story from another.
var stopwords = map[string]bool{
	"about": true, "after": true, "again": true, "amid": true, "been": true,
	"before": true, "being": true, "between": true, "could": true, "down": true,
	"from": true, "have": true, "here": true, "into": true, "join": true,
	"just": true, "more": true, "most": true, "other": true, "over": true,
	"said": true, "says": true, "some": true, "than": true,
	"that": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "through": true, "under": true,
	"until": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "will": true, "with": true, "would": true,
	"your": true,
}

const maxFingerprintWords = 10

// Fingerprint derives a weak dedup key from the lowercase significant
// words of a title and summary. The same story from two sources usually
// shares enough words to collide here.
func Fingerprint(title, summary string) string {
	words := significantWords(title + " " + summary)
	if len(words) > maxFingerprintWords {
		words = words[:maxFingerprintWords]
	}
	return strings.Join(words, "-")
}

// TitleSimilarity scores two titles by word-set overlap (Jaccard),
// returning a value in [0, 1].
func TitleSimilarity(a, b string) float64 {
	wordsA := wordSet(significantWords(a))
	wordsB := wordSet(significantWords(b))

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}

	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func significantWords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, text)

	var words []string
	seen := map[string]bool{}
	for _, w := range strings.Fields(cleaned) {
		if len(w) < 4 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
