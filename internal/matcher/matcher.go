// Package matcher implements fuzzy word matching between noisy speech
// recognition output and reference script words.
//
// Matching proceeds in two passes:
//
//  1. Primary pass: a normalized Ratcliff/Obershelp similarity ratio
//     (2×matching_chars / total_chars) is computed between the cleaned input
//     word and every cleaned reference word; candidates above the best-match
//     threshold are ranked by ratio.
//
//  2. Secondary pass, entered only when no candidate reaches the strong-match
//     ratio (0.8): substring containment in either direction is accepted at a
//     fixed 0.75 ratio, and candidates sharing their first two characters with
//     the input are accepted at their computed ratio.
//
// Words whose cleaned form is two characters or shorter are matched by exact
// equality only. Fuzzy logic over-matches short words badly, so they bypass
// both passes.
package matcher

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// defaultBestThreshold is the minimum ratio for a candidate to be
	// considered at all during the primary pass.
	defaultBestThreshold = 0.6

	// defaultAcceptThreshold is the minimum ratio the overall best candidate
	// must exceed to replace the input word.
	defaultAcceptThreshold = 0.5

	// strongMatchRatio is the ratio above which the primary pass result is
	// trusted without running the secondary heuristics.
	strongMatchRatio = 0.8

	// substringRatio is the fixed ratio assigned to substring-containment
	// matches in the secondary pass.
	substringRatio = 0.75

	// shortWordLength is the maximum cleaned length for the exact-match-only
	// bypass.
	shortWordLength = 2
)

// trailingPunctuation is the set of sentence/clause punctuation carried over
// from the original word onto a corrected word.
const trailingPunctuation = ",.!?;:"

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithBestThreshold sets the minimum similarity ratio required for a
// reference word to become a match candidate. Default: 0.6.
func WithBestThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.bestThreshold = threshold
	}
}

// WithAcceptThreshold sets the minimum similarity ratio the winning candidate
// must exceed for the input word to be replaced. Default: 0.5.
func WithAcceptThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.acceptThreshold = threshold
	}
}

// Matcher decides whether two word strings denote the same spoken word
// despite recognition noise. It is read-only after construction and safe for
// concurrent use.
type Matcher struct {
	bestThreshold   float64
	acceptThreshold float64
}

// New returns a new Matcher configured with the supplied options
func New(opts ...Option) *Matcher {
	m := &Matcher{
		bestThreshold:   defaultBestThreshold,
		acceptThreshold: defaultAcceptThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Similarity computes the normalized similarity ratio between a and b in
// [0,1]. Both inputs are cleaned before comparison; an empty cleaned input
// yields 0.
func (m *Matcher) Similarity(a, b string) float64 {
	cleanA := CleanWord(a)
	cleanB := CleanWord(b)
	if cleanA == "" || cleanB == "" {
		return 0
	}
	return charRatio(cleanA, cleanB)
}

// BestMatch finds the reference word best matching word. When matched is
// true, corrected holds the reference word (with any trailing punctuation
// carried over from word). When matched is false, corrected equals word
// unchanged. BestMatch never fails: unmatched or empty input is returned
// as-is.
func (m *Matcher) BestMatch(word string, refWords []string) (corrected string, matched bool) {
	clean := CleanWord(word)
	if clean == "" || len(refWords) == 0 {
		return word, false
	}

	// Short words match by exact equality only
	if len([]rune(clean)) <= shortWordLength {
		for _, ref := range refWords {
			if CleanWord(ref) == clean {
				return word, false
			}
		}
	}

	bestRatio := 0.0
	bestWord := ""

	// Primary pass: ranked similarity ratio
	for _, ref := range refWords {
		cleanRef := CleanWord(ref)
		if cleanRef == "" {
			continue
		}
		ratio := charRatio(clean, cleanRef)
		if ratio > m.bestThreshold && ratio > bestRatio {
			bestRatio = ratio
			bestWord = ref
		}
	}

	// Secondary pass: substring and shared-prefix heuristics, only when the
	// primary pass found nothing convincing
	if bestRatio < strongMatchRatio {
		for _, ref := range refWords {
			cleanRef := CleanWord(ref)
			if cleanRef == "" {
				continue
			}

			if len(clean) >= 3 && len(cleanRef) >= 3 &&
				(strings.Contains(clean, cleanRef) || strings.Contains(cleanRef, clean)) {
				if substringRatio > bestRatio ||
					(substringRatio == bestRatio && len(ref) > len(bestWord)) {
					bestRatio = substringRatio
					bestWord = ref
				}
			}

			if len(clean) >= 2 && len(cleanRef) >= 2 && clean[:2] == cleanRef[:2] {
				ratio := charRatio(clean, cleanRef)
				if ratio > m.bestThreshold && ratio > bestRatio {
					bestRatio = ratio
					bestWord = ref
				}
			}
		}
	}

	if bestWord == "" || bestRatio <= m.acceptThreshold {
		return word, false
	}

	return carryTrailingPunctuation(word, bestWord), true
}

// CleanWord strips all characters that are neither alphanumeric nor
// whitespace, lowercases the rest and trims surrounding whitespace
func CleanWord(word string) string {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.TrimSpace(b.String())
}

// charRatio computes the Ratcliff/Obershelp similarity between two cleaned
// strings by running the sequence matcher over their character sequences
func charRatio(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

// splitChars converts a string into a slice of single-character tokens for
// the sequence matcher
func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

// carryTrailingPunctuation appends the original word's trailing punctuation
// to the corrected word when the corrected word carries none of its own
func carryTrailingPunctuation(original, corrected string) string {
	if original == "" || corrected == "" {
		return corrected
	}

	last := original[len(original)-1]
	if !strings.ContainsRune(trailingPunctuation, rune(last)) {
		return corrected
	}
	correctedLast := corrected[len(corrected)-1]
	if strings.ContainsRune(trailingPunctuation, rune(correctedLast)) {
		return corrected
	}

	return corrected + string(last)
}
