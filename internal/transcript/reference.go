package transcript

import (
	"strings"
)

// ReferenceText holds a known-correct script decomposed into words and
// sentences for alignment. It is read-only after construction and safe to
// share across concurrent alignment calls.
type ReferenceText struct {
	text      string
	words     []string
	sentences []string
}

// NewReferenceText normalizes raw reference text and decomposes it into an
// ordered word sequence (punctuation retained, attached to each word) and an
// ordered sentence sequence (split on '.', '!' and '?')
func NewReferenceText(raw string) *ReferenceText {
	normalized := strings.Join(strings.Fields(raw), " ")

	ref := &ReferenceText{text: normalized}
	if normalized == "" {
		return ref
	}

	ref.words = strings.Fields(normalized)
	ref.sentences = splitSentences(normalized)

	return ref
}

// Text returns the whitespace-normalized reference text
func (rt *ReferenceText) Text() string {
	return rt.text
}

// Words returns the ordered reference words with punctuation attached.
// The returned slice must not be modified.
func (rt *ReferenceText) Words() []string {
	return rt.words
}

// Sentences returns the ordered reference sentences.
// The returned slice must not be modified.
func (rt *ReferenceText) Sentences() []string {
	return rt.sentences
}

// IsEmpty reports whether the reference text contains no words
func (rt *ReferenceText) IsEmpty() bool {
	return len(rt.words) == 0
}

// splitSentences splits normalized text on sentence-ending punctuation,
// keeping the punctuation attached to its sentence
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			sentence := strings.TrimSpace(current.String())
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			current.Reset()
		}
	}

	if trailing := strings.TrimSpace(current.String()); trailing != "" {
		sentences = append(sentences, trailing)
	}

	return sentences
}
