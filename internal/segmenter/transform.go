package segmenter

import "strings"

// punctuationCutset contains the punctuation characters removed by the
// punctuation-stripping transform
const punctuationCutset = ",.!?;:\"“”"

// NewTransform builds the default text transform from display settings.
// textCase is one of "normal", "upper" or "lower"; unknown values behave as
// "normal".
func NewTransform(removePunctuation bool, textCase string) Transform {
	return func(text string) string {
		if removePunctuation {
			text = strings.Map(func(r rune) rune {
				if strings.ContainsRune(punctuationCutset, r) {
					return -1
				}
				return r
			}, text)
			text = strings.Join(strings.Fields(text), " ")
		}

		switch strings.ToLower(textCase) {
		case "upper":
			text = strings.ToUpper(text)
		case "lower":
			text = strings.ToLower(text)
		}

		return text
	}
}
