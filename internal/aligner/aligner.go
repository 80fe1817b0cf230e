package aligner

import (
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"captionforge/internal/matcher"
	"captionforge/internal/transcript"
)

const (
	// DefaultConfidenceThreshold is the mean recognizer confidence below
	// which forced alignment is used instead of per-word correction.
	DefaultConfidenceThreshold = 0.8

	// insertedWordStep is the synthesized duration, in seconds, given to
	// each reference word the recognizer missed entirely.
	insertedWordStep = 0.3

	// insertedWordConfidence marks synthesized words as low confidence.
	insertedWordConfidence = 0.5
)

// Aligner reconciles a noisy timed-word sequence with a known-correct
// reference text. Corrected words take their text from the reference and
// their timing from interpolation over the noisy sequence.
type Aligner struct {
	ref       *transcript.ReferenceText
	threshold float64
	matcher   *matcher.Matcher
	logger    *zap.Logger
}

// New creates a new Aligner for the given reference text using the default
// confidence threshold
func New(ref *transcript.ReferenceText) *Aligner {
	return NewWithLogger(ref, DefaultConfidenceThreshold, zap.NewNop())
}

// NewWithLogger creates a new Aligner with an explicit confidence threshold
// and logger
func NewWithLogger(ref *transcript.ReferenceText, confidenceThreshold float64, logger *zap.Logger) *Aligner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ref == nil {
		ref = transcript.NewReferenceText("")
	}
	return &Aligner{
		ref:       ref,
		threshold: confidenceThreshold,
		matcher:   matcher.New(),
		logger:    logger,
	}
}

// Align corrects the noisy word sequence against the reference text.
//
// With an empty reference or empty input the words are returned unchanged.
// When the mean recognizer confidence falls below the configured threshold,
// the full sequence is force-aligned against the reference via block diff;
// otherwise each word is independently fuzzy-matched with order, count and
// timestamps preserved.
func (a *Aligner) Align(words []transcript.TimedWord) []transcript.TimedWord {
	if len(words) == 0 || a.ref.IsEmpty() {
		return words
	}

	meanConfidence := transcript.MeanConfidence(words)
	if meanConfidence < a.threshold {
		a.logger.Debug("using forced alignment",
			zap.Float64("mean_confidence", meanConfidence),
			zap.Float64("threshold", a.threshold),
			zap.Int("word_count", len(words)))
		return a.forcedAlign(words)
	}

	a.logger.Debug("using per-word correction",
		zap.Float64("mean_confidence", meanConfidence),
		zap.Float64("threshold", a.threshold),
		zap.Int("word_count", len(words)))
	return a.correctPerWord(words)
}

// correctPerWord fuzzy-matches each word independently against the reference
// vocabulary. Order, count and timestamps are untouched.
func (a *Aligner) correctPerWord(words []transcript.TimedWord) []transcript.TimedWord {
	refWords := a.ref.Words()

	out := make([]transcript.TimedWord, len(words))
	copy(out, words)

	for i := range out {
		corrected, matched := a.matcher.BestMatch(out[i].Text, refWords)
		if matched && corrected != out[i].Text {
			out[i].OriginalText = out[i].Text
			out[i].Text = corrected
			out[i].WasCorrected = true
		}
	}

	return out
}

// forcedAlign computes the block diff between the cleaned noisy token
// sequence and the cleaned reference token sequence and walks the opcodes in
// order, emitting corrected words per block kind
func (a *Aligner) forcedAlign(words []transcript.TimedWord) []transcript.TimedWord {
	refWords := a.ref.Words()

	noisyClean := cleanTokens(wordTexts(words))
	refClean := cleanTokens(refWords)

	seq := difflib.NewMatcher(noisyClean, refClean)
	out := make([]transcript.TimedWord, 0, len(refWords))

	for _, op := range seq.GetOpCodes() {
		switch op.Tag {
		case 'e':
			// Matched 1:1: reference spelling, recognizer timing
			for k := 0; k < op.I2-op.I1; k++ {
				noisy := words[op.I1+k]
				out = append(out, transcript.TimedWord{
					Text:       refWords[op.J1+k],
					Start:      noisy.Start,
					End:        noisy.End,
					Confidence: noisy.Confidence,
				})
			}

		case 'r':
			out = a.emitReplacedRun(out, words[op.I1:op.I2], refWords[op.J1:op.J2])

		case 'd':
			// Recognizer noise with no reference counterpart: dropped

		case 'i':
			out = a.emitInsertedRun(out, words, refWords[op.J1:op.J2])
		}
	}

	return out
}

// emitReplacedRun distributes the noisy run's total duration evenly across
// the reference run. Confidence is the minimum across the noisy run.
func (a *Aligner) emitReplacedRun(out []transcript.TimedWord, noisyRun []transcript.TimedWord, refRun []string) []transcript.TimedWord {
	if len(refRun) == 0 || len(noisyRun) == 0 {
		return out
	}

	totalDuration := noisyRun[len(noisyRun)-1].End - noisyRun[0].Start
	timePerWord := totalDuration / float64(len(refRun))

	minConfidence := noisyRun[0].Confidence
	for _, w := range noisyRun[1:] {
		if w.Confidence < minConfidence {
			minConfidence = w.Confidence
		}
	}

	start := noisyRun[0].Start
	for j, refWord := range refRun {
		originalText := ""
		if j < len(noisyRun) {
			originalText = noisyRun[j].Text
		}
		out = append(out, transcript.TimedWord{
			Text:         refWord,
			Start:        start,
			End:          start + timePerWord,
			Confidence:   minConfidence,
			OriginalText: originalText,
			WasCorrected: true,
		})
		start += timePerWord
	}

	return out
}

// emitInsertedRun synthesizes timing for reference words the recognizer
// missed entirely, stepping forward from the previous corrected word's end.
// When the run opens the output, timing anchors at the first noisy word's
// start instead.
func (a *Aligner) emitInsertedRun(out []transcript.TimedWord, words []transcript.TimedWord, refRun []string) []transcript.TimedWord {
	cursor := 0.0
	if len(out) > 0 {
		cursor = out[len(out)-1].End
	} else if len(words) > 0 {
		cursor = words[0].Start
	}

	for _, refWord := range refRun {
		out = append(out, transcript.TimedWord{
			Text:         refWord,
			Start:        cursor,
			End:          cursor + insertedWordStep,
			Confidence:   insertedWordConfidence,
			WasCorrected: true,
			WasInserted:  true,
		})
		cursor += insertedWordStep
	}

	return out
}

// wordTexts extracts the text of each timed word
func wordTexts(words []transcript.TimedWord) []string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return texts
}

// cleanTokens cleans each token for diffing (punctuation stripped,
// lowercased)
func cleanTokens(tokens []string) []string {
	cleaned := make([]string, len(tokens))
	for i, t := range tokens {
		cleaned[i] = matcher.CleanWord(t)
	}
	return cleaned
}
