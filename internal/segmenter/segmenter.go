package segmenter

import (
	"strings"

	"go.uber.org/zap"

	"captionforge/internal/transcript"
)

const (
	// gapThreshold is the silence, in seconds, between consecutive words
	// that forces a segment break (a natural pause).
	gapThreshold = 0.5

	// minSegmentGap is the minimum spacing, in seconds, enforced between
	// consecutive segments.
	minSegmentGap = 0.05

	// absoluteMinDuration is the shortest legible on-screen duration. It is
	// applied last, after all other timing adjustments.
	absoluteMinDuration = 0.2
)

// Transform rewrites a segment's joined text before it is emitted
type Transform func(string) string

// Options configures a Segmenter.
//
// MaxDuration is accepted for configuration compatibility but is not a
// segment-closing condition: sentence boundaries, the word-count cap and
// inter-word gaps are the only close triggers.
type Options struct {
	MaxWords    int
	MinDuration float64
	MaxDuration float64
	Transform   Transform
}

// Caption is a single timed on-screen text unit
type Caption struct {
	ID        int                    `json:"id"`
	Text      string                 `json:"text"`
	Start     float64                `json:"start"`
	End       float64                `json:"end"`
	WordCount int                    `json:"word_count"`
	Words     []transcript.TimedWord `json:"words,omitempty"`
	Duration  float64                `json:"duration"`
}

// Segmenter partitions an ordered timed-word sequence into caption segments
// with strict non-overlap. A single greedy left-to-right pass closes segments
// on sentence-ending punctuation, the word-count cap, inter-word gaps above
// the pause threshold, or end of input, in that priority order.
type Segmenter struct {
	opts   Options
	logger *zap.Logger
}

// New creates a new Segmenter with the given options
func New(opts Options) *Segmenter {
	return NewWithLogger(opts, zap.NewNop())
}

// NewWithLogger creates a new Segmenter with the given options and logger
func NewWithLogger(opts Options, logger *zap.Logger) *Segmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxWords < 1 {
		opts.MaxWords = 1
	}
	return &Segmenter{opts: opts, logger: logger}
}

// Segment partitions words into caption segments. Output segments carry
// sequential 1-based IDs matching their position, appear in non-decreasing
// start-time order and never overlap. Empty input yields no segments.
func (s *Segmenter) Segment(words []transcript.TimedWord) []Caption {
	if len(words) == 0 {
		return []Caption{}
	}

	captions := make([]Caption, 0)
	current := make([]transcript.TimedWord, 0, s.opts.MaxWords)
	lastEndTime := 0.0

	for i, word := range words {
		current = append(current, word)

		if !s.shouldClose(current, words, i) {
			continue
		}

		var next *transcript.TimedWord
		if i+1 < len(words) {
			next = &words[i+1]
		}

		caption := s.closeSegment(current, lastEndTime, next, len(captions)+1)
		captions = append(captions, caption)
		lastEndTime = caption.End
		current = make([]transcript.TimedWord, 0, s.opts.MaxWords)
	}

	s.logger.Debug("segmentation complete",
		zap.Int("word_count", len(words)),
		zap.Int("segment_count", len(captions)))

	return captions
}

// shouldClose decides whether the accumulated segment closes at word index i.
// Conditions are checked in priority order; the sentence boundary always wins
// over the word-count cap.
func (s *Segmenter) shouldClose(current []transcript.TimedWord, words []transcript.TimedWord, i int) bool {
	if endsSentence(words[i].Text) {
		return true
	}

	if len(current) >= s.opts.MaxWords {
		return true
	}

	if i+1 < len(words) && words[i+1].Start-words[i].End > gapThreshold {
		return true
	}

	return i == len(words)-1
}

// closeSegment computes final segment timing with strict non-overlap and
// emits the caption
func (s *Segmenter) closeSegment(words []transcript.TimedWord, lastEndTime float64, next *transcript.TimedWord, id int) Caption {
	start := words[0].Start
	if floor := lastEndTime + minSegmentGap; start < floor {
		start = floor
	}

	end := words[len(words)-1].End

	// Extend short segments toward the minimum duration without encroaching
	// on the following word's eventual start
	if end-start < s.opts.MinDuration {
		target := start + s.opts.MinDuration
		if next != nil {
			if limit := next.Start - minSegmentGap; target > limit {
				target = limit
			}
		}
		if target > end {
			end = target
		}
	}

	// Re-clamp in case the extension moved things around
	if floor := lastEndTime + minSegmentGap; start < floor {
		start = floor
	}

	// Absolute legibility floor, applied irrespective of a following word
	if end-start < absoluteMinDuration {
		end = start + absoluteMinDuration
	}

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	text := strings.Join(texts, " ")
	if s.opts.Transform != nil {
		text = s.opts.Transform(text)
	}

	return Caption{
		ID:        id,
		Text:      text,
		Start:     start,
		End:       end,
		WordCount: len(words),
		Words:     words,
		Duration:  end - start,
	}
}

// endsSentence reports whether the trimmed word text ends with
// sentence-ending punctuation
func endsSentence(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last := trimmed[len(trimmed)-1]
	return last == '.' || last == '!' || last == '?'
}
