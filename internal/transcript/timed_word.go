package transcript

import "fmt"

// TimedWord represents a single word with timing information as produced by the
// speech recognition boundary or synthesized during alignment
type TimedWord struct {
	Text         string  `json:"text"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	Confidence   float64 `json:"confidence"`
	OriginalText string  `json:"original_text,omitempty"`
	WasCorrected bool    `json:"was_corrected,omitempty"`
	WasInserted  bool    `json:"was_inserted,omitempty"`
}

// Validate checks if the TimedWord has valid values
func (tw *TimedWord) Validate() error {
	if tw.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if tw.Start < 0 {
		return fmt.Errorf("start cannot be negative")
	}

	if tw.End < tw.Start {
		return fmt.Errorf("end must not be before start")
	}

	if tw.Confidence < 0.0 || tw.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0")
	}

	return nil
}

// Duration returns the length of the word in seconds
func (tw *TimedWord) Duration() float64 {
	return tw.End - tw.Start
}

// MeanConfidence returns the average confidence across words, or 0 for an
// empty slice
func MeanConfidence(words []TimedWord) float64 {
	if len(words) == 0 {
		return 0
	}

	total := 0.0
	for _, w := range words {
		total += w.Confidence
	}
	return total / float64(len(words))
}
