package aligner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"captionforge/internal/transcript"
)

func TestComputeStats(t *testing.T) {
	t.Run("should compute correction rate and accuracy estimate", func(t *testing.T) {
		// Arrange: 10 words, 3 corrected
		words := make([]transcript.TimedWord, 10)
		for i := range words {
			words[i] = transcript.TimedWord{Text: "word", Start: float64(i), End: float64(i) + 0.5, Confidence: 0.9}
		}
		words[1].WasCorrected = true
		words[4].WasCorrected = true
		words[7].WasCorrected = true

		// Act
		stats := ComputeStats(words)

		// Assert
		assert.Equal(t, 10, stats.TotalWords)
		assert.Equal(t, 3, stats.CorrectedWords)
		assert.Equal(t, 0, stats.InsertedWords)
		assert.InDelta(t, 30.0, stats.CorrectionRate, 1e-9)
		assert.InDelta(t, 70.0, stats.AccuracyEstimate, 1e-9)
	})

	t.Run("should count inserted words separately", func(t *testing.T) {
		// Arrange
		words := []transcript.TimedWord{
			{Text: "hello", Start: 0, End: 0.4, Confidence: 0.9},
			{Text: "there", Start: 0.4, End: 0.7, Confidence: 0.5, WasCorrected: true, WasInserted: true},
		}

		// Act
		stats := ComputeStats(words)

		// Assert
		assert.Equal(t, 2, stats.TotalWords)
		assert.Equal(t, 1, stats.CorrectedWords)
		assert.Equal(t, 1, stats.InsertedWords)
	})

	t.Run("should report zero rate and full accuracy for empty stream", func(t *testing.T) {
		// Act
		stats := ComputeStats(nil)

		// Assert
		assert.Equal(t, 0, stats.TotalWords)
		assert.Equal(t, 0.0, stats.CorrectionRate)
		assert.Equal(t, 100.0, stats.AccuracyEstimate)
		assert.Equal(t, 0, stats.EditDistance)
	})

	t.Run("should measure edit distance between original and corrected text", func(t *testing.T) {
		// Arrange
		words := []transcript.TimedWord{
			{Text: "hello", Start: 0, End: 0.4, Confidence: 0.9},
			{Text: "world", Start: 0.5, End: 0.9, Confidence: 0.6, OriginalText: "wrld", WasCorrected: true},
		}

		// Act
		stats := ComputeStats(words)

		// Assert: "hello wrld" -> "hello world" is one insertion
		assert.Equal(t, 1, stats.EditDistance)
	})

	t.Run("should report zero edit distance for uncorrected stream", func(t *testing.T) {
		// Arrange
		words := []transcript.TimedWord{
			{Text: "hello", Start: 0, End: 0.4, Confidence: 0.9},
			{Text: "world", Start: 0.5, End: 0.9, Confidence: 0.9},
		}

		// Act
		stats := ComputeStats(words)

		// Assert
		assert.Equal(t, 0, stats.EditDistance)
	})
}
