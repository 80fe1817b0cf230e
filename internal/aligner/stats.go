package aligner

import (
	"strings"

	"github.com/antzucaro/matchr"

	"captionforge/internal/transcript"
)

// Stats aggregates correction metrics over a corrected word stream
type Stats struct {
	TotalWords       int     `json:"total_words"`
	CorrectedWords   int     `json:"corrected_words"`
	InsertedWords    int     `json:"inserted_words"`
	CorrectionRate   float64 `json:"correction_rate"`
	AccuracyEstimate float64 `json:"accuracy_estimate"`
	EditDistance     int     `json:"edit_distance"`
}

// ComputeStats derives correction metrics from a corrected word stream.
// CorrectionRate and AccuracyEstimate are percentages; an empty stream yields
// a rate of 0 and an accuracy of 100. EditDistance is the Levenshtein
// distance between the pre-correction and post-correction transcript texts.
func ComputeStats(words []transcript.TimedWord) Stats {
	stats := Stats{
		TotalWords:       len(words),
		AccuracyEstimate: 100.0,
	}

	var originalParts, correctedParts []string
	for _, w := range words {
		if w.WasCorrected {
			stats.CorrectedWords++
		}
		if w.WasInserted {
			stats.InsertedWords++
		}

		correctedParts = append(correctedParts, w.Text)
		if w.WasInserted {
			continue
		}
		if w.OriginalText != "" {
			originalParts = append(originalParts, w.OriginalText)
		} else {
			originalParts = append(originalParts, w.Text)
		}
	}

	if stats.TotalWords > 0 {
		stats.CorrectionRate = float64(stats.CorrectedWords) / float64(stats.TotalWords) * 100.0
		stats.AccuracyEstimate = float64(stats.TotalWords-stats.CorrectedWords) / float64(stats.TotalWords) * 100.0
	}

	stats.EditDistance = matchr.Levenshtein(
		strings.Join(originalParts, " "),
		strings.Join(correctedParts, " "))

	return stats
}
