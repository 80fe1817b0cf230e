// Package subtitle serializes caption segments to the common subtitle and
// data interchange formats: SRT, WebVTT, JSON and CSV.
package subtitle

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Format identifies a supported output format
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates and normalizes a format name
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatSRT:
		return FormatSRT, nil
	case FormatVTT:
		return FormatVTT, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected srt, vtt, json or csv)", name)
	}
}

// Segment is the caption shape the serializers consume. It mirrors the
// segmenter's Caption record without importing it, keeping this package a
// pure formatting boundary.
type Segment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Write serializes segments to w in the given format
func Write(w io.Writer, format Format, segments []Segment) error {
	switch format {
	case FormatSRT:
		return WriteSRT(w, segments)
	case FormatVTT:
		return WriteVTT(w, segments)
	case FormatJSON:
		return WriteJSON(w, segments)
	case FormatCSV:
		return WriteCSV(w, segments)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteFile serializes segments to the file at path in the given format
func WriteFile(path string, format Format, segments []Segment) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, format, segments); err != nil {
		return fmt.Errorf("failed to write %s output to %s: %w", format, path, err)
	}

	return nil
}

// WriteSRT writes segments as SubRip subtitles
func WriteSRT(w io.Writer, segments []Segment) error {
	for i, seg := range segments {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n",
			seg.ID,
			formatTimestamp(seg.Start, ","),
			formatTimestamp(seg.End, ","),
			seg.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVTT writes segments as WebVTT subtitles
func WriteVTT(w io.Writer, segments []Segment) error {
	if _, err := fmt.Fprint(w, "WEBVTT\n\n"); err != nil {
		return err
	}
	for i, seg := range segments {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s --> %s\n%s\n",
			formatTimestamp(seg.Start, "."),
			formatTimestamp(seg.End, "."),
			seg.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes segments as an indented JSON array
func WriteJSON(w io.Writer, segments []Segment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(segments)
}

// WriteCSV writes segments as CSV with an id,start,end,text header
func WriteCSV(w io.Writer, segments []Segment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "start", "end", "text"}); err != nil {
		return err
	}
	for _, seg := range segments {
		record := []string{
			strconv.Itoa(seg.ID),
			strconv.FormatFloat(seg.Start, 'f', 3, 64),
			strconv.FormatFloat(seg.End, 'f', 3, 64),
			seg.Text,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatTimestamp converts seconds to HH:MM:SS<sep>mmm, the shared shape of
// SRT (comma separator) and WebVTT (dot separator) timestamps
func formatTimestamp(seconds float64, sep string) string {
	total := math.Abs(seconds)
	hours := int(total / 3600)
	remainder := math.Mod(total, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Round(math.Mod(secs, 1) * 1000))
	if millis >= 1000 {
		millis -= 1000
		secs += 1
		if secs >= 60 {
			secs -= 60
			minutes++
			if minutes >= 60 {
				minutes -= 60
				hours++
			}
		}
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, int(secs), sep, millis)
}
