package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"captionforge/internal/aligner"
	"captionforge/internal/config"
)

// RunReport captures the outcome of one caption generation run
type RunReport struct {
	Timestamp    string        `json:"timestamp"`
	InputPath    string        `json:"input_path"`
	OutputPath   string        `json:"output_path"`
	OutputFormat string        `json:"output_format"`
	SegmentCount int           `json:"segment_count"`
	Stats        aligner.Stats `json:"stats"`
}

// ReportOutput appends one JSON line per completed run to a report log file
type ReportOutput struct {
	filePath string
	logger   *zap.Logger
}

// NewReportOutput creates a ReportOutput writing to the path configured in cfg
func NewReportOutput(cfg *config.Configuration, logger *zap.Logger) (*ReportOutput, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	filePath := cfg.GetReportFilePath()
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	return &ReportOutput{
		filePath: filePath,
		logger:   logger,
	}, nil
}

// GetFilePath returns the report log file path
func (r *ReportOutput) GetFilePath() string {
	return r.filePath
}

// FormatReportAsJSON serializes a run report to a single JSON line
func (r *ReportOutput) FormatReportAsJSON(report *RunReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}
	if report.Timestamp == "" {
		report.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return json.Marshal(report)
}

// WriteReport appends the run report to the report log file
func (r *ReportOutput) WriteReport(report *RunReport) error {
	data, err := r.FormatReportAsJSON(report)
	if err != nil {
		return fmt.Errorf("failed to format run report: %w", err)
	}

	file, err := os.OpenFile(r.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report file %s: %w", r.filePath, err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}

	r.logger.Debug("run report written",
		zap.String("file_path", r.filePath),
		zap.Int("segment_count", report.SegmentCount))

	return nil
}
