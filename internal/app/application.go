package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"captionforge/internal/aligner"
	"captionforge/internal/config"
	"captionforge/internal/logger"
	"captionforge/internal/segmenter"
	"captionforge/internal/subtitle"
	"captionforge/internal/transcript"
)

// Application orchestrates the caption generation pipeline: load the
// recognizer word stream, correct it against an optional reference script,
// partition it into caption segments and serialize the result
type Application struct {
	config       *config.Configuration
	zapLogger    *zap.Logger
	reportOutput *logger.ReportOutput
}

// Result summarizes one completed pipeline run
type Result struct {
	Captions []segmenter.Caption
	Stats    aligner.Stats
}

// NewApplication creates a new application instance with all components initialized.
// Configuration is loaded from the file named by CONFIG_PATH when set,
// otherwise from environment variables.
func NewApplication() (*Application, error) {
	var cfg *config.Configuration
	var err error

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		cfg, err = config.NewConfigurationFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.NewConfigurationFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load config from environment: %w", err)
		}
	}

	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig creates a new application instance from an
// explicit configuration
func NewApplicationWithConfig(cfg *config.Configuration) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Centralized structured logging
	zapLogger := logger.NewLogger()

	reportOutput, err := logger.NewReportOutput(cfg, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create report output: %w", err)
	}

	return &Application{
		config:       cfg,
		zapLogger:    zapLogger,
		reportOutput: reportOutput,
	}, nil
}

// Run executes the caption generation pipeline once
func (app *Application) Run(ctx context.Context) error {
	app.zapLogger.Info("starting caption generation",
		zap.String("input", app.config.GetInputPath()),
		zap.String("output", app.config.GetOutputPath()),
		zap.String("format", app.config.GetOutputFormat()))

	result, err := app.runPipeline(ctx)
	if err != nil {
		return err
	}

	app.zapLogger.Info("caption generation complete",
		zap.Int("segment_count", len(result.Captions)),
		zap.Int("total_words", result.Stats.TotalWords),
		zap.Int("corrected_words", result.Stats.CorrectedWords),
		zap.Float64("correction_rate", result.Stats.CorrectionRate))

	report := &logger.RunReport{
		InputPath:    app.config.GetInputPath(),
		OutputPath:   app.config.GetOutputPath(),
		OutputFormat: app.config.GetOutputFormat(),
		SegmentCount: len(result.Captions),
		Stats:        result.Stats,
	}
	if err := app.reportOutput.WriteReport(report); err != nil {
		// A failed report must not fail the run; the captions are written
		app.zapLogger.Warn("failed to write run report", zap.Error(err))
	}

	return nil
}

// runPipeline executes load, correction, segmentation and serialization,
// checking for cancellation between stages
func (app *Application) runPipeline(ctx context.Context) (*Result, error) {
	inputPath := app.config.GetInputPath()
	if inputPath == "" {
		return nil, fmt.Errorf("no input word stream configured")
	}

	words, err := transcript.LoadWordsFromFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load word stream: %w", err)
	}
	app.zapLogger.Info("word stream loaded",
		zap.String("path", inputPath),
		zap.Int("word_count", len(words)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corrected, stats, err := app.correctWords(words)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	captions := app.segmentWords(corrected)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := app.writeCaptions(captions); err != nil {
		return nil, err
	}

	return &Result{Captions: captions, Stats: stats}, nil
}

// correctWords aligns the word stream against the configured reference
// script. Without a reference the stream passes through unchanged.
func (app *Application) correctWords(words []transcript.TimedWord) ([]transcript.TimedWord, aligner.Stats, error) {
	referencePath := app.config.GetReferencePath()
	if referencePath == "" {
		app.zapLogger.Info("no reference text configured, skipping correction")
		return words, aligner.ComputeStats(words), nil
	}

	raw, err := os.ReadFile(referencePath)
	if err != nil {
		return nil, aligner.Stats{}, fmt.Errorf("failed to read reference text %s: %w", referencePath, err)
	}

	ref := transcript.NewReferenceText(string(raw))
	al := aligner.NewWithLogger(ref, app.config.GetConfidenceThreshold(), app.zapLogger)
	corrected := al.Align(words)
	stats := aligner.ComputeStats(corrected)

	app.zapLogger.Info("transcript corrected",
		zap.String("reference", referencePath),
		zap.Int("reference_words", len(ref.Words())),
		zap.Int("corrected_words", stats.CorrectedWords),
		zap.Int("inserted_words", stats.InsertedWords),
		zap.Float64("accuracy_estimate", stats.AccuracyEstimate))

	return corrected, stats, nil
}

// segmentWords partitions the corrected word stream into caption segments
func (app *Application) segmentWords(words []transcript.TimedWord) []segmenter.Caption {
	transform := segmenter.NewTransform(
		app.config.GetRemovePunctuation(),
		app.config.GetTextCase())

	seg := segmenter.NewWithLogger(segmenter.Options{
		MaxWords:    app.config.GetMaxWordsPerCaption(),
		MinDuration: app.config.GetMinDuration(),
		MaxDuration: app.config.GetMaxDuration(),
		Transform:   transform,
	}, app.zapLogger)

	return seg.Segment(words)
}

// writeCaptions serializes the caption segments in the configured format
func (app *Application) writeCaptions(captions []segmenter.Caption) error {
	format, err := subtitle.ParseFormat(app.config.GetOutputFormat())
	if err != nil {
		return err
	}

	segments := make([]subtitle.Segment, len(captions))
	for i, c := range captions {
		segments[i] = subtitle.Segment{
			ID:    c.ID,
			Text:  c.Text,
			Start: c.Start,
			End:   c.End,
		}
	}

	outputPath := app.config.GetOutputPath()
	if err := subtitle.WriteFile(outputPath, format, segments); err != nil {
		return err
	}

	app.zapLogger.Info("captions written",
		zap.String("path", outputPath),
		zap.String("format", string(format)),
		zap.Int("segment_count", len(segments)))

	return nil
}

// Shutdown flushes buffered log entries
func (app *Application) Shutdown() error {
	// Sync can fail on stderr sinks; that is not a shutdown failure
	_ = app.zapLogger.Sync()
	return nil
}
