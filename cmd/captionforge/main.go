package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"captionforge/internal/app"
	"captionforge/internal/config"
)

// main is the application entry point and orchestrator setup
func main() {
	var (
		helpFlag      = flag.Bool("help", false, "Show help message")
		versionFlag   = flag.Bool("version", false, "Show version information")
		configFlag    = flag.String("config", "", "Path to config file")
		inputFlag     = flag.String("input", "", "Path to recognizer word-stream JSON")
		referenceFlag = flag.String("reference", "", "Path to reference script text")
		outputFlag    = flag.String("output", "", "Caption output path")
		formatFlag    = flag.String("format", "", "Output format: srt, vtt, json or csv")
	)
	flag.Parse()

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := runApplication(*configFlag, *inputFlag, *referenceFlag, *outputFlag, *formatFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// runApplication contains the core application logic that can be tested
func runApplication(configPath, inputPath, referencePath, outputPath, outputFormat string) error {
	// Create structured logger for main
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("captionforge starting up",
		zap.String("component", "main"),
		zap.String("version", version))

	cfg, err := loadConfiguration(configPath)
	if err != nil {
		logger.Error("failed to load configuration",
			zap.Error(err),
			zap.String("component", "main"))
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Command line flags override configured values
	if inputPath != "" {
		cfg.SetInputPath(inputPath)
	}
	if referencePath != "" {
		cfg.SetReferencePath(referencePath)
	}
	if outputPath != "" {
		cfg.SetOutputPath(outputPath)
	}
	if outputFormat != "" {
		cfg.SetOutputFormat(outputFormat)
	}

	application, err := app.NewApplicationWithConfig(cfg)
	if err != nil {
		logger.Error("failed to create application",
			zap.Error(err),
			zap.String("component", "main"))
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal",
			zap.String("signal", sig.String()),
			zap.String("component", "main"))
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		logger.Error("application runtime error",
			zap.Error(err),
			zap.String("component", "main"))
		return fmt.Errorf("application runtime error: %w", err)
	}

	if err := application.Shutdown(); err != nil {
		return fmt.Errorf("application shutdown error: %w", err)
	}

	logger.Info("captionforge finished successfully",
		zap.String("component", "main"))
	return nil
}

// loadConfiguration resolves configuration from the -config flag, the
// CONFIG_PATH environment variable or environment variables, in that order
func loadConfiguration(configPath string) (*config.Configuration, error) {
	if configPath != "" {
		return config.NewConfigurationFromFile(configPath)
	}
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return config.NewConfigurationFromFile(envPath)
	}
	return config.NewConfigurationFromEnv()
}

const version = "1.0"

// printHelp displays command line usage information
func printHelp() {
	fmt.Println("captionforge - Transcript Correction and Caption Segmentation")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    captionforge [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    -help              Show this help message")
	fmt.Println("    -version           Show version information")
	fmt.Println("    -config PATH       Load configuration from a YAML file")
	fmt.Println("    -input PATH        Recognizer word-stream JSON file")
	fmt.Println("    -reference PATH    Reference script text file (enables correction)")
	fmt.Println("    -output PATH       Caption output file")
	fmt.Println("    -format FORMAT     Output format: srt, vtt, json, csv")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("    Settings are read from a config file (-config or CONFIG_PATH)")
	fmt.Println("    or from CAPTION_* environment variables.")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    captionforge -input words.json -output captions.srt")
	fmt.Println("    captionforge -input words.json -reference script.txt -format vtt")
}

// printVersion displays version and build information
func printVersion() {
	fmt.Println("captionforge")
	fmt.Printf("Version: %s\n", version)
	fmt.Println("Pipeline: ASR word stream -> reference alignment -> caption segmentation")
}
