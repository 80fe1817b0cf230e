package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration provides type-safe access to application settings
type Configuration struct {
	viper *viper.Viper
}

// setDefaults applies the default settings shared by all constructors
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "")
	v.SetDefault("reference.path", "")
	v.SetDefault("output.path", "./captions.srt")
	v.SetDefault("output.format", "srt")
	v.SetDefault("captions.max_words", 5)
	v.SetDefault("captions.min_duration", 0.6)
	v.SetDefault("captions.max_duration", 5.0)
	v.SetDefault("captions.remove_punctuation", false)
	v.SetDefault("captions.text_case", "normal")
	v.SetDefault("correction.confidence_threshold", 0.8)
	v.SetDefault("report.file_path", "./logs/caption_report.log")
}

// NewConfiguration creates a new Configuration instance with default settings
func NewConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)
	return &Configuration{viper: v}
}

// NewConfigurationFromFile creates a Configuration instance from a config file
func NewConfigurationFromFile(configFile string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	return &Configuration{viper: v}, nil
}

// NewConfigurationFromEnv creates a Configuration instance that reads from environment variables
func NewConfigurationFromEnv() (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	// Set up environment variable mapping
	v.SetEnvPrefix("CAPTION")
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("input.path", "CAPTION_INPUT_PATH")
	v.BindEnv("reference.path", "CAPTION_REFERENCE_PATH")
	v.BindEnv("output.path", "CAPTION_OUTPUT_PATH")
	v.BindEnv("output.format", "CAPTION_OUTPUT_FORMAT")
	v.BindEnv("captions.max_words", "CAPTION_MAX_WORDS")
	v.BindEnv("captions.min_duration", "CAPTION_MIN_DURATION")
	v.BindEnv("captions.max_duration", "CAPTION_MAX_DURATION")
	v.BindEnv("captions.remove_punctuation", "CAPTION_REMOVE_PUNCTUATION")
	v.BindEnv("captions.text_case", "CAPTION_TEXT_CASE")
	v.BindEnv("correction.confidence_threshold", "CAPTION_CONFIDENCE_THRESHOLD")
	v.BindEnv("report.file_path", "CAPTION_REPORT_FILE_PATH")

	return &Configuration{viper: v}, nil
}

// SetInputPath overrides the configured input word-stream path
func (c *Configuration) SetInputPath(path string) {
	c.viper.Set("input.path", path)
}

// SetReferencePath overrides the configured reference text path
func (c *Configuration) SetReferencePath(path string) {
	c.viper.Set("reference.path", path)
}

// SetOutputPath overrides the configured output path
func (c *Configuration) SetOutputPath(path string) {
	c.viper.Set("output.path", path)
}

// SetOutputFormat overrides the configured output format
func (c *Configuration) SetOutputFormat(format string) {
	c.viper.Set("output.format", format)
}

// GetInputPath returns the path of the recognizer word-stream JSON file
func (c *Configuration) GetInputPath() string {
	return c.viper.GetString("input.path")
}

// GetReferencePath returns the path of the optional reference text file
func (c *Configuration) GetReferencePath() string {
	return c.viper.GetString("reference.path")
}

// GetOutputPath returns the caption output path
func (c *Configuration) GetOutputPath() string {
	return c.viper.GetString("output.path")
}

// GetOutputFormat returns the caption output format (srt, vtt, json or csv)
func (c *Configuration) GetOutputFormat() string {
	return c.viper.GetString("output.format")
}

// GetMaxWordsPerCaption returns the word-count cap per caption segment
func (c *Configuration) GetMaxWordsPerCaption() int {
	return c.viper.GetInt("captions.max_words")
}

// GetMinDuration returns the minimum caption display duration in seconds
func (c *Configuration) GetMinDuration() float64 {
	return c.viper.GetFloat64("captions.min_duration")
}

// GetMaxDuration returns the configured maximum caption duration in seconds
func (c *Configuration) GetMaxDuration() float64 {
	return c.viper.GetFloat64("captions.max_duration")
}

// GetRemovePunctuation returns whether punctuation is stripped from caption text
func (c *Configuration) GetRemovePunctuation() bool {
	return c.viper.GetBool("captions.remove_punctuation")
}

// GetTextCase returns the caption text casing mode (normal, upper or lower)
func (c *Configuration) GetTextCase() string {
	return c.viper.GetString("captions.text_case")
}

// GetConfidenceThreshold returns the mean-confidence threshold below which
// forced alignment is used
func (c *Configuration) GetConfidenceThreshold() float64 {
	return c.viper.GetFloat64("correction.confidence_threshold")
}

// GetReportFilePath returns the path of the run report log file
func (c *Configuration) GetReportFilePath() string {
	return c.viper.GetString("report.file_path")
}
