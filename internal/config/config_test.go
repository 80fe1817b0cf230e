package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfiguration(t *testing.T) {
	t.Run("should provide caption defaults", func(t *testing.T) {
		// Act
		cfg := NewConfiguration()

		// Assert
		assert.Equal(t, 5, cfg.GetMaxWordsPerCaption())
		assert.Equal(t, 0.6, cfg.GetMinDuration())
		assert.Equal(t, 5.0, cfg.GetMaxDuration())
		assert.False(t, cfg.GetRemovePunctuation())
		assert.Equal(t, "normal", cfg.GetTextCase())
		assert.Equal(t, 0.8, cfg.GetConfidenceThreshold())
		assert.Equal(t, "srt", cfg.GetOutputFormat())
		assert.Equal(t, "./captions.srt", cfg.GetOutputPath())
		assert.Equal(t, "./logs/caption_report.log", cfg.GetReportFilePath())
	})

	t.Run("should have empty input and reference paths by default", func(t *testing.T) {
		// Act
		cfg := NewConfiguration()

		// Assert
		assert.Empty(t, cfg.GetInputPath())
		assert.Empty(t, cfg.GetReferencePath())
	})
}

func TestNewConfigurationFromFile(t *testing.T) {
	t.Run("should load settings from a YAML config file", func(t *testing.T) {
		// Arrange
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		configContent := `input:
  path: "/data/words.json"
captions:
  max_words: 3
  min_duration: 1.0
  text_case: "upper"
correction:
  confidence_threshold: 0.6
`
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		assert.NoError(t, err)

		// Act
		cfg, err := NewConfigurationFromFile(configFile)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "/data/words.json", cfg.GetInputPath())
		assert.Equal(t, 3, cfg.GetMaxWordsPerCaption())
		assert.Equal(t, 1.0, cfg.GetMinDuration())
		assert.Equal(t, "upper", cfg.GetTextCase())
		assert.Equal(t, 0.6, cfg.GetConfidenceThreshold())
		// Untouched keys keep their defaults
		assert.Equal(t, "srt", cfg.GetOutputFormat())
	})

	t.Run("should return error for missing config file", func(t *testing.T) {
		// Act
		cfg, err := NewConfigurationFromFile("/nonexistent/config.yaml")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestNewConfigurationFromEnv(t *testing.T) {
	t.Run("should read settings from environment variables", func(t *testing.T) {
		// Arrange
		t.Setenv("CAPTION_INPUT_PATH", "/env/words.json")
		t.Setenv("CAPTION_MAX_WORDS", "7")
		t.Setenv("CAPTION_OUTPUT_FORMAT", "vtt")

		// Act
		cfg, err := NewConfigurationFromEnv()

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "/env/words.json", cfg.GetInputPath())
		assert.Equal(t, 7, cfg.GetMaxWordsPerCaption())
		assert.Equal(t, "vtt", cfg.GetOutputFormat())
	})

	t.Run("should fall back to defaults without environment overrides", func(t *testing.T) {
		// Act
		cfg, err := NewConfigurationFromEnv()

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 5, cfg.GetMaxWordsPerCaption())
	})
}

func TestConfigurationSetters(t *testing.T) {
	t.Run("should override configured values", func(t *testing.T) {
		// Arrange
		cfg := NewConfiguration()

		// Act
		cfg.SetInputPath("/cli/words.json")
		cfg.SetReferencePath("/cli/script.txt")
		cfg.SetOutputPath("/cli/out.vtt")
		cfg.SetOutputFormat("vtt")

		// Assert
		assert.Equal(t, "/cli/words.json", cfg.GetInputPath())
		assert.Equal(t, "/cli/script.txt", cfg.GetReferencePath())
		assert.Equal(t, "/cli/out.vtt", cfg.GetOutputPath())
		assert.Equal(t, "vtt", cfg.GetOutputFormat())
	})
}
