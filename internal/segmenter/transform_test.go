package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransform(t *testing.T) {
	t.Run("should pass text through with defaults", func(t *testing.T) {
		// Arrange
		transform := NewTransform(false, "normal")

		// Act
		result := transform("Hello world.")

		// Assert
		assert.Equal(t, "Hello world.", result)
	})

	t.Run("should strip punctuation when requested", func(t *testing.T) {
		// Arrange
		transform := NewTransform(true, "normal")

		// Act
		result := transform("Hello, world. How are you?")

		// Assert
		assert.Equal(t, "Hello world How are you", result)
	})

	t.Run("should uppercase text", func(t *testing.T) {
		// Arrange
		transform := NewTransform(false, "upper")

		// Act
		result := transform("Hello world.")

		// Assert
		assert.Equal(t, "HELLO WORLD.", result)
	})

	t.Run("should lowercase text", func(t *testing.T) {
		// Arrange
		transform := NewTransform(false, "lower")

		// Act
		result := transform("Hello World.")

		// Assert
		assert.Equal(t, "hello world.", result)
	})

	t.Run("should treat unknown case mode as normal", func(t *testing.T) {
		// Arrange
		transform := NewTransform(false, "title")

		// Act
		result := transform("Hello world.")

		// Assert
		assert.Equal(t, "Hello world.", result)
	})
}
