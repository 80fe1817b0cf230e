package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Similarity(t *testing.T) {
	t.Run("should return 1.0 for identical words", func(t *testing.T) {
		// Arrange
		m := New()

		// Act
		ratio := m.Similarity("hello", "hello")

		// Assert
		assert.Equal(t, 1.0, ratio)
	})

	t.Run("should ignore case and punctuation", func(t *testing.T) {
		// Arrange
		m := New()

		// Act
		ratio := m.Similarity("Hello!", "hello")

		// Assert
		assert.Equal(t, 1.0, ratio)
	})

	t.Run("should return 0 for empty cleaned input", func(t *testing.T) {
		// Arrange
		m := New()

		// Act & Assert
		assert.Equal(t, 0.0, m.Similarity("", "hello"))
		assert.Equal(t, 0.0, m.Similarity("!!!", "hello"))
	})

	t.Run("should return high ratio for near matches", func(t *testing.T) {
		// Arrange
		m := New()

		// Act
		ratio := m.Similarity("wrld", "world")

		// Assert
		assert.Greater(t, ratio, 0.8)
	})
}

func TestMatcher_BestMatch(t *testing.T) {
	t.Run("should correct a noisy word to the closest reference word", func(t *testing.T) {
		// Arrange
		m := New()
		refWords := []string{"Hello", "world."}

		// Act
		corrected, matched := m.BestMatch("wrld", refWords)

		// Assert
		assert.True(t, matched)
		assert.Equal(t, "world.", corrected)
	})

	t.Run("should return short word unchanged on exact reference match", func(t *testing.T) {
		// Arrange
		m := New()
		refWords := []string{"to", "tomorrow", "total"}

		// Act
		corrected, matched := m.BestMatch("to", refWords)

		// Assert
		assert.False(t, matched, "short words must bypass fuzzy matching")
		assert.Equal(t, "to", corrected)
	})

	t.Run("should accept substring containment in secondary pass", func(t *testing.T) {
		// Arrange
		m := New()
		refWords := []string{"playing"}

		// Act
		corrected, matched := m.BestMatch("play", refWords)

		// Assert
		assert.True(t, matched)
		assert.Equal(t, "playing", corrected)
	})

	t.Run("should return input unchanged when nothing matches", func(t *testing.T) {
		// Arrange
		m := New()
		refWords := []string{"completely", "different", "vocabulary"}

		// Act
		corrected, matched := m.BestMatch("xyz", refWords)

		// Assert
		assert.False(t, matched)
		assert.Equal(t, "xyz", corrected)
	})

	t.Run("should return input unchanged for empty reference list", func(t *testing.T) {
		// Arrange
		m := New()

		// Act
		corrected, matched := m.BestMatch("hello", nil)

		// Assert
		assert.False(t, matched)
		assert.Equal(t, "hello", corrected)
	})

	t.Run("should return input unchanged for empty input", func(t *testing.T) {
		// Arrange
		m := New()

		// Act
		corrected, matched := m.BestMatch("", []string{"hello"})

		// Assert
		assert.False(t, matched)
		assert.Equal(t, "", corrected)
	})

	t.Run("should honor custom acceptance threshold", func(t *testing.T) {
		// Arrange
		m := New(WithAcceptThreshold(0.95))

		// Act
		corrected, matched := m.BestMatch("wrld", []string{"world"})

		// Assert
		assert.False(t, matched, "0.89 ratio must not pass a 0.95 acceptance threshold")
		assert.Equal(t, "wrld", corrected)
	})

	t.Run("should carry trailing punctuation from the original word", func(t *testing.T) {
		// Arrange
		m := New()
		refWords := []string{"world"}

		// Act
		corrected, matched := m.BestMatch("wrld,", refWords)

		// Assert
		assert.True(t, matched)
		assert.Equal(t, "world,", corrected)
	})

	t.Run("should not double punctuation when reference word carries its own", func(t *testing.T) {
		// Arrange
		m := New()
		refWords := []string{"world."}

		// Act
		corrected, matched := m.BestMatch("wrld.", refWords)

		// Assert
		assert.True(t, matched)
		assert.Equal(t, "world.", corrected)
	})
}

func TestCleanWord(t *testing.T) {
	t.Run("should strip punctuation and lowercase", func(t *testing.T) {
		// Act & Assert
		assert.Equal(t, "hello", CleanWord("Hello!"))
		assert.Equal(t, "dont", CleanWord("don't"))
		assert.Equal(t, "123", CleanWord("(123)"))
		assert.Equal(t, "", CleanWord("..."))
	})
}
