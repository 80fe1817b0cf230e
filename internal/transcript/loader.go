package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// wordStreamEnvelope is the wrapped JSON shape some recognizers emit,
// with the word list nested under a "words" key
type wordStreamEnvelope struct {
	Words []TimedWord `json:"words"`
}

// LoadWords decodes a word stream from JSON. Both a bare array of words and
// an object with a "words" field are accepted, since recognizers differ in
// which shape they emit.
func LoadWords(r io.Reader) ([]TimedWord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read word stream: %w", err)
	}

	if len(data) == 0 {
		return []TimedWord{}, nil
	}

	// Try the bare array shape first
	var words []TimedWord
	if err := json.Unmarshal(data, &words); err == nil {
		return words, nil
	}

	// Fall back to the enveloped shape
	var envelope wordStreamEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse word stream JSON: %w", err)
	}
	if envelope.Words == nil {
		return []TimedWord{}, nil
	}

	return envelope.Words, nil
}

// LoadWordsFromFile decodes a word stream from the JSON file at path
func LoadWordsFromFile(path string) ([]TimedWord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word stream file %s: %w", path, err)
	}
	defer file.Close()

	words, err := LoadWords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load word stream from %s: %w", path, err)
	}

	return words, nil
}
