package sentiment

import "errors"

var (
	// ErrInvalidInput is returned when the input text is empty.
	ErrInvalidInput = errors.New("text must be a non-empty string")

	// ErrResourceInit is returned by NewAnalyzer when a lexicon or
	// stopword table fails validation. The analyzer never degrades
	// partially; construction either succeeds fully or fails.
	ErrResourceInit = errors.New("analyzer resources failed to initialize")
)
