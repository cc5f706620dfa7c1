package webscrape

import (
	"strings"
)

// Default chunking parameters, measured in characters (Unicode code points).
const (
	DefaultWindowSize = 900
	DefaultStep       = 800
)

// fragmentSeparator splits a line into fragments. Two consecutive spaces
// usually separate table cells or side-by-side blocks in rendered text.
const fragmentSeparator = "  "

// Normalize prepares page text for chunking: every line is trimmed and split
// on two consecutive spaces, empty fragments are dropped and the survivors
// are joined with a single newline.
//
// Normalize is idempotent.
func Normalize(text string) string {
	var fragments []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		for _, phrase := range strings.Split(strings.TrimSpace(line), fragmentSeparator) {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				fragments = append(fragments, phrase)
			}
		}
	}
	return strings.Join(fragments, "\n")
}

// isLineBreak reports whether r ends a line. The set matches the usual
// universal-newline definition, including form feed and the Unicode line
// and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// ChunkText splits text into windows of at most windowSize characters.
// Windows start at 0, step, 2*step, ... so consecutive windows overlap by
// windowSize-step characters. A final window shorter than windowSize covers
// whatever the last full window left over.
//
// Empty text produces no windows; text no longer than windowSize produces
// exactly one window. Returns EINVALID unless 0 < step < windowSize.
func ChunkText(text string, windowSize, step int) ([]string, error) {
	if windowSize <= 0 {
		return nil, Errorf(EINVALID, "window size must be positive, got %d", windowSize)
	}
	if step <= 0 {
		return nil, Errorf(EINVALID, "step must be positive, got %d", step)
	}
	if step >= windowSize {
		return nil, Errorf(EINVALID, "step %d must be smaller than window size %d", step, windowSize)
	}

	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil, nil
	}
	if n <= windowSize {
		return []string{text}, nil
	}

	windows := make([]string, 0, (n-windowSize)/step+2)
	start := 0
	for ; start+windowSize <= n; start += step {
		windows = append(windows, string(runes[start:start+windowSize]))
	}
	// The last full window started at start-step; a remainder is needed
	// only if it stopped short of the end.
	if start-step+windowSize < n {
		windows = append(windows, string(runes[start:]))
	}
	return windows, nil
}
