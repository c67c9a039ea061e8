package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	blankRunOf3 = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and spacing while preserving line structure,
// which the section segmenter depends on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankRunOf3.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses inner runs of spaces and tabs.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return innerSpace.ReplaceAllString(trimmed, " ")
}

// FromFile reads a document from disk, detects its type and returns its text with metadata.
func FromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &Error{Source: path, Message: "file not found", Cause: err}
		}
		return "", nil, &Error{Source: path, Message: "failed to read file", Cause: err}
	}

	mediaType := DetectMIME(path, data)
	text, err := ExtractText(mediaType, data)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}

	return text, NewMetadata(text, path, mediaType), nil
}
