package parsing

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/patterns"
	"github.com/jonathan/resume-screener/internal/types"
)

// Segmenter splits resume text into named sections by scanning for header lines.
type Segmenter struct {
	headers []patterns.SectionPattern
}

// NewSegmenter creates a segmenter using the library's section header patterns.
func NewSegmenter(lib *patterns.Library) *Segmenter {
	return &Segmenter{headers: lib.SectionPatterns}
}

// Segment returns section name to content, with content lines trimmed and newline-joined.
// Lines before the first header are dropped. A recurring header replaces the earlier section.
func (s *Segmenter) Segment(text string) types.SectionMap {
	sections := make(types.SectionMap)

	current := ""
	var buf []string
	flush := func() {
		if current != "" && len(buf) > 0 {
			sections[current] = strings.Join(buf, "\n")
		}
	}

	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, ok := s.header(line); ok {
			flush()
			current = name
			buf = buf[:0]
			continue
		}

		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}

// header reports the first section whose pattern matches the line.
func (s *Segmenter) header(line string) (string, bool) {
	for _, h := range s.headers {
		if h.Pattern.MatchString(line) {
			return h.Name, true
		}
	}
	return "", false
}
