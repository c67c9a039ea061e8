package patterns

import "strings"

// containsAny reports whether s contains any of the needles as a substring.
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

// HasEducationKeyword reports whether the lower-cased line mentions an education marker.
func (l *Library) HasEducationKeyword(lineLower string) bool {
	return containsAny(lineLower, l.EducationKeywords)
}

// HasCompanySuffix reports whether the line carries a company suffix. Matching is case-sensitive.
func (l *Library) HasCompanySuffix(line string) bool {
	return containsAny(line, l.CompanySuffixes)
}
