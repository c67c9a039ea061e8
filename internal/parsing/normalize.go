package parsing

import (
	"strings"
	"unicode"
)

// TitleCase upper-cases every letter that follows a non-letter and lower-cases the rest,
// so "node.js" becomes "Node.Js" and "ci/cd" becomes "Ci/Cd".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		if isCased(r) {
			if prevCased {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevCased = true
			continue
		}
		b.WriteRune(r)
		prevCased = false
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// dedupeFold removes case-insensitive duplicates, keeping the first occurrence.
func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// dedupe removes exact duplicates, keeping the first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// capAt truncates items to at most limit entries.
func capAt(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// splitLines splits text on newlines, tolerating CRLF input.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
