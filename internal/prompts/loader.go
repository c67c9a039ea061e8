// Package prompts provides a loader for the text templates behind generated summaries and
// interview questions. Templates are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Template files
const (
	QuestionsFile = "questions.json"
	SummariesFile = "summaries.json"
)

//go:embed *.json
var templateFiles embed.FS

// cache stores parsed template files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a template by filename and key.
// Returns an error if the file or key is not found.
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	tmpl, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("template key %q not found in %s", key, filename)
	}

	return tmpl, nil
}

// MustGet retrieves a template by filename and key, panicking if not found.
// The embedded files are fixed at build time, so a miss is a programming error.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load template: %v", err))
	}
	return tmpl
}

// Format replaces placeholders in the form {{.Key}} with values from data.
// Unknown placeholders are left in place.
func Format(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}
	pairs := make([]string, 0, 2*len(data))
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Render is MustGet followed by Format.
func Render(filename, key string, data map[string]string) string {
	return Format(MustGet(filename, key), data)
}

// loadFile loads and caches a template file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if templates, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return templates, nil
	}
	cacheMu.RUnlock()

	data, err := templateFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = templates
	cacheMu.Unlock()

	return templates, nil
}

// List returns the template keys in a file, sorted.
func List(filename string) ([]string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Check loads every embedded template file and rejects empty templates
// and templates whose placeholders do not close.
func Check() error {
	for _, file := range []string{QuestionsFile, SummariesFile} {
		keys, err := List(file)
		if err != nil {
			return err
		}
		for _, key := range keys {
			tmpl, err := Get(file, key)
			if err != nil {
				return err
			}
			if err := checkTemplate(file, key, tmpl); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkTemplate(file, key, tmpl string) error {
	if strings.TrimSpace(tmpl) == "" {
		return fmt.Errorf("template %q in %s is empty", key, file)
	}
	if strings.Count(tmpl, "{{") != strings.Count(tmpl, "}}") {
		return fmt.Errorf("template %q in %s has an unclosed placeholder", key, file)
	}
	return nil
}
