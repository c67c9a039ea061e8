// Package ingestion converts resume and job posting documents (plain text, Markdown, HTML, PDF
// and DOCX) into cleaned plain text for the screening operations.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported media types
const (
	MIMEPlain    = "text/plain"
	MIMEMarkdown = "text/markdown"
	MIMEHTML     = "text/html"
	MIMEPDF      = "application/pdf"
	MIMEDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType is wrapped by errors for media types with no extractor.
var ErrUnsupportedType = errors.New("unsupported file type")

var extensionTypes = map[string]string{
	".txt":      MIMEPlain,
	".text":     MIMEPlain,
	".md":       MIMEMarkdown,
	".markdown": MIMEMarkdown,
	".html":     MIMEHTML,
	".htm":      MIMEHTML,
	".pdf":      MIMEPDF,
	".docx":     MIMEDocx,
}

// DetectMIME guesses the media type from the file name, then from the content.
func DetectMIME(filename string, data []byte) string {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return sniffed
}

// ExtractText returns the cleaned plain text of a document of the given media type.
// Parameters such as charset are ignored.
func ExtractText(mediaType string, data []byte) (string, error) {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base = strings.ToLower(strings.TrimSpace(mediaType))
	}

	var text string
	switch base {
	case MIMEPlain, MIMEMarkdown:
		text = string(data)
	case MIMEHTML:
		text, err = extractHTMLText(data)
	case MIMEPDF:
		text, err = extractPDFText(data)
	case MIMEDocx:
		text, err = extractDocxText(data)
	default:
		return "", &Error{Source: base, Message: "no extractor", Cause: ErrUnsupportedType}
	}
	if err != nil {
		return "", &Error{Source: base, Message: "failed to extract text", Cause: err}
	}
	return CleanText(text), nil
}

var blockSelectors = "p, div, li, tr, section, article, h1, h2, h3, h4, h5, h6, dt, dd"

// extractHTMLText keeps block boundaries as line breaks so section headers stay on their own lines.
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(doc.Find("body").Text()), nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]*>`)
)

// extractDocxText strips the WordprocessingML markup, keeping one line per paragraph.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

// cleanWhitespace trims every line and drops the empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
