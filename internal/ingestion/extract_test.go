package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		filename string
		data     []byte
		expected string
	}{
		{"cv.txt", nil, MIMEPlain},
		{"CV.PDF", nil, MIMEPDF},
		{"cv.docx", nil, MIMEDocx},
		{"posting.htm", nil, MIMEHTML},
		{"README.md", nil, MIMEMarkdown},
		{"upload", []byte("plain words here"), MIMEPlain},
		{"upload", []byte("<!DOCTYPE html><html><body>x</body></html>"), MIMEHTML},
		{"upload", []byte("%PDF-1.4 ..."), MIMEPDF},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectMIME(tt.filename, tt.data))
		})
	}
}

func TestExtractText_Plain(t *testing.T) {
	text, err := ExtractText("text/plain; charset=utf-8", []byte("Skills:\r\n  Go  "))
	require.NoError(t, err)
	assert.Equal(t, "Skills:\nGo", text)
}

func TestExtractText_HTML(t *testing.T) {
	page := `<html><head><style>p{}</style><script>var x = 1;</script></head><body>
<nav>Home | Jobs</nav>
<h1>Jane Smith</h1><p>Senior Developer<br>jane@example.com</p>
<h2>Skills</h2><ul><li>Go</li><li>Kubernetes</li></ul>
<footer>copyright</footer></body></html>`

	text, err := ExtractText(MIMEHTML, []byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nSenior Developer\njane@example.com\nSkills\nGo\nKubernetes", text)
}

func TestExtractText_Docx(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`+
		`<w:p><w:r><w:t>John Doe</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>R&amp;D Engineer</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := ExtractText(MIMEDocx, data)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nR&D Engineer", text)
}

func TestExtractText_Errors(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ExtractText(MIMEPDF, []byte("not a pdf"))
	require.Error(t, err)
	var ingErr *Error
	assert.ErrorAs(t, err, &ingErr)

	_, err = ExtractText(MIMEDocx, []byte("not a zip"))
	assert.Error(t, err)
}

func TestDocxXMLToText(t *testing.T) {
	got := docxXMLToText(`<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t></w:r></w:p><w:p><w:t>&lt;c&gt;</w:t></w:p>`)
	assert.Equal(t, "a\tb\n<c>\n", got)
}

// buildDocx assembles the smallest archive the docx reader accepts.
func buildDocx(t *testing.T, document string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	contentTypes := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`
	rels := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	files := map[string]string{
		"[Content_Types].xml":          contentTypes,
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": rels,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
