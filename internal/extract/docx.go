package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParaEnd = regexp.MustCompile(`</w:p>`)
	docxTags    = regexp.MustCompile(`<[^>]+>`)
)

// docxText pulls the raw text out of the DOCX archive's main document part.
// No layout reconstruction; paragraphs become newlines.
func docxText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	text := docxParaEnd.ReplaceAllString(xml, "\n")
	text = docxTags.ReplaceAllString(text, "")
	return html.UnescapeString(text), nil
}
