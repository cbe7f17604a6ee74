package cvtext

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractPDF returns the plain text of every readable page.
func ExtractPDF(content []byte) (text string, err error) {
	defer func() {
		// the pdf reader panics on some malformed xref tables
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to extract text from PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		t, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDOCX returns the body text of a Word document.
func ExtractDOCX(content []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	raw := r.Editable().GetContent()
	raw = paragraphEnd.ReplaceAllString(raw, "\n")
	raw = xmlTag.ReplaceAllString(raw, "")
	return html.UnescapeString(raw), nil
}

func Extract(format Format, content []byte) (string, error) {
	switch format {
	case FormatPDF:
		return ExtractPDF(content)
	case FormatDOCX:
		return ExtractDOCX(content)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}
