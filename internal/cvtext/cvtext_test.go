package cvtext

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxSize = 5 * 1024 * 1024

func sampleCV() string {
	para := "Jane Doe is a backend engineer with eight years of experience building payment systems in Go and Python. "
	var b strings.Builder
	b.WriteString("Summary\n")
	for i := 0; i < 4; i++ {
		b.WriteString(para)
	}
	b.WriteString("\nExperience\nSenior Engineer at Acme 2019 to 2024\n")
	b.WriteString("Education\nBachelor of Computer Science, State University\n")
	b.WriteString("Skills\nGo, PostgreSQL, Kubernetes, distributed systems\n")
	return b.String()
}

func fakePDF() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
}

func TestExtension(t *testing.T) {
	ext, f, err := Extension("Resume.PDF")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", ext)
	assert.Equal(t, FormatPDF, f)

	_, f, err = Extension("cv.docx")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	for _, name := range []string{"", "cv.txt", "cv.doc", "cv"} {
		_, _, err := Extension(name)
		var ve *ValidationError
		assert.True(t, errors.As(err, &ve), name)
	}
}

func TestValidateFile(t *testing.T) {
	t.Run("pdf accepted", func(t *testing.T) {
		f, err := ValidateFile("cv.pdf", fakePDF(), maxSize)
		require.NoError(t, err)
		assert.Equal(t, FormatPDF, f)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := ValidateFile("cv.pdf", nil, maxSize)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("too large rejected", func(t *testing.T) {
		big := append(fakePDF(), make([]byte, 64)...)
		_, err := ValidateFile("cv.pdf", big, 32)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("renamed text file rejected", func(t *testing.T) {
		_, err := ValidateFile("cv.pdf", []byte("just some plain text pretending to be a pdf"), maxSize)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid file format")
	})

	t.Run("pdf named docx rejected", func(t *testing.T) {
		_, err := ValidateFile("cv.docx", fakePDF(), maxSize)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})
}

func TestCheckQuality(t *testing.T) {
	assert.NoError(t, CheckQuality(sampleCV()))

	cases := map[string]string{
		"empty":     "   \n ",
		"too short": "Experience and education in brief.",
		"too long":  strings.Repeat("experience ", MaxTextLength/10+10),
		"garbage":   sampleCV() + strings.Repeat("#$%&*", 200),
		"ocr":       sampleCV() + strings.Repeat(" ||| ", 11),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			err := CheckQuality(text)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
		})
	}
}

func TestCheckQualityBoundaries(t *testing.T) {
	exact := strings.Repeat("a", MinTextLength)
	assert.NoError(t, CheckQuality(exact))
	assert.Error(t, CheckQuality(exact[1:]))

	// ten artefacts are tolerated, eleven are not
	base := sampleCV()
	assert.NoError(t, CheckQuality(base+strings.Repeat(" ~~~ ", 10)))
	assert.Error(t, CheckQuality(base+strings.Repeat(" ~~~ ", 11)))
}

func TestGarbageRatio(t *testing.T) {
	assert.Equal(t, 0.0, GarbageRatio(""))
	assert.Equal(t, 0.0, GarbageRatio("abc 123"))
	assert.InDelta(t, 0.5, GarbageRatio("ab!?"), 1e-9)
}

func TestLooksProfessional(t *testing.T) {
	assert.True(t, LooksProfessional(sampleCV()))
	assert.False(t, LooksProfessional(strings.Repeat("lorem ipsum dolor sit amet ", 40)))
	assert.False(t, LooksProfessional("My skills are cooking."))
}

func TestReaderRead(t *testing.T) {
	r := NewReader(maxSize)

	r.Extract = func(Format, []byte) (string, error) { return "  " + sampleCV() + "  ", nil }
	text, err := r.Read("jane.pdf", fakePDF())
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(sampleCV()), text)

	r.Extract = func(Format, []byte) (string, error) { return "", errors.New("encrypted") }
	_, err = r.Read("jane.pdf", fakePDF())
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotContains(t, ve.Message, "encrypted")

	r.Extract = func(Format, []byte) (string, error) { return strings.Repeat("lorem ipsum dolor sit amet ", 40), nil }
	_, err = r.Read("jane.pdf", fakePDF())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like a CV")
}

func TestExtractDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0"?><Types></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?><Relationships></Relationships>`,
		"word/document.xml": `<?xml version="1.0"?><w:document><w:body>` +
			`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>Experience &amp; Skills</w:t></w:r></w:p>` +
			`</w:body></w:document>`,
	}
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	text, err := ExtractDOCX(buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Experience & Skills")
	assert.NotContains(t, text, "<w:")
}

func TestExtractPDFMalformed(t *testing.T) {
	_, err := ExtractPDF([]byte("%PDF-1.4 truncated"))
	assert.Error(t, err)
}
