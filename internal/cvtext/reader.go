package cvtext

import (
	"log"
	"strings"
)

// Reader runs the full intake check on an uploaded CV and returns its text.
type Reader struct {
	MaxSize int64
	// Extract defaults to the package Extract.
	Extract func(Format, []byte) (string, error)
}

func NewReader(maxSize int64) *Reader {
	return &Reader{MaxSize: maxSize, Extract: Extract}
}

func (r *Reader) Read(fileName string, content []byte) (string, error) {
	format, err := ValidateFile(fileName, content, r.MaxSize)
	if err != nil {
		return "", err
	}

	extract := r.Extract
	if extract == nil {
		extract = Extract
	}
	text, err := extract(format, content)
	if err != nil {
		log.Printf("[cvtext] extract %s: %v", fileName, err)
		return "", invalid("Could not read the CV. Please ensure your file is a valid, unencrypted PDF or DOCX document.")
	}

	if err := CheckQuality(text); err != nil {
		return "", err
	}
	if !LooksProfessional(text) {
		return "", invalid("The uploaded document does not look like a CV. Please upload your resume.")
	}
	return strings.TrimSpace(text), nil
}
