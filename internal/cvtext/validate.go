package cvtext

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MIMEPDF  = "application/pdf"
	MIMEDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Format is the document kind accepted for CV uploads.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var extensions = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
}

// ValidationError is a client error. Message is safe to show to the applicant.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Extension returns the lower-cased extension if it is an accepted one.
func Extension(fileName string) (string, Format, error) {
	if strings.TrimSpace(fileName) == "" {
		return "", "", invalid("Filename is required")
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	f, ok := extensions[ext]
	if !ok {
		return "", "", invalid("Invalid file type. Only PDF and DOCX files are accepted. Received: %s", fileName)
	}
	return ext, f, nil
}

// ValidateFile checks name, size and sniffed content type in that order.
func ValidateFile(fileName string, content []byte, maxSize int64) (Format, error) {
	_, format, err := Extension(fileName)
	if err != nil {
		return "", err
	}

	size := int64(len(content))
	if size == 0 {
		return "", invalid("File is empty")
	}
	if size > maxSize {
		return "", invalid("File too large (%.1fMB). Maximum size is %dMB.",
			float64(size)/(1024*1024), maxSize/(1024*1024))
	}

	mt := mimetype.Detect(content)
	switch {
	case mt.Is(MIMEPDF):
		if format != FormatPDF {
			return "", invalid("File content (%s) does not match its .%s extension", mt.String(), format)
		}
	case mt.Is(MIMEDOCX):
		if format != FormatDOCX {
			return "", invalid("File content (%s) does not match its .%s extension", mt.String(), format)
		}
	default:
		return "", invalid("Invalid file format. File appears to be '%s'. Only PDF and DOCX documents are accepted.", mt.String())
	}
	return format, nil
}
