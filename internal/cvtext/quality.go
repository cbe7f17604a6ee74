package cvtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinTextLength   = 500
	MaxTextLength   = 50000
	MaxGarbageRatio = 0.3
	MaxOCRArtifacts = 10

	// MinProfessionalKeywords is how many distinct section keywords a
	// document needs before it is treated as a CV.
	MinProfessionalKeywords = 2
)

var ocrArtifacts = []string{"|||", "___", "...", "~~~"}

var professionalKeywords = []string{
	"experience", "education", "skills", "employment", "work history",
	"university", "degree", "bachelor", "master", "diploma",
	"certification", "internship", "responsibilities", "achievements",
	"projects", "summary", "objective", "profile", "languages",
	"references", "pengalaman", "pendidikan", "keahlian",
}

// CheckQuality rejects text that is empty, out of bounds, mostly symbols or
// looks like OCR output of a scanned image.
func CheckQuality(text string) error {
	if strings.TrimSpace(text) == "" {
		return invalid("CV appears to be empty or contains no readable text")
	}

	n := utf8.RuneCountInString(text)
	if n < MinTextLength {
		return invalid("CV text too short (%d characters). Minimum %d characters required. This may be a scanned image or corrupted file.", n, MinTextLength)
	}
	if n > MaxTextLength {
		return invalid("CV text too long (%d characters). Maximum %d characters allowed.", n, MaxTextLength)
	}

	if ratio := GarbageRatio(text); ratio > MaxGarbageRatio {
		return invalid("CV contains too many unreadable characters (%.0f%%). This may be a scanned image or corrupted file.", ratio*100)
	}

	artifacts := 0
	for _, a := range ocrArtifacts {
		artifacts += strings.Count(text, a)
	}
	if artifacts > MaxOCRArtifacts {
		return invalid("CV appears to be a scanned image. Please upload a text-based PDF or DOCX file.")
	}
	return nil
}

// GarbageRatio is the share of runes that are neither letters, digits nor
// whitespace.
func GarbageRatio(text string) float64 {
	total, readable := 0, 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return 1 - float64(readable)/float64(total)
}

// LooksProfessional reports whether text mentions enough typical CV sections.
func LooksProfessional(text string) bool {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range professionalKeywords {
		if strings.Contains(lower, kw) {
			hits++
			if hits >= MinProfessionalKeywords {
				return true
			}
		}
	}
	return false
}
