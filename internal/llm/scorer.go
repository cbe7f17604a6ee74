package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Candidate is what the scorer sees of an applicant.
type Candidate struct {
	Name         string
	Email        string
	Position     string
	Requirements string
	CVText       string
}

type Assessment struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

const scoringSystem = "You are an expert AI Technical Recruiter. Score how well the candidate fits the position " +
	"described below. Be strict but fair. " +
	"Output MUST be strict JSON with keys: 'score' (integer 0-100) and 'reasoning' (string)."

type generator interface {
	GenerateJSON(ctx context.Context, system, user string) (string, error)
}

type Scorer struct {
	gen generator
}

func NewScorer(g *Gemini) *Scorer {
	return &Scorer{gen: g}
}

func (s *Scorer) Score(ctx context.Context, c Candidate) (Assessment, error) {
	var b strings.Builder
	if c.Position != "" {
		fmt.Fprintf(&b, "Position: %s\n", c.Position)
	}
	if c.Requirements != "" {
		fmt.Fprintf(&b, "Requirements:\n%s\n\n", c.Requirements)
	}
	fmt.Fprintf(&b, "Candidate Name: %s\nEmail: %s\n\nCV Content:\n%s", c.Name, c.Email, c.CVText)

	raw, err := s.gen.GenerateJSON(ctx, scoringSystem, b.String())
	if err != nil {
		return Assessment{}, err
	}
	return ParseAssessment(raw)
}

// ParseAssessment decodes a model reply, tolerating markdown fences, and
// clamps the score to 0..100.
func ParseAssessment(raw string) (Assessment, error) {
	var a Assessment
	if err := json.Unmarshal([]byte(stripFences(raw)), &a); err != nil {
		return Assessment{}, fmt.Errorf("decode assessment: %w", err)
	}
	if a.Score < 0 {
		a.Score = 0
	}
	if a.Score > 100 {
		a.Score = 100
	}
	return a, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
