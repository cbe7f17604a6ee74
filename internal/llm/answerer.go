package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

type PolicyAnswer struct {
	Answer    string `json:"answer"`
	Reasoning string `json:"reasoning"`
}

const policySystem = "You are an HR Policy Assistant. Use the provided POLICY CONTEXT to answer the user question. " +
	"If the answer is not in the context, say you don't know and advise contacting HR. " +
	"Be professional and concise. Provide reasoning for your answer. " +
	"Output MUST be strict JSON with keys: 'answer' and 'reasoning'."

type Answerer struct {
	gen generator
}

func NewAnswerer(g *Gemini) *Answerer {
	return &Answerer{gen: g}
}

// Answer asks the model. employeeContext may be empty.
func (a *Answerer) Answer(ctx context.Context, policyText, employeeContext, question string) (PolicyAnswer, error) {
	user := fmt.Sprintf("POLICY CONTEXT:\n%s\n\n", policyText)
	if employeeContext != "" {
		user += fmt.Sprintf("EMPLOYEE:\n%s\n\n", employeeContext)
	}
	user += "USER QUESTION: " + question

	raw, err := a.gen.GenerateJSON(ctx, policySystem, user)
	if err != nil {
		return PolicyAnswer{}, err
	}
	return ParsePolicyAnswer(raw), nil
}

// ParsePolicyAnswer falls back to the raw reply when it is not JSON.
func ParsePolicyAnswer(raw string) PolicyAnswer {
	var out PolicyAnswer
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil || out.Answer == "" {
		return PolicyAnswer{Answer: raw, Reasoning: "Direct LLM response"}
	}
	return out
}
