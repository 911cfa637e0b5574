// Package semantic holds the boundary to the external evaluator models
// consulted when the local tiers cannot decide. Engines return the
// model's verdict as-is; the engine layer above treats it as
// authoritative.
package semantic

import (
	"errors"
	"strings"

	"lingua-eval/internal/eval"
)

// Engines is the registry of configured fallback providers.
type Engines struct {
	OpenAI eval.SemanticEvaluator
	Gemini eval.SemanticEvaluator
}

// GetEngine resolves a provider by name. Callers that pass an empty
// name should substitute their configured default first.
func (e *Engines) GetEngine(name string) (eval.SemanticEvaluator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gpt", "openai":
		if e.OpenAI == nil {
			return nil, errors.New("openai engine is not configured")
		}
		return e.OpenAI, nil
	case "gemini":
		if e.Gemini == nil {
			return nil, errors.New("gemini engine is not configured")
		}
		return e.Gemini, nil
	default:
		return nil, errors.New("unknown llm_name; use 'gpt' or 'gemini'")
	}
}

// Verdict is the JSON shape the fallback models are instructed to
// produce. Confidence is self-reported and diagnostic only; the verdict
// stands regardless.
type Verdict struct {
	IsCorrect         bool             `json:"is_correct"`
	Score             int              `json:"score"`
	HasCorrectAccents bool             `json:"has_correct_accents"`
	Feedback          string           `json:"feedback"`
	Corrections       eval.Corrections `json:"corrections"`
	CorrectedAnswer   string           `json:"corrected_answer,omitempty"`
	Confidence        float64          `json:"confidence,omitempty"`
}

// MatchResult converts the model output into the engine's result shape,
// clamping out-of-range values instead of rejecting them.
func (v Verdict) MatchResult() eval.MatchResult {
	score := v.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	feedback := strings.TrimSpace(v.Feedback)
	if feedback == "" {
		feedback = "Your answer was reviewed. Keep practicing!"
	}
	return eval.MatchResult{
		IsCorrect:         v.IsCorrect,
		Score:             score,
		HasCorrectAccents: v.HasCorrectAccents,
		Feedback:          feedback,
		Corrections:       v.Corrections,
		CorrectedAnswer:   v.CorrectedAnswer,
	}
}

// Payload is the request document given to the model verbatim as JSON.
type Payload struct {
	Question             string   `json:"question"`
	StudentAnswer        string   `json:"student_answer"`
	ExpectedAnswer       *string  `json:"expected_answer"`
	AcceptableVariations []string `json:"acceptable_variations,omitempty"`
	Difficulty           string   `json:"difficulty"`
	QuestionType         string   `json:"question_type,omitempty"`
}

// NewPayload maps an evaluation request onto the model input document.
func NewPayload(req eval.Request) Payload {
	return Payload{
		Question:             req.QuestionText,
		StudentAnswer:        req.UserAnswer,
		ExpectedAnswer:       req.CorrectAnswer,
		AcceptableVariations: req.AcceptableVariations,
		Difficulty:           req.Difficulty,
		QuestionType:         req.QuestionType,
	}
}
