package eval

import "context"

// Difficulty levels recognized by the confidence tables. Anything else
// falls back to intermediate.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Tier provenance values reported in MatchInfo.
const (
	TierEmptyCheck       = "empty_check"
	TierExactMatch       = "exact_match"
	TierVariantMatch     = "variant_match"
	TierFuzzyMatch       = "fuzzy_match"
	TierSemanticFallback = "semantic_fallback"
)

// Match kinds reported in MatchInfo.
const (
	MatchKindExact      = "exact"
	MatchKindSimilarity = "similarity"
)

// Request is one answer to grade. CorrectAnswer is nil for fully
// open-ended prompts; those can only be resolved by the semantic
// fallback. The stored request is never mutated by evaluation.
type Request struct {
	QuestionText         string   `json:"question_text"`
	UserAnswer           string   `json:"user_answer"`
	CorrectAnswer        *string  `json:"correct_answer"`
	AcceptableVariations []string `json:"acceptable_variations,omitempty"`
	Difficulty           string   `json:"difficulty"`
	QuestionType         string   `json:"question_type,omitempty"`
}

// Corrections carries structured suggestions for the learner.
type Corrections struct {
	Accents    string `json:"accents,omitempty"`
	Spelling   string `json:"spelling,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// MatchInfo is debug-only provenance: which tier decided, against which
// candidate, and with what similarity. It never affects grading.
type MatchInfo struct {
	Tier           string  `json:"tier"`
	MatchKind      string  `json:"match_kind,omitempty"`
	MatchedAgainst string  `json:"matched_against,omitempty"` // "primary" or "variant"
	VariantIndex   int     `json:"variant_index"`             // -1 unless a variant matched
	SimilarityPct  int     `json:"similarity_pct"`
	Threshold      float64 `json:"threshold,omitempty"`
	Band           string  `json:"band,omitempty"`
	FallbackUsed   bool    `json:"fallback_used"`
	Reason         string  `json:"reason,omitempty"`
}

// MatchResult is the engine's verdict on one answer.
type MatchResult struct {
	IsCorrect         bool        `json:"is_correct"`
	Score             int         `json:"score"` // 0..100
	HasCorrectAccents bool        `json:"has_correct_accents"`
	Feedback          string      `json:"feedback"`
	Corrections       Corrections `json:"corrections"`
	CorrectedAnswer   string      `json:"corrected_answer,omitempty"`
	MatchInfo         *MatchInfo  `json:"match_info,omitempty"`
}

// SemanticEvaluator is the boundary to the external model invoked when
// the local tiers defer. Its verdict is authoritative; the engine never
// second-guesses it. Implementations must honor ctx cancellation.
type SemanticEvaluator interface {
	Name() string
	EvaluateAnswer(ctx context.Context, req Request) (MatchResult, error)
}
