package eval

import (
	"fmt"
	"strings"
)

// Band names reported in diagnostics.
const (
	bandMinorTypo    = "minor_typo"
	bandBeginnerPass = "beginner_pass"
	bandBelowPass    = "below_pass"
)

// A tier inspects the request and either returns a terminal result or
// nil to pass control to the next tier. When every tier passes, the
// evaluator defers to the semantic fallback. Keeping the sequence as a
// slice makes the precedence rules data, not control flow.
type tierFunc func(cfg Config, req Request) *MatchResult

var localTiers = []tierFunc{
	tierEmptyCheck,
	tierExactMatch,
	tierVariantMatch,
	tierFuzzyMatch,
}

// tierEmptyCheck rejects answers shorter than two characters once
// trimmed. Runs even for open-ended prompts.
func tierEmptyCheck(_ Config, req Request) *MatchResult {
	if len([]rune(strings.TrimSpace(req.UserAnswer))) >= 2 {
		return nil
	}
	return &MatchResult{
		IsCorrect:   false,
		Score:       0,
		Feedback:    feedbackTooShort,
		Corrections: Corrections{Suggestion: suggestFullAnswer},
		MatchInfo: &MatchInfo{
			Tier:         TierEmptyCheck,
			VariantIndex: -1,
			Reason:       "answer shorter than 2 characters after trimming",
		},
	}
}

// tierExactMatch compares against the primary answer in canonical form.
func tierExactMatch(_ Config, req Request) *MatchResult {
	if req.CorrectAnswer == nil {
		return nil
	}
	correct := *req.CorrectAnswer
	if canonical(req.UserAnswer) != canonical(correct) {
		return nil
	}

	res := &MatchResult{
		IsCorrect:         true,
		HasCorrectAccents: HasCorrectAccents(req.UserAnswer, correct),
		MatchInfo: &MatchInfo{
			Tier:           TierExactMatch,
			MatchKind:      MatchKindExact,
			MatchedAgainst: "primary",
			VariantIndex:   -1,
			SimilarityPct:  100,
			Reason:         "exact match against the primary answer",
		},
	}
	if res.HasCorrectAccents {
		res.Score = 100
		res.Feedback = feedbackPerfect
	} else {
		res.Score = 98
		res.Feedback = feedbackAccentsMissed
		res.Corrections = accentReminder(correct)
	}
	return res
}

// tierVariantMatch scans acceptable variations in list order. The first
// variant that matches exactly, or clears the near-exact similarity
// bar, wins; later variants are never consulted.
func tierVariantMatch(cfg Config, req Request) *MatchResult {
	for i, variant := range req.AcceptableVariations {
		if canonical(req.UserAnswer) == canonical(variant) {
			res := &MatchResult{
				IsCorrect:         true,
				HasCorrectAccents: HasCorrectAccents(req.UserAnswer, variant),
				MatchInfo: &MatchInfo{
					Tier:           TierVariantMatch,
					MatchKind:      MatchKindExact,
					MatchedAgainst: "variant",
					VariantIndex:   i,
					SimilarityPct:  100,
					Reason:         fmt.Sprintf("exact match against variant %d", i),
				},
			}
			if res.HasCorrectAccents {
				res.Score = 98
				res.Feedback = feedbackVariantExact
			} else {
				res.Score = 96
				res.Feedback = feedbackVariantAccents
				res.Corrections = accentReminder(variant)
			}
			return res
		}

		sim := Similarity(req.UserAnswer, variant)
		if sim >= cfg.Bands.AlwaysCorrect {
			return &MatchResult{
				IsCorrect:         true,
				Score:             clampScore(similarityPct(sim) - 2),
				HasCorrectAccents: HasCorrectAccents(req.UserAnswer, variant),
				Feedback:          feedbackVariantClose,
				Corrections:       spellingHint(variant),
				CorrectedAnswer:   variant,
				MatchInfo: &MatchInfo{
					Tier:           TierVariantMatch,
					MatchKind:      MatchKindSimilarity,
					MatchedAgainst: "variant",
					VariantIndex:   i,
					SimilarityPct:  similarityPct(sim),
					Reason:         fmt.Sprintf("%d%% similar to variant %d", similarityPct(sim), i),
				},
			}
		}
	}
	return nil
}

// tierFuzzyMatch grades against the primary answer by similarity. Below
// the per-difficulty confidence threshold it passes, which the
// evaluator turns into a defer. Open-ended prompts always pass.
func tierFuzzyMatch(cfg Config, req Request) *MatchResult {
	if req.CorrectAnswer == nil {
		return nil
	}
	correct := *req.CorrectAnswer

	sim := Similarity(req.UserAnswer, correct)
	threshold := cfg.ThresholdFor(req.Difficulty)
	if sim < threshold {
		return nil
	}

	pct := similarityPct(sim)
	res := &MatchResult{
		Score:             pct,
		HasCorrectAccents: HasCorrectAccents(req.UserAnswer, correct),
		CorrectedAnswer:   correct,
		MatchInfo: &MatchInfo{
			Tier:           TierFuzzyMatch,
			MatchKind:      MatchKindSimilarity,
			MatchedAgainst: "primary",
			VariantIndex:   -1,
			SimilarityPct:  pct,
			Threshold:      threshold,
		},
	}

	switch {
	case sim >= cfg.Bands.AlwaysCorrect:
		res.IsCorrect = true
		res.Feedback = feedbackMinorTypo
		res.Corrections = spellingHint(correct)
		res.MatchInfo.Band = bandMinorTypo
	case sim >= cfg.Bands.BeginnerPass:
		res.MatchInfo.Band = bandBeginnerPass
		if req.Difficulty == DifficultyBeginner {
			res.IsCorrect = true
			res.Feedback = beginnerPassFeedback(correct)
			res.Corrections = spellingHint(correct)
		} else {
			res.IsCorrect = false
			res.Feedback = closeButWrongFeedback(correct)
			res.Corrections = spellingHint(correct)
		}
	default:
		// Only reachable for beginner, whose threshold sits below the
		// beginner-pass band.
		res.IsCorrect = false
		res.Feedback = incorrectFeedback(correct)
		res.Corrections = Corrections{Suggestion: fmt.Sprintf("Study the expected answer %q and try again.", correct)}
		res.MatchInfo.Band = bandBelowPass
	}
	res.MatchInfo.Reason = fmt.Sprintf("%d%% similar to the primary answer (%s band, threshold %.2f)", pct, res.MatchInfo.Band, threshold)
	return res
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
