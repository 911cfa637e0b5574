// Package eval grades free-text learner answers against a canonical
// answer and accepted variants. Cheap deterministic tiers decide
// locally whenever similarity clears a per-difficulty confidence
// threshold; everything else defers to a semantic fallback model whose
// verdict is returned verbatim. Evaluate never fails: fallback errors
// collapse into a deterministic zero-score result.
package eval

import (
	"context"
	"log"
)

// Evaluator runs the tier sequence for one request at a time. It holds
// no mutable state, so a single instance is safe for concurrent use.
type Evaluator struct {
	cfg      Config
	fallback SemanticEvaluator
}

// New builds an evaluator with the given tables. fallback may be nil,
// in which case every defer resolves to the deterministic failure
// result.
func New(cfg Config, fallback SemanticEvaluator) *Evaluator {
	return &Evaluator{cfg: cfg, fallback: fallback}
}

// Config returns the tables this evaluator grades with.
func (e *Evaluator) Config() Config { return e.cfg }

// EvaluateLocal runs only tiers 1-4. ok is false when every tier
// passed, i.e. the request must go to the semantic fallback.
func (e *Evaluator) EvaluateLocal(req Request) (res MatchResult, ok bool) {
	for _, tier := range localTiers {
		if r := tier(e.cfg, req); r != nil {
			return *r, true
		}
	}
	return MatchResult{}, false
}

// Evaluate grades one answer, consulting the semantic fallback when the
// local tiers defer. The returned result is always valid; transport or
// parse failures at the fallback boundary surface as the deterministic
// failure result, never as an error.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) MatchResult {
	if res, ok := e.EvaluateLocal(req); ok {
		return res
	}

	info := &MatchInfo{
		Tier:         TierSemanticFallback,
		VariantIndex: -1,
		FallbackUsed: true,
	}

	if e.fallback == nil {
		res := FallbackFailure()
		info.FallbackUsed = false
		info.Reason = "deferred with no semantic fallback configured"
		res.MatchInfo = info
		return res
	}

	res, err := e.fallback.EvaluateAnswer(ctx, req)
	if err != nil {
		log.Printf("semantic fallback %s failed: %v", e.fallback.Name(), err)
		res = FallbackFailure()
		info.Reason = "semantic fallback failed: " + err.Error()
		res.MatchInfo = info
		return res
	}

	res.Score = clampScore(res.Score)
	info.Reason = "graded by semantic fallback " + e.fallback.Name()
	res.MatchInfo = info
	return res
}
