package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lingua-eval/internal/eval"
)

// --- EVALUATE ---------------------------------------------------------------

type evaluateReq struct {
	LLMName string `json:"llm_name,omitempty"`
	eval.Request
}

// Evaluate grades one answer. Well-formed requests always get a 200
// with a MatchResult; fallback trouble is folded into the result, never
// into the status code. `?debug=1` keeps match_info in the response.
func (h *Handle) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	deadline := 60 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), deadline)
	defer cancel()

	name := strings.TrimSpace(req.LLMName)
	if name == "" {
		name = h.defaultEngine
	}

	var fallback eval.SemanticEvaluator
	if !strings.EqualFold(name, "none") {
		engine, err := h.engs.GetEngine(name)
		if err != nil {
			http.Error(w, "evaluate error: "+err.Error(), http.StatusBadGateway)
			return
		}
		fallback = engine
	}

	out := eval.New(h.evalCfg, fallback).Evaluate(ctx, req.Request)

	// match_info is for privileged debugging callers only.
	if r.URL.Query().Get("debug") != "1" {
		out.MatchInfo = nil
	}
	writeJSON(w, http.StatusOK, out)
}
