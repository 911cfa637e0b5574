package gpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lingua-eval/internal/eval"
	"lingua-eval/internal/semantic"
	"lingua-eval/internal/semantic/prompt"
	"lingua-eval/internal/util"
)

const responsesURL = "https://api.openai.com/v1/responses"

// EvaluateAnswer sends the deferred request to the Responses API with a
// strict JSON-schema output format and returns the model's verdict.
func (e *Engine) EvaluateAnswer(ctx context.Context, req eval.Request) (eval.MatchResult, error) {
	if e.APIKey == "" {
		return eval.MatchResult{}, fmt.Errorf("OPENAI_API_KEY is empty")
	}
	model := e.Model
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o-mini"
	}

	var schema map[string]any
	if err := json.Unmarshal([]byte(prompt.CheckAnswerSchema), &schema); err != nil {
		return eval.MatchResult{}, fmt.Errorf("bad check_answer schema: %w", err)
	}

	userJSON, err := json.Marshal(semantic.NewPayload(req))
	if err != nil {
		return eval.MatchResult{}, err
	}

	body := map[string]any{
		"model": model,
		"input": []any{
			map[string]any{
				"role": "system",
				"content": []any{
					map[string]any{"type": "input_text", "text": prompt.CheckAnswerSystem},
				},
			},
			map[string]any{
				"type": "message",
				"role": "user",
				"content": []any{
					map[string]any{"type": "input_text", "text": "INPUT_JSON:\n" + string(userJSON)},
				},
			},
		},
		"temperature": 0.3,
		"text": map[string]any{
			"format": map[string]any{
				"type":   "json_schema",
				"name":   "check_answer",
				"strict": true,
				"schema": schema,
			},
		},
	}

	payload, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, responsesURL, bytes.NewReader(payload))
	if err != nil {
		return eval.MatchResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(httpReq)
	if err != nil {
		return eval.MatchResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return eval.MatchResult{}, fmt.Errorf("openai check %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	raw, _ := io.ReadAll(resp.Body)
	out := util.StripCodeFences(extractResponsesText(raw))
	if out == "" {
		return eval.MatchResult{}, fmt.Errorf("responses: empty output; body=%s", util.TruncateBytes(raw, 1024))
	}

	var v semantic.Verdict
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		return eval.MatchResult{}, fmt.Errorf("openai check: bad JSON: %w", err)
	}
	return v.MatchResult(), nil
}
