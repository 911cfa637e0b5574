// Package gemini grades deferred answers with Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"lingua-eval/internal/eval"
	"lingua-eval/internal/semantic"
	"lingua-eval/internal/semantic/prompt"
	"lingua-eval/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

// EvaluateAnswer sends the deferred request to Gemini and returns its
// verdict. Output is forced to JSON; transient failures are retried up
// to 3 times before the error is surfaced.
func (e *Engine) EvaluateAnswer(ctx context.Context, req eval.Request) (eval.MatchResult, error) {
	if e.APIKey == "" {
		return eval.MatchResult{}, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return eval.MatchResult{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(strings.TrimSpace(e.Model))
	if m == nil {
		return eval.MatchResult{}, fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(prompt.CheckAnswerSystem),
			genai.Text("\nResponse schema (check_answer.response.v1):\n" + prompt.CheckAnswerSchema),
		},
	}

	payload, err := json.Marshal(semantic.NewPayload(req))
	if err != nil {
		return eval.MatchResult{}, err
	}
	parts := []genai.Part{
		genai.Text("Grade this answer. Respond with ONLY the JSON object.\nINPUT_JSON:\n" + string(payload)),
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return eval.MatchResult{}, ctx.Err()
			case <-time.After(time.Duration(attempt) * 300 * time.Millisecond):
			}
			continue
		}
		txt := util.StripCodeFences(firstText(resp))
		if txt == "" {
			return eval.MatchResult{}, fmt.Errorf("gemini check: empty response")
		}

		var v semantic.Verdict
		if err := json.Unmarshal([]byte(txt), &v); err != nil {
			return eval.MatchResult{}, fmt.Errorf("gemini check: bad JSON: %w", err)
		}
		return v.MatchResult(), nil
	}
	return eval.MatchResult{}, lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
