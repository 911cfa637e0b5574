package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua-eval/internal/eval"
	"lingua-eval/internal/semantic"
)

type stubEngine struct {
	res    eval.MatchResult
	err    error
	called bool
}

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) EvaluateAnswer(_ context.Context, _ eval.Request) (eval.MatchResult, error) {
	s.called = true
	return s.res, s.err
}

func newTestHandle(stub *stubEngine) *Handle {
	return New(eval.DefaultConfig(), &semantic.Engines{OpenAI: stub}, "gpt")
}

func doEvaluate(t *testing.T, h *Handle, target, body string) (*httptest.ResponseRecorder, eval.MatchResult) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Evaluate(rec, req)

	var out eval.MatchResult
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestEvaluateLocalResult(t *testing.T) {
	stub := &stubEngine{err: errors.New("must not be called")}
	h := newTestHandle(stub)

	rec, out := doEvaluate(t, h, "/v1/evaluate", `{
		"question_text": "Dites bonjour.",
		"user_answer": "bonjour",
		"correct_answer": "bonjour",
		"difficulty": "beginner"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, out.IsCorrect)
	assert.Equal(t, 100, out.Score)
	assert.False(t, stub.called)
	assert.Nil(t, out.MatchInfo, "match_info must be stripped without debug=1")
}

func TestEvaluateDebugKeepsMatchInfo(t *testing.T) {
	h := newTestHandle(&stubEngine{})

	rec, out := doEvaluate(t, h, "/v1/evaluate?debug=1", `{
		"user_answer": "bonjour",
		"correct_answer": "bonjour",
		"difficulty": "beginner"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, out.MatchInfo)
	assert.Equal(t, eval.TierExactMatch, out.MatchInfo.Tier)
	assert.False(t, out.MatchInfo.FallbackUsed)
}

func TestEvaluateDefersToEngine(t *testing.T) {
	stub := &stubEngine{res: eval.MatchResult{IsCorrect: true, Score: 80, Feedback: "Bien."}}
	h := newTestHandle(stub)

	rec, out := doEvaluate(t, h, "/v1/evaluate", `{
		"question_text": "Décrivez votre week-end.",
		"user_answer": "une longue réponse",
		"correct_answer": null,
		"difficulty": "advanced"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.called)
	assert.True(t, out.IsCorrect)
	assert.Equal(t, 80, out.Score)
}

func TestEvaluateEngineFailureStillReturnsResult(t *testing.T) {
	stub := &stubEngine{err: errors.New("timeout")}
	h := newTestHandle(stub)

	rec, out := doEvaluate(t, h, "/v1/evaluate", `{
		"user_answer": "une longue réponse",
		"correct_answer": null,
		"difficulty": "advanced"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, out.IsCorrect)
	assert.Equal(t, 0, out.Score)
	assert.NotEmpty(t, out.Feedback)
}

func TestEvaluateNoneSkipsFallback(t *testing.T) {
	stub := &stubEngine{res: eval.MatchResult{IsCorrect: true, Score: 90}}
	h := newTestHandle(stub)

	rec, out := doEvaluate(t, h, "/v1/evaluate", `{
		"llm_name": "none",
		"user_answer": "une longue réponse",
		"correct_answer": null,
		"difficulty": "advanced"
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, stub.called)
	assert.False(t, out.IsCorrect)
	assert.Equal(t, 0, out.Score)
}

func TestEvaluateUnknownEngine(t *testing.T) {
	h := newTestHandle(&stubEngine{})

	rec, _ := doEvaluate(t, h, "/v1/evaluate", `{"llm_name":"mistral","user_answer":"bonjour"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestEvaluateBadJSON(t *testing.T) {
	h := newTestHandle(&stubEngine{})

	rec, _ := doEvaluate(t, h, "/v1/evaluate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluateMethodNotAllowed(t *testing.T) {
	h := newTestHandle(&stubEngine{})

	req := httptest.NewRequest(http.MethodGet, "/v1/evaluate", nil)
	rec := httptest.NewRecorder()
	h.Evaluate(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestEvaluateTimeoutHeaderBoundsContext(t *testing.T) {
	// The probe observes the per-request deadline the handler sets.
	var deadlineSeen bool
	h := New(eval.DefaultConfig(), &semantic.Engines{OpenAI: deadlineProbe{&deadlineSeen}}, "gpt")

	req := httptest.NewRequest(http.MethodPost, "/v1/evaluate", strings.NewReader(`{
		"user_answer": "une longue réponse",
		"correct_answer": null
	}`))
	req.Header.Set("X-Request-Timeout", "5")
	rec := httptest.NewRecorder()
	h.Evaluate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deadlineSeen)
}

type deadlineProbe struct{ seen *bool }

func (d deadlineProbe) Name() string { return "probe" }

func (d deadlineProbe) EvaluateAnswer(ctx context.Context, _ eval.Request) (eval.MatchResult, error) {
	_, ok := ctx.Deadline()
	*d.seen = ok
	return eval.MatchResult{IsCorrect: true, Score: 70, Feedback: "ok"}, nil
}
