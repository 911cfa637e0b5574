package semantic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua-eval/internal/eval"
)

type fakeEngine struct{ name string }

func (f *fakeEngine) Name() string { return f.name }
func (f *fakeEngine) EvaluateAnswer(context.Context, eval.Request) (eval.MatchResult, error) {
	return eval.MatchResult{}, nil
}

func TestGetEngine(t *testing.T) {
	engs := &Engines{
		OpenAI: &fakeEngine{name: "gpt"},
		Gemini: &fakeEngine{name: "gemini"},
	}

	for _, name := range []string{"gpt", "openai", "GPT", " gpt "} {
		e, err := engs.GetEngine(name)
		require.NoError(t, err, name)
		assert.Equal(t, "gpt", e.Name())
	}

	e, err := engs.GetEngine("gemini")
	require.NoError(t, err)
	assert.Equal(t, "gemini", e.Name())

	_, err = engs.GetEngine("mistral")
	assert.Error(t, err)

	_, err = (&Engines{}).GetEngine("gpt")
	assert.Error(t, err)
}

func TestVerdictMatchResultClamps(t *testing.T) {
	v := Verdict{IsCorrect: true, Score: 150, Feedback: "ok"}
	assert.Equal(t, 100, v.MatchResult().Score)

	v = Verdict{Score: -5, Feedback: "non"}
	assert.Equal(t, 0, v.MatchResult().Score)
}

func TestVerdictMatchResultDefaultFeedback(t *testing.T) {
	v := Verdict{IsCorrect: true, Score: 90, Feedback: "  "}
	res := v.MatchResult()
	assert.NotEmpty(t, res.Feedback)
}

func TestNewPayload(t *testing.T) {
	answer := "le chat"
	req := eval.Request{
		QuestionText:         "Comment dit-on 'the cat' ?",
		UserAnswer:           "le chat",
		CorrectAnswer:        &answer,
		AcceptableVariations: []string{"un chat"},
		Difficulty:           eval.DifficultyBeginner,
		QuestionType:         "translation",
	}
	p := NewPayload(req)
	assert.Equal(t, req.QuestionText, p.Question)
	assert.Equal(t, req.UserAnswer, p.StudentAnswer)
	require.NotNil(t, p.ExpectedAnswer)
	assert.Equal(t, answer, *p.ExpectedAnswer)
	assert.Equal(t, req.AcceptableVariations, p.AcceptableVariations)

	open := NewPayload(eval.Request{UserAnswer: "une réponse libre"})
	assert.Nil(t, open.ExpectedAnswer)
}
