package eval

import "fmt"

// Learner-facing feedback per outcome. Kept in one place so hosts can
// review the whole voice of the grader at once.
const (
	feedbackTooShort = "Your answer is too short. Try writing a complete response."

	feedbackPerfect       = "Perfect! Exactly right."
	feedbackAccentsMissed = "Correct! Just watch the accent marks."

	feedbackVariantExact   = "Correct! That's an accepted way to say it."
	feedbackVariantAccents = "Correct! An accepted answer, but check the accent marks."
	feedbackVariantClose   = "Correct! Very close to an accepted answer, with a small typo."

	feedbackMinorTypo = "Almost perfect, just a minor typo. Well done!"

	feedbackFallbackFailed = "We couldn't evaluate your answer right now. Please try submitting it again."
)

const suggestFullAnswer = "Write a full word or phrase so it can be evaluated."

// accentReminder builds the corrections entry shown when the content
// matched but the diacritics did not.
func accentReminder(expected string) Corrections {
	return Corrections{
		Accents: fmt.Sprintf("Check the accents: the expected spelling is %q.", expected),
	}
}

func spellingHint(expected string) Corrections {
	return Corrections{
		Spelling: fmt.Sprintf("Almost there: the expected spelling is %q.", expected),
	}
}

func beginnerPassFeedback(expected string) string {
	return fmt.Sprintf("Good job! Close enough, but compare with %q to spot the small differences.", expected)
}

func closeButWrongFeedback(expected string) string {
	return fmt.Sprintf("So close! The expected answer is %q. Look carefully at the spelling.", expected)
}

func incorrectFeedback(expected string) string {
	return fmt.Sprintf("Not quite. The expected answer is %q. Keep practicing!", expected)
}

// FallbackFailure is the deterministic result returned whenever the
// semantic fallback cannot produce a verdict. It is the engine's only
// answer to transport errors, timeouts, and unparseable model output.
func FallbackFailure() MatchResult {
	return MatchResult{
		IsCorrect:         false,
		Score:             0,
		HasCorrectAccents: false,
		Feedback:          feedbackFallbackFailed,
	}
}
