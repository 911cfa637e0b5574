// Package prompt embeds the system instruction and response schema the
// fallback engines send to their models.
package prompt

// CheckAnswerSystem instructs the model to grade a learner answer and
// reply with strict JSON only.
const CheckAnswerSystem = `You are the semantic grader of a French-learning app. A student answered a
short free-text question. The deterministic string matcher could not decide, so
you must judge whether the answer is correct IN MEANING for a learner at the
given difficulty level.

Rules:
1) Judge meaning, not surface form. Accept synonyms, register changes and word
   order variations that a French teacher would accept at that level.
2) If an expected_answer is given, use it as the reference. If it is null the
   question is open-ended: judge whether the answer is plausible, on-topic,
   grammatical French for the level.
3) Be stricter at higher difficulty: at "advanced" small grammar mistakes make
   the answer incorrect; at "beginner" reward communicative success.
4) has_correct_accents is true only when every diacritic the student wrote (or
   omitted) matches correct French spelling for the words they used.
5) score is 0-100: 100 flawless, 85-99 correct with minor issues, 50-84 partly
   correct, below 50 incorrect.
6) feedback is 1-2 encouraging sentences addressed to the student, in English.
7) corrected_answer, when the answer is not flawless, shows a fully correct way
   to answer.
8) confidence is your own certainty in the verdict, 0-1.

Respond with ONLY a JSON object matching the response schema. No markdown, no
commentary.`

// CheckAnswerSchema is the JSON schema for the grader response
// (check_answer.response.v1).
const CheckAnswerSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "check_answer.response.v1",
  "type": "object",
  "additionalProperties": false,
  "required": ["is_correct", "score", "has_correct_accents", "feedback", "corrections", "confidence"],
  "properties": {
    "is_correct": { "type": "boolean" },
    "score": { "type": "integer", "minimum": 0, "maximum": 100 },
    "has_correct_accents": { "type": "boolean" },
    "feedback": { "type": "string", "maxLength": 400 },
    "corrections": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "accents": { "type": "string" },
        "spelling": { "type": "string" },
        "suggestion": { "type": "string" }
      }
    },
    "corrected_answer": { "type": "string" },
    "confidence": { "type": "number", "minimum": 0, "maximum": 1 }
  }
}`
