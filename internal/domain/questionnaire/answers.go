package questionnaire

import (
	"fmt"

	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
)

// AnswerValue is the points one answer is worth. The option set is fixed;
// no other numeric value is valid.
type AnswerValue int

const (
	AnswerNo        AnswerValue = 0
	AnswerPartially AnswerValue = 5
	AnswerYes       AnswerValue = 10
)

// ValidAnswer reports whether v is one of the fixed answer options.
func ValidAnswer(v AnswerValue) bool {
	return v == AnswerNo || v == AnswerPartially || v == AnswerYes
}

// Answers maps question id to the chosen answer value. A question absent
// from the map is unanswered.
type Answers map[int]AnswerValue

// Set records an answer after validating the question id and value.
func (a Answers) Set(questionID int, value AnswerValue) error {
	if _, ok := QuestionByID(questionID); !ok {
		return fmt.Errorf("%w: %d", sharedErrors.ErrUnknownQuestion, questionID)
	}
	if !ValidAnswer(value) {
		return fmt.Errorf("%w: got %d", sharedErrors.ErrInvalidAnswerValue, value)
	}
	a[questionID] = value
	return nil
}

// Complete reports whether every catalog question has a valid answer.
func (a Answers) Complete() bool {
	for _, q := range Questions() {
		v, ok := a[q.ID]
		if !ok || !ValidAnswer(v) {
			return false
		}
	}
	return true
}

// Unanswered lists the ids of questions that still need an answer.
func (a Answers) Unanswered() []int {
	var missing []int
	for _, q := range Questions() {
		if v, ok := a[q.ID]; !ok || !ValidAnswer(v) {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
