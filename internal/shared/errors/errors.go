// Package errors defines the sentinel errors shared across the posture
// engine, its repositories, and the API layer.
package errors

import "errors"

var (
	// Rating errors
	ErrEmptyDomain       = errors.New("domain cannot be empty")
	ErrScorecardNotFound = errors.New("scorecard not found")
	ErrUnknownCategory   = errors.New("unknown rating category")
	ErrUnknownSource     = errors.New("unknown signal source")
	ErrNoSignalData      = errors.New("no signal source returned data")

	// Questionnaire errors
	ErrEmptyUser               = errors.New("user cannot be empty")
	ErrSubmissionNotFound      = errors.New("questionnaire submission not found")
	ErrUnknownQuestion         = errors.New("unknown question id")
	ErrInvalidAnswerValue      = errors.New("answer must be 0, 5, or 10")
	ErrQuestionnaireIncomplete = errors.New("questionnaire is not fully answered")

	// Repository errors
	ErrRepositoryOperation = errors.New("repository operation failed")
	ErrInvalidData         = errors.New("invalid data")
)
