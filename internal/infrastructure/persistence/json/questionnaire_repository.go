package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/posturescan/posture-cli/internal/domain/questionnaire"
	"github.com/posturescan/posture-cli/internal/shared/constants"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
	"github.com/posturescan/posture-cli/internal/shared/security"
)

// QuestionnaireRepository implements questionnaire.Repository with one JSON
// file per (user, domain) pair, grouped in a directory per user.
type QuestionnaireRepository struct {
	dir string
	mu  sync.RWMutex
}

// NewQuestionnaireRepository creates the repository under dataDir/questionnaires.
func NewQuestionnaireRepository(dataDir string) (*QuestionnaireRepository, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	dir := filepath.Join(dataDir, "questionnaires")
	if err := os.MkdirAll(dir, constants.DefaultDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create questionnaires directory: %w", err)
	}
	return &QuestionnaireRepository{dir: dir}, nil
}

// Save persists a submission, replacing any previous state for the pair.
func (r *QuestionnaireRepository) Save(ctx context.Context, submission *questionnaire.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path, err := r.pathFor(submission.User, submission.Domain)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultDirPerm); err != nil {
		return fmt.Errorf("failed to create user directory: %w", err)
	}

	data, err := json.MarshalIndent(submission, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}
	if err := os.WriteFile(path, data, constants.DefaultFilePerm); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Find retrieves the submission for a user and domain.
func (r *QuestionnaireRepository) Find(ctx context.Context, user, domain string) (*questionnaire.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, err := r.pathFor(user, domain)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sharedErrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to read submission: %w", err)
	}

	var submission questionnaire.Submission
	if err := json.Unmarshal(data, &submission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}
	if submission.Answers == nil {
		submission.Answers = make(questionnaire.Answers)
	}
	return &submission, nil
}

// Delete clears the stored submission for a user and domain.
func (r *QuestionnaireRepository) Delete(ctx context.Context, user, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path, err := r.pathFor(user, domain)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return sharedErrors.ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}

func (r *QuestionnaireRepository) pathFor(user, domain string) (string, error) {
	if user == "" {
		return "", sharedErrors.ErrEmptyUser
	}
	if domain == "" {
		return "", sharedErrors.ErrEmptyDomain
	}
	// Both components come from user input and become path elements.
	path, err := security.ResolveWithin(r.dir, user, domain+".json")
	if err != nil {
		return "", fmt.Errorf("%w: %v", sharedErrors.ErrInvalidData, err)
	}
	return path, nil
}
