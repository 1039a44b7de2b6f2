// Package json implements the domain repositories on top of plain JSON
// files, one file per aggregate. Good enough for a single-operator tool;
// a database would slot in behind the same interfaces.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/posturescan/posture-cli/internal/domain/rating"
	"github.com/posturescan/posture-cli/internal/shared/constants"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
	"github.com/posturescan/posture-cli/internal/shared/security"
)

// scorecardDTO is the serialized form of a rating.Scorecard.
type scorecardDTO struct {
	ID           string             `json:"id"`
	Domain       string             `json:"domain"`
	GeneratedAt  string             `json:"generated_at"`
	OverallScore float64            `json:"overall_score"`
	OverallGrade string             `json:"overall_grade"`
	Categories   []categoryScoreDTO `json:"categories"`
}

type categoryScoreDTO struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Grade    string  `json:"grade"`
	Color    string  `json:"color"`
	Stars    int     `json:"stars"`
}

// ScorecardRepository implements rating.Repository using one JSON file per
// tracked domain.
type ScorecardRepository struct {
	dir string
	mu  sync.RWMutex
}

// NewScorecardRepository creates the repository under dataDir/scorecards.
func NewScorecardRepository(dataDir string) (*ScorecardRepository, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	dir := filepath.Join(dataDir, "scorecards")
	if err := os.MkdirAll(dir, constants.DefaultDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create scorecards directory: %w", err)
	}
	return &ScorecardRepository{dir: dir}, nil
}

// Save persists a scorecard, replacing any previous one for the domain.
func (r *ScorecardRepository) Save(ctx context.Context, scorecard *rating.Scorecard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path, err := r.pathFor(scorecard.Domain())
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(r.toDTO(scorecard), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scorecard: %w", err)
	}
	if err := os.WriteFile(path, data, constants.DefaultFilePerm); err != nil {
		return fmt.Errorf("failed to save scorecard: %w", err)
	}
	return nil
}

// FindByDomain retrieves the stored scorecard for a domain.
func (r *ScorecardRepository) FindByDomain(ctx context.Context, domain string) (*rating.Scorecard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, err := r.pathFor(domain)
	if err != nil {
		return nil, err
	}
	return r.loadFromFile(path)
}

// FindAll retrieves the stored scorecard for every tracked domain.
func (r *ScorecardRepository) FindAll(ctx context.Context) ([]*rating.Scorecard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scorecards directory: %w", err)
	}

	var scorecards []*rating.Scorecard
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		scorecard, err := r.loadFromFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			continue
		}
		scorecards = append(scorecards, scorecard)
	}
	return scorecards, nil
}

// Delete removes the scorecard for a domain.
func (r *ScorecardRepository) Delete(ctx context.Context, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path, err := r.pathFor(domain)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return sharedErrors.ErrScorecardNotFound
		}
		return fmt.Errorf("failed to delete scorecard: %w", err)
	}
	return nil
}

func (r *ScorecardRepository) pathFor(domain string) (string, error) {
	if domain == "" {
		return "", sharedErrors.ErrEmptyDomain
	}
	// Domain names become file names, so they must not traverse.
	path, err := security.ResolveWithin(r.dir, domain+".json")
	if err != nil {
		return "", fmt.Errorf("%w: %v", sharedErrors.ErrInvalidData, err)
	}
	return path, nil
}

func (r *ScorecardRepository) loadFromFile(path string) (*rating.Scorecard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sharedErrors.ErrScorecardNotFound
		}
		return nil, fmt.Errorf("failed to read scorecard: %w", err)
	}

	var dto scorecardDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scorecard: %w", err)
	}
	return r.fromDTO(dto)
}

func (r *ScorecardRepository) toDTO(scorecard *rating.Scorecard) scorecardDTO {
	dto := scorecardDTO{
		ID:           scorecard.ID(),
		Domain:       scorecard.Domain(),
		GeneratedAt:  scorecard.GeneratedAt().Format(time.RFC3339),
		OverallScore: scorecard.OverallScore(),
		OverallGrade: scorecard.OverallGrade(),
		Categories:   make([]categoryScoreDTO, 0, len(scorecard.CategoryScores())),
	}
	for _, cs := range scorecard.CategoryScores() {
		dto.Categories = append(dto.Categories, categoryScoreDTO{
			Category: string(cs.Category),
			Score:    cs.Score,
			Grade:    cs.Grade,
			Color:    cs.Color,
			Stars:    cs.Stars,
		})
	}
	return dto
}

func (r *ScorecardRepository) fromDTO(dto scorecardDTO) (*rating.Scorecard, error) {
	generatedAt, err := time.Parse(time.RFC3339, dto.GeneratedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated at time: %w", err)
	}

	categories := make([]rating.CategoryScore, 0, len(dto.Categories))
	for _, cs := range dto.Categories {
		categories = append(categories, rating.CategoryScore{
			Category: rating.Category(cs.Category),
			Score:    cs.Score,
			Grade:    cs.Grade,
			Color:    cs.Color,
			Stars:    cs.Stars,
		})
	}

	return rating.Reconstruct(
		dto.ID,
		dto.Domain,
		generatedAt,
		dto.OverallScore,
		dto.OverallGrade,
		categories,
	), nil
}
