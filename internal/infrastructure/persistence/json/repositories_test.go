package json

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/posturescan/posture-cli/internal/domain/questionnaire"
	"github.com/posturescan/posture-cli/internal/domain/rating"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
	"github.com/posturescan/posture-cli/internal/shared/security"
)

func TestScorecardRepositoryRoundTrip(t *testing.T) {
	repo, err := NewScorecardRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewScorecardRepository: %v", err)
	}
	ctx := context.Background()

	scorecard, err := rating.NewScorecard("example.com")
	if err != nil {
		t.Fatalf("NewScorecard: %v", err)
	}
	scorecard.SetOverall(7.5)
	scorecard.AddCategoryScore(rating.NewCategoryScore(rating.CategoryWebEncryption, 9.2))
	scorecard.AddCategoryScore(rating.NewCategoryScore(rating.CategoryEmailSecurity, 4.1))

	if err := repo.Save(ctx, scorecard); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.FindByDomain(ctx, "example.com")
	if err != nil {
		t.Fatalf("FindByDomain: %v", err)
	}
	if loaded.ID() != scorecard.ID() {
		t.Errorf("ID = %q, want %q", loaded.ID(), scorecard.ID())
	}
	if loaded.Domain() != "example.com" {
		t.Errorf("Domain = %q, want example.com", loaded.Domain())
	}
	if loaded.OverallScore() != 7.5 {
		t.Errorf("OverallScore = %v, want 7.5", loaded.OverallScore())
	}
	if loaded.OverallGrade() != "B" {
		t.Errorf("OverallGrade = %q, want B", loaded.OverallGrade())
	}
	cs, ok := loaded.CategoryScore(rating.CategoryWebEncryption)
	if !ok {
		t.Fatal("web encryption score missing after reload")
	}
	if cs.Score != 9.2 || cs.Grade != "A" || cs.Stars != 5 {
		t.Errorf("category score = %+v, want score 9.2 grade A stars 5", cs)
	}
	if _, ok := loaded.CategoryScore(rating.CategoryBreachEvents); ok {
		t.Error("unscored category present after reload")
	}
}

func TestScorecardRepositorySaveReplacesPrevious(t *testing.T) {
	repo, err := NewScorecardRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewScorecardRepository: %v", err)
	}
	ctx := context.Background()

	first, _ := rating.NewScorecard("example.com")
	first.SetOverall(3)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second, _ := rating.NewScorecard("example.com")
	second.SetOverall(8)
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	loaded, err := repo.FindByDomain(ctx, "example.com")
	if err != nil {
		t.Fatalf("FindByDomain: %v", err)
	}
	if loaded.ID() != second.ID() {
		t.Errorf("ID = %q, want the replacement %q", loaded.ID(), second.ID())
	}
	if loaded.OverallScore() != 8 {
		t.Errorf("OverallScore = %v, want 8", loaded.OverallScore())
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("FindAll returned %d scorecards, want 1", len(all))
	}
}

func TestScorecardRepositoryFindAll(t *testing.T) {
	repo, err := NewScorecardRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewScorecardRepository: %v", err)
	}
	ctx := context.Background()

	for _, domain := range []string{"a.example", "b.example", "c.example"} {
		sc, _ := rating.NewScorecard(domain)
		if err := repo.Save(ctx, sc); err != nil {
			t.Fatalf("Save %s: %v", domain, err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll returned %d scorecards, want 3", len(all))
	}
}

func TestScorecardRepositoryNotFound(t *testing.T) {
	repo, err := NewScorecardRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewScorecardRepository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.FindByDomain(ctx, "missing.example"); !errors.Is(err, sharedErrors.ErrScorecardNotFound) {
		t.Errorf("FindByDomain error = %v, want ErrScorecardNotFound", err)
	}
	if err := repo.Delete(ctx, "missing.example"); !errors.Is(err, sharedErrors.ErrScorecardNotFound) {
		t.Errorf("Delete error = %v, want ErrScorecardNotFound", err)
	}
}

func TestScorecardRepositoryDelete(t *testing.T) {
	repo, err := NewScorecardRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewScorecardRepository: %v", err)
	}
	ctx := context.Background()

	sc, _ := rating.NewScorecard("example.com")
	if err := repo.Save(ctx, sc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "example.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByDomain(ctx, "example.com"); !errors.Is(err, sharedErrors.ErrScorecardNotFound) {
		t.Errorf("FindByDomain after delete = %v, want ErrScorecardNotFound", err)
	}
}

func TestScorecardRepositoryRejectsTraversal(t *testing.T) {
	repo, err := NewScorecardRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewScorecardRepository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.FindByDomain(ctx, "../../etc/passwd"); !errors.Is(err, sharedErrors.ErrInvalidData) {
		t.Errorf("FindByDomain traversal error = %v, want ErrInvalidData", err)
	}
}

func TestQuestionnaireRepositoryRoundTrip(t *testing.T) {
	repo, err := NewQuestionnaireRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuestionnaireRepository: %v", err)
	}
	ctx := context.Background()

	submission, err := questionnaire.NewSubmission("alice", "example.com")
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	for _, q := range questionnaire.Questions() {
		if err := submission.Answers.Set(q.ID, questionnaire.AnswerYes); err != nil {
			t.Fatalf("Set answer %d: %v", q.ID, err)
		}
	}
	result := questionnaire.Score(submission.Answers)
	submission.Result = &result
	submission.Recommendations = questionnaire.Recommend(submission.Answers, result.Percentage)
	submission.UpdatedAt = time.Now().UTC()

	if err := repo.Save(ctx, submission); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Find(ctx, "alice", "example.com")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if loaded.ID != submission.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, submission.ID)
	}
	if len(loaded.Answers) != questionnaire.QuestionCount {
		t.Errorf("loaded %d answers, want %d", len(loaded.Answers), questionnaire.QuestionCount)
	}
	if loaded.Answers[1] != questionnaire.AnswerYes {
		t.Errorf("answer 1 = %v, want AnswerYes", loaded.Answers[1])
	}
	if loaded.Result == nil {
		t.Fatal("result missing after reload")
	}
	if loaded.Result.Percentage != 100 {
		t.Errorf("Percentage = %v, want 100", loaded.Result.Percentage)
	}
	if len(loaded.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want none for all-yes answers", loaded.Recommendations)
	}
}

func TestQuestionnaireRepositoryIsolatesUsers(t *testing.T) {
	repo, err := NewQuestionnaireRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuestionnaireRepository: %v", err)
	}
	ctx := context.Background()

	alice, _ := questionnaire.NewSubmission("alice", "example.com")
	alice.Answers.Set(1, questionnaire.AnswerYes)
	bob, _ := questionnaire.NewSubmission("bob", "example.com")
	bob.Answers.Set(1, questionnaire.AnswerNo)

	if err := repo.Save(ctx, alice); err != nil {
		t.Fatalf("Save alice: %v", err)
	}
	if err := repo.Save(ctx, bob); err != nil {
		t.Fatalf("Save bob: %v", err)
	}

	loaded, err := repo.Find(ctx, "alice", "example.com")
	if err != nil {
		t.Fatalf("Find alice: %v", err)
	}
	if loaded.Answers[1] != questionnaire.AnswerYes {
		t.Errorf("alice answer 1 = %v, want AnswerYes", loaded.Answers[1])
	}
}

func TestQuestionnaireRepositoryNotFoundAndDelete(t *testing.T) {
	repo, err := NewQuestionnaireRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuestionnaireRepository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.Find(ctx, "alice", "example.com"); !errors.Is(err, sharedErrors.ErrSubmissionNotFound) {
		t.Errorf("Find error = %v, want ErrSubmissionNotFound", err)
	}

	submission, _ := questionnaire.NewSubmission("alice", "example.com")
	if err := repo.Save(ctx, submission); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "alice", "example.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Find(ctx, "alice", "example.com"); !errors.Is(err, sharedErrors.ErrSubmissionNotFound) {
		t.Errorf("Find after delete = %v, want ErrSubmissionNotFound", err)
	}
}

func TestQuestionnaireRepositoryRejectsTraversal(t *testing.T) {
	repo, err := NewQuestionnaireRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewQuestionnaireRepository: %v", err)
	}
	ctx := context.Background()

	if _, err := repo.Find(ctx, "..", "example.com"); !errors.Is(err, sharedErrors.ErrInvalidData) {
		t.Errorf("Find traversal error = %v, want ErrInvalidData", err)
	}
}

func TestResolveWithinUsedByRepositories(t *testing.T) {
	base := t.TempDir()
	if _, err := security.ResolveWithin(base, "nested", "file.json"); err != nil {
		t.Errorf("ResolveWithin nested path: %v", err)
	}
	if _, err := security.ResolveWithin(base, "..", "file.json"); err == nil {
		t.Error("ResolveWithin accepted a traversal path")
	}
}
