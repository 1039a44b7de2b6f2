package questionnaire

import (
	"reflect"
	"testing"
)

func answersAll(value AnswerValue) Answers {
	a := make(Answers, QuestionCount)
	for _, q := range Questions() {
		a[q.ID] = value
	}
	return a
}

func TestScoreAllNo(t *testing.T) {
	result := Score(answersAll(AnswerNo))
	if result.RawTotal != 0 {
		t.Errorf("raw total = %d, want 0", result.RawTotal)
	}
	if result.Percentage != 0 {
		t.Errorf("percentage = %d, want 0", result.Percentage)
	}
	if result.HealthStatus != "Poor" {
		t.Errorf("health = %q, want Poor", result.HealthStatus)
	}
	if len(result.TopStrengths) != 0 {
		t.Errorf("expected no strengths, got %v", result.TopStrengths)
	}
	if len(result.TopIssues) != 3 {
		t.Errorf("issues should cap at 3, got %d", len(result.TopIssues))
	}
}

func TestScoreAllYes(t *testing.T) {
	result := Score(answersAll(AnswerYes))
	if result.RawTotal != MaxRawTotal {
		t.Errorf("raw total = %d, want %d", result.RawTotal, MaxRawTotal)
	}
	if result.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", result.Percentage)
	}
	if result.HealthStatus != "Excellent" {
		t.Errorf("health = %q, want Excellent", result.HealthStatus)
	}
	if len(result.TopIssues) != 0 {
		t.Errorf("expected no issues, got %v", result.TopIssues)
	}
	if len(result.TopStrengths) != 3 {
		t.Errorf("strengths should cap at 3, got %d", len(result.TopStrengths))
	}
}

func TestScoreAllPartially(t *testing.T) {
	result := Score(answersAll(AnswerPartially))
	if result.Percentage != 50 {
		t.Errorf("percentage = %d, want 50", result.Percentage)
	}
	// Every category sits at exactly 50%, below the issue threshold.
	for _, ca := range result.Breakdown {
		if ca.Percentage != 50 {
			t.Errorf("category %s = %d%%, want 50", ca.Name, ca.Percentage)
		}
	}
	if len(result.TopStrengths) != 0 {
		t.Errorf("expected no strengths at 50%%, got %v", result.TopStrengths)
	}
}

func TestScoreBreakdownGap(t *testing.T) {
	// Asset Management has two questions; one Yes and one Partially lands
	// it at exactly 75%, which belongs to neither shortlist.
	answers := answersAll(AnswerYes)
	answers[1] = AnswerYes
	answers[2] = AnswerPartially

	result := Score(answers)

	var asset *CategoryAnalysis
	for i := range result.Breakdown {
		if result.Breakdown[i].Name == "Asset Management" {
			asset = &result.Breakdown[i]
		}
	}
	if asset == nil {
		t.Fatal("Asset Management missing from breakdown")
	}
	if asset.Percentage != 75 {
		t.Fatalf("Asset Management = %d%%, want 75", asset.Percentage)
	}
	for _, ca := range result.TopIssues {
		if ca.Name == "Asset Management" {
			t.Error("75% category must not appear in issues")
		}
	}
	for _, ca := range result.TopStrengths {
		if ca.Name == "Asset Management" {
			t.Error("75% category must not appear in strengths")
		}
	}
}

func TestScoreIssuesSortedAscending(t *testing.T) {
	answers := answersAll(AnswerYes)
	// Vendor Management (q18) to 0%, Security Monitoring (q12, q13) to 50%.
	answers[18] = AnswerNo
	answers[12] = AnswerPartially
	answers[13] = AnswerPartially

	result := Score(answers)
	want := []CategoryAnalysis{
		{Name: "Vendor Management", Percentage: 0},
		{Name: "Security Monitoring", Percentage: 50},
	}
	if !reflect.DeepEqual(result.TopIssues, want) {
		t.Errorf("issues = %v, want %v", result.TopIssues, want)
	}
}

func TestScoreTreatsMissingAnswerAsZero(t *testing.T) {
	answers := answersAll(AnswerYes)
	delete(answers, 5)

	result := Score(answers)
	if result.RawTotal != MaxRawTotal-int(AnswerYes) {
		t.Errorf("raw total = %d, want %d", result.RawTotal, MaxRawTotal-int(AnswerYes))
	}
}

func TestAnswersValidation(t *testing.T) {
	a := make(Answers)
	if err := a.Set(0, AnswerYes); err == nil {
		t.Error("expected error for unknown question id")
	}
	if err := a.Set(1, 7); err == nil {
		t.Error("expected error for out-of-set answer value")
	}
	if err := a.Set(1, AnswerPartially); err != nil {
		t.Errorf("valid answer rejected: %v", err)
	}
	if a.Complete() {
		t.Error("one answer should not be a complete questionnaire")
	}
	if got := len(a.Unanswered()); got != QuestionCount-1 {
		t.Errorf("unanswered = %d, want %d", got, QuestionCount-1)
	}
}
