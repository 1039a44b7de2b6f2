package questionnaire

import "sort"

// SolutionCode is a short identifier for a remediation offering suggested
// from weak questionnaire answers.
type SolutionCode string

const (
	SolutionITAM         SolutionCode = "ITAM"
	SolutionDLP          SolutionCode = "DLP"
	SolutionBDR          SolutionCode = "BDR"
	SolutionIAM          SolutionCode = "IAM"
	SolutionTVM          SolutionCode = "TVM"
	SolutionSIEM         SolutionCode = "SIEM"
	SolutionIRP          SolutionCode = "IRP"
	SolutionSAT          SolutionCode = "SAT"
	SolutionVRM          SolutionCode = "VRM"
	SolutionMFA          SolutionCode = "MFA"
	SolutionCyberCheckup SolutionCode = "Cyber Checkup"
)

// recommendationRules maps triggering questions to the solution they
// suggest. A rule fires when any referenced answer is exactly No (0);
// Partially never triggers a recommendation.
var recommendationRules = []struct {
	questions []int
	code      SolutionCode
}{
	{[]int{1, 2}, SolutionITAM},
	{[]int{3, 4}, SolutionDLP},
	{[]int{5}, SolutionBDR},
	{[]int{6, 7, 8}, SolutionIAM},
	{[]int{9, 10, 11}, SolutionTVM},
	{[]int{12, 13}, SolutionSIEM},
	{[]int{14, 15}, SolutionIRP},
	{[]int{16, 17}, SolutionSAT},
	{[]int{18}, SolutionVRM},
	{[]int{19, 20}, SolutionMFA},
}

// checkupThreshold is the overall percentage below which the catch-all
// assessment is always recommended.
const checkupThreshold = 50

// Recommend derives the deduplicated set of solution codes for an answer
// map and its overall percentage score. The result is sorted, so scoring
// the same answers twice (or in any insertion order) yields an identical
// slice.
func Recommend(answers Answers, percentage int) []SolutionCode {
	fired := make(map[SolutionCode]bool)

	for _, rule := range recommendationRules {
		for _, id := range rule.questions {
			if v, ok := answers[id]; ok && v == AnswerNo {
				fired[rule.code] = true
				break
			}
		}
	}

	if percentage < checkupThreshold {
		fired[SolutionCyberCheckup] = true
	}

	codes := make([]SolutionCode, 0, len(fired))
	for code := range fired {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
