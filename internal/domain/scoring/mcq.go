package scoring

import (
	"strings"

	"github.com/apexfit/fitscore/internal/domain/model"
)

// ScoreMCQ scores a multiple-choice questionnaire as a percentage in [0,100].
//
// Each question in the key contributes its point value when the matching
// response's answer equals the key answer (case-insensitive, trimmed).
// Unanswered questions earn nothing; responses to unknown question IDs are
// ignored. An empty or zero-point key scores 0.
func ScoreMCQ(responses []model.MCQResponse, key []model.MCQKey) float64 {
	total := 0.0
	for _, k := range key {
		if k.Points > 0 {
			total += k.Points
		}
	}
	if total == 0 {
		return 0
	}

	answered := make(map[string]string, len(responses))
	for _, r := range responses {
		answered[r.QuestionID] = normalizeAnswer(r.Answer)
	}

	earned := 0.0
	for _, k := range key {
		if k.Points <= 0 {
			continue
		}
		if got, ok := answered[k.QuestionID]; ok && got == normalizeAnswer(k.Answer) {
			earned += k.Points
		}
	}

	return 100 * earned / total
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
