package livability

import "github.com/mizutama/livability/internal/domain"

// gradeThresholds is the canonical 10-level grade table. Ordered descending;
// the first threshold at or below the score wins.
var gradeThresholds = []struct {
	min   float64
	grade domain.Grade
}{
	{95, "S+"},
	{90, "S"},
	{85, "A+"},
	{80, "A"},
	{75, "B+"},
	{70, "B"},
	{65, "C+"},
	{60, "C"},
	{55, "D+"},
}

// GradeFor maps a composite score to its letter grade.
func GradeFor(totalScore float64) domain.Grade {
	for _, t := range gradeThresholds {
		if totalScore >= t.min {
			return t.grade
		}
	}
	return "D"
}
