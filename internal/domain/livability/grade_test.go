package livability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizutama/livability/internal/domain"
)

func TestGradeFor(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.Grade
	}{
		{100, "S+"},
		{95, "S+"},
		{94.9, "S"},
		{90, "S"},
		{85, "A+"},
		{80, "A"},
		{79.9, "B+"},
		{75, "B+"},
		{70, "B"},
		{65, "C+"},
		{60, "C"},
		{55, "D+"},
		{54.9, "D"},
		{10, "D"},
		{0, "D"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GradeFor(tc.score), "score %.1f", tc.score)
	}
}
