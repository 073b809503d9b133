package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityRank_Ordering(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
}

func TestPriorityRank_UnknownSinksLast(t *testing.T) {
	assert.Greater(t, Priority("urgent").Rank(), PriorityLow.Rank())
}

func TestCompensationStrategy(t *testing.T) {
	assert.Equal(t, "Emphasize transferable skills related to Kubernetes", CompensationStrategy("Kubernetes"))
}

func TestGapAnswerValid(t *testing.T) {
	tests := []struct {
		name   string
		answer GapAnswer
		want   bool
	}{
		{
			name:   "has experience with response",
			answer: GapAnswer{HasExperience: true, UserResponse: "Used it in production"},
			want:   true,
		},
		{
			name:   "has experience without response",
			answer: GapAnswer{HasExperience: true},
			want:   false,
		},
		{
			name:   "has experience with stray compensation",
			answer: GapAnswer{HasExperience: true, UserResponse: "yes", CompensationStrategy: "note"},
			want:   false,
		},
		{
			name:   "no experience with compensation",
			answer: GapAnswer{HasExperience: false, CompensationStrategy: CompensationStrategy("Go")},
			want:   true,
		},
		{
			name:   "no experience without compensation",
			answer: GapAnswer{HasExperience: false},
			want:   false,
		},
		{
			name:   "no experience with stray response",
			answer: GapAnswer{HasExperience: false, UserResponse: "text", CompensationStrategy: "note"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answer.Valid())
		})
	}
}
