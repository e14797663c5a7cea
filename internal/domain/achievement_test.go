package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnlockConditionSatisfiedBy(t *testing.T) {
	player := &Player{
		Kills:            150,
		Deaths:           50, // kd 3.0
		Wins:             52,
		GamesPlayed:      85, // win rate 61.2
		IronCollected:    5000,
		GoldCollected:    2500,
		DiamondCollected: 800,
		EmeraldCollected: 150, // total resources 8450
	}

	tests := []struct {
		name      string
		condition UnlockCondition
		expected  bool
	}{
		{"Single counter met", UnlockCondition{"kills": 100}, true},
		{"Single counter exact", UnlockCondition{"kills": 150}, true},
		{"Single counter unmet", UnlockCondition{"kills": 151}, false},
		{"KD ratio met", UnlockCondition{"kd_ratio": 3.0}, true},
		{"KD ratio unmet", UnlockCondition{"kd_ratio": 3.5}, false},
		{"Win rate met", UnlockCondition{"win_rate": 60}, true},
		{"Win rate unmet", UnlockCondition{"win_rate": 70}, false},
		{"Total resources met", UnlockCondition{"total_resources": 5000}, true},
		{"Total resources unmet", UnlockCondition{"total_resources": 10000}, false},
		{"All keys must hold", UnlockCondition{"kills": 100, "win_rate": 70}, false},
		{"Multiple keys all met", UnlockCondition{"kills": 100, "kd_ratio": 2.5, "total_resources": 8000}, true},
		{"Unknown field reads as zero", UnlockCondition{"mystery_stat": 1}, false},
		{"Unknown field zero threshold", UnlockCondition{"mystery_stat": 0}, true},
		{"Empty condition always holds", UnlockCondition{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.condition.SatisfiedBy(player))
		})
	}
}

func TestUnlockConditionUsesRoundedMetrics(t *testing.T) {
	// 2/3 rounds to 0.67, which satisfies a 0.67 threshold the raw value would miss
	p := &Player{Kills: 2, Deaths: 3}
	cond := UnlockCondition{"kd_ratio": 0.67}
	assert.True(t, cond.SatisfiedBy(p))
}
