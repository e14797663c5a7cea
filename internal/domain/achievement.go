package domain

import "time"

// Achievement rarities
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Synthetic condition keys evaluated against derived metrics instead of
// raw counters
const (
	ConditionKDRatio        = "kd_ratio"
	ConditionWinRate        = "win_rate"
	ConditionTotalResources = "total_resources"
)

// Achievement is awarded automatically once its unlock condition holds.
// UnlockCondition is a JSON object mapping field names to minimum values,
// ANDed together.
type Achievement struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Icon            string    `json:"icon"`
	Rarity          string    `json:"rarity"`
	UnlockCondition string    `json:"unlock_condition"`
	RewardXP        int       `json:"reward_xp"`
	RewardTitle     string    `json:"reward_title,omitempty"`
	IsHidden        bool      `json:"is_hidden"`
	CreatedAt       time.Time `json:"created_at"`
}

// PlayerAchievement records one earned achievement, insert-once per pair
type PlayerAchievement struct {
	ID            int       `json:"id"`
	PlayerID      int       `json:"player_id"`
	AchievementID int       `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

// UnlockCondition is the parsed form of an achievement condition:
// counter or synthetic field name -> required minimum.
type UnlockCondition map[string]float64

// SatisfiedBy reports whether the player meets every threshold in the
// condition. Synthetic keys compare against the rounded derived metrics;
// any other key reads the raw counter (unknown names read as 0).
func (c UnlockCondition) SatisfiedBy(p *Player) bool {
	for key, required := range c {
		var value float64
		switch key {
		case ConditionKDRatio:
			value = p.KDRatio()
		case ConditionWinRate:
			value = p.WinRate()
		case ConditionTotalResources:
			value = float64(p.TotalResources())
		default:
			value = float64(p.StatValue(key))
		}
		if value < required {
			return false
		}
	}
	return true
}
