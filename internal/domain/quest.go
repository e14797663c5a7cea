package domain

import (
	"math"
	"time"
)

// Quest difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyEpic   = "epic"
)

// Quest is a counter-based goal players can accept and work toward
type Quest struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"` // counter field name, see StatField
	TargetValue int       `json:"target_value"`
	RewardXP    int       `json:"reward_xp"`
	RewardTitle string    `json:"reward_title,omitempty"`
	Icon        string    `json:"icon"`
	Difficulty  string    `json:"difficulty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerQuest tracks one player's progress on one quest. Progress is the
// delta between the live counter and the baseline snapshotted at accept
// time, so pre-existing stats never count toward a quest.
type PlayerQuest struct {
	ID              int        `json:"id"`
	PlayerID        int        `json:"player_id"`
	QuestID         int        `json:"quest_id"`
	CurrentProgress int        `json:"current_progress"`
	BaselineValue   int        `json:"baseline_value"`
	IsAccepted      bool       `json:"is_accepted"`
	IsCompleted     bool       `json:"is_completed"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ProgressPercentage returns completion percentage against the target,
// capped at 100. A zero target reads as complete.
func (pq *PlayerQuest) ProgressPercentage(target int) int {
	if target <= 0 {
		return 100
	}
	pct := int(math.Round(float64(pq.CurrentProgress) / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// QuestStats summarizes attempt/completion counts for one quest
type QuestStats struct {
	Quest          Quest   `json:"quest"`
	TotalAttempts  int     `json:"total_attempts"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// QuestProgressEntry pairs a quest with the requesting player's progress row
type QuestProgressEntry struct {
	Quest    Quest        `json:"quest"`
	Progress *PlayerQuest `json:"progress,omitempty"`
}
