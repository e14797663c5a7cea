package achievement

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/announcer"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

type Service interface {
	CreateAchievement(ctx context.Context, achievement *domain.Achievement) error
	GetAchievement(ctx context.Context, id int) (*domain.Achievement, error)
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	DeleteAchievement(ctx context.Context, id int) error
	GetEarnedCount(ctx context.Context, achievementID int) (int, error)
	ListEarned(ctx context.Context, playerID int) ([]domain.PlayerAchievement, error)

	// Evaluate awards every unearned achievement whose condition the player
	// now satisfies, returning the newly earned ones
	Evaluate(ctx context.Context, playerID int) ([]domain.Achievement, error)

	GenerateSeasonal(ctx context.Context) ([]domain.Achievement, error)
	EnsureDefaults(ctx context.Context) error
}

type service struct {
	achievements repository.Achievement
	players      repository.Player
	announce     announcer.Announcer
}

func NewService(achievements repository.Achievement, players repository.Player, announce announcer.Announcer) Service {
	if announce == nil {
		announce = announcer.NoopAnnouncer{}
	}
	return &service{
		achievements: achievements,
		players:      players,
		announce:     announce,
	}
}

// CreateAchievement validates and stores an achievement definition. The
// unlock condition must be a JSON object of field thresholds.
func (s *service) CreateAchievement(ctx context.Context, achievement *domain.Achievement) error {
	if achievement.Title == "" {
		return fmt.Errorf("%w: achievement title must not be empty", domain.ErrInvalidInput)
	}
	var cond domain.UnlockCondition
	if err := json.Unmarshal([]byte(achievement.UnlockCondition), &cond); err != nil {
		return fmt.Errorf("%w: unlock condition must be a JSON object of thresholds", domain.ErrInvalidInput)
	}
	if achievement.Rarity == "" {
		achievement.Rarity = domain.RarityCommon
	}
	if achievement.Icon == "" {
		achievement.Icon = "fas fa-medal"
	}
	return s.achievements.CreateAchievement(ctx, achievement)
}

func (s *service) GetAchievement(ctx context.Context, id int) (*domain.Achievement, error) {
	return s.achievements.GetAchievementByID(ctx, id)
}

func (s *service) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	return s.achievements.ListAchievements(ctx)
}

func (s *service) DeleteAchievement(ctx context.Context, id int) error {
	return s.achievements.DeleteAchievement(ctx, id)
}

func (s *service) GetEarnedCount(ctx context.Context, achievementID int) (int, error) {
	return s.achievements.GetEarnedCount(ctx, achievementID)
}

func (s *service) ListEarned(ctx context.Context, playerID int) ([]domain.PlayerAchievement, error) {
	return s.achievements.ListEarned(ctx, playerID)
}

// Evaluate checks every unearned achievement against the player's current
// stats. A malformed stored condition is logged and skipped, never fatal, so
// one bad row cannot block the whole evaluation.
func (s *service) Evaluate(ctx context.Context, playerID int) ([]domain.Achievement, error) {
	log := logger.FromContext(ctx)

	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	unearned, err := s.achievements.ListUnearned(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var earned []domain.Achievement
	totalXP := 0

	for _, a := range unearned {
		var cond domain.UnlockCondition
		if err := json.Unmarshal([]byte(a.UnlockCondition), &cond); err != nil {
			log.Warn("Skipping achievement with malformed unlock condition",
				"achievement_id", a.ID, "error", err)
			continue
		}
		if !cond.SatisfiedBy(player) {
			continue
		}

		if err := s.achievements.GrantAchievement(ctx, playerID, a.ID); err != nil {
			return nil, err
		}
		totalXP += a.RewardXP
		earned = append(earned, a)
	}

	if totalXP > 0 {
		if err := s.players.AddExperience(ctx, playerID, totalXP); err != nil {
			return nil, err
		}
	}
	for _, a := range earned {
		s.announce.AnnounceAchievementEarned(ctx, player.Nickname, a.Title, a.RewardXP)
		log.Info("Achievement earned",
			"player_id", playerID, "achievement_id", a.ID, "reward_xp", a.RewardXP)
	}
	return earned, nil
}

// GenerateSeasonal creates the seasonal achievement set, skipping titles
// that already exist.
func (s *service) GenerateSeasonal(ctx context.Context) ([]domain.Achievement, error) {
	return s.createMissing(ctx, seasonalAchievements())
}

// EnsureDefaults creates the standard achievement set, skipping titles that
// already exist.
func (s *service) EnsureDefaults(ctx context.Context) error {
	_, err := s.createMissing(ctx, defaultAchievements())
	return err
}

func (s *service) createMissing(ctx context.Context, set []domain.Achievement) ([]domain.Achievement, error) {
	existing, err := s.achievements.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, a := range existing {
		known[a.Title] = true
	}

	var created []domain.Achievement
	for i := range set {
		if known[set[i].Title] {
			continue
		}
		if err := s.achievements.CreateAchievement(ctx, &set[i]); err != nil {
			return created, err
		}
		created = append(created, set[i])
	}
	return created, nil
}
