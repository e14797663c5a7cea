package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/announcer"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

// Periodic quest set names
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type Service interface {
	// Quest management
	CreateQuest(ctx context.Context, quest *domain.Quest) error
	GetQuest(ctx context.Context, id int) (*domain.Quest, error)
	ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error)
	DeleteQuest(ctx context.Context, id int) error
	ResetProgress(ctx context.Context, questID int) error
	GeneratePeriodic(ctx context.Context, period string) ([]domain.Quest, error)
	EnsurePeriodic(ctx context.Context, period string) ([]domain.Quest, error)
	EnsureDefaults(ctx context.Context) error
	QuestStatsList(ctx context.Context) ([]domain.QuestStats, error)

	// Player progress
	AcceptQuest(ctx context.Context, nickname string, questID int) (*domain.PlayerQuest, error)
	GetBoard(ctx context.Context, nickname string) ([]domain.QuestProgressEntry, error)
	RecomputeProgress(ctx context.Context, playerID int) ([]domain.Quest, error)

	// Demo helper: force-complete a quest for the most recent player
	AdminCompleteQuest(ctx context.Context, questID int) (*domain.Quest, error)
}

type service struct {
	quests   repository.Quest
	players  repository.Player
	announce announcer.Announcer
}

func NewService(quests repository.Quest, players repository.Player, announce announcer.Announcer) Service {
	if announce == nil {
		announce = announcer.NoopAnnouncer{}
	}
	return &service{
		quests:   quests,
		players:  players,
		announce: announce,
	}
}

// CreateQuest validates and stores a quest definition
func (s *service) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	if quest.Title == "" {
		return fmt.Errorf("%w: quest title must not be empty", domain.ErrInvalidInput)
	}
	if !domain.IsKnownStatField(quest.Type) {
		return fmt.Errorf("%w: unknown quest type %q", domain.ErrInvalidInput, quest.Type)
	}
	if quest.TargetValue < 0 {
		return fmt.Errorf("%w: target value must not be negative", domain.ErrInvalidInput)
	}
	if quest.Difficulty == "" {
		quest.Difficulty = domain.DifficultyEasy
	}
	quest.IsActive = true
	return s.quests.CreateQuest(ctx, quest)
}

func (s *service) GetQuest(ctx context.Context, id int) (*domain.Quest, error) {
	return s.quests.GetQuestByID(ctx, id)
}

func (s *service) ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error) {
	return s.quests.ListQuests(ctx, activeOnly)
}

func (s *service) DeleteQuest(ctx context.Context, id int) error {
	return s.quests.DeleteQuest(ctx, id)
}

func (s *service) ResetProgress(ctx context.Context, questID int) error {
	if _, err := s.quests.GetQuestByID(ctx, questID); err != nil {
		return err
	}
	return s.quests.ResetQuestProgress(ctx, questID)
}

// AcceptQuest marks a quest accepted for the player and snapshots the
// tracked counter as the baseline. Accepting an already-accepted quest is a
// no-op returning the existing row.
func (s *service) AcceptQuest(ctx context.Context, nickname string, questID int) (*domain.PlayerQuest, error) {
	log := logger.FromContext(ctx)

	player, err := s.players.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}
	quest, err := s.quests.GetQuestByID(ctx, questID)
	if err != nil {
		return nil, err
	}

	pq, err := s.quests.GetPlayerQuest(ctx, player.ID, questID)
	if err != nil {
		return nil, err
	}
	if pq != nil && pq.IsAccepted {
		return pq, nil
	}
	if pq == nil {
		pq = &domain.PlayerQuest{PlayerID: player.ID, QuestID: questID}
	}

	now := time.Now().UTC()
	pq.IsAccepted = true
	pq.AcceptedAt = &now
	pq.StartedAt = &now
	pq.BaselineValue = player.StatValue(quest.Type)
	pq.CurrentProgress = 0

	if err := s.quests.UpsertPlayerQuest(ctx, pq); err != nil {
		return nil, err
	}

	log.Info("Quest accepted",
		"player_id", player.ID, "quest_id", questID, "baseline", pq.BaselineValue)
	return pq, nil
}

// GetBoard pairs the active quest list with the player's progress rows.
// An empty nickname returns the quest list with no progress attached.
func (s *service) GetBoard(ctx context.Context, nickname string) ([]domain.QuestProgressEntry, error) {
	quests, err := s.quests.ListQuests(ctx, true)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.QuestProgressEntry, 0, len(quests))
	var progress map[int]*domain.PlayerQuest

	if nickname != "" {
		player, err := s.players.GetPlayerByNickname(ctx, nickname)
		if err != nil {
			return nil, err
		}
		rows, err := s.quests.ListPlayerProgress(ctx, player.ID)
		if err != nil {
			return nil, err
		}
		progress = make(map[int]*domain.PlayerQuest, len(rows))
		for i := range rows {
			progress[rows[i].QuestID] = &rows[i]
		}
	}

	for _, q := range quests {
		entries = append(entries, domain.QuestProgressEntry{Quest: q, Progress: progress[q.ID]})
	}
	return entries, nil
}

// RecomputeProgress refreshes every accepted, unfinished quest of the player
// against the live counters. Progress is the delta above the accept-time
// baseline; reaching the target completes the quest and grants its XP.
// Reward titles are never auto-assigned here.
func (s *service) RecomputeProgress(ctx context.Context, playerID int) ([]domain.Quest, error) {
	log := logger.FromContext(ctx)

	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.quests.ListAcceptedIncomplete(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var completed []domain.Quest
	totalXP := 0
	now := time.Now().UTC()

	for _, entry := range entries {
		pq := entry.Progress

		progress := player.StatValue(entry.Quest.Type) - pq.BaselineValue
		if progress < 0 {
			progress = 0
		}
		// Completion is checked before the unchanged-progress skip so a quest
		// whose target is already met on accept (e.g. a zero target) still
		// completes on the next recompute.
		reachedTarget := progress >= entry.Quest.TargetValue
		if !reachedTarget && progress == pq.CurrentProgress {
			continue
		}
		pq.CurrentProgress = progress

		if reachedTarget {
			pq.IsCompleted = true
			pq.CompletedAt = &now
			totalXP += entry.Quest.RewardXP
			completed = append(completed, entry.Quest)
		}

		if err := s.quests.UpsertPlayerQuest(ctx, pq); err != nil {
			return nil, err
		}
	}

	if totalXP > 0 {
		if err := s.players.AddExperience(ctx, playerID, totalXP); err != nil {
			return nil, err
		}
	}
	for _, q := range completed {
		s.announce.AnnounceQuestCompleted(ctx, player.Nickname, q.Title, q.RewardXP)
		log.Info("Quest completed",
			"player_id", playerID, "quest_id", q.ID, "reward_xp", q.RewardXP)
	}
	return completed, nil
}

// AdminCompleteQuest force-completes a quest for the most recently created
// player, granting the XP and, unlike organic completion, the reward title
// as the player's role. Kept as the demo tool the admin panel exposes.
func (s *service) AdminCompleteQuest(ctx context.Context, questID int) (*domain.Quest, error) {
	log := logger.FromContext(ctx)

	quest, err := s.quests.GetQuestByID(ctx, questID)
	if err != nil {
		return nil, err
	}

	recent, err := s.players.ListRecent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, fmt.Errorf("%w: no players available", domain.ErrPlayerNotFound)
	}
	player := &recent[0]

	pq, err := s.quests.GetPlayerQuest(ctx, player.ID, questID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if pq == nil {
		pq = &domain.PlayerQuest{
			PlayerID:   player.ID,
			QuestID:    questID,
			IsAccepted: true,
			AcceptedAt: &now,
		}
	}
	if pq.IsCompleted {
		return quest, nil
	}

	pq.IsCompleted = true
	pq.CompletedAt = &now
	pq.CurrentProgress = quest.TargetValue
	if err := s.quests.UpsertPlayerQuest(ctx, pq); err != nil {
		return nil, err
	}

	player.Experience += quest.RewardXP
	if quest.RewardTitle != "" {
		player.Role = quest.RewardTitle
	}
	if err := s.players.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.announce.AnnounceQuestCompleted(ctx, player.Nickname, quest.Title, quest.RewardXP)
	log.Info("Quest force-completed",
		"player_id", player.ID, "quest_id", questID)
	return quest, nil
}

// GeneratePeriodic creates the fixed daily, weekly or monthly quest set
func (s *service) GeneratePeriodic(ctx context.Context, period string) ([]domain.Quest, error) {
	var set []domain.Quest
	switch period {
	case PeriodDaily:
		set = dailyQuests()
	case PeriodWeekly:
		set = weeklyQuests()
	case PeriodMonthly:
		set = monthlyQuests()
	default:
		return nil, fmt.Errorf("%w: unknown quest period %q", domain.ErrInvalidInput, period)
	}

	created := make([]domain.Quest, 0, len(set))
	for i := range set {
		set[i].IsActive = true
		if err := s.quests.CreateQuest(ctx, &set[i]); err != nil {
			return created, err
		}
		created = append(created, set[i])
	}
	return created, nil
}

// EnsurePeriodic creates the period's quest set, skipping titles that
// already exist. The rotation worker uses this so a restart mid-period
// never duplicates quests.
func (s *service) EnsurePeriodic(ctx context.Context, period string) ([]domain.Quest, error) {
	var set []domain.Quest
	switch period {
	case PeriodDaily:
		set = dailyQuests()
	case PeriodWeekly:
		set = weeklyQuests()
	case PeriodMonthly:
		set = monthlyQuests()
	default:
		return nil, fmt.Errorf("%w: unknown quest period %q", domain.ErrInvalidInput, period)
	}

	existing, err := s.quests.ListQuests(ctx, false)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		known[q.Title] = true
	}

	created := make([]domain.Quest, 0, len(set))
	for i := range set {
		if known[set[i].Title] {
			continue
		}
		set[i].IsActive = true
		if err := s.quests.CreateQuest(ctx, &set[i]); err != nil {
			return created, err
		}
		created = append(created, set[i])
	}
	return created, nil
}

// EnsureDefaults creates the standard quest set, skipping titles that
// already exist.
func (s *service) EnsureDefaults(ctx context.Context) error {
	existing, err := s.quests.ListQuests(ctx, false)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		known[q.Title] = true
	}

	for _, q := range defaultQuests() {
		if known[q.Title] {
			continue
		}
		q.IsActive = true
		if err := s.quests.CreateQuest(ctx, &q); err != nil {
			return err
		}
	}
	return nil
}

// QuestStatsList summarizes attempts and completions per quest
func (s *service) QuestStatsList(ctx context.Context) ([]domain.QuestStats, error) {
	quests, err := s.quests.ListQuests(ctx, false)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.QuestStats, 0, len(quests))
	for _, q := range quests {
		attempts, completed, err := s.quests.GetQuestStats(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		rate := 0.0
		if attempts > 0 {
			rate = float64(completed) / float64(attempts) * 100
		}
		stats = append(stats, domain.QuestStats{
			Quest:          q,
			TotalAttempts:  attempts,
			Completed:      completed,
			CompletionRate: rate,
		})
	}
	return stats, nil
}
