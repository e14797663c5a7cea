package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// QuestRepository implements the quest repository for PostgreSQL
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

const questColumns = `id, title, description, type, target_value, reward_xp, reward_title, icon, difficulty, is_active, created_at`

func scanQuest(row rowScanner) (*domain.Quest, error) {
	var q domain.Quest
	err := row.Scan(&q.ID, &q.Title, &q.Description, &q.Type, &q.TargetValue,
		&q.RewardXP, &q.RewardTitle, &q.Icon, &q.Difficulty, &q.IsActive, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

const playerQuestColumns = `id, player_id, quest_id, current_progress, baseline_value, is_accepted, is_completed, accepted_at, started_at, completed_at`

func scanPlayerQuest(row rowScanner) (*domain.PlayerQuest, error) {
	var pq domain.PlayerQuest
	err := row.Scan(&pq.ID, &pq.PlayerID, &pq.QuestID, &pq.CurrentProgress, &pq.BaselineValue,
		&pq.IsAccepted, &pq.IsCompleted, &pq.AcceptedAt, &pq.StartedAt, &pq.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &pq, nil
}

// CreateQuest inserts a quest definition
func (r *QuestRepository) CreateQuest(ctx context.Context, q *domain.Quest) error {
	query := `
		INSERT INTO quests (title, description, type, target_value, reward_xp, reward_title, icon, difficulty, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		q.Title, q.Description, q.Type, q.TargetValue, q.RewardXP, q.RewardTitle, q.Icon, q.Difficulty, q.IsActive,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quest: %w", err)
	}
	return nil
}

// GetQuestByID fetches one quest
func (r *QuestRepository) GetQuestByID(ctx context.Context, id int) (*domain.Quest, error) {
	query := fmt.Sprintf(`SELECT %s FROM quests WHERE id = $1`, questColumns)
	q, err := scanQuest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return q, nil
}

// ListQuests returns quest definitions, optionally only active ones
func (r *QuestRepository) ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error) {
	query := fmt.Sprintf(`SELECT %s FROM quests ORDER BY id`, questColumns)
	if activeOnly {
		query = fmt.Sprintf(`SELECT %s FROM quests WHERE is_active ORDER BY id`, questColumns)
	}
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		quests = append(quests, *q)
	}
	return quests, rows.Err()
}

// DeleteQuest removes a quest; player progress cascades
func (r *QuestRepository) DeleteQuest(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

// GetPlayerQuest fetches the progress row for one (player, quest) pair
func (r *QuestRepository) GetPlayerQuest(ctx context.Context, playerID, questID int) (*domain.PlayerQuest, error) {
	query := fmt.Sprintf(`SELECT %s FROM player_quests WHERE player_id = $1 AND quest_id = $2`, playerQuestColumns)
	pq, err := scanPlayerQuest(r.db.QueryRow(ctx, query, playerID, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player quest: %w", err)
	}
	return pq, nil
}

// ListAcceptedIncomplete returns accepted, unfinished progress rows joined
// with their quest definitions
func (r *QuestRepository) ListAcceptedIncomplete(ctx context.Context, playerID int) ([]domain.QuestProgressEntry, error) {
	query := `
		SELECT q.id, q.title, q.description, q.type, q.target_value, q.reward_xp, q.reward_title,
			q.icon, q.difficulty, q.is_active, q.created_at,
			pq.id, pq.player_id, pq.quest_id, pq.current_progress, pq.baseline_value,
			pq.is_accepted, pq.is_completed, pq.accepted_at, pq.started_at, pq.completed_at
		FROM player_quests pq
		JOIN quests q ON q.id = pq.quest_id
		WHERE pq.player_id = $1 AND pq.is_accepted AND NOT pq.is_completed
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted quests: %w", err)
	}
	defer rows.Close()

	var entries []domain.QuestProgressEntry
	for rows.Next() {
		var q domain.Quest
		var pq domain.PlayerQuest
		err := rows.Scan(
			&q.ID, &q.Title, &q.Description, &q.Type, &q.TargetValue, &q.RewardXP, &q.RewardTitle,
			&q.Icon, &q.Difficulty, &q.IsActive, &q.CreatedAt,
			&pq.ID, &pq.PlayerID, &pq.QuestID, &pq.CurrentProgress, &pq.BaselineValue,
			&pq.IsAccepted, &pq.IsCompleted, &pq.AcceptedAt, &pq.StartedAt, &pq.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest progress: %w", err)
		}
		entries = append(entries, domain.QuestProgressEntry{Quest: q, Progress: &pq})
	}
	return entries, rows.Err()
}

// ListPlayerProgress returns every progress row for one player
func (r *QuestRepository) ListPlayerProgress(ctx context.Context, playerID int) ([]domain.PlayerQuest, error) {
	query := fmt.Sprintf(`SELECT %s FROM player_quests WHERE player_id = $1`, playerQuestColumns)
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player progress: %w", err)
	}
	defer rows.Close()

	var progress []domain.PlayerQuest
	for rows.Next() {
		pq, err := scanPlayerQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player quest: %w", err)
		}
		progress = append(progress, *pq)
	}
	return progress, rows.Err()
}

// UpsertPlayerQuest inserts or updates the single progress row per
// (player, quest) pair
func (r *QuestRepository) UpsertPlayerQuest(ctx context.Context, pq *domain.PlayerQuest) error {
	query := `
		INSERT INTO player_quests (player_id, quest_id, current_progress, baseline_value,
			is_accepted, is_completed, accepted_at, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (player_id, quest_id) DO UPDATE SET
			current_progress = EXCLUDED.current_progress,
			baseline_value = EXCLUDED.baseline_value,
			is_accepted = EXCLUDED.is_accepted,
			is_completed = EXCLUDED.is_completed,
			accepted_at = EXCLUDED.accepted_at,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		pq.PlayerID, pq.QuestID, pq.CurrentProgress, pq.BaselineValue,
		pq.IsAccepted, pq.IsCompleted, pq.AcceptedAt, pq.StartedAt, pq.CompletedAt,
	).Scan(&pq.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert player quest: %w", err)
	}
	return nil
}

// ResetQuestProgress deletes all progress rows for one quest
func (r *QuestRepository) ResetQuestProgress(ctx context.Context, questID int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM player_quests WHERE quest_id = $1`, questID); err != nil {
		return fmt.Errorf("failed to reset quest progress: %w", err)
	}
	return nil
}

// GetQuestStats counts attempts and completions for one quest
func (r *QuestRepository) GetQuestStats(ctx context.Context, questID int) (int, int, error) {
	var attempts, completed int
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_completed)
		FROM player_quests WHERE quest_id = $1
	`
	if err := r.db.QueryRow(ctx, query, questID).Scan(&attempts, &completed); err != nil {
		return 0, 0, fmt.Errorf("failed to get quest stats: %w", err)
	}
	return attempts, completed, nil
}
