package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// AchievementRepository implements the achievement repository for PostgreSQL
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

const achievementColumns = `id, title, description, icon, rarity, unlock_condition, reward_xp, reward_title, is_hidden, created_at`

func scanAchievement(row rowScanner) (*domain.Achievement, error) {
	var a domain.Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Icon, &a.Rarity,
		&a.UnlockCondition, &a.RewardXP, &a.RewardTitle, &a.IsHidden, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAchievement inserts an achievement definition
func (r *AchievementRepository) CreateAchievement(ctx context.Context, a *domain.Achievement) error {
	query := `
		INSERT INTO achievements (title, description, icon, rarity, unlock_condition, reward_xp, reward_title, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		a.Title, a.Description, a.Icon, a.Rarity, a.UnlockCondition, a.RewardXP, a.RewardTitle, a.IsHidden,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert achievement: %w", err)
	}
	return nil
}

// GetAchievementByID fetches one achievement
func (r *AchievementRepository) GetAchievementByID(ctx context.Context, id int) (*domain.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements WHERE id = $1`, achievementColumns)
	a, err := scanAchievement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}
	return a, nil
}

// GetAchievementByTitle fetches one achievement by exact title, used to
// deduplicate generated sets
func (r *AchievementRepository) GetAchievementByTitle(ctx context.Context, title string) (*domain.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements WHERE title = $1`, achievementColumns)
	a, err := scanAchievement(r.db.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement by title: %w", err)
	}
	return a, nil
}

// ListAchievements returns all achievement definitions
func (r *AchievementRepository) ListAchievements(ctx context.Context) ([]domain.Achievement, error) {
	query := fmt.Sprintf(`SELECT %s FROM achievements ORDER BY id`, achievementColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return collectAchievements(rows)
}

// DeleteAchievement removes an achievement; earned rows cascade
func (r *AchievementRepository) DeleteAchievement(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAchievementNotFound
	}
	return nil
}

// ListUnearned returns achievements the player has not earned yet
func (r *AchievementRepository) ListUnearned(ctx context.Context, playerID int) ([]domain.Achievement, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM achievements a
		WHERE NOT EXISTS (
			SELECT 1 FROM player_achievements pa
			WHERE pa.achievement_id = a.id AND pa.player_id = $1
		)
		ORDER BY a.id
	`, achievementColumns)
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unearned achievements: %w", err)
	}
	return collectAchievements(rows)
}

// ListEarned returns the player's earned achievement rows
func (r *AchievementRepository) ListEarned(ctx context.Context, playerID int) ([]domain.PlayerAchievement, error) {
	query := `SELECT id, player_id, achievement_id, earned_at FROM player_achievements WHERE player_id = $1 ORDER BY earned_at`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list earned achievements: %w", err)
	}
	defer rows.Close()

	var earned []domain.PlayerAchievement
	for rows.Next() {
		var pa domain.PlayerAchievement
		if err := rows.Scan(&pa.ID, &pa.PlayerID, &pa.AchievementID, &pa.EarnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player achievement: %w", err)
		}
		earned = append(earned, pa)
	}
	return earned, rows.Err()
}

// GrantAchievement records an earned achievement, insert-once per pair
func (r *AchievementRepository) GrantAchievement(ctx context.Context, playerID, achievementID int) error {
	query := `
		INSERT INTO player_achievements (player_id, achievement_id)
		VALUES ($1, $2)
		ON CONFLICT (player_id, achievement_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, playerID, achievementID); err != nil {
		return fmt.Errorf("failed to grant achievement: %w", err)
	}
	return nil
}

// GetEarnedCount counts how many players earned one achievement
func (r *AchievementRepository) GetEarnedCount(ctx context.Context, achievementID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM player_achievements WHERE achievement_id = $1`, achievementID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count earned achievements: %w", err)
	}
	return count, nil
}

func collectAchievements(rows pgx.Rows) ([]domain.Achievement, error) {
	defer rows.Close()
	var achievements []domain.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}
