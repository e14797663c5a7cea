package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// CosmeticRepository implements the cosmetic repository for PostgreSQL
type CosmeticRepository struct {
	db *pgxpool.Pool
}

// NewCosmeticRepository creates a new CosmeticRepository
func NewCosmeticRepository(db *pgxpool.Pool) *CosmeticRepository {
	return &CosmeticRepository{db: db}
}

const titleColumns = `id, name, display_name, color, glow_color, is_active, created_by, created_at`

func scanTitle(row rowScanner) (*domain.CustomTitle, error) {
	var t domain.CustomTitle
	err := row.Scan(&t.ID, &t.Name, &t.DisplayName, &t.Color, &t.GlowColor, &t.IsActive, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTitle inserts a title definition; the unique name constraint maps
// to ErrDuplicateName
func (r *CosmeticRepository) CreateTitle(ctx context.Context, t *domain.CustomTitle) error {
	query := `
		INSERT INTO custom_titles (name, display_name, color, glow_color, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, t.Name, t.DisplayName, t.Color, t.GlowColor, t.IsActive, t.CreatedBy).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateName, t.Name)
		}
		return fmt.Errorf("failed to insert title: %w", err)
	}
	return nil
}

// GetTitleByID fetches one title
func (r *CosmeticRepository) GetTitleByID(ctx context.Context, id int) (*domain.CustomTitle, error) {
	query := fmt.Sprintf(`SELECT %s FROM custom_titles WHERE id = $1`, titleColumns)
	t, err := scanTitle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	return t, nil
}

// GetTitleByName fetches one title by its unique name
func (r *CosmeticRepository) GetTitleByName(ctx context.Context, name string) (*domain.CustomTitle, error) {
	query := fmt.Sprintf(`SELECT %s FROM custom_titles WHERE name = $1`, titleColumns)
	t, err := scanTitle(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title by name: %w", err)
	}
	return t, nil
}

// ListTitles returns all title definitions
func (r *CosmeticRepository) ListTitles(ctx context.Context) ([]domain.CustomTitle, error) {
	query := fmt.Sprintf(`SELECT %s FROM custom_titles ORDER BY id`, titleColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	defer rows.Close()

	var titles []domain.CustomTitle
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		titles = append(titles, *t)
	}
	return titles, rows.Err()
}

// AssignTitle deactivates the player's active binding and inserts the new
// active one inside a single transaction. The partial unique index on
// (player_id) WHERE is_active backs the invariant.
func (r *CosmeticRepository) AssignTitle(ctx context.Context, playerID, titleID int, assignedBy string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE player_titles SET is_active = FALSE WHERE player_id = $1 AND is_active`, playerID); err != nil {
		return fmt.Errorf("failed to deactivate titles: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO player_titles (player_id, title_id, is_active, assigned_by) VALUES ($1, $2, TRUE, $3)`,
		playerID, titleID, assignedBy); err != nil {
		return fmt.Errorf("failed to insert player title: %w", err)
	}

	return tx.Commit(ctx)
}

// ActivateOwnedTitle flips an existing binding active; ErrTitleNotOwned if
// the player has no binding for that title
func (r *CosmeticRepository) ActivateOwnedTitle(ctx context.Context, playerID, titleID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE player_titles SET is_active = FALSE WHERE player_id = $1 AND is_active`, playerID); err != nil {
		return fmt.Errorf("failed to deactivate titles: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE player_titles SET is_active = TRUE WHERE player_id = $1 AND title_id = $2`,
		playerID, titleID)
	if err != nil {
		return fmt.Errorf("failed to activate title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTitleNotOwned
	}

	return tx.Commit(ctx)
}

// DeactivateTitles clears the player's active title
func (r *CosmeticRepository) DeactivateTitles(ctx context.Context, playerID int) error {
	if _, err := r.db.Exec(ctx,
		`UPDATE player_titles SET is_active = FALSE WHERE player_id = $1 AND is_active`, playerID); err != nil {
		return fmt.Errorf("failed to deactivate titles: %w", err)
	}
	return nil
}

// DeactivateAllTitles clears every player's active title
func (r *CosmeticRepository) DeactivateAllTitles(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `UPDATE player_titles SET is_active = FALSE WHERE is_active`); err != nil {
		return fmt.Errorf("failed to deactivate all titles: %w", err)
	}
	return nil
}

// GetActiveTitle returns the player's active title definition, or nil
func (r *CosmeticRepository) GetActiveTitle(ctx context.Context, playerID int) (*domain.CustomTitle, error) {
	query := `
		SELECT t.id, t.name, t.display_name, t.color, t.glow_color, t.is_active, t.created_by, t.created_at
		FROM player_titles pt
		JOIN custom_titles t ON t.id = pt.title_id
		WHERE pt.player_id = $1 AND pt.is_active
	`
	t, err := scanTitle(r.db.QueryRow(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active title: %w", err)
	}
	return t, nil
}

// ListPlayerTitles returns every binding for one player
func (r *CosmeticRepository) ListPlayerTitles(ctx context.Context, playerID int) ([]domain.PlayerTitle, error) {
	query := `SELECT id, player_id, title_id, is_active, assigned_by, assigned_at FROM player_titles WHERE player_id = $1 ORDER BY assigned_at`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player titles: %w", err)
	}
	defer rows.Close()

	var titles []domain.PlayerTitle
	for rows.Next() {
		var pt domain.PlayerTitle
		if err := rows.Scan(&pt.ID, &pt.PlayerID, &pt.TitleID, &pt.IsActive, &pt.AssignedBy, &pt.AssignedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player title: %w", err)
		}
		titles = append(titles, pt)
	}
	return titles, rows.Err()
}

const themeColumns = `id, name, display_name, element_type, color1, color2, color3, gradient_direction, animation_enabled, is_active, created_at`

func scanTheme(row rowScanner) (*domain.GradientTheme, error) {
	var t domain.GradientTheme
	err := row.Scan(&t.ID, &t.Name, &t.DisplayName, &t.ElementType, &t.Color1, &t.Color2, &t.Color3,
		&t.GradientDirection, &t.AnimationEnabled, &t.IsActive, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTheme inserts a gradient theme; the unique name constraint maps to
// ErrDuplicateName
func (r *CosmeticRepository) CreateTheme(ctx context.Context, t *domain.GradientTheme) error {
	query := `
		INSERT INTO gradient_themes (name, display_name, element_type, color1, color2, color3,
			gradient_direction, animation_enabled, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		t.Name, t.DisplayName, t.ElementType, t.Color1, t.Color2, t.Color3,
		t.GradientDirection, t.AnimationEnabled, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateName, t.Name)
		}
		return fmt.Errorf("failed to insert theme: %w", err)
	}
	return nil
}

// GetThemeByID fetches one theme
func (r *CosmeticRepository) GetThemeByID(ctx context.Context, id int) (*domain.GradientTheme, error) {
	query := fmt.Sprintf(`SELECT %s FROM gradient_themes WHERE id = $1`, themeColumns)
	t, err := scanTheme(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return t, nil
}

// GetThemeByName fetches one theme by its unique name
func (r *CosmeticRepository) GetThemeByName(ctx context.Context, name string) (*domain.GradientTheme, error) {
	query := fmt.Sprintf(`SELECT %s FROM gradient_themes WHERE name = $1`, themeColumns)
	t, err := scanTheme(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to get theme by name: %w", err)
	}
	return t, nil
}

// ListThemes returns gradient themes, optionally only active ones
func (r *CosmeticRepository) ListThemes(ctx context.Context, activeOnly bool) ([]domain.GradientTheme, error) {
	query := fmt.Sprintf(`SELECT %s FROM gradient_themes ORDER BY element_type, id`, themeColumns)
	if activeOnly {
		query = fmt.Sprintf(`SELECT %s FROM gradient_themes WHERE is_active ORDER BY element_type, id`, themeColumns)
	}
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	var themes []domain.GradientTheme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, *t)
	}
	return themes, rows.Err()
}

// UpsertGradientSetting inserts or replaces the single row keyed by
// (player, element type)
func (r *CosmeticRepository) UpsertGradientSetting(ctx context.Context, s *domain.PlayerGradientSetting) error {
	query := `
		INSERT INTO player_gradient_settings (player_id, element_type, gradient_theme_id,
			custom_color1, custom_color2, custom_color3, is_enabled, assigned_by)
		VALUES ($1, $2, NULLIF($3, 0), $4, $5, $6, $7, $8)
		ON CONFLICT (player_id, element_type) DO UPDATE SET
			gradient_theme_id = EXCLUDED.gradient_theme_id,
			custom_color1 = EXCLUDED.custom_color1,
			custom_color2 = EXCLUDED.custom_color2,
			custom_color3 = EXCLUDED.custom_color3,
			is_enabled = EXCLUDED.is_enabled,
			assigned_by = EXCLUDED.assigned_by,
			assigned_at = NOW()
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		s.PlayerID, s.ElementType, s.GradientThemeID,
		s.CustomColor1, s.CustomColor2, s.CustomColor3, s.IsEnabled, s.AssignedBy,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert gradient setting: %w", err)
	}
	return nil
}

// RemoveGradientSetting deletes the row for one (player, element type)
func (r *CosmeticRepository) RemoveGradientSetting(ctx context.Context, playerID int, elementType string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM player_gradient_settings WHERE player_id = $1 AND element_type = $2`,
		playerID, elementType); err != nil {
		return fmt.Errorf("failed to remove gradient setting: %w", err)
	}
	return nil
}

// ListGradientSettings returns the player's enabled settings with their
// referenced themes populated
func (r *CosmeticRepository) ListGradientSettings(ctx context.Context, playerID int) ([]domain.PlayerGradientSetting, error) {
	query := `
		SELECT s.id, s.player_id, s.element_type, COALESCE(s.gradient_theme_id, 0),
			s.custom_color1, s.custom_color2, s.custom_color3, s.is_enabled, s.assigned_by, s.assigned_at,
			t.id, t.name, t.display_name, t.element_type, t.color1, t.color2, t.color3,
			t.gradient_direction, t.animation_enabled, t.is_active, t.created_at
		FROM player_gradient_settings s
		LEFT JOIN gradient_themes t ON t.id = s.gradient_theme_id
		WHERE s.player_id = $1 AND s.is_enabled
	`
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gradient settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.PlayerGradientSetting
	for rows.Next() {
		var s domain.PlayerGradientSetting
		var themeID *int
		var themeName, themeDisplay, themeElement, c1, c2, c3, direction *string
		var animated, active *bool
		var createdAt *time.Time
		err := rows.Scan(
			&s.ID, &s.PlayerID, &s.ElementType, &s.GradientThemeID,
			&s.CustomColor1, &s.CustomColor2, &s.CustomColor3, &s.IsEnabled, &s.AssignedBy, &s.AssignedAt,
			&themeID, &themeName, &themeDisplay, &themeElement, &c1, &c2, &c3,
			&direction, &animated, &active, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gradient setting: %w", err)
		}
		if themeID != nil {
			s.Theme = &domain.GradientTheme{
				ID: *themeID, Name: *themeName, DisplayName: *themeDisplay, ElementType: *themeElement,
				Color1: *c1, Color2: *c2, Color3: *c3,
				GradientDirection: *direction, AnimationEnabled: *animated, IsActive: *active, CreatedAt: *createdAt,
			}
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
