package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `id, nickname, kills, final_kills, deaths, beds_broken, games_played, wins, experience,
	role, server_ip, iron_collected, gold_collected, diamond_collected, emerald_collected, items_purchased,
	skin_url, skin_type, is_premium, real_name, bio, discord_tag, youtube_channel, twitch_channel,
	favorite_server, favorite_map, preferred_gamemode, profile_banner_color, profile_is_public,
	custom_status, location, birthday, custom_avatar_url, custom_banner_url, banner_is_animated,
	social_networks, stats_section_color, info_section_color, social_section_color, prefs_section_color,
	created_at, last_updated`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID, &p.Nickname, &p.Kills, &p.FinalKills, &p.Deaths, &p.BedsBroken, &p.GamesPlayed, &p.Wins, &p.Experience,
		&p.Role, &p.ServerIP, &p.IronCollected, &p.GoldCollected, &p.DiamondCollected, &p.EmeraldCollected, &p.ItemsPurchased,
		&p.SkinURL, &p.SkinType, &p.IsPremium, &p.RealName, &p.Bio, &p.DiscordTag, &p.YoutubeChannel, &p.TwitchChannel,
		&p.FavoriteServer, &p.FavoriteMap, &p.PreferredGamemode, &p.ProfileBannerColor, &p.ProfileIsPublic,
		&p.CustomStatus, &p.Location, &p.Birthday, &p.CustomAvatarURL, &p.CustomBannerURL, &p.BannerIsAnimated,
		&p.SocialNetworks, &p.StatsSectionColor, &p.InfoSectionColor, &p.SocialSectionColor, &p.PrefsSectionColor,
		&p.CreatedAt, &p.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPlayers(rows pgx.Rows) ([]domain.Player, error) {
	defer rows.Close()
	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreatePlayer inserts a new player row and backfills the generated fields
func (r *PlayerRepository) CreatePlayer(ctx context.Context, p *domain.Player) error {
	query := `
		INSERT INTO players (nickname, kills, final_kills, deaths, beds_broken, games_played, wins, experience,
			role, server_ip, iron_collected, gold_collected, diamond_collected, emerald_collected, items_purchased,
			skin_type, is_premium, social_networks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, '[]')
		RETURNING id, created_at, last_updated
	`
	err := r.db.QueryRow(ctx, query,
		p.Nickname, p.Kills, p.FinalKills, p.Deaths, p.BedsBroken, p.GamesPlayed, p.Wins, p.Experience,
		p.Role, p.ServerIP, p.IronCollected, p.GoldCollected, p.DiamondCollected, p.EmeraldCollected, p.ItemsPurchased,
		p.SkinType, p.IsPremium,
	).Scan(&p.ID, &p.CreatedAt, &p.LastUpdated)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNickname, p.Nickname)
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayerByID fetches one player by primary key
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, id int) (*domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id = $1`, playerColumns)
	p, err := scanPlayer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// GetPlayerByNickname fetches one player by exact nickname
func (r *PlayerRepository) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE nickname = $1`, playerColumns)
	p, err := scanPlayer(r.db.QueryRow(ctx, query, nickname))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by nickname: %w", err)
	}
	return p, nil
}

// UpdatePlayer persists the full mutable field set and bumps last_updated
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	query := `
		UPDATE players SET
			kills = $2, final_kills = $3, deaths = $4, beds_broken = $5, games_played = $6, wins = $7,
			experience = $8, role = $9, server_ip = $10, iron_collected = $11, gold_collected = $12,
			diamond_collected = $13, emerald_collected = $14, items_purchased = $15,
			skin_url = $16, skin_type = $17, is_premium = $18,
			real_name = $19, bio = $20, discord_tag = $21, youtube_channel = $22, twitch_channel = $23,
			favorite_server = $24, favorite_map = $25, preferred_gamemode = $26, profile_banner_color = $27,
			profile_is_public = $28, custom_status = $29, location = $30, birthday = $31,
			custom_avatar_url = $32, custom_banner_url = $33, banner_is_animated = $34, social_networks = $35,
			stats_section_color = $36, info_section_color = $37, social_section_color = $38, prefs_section_color = $39,
			last_updated = NOW()
		WHERE id = $1
	`
	networks := p.SocialNetworks
	if networks == nil {
		networks = []domain.SocialLink{}
	}
	tag, err := r.db.Exec(ctx, query, p.ID,
		p.Kills, p.FinalKills, p.Deaths, p.BedsBroken, p.GamesPlayed, p.Wins,
		p.Experience, p.Role, p.ServerIP, p.IronCollected, p.GoldCollected,
		p.DiamondCollected, p.EmeraldCollected, p.ItemsPurchased,
		p.SkinURL, p.SkinType, p.IsPremium,
		p.RealName, p.Bio, p.DiscordTag, p.YoutubeChannel, p.TwitchChannel,
		p.FavoriteServer, p.FavoriteMap, p.PreferredGamemode, p.ProfileBannerColor,
		p.ProfileIsPublic, p.CustomStatus, p.Location, p.Birthday,
		p.CustomAvatarURL, p.CustomBannerURL, p.BannerIsAnimated, networks,
		p.StatsSectionColor, p.InfoSectionColor, p.SocialSectionColor, p.PrefsSectionColor,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// DeletePlayer removes a player; quest progress, achievements, titles and
// gradient settings cascade at the schema level
func (r *PlayerRepository) DeletePlayer(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// DeleteAllPlayers clears the leaderboard
func (r *PlayerRepository) DeleteAllPlayers(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}
	return nil
}

// Store-sortable leaderboard columns. Derived keys (level, ratios) are
// sorted in the service layer.
var sortableColumns = map[domain.StatField]string{
	domain.StatExperience: "experience",
	domain.StatKills:      "kills",
	domain.StatFinalKills: "final_kills",
	domain.StatBedsBroken: "beds_broken",
	domain.StatWins:       "wins",
}

// ListTop returns players ordered by a counter column, highest first
func (r *PlayerRepository) ListTop(ctx context.Context, orderBy domain.StatField, limit int) ([]domain.Player, error) {
	column, ok := sortableColumns[orderBy]
	if !ok {
		return nil, fmt.Errorf("%w: unsortable field %q", domain.ErrInvalidInput, orderBy)
	}
	query := fmt.Sprintf(`SELECT %s FROM players ORDER BY %s DESC LIMIT $1`, playerColumns, column)
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return collectPlayers(rows)
}

// ListAll returns every player ordered by experience, highest first
func (r *PlayerRepository) ListAll(ctx context.Context) ([]domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players ORDER BY experience DESC`, playerColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return collectPlayers(rows)
}

// ListRecent returns the most recently created players
func (r *PlayerRepository) ListRecent(ctx context.Context, limit int) ([]domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players ORDER BY created_at DESC LIMIT $1`, playerColumns)
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent players: %w", err)
	}
	return collectPlayers(rows)
}

// SearchPlayers finds players whose nickname contains the query,
// case-insensitive, best first
func (r *PlayerRepository) SearchPlayers(ctx context.Context, search string) ([]domain.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE nickname ILIKE '%%' || $1 || '%%' ORDER BY experience DESC`, playerColumns)
	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	return collectPlayers(rows)
}

// AddExperience grants XP as a single transactional increment
func (r *PlayerRepository) AddExperience(ctx context.Context, playerID, delta int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE players SET experience = experience + $2, last_updated = NOW() WHERE id = $1`,
		playerID, delta)
	if err != nil {
		return fmt.Errorf("failed to add experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// GetOverview aggregates leaderboard-wide totals and the top player
func (r *PlayerRepository) GetOverview(ctx context.Context) (*domain.Overview, error) {
	var o domain.Overview
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(kills), 0), COALESCE(SUM(deaths), 0), COALESCE(SUM(games_played), 0),
			COALESCE(SUM(wins), 0), COALESCE(SUM(beds_broken), 0),
			COALESCE(ROUND(AVG(experience) / 1000.0), 0)
		FROM players
	`
	err := r.db.QueryRow(ctx, query).Scan(
		&o.TotalPlayers, &o.TotalKills, &o.TotalDeaths, &o.TotalGames,
		&o.TotalWins, &o.TotalBedsBroken, &o.AverageLevel,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate overview: %w", err)
	}

	if o.TotalPlayers == 0 {
		return &o, nil
	}

	topQuery := fmt.Sprintf(`SELECT %s FROM players ORDER BY experience DESC LIMIT 1`, playerColumns)
	top, err := scanPlayer(r.db.QueryRow(ctx, topQuery))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get top player: %w", err)
	}
	o.TopPlayer = top
	return &o, nil
}
