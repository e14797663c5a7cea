package player

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

// Stat modification operations
const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 200
)

// Derived sort keys resolved in memory; counter columns sort in the store
const (
	SortLevel   = "level"
	SortKDRatio = "kd_ratio"
	SortWinRate = "win_rate"
)

const (
	derivedBoardCacheSize = 8
	derivedBoardCacheTTL  = 30 * time.Second
)

// ProfileUpdate carries a player's self-service profile changes. Nil pointers
// leave the stored value untouched where the form semantics allow it.
type ProfileUpdate struct {
	RealName           string
	Bio                string
	DiscordTag         string
	YoutubeChannel     string
	TwitchChannel      string
	FavoriteServer     string
	FavoriteMap        string
	PreferredGamemode  string
	ProfileBannerColor string
	ProfileIsPublic    bool
	CustomStatus       string
	Location           string
	Birthday           *time.Time
	CustomAvatarURL    string
	CustomBannerURL    string
	BannerIsAnimated   bool
	SocialNetworks     []domain.SocialLink

	StatsSectionColor  string
	InfoSectionColor   string
	SocialSectionColor string
	PrefsSectionColor  string
}

type Service interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, id int) (*domain.Player, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	ModifyStats(ctx context.Context, playerID int, operation string, deltas map[string]int) (*domain.Player, error)
	DeletePlayer(ctx context.Context, id int) error
	ClearLeaderboard(ctx context.Context) error

	GetLeaderboard(ctx context.Context, sortBy string, limit int) ([]domain.Player, error)
	SearchPlayers(ctx context.Context, query string) ([]domain.Player, error)
	Roster(ctx context.Context) ([]domain.Player, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Player, error)

	GetOverview(ctx context.Context) (*domain.Overview, error)
	GetChartData(ctx context.Context) (*domain.ChartData, error)

	UpdateSkin(ctx context.Context, playerID int, skinType string, isPremium bool, nameMCURL string) (*domain.Player, error)
	UpdateProfile(ctx context.Context, nickname string, update ProfileUpdate) (*domain.Player, error)
}

type service struct {
	repo repository.Player

	// boards caches leaderboards for derived sort keys, which require a
	// full table scan per request
	boards   *lru.LRU[string, []domain.Player]
	collator *collate.Collator
}

func NewService(repo repository.Player) Service {
	return &service{
		repo:     repo,
		boards:   lru.NewLRU[string, []domain.Player](derivedBoardCacheSize, nil, derivedBoardCacheTTL),
		collator: collate.New(language.Russian, collate.IgnoreCase),
	}
}

// CreatePlayer validates and stores a new player. The wins<=games check only
// runs here: later edits may legitimately break the relation and the original
// panel never re-validated it.
func (s *service) CreatePlayer(ctx context.Context, player *domain.Player) error {
	log := logger.FromContext(ctx)

	player.Nickname = strings.TrimSpace(player.Nickname)
	if player.Nickname == "" {
		return fmt.Errorf("%w: nickname must not be empty", domain.ErrInvalidInput)
	}
	if len([]rune(player.Nickname)) > domain.MaxNicknameLength {
		return fmt.Errorf("%w: nickname must not exceed %d characters", domain.ErrInvalidInput, domain.MaxNicknameLength)
	}
	if err := validateCounters(player); err != nil {
		return err
	}
	if player.Wins > player.GamesPlayed {
		return fmt.Errorf("%w: wins cannot exceed games played", domain.ErrInvalidInput)
	}

	if player.Role == "" {
		player.Role = domain.DefaultRole
	}
	if player.SkinType == "" {
		player.SkinType = domain.SkinTypeAuto
	}

	if err := s.repo.CreatePlayer(ctx, player); err != nil {
		return err
	}
	s.boards.Purge()

	log.Info("Player created", "player_id", player.ID, "nickname", player.Nickname)
	return nil
}

func (s *service) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	return s.repo.GetPlayerByID(ctx, id)
}

func (s *service) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	return s.repo.GetPlayerByNickname(ctx, nickname)
}

// UpdatePlayer stores an admin edit of a player row. Counter caps still
// apply; the wins<=games relation is deliberately not re-checked here.
func (s *service) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if err := validateCounters(player); err != nil {
		return err
	}
	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return err
	}
	s.boards.Purge()
	return nil
}

// ModifyStats applies relative changes to a player's counters. Subtraction
// floors at zero; zero deltas are skipped.
func (s *service) ModifyStats(ctx context.Context, playerID int, operation string, deltas map[string]int) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if operation != OperationAdd && operation != OperationSubtract {
		return nil, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, operation)
	}

	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	changed := false
	for field, delta := range deltas {
		if delta == 0 {
			continue
		}
		if !domain.IsKnownStatField(field) {
			return nil, fmt.Errorf("%w: unknown stat field %q", domain.ErrInvalidInput, field)
		}

		current := player.StatValue(field)
		next := current + delta
		if operation == OperationSubtract {
			next = current - delta
		}
		if next < 0 {
			next = 0
		}
		player.SetStatValue(field, next)
		changed = true
	}

	if !changed {
		return player, nil
	}

	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	s.boards.Purge()

	log.Info("Player stats modified", "player_id", playerID, "operation", operation)
	return player, nil
}

func (s *service) DeletePlayer(ctx context.Context, id int) error {
	if err := s.repo.DeletePlayer(ctx, id); err != nil {
		return err
	}
	s.boards.Purge()
	return nil
}

func (s *service) ClearLeaderboard(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := s.repo.DeleteAllPlayers(ctx); err != nil {
		return err
	}
	s.boards.Purge()
	log.Warn("Leaderboard cleared")
	return nil
}

// GetLeaderboard returns the top players for a sort key. Counter keys sort in
// the store; level, K/D and win rate are derived so they sort in memory over
// all players, with results cached briefly.
func (s *service) GetLeaderboard(ctx context.Context, sortBy string, limit int) ([]domain.Player, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	switch sortBy {
	case SortLevel, SortKDRatio, SortWinRate:
		return s.derivedBoard(ctx, sortBy, limit)
	case string(domain.StatKills), string(domain.StatFinalKills),
		string(domain.StatBedsBroken), string(domain.StatWins):
		return s.repo.ListTop(ctx, domain.StatField(sortBy), limit)
	default:
		// Unknown keys fall back to the experience board
		return s.repo.ListTop(ctx, domain.StatExperience, limit)
	}
}

func (s *service) derivedBoard(ctx context.Context, sortBy string, limit int) ([]domain.Player, error) {
	if cached, ok := s.boards.Get(sortBy); ok {
		return clipBoard(cached, limit), nil
	}

	players, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var key func(*domain.Player) float64
	switch sortBy {
	case SortLevel:
		key = func(p *domain.Player) float64 { return float64(p.Level()) }
	case SortKDRatio:
		key = func(p *domain.Player) float64 { return p.KDRatio() }
	case SortWinRate:
		key = func(p *domain.Player) float64 { return p.WinRate() }
	}

	sort.SliceStable(players, func(i, j int) bool {
		return key(&players[i]) > key(&players[j])
	})

	s.boards.Add(sortBy, players)
	return clipBoard(players, limit), nil
}

func clipBoard(players []domain.Player, limit int) []domain.Player {
	if len(players) > limit {
		players = players[:limit]
	}
	// Copy so callers never alias the cached slice
	out := make([]domain.Player, len(players))
	copy(out, players)
	return out
}

func (s *service) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", domain.ErrInvalidInput)
	}
	return s.repo.SearchPlayers(ctx, query)
}

// Roster lists every player ordered by nickname with locale-aware collation,
// so Cyrillic and Latin nicknames interleave predictably.
func (s *service) Roster(ctx context.Context) ([]domain.Player, error) {
	players, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(players, func(i, j int) bool {
		return s.collator.CompareString(players[i].Nickname, players[j].Nickname) < 0
	})
	return players, nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]domain.Player, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) GetOverview(ctx context.Context) (*domain.Overview, error) {
	return s.repo.GetOverview(ctx)
}

// GetChartData builds the statistics chart payload: a level histogram over
// all players plus top-10 experience and kill series.
func (s *service) GetChartData(ctx context.Context) (*domain.ChartData, error) {
	top, err := s.repo.ListTop(ctx, domain.StatExperience, 10)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	data := &domain.ChartData{
		PlayerLevels: make(map[string]int),
	}
	for i := range all {
		label := fmt.Sprintf("Level %d", all[i].Level())
		data.PlayerLevels[label]++
	}
	for i := range top {
		data.TopPlayersExp.Labels = append(data.TopPlayersExp.Labels, top[i].Nickname)
		data.TopPlayersExp.Data = append(data.TopPlayersExp.Data, top[i].Experience)
		data.TopPlayersKill.Labels = append(data.TopPlayersKill.Labels, top[i].Nickname)
		data.TopPlayersKill.Data = append(data.TopPlayersKill.Data, top[i].Kills)
	}
	return data, nil
}

var nameMCProfilePattern = regexp.MustCompile(`namemc\.com/profile/([^/]+)`)

// UpdateSkin updates a player's skin settings. A custom skin is resolved from
// a NameMC profile URL to a Crafatar avatar; other types are stored as-is.
func (s *service) UpdateSkin(ctx context.Context, playerID int, skinType string, isPremium bool, nameMCURL string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	switch skinType {
	case domain.SkinTypeAuto, domain.SkinTypeSteve, domain.SkinTypeAlex:
		player.SkinType = skinType
		player.SkinURL = ""
	case domain.SkinTypeCustom:
		match := nameMCProfilePattern.FindStringSubmatch(nameMCURL)
		if match == nil {
			return nil, fmt.Errorf("%w: custom skins require a namemc.com profile URL", domain.ErrInvalidInput)
		}
		player.SkinType = domain.SkinTypeCustom
		player.SkinURL = fmt.Sprintf("https://crafatar.com/avatars/%s?size=128", match[1])
	default:
		return nil, fmt.Errorf("%w: unknown skin type %q", domain.ErrInvalidInput, skinType)
	}
	player.IsPremium = isPremium

	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// UpdateProfile applies a player's own profile changes. Custom banners are
// gated behind level 20; below that the banner fields are silently skipped,
// matching the original panel behavior.
func (s *service) UpdateProfile(ctx context.Context, nickname string, update ProfileUpdate) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return nil, err
	}

	player.RealName = strings.TrimSpace(update.RealName)
	player.Bio = strings.TrimSpace(update.Bio)
	player.DiscordTag = strings.TrimSpace(update.DiscordTag)
	player.YoutubeChannel = strings.TrimSpace(update.YoutubeChannel)
	player.TwitchChannel = strings.TrimSpace(update.TwitchChannel)
	player.FavoriteServer = strings.TrimSpace(update.FavoriteServer)
	player.FavoriteMap = strings.TrimSpace(update.FavoriteMap)
	player.PreferredGamemode = strings.TrimSpace(update.PreferredGamemode)
	player.ProfileBannerColor = defaultColor(update.ProfileBannerColor, "#3498db")
	player.ProfileIsPublic = update.ProfileIsPublic
	player.CustomStatus = strings.TrimSpace(update.CustomStatus)
	player.Location = strings.TrimSpace(update.Location)
	player.Birthday = update.Birthday
	player.CustomAvatarURL = strings.TrimSpace(update.CustomAvatarURL)

	if player.CanUseCustomBanner() {
		player.CustomBannerURL = strings.TrimSpace(update.CustomBannerURL)
		player.BannerIsAnimated = update.BannerIsAnimated
	} else if update.CustomBannerURL != "" {
		log.Debug("Custom banner ignored below required level",
			"nickname", nickname, "level", player.Level())
	}

	player.StatsSectionColor = defaultColor(update.StatsSectionColor, "#343a40")
	player.InfoSectionColor = defaultColor(update.InfoSectionColor, "#343a40")
	player.SocialSectionColor = defaultColor(update.SocialSectionColor, "#343a40")
	player.PrefsSectionColor = defaultColor(update.PrefsSectionColor, "#343a40")

	networks := make([]domain.SocialLink, 0, len(update.SocialNetworks))
	for _, link := range update.SocialNetworks {
		link.Value = strings.TrimSpace(link.Value)
		if link.Type == "" || link.Value == "" {
			continue
		}
		networks = append(networks, link)
	}
	player.SocialNetworks = networks

	if err := s.repo.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func defaultColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func validateCounters(p *domain.Player) error {
	counters := []struct {
		name  string
		value int
	}{
		{"kills", p.Kills},
		{"final_kills", p.FinalKills},
		{"deaths", p.Deaths},
		{"beds_broken", p.BedsBroken},
		{"games_played", p.GamesPlayed},
		{"wins", p.Wins},
		{"experience", p.Experience},
		{"iron_collected", p.IronCollected},
		{"gold_collected", p.GoldCollected},
		{"diamond_collected", p.DiamondCollected},
		{"emerald_collected", p.EmeraldCollected},
		{"items_purchased", p.ItemsPurchased},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, c.name)
		}
		if c.value > domain.MaxStatValue {
			return fmt.Errorf("%w: %s must not exceed %d", domain.ErrInvalidInput, c.name, domain.MaxStatValue)
		}
	}
	return nil
}
