package player

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// MockRepository is an in-memory repository.Player for testing
type MockRepository struct {
	players      map[int]*domain.Player
	nextID       int
	listAllCalls int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{players: make(map[int]*domain.Player), nextID: 1}
}

func (m *MockRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	for _, p := range m.players {
		if p.Nickname == player.Nickname {
			return domain.ErrDuplicateNickname
		}
	}
	player.ID = m.nextID
	m.nextID++
	player.CreatedAt = time.Now().UTC()
	player.LastUpdated = player.CreatedAt
	clone := *player
	m.players[player.ID] = &clone
	return nil
}

func (m *MockRepository) GetPlayerByID(ctx context.Context, id int) (*domain.Player, error) {
	p, ok := m.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *MockRepository) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	for _, p := range m.players {
		if p.Nickname == nickname {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

func (m *MockRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if _, ok := m.players[player.ID]; !ok {
		return domain.ErrPlayerNotFound
	}
	clone := *player
	clone.LastUpdated = time.Now().UTC()
	m.players[player.ID] = &clone
	return nil
}

func (m *MockRepository) DeletePlayer(ctx context.Context, id int) error {
	if _, ok := m.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(m.players, id)
	return nil
}

func (m *MockRepository) DeleteAllPlayers(ctx context.Context) error {
	m.players = make(map[int]*domain.Player)
	return nil
}

func (m *MockRepository) ListTop(ctx context.Context, orderBy domain.StatField, limit int) ([]domain.Player, error) {
	all, _ := m.ListAll(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StatValue(string(orderBy)) > all[j].StatValue(string(orderBy))
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockRepository) ListAll(ctx context.Context) ([]domain.Player, error) {
	m.listAllCalls++
	out := make([]domain.Player, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]domain.Player, error) {
	all, _ := m.ListAll(ctx)
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockRepository) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	all, _ := m.ListAll(ctx)
	var out []domain.Player
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Nickname), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockRepository) AddExperience(ctx context.Context, playerID, delta int) error {
	p, ok := m.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.Experience += delta
	return nil
}

func (m *MockRepository) GetOverview(ctx context.Context) (*domain.Overview, error) {
	return &domain.Overview{TotalPlayers: len(m.players)}, nil
}

func seedPlayer(t *testing.T, repo *MockRepository, p domain.Player) *domain.Player {
	t.Helper()
	require.NoError(t, repo.CreatePlayer(context.Background(), &p))
	return &p
}

func TestCreatePlayer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		player  domain.Player
		wantErr error
	}{
		{
			name:   "valid player",
			player: domain.Player{Nickname: "TestPlayer", Kills: 10, GamesPlayed: 5, Wins: 3},
		},
		{
			name:    "empty nickname",
			player:  domain.Player{Nickname: "   "},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "nickname too long",
			player:  domain.Player{Nickname: strings.Repeat("x", 21)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative counter",
			player:  domain.Player{Nickname: "Negative", Kills: -1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "counter above cap",
			player:  domain.Player{Nickname: "Capped", Experience: domain.MaxStatValue + 1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "wins exceed games",
			player:  domain.Player{Nickname: "Cheater", GamesPlayed: 3, Wins: 5},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(NewMockRepository())

			err := svc.CreatePlayer(ctx, &tt.player)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultRole, tt.player.Role, "Should default role")
			assert.Equal(t, domain.SkinTypeAuto, tt.player.SkinType, "Should default skin type")
			assert.NotZero(t, tt.player.ID)
		})
	}

	t.Run("cyrillic nicknames count runes not bytes", func(t *testing.T) {
		svc := NewService(NewMockRepository())

		// 20 Cyrillic runes are 40 bytes but still within the limit
		err := svc.CreatePlayer(ctx, &domain.Player{Nickname: strings.Repeat("ж", 20)})

		require.NoError(t, err)
	})

	t.Run("duplicate nickname", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		seedPlayer(t, repo, domain.Player{Nickname: "Taken"})

		err := svc.CreatePlayer(ctx, &domain.Player{Nickname: "Taken"})

		require.ErrorIs(t, err, domain.ErrDuplicateNickname)
	})
}

func TestUpdatePlayerSkipsWinsCheck(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	svc := NewService(repo)
	p := seedPlayer(t, repo, domain.Player{Nickname: "Edited", GamesPlayed: 10, Wins: 5})

	// wins > games is only rejected on create; admin edits may break it
	p.Wins = 20
	err := svc.UpdatePlayer(ctx, p)

	require.NoError(t, err)
	stored, err := repo.GetPlayerByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Wins)
}

func TestModifyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("add increments counters", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Adder", Kills: 10})

		updated, err := svc.ModifyStats(ctx, p.ID, OperationAdd, map[string]int{"kills": 5, "wins": 2})

		require.NoError(t, err)
		assert.Equal(t, 15, updated.Kills)
		assert.Equal(t, 2, updated.Wins)
	})

	t.Run("subtract floors at zero", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Subber", Deaths: 3})

		updated, err := svc.ModifyStats(ctx, p.ID, OperationSubtract, map[string]int{"deaths": 10})

		require.NoError(t, err)
		assert.Equal(t, 0, updated.Deaths, "Subtraction must not go negative")
	})

	t.Run("unknown operation", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Opless"})

		_, err := svc.ModifyStats(ctx, p.ID, "multiply", map[string]int{"kills": 2})

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown stat field", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Fieldless"})

		_, err := svc.ModifyStats(ctx, p.ID, OperationAdd, map[string]int{"mana": 5})

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing player", func(t *testing.T) {
		svc := NewService(NewMockRepository())

		_, err := svc.ModifyStats(ctx, 42, OperationAdd, map[string]int{"kills": 1})

		require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()

	newBoardRepo := func(t *testing.T) *MockRepository {
		repo := NewMockRepository()
		seedPlayer(t, repo, domain.Player{Nickname: "Grinder", Kills: 100, Deaths: 50, GamesPlayed: 100, Wins: 30, Experience: 9000})
		seedPlayer(t, repo, domain.Player{Nickname: "Sniper", Kills: 90, Deaths: 10, GamesPlayed: 50, Wins: 40, Experience: 4000})
		seedPlayer(t, repo, domain.Player{Nickname: "Casual", Kills: 5, Deaths: 20, GamesPlayed: 10, Wins: 1, Experience: 600})
		return repo
	}

	t.Run("unknown sort falls back to experience", func(t *testing.T) {
		svc := NewService(newBoardRepo(t))

		players, err := svc.GetLeaderboard(ctx, "bogus", 10)

		require.NoError(t, err)
		require.Len(t, players, 3)
		assert.Equal(t, "Grinder", players[0].Nickname)
	})

	t.Run("kd_ratio sorts in memory", func(t *testing.T) {
		svc := NewService(newBoardRepo(t))

		players, err := svc.GetLeaderboard(ctx, SortKDRatio, 10)

		require.NoError(t, err)
		require.Len(t, players, 3)
		// Sniper: 9.0, Grinder: 2.0, Casual: 0.25
		assert.Equal(t, "Sniper", players[0].Nickname)
		assert.Equal(t, "Grinder", players[1].Nickname)
	})

	t.Run("win_rate sorts in memory", func(t *testing.T) {
		svc := NewService(newBoardRepo(t))

		players, err := svc.GetLeaderboard(ctx, SortWinRate, 10)

		require.NoError(t, err)
		// Sniper: 80%, Grinder: 30%, Casual: 10%
		assert.Equal(t, "Sniper", players[0].Nickname)
	})

	t.Run("derived board is cached", func(t *testing.T) {
		repo := newBoardRepo(t)
		svc := NewService(repo)

		_, err := svc.GetLeaderboard(ctx, SortLevel, 10)
		require.NoError(t, err)
		before := repo.listAllCalls

		_, err = svc.GetLeaderboard(ctx, SortLevel, 10)
		require.NoError(t, err)

		assert.Equal(t, before, repo.listAllCalls, "Second call must hit the cache")
	})

	t.Run("limit defaults and caps", func(t *testing.T) {
		repo := NewMockRepository()
		for i := 0; i < 250; i++ {
			seedPlayer(t, repo, domain.Player{Nickname: fmt.Sprintf("p%d", i), Experience: i})
		}
		svc := NewService(repo)

		players, err := svc.GetLeaderboard(ctx, "experience", 0)
		require.NoError(t, err)
		assert.Len(t, players, DefaultLeaderboardLimit)

		players, err = svc.GetLeaderboard(ctx, "experience", 1000)
		require.NoError(t, err)
		assert.Len(t, players, MaxLeaderboardLimit)
	})
}

func TestSearchPlayers(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	svc := NewService(repo)
	seedPlayer(t, repo, domain.Player{Nickname: "ProGamer2024"})

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := svc.SearchPlayers(ctx, "   ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("finds by substring", func(t *testing.T) {
		players, err := svc.SearchPlayers(ctx, "gamer")
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "ProGamer2024", players[0].Nickname)
	})
}

func TestRosterOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	svc := NewService(repo)
	seedPlayer(t, repo, domain.Player{Nickname: "charlie"})
	seedPlayer(t, repo, domain.Player{Nickname: "alpha"})
	seedPlayer(t, repo, domain.Player{Nickname: "Bravo"})

	players, err := svc.Roster(ctx)

	require.NoError(t, err)
	require.Len(t, players, 3)
	// Case-insensitive collation: alpha, Bravo, charlie
	assert.Equal(t, "alpha", players[0].Nickname)
	assert.Equal(t, "Bravo", players[1].Nickname)
	assert.Equal(t, "charlie", players[2].Nickname)
}

func TestUpdateSkin(t *testing.T) {
	ctx := context.Background()

	t.Run("custom skin resolves NameMC profile to Crafatar", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Skinner"})

		updated, err := svc.UpdateSkin(ctx, p.ID, domain.SkinTypeCustom, true,
			"https://namemc.com/profile/abc123def")

		require.NoError(t, err)
		assert.Equal(t, domain.SkinTypeCustom, updated.SkinType)
		assert.Equal(t, "https://crafatar.com/avatars/abc123def?size=128", updated.SkinURL)
		assert.True(t, updated.IsPremium)
	})

	t.Run("custom skin requires NameMC URL", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Skinner"})

		_, err := svc.UpdateSkin(ctx, p.ID, domain.SkinTypeCustom, false, "https://example.com/whatever")

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("switching to steve clears skin URL", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Skinner", SkinType: domain.SkinTypeCustom, SkinURL: "https://crafatar.com/avatars/x"})

		updated, err := svc.UpdateSkin(ctx, p.ID, domain.SkinTypeSteve, false, "")

		require.NoError(t, err)
		assert.Equal(t, domain.SkinTypeSteve, updated.SkinType)
		assert.Empty(t, updated.SkinURL)
	})

	t.Run("unknown skin type", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		p := seedPlayer(t, repo, domain.Player{Nickname: "Skinner"})

		_, err := svc.UpdateSkin(ctx, p.ID, "zombie", false, "")

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies profile fields with default colors", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		seedPlayer(t, repo, domain.Player{Nickname: "Profiled"})

		updated, err := svc.UpdateProfile(ctx, "Profiled", ProfileUpdate{
			Bio:             "  hello  ",
			ProfileIsPublic: true,
			SocialNetworks: []domain.SocialLink{
				{Type: "telegram", Value: " @me "},
				{Type: "", Value: "dropped"},
				{Type: "vk", Value: "   "},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "hello", updated.Bio)
		assert.Equal(t, "#3498db", updated.ProfileBannerColor, "Should fall back to default banner color")
		assert.Equal(t, "#343a40", updated.StatsSectionColor)
		require.Len(t, updated.SocialNetworks, 1, "Incomplete links are dropped")
		assert.Equal(t, "@me", updated.SocialNetworks[0].Value)
	})

	t.Run("custom banner ignored below level 20", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		seedPlayer(t, repo, domain.Player{Nickname: "LowLevel", Experience: 100})

		updated, err := svc.UpdateProfile(ctx, "LowLevel", ProfileUpdate{
			CustomBannerURL:  "https://example.com/banner.gif",
			BannerIsAnimated: true,
		})

		require.NoError(t, err)
		assert.Empty(t, updated.CustomBannerURL)
		assert.False(t, updated.BannerIsAnimated)
	})

	t.Run("custom banner applied at level 20", func(t *testing.T) {
		repo := NewMockRepository()
		svc := NewService(repo)
		// 165000 XP -> level 20
		seedPlayer(t, repo, domain.Player{Nickname: "HighLevel", Experience: 165000})

		updated, err := svc.UpdateProfile(ctx, "HighLevel", ProfileUpdate{
			CustomBannerURL: "https://example.com/banner.png",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/banner.png", updated.CustomBannerURL)
	})
}

func TestGetChartData(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	svc := NewService(repo)
	seedPlayer(t, repo, domain.Player{Nickname: "First", Experience: 9000, Kills: 50})
	seedPlayer(t, repo, domain.Player{Nickname: "Second", Experience: 600, Kills: 10})

	data, err := svc.GetChartData(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, data.PlayerLevels["Level 5"], "9000 XP is level 5")
	assert.Equal(t, 1, data.PlayerLevels["Level 2"], "600 XP is level 2")
	require.Len(t, data.TopPlayersExp.Labels, 2)
	assert.Equal(t, "First", data.TopPlayersExp.Labels[0])
	assert.Equal(t, 50, data.TopPlayersKill.Data[0])
}

func TestClearLeaderboard(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository()
	svc := NewService(repo)
	seedPlayer(t, repo, domain.Player{Nickname: "Gone"})

	require.NoError(t, svc.ClearLeaderboard(ctx))

	overview, err := repo.GetOverview(ctx)
	require.NoError(t, err)
	assert.Zero(t, overview.TotalPlayers)
}
