package quest

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// MockQuestRepository is an in-memory repository.Quest for testing
type MockQuestRepository struct {
	quests   map[int]*domain.Quest
	progress map[[2]int]*domain.PlayerQuest // (playerID, questID)
	nextID   int
}

func NewMockQuestRepository() *MockQuestRepository {
	return &MockQuestRepository{
		quests:   make(map[int]*domain.Quest),
		progress: make(map[[2]int]*domain.PlayerQuest),
		nextID:   1,
	}
}

func (m *MockQuestRepository) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	quest.ID = m.nextID
	m.nextID++
	quest.CreatedAt = time.Now().UTC()
	clone := *quest
	m.quests[quest.ID] = &clone
	return nil
}

func (m *MockQuestRepository) GetQuestByID(ctx context.Context, id int) (*domain.Quest, error) {
	q, ok := m.quests[id]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	clone := *q
	return &clone, nil
}

func (m *MockQuestRepository) ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error) {
	var out []domain.Quest
	for _, q := range m.quests {
		if activeOnly && !q.IsActive {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockQuestRepository) DeleteQuest(ctx context.Context, id int) error {
	if _, ok := m.quests[id]; !ok {
		return domain.ErrQuestNotFound
	}
	delete(m.quests, id)
	return nil
}

func (m *MockQuestRepository) GetPlayerQuest(ctx context.Context, playerID, questID int) (*domain.PlayerQuest, error) {
	pq, ok := m.progress[[2]int{playerID, questID}]
	if !ok {
		return nil, nil
	}
	clone := *pq
	return &clone, nil
}

func (m *MockQuestRepository) ListAcceptedIncomplete(ctx context.Context, playerID int) ([]domain.QuestProgressEntry, error) {
	var out []domain.QuestProgressEntry
	for key, pq := range m.progress {
		if key[0] != playerID || !pq.IsAccepted || pq.IsCompleted {
			continue
		}
		q, ok := m.quests[pq.QuestID]
		if !ok {
			continue
		}
		clone := *pq
		out = append(out, domain.QuestProgressEntry{Quest: *q, Progress: &clone})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quest.ID < out[j].Quest.ID })
	return out, nil
}

func (m *MockQuestRepository) ListPlayerProgress(ctx context.Context, playerID int) ([]domain.PlayerQuest, error) {
	var out []domain.PlayerQuest
	for key, pq := range m.progress {
		if key[0] == playerID {
			out = append(out, *pq)
		}
	}
	return out, nil
}

func (m *MockQuestRepository) UpsertPlayerQuest(ctx context.Context, pq *domain.PlayerQuest) error {
	clone := *pq
	m.progress[[2]int{pq.PlayerID, pq.QuestID}] = &clone
	return nil
}

func (m *MockQuestRepository) ResetQuestProgress(ctx context.Context, questID int) error {
	for key := range m.progress {
		if key[1] == questID {
			delete(m.progress, key)
		}
	}
	return nil
}

func (m *MockQuestRepository) GetQuestStats(ctx context.Context, questID int) (int, int, error) {
	attempts, completed := 0, 0
	for key, pq := range m.progress {
		if key[1] != questID {
			continue
		}
		attempts++
		if pq.IsCompleted {
			completed++
		}
	}
	return attempts, completed, nil
}

// MockPlayerRepository is the minimal in-memory repository.Player the quest
// service touches
type MockPlayerRepository struct {
	players  map[int]*domain.Player
	xpGrants []int
}

func NewMockPlayerRepository(players ...*domain.Player) *MockPlayerRepository {
	m := &MockPlayerRepository{players: make(map[int]*domain.Player)}
	for _, p := range players {
		m.players[p.ID] = p
	}
	return m
}

func (m *MockPlayerRepository) CreatePlayer(ctx context.Context, p *domain.Player) error {
	m.players[p.ID] = p
	return nil
}

func (m *MockPlayerRepository) GetPlayerByID(ctx context.Context, id int) (*domain.Player, error) {
	p, ok := m.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *MockPlayerRepository) GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error) {
	for _, p := range m.players {
		if p.Nickname == nickname {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

func (m *MockPlayerRepository) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	clone := *p
	m.players[p.ID] = &clone
	return nil
}

func (m *MockPlayerRepository) DeletePlayer(ctx context.Context, id int) error { return nil }
func (m *MockPlayerRepository) DeleteAllPlayers(ctx context.Context) error     { return nil }

func (m *MockPlayerRepository) ListTop(ctx context.Context, orderBy domain.StatField, limit int) ([]domain.Player, error) {
	return nil, nil
}

func (m *MockPlayerRepository) ListAll(ctx context.Context) ([]domain.Player, error) {
	return nil, nil
}

func (m *MockPlayerRepository) ListRecent(ctx context.Context, limit int) ([]domain.Player, error) {
	ids := make([]int, 0, len(m.players))
	for id := range m.players {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	var out []domain.Player
	for _, id := range ids {
		out = append(out, *m.players[id])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockPlayerRepository) SearchPlayers(ctx context.Context, query string) ([]domain.Player, error) {
	return nil, nil
}

func (m *MockPlayerRepository) AddExperience(ctx context.Context, playerID, delta int) error {
	p, ok := m.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.Experience += delta
	m.xpGrants = append(m.xpGrants, delta)
	return nil
}

func (m *MockPlayerRepository) GetOverview(ctx context.Context) (*domain.Overview, error) {
	return &domain.Overview{}, nil
}

// recordingAnnouncer captures announcements for assertions
type recordingAnnouncer struct {
	quests       []string
	achievements []string
}

func (r *recordingAnnouncer) AnnounceQuestCompleted(_ context.Context, _, title string, _ int) {
	r.quests = append(r.quests, title)
}

func (r *recordingAnnouncer) AnnounceAchievementEarned(_ context.Context, _, title string, _ int) {
	r.achievements = append(r.achievements, title)
}

func seedQuest(t *testing.T, repo *MockQuestRepository, q domain.Quest) *domain.Quest {
	t.Helper()
	q.IsActive = true
	require.NoError(t, repo.CreateQuest(context.Background(), &q))
	return &q
}

func TestCreateQuest(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		quest   domain.Quest
		wantErr error
	}{
		{
			name:  "valid quest defaults difficulty",
			quest: domain.Quest{Title: "First Blood", Type: "kills", TargetValue: 10, RewardXP: 100},
		},
		{
			name:    "empty title",
			quest:   domain.Quest{Type: "kills", TargetValue: 10},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown quest type",
			quest:   domain.Quest{Title: "Bad", Type: "mana", TargetValue: 10},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative target",
			quest:   domain.Quest{Title: "Bad", Type: "kills", TargetValue: -1},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(NewMockQuestRepository(), NewMockPlayerRepository(), nil)

			err := svc.CreateQuest(ctx, &tt.quest)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DifficultyEasy, tt.quest.Difficulty)
			assert.True(t, tt.quest.IsActive)
		})
	}
}

func TestAcceptQuest(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots counter as baseline", func(t *testing.T) {
		quests := NewMockQuestRepository()
		players := NewMockPlayerRepository(&domain.Player{ID: 1, Nickname: "Hunter", Kills: 42})
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 10})

		pq, err := svc.AcceptQuest(ctx, "Hunter", q.ID)

		require.NoError(t, err)
		assert.True(t, pq.IsAccepted)
		assert.Equal(t, 42, pq.BaselineValue, "Pre-existing kills must not count")
		assert.Zero(t, pq.CurrentProgress)
		require.NotNil(t, pq.AcceptedAt)
	})

	t.Run("accepting twice is a no-op", func(t *testing.T) {
		quests := NewMockQuestRepository()
		players := NewMockPlayerRepository(&domain.Player{ID: 1, Nickname: "Hunter", Kills: 10})
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 10})

		first, err := svc.AcceptQuest(ctx, "Hunter", q.ID)
		require.NoError(t, err)

		// More kills land between the two accepts
		players.players[1].Kills = 50

		second, err := svc.AcceptQuest(ctx, "Hunter", q.ID)
		require.NoError(t, err)
		assert.Equal(t, first.BaselineValue, second.BaselineValue, "Re-accept must keep the original baseline")
	})

	t.Run("unknown quest", func(t *testing.T) {
		quests := NewMockQuestRepository()
		players := NewMockPlayerRepository(&domain.Player{ID: 1, Nickname: "Hunter"})
		svc := NewService(quests, players, nil)

		_, err := svc.AcceptQuest(ctx, "Hunter", 999)

		require.ErrorIs(t, err, domain.ErrQuestNotFound)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc := NewService(NewMockQuestRepository(), NewMockPlayerRepository(), nil)

		_, err := svc.AcceptQuest(ctx, "Nobody", 1)

		require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestRecomputeProgress(t *testing.T) {
	ctx := context.Background()

	accept := func(t *testing.T, svc Service, nickname string, questID int) {
		t.Helper()
		_, err := svc.AcceptQuest(ctx, nickname, questID)
		require.NoError(t, err)
	}

	t.Run("progress is delta above baseline", func(t *testing.T) {
		quests := NewMockQuestRepository()
		player := &domain.Player{ID: 1, Nickname: "Hunter", Kills: 100}
		players := NewMockPlayerRepository(player)
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 50, RewardXP: 500})
		accept(t, svc, "Hunter", q.ID)

		player.Kills = 120

		completed, err := svc.RecomputeProgress(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, completed)
		pq, err := quests.GetPlayerQuest(ctx, 1, q.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, pq.CurrentProgress)
		assert.False(t, pq.IsCompleted)
	})

	t.Run("counter below baseline reads as zero", func(t *testing.T) {
		quests := NewMockQuestRepository()
		player := &domain.Player{ID: 1, Nickname: "Hunter", Kills: 100}
		players := NewMockPlayerRepository(player)
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 50})
		accept(t, svc, "Hunter", q.ID)

		// Admin subtracted kills after the accept
		player.Kills = 40

		_, err := svc.RecomputeProgress(ctx, 1)

		require.NoError(t, err)
		pq, err := quests.GetPlayerQuest(ctx, 1, q.ID)
		require.NoError(t, err)
		assert.Zero(t, pq.CurrentProgress)
	})

	t.Run("reaching target exactly completes", func(t *testing.T) {
		quests := NewMockQuestRepository()
		player := &domain.Player{ID: 1, Nickname: "Hunter", Kills: 0}
		players := NewMockPlayerRepository(player)
		announce := &recordingAnnouncer{}
		svc := NewService(quests, players, announce)
		q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 10, RewardXP: 250})
		accept(t, svc, "Hunter", q.ID)

		player.Kills = 10

		completed, err := svc.RecomputeProgress(ctx, 1)

		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, "Killer", completed[0].Title)
		pq, err := quests.GetPlayerQuest(ctx, 1, q.ID)
		require.NoError(t, err)
		assert.True(t, pq.IsCompleted)
		require.NotNil(t, pq.CompletedAt)
		assert.Equal(t, []string{"Killer"}, announce.quests)
	})

	t.Run("zero target completes without new progress", func(t *testing.T) {
		quests := NewMockQuestRepository()
		player := &domain.Player{ID: 1, Nickname: "Hunter", Kills: 30}
		players := NewMockPlayerRepository(player)
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Freebie", Type: "kills", TargetValue: 0, RewardXP: 50})
		accept(t, svc, "Hunter", q.ID)

		// Counters never move, yet progress 0 already meets a zero target
		completed, err := svc.RecomputeProgress(ctx, 1)

		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, "Freebie", completed[0].Title)
		pq, err := quests.GetPlayerQuest(ctx, 1, q.ID)
		require.NoError(t, err)
		assert.True(t, pq.IsCompleted)
		require.Len(t, players.xpGrants, 1)
		assert.Equal(t, 50, players.xpGrants[0])
	})

	t.Run("multiple completions grant XP once", func(t *testing.T) {
		quests := NewMockQuestRepository()
		player := &domain.Player{ID: 1, Nickname: "Hunter"}
		players := NewMockPlayerRepository(player)
		svc := NewService(quests, players, nil)
		q1 := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 5, RewardXP: 100})
		q2 := seedQuest(t, quests, domain.Quest{Title: "Breaker", Type: "beds_broken", TargetValue: 2, RewardXP: 300})
		accept(t, svc, "Hunter", q1.ID)
		accept(t, svc, "Hunter", q2.ID)

		player.Kills = 5
		player.BedsBroken = 2

		completed, err := svc.RecomputeProgress(ctx, 1)

		require.NoError(t, err)
		assert.Len(t, completed, 2)
		require.Len(t, players.xpGrants, 1, "Reward XP is granted in one increment")
		assert.Equal(t, 400, players.xpGrants[0])
	})

	t.Run("completed quests are not recomputed again", func(t *testing.T) {
		quests := NewMockQuestRepository()
		player := &domain.Player{ID: 1, Nickname: "Hunter"}
		players := NewMockPlayerRepository(player)
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 5, RewardXP: 100})
		accept(t, svc, "Hunter", q.ID)

		player.Kills = 5
		_, err := svc.RecomputeProgress(ctx, 1)
		require.NoError(t, err)

		player.Kills = 500
		completed, err := svc.RecomputeProgress(ctx, 1)
		require.NoError(t, err)

		assert.Empty(t, completed)
		assert.Len(t, players.xpGrants, 1, "XP must not be granted twice")
	})
}

func TestGetBoard(t *testing.T) {
	ctx := context.Background()
	quests := NewMockQuestRepository()
	players := NewMockPlayerRepository(&domain.Player{ID: 1, Nickname: "Hunter", Kills: 3})
	svc := NewService(quests, players, nil)
	q1 := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 10})
	seedQuest(t, quests, domain.Quest{Title: "Winner", Type: "wins", TargetValue: 5})
	_, err := svc.AcceptQuest(ctx, "Hunter", q1.ID)
	require.NoError(t, err)

	t.Run("anonymous board has no progress", func(t *testing.T) {
		entries, err := svc.GetBoard(ctx, "")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Nil(t, e.Progress)
		}
	})

	t.Run("player board pairs accepted quests with progress", func(t *testing.T) {
		entries, err := svc.GetBoard(ctx, "Hunter")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.NotNil(t, entries[0].Progress, "Accepted quest carries progress")
		assert.Nil(t, entries[1].Progress, "Unaccepted quest has none")
	})
}

func TestEnsurePeriodic(t *testing.T) {
	ctx := context.Background()

	t.Run("second run creates nothing", func(t *testing.T) {
		quests := NewMockQuestRepository()
		svc := NewService(quests, NewMockPlayerRepository(), nil)

		first, err := svc.EnsurePeriodic(ctx, PeriodDaily)
		require.NoError(t, err)
		require.NotEmpty(t, first)

		second, err := svc.EnsurePeriodic(ctx, PeriodDaily)
		require.NoError(t, err)
		assert.Empty(t, second, "Re-running the same period must not duplicate quests")
	})

	t.Run("unknown period", func(t *testing.T) {
		svc := NewService(NewMockQuestRepository(), NewMockPlayerRepository(), nil)

		_, err := svc.EnsurePeriodic(ctx, "hourly")

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGeneratePeriodic(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the period set active", func(t *testing.T) {
		quests := NewMockQuestRepository()
		svc := NewService(quests, NewMockPlayerRepository(), nil)

		created, err := svc.GeneratePeriodic(ctx, PeriodWeekly)

		require.NoError(t, err)
		require.NotEmpty(t, created)
		for _, q := range created {
			assert.True(t, q.IsActive)
		}
	})

	t.Run("unknown period", func(t *testing.T) {
		svc := NewService(NewMockQuestRepository(), NewMockPlayerRepository(), nil)

		_, err := svc.GeneratePeriodic(ctx, "yearly")

		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEnsureDefaultsIdempotent(t *testing.T) {
	ctx := context.Background()
	quests := NewMockQuestRepository()
	svc := NewService(quests, NewMockPlayerRepository(), nil)

	require.NoError(t, svc.EnsureDefaults(ctx))
	all, err := quests.ListQuests(ctx, false)
	require.NoError(t, err)
	count := len(all)
	require.NotZero(t, count)

	require.NoError(t, svc.EnsureDefaults(ctx))
	all, err = quests.ListQuests(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, count)
}

func TestAdminCompleteQuest(t *testing.T) {
	ctx := context.Background()

	t.Run("grants XP and reward title to most recent player", func(t *testing.T) {
		quests := NewMockQuestRepository()
		players := NewMockPlayerRepository(
			&domain.Player{ID: 1, Nickname: "Older", Role: "Player"},
			&domain.Player{ID: 2, Nickname: "Newest", Role: "Player"},
		)
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{
			Title: "Legend", Type: "wins", TargetValue: 100,
			RewardXP: 1000, RewardTitle: "Чемпион",
		})

		quest, err := svc.AdminCompleteQuest(ctx, q.ID)

		require.NoError(t, err)
		assert.Equal(t, q.ID, quest.ID)
		newest := players.players[2]
		assert.Equal(t, 1000, newest.Experience)
		assert.Equal(t, "Чемпион", newest.Role, "Force completion assigns the reward title as role")
		assert.Equal(t, "Player", players.players[1].Role, "Other players untouched")
	})

	t.Run("already completed is a no-op", func(t *testing.T) {
		quests := NewMockQuestRepository()
		players := NewMockPlayerRepository(&domain.Player{ID: 1, Nickname: "Solo"})
		svc := NewService(quests, players, nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Legend", Type: "wins", TargetValue: 10, RewardXP: 100})

		_, err := svc.AdminCompleteQuest(ctx, q.ID)
		require.NoError(t, err)
		_, err = svc.AdminCompleteQuest(ctx, q.ID)
		require.NoError(t, err)

		assert.Equal(t, 100, players.players[1].Experience, "XP must not be granted twice")
	})

	t.Run("no players", func(t *testing.T) {
		quests := NewMockQuestRepository()
		svc := NewService(quests, NewMockPlayerRepository(), nil)
		q := seedQuest(t, quests, domain.Quest{Title: "Legend", Type: "wins", TargetValue: 10})

		_, err := svc.AdminCompleteQuest(ctx, q.ID)

		require.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestQuestStatsList(t *testing.T) {
	ctx := context.Background()
	quests := NewMockQuestRepository()
	players := NewMockPlayerRepository(
		&domain.Player{ID: 1, Nickname: "One"},
		&domain.Player{ID: 2, Nickname: "Two"},
	)
	svc := NewService(quests, players, nil)
	q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 5, RewardXP: 100})

	_, err := svc.AcceptQuest(ctx, "One", q.ID)
	require.NoError(t, err)
	_, err = svc.AcceptQuest(ctx, "Two", q.ID)
	require.NoError(t, err)

	players.players[1].Kills = 5
	_, err = svc.RecomputeProgress(ctx, 1)
	require.NoError(t, err)

	stats, err := svc.QuestStatsList(ctx)

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].TotalAttempts)
	assert.Equal(t, 1, stats[0].Completed)
	assert.InDelta(t, 50.0, stats[0].CompletionRate, 0.01)
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	quests := NewMockQuestRepository()
	players := NewMockPlayerRepository(&domain.Player{ID: 1, Nickname: "Hunter"})
	svc := NewService(quests, players, nil)
	q := seedQuest(t, quests, domain.Quest{Title: "Killer", Type: "kills", TargetValue: 5})
	_, err := svc.AcceptQuest(ctx, "Hunter", q.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ResetProgress(ctx, q.ID))

	pq, err := quests.GetPlayerQuest(ctx, 1, q.ID)
	require.NoError(t, err)
	assert.Nil(t, pq, "Progress rows are gone after reset")

	require.ErrorIs(t, svc.ResetProgress(ctx, 999), domain.ErrQuestNotFound)
}
