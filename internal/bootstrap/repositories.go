package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/database/postgres"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Player      repository.Player
	Quest       repository.Quest
	Achievement repository.Achievement
	Cosmetic    repository.Cosmetic
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:      postgres.NewPlayerRepository(dbPool),
		Quest:       postgres.NewQuestRepository(dbPool),
		Achievement: postgres.NewAchievementRepository(dbPool),
		Cosmetic:    postgres.NewCosmeticRepository(dbPool),
	}
}
