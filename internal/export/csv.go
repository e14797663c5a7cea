package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

// csvHeader keeps the column set and order of the original panel export,
// including the Russian column names its users rely on.
var csvHeader = []string{
	"Ник", "Уровень", "Опыт", "Киллы", "Финальные киллы", "Смерти",
	"K/D", "FK/D", "Кровати", "Игры", "Победы", "Процент побед",
	"Роль", "Сервер", "Железо", "Золото", "Алмазы", "Изумруды",
	"Покупки", "Дата создания", "Последнее обновление",
}

const timestampLayout = "2006-01-02 15:04:05"

// Service exports leaderboard data
type Service interface {
	WriteLeaderboardCSV(ctx context.Context, w io.Writer) error
}

type service struct {
	repo repository.Player
}

func NewService(repo repository.Player) Service {
	return &service{repo: repo}
}

// WriteLeaderboardCSV streams every player as CSV, ordered by experience
// descending, derived metrics included.
func (s *service) WriteLeaderboardCSV(ctx context.Context, w io.Writer) error {
	players, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load players for export: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range players {
		if err := cw.Write(playerRecord(&players[i])); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func playerRecord(p *domain.Player) []string {
	return []string{
		p.Nickname,
		strconv.Itoa(p.Level()),
		strconv.Itoa(p.Experience),
		strconv.Itoa(p.Kills),
		strconv.Itoa(p.FinalKills),
		strconv.Itoa(p.Deaths),
		formatRatio(p.KDRatio()),
		formatRatio(p.FKDRatio()),
		strconv.Itoa(p.BedsBroken),
		strconv.Itoa(p.GamesPlayed),
		strconv.Itoa(p.Wins),
		formatRatio(p.WinRate()),
		p.Role,
		p.ServerIP,
		strconv.Itoa(p.IronCollected),
		strconv.Itoa(p.GoldCollected),
		strconv.Itoa(p.DiamondCollected),
		strconv.Itoa(p.EmeraldCollected),
		strconv.Itoa(p.ItemsPurchased),
		p.CreatedAt.Format(timestampLayout),
		p.LastUpdated.Format(timestampLayout),
	}
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
