package handler

import (
	"errors"
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/achievement"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/cosmetic"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
)

// demoPlayers seeds the panel with a recognizable spread: a veteran, a
// bed-rush specialist and a fresh account.
func demoPlayers() []domain.Player {
	return []domain.Player{
		{
			Nickname: "ProGamer2024", Role: "Опытный игрок",
			Kills: 150, FinalKills: 45, Deaths: 75, BedsBroken: 28,
			GamesPlayed: 85, Wins: 52, Experience: 8500,
			IronCollected: 5000, GoldCollected: 2500, DiamondCollected: 800,
			EmeraldCollected: 150, ItemsPurchased: 500,
		},
		{
			Nickname: "BedDestroyer", Role: "Разрушитель",
			Kills: 89, FinalKills: 22, Deaths: 45, BedsBroken: 65,
			GamesPlayed: 72, Wins: 38, Experience: 5200,
			IronCollected: 3200, GoldCollected: 1800, DiamondCollected: 450,
			EmeraldCollected: 85, ItemsPurchased: 320,
		},
		{
			Nickname: "NewbieFighter", Role: "Новичок",
			Kills: 25, FinalKills: 8, Deaths: 32, BedsBroken: 12,
			GamesPlayed: 35, Wins: 15, Experience: 1800,
			IronCollected: 1200, GoldCollected: 600, DiamondCollected: 120,
			EmeraldCollected: 25, ItemsPurchased: 150,
		},
	}
}

// HandleInitDemo seeds demo players and the default quest, achievement and
// cosmetic sets. Safe to call repeatedly; everything is created by-name.
// @Summary Initialize demo data
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/demo [post]
func HandleInitDemo(players player.Service, quests quest.Service, achievements achievement.Service, cosmetics cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		for _, demo := range demoPlayers() {
			p := demo
			if err := players.CreatePlayer(ctx, &p); err != nil {
				if errors.Is(err, domain.ErrDuplicateNickname) {
					continue
				}
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			log.Info("Demo player created", "nickname", p.Nickname)
		}

		if err := quests.EnsureDefaults(ctx); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if err := achievements.EnsureDefaults(ctx); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if err := cosmetics.EnsureDefaultTitles(ctx); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if err := cosmetics.EnsureDefaultThemes(ctx); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Demo data initialized")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDemoDataInitialized})
	}
}
