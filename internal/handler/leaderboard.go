package handler

import (
	"net/http"
	"strconv"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
)

// LeaderboardResponse is the public leaderboard payload
type LeaderboardResponse struct {
	SortBy  string                `json:"sort_by"`
	Players []PlayerStatsResponse `json:"players"`
}

// HandleLeaderboard returns the ranked player list
// @Summary Leaderboard
// @Description Top players by the requested sort key; limit defaults to 50, capped at 200
// @Tags leaderboard
// @Produce json
// @Param sort_by query string false "Sort key" default(experience)
// @Param limit query int false "Result limit" default(50)
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func HandleLeaderboard(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy := GetOptionalQueryParam(r, "sort_by", "experience")

		limit := player.DefaultLeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
				return
			}
			limit = parsed
		}

		players, err := svc.GetLeaderboard(r.Context(), sortBy, limit)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, LeaderboardResponse{
			SortBy:  sortBy,
			Players: toPlayerResponses(players),
		})
	}
}

// HandleSearchPlayers searches players by nickname substring
// @Summary Search players
// @Tags leaderboard
// @Produce json
// @Param q query string true "Nickname fragment"
// @Success 200 {array} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/search [get]
func HandleSearchPlayers(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		players, err := svc.SearchPlayers(r.Context(), query)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		metrics.SearchesPerformed.Inc()
		respondJSON(w, http.StatusOK, toPlayerResponses(players))
	}
}

// HandleRoster lists every player sorted by nickname
// @Summary Player roster
// @Description All players in locale-aware nickname order
// @Tags leaderboard
// @Produce json
// @Success 200 {array} PlayerStatsResponse
// @Router /api/v1/players [get]
func HandleRoster(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.Roster(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, toPlayerResponses(players))
	}
}
