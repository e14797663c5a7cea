package handler

import (
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
)

// StatsResponse combines the overview counters with the chart payload
type StatsResponse struct {
	Stats  *domain.Overview  `json:"stats"`
	Charts *domain.ChartData `json:"charts"`
}

// StatisticsPageResponse backs the full statistics page: the overview plus
// a short top list per stat category.
type StatisticsPageResponse struct {
	Overview *domain.Overview                 `json:"overview"`
	TopLists map[string][]PlayerStatsResponse `json:"top_lists"`
}

// statisticsPageCategories are the per-category top lists the page shows
var statisticsPageCategories = []string{
	string(domain.StatExperience),
	string(domain.StatKills),
	string(domain.StatFinalKills),
	string(domain.StatBedsBroken),
	string(domain.StatWins),
}

const statisticsPageTopSize = 5

// HandleStats returns overview counters and chart data
// @Summary Leaderboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/v1/stats [get]
func HandleStats(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		overview, err := svc.GetOverview(ctx)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		charts, err := svc.GetChartData(ctx)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, StatsResponse{Stats: overview, Charts: charts})
	}
}

// HandleStatisticsPage returns the overview plus top-5 lists per category
// @Summary Statistics page data
// @Tags stats
// @Produce json
// @Success 200 {object} StatisticsPageResponse
// @Router /api/v1/stats/page [get]
func HandleStatisticsPage(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		overview, err := svc.GetOverview(ctx)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		topLists := make(map[string][]PlayerStatsResponse, len(statisticsPageCategories))
		for _, category := range statisticsPageCategories {
			top, err := svc.GetLeaderboard(ctx, category, statisticsPageTopSize)
			if err != nil {
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			topLists[category] = toPlayerResponses(top)
		}

		respondJSON(w, http.StatusOK, StatisticsPageResponse{
			Overview: overview,
			TopLists: topLists,
		})
	}
}
