package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/export"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
)

const exportFilenameLayout = "20060102_150405"

// HandleExportLeaderboard streams the full leaderboard as a CSV download
// @Summary Export leaderboard CSV
// @Description Streams every player with derived metrics, ordered by experience
// @Tags admin
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/export [get]
func HandleExportLeaderboard(svc export.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		filename := fmt.Sprintf("bedwars_leaderboard_%s.csv", time.Now().Format(exportFilenameLayout))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

		if err := svc.WriteLeaderboardCSV(ctx, w); err != nil {
			// Headers are already sent; the truncated body is all we can signal
			log.Error("Leaderboard export failed", "error", err)
			return
		}

		metrics.LeaderboardExports.Inc()
		log.Info("Leaderboard exported", "filename", filename)
	}
}
