package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/server"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server         *server.Server
	RotationWorker *worker.QuestRotationWorker
	DBPool         *pgxpool.Pool
}

// GracefulShutdown stops the HTTP server first so in-flight requests can
// drain, then the rotation worker, then closes the database pool. Errors
// during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.RotationWorker != nil {
		if err := components.RotationWorker.Shutdown(ctx); err != nil {
			slog.Error("Quest rotation worker shutdown failed", "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabasePool)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
