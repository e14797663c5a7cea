package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/achievement"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/cosmetic"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/database"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/export"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/handler"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
)

// Services bundles everything the HTTP layer depends on
type Services struct {
	Auth         auth.Service
	Players      player.Service
	Quests       quest.Service
	Achievements achievement.Service
	Cosmetics    cosmetic.Service
	Export       export.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer wires the router: public leaderboard reads, player self-service
// behind a player session and the admin panel behind an admin session.
func NewServer(port int, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(auth.Middleware(svcs.Auth))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Session management
		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", handler.HandleAdminLogin(svcs.Auth))
			r.Post("/player/login", handler.HandlePlayerLogin(svcs.Auth))
			r.Post("/logout", handler.HandleLogout())
			r.Get("/session", handler.HandleSession())
		})

		// Public leaderboard reads
		r.Get("/leaderboard", handler.HandleLeaderboard(svcs.Players))
		r.Get("/players", handler.HandleRoster(svcs.Players))
		r.Get("/players/search", handler.HandleSearchPlayers(svcs.Players))
		r.Get("/players/{id}", handler.HandleGetPlayer(svcs.Players))
		r.Get("/profiles/{nickname}", handler.HandlePublicProfile(svcs.Players, svcs.Cosmetics))
		r.Get("/stats", handler.HandleStats(svcs.Players))
		r.Get("/stats/page", handler.HandleStatisticsPage(svcs.Players))
		r.Get("/quests", handler.HandleQuestBoard(svcs.Quests, svcs.Players))
		r.Get("/achievements", handler.HandleListAchievements(svcs.Achievements))
		r.Get("/titles", handler.HandleListTitles(svcs.Cosmetics))
		r.Get("/gradients/themes", handler.HandleListThemes(svcs.Cosmetics))

		// Player self-service routes
		r.Group(func(r chi.Router) {
			r.Use(auth.RequirePlayer)

			r.Get("/me", handler.HandleMyProfile(svcs.Players, svcs.Cosmetics))
			r.Put("/me/profile", handler.HandleUpdateProfile(svcs.Players))
			r.Put("/me/role", handler.HandleUpdateRole(svcs.Players))
			r.Get("/me/achievements", handler.HandleMyAchievements(svcs.Achievements, svcs.Players))
			r.Get("/me/titles", handler.HandleMyTitles(svcs.Cosmetics, svcs.Players))
			r.Post("/me/titles/{id}/activate", handler.HandleActivateTitle(svcs.Cosmetics))
			r.Post("/me/gradients", handler.HandleApplyGradient(svcs.Cosmetics))

			r.Post("/quests/{id}/accept", handler.HandleAcceptQuest(svcs.Quests))
			r.Post("/quests/refresh", handler.HandleRefreshQuests(svcs.Quests, svcs.Players))
		})

		// Admin panel routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Post("/players", handler.HandleCreatePlayer(svcs.Players))
			r.Get("/players/recent", handler.HandleRecentPlayers(svcs.Players))
			r.Put("/players/{id}/stats", handler.HandleUpdateStats(svcs.Players, svcs.Quests, svcs.Achievements))
			r.Post("/players/{id}/stats/modify", handler.HandleModifyStats(svcs.Players, svcs.Quests, svcs.Achievements))
			r.Put("/players/{id}/skin", handler.HandleUpdateSkin(svcs.Players))
			r.Delete("/players/{id}", handler.HandleDeletePlayer(svcs.Players))
			r.Delete("/players/{id}/title", handler.HandleRemoveTitle(svcs.Cosmetics))
			r.Delete("/players/{id}/gradient", handler.HandleRemoveGradient(svcs.Cosmetics))
			r.Delete("/leaderboard", handler.HandleClearLeaderboard(svcs.Players))
			r.Get("/export", handler.HandleExportLeaderboard(svcs.Export))
			r.Post("/demo", handler.HandleInitDemo(svcs.Players, svcs.Quests, svcs.Achievements, svcs.Cosmetics))

			r.Route("/quests", func(r chi.Router) {
				r.Post("/", handler.HandleCreateQuest(svcs.Quests))
				r.Get("/stats", handler.HandleQuestStats(svcs.Quests))
				r.Post("/generate", handler.HandleGenerateQuests(svcs.Quests))
				r.Delete("/{id}", handler.HandleDeleteQuest(svcs.Quests))
				r.Post("/{id}/reset", handler.HandleResetQuest(svcs.Quests))
				r.Post("/{id}/complete", handler.HandleCompleteQuest(svcs.Quests))
			})

			r.Route("/achievements", func(r chi.Router) {
				r.Post("/", handler.HandleCreateAchievement(svcs.Achievements))
				r.Post("/seasonal", handler.HandleGenerateSeasonal(svcs.Achievements))
				r.Delete("/{id}", handler.HandleDeleteAchievement(svcs.Achievements))
			})

			r.Route("/titles", func(r chi.Router) {
				r.Post("/", handler.HandleCreateTitle(svcs.Cosmetics))
				r.Post("/assign", handler.HandleAssignTitle(svcs.Cosmetics))
				r.Delete("/", handler.HandleRemoveAllTitles(svcs.Cosmetics))
			})

			r.Route("/gradients", func(r chi.Router) {
				r.Post("/themes", handler.HandleCreateTheme(svcs.Cosmetics))
				r.Post("/assign", handler.HandleAssignGradient(svcs.Cosmetics))
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Session cookies and auth headers never reach the logs
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderCookie) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
