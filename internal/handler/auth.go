package handler

import (
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
)

// AdminLoginRequest is the admin login payload
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// PlayerLoginRequest is the player login payload
type PlayerLoginRequest struct {
	Nickname string `json:"nickname" validate:"required,max=20"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	IsAdmin  bool   `json:"is_admin"`
	Nickname string `json:"nickname,omitempty"`
}

// HandleAdminLogin authenticates the admin with the shared panel password
// @Summary Admin login
// @Description Validates the admin password and issues a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/auth/admin/login [post]
func HandleAdminLogin(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req AdminLoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin login"); err != nil {
			return
		}

		token, err := svc.LoginAdmin(ctx, req.Password)
		if err != nil {
			log.Warn("Admin login rejected")
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		setSessionCookie(w, svc, token)
		metrics.Logins.WithLabelValues("admin").Inc()
		log.Info("Admin logged in")
		respondJSON(w, http.StatusOK, SessionResponse{IsAdmin: true})
	}
}

// HandlePlayerLogin starts a player session for an existing nickname
// @Summary Player login
// @Description Issues a player session cookie if the nickname exists
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/auth/player/login [post]
func HandlePlayerLogin(svc auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var req PlayerLoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Player login"); err != nil {
			return
		}

		token, err := svc.LoginPlayer(ctx, req.Nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		setSessionCookie(w, svc, token)
		metrics.Logins.WithLabelValues("player").Inc()
		log.Info("Player logged in", "nickname", req.Nickname)
		respondJSON(w, http.StatusOK, SessionResponse{Nickname: req.Nickname})
	}
}

// HandleLogout clears the session cookie
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/auth/logout [post]
func HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOutSuccess})
	}
}

// HandleSession reports the caller's current session, if any
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /api/v1/auth/session [get]
func HandleSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := auth.FromContext(r.Context())
		if !ok {
			respondJSON(w, http.StatusOK, SessionResponse{})
			return
		}
		respondJSON(w, http.StatusOK, SessionResponse{
			IsAdmin:  session.IsAdmin,
			Nickname: session.Nickname,
		})
	}
}

func setSessionCookie(w http.ResponseWriter, svc auth.Service, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(svc.CookieTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
