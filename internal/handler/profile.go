package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/cosmetic"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
)

// UpdateProfileRequest is the player's own profile edit payload
type UpdateProfileRequest struct {
	RealName           string              `json:"real_name" validate:"max=100"`
	Bio                string              `json:"bio" validate:"max=1000"`
	DiscordTag         string              `json:"discord_tag" validate:"max=100"`
	YoutubeChannel     string              `json:"youtube_channel" validate:"max=200"`
	TwitchChannel      string              `json:"twitch_channel" validate:"max=200"`
	FavoriteServer     string              `json:"favorite_server" validate:"max=100"`
	FavoriteMap        string              `json:"favorite_map" validate:"max=100"`
	PreferredGamemode  string              `json:"preferred_gamemode" validate:"max=100"`
	ProfileBannerColor string              `json:"profile_banner_color" validate:"max=7"`
	ProfileIsPublic    bool                `json:"profile_is_public"`
	CustomStatus       string              `json:"custom_status" validate:"max=200"`
	Location           string              `json:"location" validate:"max=100"`
	Birthday           string              `json:"birthday"` // YYYY-MM-DD, empty clears
	CustomAvatarURL    string              `json:"custom_avatar_url" validate:"max=500"`
	CustomBannerURL    string              `json:"custom_banner_url" validate:"max=500"`
	BannerIsAnimated   bool                `json:"banner_is_animated"`
	SocialNetworks     []domain.SocialLink `json:"social_networks" validate:"dive"`

	StatsSectionColor  string `json:"stats_section_color" validate:"max=7"`
	InfoSectionColor   string `json:"info_section_color" validate:"max=7"`
	SocialSectionColor string `json:"social_section_color" validate:"max=7"`
	PrefsSectionColor  string `json:"prefs_section_color" validate:"max=7"`
}

// UpdateRoleRequest changes the player's displayed role
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,max=50"`
}

// ProfileResponse is a player profile with cosmetics resolved
type ProfileResponse struct {
	PlayerStatsResponse
	ActiveTitle *domain.CustomTitle `json:"active_title,omitempty"`
	Gradients   map[string]string   `json:"gradients,omitempty"`
	IsOwner     bool                `json:"is_owner"`
}

// HandlePublicProfile shows a player profile by nickname. Private profiles
// are only visible to their owner and admins.
// @Summary Public profile
// @Tags profiles
// @Produce json
// @Param nickname path string true "Player nickname"
// @Success 200 {object} ProfileResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profiles/{nickname} [get]
func HandlePublicProfile(players player.Service, cosmetics cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		nickname := chi.URLParam(r, "nickname")

		p, err := players.GetPlayerByNickname(ctx, nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		session, _ := auth.FromContext(ctx)
		isOwner := session != nil && session.Nickname == p.Nickname
		isAdmin := session != nil && session.IsAdmin

		if !p.ProfileIsPublic && !isOwner && !isAdmin {
			respondError(w, http.StatusForbidden, ErrMsgPrivateProfile)
			return
		}

		respondProfile(w, r, cosmetics, p, isOwner)
	}
}

// HandleMyProfile shows the logged-in player's own profile
// @Summary Own profile
// @Tags profiles
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me [get]
func HandleMyProfile(players player.Service, cosmetics cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := auth.FromContext(ctx)

		p, err := players.GetPlayerByNickname(ctx, session.Nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondProfile(w, r, cosmetics, p, true)
	}
}

// HandleUpdateProfile applies the player's own profile changes
// @Summary Update own profile
// @Description Custom banner fields require level 20 and are skipped below it
// @Tags profiles
// @Accept json
// @Produce json
// @Success 200 {object} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/me/profile [put]
func HandleUpdateProfile(players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := auth.FromContext(ctx)

		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		update := player.ProfileUpdate{
			RealName:           req.RealName,
			Bio:                req.Bio,
			DiscordTag:         req.DiscordTag,
			YoutubeChannel:     req.YoutubeChannel,
			TwitchChannel:      req.TwitchChannel,
			FavoriteServer:     req.FavoriteServer,
			FavoriteMap:        req.FavoriteMap,
			PreferredGamemode:  req.PreferredGamemode,
			ProfileBannerColor: req.ProfileBannerColor,
			ProfileIsPublic:    req.ProfileIsPublic,
			CustomStatus:       req.CustomStatus,
			Location:           req.Location,
			CustomAvatarURL:    req.CustomAvatarURL,
			CustomBannerURL:    req.CustomBannerURL,
			BannerIsAnimated:   req.BannerIsAnimated,
			SocialNetworks:     req.SocialNetworks,
			StatsSectionColor:  req.StatsSectionColor,
			InfoSectionColor:   req.InfoSectionColor,
			SocialSectionColor: req.SocialSectionColor,
			PrefsSectionColor:  req.PrefsSectionColor,
		}

		// An unparseable birthday clears the field, like the original form
		if req.Birthday != "" {
			if birthday, err := time.Parse("2006-01-02", req.Birthday); err == nil {
				update.Birthday = &birthday
			}
		}

		p, err := players.UpdateProfile(ctx, session.Nickname, update)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, toPlayerResponse(p))
	}
}

// HandleUpdateRole lets a player change their displayed role
// @Summary Update own role
// @Tags profiles
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/me/role [put]
func HandleUpdateRole(players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := auth.FromContext(ctx)

		var req UpdateRoleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update role"); err != nil {
			return
		}

		p, err := players.GetPlayerByNickname(ctx, session.Nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		p.Role = req.Role
		if err := players.UpdatePlayer(ctx, p); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRoleUpdatedSuccess})
	}
}

func respondProfile(w http.ResponseWriter, r *http.Request, cosmetics cosmetic.Service, p *domain.Player, isOwner bool) {
	ctx := r.Context()

	resp := ProfileResponse{
		PlayerStatsResponse: toPlayerResponse(p),
		IsOwner:             isOwner,
	}

	// Cosmetics are decoration: failures degrade the profile, not the request
	if title, err := cosmetics.GetActiveTitle(ctx, p.ID); err == nil {
		resp.ActiveTitle = title
	}
	if gradients, err := cosmetics.GradientCSS(ctx, p.ID); err == nil && len(gradients) > 0 {
		resp.Gradients = gradients
	}

	respondJSON(w, http.StatusOK, resp)
}
