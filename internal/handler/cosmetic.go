package handler

import (
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/cosmetic"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
)

// CreateTitleRequest is the admin payload for a custom title
type CreateTitleRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Color       string `json:"color" validate:"max=7"`
	GlowColor   string `json:"glow_color" validate:"max=7"`
	Description string `json:"description" validate:"max=500"`
}

// AssignTitleRequest assigns a title to a player
type AssignTitleRequest struct {
	PlayerID int `json:"player_id" validate:"required,gt=0"`
	TitleID  int `json:"title_id" validate:"required,gt=0"`
}

// CreateThemeRequest is the admin payload for a gradient theme
type CreateThemeRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	ElementType string `json:"element_type" validate:"required,max=30"`
	Color1      string `json:"color1" validate:"max=7"`
	Color2      string `json:"color2" validate:"max=7"`
	Color3      string `json:"color3" validate:"max=7"`
	Direction   string `json:"direction" validate:"max=20"`
	IsAnimated  bool   `json:"is_animated"`
}

// AssignGradientRequest is the admin gradient assignment payload. Either a
// theme ID or at least two custom colors must be given.
type AssignGradientRequest struct {
	PlayerID    int    `json:"player_id" validate:"required,gt=0"`
	ElementType string `json:"element_type" validate:"required,max=30"`
	ThemeID     int    `json:"theme_id" validate:"gte=0"`
	Color1      string `json:"color1" validate:"max=7"`
	Color2      string `json:"color2" validate:"max=7"`
	Color3      string `json:"color3" validate:"max=7"`
}

// ApplyGradientRequest is the player's own gradient selection. Theme ID 0
// clears the element.
type ApplyGradientRequest struct {
	ElementType string `json:"element_type" validate:"required,max=30"`
	ThemeID     int    `json:"theme_id" validate:"gte=0"`
}

// HandleListTitles lists all custom titles
// @Summary List titles
// @Tags cosmetics
// @Produce json
// @Success 200 {array} domain.CustomTitle
// @Router /api/v1/titles [get]
func HandleListTitles(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titles, err := svc.ListTitles(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, titles)
	}
}

// HandleCreateTitle creates a custom title
// @Summary Create title
// @Tags cosmetics
// @Accept json
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/titles [post]
func HandleCreateTitle(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTitleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create title"); err != nil {
			return
		}

		title := &domain.CustomTitle{
			Name:        req.Name,
			DisplayName: req.DisplayName,
			Color:       req.Color,
			GlowColor:   req.GlowColor,
		}
		if err := svc.CreateTitle(r.Context(), title); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Data: title})
	}
}

// HandleAssignTitle grants a title to a player
// @Summary Assign title
// @Tags cosmetics
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/titles/assign [post]
func HandleAssignTitle(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssignTitleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Assign title"); err != nil {
			return
		}
		if err := svc.AssignTitle(r.Context(), req.PlayerID, req.TitleID, ""); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTitleAssignedSuccess})
	}
}

// HandleRemoveTitle deactivates a player's titles
// @Summary Remove player title
// @Tags cosmetics
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/players/{id}/title [delete]
func HandleRemoveTitle(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}
		if err := svc.RemoveTitle(r.Context(), playerID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTitleRemovedSuccess})
	}
}

// HandleRemoveAllTitles deactivates every title on the panel
// @Summary Remove all titles
// @Tags cosmetics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/titles [delete]
func HandleRemoveAllTitles(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveAllTitles(r.Context()); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAllTitlesRemoved})
	}
}

// HandleMyTitles lists the logged-in player's owned titles
// @Summary Own titles
// @Tags cosmetics
// @Produce json
// @Success 200 {array} domain.PlayerTitle
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/titles [get]
func HandleMyTitles(svc cosmetic.Service, players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := auth.FromContext(ctx)

		p, err := players.GetPlayerByNickname(ctx, session.Nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		titles, err := svc.ListPlayerTitles(ctx, p.ID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, titles)
	}
}

// HandleActivateTitle makes one of the player's owned titles active
// @Summary Activate own title
// @Tags cosmetics
// @Produce json
// @Param id path int true "Title ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/me/titles/{id}/activate [post]
func HandleActivateTitle(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := auth.FromContext(r.Context())

		titleID, ok := URLParamInt(r, w, "id", ErrMsgInvalidRequest)
		if !ok {
			return
		}
		if err := svc.ActivateOwnTitle(r.Context(), session.Nickname, titleID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTitleActivatedSuccess})
	}
}

// HandleListThemes lists gradient themes grouped by the element they style
// @Summary List gradient themes
// @Tags cosmetics
// @Produce json
// @Success 200 {object} map[string][]domain.GradientTheme
// @Router /api/v1/gradients/themes [get]
func HandleListThemes(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grouped, err := svc.ThemesByElement(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, grouped)
	}
}

// HandleCreateTheme creates a gradient theme
// @Summary Create gradient theme
// @Tags cosmetics
// @Accept json
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/gradients/themes [post]
func HandleCreateTheme(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateThemeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create theme"); err != nil {
			return
		}

		theme := &domain.GradientTheme{
			Name:              req.Name,
			DisplayName:       req.DisplayName,
			ElementType:       req.ElementType,
			Color1:            req.Color1,
			Color2:            req.Color2,
			Color3:            req.Color3,
			GradientDirection: req.Direction,
			AnimationEnabled:  req.IsAnimated,
		}
		if err := svc.CreateTheme(r.Context(), theme); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Data: theme})
	}
}

// HandleAssignGradient sets a player's gradient as the admin
// @Summary Assign gradient
// @Tags cosmetics
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/gradients/assign [post]
func HandleAssignGradient(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AssignGradientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Assign gradient"); err != nil {
			return
		}
		err := svc.AssignGradient(r.Context(), req.PlayerID, req.ElementType, req.ThemeID,
			req.Color1, req.Color2, req.Color3)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGradientAppliedSuccess})
	}
}

// HandleRemoveGradient clears a player's gradient for one element
// @Summary Remove gradient
// @Tags cosmetics
// @Produce json
// @Param id path int true "Player ID"
// @Param element query string true "Element type"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/players/{id}/gradient [delete]
func HandleRemoveGradient(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}
		element, ok := GetQueryParam(r, w, "element")
		if !ok {
			return
		}
		if err := svc.RemoveGradient(r.Context(), playerID, element); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGradientRemovedSuccess})
	}
}

// HandleApplyGradient applies a theme to the logged-in player's own profile.
// Animated themes require level 40, static themes level 1.
// @Summary Apply own gradient
// @Tags cosmetics
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/me/gradients [post]
func HandleApplyGradient(svc cosmetic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := auth.FromContext(r.Context())

		var req ApplyGradientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply gradient"); err != nil {
			return
		}
		if err := svc.ApplyGradient(r.Context(), session.Nickname, req.ElementType, req.ThemeID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		msg := MsgGradientAppliedSuccess
		if req.ThemeID == 0 {
			msg = MsgGradientRemovedSuccess
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
	}
}
