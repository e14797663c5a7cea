package handler

import (
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/achievement"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
)

// CreateAchievementRequest is the admin payload for a custom achievement.
// The unlock condition is a JSON object mapping stat keys to thresholds.
type CreateAchievementRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description"`
	Icon            string `json:"icon" validate:"max=50"`
	Rarity          string `json:"rarity" validate:"omitempty,oneof=common rare epic legendary"`
	RewardXP        int    `json:"reward_xp" validate:"gte=0"`
	UnlockCondition string `json:"unlock_condition" validate:"required"`
	IsHidden        bool   `json:"is_hidden"`
}

// AchievementListEntry is one achievement with how many players earned it
type AchievementListEntry struct {
	domain.Achievement
	EarnedCount int `json:"earned_count"`
}

// HandleListAchievements lists all achievements with earned counts
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Success 200 {array} AchievementListEntry
// @Router /api/v1/achievements [get]
func HandleListAchievements(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		achievements, err := svc.ListAchievements(ctx)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		entries := make([]AchievementListEntry, 0, len(achievements))
		for _, a := range achievements {
			count, err := svc.GetEarnedCount(ctx, a.ID)
			if err != nil {
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			entries = append(entries, AchievementListEntry{Achievement: a, EarnedCount: count})
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleMyAchievements re-evaluates and lists the player's earned achievements
// @Summary Own achievements
// @Description Evaluates unlock conditions against live stats first, so new unlocks appear on read
// @Tags achievements
// @Produce json
// @Success 200 {array} domain.PlayerAchievement
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/me/achievements [get]
func HandleMyAchievements(svc achievement.Service, players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		session, _ := auth.FromContext(ctx)

		p, err := players.GetPlayerByNickname(ctx, session.Nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		newlyEarned, err := svc.Evaluate(ctx, p.ID)
		if err != nil {
			log.Warn("Achievement evaluation failed", "player_id", p.ID, "error", err)
		}
		metrics.AchievementsEarned.Add(float64(len(newlyEarned)))

		earned, err := svc.ListEarned(ctx, p.ID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, earned)
	}
}

// HandleCreateAchievement creates a custom achievement
// @Summary Create achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/achievements [post]
func HandleCreateAchievement(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAchievementRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create achievement"); err != nil {
			return
		}

		a := &domain.Achievement{
			Title:           req.Title,
			Description:     req.Description,
			Icon:            req.Icon,
			Rarity:          req.Rarity,
			RewardXP:        req.RewardXP,
			UnlockCondition: req.UnlockCondition,
			IsHidden:        req.IsHidden,
		}
		if err := svc.CreateAchievement(r.Context(), a); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Data: a})
	}
}

// HandleDeleteAchievement removes an achievement and all earned records
// @Summary Delete achievement
// @Tags achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/achievements/{id} [delete]
func HandleDeleteAchievement(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievementID, ok := URLParamInt(r, w, "id", ErrMsgInvalidAchievementID)
		if !ok {
			return
		}
		if err := svc.DeleteAchievement(r.Context(), achievementID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAchievementDeleted})
	}
}

// HandleGenerateSeasonal creates the seasonal achievement set
// @Summary Generate seasonal achievements
// @Tags achievements
// @Produce json
// @Success 201 {object} DataResponse
// @Router /api/v1/admin/achievements/seasonal [post]
func HandleGenerateSeasonal(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := svc.GenerateSeasonal(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Data: created})
	}
}
