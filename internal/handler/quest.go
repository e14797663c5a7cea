package handler

import (
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
)

// CreateQuestRequest is the admin payload for a custom quest
type CreateQuestRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,statfield"`
	TargetValue int    `json:"target_value" validate:"gte=0"`
	RewardXP    int    `json:"reward_xp" validate:"gte=0"`
	RewardTitle string `json:"reward_title" validate:"max=100"`
	Icon        string `json:"icon" validate:"max=50"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=easy medium hard epic"`
}

// GenerateQuestsRequest selects a periodic quest set
type GenerateQuestsRequest struct {
	Type string `json:"type" validate:"required,oneof=daily weekly monthly"`
}

// QuestBoardEntry is one quest with the caller's progress, if any
type QuestBoardEntry struct {
	Quest              domain.Quest        `json:"quest"`
	Progress           *domain.PlayerQuest `json:"progress,omitempty"`
	ProgressPercentage int                 `json:"progress_percentage"`
}

// HandleQuestBoard lists active quests. A logged-in player's progress is
// refreshed against their live counters first, so completions land on read.
// @Summary Quest board
// @Tags quests
// @Produce json
// @Success 200 {array} QuestBoardEntry
// @Router /api/v1/quests [get]
func HandleQuestBoard(svc quest.Service, players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		var nickname string
		if session, ok := auth.FromContext(ctx); ok && session.Nickname != "" {
			nickname = session.Nickname
			// Refresh progress on view so the board reflects live counters.
			// A stale board is better than no board, so failures only log.
			if p, err := players.GetPlayerByNickname(ctx, nickname); err == nil {
				if _, err := svc.RecomputeProgress(ctx, p.ID); err != nil {
					log.Warn("Quest progress refresh failed", "nickname", nickname, "error", err)
				}
			}
		}

		entries, err := svc.GetBoard(ctx, nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		board := make([]QuestBoardEntry, 0, len(entries))
		for _, e := range entries {
			entry := QuestBoardEntry{Quest: e.Quest, Progress: e.Progress}
			if e.Progress != nil {
				entry.ProgressPercentage = e.Progress.ProgressPercentage(e.Quest.TargetValue)
			}
			board = append(board, entry)
		}

		log.Debug("Quest board served", "quests", len(board), "nickname", nickname)
		respondJSON(w, http.StatusOK, board)
	}
}

// HandleRefreshQuests recomputes the logged-in player's quest progress
// @Summary Refresh quest progress
// @Description Re-evaluates accepted quests against live counters, completing any that reached their target
// @Tags quests
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/quests/refresh [post]
func HandleRefreshQuests(svc quest.Service, players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := auth.FromContext(ctx)

		p, err := players.GetPlayerByNickname(ctx, session.Nickname)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		completed, err := svc.RecomputeProgress(ctx, p.ID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		metrics.QuestsCompleted.Add(float64(len(completed)))
		respondJSON(w, http.StatusOK, DataResponse{Data: completed})
	}
}

// HandleAcceptQuest accepts a quest for the logged-in player
// @Summary Accept quest
// @Description Snapshots the tracked counter as the progress baseline; accepting twice is a no-op
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/quests/{id}/accept [post]
func HandleAcceptQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := auth.FromContext(ctx)

		questID, ok := URLParamInt(r, w, "id", ErrMsgInvalidQuestID)
		if !ok {
			return
		}

		pq, err := svc.AcceptQuest(ctx, session.Nickname, questID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		metrics.QuestsAccepted.Inc()
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgQuestAcceptedSuccess, Data: pq})
	}
}

// HandleCreateQuest creates a custom quest
// @Summary Create quest
// @Tags quests
// @Accept json
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/quests [post]
func HandleCreateQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
			return
		}

		q := &domain.Quest{
			Title:       req.Title,
			Description: req.Description,
			Type:        req.Type,
			TargetValue: req.TargetValue,
			RewardXP:    req.RewardXP,
			RewardTitle: req.RewardTitle,
			Icon:        req.Icon,
			Difficulty:  req.Difficulty,
		}
		if err := svc.CreateQuest(r.Context(), q); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Data: q})
	}
}

// HandleDeleteQuest removes a quest and all progress on it
// @Summary Delete quest
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/quests/{id} [delete]
func HandleDeleteQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questID, ok := URLParamInt(r, w, "id", ErrMsgInvalidQuestID)
		if !ok {
			return
		}
		if err := svc.DeleteQuest(r.Context(), questID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuestDeletedSuccess})
	}
}

// HandleResetQuest wipes all player progress on one quest
// @Summary Reset quest progress
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/quests/{id}/reset [post]
func HandleResetQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questID, ok := URLParamInt(r, w, "id", ErrMsgInvalidQuestID)
		if !ok {
			return
		}
		if err := svc.ResetProgress(r.Context(), questID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuestProgressReset})
	}
}

// HandleCompleteQuest force-completes a quest for the newest player (demo)
// @Summary Force-complete quest
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} DataResponse
// @Router /api/v1/admin/quests/{id}/complete [post]
func HandleCompleteQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questID, ok := URLParamInt(r, w, "id", ErrMsgInvalidQuestID)
		if !ok {
			return
		}
		q, err := svc.AdminCompleteQuest(r.Context(), questID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		metrics.QuestsCompleted.Inc()
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgQuestCompletedSuccess, Data: q})
	}
}

// HandleGenerateQuests creates a periodic quest set
// @Summary Generate periodic quests
// @Tags quests
// @Accept json
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/quests/generate [post]
func HandleGenerateQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateQuestsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate quests"); err != nil {
			return
		}

		created, err := svc.GeneratePeriodic(r.Context(), req.Type)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Data: created})
	}
}

// HandleQuestStats reports attempts and completion rates per quest
// @Summary Quest statistics
// @Tags quests
// @Produce json
// @Success 200 {array} domain.QuestStats
// @Router /api/v1/admin/quests/stats [get]
func HandleQuestStats(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.QuestStatsList(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
