package handler

import (
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/achievement"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/metrics"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
)

// CreatePlayerRequest is the admin payload for adding a player
type CreatePlayerRequest struct {
	Nickname    string `json:"nickname" validate:"required,max=20"`
	Kills       int    `json:"kills" validate:"gte=0,lte=999999"`
	FinalKills  int    `json:"final_kills" validate:"gte=0,lte=999999"`
	Deaths      int    `json:"deaths" validate:"gte=0,lte=999999"`
	BedsBroken  int    `json:"beds_broken" validate:"gte=0,lte=999999"`
	GamesPlayed int    `json:"games_played" validate:"gte=0,lte=999999"`
	Wins        int    `json:"wins" validate:"gte=0,lte=999999"`
	Experience  int    `json:"experience" validate:"gte=0,lte=999999"`
	Role        string `json:"role"`
	ServerIP    string `json:"server_ip"`

	IronCollected    int `json:"iron_collected" validate:"gte=0,lte=999999"`
	GoldCollected    int `json:"gold_collected" validate:"gte=0,lte=999999"`
	DiamondCollected int `json:"diamond_collected" validate:"gte=0,lte=999999"`
	EmeraldCollected int `json:"emerald_collected" validate:"gte=0,lte=999999"`
	ItemsPurchased   int `json:"items_purchased" validate:"gte=0,lte=999999"`

	SkinType  string `json:"skin_type" validate:"skintype"`
	IsPremium bool   `json:"is_premium"`
}

// UpdateStatsRequest is the admin payload for a full stat edit
type UpdateStatsRequest struct {
	Kills       *int    `json:"kills" validate:"omitempty,gte=0,lte=999999"`
	FinalKills  *int    `json:"final_kills" validate:"omitempty,gte=0,lte=999999"`
	Deaths      *int    `json:"deaths" validate:"omitempty,gte=0,lte=999999"`
	BedsBroken  *int    `json:"beds_broken" validate:"omitempty,gte=0,lte=999999"`
	GamesPlayed *int    `json:"games_played" validate:"omitempty,gte=0,lte=999999"`
	Wins        *int    `json:"wins" validate:"omitempty,gte=0,lte=999999"`
	Experience  *int    `json:"experience" validate:"omitempty,gte=0,lte=999999"`
	Role        *string `json:"role"`
	ServerIP    *string `json:"server_ip"`

	IronCollected    *int `json:"iron_collected" validate:"omitempty,gte=0,lte=999999"`
	GoldCollected    *int `json:"gold_collected" validate:"omitempty,gte=0,lte=999999"`
	DiamondCollected *int `json:"diamond_collected" validate:"omitempty,gte=0,lte=999999"`
	EmeraldCollected *int `json:"emerald_collected" validate:"omitempty,gte=0,lte=999999"`
	ItemsPurchased   *int `json:"items_purchased" validate:"omitempty,gte=0,lte=999999"`
}

// ModifyStatsRequest adds or subtracts stat deltas
type ModifyStatsRequest struct {
	Operation string         `json:"operation" validate:"required,oneof=add subtract"`
	Deltas    map[string]int `json:"deltas" validate:"required"`
}

// UpdateSkinRequest changes a player's skin settings
type UpdateSkinRequest struct {
	SkinType  string `json:"skin_type" validate:"required,skintype"`
	IsPremium bool   `json:"is_premium"`
	NameMCURL string `json:"namemc_url"`
}

// PlayerStatsResponse pairs a player with their derived metrics
type PlayerStatsResponse struct {
	domain.Player
	Level          int     `json:"level"`
	LevelProgress  float64 `json:"level_progress"`
	KDRatio        float64 `json:"kd_ratio"`
	FKDRatio       float64 `json:"fkd_ratio"`
	WinRate        float64 `json:"win_rate"`
	TotalResources int     `json:"total_resources"`
	StarRating     int     `json:"star_rating"`
	SkinAvatarURL  string  `json:"skin_avatar_url"`
}

func toPlayerResponse(p *domain.Player) PlayerStatsResponse {
	return PlayerStatsResponse{
		Player:         *p,
		Level:          p.Level(),
		LevelProgress:  p.LevelProgress(),
		KDRatio:        p.KDRatio(),
		FKDRatio:       p.FKDRatio(),
		WinRate:        p.WinRate(),
		TotalResources: p.TotalResources(),
		StarRating:     p.StarRating(),
		SkinAvatarURL:  p.MinecraftSkinURL(),
	}
}

func toPlayerResponses(players []domain.Player) []PlayerStatsResponse {
	out := make([]PlayerStatsResponse, 0, len(players))
	for i := range players {
		out = append(out, toPlayerResponse(&players[i]))
	}
	return out
}

// HandleCreatePlayer adds a new player to the leaderboard
// @Summary Create player
// @Description Adds a player with initial statistics (admin only)
// @Tags players
// @Accept json
// @Produce json
// @Success 201 {object} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/admin/players [post]
func HandleCreatePlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}

		p := &domain.Player{
			Nickname:         req.Nickname,
			Kills:            req.Kills,
			FinalKills:       req.FinalKills,
			Deaths:           req.Deaths,
			BedsBroken:       req.BedsBroken,
			GamesPlayed:      req.GamesPlayed,
			Wins:             req.Wins,
			Experience:       req.Experience,
			Role:             req.Role,
			ServerIP:         req.ServerIP,
			IronCollected:    req.IronCollected,
			GoldCollected:    req.GoldCollected,
			DiamondCollected: req.DiamondCollected,
			EmeraldCollected: req.EmeraldCollected,
			ItemsPurchased:   req.ItemsPurchased,
			SkinType:         req.SkinType,
			IsPremium:        req.IsPremium,
		}

		if err := svc.CreatePlayer(ctx, p); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		metrics.PlayersCreated.Inc()
		respondJSON(w, http.StatusCreated, toPlayerResponse(p))
	}
}

// HandleGetPlayer returns one player with derived metrics
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerStatsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [get]
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}

		p, err := svc.GetPlayer(r.Context(), id)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, toPlayerResponse(p))
	}
}

// HandleUpdateStats applies a full stat edit, then re-evaluates achievements
// @Summary Edit player statistics
// @Description Overwrites the provided counters (admin only)
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/players/{id} [put]
func HandleUpdateStats(players player.Service, quests quest.Service, achievements achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		id, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}

		var req UpdateStatsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update stats"); err != nil {
			return
		}

		p, err := players.GetPlayer(ctx, id)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		applyStatUpdates(p, &req)

		if err := players.UpdatePlayer(ctx, p); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		// Stat changes may complete quests or unlock achievements
		if _, err := quests.RecomputeProgress(ctx, id); err != nil {
			log.Error("Failed to recompute quest progress", "error", err, "player_id", id)
		}
		if _, err := achievements.Evaluate(ctx, id); err != nil {
			log.Error("Failed to evaluate achievements", "error", err, "player_id", id)
		}

		updated, err := players.GetPlayer(ctx, id)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		metrics.StatsEdits.Inc()
		respondJSON(w, http.StatusOK, toPlayerResponse(updated))
	}
}

// HandleModifyStats adds or subtracts stat deltas
// @Summary Modify player statistics
// @Description Applies relative stat changes; subtraction floors at zero (admin only)
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/players/{id}/stats [post]
func HandleModifyStats(players player.Service, quests quest.Service, achievements achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		id, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}

		var req ModifyStatsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Modify stats"); err != nil {
			return
		}

		p, err := players.ModifyStats(ctx, id, req.Operation, req.Deltas)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if _, err := quests.RecomputeProgress(ctx, id); err != nil {
			log.Error("Failed to recompute quest progress", "error", err, "player_id", id)
		}
		if _, err := achievements.Evaluate(ctx, id); err != nil {
			log.Error("Failed to evaluate achievements", "error", err, "player_id", id)
		}

		metrics.StatsEdits.Inc()
		respondJSON(w, http.StatusOK, toPlayerResponse(p))
	}
}

// HandleDeletePlayer removes a player and all their progress
// @Summary Delete player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/players/{id} [delete]
func HandleDeletePlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}

		if err := svc.DeletePlayer(r.Context(), id); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		metrics.PlayersDeleted.Inc()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerDeletedSuccess})
	}
}

// HandleClearLeaderboard deletes every player
// @Summary Clear leaderboard
// @Description Removes all players and their progress (admin only)
// @Tags players
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/players [delete]
func HandleClearLeaderboard(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearLeaderboard(r.Context()); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLeaderboardCleared})
	}
}

// HandleRecentPlayers lists the newest players for the admin dashboard
// @Summary Recently added players
// @Tags players
// @Produce json
// @Success 200 {array} PlayerStatsResponse
// @Router /api/v1/admin/players/recent [get]
func HandleRecentPlayers(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.ListRecent(r.Context(), 10)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, toPlayerResponses(players))
	}
}

// HandleUpdateSkin changes a player's skin settings
// @Summary Update player skin
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerStatsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/players/{id}/skin [put]
func HandleUpdateSkin(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := URLParamInt(r, w, "id", ErrMsgInvalidPlayerID)
		if !ok {
			return
		}

		var req UpdateSkinRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update skin"); err != nil {
			return
		}

		p, err := svc.UpdateSkin(r.Context(), id, req.SkinType, req.IsPremium, req.NameMCURL)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, toPlayerResponse(p))
	}
}

func applyStatUpdates(p *domain.Player, req *UpdateStatsRequest) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&p.Kills, req.Kills)
	setInt(&p.FinalKills, req.FinalKills)
	setInt(&p.Deaths, req.Deaths)
	setInt(&p.BedsBroken, req.BedsBroken)
	setInt(&p.GamesPlayed, req.GamesPlayed)
	setInt(&p.Wins, req.Wins)
	setInt(&p.Experience, req.Experience)
	setInt(&p.IronCollected, req.IronCollected)
	setInt(&p.GoldCollected, req.GoldCollected)
	setInt(&p.DiamondCollected, req.DiamondCollected)
	setInt(&p.EmeraldCollected, req.EmeraldCollected)
	setInt(&p.ItemsPurchased, req.ItemsPurchased)
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.ServerIP != nil {
		p.ServerIP = *req.ServerIP
	}
}
