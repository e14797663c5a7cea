package announcer

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/logger"
)

// Announcer publishes player milestones to an external channel
type Announcer interface {
	AnnounceQuestCompleted(ctx context.Context, nickname, questTitle string, rewardXP int)
	AnnounceAchievementEarned(ctx context.Context, nickname, achievementTitle string, rewardXP int)
}

// NoopAnnouncer discards announcements; used when no webhook is configured
type NoopAnnouncer struct{}

func (NoopAnnouncer) AnnounceQuestCompleted(context.Context, string, string, int)    {}
func (NoopAnnouncer) AnnounceAchievementEarned(context.Context, string, string, int) {}

// DiscordAnnouncer posts milestones through a Discord webhook
type DiscordAnnouncer struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewDiscord creates a webhook-backed announcer. The session carries no bot
// token; webhook execution is unauthenticated beyond the webhook token itself.
func NewDiscord(webhookID, token string) (*DiscordAnnouncer, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordAnnouncer{
		session:   session,
		webhookID: webhookID,
		token:     token,
	}, nil
}

// AnnounceQuestCompleted posts a quest completion message
func (a *DiscordAnnouncer) AnnounceQuestCompleted(ctx context.Context, nickname, questTitle string, rewardXP int) {
	content := fmt.Sprintf("🎯 **%s** completed the quest **%s** (+%d XP)", nickname, questTitle, rewardXP)
	a.execute(ctx, content)
}

// AnnounceAchievementEarned posts an achievement message
func (a *DiscordAnnouncer) AnnounceAchievementEarned(ctx context.Context, nickname, achievementTitle string, rewardXP int) {
	content := fmt.Sprintf("🏆 **%s** earned the achievement **%s** (+%d XP)", nickname, achievementTitle, rewardXP)
	a.execute(ctx, content)
}

// execute fires the webhook. Failures are logged and dropped; announcements
// must never fail the triggering request.
func (a *DiscordAnnouncer) execute(ctx context.Context, content string) {
	log := logger.FromContext(ctx)
	_, err := a.session.WebhookExecute(a.webhookID, a.token, false, &discordgo.WebhookParams{
		Content: content,
	})
	if err != nil {
		log.Warn("Failed to send announcement", "error", err)
		return
	}
	log.Debug("Announcement sent", "content", content)
}
