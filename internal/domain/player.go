package domain

import (
	"crypto/md5" //nolint:gosec // used for deterministic skin selection, not security
	"fmt"
	"math"
	"time"
)

// Skin types supported by the skin resolver
const (
	SkinTypeAuto   = "auto"
	SkinTypeSteve  = "steve"
	SkinTypeAlex   = "alex"
	SkinTypeCustom = "custom"
)

// MaxStatValue is the ceiling applied to counters on admin entry paths
const MaxStatValue = 999999

// MaxNicknameLength is the nickname length limit enforced on create
const MaxNicknameLength = 20

// DefaultRole is assigned to players created without an explicit role
const DefaultRole = "Player"

// SocialLink is a single entry of a player's extended social network list
type SocialLink struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Player holds the persisted Bedwars statistics and profile for one player.
// Derived metrics (level, ratios, star rating) are never stored - they are
// recomputed from the counters on every read.
type Player struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`

	Kills       int `json:"kills"`
	FinalKills  int `json:"final_kills"`
	Deaths      int `json:"deaths"`
	BedsBroken  int `json:"beds_broken"`
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Experience  int `json:"experience"`

	Role     string `json:"role"`
	ServerIP string `json:"server_ip"`

	IronCollected    int `json:"iron_collected"`
	GoldCollected    int `json:"gold_collected"`
	DiamondCollected int `json:"diamond_collected"`
	EmeraldCollected int `json:"emerald_collected"`
	ItemsPurchased   int `json:"items_purchased"`

	SkinURL   string `json:"skin_url,omitempty"`
	SkinType  string `json:"skin_type"`
	IsPremium bool   `json:"is_premium"`

	RealName          string       `json:"real_name,omitempty"`
	Bio               string       `json:"bio,omitempty"`
	DiscordTag        string       `json:"discord_tag,omitempty"`
	YoutubeChannel    string       `json:"youtube_channel,omitempty"`
	TwitchChannel     string       `json:"twitch_channel,omitempty"`
	FavoriteServer    string       `json:"favorite_server,omitempty"`
	FavoriteMap       string       `json:"favorite_map,omitempty"`
	PreferredGamemode string       `json:"preferred_gamemode,omitempty"`
	ProfileBannerColor string      `json:"profile_banner_color"`
	ProfileIsPublic   bool         `json:"profile_is_public"`
	CustomStatus      string       `json:"custom_status,omitempty"`
	Location          string       `json:"location,omitempty"`
	Birthday          *time.Time   `json:"birthday,omitempty"`
	CustomAvatarURL   string       `json:"custom_avatar_url,omitempty"`
	CustomBannerURL   string       `json:"custom_banner_url,omitempty"`
	BannerIsAnimated  bool         `json:"banner_is_animated"`
	SocialNetworks    []SocialLink `json:"social_networks,omitempty"`

	StatsSectionColor  string `json:"stats_section_color"`
	InfoSectionColor   string `json:"info_section_color"`
	SocialSectionColor string `json:"social_section_color"`
	PrefsSectionColor  string `json:"prefs_section_color"`

	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// Level thresholds for levels 1-5; past the last band each level costs 10000 XP
var levelThresholds = []int{0, 500, 1500, 3500, 7500, 15000}

// Level computes the player level from experience.
// Bands: <500 -> 1, <1500 -> 2, <3500 -> 3, <7500 -> 4, <15000 -> 5,
// then one level per 10000 XP, capped at 100.
func (p *Player) Level() int {
	switch {
	case p.Experience < 500:
		return 1
	case p.Experience < 1500:
		return 2
	case p.Experience < 3500:
		return 3
	case p.Experience < 7500:
		return 4
	case p.Experience < 15000:
		return 5
	default:
		lvl := 5 + (p.Experience-15000)/10000
		if lvl > 100 {
			return 100
		}
		return lvl
	}
}

// LevelProgress returns progress toward the next level as a percentage
// rounded to one decimal and clamped to [0, 100]. Level 100 is always 100.
func (p *Player) LevelProgress() float64 {
	level := p.Level()
	if level >= 100 {
		return 100
	}

	var current, next int
	if level <= 5 {
		current = levelThresholds[level-1]
		next = levelThresholds[level]
	} else {
		current = 15000 + (level-5)*10000
		next = 15000 + (level-4)*10000
	}

	progress := round1(float64(p.Experience-current) / float64(next-current) * 100)
	return math.Min(100, math.Max(0, progress))
}

// KDRatio is kills/deaths rounded to two decimals.
// With zero deaths it degenerates to the raw kill count (0 if no kills).
func (p *Player) KDRatio() float64 {
	if p.Deaths == 0 {
		if p.Kills > 0 {
			return float64(p.Kills)
		}
		return 0
	}
	return round2(float64(p.Kills) / float64(p.Deaths))
}

// FKDRatio is final kills/deaths rounded to two decimals, same degenerate
// handling as KDRatio.
func (p *Player) FKDRatio() float64 {
	if p.Deaths == 0 {
		if p.FinalKills > 0 {
			return float64(p.FinalKills)
		}
		return 0
	}
	return round2(float64(p.FinalKills) / float64(p.Deaths))
}

// WinRate is the win percentage rounded to one decimal, 0 with no games
func (p *Player) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return round1(float64(p.Wins) / float64(p.GamesPlayed) * 100)
}

// TotalResources sums all collected resource counters
func (p *Player) TotalResources() int {
	return p.IronCollected + p.GoldCollected + p.DiamondCollected + p.EmeraldCollected
}

// StarRating grades overall performance on a 1-5 scale.
// Weighted contributions: level (0-20), K/D (0-15), win rate (0-15),
// beds broken (0-10), final kills (0-10), games played (0-5); the sum is
// normalized by 13 and clamped to [1, 5].
func (p *Player) StarRating() int {
	score := math.Min(20, float64(p.Level())*0.5)
	score += math.Min(15, p.KDRatio()*3)
	score += math.Min(15, p.WinRate()*0.15)
	score += math.Min(10, float64(p.BedsBroken)*0.1)
	score += math.Min(10, float64(p.FinalKills)*0.05)
	score += math.Min(5, float64(p.GamesPlayed)*0.01)

	rating := int(math.Round(score / 13))
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// MinecraftSkinURL resolves the avatar URL for the player.
// Precedence: custom avatar, custom skin, explicit steve/alex, premium
// lookup by nickname, then a deterministic steve/alex fallback derived
// from the nickname hash.
func (p *Player) MinecraftSkinURL() string {
	if p.CustomAvatarURL != "" {
		return p.CustomAvatarURL
	}
	switch {
	case p.SkinType == SkinTypeCustom && p.SkinURL != "":
		return p.SkinURL
	case p.SkinType == SkinTypeSteve:
		return "https://mc-heads.net/avatar/steve/128"
	case p.SkinType == SkinTypeAlex:
		return "https://mc-heads.net/avatar/alex/128"
	case p.IsPremium && p.Nickname != "":
		return fmt.Sprintf("https://mc-heads.net/avatar/%s/128", p.Nickname)
	default:
		sum := md5.Sum([]byte(p.Nickname)) //nolint:gosec
		skin := "steve"
		if sum[len(sum)-1]&1 == 1 {
			skin = "alex"
		}
		return fmt.Sprintf("https://mc-heads.net/avatar/%s/128", skin)
	}
}

// CanUseStaticGradients reports whether the player may use static gradients
func (p *Player) CanUseStaticGradients() bool {
	return p.Level() >= 1
}

// CanUseAnimatedGradients reports whether the player may use animated gradients
func (p *Player) CanUseAnimatedGradients() bool {
	return p.Level() >= 40
}

// CanUseCustomBanner reports whether the player may set a custom profile banner
func (p *Player) CanUseCustomBanner() bool {
	return p.Level() >= 20
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
