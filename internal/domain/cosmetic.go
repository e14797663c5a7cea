package domain

import (
	"fmt"
	"time"
)

// Element types that accept gradient styling
const (
	ElementNickname = "nickname"
	ElementTitle    = "title"
	ElementStats    = "stats"
	ElementKills    = "kills"
	ElementDeaths   = "deaths"
	ElementWins     = "wins"
	ElementBeds     = "beds"
	ElementStatus   = "status"
	ElementBio      = "bio"
	ElementRole     = "role"
)

// CustomTitle is an admin-defined cosmetic title
type CustomTitle struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Color       string    `json:"color"`
	GlowColor   string    `json:"glow_color"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerTitle binds a title to a player. At most one binding per player is
// active, backed by a partial unique index.
type PlayerTitle struct {
	ID         int       `json:"id"`
	PlayerID   int       `json:"player_id"`
	TitleID    int       `json:"title_id"`
	IsActive   bool      `json:"is_active"`
	AssignedBy string    `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

// GradientTheme is a named, reusable gradient for one element type
type GradientTheme struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	DisplayName       string    `json:"display_name"`
	ElementType       string    `json:"element_type"`
	Color1            string    `json:"color1"`
	Color2            string    `json:"color2"`
	Color3            string    `json:"color3,omitempty"`
	GradientDirection string    `json:"gradient_direction"`
	AnimationEnabled  bool      `json:"animation_enabled"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// CSSGradient renders the theme as a CSS linear-gradient value
func (t *GradientTheme) CSSGradient() string {
	if t.Color3 != "" {
		return fmt.Sprintf("linear-gradient(%s, %s, %s, %s)", t.GradientDirection, t.Color1, t.Color2, t.Color3)
	}
	return fmt.Sprintf("linear-gradient(%s, %s, %s)", t.GradientDirection, t.Color1, t.Color2)
}

// PlayerGradientSetting is a player's gradient choice for one element type.
// One row per (player, element type), maintained by upsert.
type PlayerGradientSetting struct {
	ID              int       `json:"id"`
	PlayerID        int       `json:"player_id"`
	ElementType     string    `json:"element_type"`
	GradientThemeID int       `json:"gradient_theme_id,omitempty"`
	CustomColor1    string    `json:"custom_color1,omitempty"`
	CustomColor2    string    `json:"custom_color2,omitempty"`
	CustomColor3    string    `json:"custom_color3,omitempty"`
	IsEnabled       bool      `json:"is_enabled"`
	AssignedBy      string    `json:"assigned_by"`
	AssignedAt      time.Time `json:"assigned_at"`

	// Theme is populated on reads when GradientThemeID references a theme
	Theme *GradientTheme `json:"theme,omitempty"`
}

// CSSGradient resolves the effective CSS for the setting: referenced theme
// first, then inline custom colors, otherwise empty.
func (s *PlayerGradientSetting) CSSGradient() string {
	if s.Theme != nil {
		return s.Theme.CSSGradient()
	}
	if s.CustomColor1 != "" && s.CustomColor2 != "" {
		if s.CustomColor3 != "" {
			return fmt.Sprintf("linear-gradient(45deg, %s, %s, %s)", s.CustomColor1, s.CustomColor2, s.CustomColor3)
		}
		return fmt.Sprintf("linear-gradient(45deg, %s, %s)", s.CustomColor1, s.CustomColor2)
	}
	return ""
}
