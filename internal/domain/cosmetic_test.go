package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientThemeCSSGradient(t *testing.T) {
	two := &GradientTheme{Color1: "#00d2ff", Color2: "#3a7bd5", GradientDirection: "45deg"}
	assert.Equal(t, "linear-gradient(45deg, #00d2ff, #3a7bd5)", two.CSSGradient())

	three := &GradientTheme{Color1: "#ff0000", Color2: "#ffff00", Color3: "#00ff00", GradientDirection: "90deg"}
	assert.Equal(t, "linear-gradient(90deg, #ff0000, #ffff00, #00ff00)", three.CSSGradient())
}

func TestPlayerGradientSettingCSSGradient(t *testing.T) {
	t.Run("Theme takes precedence over custom colors", func(t *testing.T) {
		s := &PlayerGradientSetting{
			Theme:        &GradientTheme{Color1: "#ffd700", Color2: "#ffed4e", GradientDirection: "45deg"},
			CustomColor1: "#111111",
			CustomColor2: "#222222",
		}
		assert.Equal(t, "linear-gradient(45deg, #ffd700, #ffed4e)", s.CSSGradient())
	})

	t.Run("Custom colors without theme", func(t *testing.T) {
		s := &PlayerGradientSetting{CustomColor1: "#111111", CustomColor2: "#222222"}
		assert.Equal(t, "linear-gradient(45deg, #111111, #222222)", s.CSSGradient())
	})

	t.Run("Three custom colors", func(t *testing.T) {
		s := &PlayerGradientSetting{CustomColor1: "#111111", CustomColor2: "#222222", CustomColor3: "#333333"}
		assert.Equal(t, "linear-gradient(45deg, #111111, #222222, #333333)", s.CSSGradient())
	})

	t.Run("No theme and incomplete colors resolves empty", func(t *testing.T) {
		s := &PlayerGradientSetting{CustomColor1: "#111111"}
		assert.Equal(t, "", s.CSSGradient())
	})
}
