package cosmetic

import "github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"

// defaultTitles is the title set created on first run
func defaultTitles() []domain.CustomTitle {
	return []domain.CustomTitle{
		{Name: "legend", DisplayName: "🏆 Легенда", Color: "#ffd700", GlowColor: "#ffaa00", CreatedBy: DefaultAssignedBy},
		{Name: "champion", DisplayName: "👑 Чемпион", Color: "#ff6b35", GlowColor: "#ff4444", CreatedBy: DefaultAssignedBy},
		{Name: "elite", DisplayName: "⭐ Элита", Color: "#9b59b6", GlowColor: "#8e44ad", CreatedBy: DefaultAssignedBy},
		{Name: "destroyer", DisplayName: "💥 Разрушитель", Color: "#e74c3c", GlowColor: "#c0392b", CreatedBy: DefaultAssignedBy},
		{Name: "master", DisplayName: "🎯 Мастер", Color: "#3498db", GlowColor: "#2980b9", CreatedBy: DefaultAssignedBy},
	}
}

// defaultThemes is the gradient theme catalog created on first run
func defaultThemes() []domain.GradientTheme {
	return []domain.GradientTheme{
		// Nickname gradients
		{Name: "fire_nickname", DisplayName: "🔥 Огненный", ElementType: domain.ElementNickname, Color1: "#ff6b35", Color2: "#f7931e", Color3: "#ffaa00", GradientDirection: "45deg", AnimationEnabled: true},
		{Name: "ocean_nickname", DisplayName: "🌊 Океанский", ElementType: domain.ElementNickname, Color1: "#00d2ff", Color2: "#3a7bd5", GradientDirection: "45deg"},
		{Name: "purple_nickname", DisplayName: "🔮 Фиолетовый", ElementType: domain.ElementNickname, Color1: "#667eea", Color2: "#764ba2", GradientDirection: "45deg"},
		{Name: "rainbow_nickname", DisplayName: "🌈 Радужный", ElementType: domain.ElementNickname, Color1: "#ff0000", Color2: "#ffff00", Color3: "#00ff00", GradientDirection: "90deg", AnimationEnabled: true},

		// Stats gradients
		{Name: "gold_stats", DisplayName: "🥇 Золотая статистика", ElementType: domain.ElementStats, Color1: "#ffd700", Color2: "#ffed4e", GradientDirection: "45deg"},
		{Name: "emerald_stats", DisplayName: "💎 Изумрудная статистика", ElementType: domain.ElementStats, Color1: "#50c878", Color2: "#00ff7f", GradientDirection: "45deg"},
		{Name: "blood_stats", DisplayName: "🩸 Кровавая статистика", ElementType: domain.ElementStats, Color1: "#dc143c", Color2: "#ff1744", GradientDirection: "45deg"},

		// Individual stat gradients
		{Name: "fire_kills", DisplayName: "🔥 Огненные киллы", ElementType: domain.ElementKills, Color1: "#ff6b35", Color2: "#f7931e", GradientDirection: "45deg", AnimationEnabled: true},
		{Name: "ice_deaths", DisplayName: "❄️ Ледяные смерти", ElementType: domain.ElementDeaths, Color1: "#74b9ff", Color2: "#0984e3", GradientDirection: "45deg"},
		{Name: "golden_wins", DisplayName: "🏆 Золотые победы", ElementType: domain.ElementWins, Color1: "#ffd700", Color2: "#ffaa00", GradientDirection: "45deg", AnimationEnabled: true},
		{Name: "diamond_beds", DisplayName: "💎 Алмазные кровати", ElementType: domain.ElementBeds, Color1: "#74b9ff", Color2: "#0984e3", Color3: "#6c5ce7", GradientDirection: "45deg"},

		// Title gradients
		{Name: "legendary_title", DisplayName: "👑 Легендарный титул", ElementType: domain.ElementTitle, Color1: "#ffd700", Color2: "#ff6b35", Color3: "#8e44ad", GradientDirection: "45deg", AnimationEnabled: true},
		{Name: "crystal_title", DisplayName: "💎 Кристальный титул", ElementType: domain.ElementTitle, Color1: "#74b9ff", Color2: "#0984e3", Color3: "#6c5ce7", GradientDirection: "45deg"},

		// Status gradients
		{Name: "sunset_status", DisplayName: "🌅 Закатный статус", ElementType: domain.ElementStatus, Color1: "#ff6b35", Color2: "#f7931e", GradientDirection: "45deg"},
		{Name: "ocean_status", DisplayName: "🌊 Океанский статус", ElementType: domain.ElementStatus, Color1: "#00d2ff", Color2: "#3a7bd5", GradientDirection: "45deg"},
		{Name: "mystic_status", DisplayName: "🔮 Мистический статус", ElementType: domain.ElementStatus, Color1: "#667eea", Color2: "#764ba2", GradientDirection: "45deg", AnimationEnabled: true},

		// Bio gradients
		{Name: "elegant_bio", DisplayName: "✨ Элегантное био", ElementType: domain.ElementBio, Color1: "#ffd700", Color2: "#ffed4e", GradientDirection: "45deg"},
		{Name: "royal_bio", DisplayName: "👑 Королевское био", ElementType: domain.ElementBio, Color1: "#8e44ad", Color2: "#3498db", GradientDirection: "45deg"},
		{Name: "cosmic_bio", DisplayName: "🌌 Космическое био", ElementType: domain.ElementBio, Color1: "#667eea", Color2: "#764ba2", Color3: "#f093fb", GradientDirection: "45deg", AnimationEnabled: true},

		// Role gradients
		{Name: "admin_role", DisplayName: "👑 Администраторская роль", ElementType: domain.ElementRole, Color1: "#ff6b35", Color2: "#f7931e", GradientDirection: "45deg", AnimationEnabled: true},
		{Name: "vip_role", DisplayName: "💎 VIP роль", ElementType: domain.ElementRole, Color1: "#8e44ad", Color2: "#3498db", GradientDirection: "45deg"},
		{Name: "pro_role", DisplayName: "⭐ Профессиональная роль", ElementType: domain.ElementRole, Color1: "#28a745", Color2: "#20c997", GradientDirection: "45deg"},
	}
}
