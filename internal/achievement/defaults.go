package achievement

import "github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"

// defaultAchievements is the standard set created on first run
func defaultAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			Title:           "Новичок",
			Description:     "Сыграйте первую игру",
			Icon:            "fas fa-baby",
			Rarity:          domain.RarityCommon,
			UnlockCondition: `{"games_played": 1}`,
			RewardXP:        50,
		},
		{
			Title:           "Неудержимый",
			Description:     "Убейте 100 игроков",
			Icon:            "fas fa-fire",
			Rarity:          domain.RarityRare,
			UnlockCondition: `{"kills": 100}`,
			RewardXP:        250,
			IsHidden:        true,
		},
		{
			Title:           "Коллекционер",
			Description:     "Соберите 5000 единиц ресурсов",
			Icon:            "fas fa-coins",
			Rarity:          domain.RarityEpic,
			UnlockCondition: `{"total_resources": 5000}`,
			RewardXP:        500,
			IsHidden:        true,
		},
		{
			Title:           "Мастер Bedwars",
			Description:     "Достигните K/D соотношения 3.0",
			Icon:            "fas fa-crown",
			Rarity:          domain.RarityLegendary,
			UnlockCondition: `{"kd_ratio": 3.0}`,
			RewardXP:        1000,
		},
	}
}

// seasonalAchievements is the admin-triggered seasonal set
func seasonalAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			Title:           "Новогодний воин",
			Description:     "Убейте 100 игроков в зимнем сезоне",
			UnlockCondition: `{"kills": 100}`,
			Rarity:          domain.RarityEpic,
			RewardXP:        1000,
			RewardTitle:     "Зимний воин",
			Icon:            "fas fa-snowflake",
		},
		{
			Title:           "Летний чемпион",
			Description:     "Выиграйте 50 игр летом",
			UnlockCondition: `{"wins": 50}`,
			Rarity:          domain.RarityLegendary,
			RewardXP:        2000,
			RewardTitle:     "Летняя легенда",
			Icon:            "fas fa-sun",
		},
		{
			Title:           "Коллекционер ресурсов",
			Description:     "Соберите 10000 единиц ресурсов",
			UnlockCondition: `{"total_resources": 10000}`,
			Rarity:          domain.RarityRare,
			RewardXP:        750,
			RewardTitle:     "Мастер ресурсов",
			Icon:            "fas fa-gem",
			IsHidden:        true,
		},
		{
			Title:           "Весенний освободитель",
			Description:     "Сломайте 25 кроватей весной",
			UnlockCondition: `{"beds_broken": 25}`,
			Rarity:          domain.RarityRare,
			RewardXP:        800,
			RewardTitle:     "Весенний разрушитель",
			Icon:            "fas fa-leaf",
		},
		{
			Title:           "Осенний стратег",
			Description:     "Достигните 70% процента побед",
			UnlockCondition: `{"win_rate": 70.0}`,
			Rarity:          domain.RarityLegendary,
			RewardXP:        1500,
			RewardTitle:     "Мастер стратегии",
			Icon:            "fas fa-chess",
			IsHidden:        true,
		},
	}
}
