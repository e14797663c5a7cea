package quest

import "github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"

// defaultQuests is the standing quest set the panel ships with. Display
// strings stay in Russian to match the panel UI.
func defaultQuests() []domain.Quest {
	return []domain.Quest{
		{
			Title:       "Первая кровь",
			Description: "Убейте 10 игроков в режиме Bedwars",
			Type:        string(domain.StatKills),
			TargetValue: 10,
			RewardXP:    100,
			RewardTitle: "Воин",
			Icon:        "fas fa-sword",
			Difficulty:  domain.DifficultyEasy,
		},
		{
			Title:       "Разрушитель кроватей",
			Description: "Сломайте 5 кроватей противников",
			Type:        string(domain.StatBedsBroken),
			TargetValue: 5,
			RewardXP:    150,
			RewardTitle: "Разрушитель",
			Icon:        "fas fa-bed",
			Difficulty:  domain.DifficultyEasy,
		},
		{
			Title:       "Победитель",
			Description: "Выиграйте 10 игр",
			Type:        string(domain.StatWins),
			TargetValue: 10,
			RewardXP:    200,
			RewardTitle: "Чемпион",
			Icon:        "fas fa-trophy",
			Difficulty:  domain.DifficultyMedium,
		},
		{
			Title:       "Убийца",
			Description: "Убейте 100 игроков",
			Type:        string(domain.StatKills),
			TargetValue: 100,
			RewardXP:    500,
			RewardTitle: "Убийца",
			Icon:        "fas fa-skull",
			Difficulty:  domain.DifficultyMedium,
		},
		{
			Title:       "Финальный удар",
			Description: "Совершите 25 финальных убийств",
			Type:        string(domain.StatFinalKills),
			TargetValue: 25,
			RewardXP:    300,
			RewardTitle: "Палач",
			Icon:        "fas fa-lightning-bolt",
			Difficulty:  domain.DifficultyMedium,
		},
		{
			Title:       "Коллекционер алмазов",
			Description: "Соберите 1000 алмазов",
			Type:        string(domain.StatDiamondCollected),
			TargetValue: 1000,
			RewardXP:    400,
			RewardTitle: "Кладоискатель",
			Icon:        "fas fa-gem",
			Difficulty:  domain.DifficultyHard,
		},
		{
			Title:       "Легенда Bedwars",
			Description: "Достигните 50 побед",
			Type:        string(domain.StatWins),
			TargetValue: 50,
			RewardXP:    1000,
			RewardTitle: "Легенда",
			Icon:        "fas fa-crown",
			Difficulty:  domain.DifficultyEpic,
		},
		{
			Title:       "Мастер ресурсов",
			Description: "Соберите 10000 единиц железа",
			Type:        string(domain.StatIronCollected),
			TargetValue: 10000,
			RewardXP:    600,
			RewardTitle: "Майнер",
			Icon:        "fas fa-tools",
			Difficulty:  domain.DifficultyHard,
		},
	}
}

func dailyQuests() []domain.Quest {
	return []domain.Quest{
		{Title: "Ежедневный убийца", Description: "Убейте 10 игроков", Type: string(domain.StatKills), TargetValue: 10, Difficulty: domain.DifficultyEasy, RewardXP: 100},
		{Title: "Разрушитель кроватей", Description: "Сломайте 3 кровати", Type: string(domain.StatBedsBroken), TargetValue: 3, Difficulty: domain.DifficultyMedium, RewardXP: 200},
		{Title: "Победитель дня", Description: "Выиграйте 2 игры", Type: string(domain.StatWins), TargetValue: 2, Difficulty: domain.DifficultyMedium, RewardXP: 150},
	}
}

func weeklyQuests() []domain.Quest {
	return []domain.Quest{
		{Title: "Еженедельный воин", Description: "Убейте 100 игроков за неделю", Type: string(domain.StatKills), TargetValue: 100, Difficulty: domain.DifficultyHard, RewardXP: 500},
		{Title: "Мастер финальных убийств", Description: "Совершите 25 финальных убийств", Type: string(domain.StatFinalKills), TargetValue: 25, Difficulty: domain.DifficultyHard, RewardXP: 600},
		{Title: "Недельный чемпион", Description: "Выиграйте 15 игр за неделю", Type: string(domain.StatWins), TargetValue: 15, Difficulty: domain.DifficultyEpic, RewardXP: 800},
	}
}

func monthlyQuests() []domain.Quest {
	return []domain.Quest{
		{Title: "Легенда месяца", Description: "Убейте 500 игроков за месяц", Type: string(domain.StatKills), TargetValue: 500, Difficulty: domain.DifficultyEpic, RewardXP: 2000},
		{Title: "Разрушитель империй", Description: "Сломайте 100 кроватей за месяц", Type: string(domain.StatBedsBroken), TargetValue: 100, Difficulty: domain.DifficultyEpic, RewardXP: 1800},
		{Title: "Непобедимый", Description: "Выиграйте 50 игр за месяц", Type: string(domain.StatWins), TargetValue: 50, Difficulty: domain.DifficultyEpic, RewardXP: 2500, RewardTitle: "Непобедимый"},
	}
}
