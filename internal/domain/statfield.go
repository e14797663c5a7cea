package domain

// StatField names a trackable player counter. Quest types and achievement
// condition keys resolve through the accessor table below instead of
// reflection, so an unknown name always reads as zero.
type StatField string

const (
	StatKills            StatField = "kills"
	StatFinalKills       StatField = "final_kills"
	StatDeaths           StatField = "deaths"
	StatBedsBroken       StatField = "beds_broken"
	StatGamesPlayed      StatField = "games_played"
	StatWins             StatField = "wins"
	StatExperience       StatField = "experience"
	StatIronCollected    StatField = "iron_collected"
	StatGoldCollected    StatField = "gold_collected"
	StatDiamondCollected StatField = "diamond_collected"
	StatEmeraldCollected StatField = "emerald_collected"
	StatItemsPurchased   StatField = "items_purchased"
)

var statAccessors = map[StatField]func(*Player) int{
	StatKills:            func(p *Player) int { return p.Kills },
	StatFinalKills:       func(p *Player) int { return p.FinalKills },
	StatDeaths:           func(p *Player) int { return p.Deaths },
	StatBedsBroken:       func(p *Player) int { return p.BedsBroken },
	StatGamesPlayed:      func(p *Player) int { return p.GamesPlayed },
	StatWins:             func(p *Player) int { return p.Wins },
	StatExperience:       func(p *Player) int { return p.Experience },
	StatIronCollected:    func(p *Player) int { return p.IronCollected },
	StatGoldCollected:    func(p *Player) int { return p.GoldCollected },
	StatDiamondCollected: func(p *Player) int { return p.DiamondCollected },
	StatEmeraldCollected: func(p *Player) int { return p.EmeraldCollected },
	StatItemsPurchased:   func(p *Player) int { return p.ItemsPurchased },
}

var statSetters = map[StatField]func(*Player, int){
	StatKills:            func(p *Player, v int) { p.Kills = v },
	StatFinalKills:       func(p *Player, v int) { p.FinalKills = v },
	StatDeaths:           func(p *Player, v int) { p.Deaths = v },
	StatBedsBroken:       func(p *Player, v int) { p.BedsBroken = v },
	StatGamesPlayed:      func(p *Player, v int) { p.GamesPlayed = v },
	StatWins:             func(p *Player, v int) { p.Wins = v },
	StatExperience:       func(p *Player, v int) { p.Experience = v },
	StatIronCollected:    func(p *Player, v int) { p.IronCollected = v },
	StatGoldCollected:    func(p *Player, v int) { p.GoldCollected = v },
	StatDiamondCollected: func(p *Player, v int) { p.DiamondCollected = v },
	StatEmeraldCollected: func(p *Player, v int) { p.EmeraldCollected = v },
	StatItemsPurchased:   func(p *Player, v int) { p.ItemsPurchased = v },
}

// SetStatValue sets the named counter and reports whether the field exists
func (p *Player) SetStatValue(field string, value int) bool {
	fn, ok := statSetters[StatField(field)]
	if ok {
		fn(p, value)
	}
	return ok
}

// StatValue returns the current value of the named counter, or 0 for an
// unknown field name.
func (p *Player) StatValue(field string) int {
	if fn, ok := statAccessors[StatField(field)]; ok {
		return fn(p)
	}
	return 0
}

// IsKnownStatField reports whether field names one of the tracked counters
func IsKnownStatField(field string) bool {
	_, ok := statAccessors[StatField(field)]
	return ok
}

// StatFields lists all tracked counter names
func StatFields() []StatField {
	return []StatField{
		StatKills, StatFinalKills, StatDeaths, StatBedsBroken,
		StatGamesPlayed, StatWins, StatExperience,
		StatIronCollected, StatGoldCollected, StatDiamondCollected,
		StatEmeraldCollected, StatItemsPurchased,
	}
}
