package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatValue(t *testing.T) {
	p := &Player{
		Kills:            10,
		FinalKills:       4,
		Deaths:           7,
		BedsBroken:       3,
		GamesPlayed:      20,
		Wins:             8,
		Experience:       1234,
		IronCollected:    100,
		GoldCollected:    50,
		DiamondCollected: 25,
		EmeraldCollected: 5,
		ItemsPurchased:   60,
	}

	tests := []struct {
		field    string
		expected int
	}{
		{"kills", 10},
		{"final_kills", 4},
		{"deaths", 7},
		{"beds_broken", 3},
		{"games_played", 20},
		{"wins", 8},
		{"experience", 1234},
		{"iron_collected", 100},
		{"gold_collected", 50},
		{"diamond_collected", 25},
		{"emerald_collected", 5},
		{"items_purchased", 60},
		{"no_such_field", 0},
		{"", 0},
		{"Kills", 0}, // field names are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.StatValue(tt.field))
		})
	}
}

func TestIsKnownStatField(t *testing.T) {
	assert.True(t, IsKnownStatField("kills"))
	assert.True(t, IsKnownStatField("diamond_collected"))
	assert.False(t, IsKnownStatField("kd_ratio")) // derived, not a counter
	assert.False(t, IsKnownStatField("bogus"))
}

func TestStatFieldsCoverAccessors(t *testing.T) {
	fields := StatFields()
	assert.Len(t, fields, len(statAccessors))
	for _, f := range fields {
		assert.True(t, IsKnownStatField(string(f)), "missing accessor for %s", f)
	}
}
