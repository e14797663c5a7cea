//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type statsResponse struct {
	Stats struct {
		TotalPlayers int `json:"total_players"`
		TotalKills   int `json:"total_kills"`
	} `json:"stats"`
	Charts struct {
		PlayerLevels map[string]int `json:"player_levels"`
	} `json:"charts"`
}

func TestStats(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/stats", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var stats statsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if stats.Stats.TotalPlayers < 0 {
		t.Errorf("Expected non-negative player count, got %d", stats.Stats.TotalPlayers)
	}
}

func TestAchievementsList(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/achievements", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var achievements []json.RawMessage
	if err := json.Unmarshal(body, &achievements); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
}
