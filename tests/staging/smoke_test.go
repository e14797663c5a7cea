//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type leaderboardResponse struct {
	SortBy  string `json:"sort_by"`
	Players []struct {
		Nickname   string `json:"nickname"`
		Experience int    `json:"experience"`
		Level      int    `json:"level"`
	} `json:"players"`
}

func TestLeaderboard(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/leaderboard", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var board leaderboardResponse
	if err := json.Unmarshal(body, &board); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if board.SortBy != "experience" {
		t.Errorf("Expected default sort experience, got %q", board.SortBy)
	}

	// Leaderboard must come back ordered by experience descending
	for i := 1; i < len(board.Players); i++ {
		if board.Players[i].Experience > board.Players[i-1].Experience {
			t.Errorf("Leaderboard out of order at index %d", i)
		}
	}
}

func TestLeaderboardInvalidLimit(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/leaderboard?limit=abc", nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestQuestBoard(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/quests", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var board []json.RawMessage
	if err := json.Unmarshal(body, &board); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/admin/export", nil)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
