package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func TestScenarioTargeter_ProducesKnownRoutes(t *testing.T) {
	s := newScenario("http://svc", "admin-1", 3, 2, 42)
	targeter := s.targeter()

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		var tgt vegeta.Target
		require.NoError(t, targeter(&tgt))
		require.True(t, strings.HasPrefix(tgt.URL, "http://svc/"))

		switch {
		case tgt.Method == http.MethodPost && tgt.URL == "http://svc/contributions":
			seen["contribution"] = true
			assert.Contains(t, s.users, tgt.Header.Get("X-User-ID"))
		case tgt.Method == http.MethodPut && strings.HasSuffix(tgt.URL, "/status"):
			seen["status"] = true
			assert.Equal(t, "admin", tgt.Header.Get("X-User-Role"))
			var body map[string]string
			require.NoError(t, json.Unmarshal(tgt.Body, &body))
			assert.Contains(t, statuses, body["status"])
		case tgt.Method == http.MethodGet && strings.Contains(tgt.URL, "/users/"):
			seen["stats"] = true
		case tgt.Method == http.MethodGet && strings.Contains(tgt.URL, "/stats/leaderboard"):
			seen["leaderboard"] = true
		default:
			t.Fatalf("unexpected target %s %s", tgt.Method, tgt.URL)
		}
	}

	assert.Len(t, seen, 4)
}

func TestCheckCounters(t *testing.T) {
	var ok statsResponse
	ok.Stats.TotalProjects = 4
	ok.Stats.PendingProjects = 1
	ok.Stats.ApprovedProjects = 2
	ok.Stats.RejectedProjects = 1
	assert.Empty(t, checkCounters(ok, 4))

	broken := ok
	broken.Stats.PendingProjects = 2
	assert.Contains(t, checkCounters(broken, 4), "do not add up")

	assert.Contains(t, checkCounters(ok, 5), "expected 5")
}
