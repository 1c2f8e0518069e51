package matchfetcher

import (
	"encoding/json"
	"testing"

	"shootystats/pkg/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "metadata": {"map": "Ascent", "matchid": "m-1", "mode": "Competitive", "rounds_played": 2},
  "players": {"all_players": [
    {"puuid": "p1", "name": "swu", "tag": "rango", "team": "Red", "stats": {"kills": 2, "deaths": 0, "assists": 1}},
    {"puuid": "p2", "name": "ewu", "tag": "KR2", "team": "Blue", "stats": {"kills": 0, "deaths": 2, "assists": 0}}
  ]},
  "rounds": [
    {"winning_team": "Red", "player_stats": [
      {"player_puuid": "p1", "kills": 1,
       "kill_events": [{"kill_time_in_round": 4200, "killer_puuid": "p1", "victim_puuid": "p2", "assistants": [{"assistant_puuid": "p3"}]}],
       "damage_events": [{"receiver_puuid": "p2", "damage": 140}]}
    ]},
    {"winning_team": "Red", "player_stats": [
      {"player_puuid": "p1", "kills": 1,
       "kill_events": [{"kill_time_in_round": 800, "victim_puuid": "p2"}]}
    ]}
  ]
}`

func TestTelemetryConversion(t *testing.T) {
	var match MatchData
	require.NoError(t, json.Unmarshal([]byte(samplePayload), &match))

	telemetry := match.Telemetry()

	require.Len(t, telemetry.Players, 2)
	assert.Equal(t, stats.PlayerID("p1"), telemetry.Players[0].ID)
	assert.Equal(t, "Red", telemetry.Players[0].Team)
	assert.Equal(t, 2, telemetry.Players[0].Kills)

	require.Len(t, telemetry.Rounds, 2)
	assert.Equal(t, 1, telemetry.Rounds[0].Index)
	assert.Equal(t, 2, telemetry.Rounds[1].Index)

	record := telemetry.Rounds[0].PlayerStats[0]
	require.Len(t, record.KillEvents, 1)
	assert.Equal(t, stats.PlayerID("p2"), record.KillEvents[0].Victim)
	assert.Equal(t, 4200, record.KillEvents[0].TimeMs)
	assert.Equal(t, []stats.PlayerID{"p3"}, record.KillEvents[0].Assistants)
	require.Len(t, record.DamageEvents, 1)
	assert.Equal(t, 140, record.DamageEvents[0].Damage)
}

// Events reported without a killer belong to the record's owner.
func TestTelemetryConversionKillerFallback(t *testing.T) {
	var match MatchData
	require.NoError(t, json.Unmarshal([]byte(samplePayload), &match))

	telemetry := match.Telemetry()

	event := telemetry.Rounds[1].PlayerStats[0].KillEvents[0]
	assert.Equal(t, stats.PlayerID("p1"), event.Killer)
}

// Absent event lists convert to empty sequences, not errors.
func TestTelemetryConversionMissingFields(t *testing.T) {
	payload := `{
	  "metadata": {"map": "Bind", "matchid": "m-2", "rounds_played": 1},
	  "players": {"all_players": [{"puuid": "p1", "team": "Red", "stats": {}}]},
	  "rounds": [{"player_stats": [{"player_puuid": "p1", "kills": 0}]}]
	}`

	var match MatchData
	require.NoError(t, json.Unmarshal([]byte(payload), &match))

	telemetry := match.Telemetry()
	record := telemetry.Rounds[0].PlayerStats[0]
	assert.Empty(t, record.KillEvents)
	assert.Empty(t, record.DamageEvents)

	// And the engine accepts it as a quiet round.
	results, err := stats.Calculate(telemetry)
	require.NoError(t, err)
	assert.Equal(t, 1, results["p1"].RoundsSurvived)
}
