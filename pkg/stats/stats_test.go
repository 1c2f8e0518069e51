package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveVsFivePlayers() []Player {
	players := make([]Player, 0, 10)
	for i := 1; i <= 5; i++ {
		players = append(players, Player{ID: PlayerID(fmt.Sprintf("r%d", i)), Name: fmt.Sprintf("red%d", i), Tag: "NA1", Team: "Red"})
		players = append(players, Player{ID: PlayerID(fmt.Sprintf("b%d", i)), Name: fmt.Sprintf("blue%d", i), Tag: "NA1", Team: "Blue"})
	}
	return players
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part     int
		total    int
		expected int
	}{
		{part: 13, total: 19, expected: 68},
		{part: 0, total: 19, expected: 0},
		{part: 19, total: 19, expected: 100},
		{part: 1, total: 2, expected: 50},
		{part: 13, total: 24, expected: 54},
		{part: 0, total: 0, expected: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, percentage(tt.part, tt.total), "percentage(%d, %d)", tt.part, tt.total)
	}
}

func TestCalculateEmptyMatch(t *testing.T) {
	match := &MatchTelemetry{Map: "Ascent", Players: testPlayers()}

	results, err := Calculate(match)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, s := range results {
		assert.Zero(t, s.KastRounds)
		assert.Zero(t, s.KastPct)
		assert.Zero(t, s.FirstKills)
		assert.Zero(t, s.MultiKillRounds)
	}
}

func TestCalculatePassesThroughSummaryTotals(t *testing.T) {
	players := testPlayers()
	players[0].Kills = 21
	players[0].Deaths = 14
	players[0].Assists = 6

	match := &MatchTelemetry{
		Map:     "Bind",
		Players: players,
		Rounds: []RoundTelemetry{
			// A single round with one kill does not override the totals.
			{Index: 1, PlayerStats: []PlayerRoundRecord{
				{Player: "r1", Kills: 1, KillEvents: []KillEvent{kill("r1", "b1", 500)}},
			}},
		},
	}

	results, err := Calculate(match)
	require.NoError(t, err)

	assert.Equal(t, 21, results["r1"].Kills)
	assert.Equal(t, 14, results["r1"].Deaths)
	assert.Equal(t, 6, results["r1"].Assists)
}

func TestCalculateRejectsBadRoundIndexes(t *testing.T) {
	match := &MatchTelemetry{
		Players: testPlayers(),
		Rounds:  []RoundTelemetry{{Index: 1}, {Index: 3}},
	}

	_, err := Calculate(match)
	require.Error(t, err)

	telemetryErr, ok := err.(*TelemetryError)
	require.True(t, ok)
	assert.Equal(t, 2, telemetryErr.Round)
	assert.Equal(t, "index", telemetryErr.Field)
}

// Trade only increments the trade round counter when it is the clause that
// decided the KAST qualification.
func TestCalculateTradeRoundCounter(t *testing.T) {
	match := &MatchTelemetry{
		Players: testPlayers(),
		Rounds: []RoundTelemetry{
			// r1 dies without anything else and gets avenged: trade round.
			{Index: 1, PlayerStats: []PlayerRoundRecord{
				{Player: "b1", Kills: 1, KillEvents: []KillEvent{kill("b1", "r1", 1000)}},
				{Player: "r2", Kills: 1, KillEvents: []KillEvent{kill("r2", "b1", 2000)}},
			}},
			// r1 got a kill before dying and being avenged: kill decides,
			// no trade round is counted.
			{Index: 2, PlayerStats: []PlayerRoundRecord{
				{Player: "r1", Kills: 1, KillEvents: []KillEvent{kill("r1", "b2", 500)}},
				{Player: "b1", Kills: 1, KillEvents: []KillEvent{kill("b1", "r1", 1000)}},
				{Player: "r2", Kills: 1, KillEvents: []KillEvent{kill("r2", "b1", 2000)}},
			}},
		},
	}

	results, err := Calculate(match)
	require.NoError(t, err)

	assert.Equal(t, 1, results["r1"].TradeRounds)
	assert.Equal(t, 2, results["r1"].KastRounds)
	assert.Equal(t, 1, results["r1"].RoundsWithKill)
}

// Full 19 round match. One five kill round is worth a single multi kill
// credit, and first blood goes to the earliest kill among all players of the
// round, not the multi killer's own first kill.
// A roster player with no round records never died and never acted, so they
// count as a survivor of every round. KAST reaches 100% while every other
// derived counter stays at zero.
func TestCalculateAbsentPlayerSurvivesEveryRound(t *testing.T) {
	match := &MatchTelemetry{
		Map:     "Haven",
		Players: testPlayers(),
		Rounds: []RoundTelemetry{
			{Index: 1, PlayerStats: []PlayerRoundRecord{
				{Player: "r1", Kills: 1, KillEvents: []KillEvent{kill("r1", "b1", 500)}},
			}},
			{Index: 2, PlayerStats: []PlayerRoundRecord{
				{Player: "b2", Kills: 1, KillEvents: []KillEvent{kill("b2", "r1", 700)}},
			}},
		},
	}

	results, err := Calculate(match)
	require.NoError(t, err)

	absent := results["r2"]
	assert.Equal(t, 2, absent.KastRounds)
	assert.Equal(t, 100, absent.KastPct)
	assert.Equal(t, 2, absent.RoundsSurvived)
	assert.Zero(t, absent.FirstKills)
	assert.Zero(t, absent.FirstDeaths)
	assert.Zero(t, absent.MultiKillRounds)
	assert.Zero(t, absent.TradeRounds)
	assert.Zero(t, absent.RoundsWithKill)
	assert.Zero(t, absent.RoundsWithAssist)
}

func TestCalculateEndToEnd(t *testing.T) {
	players := fiveVsFivePlayers()

	rounds := make([]RoundTelemetry, 0, 19)

	// Round 1: r1 gets nothing, b1 picks up first blood on r2.
	rounds = append(rounds, RoundTelemetry{Index: 1, PlayerStats: []PlayerRoundRecord{
		{Player: "b1", Kills: 1, KillEvents: []KillEvent{kill("b1", "r2", 800)}},
	}})

	// Round 2: a single kill for r1.
	rounds = append(rounds, RoundTelemetry{Index: 2, PlayerStats: []PlayerRoundRecord{
		{Player: "r1", Kills: 1, KillEvents: []KillEvent{kill("r1", "b1", 1500)}},
	}})

	// Round 3: nothing recorded at all.
	rounds = append(rounds, RoundTelemetry{Index: 3})

	// Round 4: a double kill, deliberately not a multi kill.
	rounds = append(rounds, RoundTelemetry{Index: 4, PlayerStats: []PlayerRoundRecord{
		{Player: "r1", Kills: 2, KillEvents: []KillEvent{
			kill("r1", "b1", 1000),
			kill("r1", "b2", 2000),
		}},
	}})

	// Round 5: r1 wipes the enemy team, but b3 drew first blood at t=400.
	rounds = append(rounds, RoundTelemetry{Index: 5, PlayerStats: []PlayerRoundRecord{
		{Player: "b3", Kills: 1, KillEvents: []KillEvent{kill("b3", "r5", 400)}},
		{Player: "r1", Kills: 5, KillEvents: []KillEvent{
			kill("r1", "b1", 1000),
			kill("r1", "b2", 1800),
			kill("r1", "b3", 2500),
			kill("r1", "b4", 3100),
			kill("r1", "b5", 4000),
		}},
	}})

	// Rounds 6 through 19: quiet rounds, everyone survives.
	for i := 6; i <= 19; i++ {
		rounds = append(rounds, RoundTelemetry{Index: i})
	}

	match := &MatchTelemetry{Map: "Haven", Players: players, Rounds: rounds}

	results, err := Calculate(match)
	require.NoError(t, err)

	r1 := results["r1"]
	assert.Equal(t, 1, r1.MultiKillRounds, "five kills in one round are still a single credit")
	assert.Equal(t, 3, r1.RoundsWithKill)
	assert.Equal(t, 2, r1.FirstKills, "rounds 2 and 4 only; b3 was earlier on round 5")

	b3 := results["b3"]
	assert.Equal(t, 1, b3.FirstKills)

	b1 := results["b1"]
	assert.Equal(t, 1, b1.FirstKills)

	r5 := results["r5"]
	assert.Equal(t, 1, r5.FirstDeaths)

	// r1 survived every round it was not killed in, so KAST is full.
	assert.Equal(t, 19, r1.KastRounds)
	assert.Equal(t, 100, r1.KastPct)

	// r2 died round 1 untraded, survived elsewhere, killed in none.
	r2 := results["r2"]
	assert.Equal(t, 18, r2.KastRounds)
	assert.Equal(t, 95, r2.KastPct)
}

// Computing many matches concurrently is safe since the engine keeps no
// shared state.
func TestCalculateConcurrent(t *testing.T) {
	match := &MatchTelemetry{
		Players: testPlayers(),
		Rounds: []RoundTelemetry{
			{Index: 1, PlayerStats: []PlayerRoundRecord{
				{Player: "r1", Kills: 1, KillEvents: []KillEvent{kill("r1", "b1", 1000)}},
			}},
		},
	}

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			results, err := Calculate(match)
			if err == nil && results["r1"].RoundsWithKill != 1 {
				err = fmt.Errorf("unexpected result: %+v", results["r1"])
			}
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
