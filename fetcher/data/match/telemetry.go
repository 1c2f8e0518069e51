package matchfetcher

import (
	"shootystats/pkg/stats"
)

// Telemetry converts the raw Henrik payload into the engine's input type.
// The engine itself never sees the Henrik JSON shapes; this is the only
// bridge between the wire format and the stats computation.
func (m *MatchData) Telemetry() *stats.MatchTelemetry {
	telemetry := &stats.MatchTelemetry{
		Map:     m.Metadata.Map,
		Players: make([]stats.Player, 0, len(m.Players.AllPlayers)),
		Rounds:  make([]stats.RoundTelemetry, 0, len(m.Rounds)),
	}

	for _, player := range m.Players.AllPlayers {
		telemetry.Players = append(telemetry.Players, stats.Player{
			ID:      stats.PlayerID(player.Puuid),
			Name:    player.Name,
			Tag:     player.Tag,
			Team:    player.Team,
			Kills:   player.Stats.Kills,
			Deaths:  player.Stats.Deaths,
			Assists: player.Stats.Assists,
		})
	}

	for i, round := range m.Rounds {
		roundTelemetry := stats.RoundTelemetry{
			// Henrik rounds are implicitly ordered; indexes are 1-based.
			Index:       i + 1,
			PlayerStats: make([]stats.PlayerRoundRecord, 0, len(round.PlayerStats)),
		}

		for _, record := range round.PlayerStats {
			converted := stats.PlayerRoundRecord{
				Player: stats.PlayerID(record.PlayerPuuid),
				Kills:  record.Kills,
			}

			for _, event := range record.KillEvents {
				killer := stats.PlayerID(event.KillerPuuid)
				if killer == "" {
					killer = stats.PlayerID(record.PlayerPuuid)
				}

				var assistants []stats.PlayerID
				for _, assistant := range event.Assistants {
					assistants = append(assistants, stats.PlayerID(assistant.AssistantPuuid))
				}

				converted.KillEvents = append(converted.KillEvents, stats.KillEvent{
					Killer:     killer,
					Victim:     stats.PlayerID(event.VictimPuuid),
					TimeMs:     event.KillTimeInRound,
					Assistants: assistants,
				})
			}

			for _, damage := range record.DamageEvents {
				converted.DamageEvents = append(converted.DamageEvents, stats.DamageEvent{
					Receiver: stats.PlayerID(damage.ReceiverPuuid),
					Damage:   damage.Damage,
				})
			}

			roundTelemetry.PlayerStats = append(roundTelemetry.PlayerStats, converted)
		}

		telemetry.Rounds = append(telemetry.Rounds, roundTelemetry)
	}

	return telemetry
}
