package stats

// kastCategory is the clause that decided a player's KAST qualification,
// checked in the fixed order kill, assist, survive, trade. The KAST boolean
// itself is a plain OR of the four clauses; the category only drives the
// auxiliary per category round counters.
type kastCategory int

const (
	categoryNone kastCategory = iota
	categoryKill
	categoryAssist
	categorySurvive
	categoryTrade
)

// roundVerdict holds the independent qualification results for one player in
// one round.
type roundVerdict struct {
	kill       bool
	assist     bool
	survive    bool
	trade      bool
	firstKill  bool
	firstDeath bool
	multiKill  bool
}

func (v roundVerdict) kast() bool {
	return v.kill || v.assist || v.survive || v.trade
}

func (v roundVerdict) category() kastCategory {
	switch {
	case v.kill:
		return categoryKill
	case v.assist:
		return categoryAssist
	case v.survive:
		return categorySurvive
	case v.trade:
		return categoryTrade
	}
	return categoryNone
}

// qualifyRound evaluates every roster player against the reconstructed round.
func qualifyRound(view *roundView, ros *roster) map[PlayerID]roundVerdict {
	assists := explicitAssists(view, ros)

	var first *KillEvent
	if len(view.events) > 0 {
		first = &view.events[0]
	}

	verdicts := make(map[PlayerID]roundVerdict, len(ros.players))
	for id := range ros.players {
		var v roundVerdict

		v.kill = view.kills[id] > 0
		v.multiKill = view.kills[id] >= multiKillThreshold

		// The damage fallback only applies to players with zero explicit
		// assists, so the two clauses are never both counted.
		if assists[id] > 0 {
			v.assist = true
		} else {
			v.assist = damageAssist(view, id)
		}

		_, v.survive = view.survivors[id]

		if view.deaths[id] == 1 {
			v.trade = traded(view, ros, id)
		}

		// First blood goes to the earliest event of the round only.
		if first != nil {
			v.firstKill = first.Killer == id
			v.firstDeath = first.Victim == id
		}

		verdicts[id] = v
	}

	return verdicts
}

// explicitAssists counts the assists reported on the kill events themselves.
// Assistants missing from the roster are skipped rather than rejected, since
// the upstream assist lists are the least reliable part of the telemetry.
func explicitAssists(view *roundView, ros *roster) map[PlayerID]int {
	counts := make(map[PlayerID]int)
	for _, event := range view.events {
		for _, assistant := range event.Assistants {
			if ros.has(assistant) {
				counts[assistant]++
			}
		}
	}
	return counts
}

// damageAssist reports whether the player dealt significant damage to anyone
// who died this round. Stops at the first qualifying damage event.
func damageAssist(view *roundView, id PlayerID) bool {
	for _, d := range view.damage[id] {
		if d.Damage >= assistDamageMin && view.deaths[d.Receiver] > 0 {
			return true
		}
	}
	return false
}

// traded reports whether a teammate killed this player's own killer strictly
// after the player's death and within the trade window. A teammate kill on an
// unrelated enemy never counts.
func traded(view *roundView, ros *roster, id PlayerID) bool {
	var deathTime int
	var killer PlayerID
	found := false
	for _, event := range view.events {
		if event.Victim == id {
			deathTime = event.TimeMs
			killer = event.Killer
			found = true
			break
		}
	}
	if !found {
		return false
	}

	team := ros.team(id)
	for _, event := range view.events {
		delta := event.TimeMs - deathTime
		if delta <= 0 {
			continue
		}
		// Events are time sorted, nothing later can be inside the window.
		if delta > tradeWindowMs {
			return false
		}
		if event.Victim == killer && ros.team(event.Killer) == team {
			return true
		}
	}
	return false
}
