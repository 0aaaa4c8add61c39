package stats

import (
	"sort"

	"github.com/lox/handtrack/internal/poker"
)

// PreflopCounts are hand-scoped preflop tendency counters for one player:
// a hand counts once per satisfied predicate no matter how many qualifying
// actions it contains.
type PreflopCounts struct {
	PlayerID      string
	TotalHands    int
	VPIPHands     int
	PFRHands      int
	ThreeBetHands int
	VPIPPct       float64
	PFRPct        float64
	ThreeBetPct   float64
}

// PreflopCounts computes VPIP/PFR/3-bet counters for every player with at
// least one recorded event, ordered by player id.
//
// The 3-bet predicate is deliberately loose: a raise that follows any earlier
// preflop raise in the same hand counts, so genuine 4-bets qualify too.
// Downstream consumers depend on exactly these semantics.
func (a *Analyzer) PreflopCounts() []PreflopCounts {
	totals := make(map[string]map[string]struct{})
	vpip := make(map[string]map[string]struct{})
	pfr := make(map[string]map[string]struct{})
	threeBet := make(map[string]map[string]struct{})

	mark := func(m map[string]map[string]struct{}, playerID, handID string) {
		hands, ok := m[playerID]
		if !ok {
			hands = make(map[string]struct{})
			m[playerID] = hands
		}
		hands[handID] = struct{}{}
	}

	for handID, events := range a.handEvents {
		raiseSeen := false
		for _, e := range events {
			mark(totals, e.PlayerID, handID)
			if e.Street != poker.Preflop {
				continue
			}
			if e.Action.IsVoluntary() {
				mark(vpip, e.PlayerID, handID)
			}
			if e.Action.IsRaise() {
				mark(pfr, e.PlayerID, handID)
				if raiseSeen {
					mark(threeBet, e.PlayerID, handID)
				}
				raiseSeen = true
			}
		}
	}

	rows := make([]PreflopCounts, 0, len(totals))
	for playerID, hands := range totals {
		row := PreflopCounts{
			PlayerID:      playerID,
			TotalHands:    len(hands),
			VPIPHands:     len(vpip[playerID]),
			PFRHands:      len(pfr[playerID]),
			ThreeBetHands: len(threeBet[playerID]),
		}
		row.VPIPPct = pct(row.VPIPHands, row.TotalHands)
		row.PFRPct = pct(row.PFRHands, row.TotalHands)
		row.ThreeBetPct = pct(row.ThreeBetHands, row.TotalHands)
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PlayerID < rows[j].PlayerID })
	return rows
}

// preflopFlags reports, per hand, which preflop predicates one player
// satisfied. Only hands where a flag is set appear in the result.
func (a *Analyzer) preflopFlags(playerID string) map[string]preflopFlag {
	out := make(map[string]preflopFlag)
	for handID, events := range a.handEvents {
		raiseSeen := false
		var f preflopFlag
		for _, e := range events {
			if e.Street != poker.Preflop {
				continue
			}
			if e.Action.IsRaise() {
				if e.PlayerID == playerID {
					f.pfr = true
					if raiseSeen {
						f.threeBet = true
					}
				}
				raiseSeen = true
			}
			if e.PlayerID == playerID && e.Action.IsVoluntary() {
				f.vpip = true
			}
		}
		if f.vpip || f.pfr || f.threeBet {
			out[handID] = f
		}
	}
	return out
}

type preflopFlag struct {
	vpip     bool
	pfr      bool
	threeBet bool
}
