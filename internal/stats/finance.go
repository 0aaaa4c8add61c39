package stats

import (
	"sort"

	"github.com/lox/handtrack/internal/poker"
)

// HandNet reconstructs one player's net profit per hand.
//
// Invested is the sum over streets of the maximum wager the player posted on
// that street: raise amounts are total-to figures, so within a street a later,
// larger amount supersedes an earlier one rather than adding to it. This is
// an approximation adequate for aggregate views, not a cent-exact ledger —
// a raiser's earlier same-street commitment under a different event shape is
// not netted out. Net = collected + returned − invested.
//
// Only hands where the player posted at least one wager produce an entry.
func (a *Analyzer) HandNet(playerID string) map[string]float64 {
	type streetKey struct {
		handID string
		street poker.Street
	}

	maxWager := make(map[streetKey]float64)
	returned := make(map[string]float64)
	collected := make(map[string]float64)

	for _, e := range a.events {
		if e.PlayerID != playerID {
			continue
		}
		switch {
		case e.Action.IsWager():
			k := streetKey{e.HandID, e.Street}
			if cur, ok := maxWager[k]; !ok || e.Amount > cur {
				maxWager[k] = e.Amount
			}
		case e.Action == poker.Returned:
			returned[e.HandID] += e.Amount
		case e.Action == poker.Collect:
			collected[e.HandID] += e.Amount
		}
	}

	invested := make(map[string]float64)
	for k, amount := range maxWager {
		invested[k.handID] += amount
	}

	net := make(map[string]float64, len(invested))
	for handID, inv := range invested {
		net[handID] = collected[handID] + returned[handID] - inv
	}
	return net
}

// PlayerNet is one player's net profit across all recorded hands.
type PlayerNet struct {
	PlayerID string
	Net      float64
}

// NetAll computes every player's all-hand net profit, biggest winner first.
// The dealer pseudo-player is excluded; it never wagers.
func (a *Analyzer) NetAll() []PlayerNet {
	players := make(map[string]struct{})
	for _, e := range a.events {
		if e.PlayerID != poker.DealerID {
			players[e.PlayerID] = struct{}{}
		}
	}

	rows := make([]PlayerNet, 0, len(players))
	for playerID := range players {
		total := 0.0
		for _, profit := range a.HandNet(playerID) {
			total += profit
		}
		rows = append(rows, PlayerNet{PlayerID: playerID, Net: round2(total)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Net != rows[j].Net {
			return rows[i].Net > rows[j].Net
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})
	return rows
}
