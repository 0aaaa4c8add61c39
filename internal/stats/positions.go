package stats

import (
	"github.com/lox/handtrack/internal/poker"
)

// positionRanks derives, per hand, each participant's action-order rank (1
// acts first) from the sequence number of their earliest order-establishing
// preflop action, plus the participant count. There is no explicit button
// field in the source data; this inference is what position labels hang off.
func (a *Analyzer) positionRanks() (ranks map[string]map[string]int, participants map[string]int) {
	ranks = make(map[string]map[string]int)
	participants = make(map[string]int)

	for handID, events := range a.handEvents {
		order := make(map[string]int)
		next := 1
		for _, e := range events {
			if e.Street != poker.Preflop || !e.Action.EstablishesOrder() {
				continue
			}
			if _, seen := order[e.PlayerID]; seen {
				continue
			}
			order[e.PlayerID] = next
			next++
		}
		if len(order) == 0 {
			continue
		}
		ranks[handID] = order
		participants[handID] = len(order)
	}
	return ranks, participants
}

// PositionPnL is a player's summed net profit from one table position.
type PositionPnL struct {
	Position string
	Net      float64
}

// PnLByPosition partitions a player's per-hand net profit by inferred table
// position, in the fixed position display order. Hands with no inferable
// rank group under Unknown; summing Net across rows equals the player's
// all-hand net profit.
func (a *Analyzer) PnLByPosition(playerID string) []PositionPnL {
	net := a.HandNet(playerID)
	ranks, participants := a.positionRanks()

	sums := make(map[string]float64)
	for handID, profit := range net {
		position := poker.PositionUnknown
		if rank, ok := ranks[handID][playerID]; ok {
			position = poker.MapPosition(rank, participants[handID])
		}
		sums[position] += profit
	}

	labels := make([]string, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	poker.SortPositions(labels)

	rows := make([]PositionPnL, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, PositionPnL{Position: label, Net: round2(sums[label])})
	}
	return rows
}

// PositionalCounts are one player's preflop tendencies from one position.
type PositionalCounts struct {
	Position      string
	TotalHands    int
	VPIPHands     int
	PFRHands      int
	ThreeBetHands int
	VPIPPct       float64
	PFRPct        float64
	ThreeBetPct   float64
}

// PositionalStats groups a player's preflop tendency counters by inferred
// position. Hands where the player never established an action order are
// omitted; they have no position to attribute.
func (a *Analyzer) PositionalStats(playerID string) []PositionalCounts {
	ranks, participants := a.positionRanks()
	flags := a.preflopFlags(playerID)

	byPosition := make(map[string]*PositionalCounts)
	for handID, order := range ranks {
		rank, ok := order[playerID]
		if !ok {
			continue
		}
		position := poker.MapPosition(rank, participants[handID])
		row, ok := byPosition[position]
		if !ok {
			row = &PositionalCounts{Position: position}
			byPosition[position] = row
		}
		row.TotalHands++
		f := flags[handID]
		if f.vpip {
			row.VPIPHands++
		}
		if f.pfr {
			row.PFRHands++
		}
		if f.threeBet {
			row.ThreeBetHands++
		}
	}

	labels := make([]string, 0, len(byPosition))
	for label := range byPosition {
		labels = append(labels, label)
	}
	poker.SortPositions(labels)

	rows := make([]PositionalCounts, 0, len(labels))
	for _, label := range labels {
		row := byPosition[label]
		row.VPIPPct = pct(row.VPIPHands, row.TotalHands)
		row.PFRPct = pct(row.PFRHands, row.TotalHands)
		row.ThreeBetPct = pct(row.ThreeBetHands, row.TotalHands)
		rows = append(rows, *row)
	}
	return rows
}
