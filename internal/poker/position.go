package poker

import (
	"fmt"
	"sort"
)

// PositionUnknown labels hands where the action-order rank or the number of
// participants could not be determined.
const PositionUnknown = "Unknown"

// positionOrder is the fixed display and grouping order for position labels.
// Unrecognized labels sort after Unknown, alphabetically.
var positionOrder = []string{
	"BTN/SB", "SB", "BB", "UTG", "UTG+1", "MP", "MP+1", "HJ", "CO", "BTN",
	PositionUnknown,
}

// MapPosition names the table position of the player who acted rank-th first
// preflop (1-based) at a table of n participants. The mapping is a heuristic
// over action order, not an authoritative button field, and is a pure
// function of (rank, n).
func MapPosition(rank, n int) string {
	if rank <= 0 || n <= 0 {
		return PositionUnknown
	}

	if n == 2 {
		switch rank {
		case 1:
			return "BTN/SB"
		case 2:
			return "BB"
		}
		return fmt.Sprintf("Pos %d", rank)
	}

	switch {
	case rank == 1:
		return "SB"
	case rank == 2:
		return "BB"
	case rank == n:
		return "BTN"
	case rank == n-1:
		return "CO"
	case rank == n-2:
		return "HJ"
	}

	switch rank {
	case 3:
		return "UTG"
	case 4:
		if n >= 8 {
			return "UTG+1"
		}
		return "MP"
	case 5:
		if n >= 9 {
			return "MP"
		}
		return "MP+1"
	case 6:
		return "MP+1"
	}

	return fmt.Sprintf("Pos %d", rank)
}

// SortPositions orders labels by the fixed position sequence, with anything
// unrecognized trailing in alphabetical order.
func SortPositions(labels []string) {
	rank := make(map[string]int, len(positionOrder))
	for i, p := range positionOrder {
		rank[p] = i
	}
	sort.SliceStable(labels, func(i, j int) bool {
		ri, iKnown := rank[labels[i]]
		rj, jKnown := rank[labels[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
}
