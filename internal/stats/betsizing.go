package stats

import "github.com/lox/handtrack/internal/poker"

// SizeBucket classifies a postflop wager by its fraction of the pot.
type SizeBucket string

const (
	BucketSmall  SizeBucket = "Small (<33%)"
	BucketMedium SizeBucket = "Medium (33-66%)"
	BucketLarge  SizeBucket = "Large (>66%)"
)

// SizeBuckets is the fixed column order for the sizing matrix.
var SizeBuckets = []SizeBucket{BucketSmall, BucketMedium, BucketLarge}

func bucketFor(fraction float64) SizeBucket {
	switch {
	case fraction < 0.33:
		return BucketSmall
	case fraction <= 0.66:
		return BucketMedium
	default:
		return BucketLarge
	}
}

// BetSizing builds the player × bucket count matrix over Flop/Turn/River
// bets and raises. Events with a non-positive recorded pot are skipped; the
// fraction would be meaningless.
func (a *Analyzer) BetSizing() map[string]map[SizeBucket]int {
	matrix := make(map[string]map[SizeBucket]int)
	for _, e := range a.events {
		switch e.Street {
		case poker.Flop, poker.Turn, poker.River:
		default:
			continue
		}
		if !e.Action.IsBetOrRaise() || e.PotSize <= 0 {
			continue
		}

		row, ok := matrix[e.PlayerID]
		if !ok {
			row = make(map[SizeBucket]int)
			matrix[e.PlayerID] = row
		}
		row[bucketFor(e.Amount/e.PotSize)]++
	}
	return matrix
}
