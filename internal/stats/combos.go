package stats

import (
	"sort"

	"github.com/lox/handtrack/internal/poker"
)

// ComboPnL aggregates results for one canonical starting-hand combo.
type ComboPnL struct {
	Combo      string
	TimesDealt int
	TotalPnL   float64
}

// PnLByCombo joins a player's revealed hole cards (hand id → raw two-card
// string) with their per-hand net profit, grouped by canonical combo and
// ordered most profitable first. Hands without a financial record (the
// player never wagered) are skipped.
func (a *Analyzer) PnLByCombo(playerID string, holeCards map[string]string) []ComboPnL {
	net := a.HandNet(playerID)

	byCombo := make(map[string]*ComboPnL)
	for handID, cards := range holeCards {
		profit, ok := net[handID]
		if !ok {
			continue
		}
		combo := poker.Combo(cards)
		row, ok := byCombo[combo]
		if !ok {
			row = &ComboPnL{Combo: combo}
			byCombo[combo] = row
		}
		row.TimesDealt++
		row.TotalPnL += profit
	}

	rows := make([]ComboPnL, 0, len(byCombo))
	for _, row := range byCombo {
		row.TotalPnL = round2(row.TotalPnL)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalPnL != rows[j].TotalPnL {
			return rows[i].TotalPnL > rows[j].TotalPnL
		}
		return rows[i].Combo < rows[j].Combo
	})
	return rows
}
