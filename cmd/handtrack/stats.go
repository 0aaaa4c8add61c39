package main

import (
	"fmt"

	"github.com/lox/handtrack/internal/stats"
)

// StatsCmd reports session statistics over everything ingested so far:
// table-wide preflop tendencies and net results, plus positional, sizing and
// combo breakdowns for one focus player.
type StatsCmd struct {
	Player string `help:"Focus player for positional and combo breakdowns (defaults to hero)"`
}

func (c *StatsCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}
	defer e.Close()

	events, err := e.store.AllEvents()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println(dimStyle.Render("No events ingested yet. Run `handtrack ingest` first."))
		return nil
	}

	names, err := e.store.DisplayNames()
	if err != nil {
		return err
	}
	display := func(playerID string) string {
		if name, ok := names[playerID]; ok && name != "" {
			return fmt.Sprintf("%s (%s)", name, playerID)
		}
		return playerID
	}

	analyzer := stats.NewAnalyzer(events)

	fmt.Println(title("Preflop Tendencies"))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-36s %6s %7s %7s %7s", "Player", "Hands", "VPIP%", "PFR%", "3Bet%")))
	for _, row := range analyzer.PreflopCounts() {
		fmt.Printf("%-36s %6d %7.2f %7.2f %7.2f\n",
			display(row.PlayerID), row.TotalHands, row.VPIPPct, row.PFRPct, row.ThreeBetPct)
	}

	fmt.Println(title("Net Results"))
	for _, row := range analyzer.NetAll() {
		fmt.Printf("%-36s %s\n", display(row.PlayerID), money(row.Net))
	}

	fmt.Println(title("Postflop Bet Sizing"))
	sizing := analyzer.BetSizing()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-36s %14s %16s %14s", "Player", "Small (<33%)", "Medium (33-66%)", "Large (>66%)")))
	for _, row := range analyzer.PreflopCounts() {
		counts := sizing[row.PlayerID]
		if len(counts) == 0 {
			continue
		}
		fmt.Printf("%-36s %14d %16d %14d\n", display(row.PlayerID),
			counts[stats.BucketSmall], counts[stats.BucketMedium], counts[stats.BucketLarge])
	}

	player := c.Player
	if player == "" {
		player = e.cfg.Tracker.HeroID
	}
	return c.renderPlayer(e, analyzer, player, display(player))
}

func (c *StatsCmd) renderPlayer(e *env, analyzer *stats.Analyzer, playerID, label string) error {
	fmt.Println(title("Position P&L: " + label))
	for _, row := range analyzer.PnLByPosition(playerID) {
		fmt.Printf("%-10s %s\n", row.Position, money(row.Net))
	}

	fmt.Println(title("Positional Tendencies: " + label))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-10s %6s %7s %7s %7s", "Position", "Hands", "VPIP%", "PFR%", "3Bet%")))
	for _, row := range analyzer.PositionalStats(playerID) {
		fmt.Printf("%-10s %6d %7.2f %7.2f %7.2f\n",
			row.Position, row.TotalHands, row.VPIPPct, row.PFRPct, row.ThreeBetPct)
	}

	cards, err := e.store.HoleCardsForPlayer(playerID)
	if err != nil {
		return err
	}
	combos := analyzer.PnLByCombo(playerID, cards)
	if len(combos) == 0 {
		return nil
	}

	fmt.Println(title("Combo P&L: " + label))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-10s %6s %10s", "Combo", "Dealt", "Net")))
	for _, row := range combos {
		fmt.Printf("%-10s %6d %10s\n", row.Combo, row.TimesDealt, money(row.TotalPnL))
	}
	return nil
}
