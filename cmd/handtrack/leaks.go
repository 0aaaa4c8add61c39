package main

import (
	"errors"
	"fmt"

	"github.com/lox/handtrack/internal/priors"
	"github.com/lox/handtrack/internal/store"
)

// LeaksCmd checks one player's computed priors against tight-aggressive
// benchmarks and prints the findings. Defaults to the configured hero.
type LeaksCmd struct {
	Player string `help:"Player to analyze (defaults to hero)"`
}

func (c *LeaksCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}
	defer e.Close()

	player := c.Player
	if player == "" {
		player = e.cfg.Tracker.HeroID
	}

	p, err := e.store.GetPriors(player)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Println(dimStyle.Render("No priors for " + player + ". Run `handtrack priors` first."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(title("Leak Analysis: " + player))
	fmt.Printf("Sample: %d hands, WTSD %.2f%%, WSD %.2f%%, WWSF %.2f%%\n\n",
		p.TotalHands, p.WTSDPct, p.WSDPct, p.WWSFPct)
	for _, finding := range priors.AnalyzeLeaks(*p) {
		fmt.Println(warnStyle.Render("• ") + finding)
	}
	return nil
}
