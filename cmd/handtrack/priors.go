package main

import (
	"encoding/json"
	"fmt"

	"github.com/lox/handtrack/internal/fileutil"
	"github.com/lox/handtrack/internal/priors"
)

// PriorsCmd recomputes the long-term player profile table from the full
// event log and optionally exports it as JSON.
type PriorsCmd struct {
	Output string `short:"o" type:"path" help:"Write computed priors to a JSON file"`
}

func (c *PriorsCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}
	defer e.Close()

	calc := &priors.Calculator{
		Store:       e.store,
		Logger:      e.logger,
		TagMinHands: e.cfg.Tracker.TagMinHands,
	}
	written, err := calc.Run()
	if err != nil {
		return err
	}
	if written == 0 {
		fmt.Println(dimStyle.Render("No events ingested yet. Run `handtrack ingest` first."))
		return nil
	}

	names, err := e.store.DisplayNames()
	if err != nil {
		return err
	}
	rows, err := e.store.AllPriors()
	if err != nil {
		return err
	}

	fmt.Println(title("Player Priors"))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-36s %6s %7s %7s %7s %7s %7s %7s %6s  %s",
		"Player", "Hands", "VPIP%", "PFR%", "WTSD%", "WSD%", "WWSF%", "Bluff%", "AvgSD", "Tag")))
	for _, p := range rows {
		label := p.PlayerID
		if name, ok := names[p.PlayerID]; ok && name != "" {
			label = fmt.Sprintf("%s (%s)", name, p.PlayerID)
		}
		fmt.Printf("%-36s %6d %7.2f %7.2f %7.2f %7.2f %7.2f %7.2f %6.2f  %s\n",
			label, p.TotalHands, p.VPIPPct, p.PFRPct, p.WTSDPct, p.WSDPct, p.WWSFPct,
			p.RiverBluffFreq, p.AvgShowdownStrength, p.ProfileTag)
	}

	if c.Output != "" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(c.Output, data, 0o644); err != nil {
			return fmt.Errorf("write priors export: %w", err)
		}
		e.logger.Info("exported priors", "path", c.Output, "players", len(rows))
	}
	return nil
}
