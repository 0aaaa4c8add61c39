package main

import (
	"fmt"

	"github.com/lox/handtrack/internal/priors"
)

// TargetsCmd ranks opponents with a meaningful sample by how often they go
// to showdown. Frequent showdown-goers are the profitable value targets.
type TargetsCmd struct {
	MinHands int `default:"50" help:"Minimum hands observed before a player qualifies"`
}

func (c *TargetsCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}
	defer e.Close()

	rows, err := e.store.ExploitTargets(c.MinHands)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println(dimStyle.Render(fmt.Sprintf("No players with %d+ hands yet.", c.MinHands)))
		return nil
	}

	names, err := e.store.DisplayNames()
	if err != nil {
		return err
	}

	fmt.Println(title("Exploit Targets"))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-36s %6s %7s %7s %6s  %s",
		"Player", "Hands", "WTSD%", "WSD%", "AvgSD", "Tag")))
	for _, p := range rows {
		label := p.PlayerID
		if name, ok := names[p.PlayerID]; ok && name != "" {
			label = fmt.Sprintf("%s (%s)", name, p.PlayerID)
		}
		line := fmt.Sprintf("%-36s %6d %7.2f %7.2f %6.2f  %s",
			label, p.TotalHands, p.WTSDPct, p.WSDPct, p.AvgShowdownStrength, p.ProfileTag)
		if p.ProfileTag == priors.TagStation {
			line = warnStyle.Render(line)
		}
		fmt.Println(line)
	}
	return nil
}
