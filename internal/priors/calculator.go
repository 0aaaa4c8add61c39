package priors

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/lox/handtrack/internal/stats"
	"github.com/lox/handtrack/internal/store"
)

// DefaultTagMinHands is the minimum sample before a behavioral tag is
// assigned. Deliberately low so small datasets still get tagged; the
// production intent was 50.
const DefaultTagMinHands = 10

// Profile tags.
const (
	TagUnknown = "Unknown"
	TagStation = "Bluff-Heavy/Station"
	TagNit     = "Under-Bluffing/Nit"
	TagRegular = "Regular"
)

// Calculator recomputes the player_priors table from the full event log.
// Each run is a complete replacement: every row is derived from scratch and
// upserted whole, so re-running on unchanged data is a no-op.
type Calculator struct {
	Store       *store.Store
	Logger      *log.Logger
	TagMinHands int // DefaultTagMinHands when zero
}

// Run recomputes and persists priors for every player with at least one
// recorded event. It returns the number of rows written.
func (c *Calculator) Run() (int, error) {
	events, err := c.Store.AllEvents()
	if err != nil {
		return 0, err
	}

	analyzer := stats.NewAnalyzer(events)
	base := analyzer.PreflopCounts()
	if len(base) == 0 {
		return 0, nil
	}

	profiles := analyzer.PostflopProfiles()
	strengths := averageStrengths(events)

	written := 0
	for _, b := range base {
		row := store.PlayerPriors{
			PlayerID:      b.PlayerID,
			TotalHands:    b.TotalHands,
			VPIPHands:     b.VPIPHands,
			PFRHands:      b.PFRHands,
			ThreeBetHands: b.ThreeBetHands,
			VPIPPct:       b.VPIPPct,
			PFRPct:        b.PFRPct,
			ThreeBetPct:   b.ThreeBetPct,
		}

		profile := profiles[b.PlayerID]
		if profile.FlopsSeen > 0 {
			row.WTSDPct = round2(float64(profile.ShowdownsSeen) / float64(profile.FlopsSeen) * 100)
			row.WWSFPct = round2(float64(profile.FlopsWon) / float64(profile.FlopsSeen) * 100)
		}
		if profile.ShowdownsSeen > 0 {
			row.WSDPct = round2(float64(profile.ShowdownsWon) / float64(profile.ShowdownsSeen) * 100)
		}
		if profile.RiverRaiseOpps > 0 {
			row.RiverBluffFreq = round2(float64(profile.RiverBluffs) / float64(profile.RiverRaiseOpps) * 100)
		}

		row.AvgShowdownStrength = strengths[b.PlayerID]
		row.ProfileTag = c.profileTag(row.TotalHands, row.AvgShowdownStrength)

		if err := c.Store.SavePriors(row); err != nil {
			return written, fmt.Errorf("save priors for %s: %w", b.PlayerID, err)
		}
		written++
	}

	if c.Logger != nil {
		c.Logger.Info("recomputed player priors", "players", written, "events", len(events))
	}
	return written, nil
}

// profileTag classifies a player from their average revealed hand strength.
// Players who reach showdown with consistently weak hands are over-bluffing
// or over-calling; consistently strong revealed hands mark an under-bluffer.
func (c *Calculator) profileTag(totalHands int, avgStrength float64) string {
	minHands := c.TagMinHands
	if minHands <= 0 {
		minHands = DefaultTagMinHands
	}
	if totalHands < minHands {
		return TagUnknown
	}
	switch {
	case avgStrength > 0 && avgStrength <= 1.5:
		return TagStation
	case avgStrength >= 3.0:
		return TagNit
	default:
		return TagRegular
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
