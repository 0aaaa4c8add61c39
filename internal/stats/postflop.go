package stats

import "github.com/lox/handtrack/internal/poker"

// PostflopProfile counts the hand outcomes the long-term priors derive from.
//
//   - FlopsSeen: hands where the player acted, a flop was dealt, and the
//     player did not fold preflop.
//   - ShowdownsSeen: hands the player survived (never folded on any street)
//     together with at least one other survivor.
//   - FlopsWon / ShowdownsWon: the subset of each in which the player
//     collected a pot.
//   - RiverRaiseOpps / RiverBluffs: river bets or raises made in the
//     player's showdown hands, and how many of those did not end with the
//     player collecting.
type PostflopProfile struct {
	FlopsSeen      int
	ShowdownsSeen  int
	FlopsWon       int
	ShowdownsWon   int
	RiverBluffs    int
	RiverRaiseOpps int
}

// PostflopProfiles runs the heavier second-pass aggregation behind WTSD%,
// WWSF%, WSD% and river bluff frequency. The dealer pseudo-player and board
// deal events are excluded from participation.
func (a *Analyzer) PostflopProfiles() map[string]PostflopProfile {
	profiles := make(map[string]PostflopProfile)

	for _, events := range a.handEvents {
		flopDealt := false
		participants := make(map[string]struct{})
		foldedPreflop := make(map[string]struct{})
		folded := make(map[string]struct{})
		collected := make(map[string]struct{})
		riverAggressors := make(map[string]struct{})

		for _, e := range events {
			if e.Action == poker.DealFlop {
				flopDealt = true
			}
			if e.PlayerID == poker.DealerID || e.Action.IsBoardDeal() {
				continue
			}
			participants[e.PlayerID] = struct{}{}
			switch {
			case e.Action == poker.Fold:
				folded[e.PlayerID] = struct{}{}
				if e.Street == poker.Preflop {
					foldedPreflop[e.PlayerID] = struct{}{}
				}
			case e.Action == poker.Collect:
				collected[e.PlayerID] = struct{}{}
			case e.Street == poker.River && e.Action.IsBetOrRaise():
				riverAggressors[e.PlayerID] = struct{}{}
			}
		}

		survivors := make(map[string]struct{})
		for p := range participants {
			if _, didFold := folded[p]; !didFold {
				survivors[p] = struct{}{}
			}
		}
		wentToShowdown := len(survivors) > 1

		for p := range participants {
			profile := profiles[p]

			_, won := collected[p]
			if _, foldedPre := foldedPreflop[p]; flopDealt && !foldedPre {
				profile.FlopsSeen++
				if won {
					profile.FlopsWon++
				}
			}

			if _, survived := survivors[p]; survived && wentToShowdown {
				profile.ShowdownsSeen++
				if won {
					profile.ShowdownsWon++
				}
				if _, aggressed := riverAggressors[p]; aggressed {
					profile.RiverRaiseOpps++
					if !won {
						profile.RiverBluffs++
					}
				}
			}

			profiles[p] = profile
		}
	}

	return profiles
}
