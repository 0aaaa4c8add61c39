// Package priors computes the durable per-player profile table: long-term
// showdown tendencies, bluff frequency, average revealed hand strength and a
// coarse behavioral tag.
package priors

import (
	"encoding/json"
	"strings"

	"github.com/lox/handtrack/internal/poker"
	"github.com/lox/handtrack/internal/store"
)

// HandStrength maps a showdown hand description onto an ordinal scale:
// 8 for a royal or straight flush down to 0 for high card or anything
// unrecognized. Matching is by keyword, so "flush" must be checked after
// the stronger flush-containing categories.
func HandStrength(description string) int {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "royal flush"), strings.Contains(desc, "straight flush"):
		return 8
	case strings.Contains(desc, "four of a kind"), strings.Contains(desc, "quads"):
		return 7
	case strings.Contains(desc, "full house"):
		return 6
	case strings.Contains(desc, "flush"):
		return 5
	case strings.Contains(desc, "straight"):
		return 4
	case strings.Contains(desc, "three of a kind"), strings.Contains(desc, "set"), strings.Contains(desc, "trips"):
		return 3
	case strings.Contains(desc, "two pair"):
		return 2
	case strings.Contains(desc, "pair"):
		return 1
	default:
		return 0
	}
}

// showdownDescription extracts a hand description from a raw showdown
// payload. The client nests it under hand.name or hand.description; when
// neither is present the whole payload text is used as a last resort.
// Payloads that are not valid JSON are skipped, not errors.
func showdownDescription(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", false
	}
	if hand, ok := payload["hand"].(map[string]any); ok {
		if s, ok := hand["name"].(string); ok && s != "" {
			return s, true
		}
		if s, ok := hand["description"].(string); ok && s != "" {
			return s, true
		}
	}
	return string(raw), true
}

// averageStrengths averages the parseable, non-zero strength scores revealed
// by each player across all show and showdown-street events.
func averageStrengths(events []store.Event) map[string]float64 {
	scores := make(map[string][]int)
	for _, e := range events {
		if e.Action != poker.Show && e.Street != poker.Showdown {
			continue
		}
		desc, ok := showdownDescription(e.Raw)
		if !ok {
			continue
		}
		scores[e.PlayerID] = append(scores[e.PlayerID], HandStrength(desc))
	}

	averages := make(map[string]float64, len(scores))
	for playerID, values := range scores {
		sum, n := 0, 0
		for _, v := range values {
			if v > 0 {
				sum += v
				n++
			}
		}
		if n > 0 {
			averages[playerID] = round2(float64(sum) / float64(n))
		}
	}
	return averages
}
