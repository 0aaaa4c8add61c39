package priors

import (
	"fmt"

	"github.com/lox/handtrack/internal/store"
)

// DefaultHeroID selects whose tendencies are surfaced as self-diagnostic
// leak findings when no hero is configured.
const DefaultHeroID = "EJd9KHwjJa"

// Leak thresholds against TAG (tight-aggressive) benchmarks. Zero values
// mean "no data" and never trigger a finding.
const (
	wtsdHigh = 32 // above: calling station territory
	wtsdLow  = 25 // below: folding too much before showdown
	wsdLow   = 50 // below: losing at showdown
	wwsfLow  = 45 // below: giving up post-flop
)

// AnalyzeLeaks inspects a profile row and returns human-readable findings.
// When nothing triggers it returns a single all-clear message.
func AnalyzeLeaks(p store.PlayerPriors) []string {
	var findings []string

	if p.WTSDPct > wtsdHigh {
		findings = append(findings, fmt.Sprintf(
			"WTSD%% is %.2f%% (Optimal: 25-30%%). Leaning towards Calling Station tendency.", p.WTSDPct))
	} else if p.WTSDPct < wtsdLow && p.WTSDPct > 0 {
		findings = append(findings, fmt.Sprintf(
			"WTSD%% is %.2f%% (Optimal: 25-30%%). Might be folding too much on earlier streets.", p.WTSDPct))
	}

	if p.WSDPct < wsdLow && p.WSDPct > 0 {
		findings = append(findings, fmt.Sprintf(
			"WSD%% is %.2f%% (Optimal: >50%%). Losing at showdown, calling lightly or bluff-catching badly.", p.WSDPct))
	}

	if p.WWSFPct < wwsfLow && p.WWSFPct > 0 {
		findings = append(findings, fmt.Sprintf(
			"WWSF%% is %.2f%% (Optimal: 45-50%%). Giving up too easily post-flop.", p.WWSFPct))
	}

	if len(findings) == 0 {
		findings = append(findings,
			"Your core stats look solid! No major leaks detected based on TAG benchmarks.")
	}
	return findings
}
