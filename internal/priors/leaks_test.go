package priors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handtrack/internal/store"
)

func findingsContain(findings []string, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func TestAnalyzeLeaksCallingStation(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{WTSDPct: 50, WSDPct: 55, WWSFPct: 48})
	require.Len(t, findings, 1)
	assert.True(t, findingsContain(findings, "Calling Station"))
}

func TestAnalyzeLeaksOverFolding(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{WTSDPct: 20, WSDPct: 55, WWSFPct: 48})
	assert.True(t, findingsContain(findings, "folding too much"))
}

func TestAnalyzeLeaksShowdownLosses(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{WTSDPct: 28, WSDPct: 40, WWSFPct: 48})
	assert.True(t, findingsContain(findings, "Losing at showdown"))
}

func TestAnalyzeLeaksGivingUp(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{WTSDPct: 28, WSDPct: 55, WWSFPct: 30})
	assert.True(t, findingsContain(findings, "Giving up too easily"))
}

func TestAnalyzeLeaksStacksFindings(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{WTSDPct: 50, WSDPct: 40, WWSFPct: 30})
	assert.Len(t, findings, 3)
}

func TestAnalyzeLeaksAllClear(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{WTSDPct: 28, WSDPct: 55, WWSFPct: 48})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "look solid")
}

func TestAnalyzeLeaksZeroesAreNoData(t *testing.T) {
	findings := AnalyzeLeaks(store.PlayerPriors{})
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], "look solid")
}
