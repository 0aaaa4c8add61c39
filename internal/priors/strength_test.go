package priors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandStrength(t *testing.T) {
	tests := []struct {
		desc string
		want int
	}{
		{"Royal Flush", 8},
		{"Straight Flush, Nine High", 8},
		{"Four of a Kind", 7},
		{"quads", 7},
		{"Full House", 6},
		{"Flush, Ace High", 5},
		{"Straight, Eight High", 4},
		{"Three of a Kind", 3},
		{"Set of Jacks", 3},
		{"trips", 3},
		{"Two Pair", 2},
		{"Pair of Aces", 1},
		{"High Card", 0},
		{"", 0},
		{"gibberish", 0},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, HandStrength(tt.desc))
		})
	}
}

func TestShowdownDescription(t *testing.T) {
	desc, ok := showdownDescription([]byte(`{"hand":{"name":"Two Pair"}}`))
	assert.True(t, ok)
	assert.Equal(t, "Two Pair", desc)

	desc, ok = showdownDescription([]byte(`{"hand":{"description":"Flush, King High"}}`))
	assert.True(t, ok)
	assert.Equal(t, "Flush, King High", desc)

	// No nested hand object: the raw text stands in.
	desc, ok = showdownDescription([]byte(`{"type":12}`))
	assert.True(t, ok)
	assert.Equal(t, `{"type":12}`, desc)

	_, ok = showdownDescription([]byte(`not json`))
	assert.False(t, ok)

	_, ok = showdownDescription(nil)
	assert.False(t, ok)
}
