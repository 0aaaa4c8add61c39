package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombo(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  string
	}{
		{"suited high first", "As,Ks", "AKs"},
		{"suited low first", "Ks,As", "AKs"},
		{"offsuit", "Jd,Tc", "JTo"},
		{"offsuit reversed", "Tc,Jd", "JTo"},
		{"pair", "Ah,Ad", "AA"},
		{"pair low", "2c,2d", "22"},
		{"ten is T", "Th,9h", "T9s"},
		{"spaces tolerated", "As, Ks", "AKs"},
		{"empty", "", "Unknown"},
		{"one card", "As", "Unknown"},
		{"three cards", "As,Ks,Qs", "Unknown"},
		{"short card", "A,Ks", "Unknown"},
		{"unknown rank passes through", "Xs,Ks", "Xs,Ks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Combo(tt.cards))
		})
	}
}

func TestComboOrderInvariant(t *testing.T) {
	// Canonicalization must not depend on card order.
	pairs := [][2]string{
		{"As,Ks", "Ks,As"},
		{"Jd,Tc", "Tc,Jd"},
		{"Ah,Ad", "Ad,Ah"},
		{"7h,2c", "2c,7h"},
	}
	for _, p := range pairs {
		assert.Equal(t, Combo(p[0]), Combo(p[1]), "combo of %q vs %q", p[0], p[1])
	}
}

func TestRankOfByte(t *testing.T) {
	r, ok := RankOfByte('A')
	assert.True(t, ok)
	assert.Equal(t, Ace, r)

	r, ok = RankOfByte('7')
	assert.True(t, ok)
	assert.Equal(t, Seven, r)

	_, ok = RankOfByte('X')
	assert.False(t, ok)
}
