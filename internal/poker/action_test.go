package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionPredicates(t *testing.T) {
	assert.True(t, Raise.IsRaise())
	assert.True(t, RaiseTo.IsRaise())
	assert.False(t, Bet.IsRaise(), "a plain bet is not a raise for PFR purposes")
	assert.False(t, Call.IsRaise())

	assert.True(t, Call.IsVoluntary())
	assert.True(t, Raise.IsVoluntary())
	assert.False(t, PostBB.IsVoluntary(), "blind posts are not voluntary")
	assert.False(t, Check.IsVoluntary())

	assert.True(t, PostSB.IsPost())
	assert.True(t, PostOther.IsPost())
	assert.False(t, Fold.IsPost())

	for _, a := range []Action{PostSB, PostBB, PostOther, Call, Raise, Bet, RaiseTo} {
		assert.True(t, a.IsWager(), "%s should wager", a)
	}
	for _, a := range []Action{Fold, Check, Returned, Collect, Show, DealFlop, Other} {
		assert.False(t, a.IsWager(), "%s should not wager", a)
	}

	assert.True(t, Bet.IsBetOrRaise())
	assert.True(t, RaiseTo.IsBetOrRaise())
	assert.False(t, Call.IsBetOrRaise())

	assert.True(t, PostBB.EstablishesOrder())
	assert.True(t, Check.EstablishesOrder())
	assert.False(t, Show.EstablishesOrder())
	assert.False(t, DealFlop.EstablishesOrder())

	assert.True(t, DealTurn.IsBoardDeal())
	assert.False(t, Collect.IsBoardDeal())
}
