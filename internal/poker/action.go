// Package poker defines the canonical vocabulary shared by the ingestion
// and analytics layers: betting streets, normalized action kinds, starting
// hand combos and table positions.
package poker

import "strings"

// Street is a betting round within a hand.
type Street string

const (
	Preflop  Street = "Preflop"
	Flop     Street = "Flop"
	Turn     Street = "Turn"
	River    Street = "River"
	Showdown Street = "Showdown"
)

// DealerID is the pseudo-player that board-card events are attributed to.
const DealerID = "Dealer"

// Action is a normalized in-hand action kind. The string values double as
// the persisted representation, so they must stay stable.
type Action string

const (
	PostSB    Action = "post_sb"
	PostBB    Action = "post_bb"
	PostOther Action = "post_other" // antes and straddles
	Fold      Action = "fold"
	Check     Action = "check"
	Call      Action = "call"
	Raise     Action = "raise" // covers both bet and raise, total-to amount
	Bet       Action = "bet"
	RaiseTo   Action = "raise_to_amount"
	Returned  Action = "returned" // uncalled amount returned
	Collect   Action = "collect"
	Show      Action = "show"
	DealFlop  Action = "deal_flop"
	DealTurn  Action = "deal_turn"
	DealRiver Action = "deal_river"
	Other     Action = "other"
)

// IsRaise reports whether the action is in the raise family. The raise the
// normalizer emits and the total-to variant both count; a plain bet does not,
// matching how PFR and 3-bet are defined.
func (a Action) IsRaise() bool {
	return strings.HasPrefix(string(a), "raise")
}

// IsVoluntary reports whether the action voluntarily puts money in the pot
// preflop. Blind posts are excluded.
func (a Action) IsVoluntary() bool {
	return a == Call || a == Raise || a == RaiseTo
}

// IsPost reports whether the action is a blind, ante or straddle post.
func (a Action) IsPost() bool {
	return strings.HasPrefix(string(a), "post_")
}

// IsWager reports whether the action commits chips and therefore counts
// toward a player's per-street investment.
func (a Action) IsWager() bool {
	switch a {
	case PostSB, PostBB, PostOther, Call, Raise, Bet, RaiseTo:
		return true
	}
	return false
}

// IsBetOrRaise reports whether the action is an aggressive wager, the set
// used for bet-sizing buckets and river bluff detection.
func (a Action) IsBetOrRaise() bool {
	return a == Bet || a == Raise || a == RaiseTo
}

// EstablishesOrder reports whether a preflop occurrence of the action fixes
// the player's spot in the action order for position inference.
func (a Action) EstablishesOrder() bool {
	if a.IsPost() {
		return true
	}
	switch a {
	case Fold, Call, Raise, Check:
		return true
	}
	return false
}

// IsBoardDeal reports whether the action deals board cards.
func (a Action) IsBoardDeal() bool {
	return a == DealFlop || a == DealTurn || a == DealRiver
}
