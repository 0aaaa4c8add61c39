package poker

import "strings"

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// RankOfByte parses a rank character ("2".."9", "T", "J", "Q", "K", "A").
func RankOfByte(b byte) (Rank, bool) {
	switch b {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(b - '0'), true
	case 'T':
		return Ten, true
	case 'J':
		return Jack, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	case 'A':
		return Ace, true
	}
	return 0, false
}

// UnknownCombo is returned when hole cards are missing or not a two-card hand.
const UnknownCombo = "Unknown"

// Combo canonicalizes a stored two-card hand ("As,Ks") into starting-hand
// notation: higher rank first, "s"/"o" suffix for suited/offsuit, pairs with
// no suffix. A hand with an unrecognized rank character passes through
// unchanged so odd client data stays visible instead of vanishing.
func Combo(holeCards string) string {
	if holeCards == "" {
		return UnknownCombo
	}
	cards := strings.Split(holeCards, ",")
	if len(cards) != 2 {
		return UnknownCombo
	}
	c1 := strings.TrimSpace(cards[0])
	c2 := strings.TrimSpace(cards[1])
	if len(c1) < 2 || len(c2) < 2 {
		return UnknownCombo
	}

	r1, ok1 := RankOfByte(c1[0])
	r2, ok2 := RankOfByte(c2[0])
	if !ok1 || !ok2 {
		return holeCards
	}
	s1, s2 := c1[1], c2[1]
	if r1 < r2 {
		r1, r2 = r2, r1
		s1, s2 = s2, s1
	}

	if r1 == r2 {
		return r1.String() + r2.String()
	}
	suffix := "o"
	if s1 == s2 {
		suffix = "s"
	}
	return r1.String() + r2.String() + suffix
}
