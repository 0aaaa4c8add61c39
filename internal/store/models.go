package store

import (
	"time"

	"github.com/lox/handtrack/internal/poker"
)

// Hand is the reference row for one played hand. Created the first time the
// hand is seen and never mutated afterwards.
type Hand struct {
	ID        string // record key
	DealerID  string // player id of the dealer seat, "Unknown" when unmapped
	StartedAt time.Time
}

// NameObservation records how often a display name has been seen for a
// player id. Names can change across hands sharing one id; the most
// frequently observed name is canonical, ties broken by first observation.
type NameObservation struct {
	Key      string // record key: playerID + "/" + name
	PlayerID string `badgerhold:"index"`
	Name     string
	Count    int
	First    uint64 // global observation order of the first sighting
}

// HoleCards records the two-card hand dealt to a player when the client
// revealed it. Absent for folded, unrevealed hands.
type HoleCards struct {
	Key      string // record key: handID + "/" + playerID
	HandID   string `badgerhold:"index"`
	PlayerID string `badgerhold:"index"`
	Cards    string // e.g. "As,Ks"
}

// Event is one normalized in-hand action, the atomic unit every downstream
// computation derives from. Events are append-only; Seq is assigned from a
// store-wide sequence so events within a hand are totally ordered.
type Event struct {
	Seq       uint64       `badgerhold:"key"`
	HandID    string       `badgerhold:"index"`
	PlayerID  string       `badgerhold:"index"` // poker.DealerID for board deals
	Action    poker.Action
	Amount    float64      // major units, non-negative
	PotSize   float64      // running pot immediately after this event
	Street    poker.Street
	Timestamp time.Time
	Raw       []byte // original client payload, kept for re-derivation
}

// PlayerPriors is the durable per-player profile row. Each calculator run
// recomputes and replaces the whole row; there are no partial updates.
type PlayerPriors struct {
	PlayerID            string // record key
	TotalHands          int
	VPIPHands           int
	PFRHands            int
	ThreeBetHands       int
	VPIPPct             float64
	PFRPct              float64
	ThreeBetPct         float64
	WTSDPct             float64
	WSDPct              float64
	WWSFPct             float64
	RiverBluffFreq      float64
	AvgShowdownStrength float64
	ProfileTag          string
}
