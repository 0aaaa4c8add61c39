// Package handlog decodes the raw JSON hand-history files exported by the
// poker client. It knows nothing about normalization; it only reproduces the
// client's schema faithfully, including keeping each event's original payload
// bytes for later re-derivation.
package handlog

import "encoding/json"

// File is one exported ingestion document: {"hands": [...]}.
type File struct {
	Hands []Hand `json:"hands"`
}

// Hand is one played hand as the client recorded it.
type Hand struct {
	ID         string   `json:"id"`
	StartedAt  int64    `json:"startedAt"` // epoch milliseconds
	Cents      bool     `json:"cents"`     // amounts encoded in minor units
	DealerSeat int      `json:"dealerSeat"`
	Players    []Player `json:"players"`
	Events     []Event  `json:"events"`
}

// Player is one seated player. Hand holds the dealt hole cards when the
// client recorded them; it is usually absent.
type Player struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Seat int      `json:"seat"`
	Hand []string `json:"hand,omitempty"`
}

// Event is one raw client event.
type Event struct {
	At      int64   `json:"at"` // epoch milliseconds
	Payload Payload `json:"payload"`

	// RawPayload is the payload exactly as it appeared on the wire.
	RawPayload json.RawMessage `json:"-"`
}

// Payload carries the client's type code plus the type-specific fields.
// Pointers distinguish absent fields from zero values; seat 0 is never a
// valid seat reference.
type Payload struct {
	Type  *int     `json:"type"`
	Seat  int      `json:"seat,omitempty"`
	Value *float64 `json:"value,omitempty"`
	Turn  int      `json:"turn,omitempty"`
	Pot   *float64 `json:"pot,omitempty"`
}

// UnmarshalJSON decodes the event and captures the verbatim payload bytes.
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Event(p)

	var probe struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	e.RawPayload = probe.Payload
	return nil
}
