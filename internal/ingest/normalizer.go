// Package ingest turns raw client hand records into canonical event rows.
// Normalization is a single ordered scan per hand, tracking the current
// betting street and the running pot as it goes.
package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lox/handtrack/internal/handlog"
	"github.com/lox/handtrack/internal/poker"
	"github.com/lox/handtrack/internal/store"
)

// Client event type codes. This vocabulary is fixed by the client and must
// be reproduced exactly; codes 4, 5, 6 and 14 are all ante/straddle posts.
const (
	codeCheck    = 0
	codePostBB   = 2
	codePostSB   = 3
	codeCall     = 7
	codeBetRaise = 8
	codeBoard    = 9
	codeCollect  = 10
	codeFold     = 11
	codeShow     = 12
	codeReturned = 16
)

// dealerUnknown is stored when the dealer seat has no player mapping.
const dealerUnknown = "Unknown"

type nameObservation struct {
	playerID string
	name     string
}

// handRecord holds every row a single hand contributes to the store.
type handRecord struct {
	hand   store.Hand
	names  []nameObservation
	cards  []store.HoleCards
	events []store.Event
}

// normalizeHand maps one raw hand into canonical rows. A malformed record
// fails only this hand; the caller decides whether to continue the batch.
func normalizeHand(h handlog.Hand) (*handRecord, error) {
	if h.ID == "" {
		return nil, errors.New("hand record missing id")
	}
	if h.StartedAt == 0 {
		return nil, fmt.Errorf("hand %s missing startedAt", h.ID)
	}

	rec := &handRecord{}
	seatToID := make(map[int]string, len(h.Players))
	for _, p := range h.Players {
		if p.ID == "" {
			return nil, fmt.Errorf("hand %s has a player without an id", h.ID)
		}
		seatToID[p.Seat] = p.ID
		rec.names = append(rec.names, nameObservation{playerID: p.ID, name: p.Name})
		if len(p.Hand) > 0 {
			rec.cards = append(rec.cards, store.HoleCards{
				HandID:   h.ID,
				PlayerID: p.ID,
				Cards:    strings.Join(p.Hand, ","),
			})
		}
	}

	dealerID := dealerUnknown
	if id, ok := seatToID[h.DealerSeat]; ok {
		dealerID = id
	}
	rec.hand = store.Hand{
		ID:        h.ID,
		DealerID:  dealerID,
		StartedAt: time.UnixMilli(h.StartedAt),
	}

	street := poker.Preflop
	pot := 0.0

	// Amounts may be recorded in minor units.
	scale := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		if h.Cents {
			return *v / 100
		}
		return *v
	}

	for _, raw := range h.Events {
		var action poker.Action
		var amount float64

		// Seat 0 is never a valid reference, so it stays unresolved.
		playerID := ""
		if raw.Payload.Seat != 0 {
			playerID = seatToID[raw.Payload.Seat]
		}

		code := -1
		if raw.Payload.Type != nil {
			code = *raw.Payload.Type
		}

		switch code {
		case codePostSB:
			action = poker.PostSB
			amount = scale(raw.Payload.Value)
			pot += amount
		case codePostBB:
			action = poker.PostBB
			amount = scale(raw.Payload.Value)
			pot += amount
		case 4, 5, 6, 14:
			action = poker.PostOther
			amount = scale(raw.Payload.Value)
			pot += amount
		case codeFold:
			action = poker.Fold
		case codeCheck:
			action = poker.Check
		case codeCall:
			action = poker.Call
			amount = scale(raw.Payload.Value)
			pot += amount
		case codeBetRaise:
			// The amount is the total wager, not the increment. Without full
			// per-player street state the running pot is left untouched here;
			// the financial reconciler compensates with per-street maxima.
			action = poker.Raise
			amount = scale(raw.Payload.Value)
		case codeReturned:
			action = poker.Returned
			amount = scale(raw.Payload.Value)
			pot -= amount
		case codeCollect:
			action = poker.Collect
			if raw.Payload.Value != nil {
				amount = scale(raw.Payload.Value)
			} else {
				amount = scale(raw.Payload.Pot)
			}
			street = poker.Showdown
		case codeShow:
			action = poker.Show
			street = poker.Showdown
		case codeBoard:
			switch raw.Payload.Turn {
			case 1:
				street, action = poker.Flop, poker.DealFlop
			case 2:
				street, action = poker.Turn, poker.DealTurn
			case 3:
				street, action = poker.River, poker.DealRiver
			}
			playerID = poker.DealerID
		default:
			action = poker.Other
		}

		// Events with no resolvable action or actor are dropped, not stored.
		if action == "" || playerID == "" {
			continue
		}

		rec.events = append(rec.events, store.Event{
			HandID:    h.ID,
			PlayerID:  playerID,
			Action:    action,
			Amount:    amount,
			PotSize:   pot,
			Street:    street,
			Timestamp: time.UnixMilli(raw.At),
			Raw:       []byte(raw.RawPayload),
		})
	}

	return rec, nil
}
