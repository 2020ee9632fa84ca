package matching

import "crossengine/internal/price"

// Side is the direction of an order: Bid (buy) or Ask (sell).
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "B"
	}
	return "S"
}

// OID is a globally unique, strictly positive order identifier.
type OID uint32

// Order is a resting or in-flight limit order. OrigQty is immutable once
// created; OpenQty only ever decreases, via fills. A cancel removes the
// order from its book without changing OpenQty.
type Order struct {
	OID     OID
	Symbol  string
	Side    Side
	OrigQty uint16
	OpenQty uint16
	Price   price.Price
	Seq     uint64
}

// Fill records one side of a single match. Two Fills are emitted per match:
// one for the aggressor, one for the resting counterparty.
type Fill struct {
	OID    OID
	Symbol string
	Qty    uint16
	Price  price.Price
}

// OrderView is a read-only, detached snapshot of a resting order, safe to
// hand to callers outside the book (no shared mutable state).
type OrderView struct {
	OID     OID
	Symbol  string
	Side    Side
	OpenQty uint16
	Price   price.Price
}
