package engine

import (
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// ActionKind identifies the three forms a parsed input line can take: a
// new order, a cancel, or a request to print the book.
type ActionKind int

const (
	ActionNew ActionKind = iota
	ActionCancel
	ActionPrint
)

// Action is one parsed line of input. Symbol/Side/Qty/Price are only
// meaningful for ActionNew; OID is meaningful for ActionNew and
// ActionCancel.
type Action struct {
	Kind   ActionKind
	OID    matching.OID
	Symbol string
	Side   matching.Side
	Qty    uint16
	Price  price.Price
}

// ResultKind identifies the four record forms dispatch can emit: a fill,
// a cancel acknowledgement, a print line, or a protocol error.
type ResultKind int

const (
	ResultFill ResultKind = iota
	ResultCancelAck
	ResultPrint
	ResultError
)

// Result is one emitted result record. ResultFill sets Fill, ResultPrint
// sets View, ResultError sets Err; ResultCancelAck sets only OID.
type Result struct {
	Kind ResultKind
	OID  matching.OID
	Fill *matching.Fill
	View *matching.OrderView
	Err  *matching.Error
}
