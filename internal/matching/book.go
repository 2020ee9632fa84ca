package matching

import (
	"container/list"

	"crossengine/internal/price"
)

// orderLoc is the intrusive handle an order index needs to locate a
// resting order without rescanning the book: its side, price level, and
// position within that level's FIFO.
type orderLoc struct {
	order  *Order
	side   Side
	price  price.Price
	handle *list.Element
}

// Book owns the bid and ask SideBooks for a single symbol and implements
// the matching algorithm. Every fill executes at the resting order's
// price, never the aggressor's: the aggressor only ever gets the same
// price or better, so a marketable order can improve but never worsen
// the price it pays or receives.
type Book struct {
	Symbol string
	bid    *SideBook
	ask    *SideBook
	orders map[OID]*orderLoc // open orders resting on this book only
}

// NewBook constructs an empty book for symbol.
func NewBook(symbol string) *Book {
	return &Book{
		Symbol: symbol,
		bid:    newSideBook(Bid),
		ask:    newSideBook(Ask),
		orders: make(map[OID]*orderLoc),
	}
}

// Submit matches order against the opposite side and rests any residual
// on order's own side. The caller (Engine) is responsible for oid
// uniqueness and field validation; Book only ever sees orders already
// known to be well-formed, so its contract starts at the matching
// algorithm itself.
func (b *Book) Submit(order Order) []Fill {
	var fills []Fill

	resting, opposite := b.bid, b.ask
	if order.Side == Ask {
		resting, opposite = b.ask, b.bid
	}

	q := order.OpenQty
	for q > 0 {
		bp, lvl, ok := opposite.best()
		if !ok {
			break
		}
		if !crossable(order.Side, order.Price, bp) {
			break
		}
		top := lvl.peekFront()
		// top is guaranteed non-nil: best() never returns an empty level
		// (side.go prunes empty levels eagerly).

		m := q
		if top.OpenQty < m {
			m = top.OpenQty
		}

		fills = append(fills,
			Fill{OID: order.OID, Symbol: order.Symbol, Qty: m, Price: bp},
			Fill{OID: top.OID, Symbol: order.Symbol, Qty: m, Price: bp},
		)

		top.OpenQty -= m
		q -= m

		if top.OpenQty == 0 {
			lvl.popFront()
			delete(b.orders, top.OID)
			opposite.removeLevelIfEmpty(bp)
		}
	}

	if q > 0 {
		order.OpenQty = q
		handle := resting.insert(&order)
		b.orders[order.OID] = &orderLoc{order: &order, side: order.Side, price: order.Price, handle: handle}
	}

	return fills
}

// crossable reports whether an aggressor with the given side and limit
// price can trade against a resting order at bp.
func crossable(side Side, limit, bp price.Price) bool {
	if side == Bid {
		return limit >= bp
	}
	return limit <= bp
}

// Cancel removes oid from its resting level. Returns KindUnknownOid if
// oid is not currently open on this book.
func (b *Book) Cancel(oid OID) *Error {
	loc, ok := b.orders[oid]
	if !ok {
		return NewError(KindUnknownOid, oid)
	}
	sb := b.bid
	if loc.side == Ask {
		sb = b.ask
	}
	sb.remove(loc.price, loc.handle)
	delete(b.orders, oid)
	return nil
}

// Snapshot returns every open order on this book, ordered worst ask down
// to best ask, then best bid down to worst bid, oldest-first within a
// level so FIFO priority is visible directly from the listing.
func (b *Book) Snapshot() []OrderView {
	var out []OrderView
	appendSide := func(sb *SideBook) {
		for _, entry := range sb.levelsDescending() {
			entry.lvl.forEach(func(o *Order) {
				out = append(out, OrderView{
					OID: o.OID, Symbol: o.Symbol, Side: o.Side,
					OpenQty: o.OpenQty, Price: o.Price,
				})
			})
		}
	}
	appendSide(b.ask)
	appendSide(b.bid)
	return out
}

// IsOpen reports whether oid currently rests on this book.
func (b *Book) IsOpen(oid OID) bool {
	_, ok := b.orders[oid]
	return ok
}

// BestBidAsk reports the current top-of-book prices. The best bid must
// never be at or above the best ask on a book that only ever matches
// crossable orders on entry; callers use this to observe the inside
// market without walking a full Snapshot.
func (b *Book) BestBidAsk() (bid price.Price, bidOK bool, ask price.Price, askOK bool) {
	bid, _, bidOK = b.bid.best()
	ask, _, askOK = b.ask.best()
	return
}
