// Package engine is the top-level facade over the matching core: a
// symbol→Book map, the global oid index, action dispatch, and
// deterministic snapshot rendering.
package engine

import (
	"regexp"
	"sync"

	"crossengine/internal/matching"
	"crossengine/internal/price"
)

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)

// oidState records everything the engine needs to enforce oid
// uniqueness: an oid, once used, can never be reused even after its
// order has fully filled or been canceled, so the engine must remember
// it was seen long after it stops being open. symbol is only meaningful
// while the oid is open.
type oidState struct {
	symbol string
	open   bool
}

// Engine owns all per-symbol books, the oid index, and the seq counter.
// Dispatch is the single entry point; it performs no synchronization of
// its own, so callers that share an Engine across goroutines must
// serialize their own access — a sync.Mutex is provided for exactly that
// purpose and used by internal/httpapi and internal/bots.
type Engine struct {
	mu    sync.Mutex
	books map[string]*matching.Book
	order []string // symbols in the order they were first seen
	oids  map[matching.OID]*oidState
	seq   uint64
}

// New returns an empty Engine.
func New() *Engine {
	return &Engine{
		books: make(map[string]*matching.Book),
		oids:  make(map[matching.OID]*oidState),
	}
}

// Lock exposes the engine's mutex so outside callers (HTTP handlers, bot
// supervisors) can serialize a batch of dispatches atomically when
// needed, without the core itself paying for a lock on every call — the
// matching core is written single-threaded by contract, not defensively.
func (e *Engine) Lock()   { e.mu.Lock() }
func (e *Engine) Unlock() { e.mu.Unlock() }

// Dispatch processes one parsed action and returns its result sequence.
// It is not safe to call concurrently without external synchronization.
func (e *Engine) Dispatch(a Action) []Result {
	switch a.Kind {
	case ActionNew:
		return e.dispatchNew(a)
	case ActionCancel:
		return e.dispatchCancel(a)
	case ActionPrint:
		return e.dispatchPrint()
	default:
		// textio rejects any action character outside {O,X,P} before an
		// Action ever reaches Dispatch; this case is unreachable in
		// practice but keeps Dispatch total.
		return nil
	}
}

// dispatchNew validates the line's fields before it ever looks at the oid
// index: a line with both an unusable symbol and a reused oid is still a
// malformed line first and a duplicate second, so bad-symbol takes
// precedence over duplicate-oid.
func (e *Engine) dispatchNew(a Action) []Result {
	if !symbolPattern.MatchString(a.Symbol) {
		return []Result{{Kind: ResultError, Err: matching.NewError(matching.KindBadSymbol, a.OID)}}
	}
	if _, seen := e.oids[a.OID]; seen {
		return []Result{{Kind: ResultError, Err: matching.NewError(matching.KindDuplicateOid, a.OID)}}
	}

	book, ok := e.books[a.Symbol]
	if !ok {
		book = matching.NewBook(a.Symbol)
		e.books[a.Symbol] = book
		e.order = append(e.order, a.Symbol)
	}

	e.seq++
	order := matching.Order{
		OID:     a.OID,
		Symbol:  a.Symbol,
		Side:    a.Side,
		OrigQty: a.Qty,
		OpenQty: a.Qty,
		Price:   a.Price,
		Seq:     e.seq,
	}

	fills := book.Submit(order)

	e.oids[a.OID] = &oidState{symbol: a.Symbol, open: book.IsOpen(a.OID)}

	results := make([]Result, 0, len(fills))
	seenCounterparty := make(map[matching.OID]bool)
	for _, f := range fills {
		f := f
		results = append(results, Result{Kind: ResultFill, Fill: &f})
		if f.OID == a.OID || seenCounterparty[f.OID] {
			continue
		}
		seenCounterparty[f.OID] = true
		if st, ok := e.oids[f.OID]; ok && !book.IsOpen(f.OID) {
			st.open = false
		}
	}
	return results
}

func (e *Engine) dispatchCancel(a Action) []Result {
	st, ok := e.oids[a.OID]
	if !ok || !st.open {
		return []Result{{Kind: ResultError, Err: matching.NewError(matching.KindUnknownOid, a.OID)}}
	}
	book := e.books[st.symbol]
	if err := book.Cancel(a.OID); err != nil {
		return []Result{{Kind: ResultError, Err: err}}
	}
	st.open = false
	return []Result{{Kind: ResultCancelAck, OID: a.OID}}
}

// BestBidAsk reports the current top-of-book prices for symbol, for
// callers (internal/bots) that only need the inside market and would
// otherwise have to scan a full Print snapshot. A symbol with no book
// yet (no order ever submitted for it) reports both sides absent.
func (e *Engine) BestBidAsk(symbol string) (bid price.Price, bidOK bool, ask price.Price, askOK bool) {
	book, ok := e.books[symbol]
	if !ok {
		return 0, false, 0, false
	}
	return book.BestBidAsk()
}

func (e *Engine) dispatchPrint() []Result {
	var results []Result
	for _, symbol := range e.order {
		book := e.books[symbol]
		for _, v := range book.Snapshot() {
			v := v
			results = append(results, Result{Kind: ResultPrint, View: &v})
		}
	}
	return results
}
