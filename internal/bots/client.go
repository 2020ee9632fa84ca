package bots

import (
	"context"
	"sync"
	"time"

	"crossengine/internal/engine"
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// ThrottledClient wraps an Engine with basic rate limiting and
// bookkeeping, grounded on the teacher's ThrottledClient but pointed at
// the shared engine.Engine/symbol pair instead of a dedicated OrderBook.
type ThrottledClient struct {
	eng      *engine.Engine
	symbol   string
	tickSize price.Price
	throttle <-chan time.Time

	mu      sync.Mutex
	nextOid matching.OID
	owned   map[matching.OID]struct{}
}

// NewThrottledClient builds a client scoped to one symbol. oidBase seeds
// the bot's own oid range; callers must keep disjoint ranges across
// clients sharing an Engine so bot oids never collide with each other or
// with externally submitted orders.
func NewThrottledClient(eng *engine.Engine, symbol string, tickSize price.Price, oidBase matching.OID, throttle <-chan time.Time) *ThrottledClient {
	return &ThrottledClient{
		eng:      eng,
		symbol:   symbol,
		tickSize: tickSize,
		throttle: throttle,
		nextOid:  oidBase,
		owned:    make(map[matching.OID]struct{}),
	}
}

func (c *ThrottledClient) waitThrottle(ctx context.Context) error {
	if c.throttle == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.throttle:
		return nil
	}
}

// SubmitNew places a new limit order, rounding px down to the client's
// tick size.
func (c *ThrottledClient) SubmitNew(ctx context.Context, side matching.Side, qty uint16, px price.Price) (matching.OID, []matching.Fill, error) {
	if err := c.waitThrottle(ctx); err != nil {
		return 0, nil, err
	}
	if c.tickSize > 0 {
		px = (px / c.tickSize) * c.tickSize
	}
	if px <= 0 {
		px = c.tickSize
	}

	oid := c.NextOID()
	a := engine.Action{Kind: engine.ActionNew, OID: oid, Symbol: c.symbol, Side: side, Qty: qty, Price: px}

	c.eng.Lock()
	results := c.eng.Dispatch(a)
	c.eng.Unlock()

	var fills []matching.Fill
	for _, r := range results {
		switch r.Kind {
		case engine.ResultFill:
			fills = append(fills, *r.Fill)
		case engine.ResultError:
			return 0, nil, r.Err
		}
	}

	c.mu.Lock()
	c.owned[oid] = struct{}{}
	c.mu.Unlock()
	return oid, fills, nil
}

// Cancel cancels a resting order by oid.
func (c *ThrottledClient) Cancel(ctx context.Context, oid matching.OID) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.eng.Lock()
	results := c.eng.Dispatch(engine.Action{Kind: engine.ActionCancel, OID: oid})
	c.eng.Unlock()

	for _, r := range results {
		if r.Kind == engine.ResultError {
			return r.Err
		}
	}
	return nil
}

// Snapshot returns every resting OrderView across all symbols; callers
// filter by Symbol() themselves, matching how Engine.dispatchPrint works.
func (c *ThrottledClient) Snapshot(ctx context.Context) ([]matching.OrderView, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c.eng.Lock()
	results := c.eng.Dispatch(engine.Action{Kind: engine.ActionPrint})
	c.eng.Unlock()

	views := make([]matching.OrderView, 0, len(results))
	for _, r := range results {
		if r.Kind == engine.ResultPrint {
			views = append(views, *r.View)
		}
	}
	return views, nil
}

// BestBidAsk reports the inside market for the client's symbol directly,
// without scanning a full Print snapshot.
func (c *ThrottledClient) BestBidAsk(ctx context.Context) (bid price.Price, bidOK bool, ask price.Price, askOK bool) {
	select {
	case <-ctx.Done():
		return 0, false, 0, false
	default:
	}

	c.eng.Lock()
	defer c.eng.Unlock()
	return c.eng.BestBidAsk(c.symbol)
}

func (c *ThrottledClient) Symbol() string        { return c.symbol }
func (c *ThrottledClient) TickSize() price.Price { return c.tickSize }

// NextOID hands out the next oid in this client's private range.
func (c *ThrottledClient) NextOID() matching.OID {
	c.mu.Lock()
	defer c.mu.Unlock()
	oid := c.nextOid
	c.nextOid++
	return oid
}

func (c *ThrottledClient) OwnsOrder(oid matching.OID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.owned[oid]
	return ok
}
