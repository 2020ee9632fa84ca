// Package bots adapts the teacher's trading-agent swarm (bots.go,
// client.go, the three bot strategies, supervisor.go) from the
// teacher's single-symbol, channel-based OrderBook onto the new
// synchronous, multi-symbol engine.Engine. PnL/position tracking is
// dropped (spec Non-goal: no fee or risk accounting) — bots here exist
// purely to generate realistic order flow against an engine.Engine, not
// to demonstrate a trading strategy. Neither cmd/crossd nor cmd/loadgen
// starts them.
package bots

import (
	"context"

	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// Bot represents a trading agent that can be run under a Supervisor.
type Bot interface {
	Start(ctx context.Context, client EngineClient)
}

// EngineClient abstracts the minimal surface bots need from the engine,
// mirroring the teacher's EngineClient but scoped to a single symbol and
// expressed in terms of Dispatch results instead of channel sends.
type EngineClient interface {
	SubmitNew(ctx context.Context, side matching.Side, qty uint16, px price.Price) (matching.OID, []matching.Fill, error)
	Cancel(ctx context.Context, oid matching.OID) error
	Snapshot(ctx context.Context) ([]matching.OrderView, error)
	BestBidAsk(ctx context.Context) (bid price.Price, bidOK bool, ask price.Price, askOK bool)
	Symbol() string
	TickSize() price.Price
	NextOID() matching.OID
	OwnsOrder(oid matching.OID) bool
}
