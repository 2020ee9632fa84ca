package bots

import (
	"context"
	"time"

	"crossengine/internal/engine"
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// Supervisor orchestrates a fixed swarm of bots against one symbol on a
// shared Engine. Unlike the teacher's Supervisor, there is no PnL
// tracker: fee/risk accounting is out of scope (Non-goal), and these
// bots exist only to generate realistic traffic on the engine, not to
// demonstrate a strategy's profitability.
type Supervisor struct {
	bots     []Bot
	client   *ThrottledClient
	throttle *time.Ticker
}

// NewSupervisor builds a default swarm of bots sharing a throttled client
// scoped to symbol. oidBase must not overlap any other oid range in use
// on eng.
func NewSupervisor(eng *engine.Engine, symbol string, tickSize price.Price, oidBase uint32, orderInterval time.Duration) *Supervisor {
	throttle := time.NewTicker(orderInterval)
	client := NewThrottledClient(eng, symbol, tickSize, matching.OID(oidBase), throttle.C)
	bots := []Bot{
		NewRandomBidBot(1),
		NewRandomAskBot(2),
		NewRandomBidBot(3),
		NewRandomAskBot(4),
		NewSpreadCaptureBot(),
	}
	return &Supervisor{bots: bots, client: client, throttle: throttle}
}

// Start launches every bot until ctx is canceled.
func (s *Supervisor) Start(ctx context.Context) {
	defer s.throttle.Stop()

	for _, bot := range s.bots {
		b := bot
		go b.Start(ctx, s.client)
	}
	<-ctx.Done()
}
