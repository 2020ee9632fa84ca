package bots

import (
	"context"
	"math/rand"
	"time"

	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// RandomBidBot places short-lived limit bids around the mid price.
type RandomBidBot struct {
	Interval   time.Duration
	Lifetime   time.Duration
	Quantity   uint16
	RangeTicks int64
	rand       *rand.Rand
}

func NewRandomBidBot(seed int64) *RandomBidBot {
	return &RandomBidBot{
		Interval:   200 * time.Millisecond,
		Lifetime:   2 * time.Second,
		Quantity:   1,
		RangeTicks: 5,
		rand:       rand.New(rand.NewSource(seed)),
	}
}

func (b *RandomBidBot) Start(ctx context.Context, client EngineClient) {
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.placeBid(ctx, client)
		}
	}
}

func (b *RandomBidBot) placeBid(ctx context.Context, client EngineClient) {
	bid, bidOK, ask, askOK := client.BestBidAsk(ctx)
	mid := midPrice(int64(bid), bidOK, int64(ask), askOK)
	if mid <= 0 {
		return
	}

	delta := b.rand.Int63n(b.RangeTicks+1) * int64(client.TickSize())
	target := mid - delta
	if target <= 0 {
		target = int64(client.TickSize())
	}

	oid, _, err := client.SubmitNew(ctx, matching.Bid, b.Quantity, price.Price(target))
	if err != nil {
		return
	}

	go b.cancelAfter(ctx, client, oid)
}

func (b *RandomBidBot) cancelAfter(ctx context.Context, client EngineClient, oid matching.OID) {
	timer := time.NewTimer(b.Lifetime)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		_ = client.Cancel(context.Background(), oid)
	}
}
