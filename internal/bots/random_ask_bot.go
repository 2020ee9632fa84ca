package bots

import (
	"context"
	"math/rand"
	"time"

	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// RandomAskBot places short-lived limit asks around the mid price.
type RandomAskBot struct {
	Interval   time.Duration
	Lifetime   time.Duration
	Quantity   uint16
	RangeTicks int64
	rand       *rand.Rand
}

func NewRandomAskBot(seed int64) *RandomAskBot {
	return &RandomAskBot{
		Interval:   200 * time.Millisecond,
		Lifetime:   2 * time.Second,
		Quantity:   1,
		RangeTicks: 5,
		rand:       rand.New(rand.NewSource(seed)),
	}
}

func (b *RandomAskBot) Start(ctx context.Context, client EngineClient) {
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.placeAsk(ctx, client)
		}
	}
}

func (b *RandomAskBot) placeAsk(ctx context.Context, client EngineClient) {
	bid, bidOK, ask, askOK := client.BestBidAsk(ctx)
	mid := midPrice(int64(bid), bidOK, int64(ask), askOK)
	if mid <= 0 {
		return
	}

	delta := b.rand.Int63n(b.RangeTicks+1) * int64(client.TickSize())
	px := price.Price(mid + delta)

	oid, _, err := client.SubmitNew(ctx, matching.Ask, b.Quantity, px)
	if err != nil {
		return
	}

	go b.cancelAfter(ctx, client, oid)
}

func (b *RandomAskBot) cancelAfter(ctx context.Context, client EngineClient, oid matching.OID) {
	timer := time.NewTimer(b.Lifetime)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		_ = client.Cancel(context.Background(), oid)
	}
}
