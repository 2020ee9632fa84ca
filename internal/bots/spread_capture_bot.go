package bots

import (
	"context"
	"time"

	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// SpreadCaptureBot maintains a paired bid/ask quote and re-prices when
// the mid moves beyond its threshold.
type SpreadCaptureBot struct {
	Interval       time.Duration
	Lifetime       time.Duration
	ThresholdTicks int64
	Quantity       uint16
}

type pairedOrders struct {
	bidOid    matching.OID
	askOid    matching.OID
	anchorMid int64
	placedAt  time.Time
}

func NewSpreadCaptureBot() *SpreadCaptureBot {
	return &SpreadCaptureBot{
		Interval:       300 * time.Millisecond,
		Lifetime:       3 * time.Second,
		ThresholdTicks: 3,
		Quantity:       1,
	}
}

func (b *SpreadCaptureBot) Start(ctx context.Context, client EngineClient) {
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	var pair *pairedOrders
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pair = b.refreshPair(ctx, client, pair)
		}
	}
}

func (b *SpreadCaptureBot) refreshPair(ctx context.Context, client EngineClient, pair *pairedOrders) *pairedOrders {
	bid, bidOK, ask, askOK := client.BestBidAsk(ctx)
	if !bidOK || !askOK {
		return b.cancelPair(ctx, client, pair)
	}
	mid := (int64(bid) + int64(ask)) / 2
	tick := int64(client.TickSize())
	threshold := b.ThresholdTicks * tick

	if pair != nil {
		if time.Since(pair.placedAt) > b.Lifetime {
			pair = b.cancelPair(ctx, client, pair)
		} else if abs64(mid-pair.anchorMid) >= threshold {
			pair = b.cancelPair(ctx, client, pair)
		}
	}
	if pair != nil {
		return pair
	}

	bidPrice := int64(bid)
	if mid-tick > 0 {
		bidPrice = mid - tick
	}
	askPrice := int64(ask)
	if askPrice <= bidPrice {
		askPrice = bidPrice + tick
	}

	bidOid, _, err := client.SubmitNew(ctx, matching.Bid, b.Quantity, price.Price(bidPrice))
	if err != nil {
		return pair
	}
	askOid, _, err := client.SubmitNew(ctx, matching.Ask, b.Quantity, price.Price(askPrice))
	if err != nil {
		_ = client.Cancel(ctx, bidOid)
		return pair
	}

	return &pairedOrders{bidOid: bidOid, askOid: askOid, anchorMid: mid, placedAt: time.Now()}
}

func (b *SpreadCaptureBot) cancelPair(ctx context.Context, client EngineClient, pair *pairedOrders) *pairedOrders {
	if pair == nil {
		return nil
	}
	_ = client.Cancel(ctx, pair.bidOid)
	_ = client.Cancel(ctx, pair.askOid)
	return nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
