package bots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crossengine/internal/engine"
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

func mustPx(t *testing.T, s string) price.Price {
	t.Helper()
	p, err := price.Parse(s)
	require.NoError(t, err)
	return p
}

func TestThrottledClientSubmitAndCancel(t *testing.T) {
	e := engine.New()
	c := NewThrottledClient(e, "IBM", mustPx(t, "0.00001"), 1000, nil)

	oid, fills, err := c.SubmitNew(context.Background(), matching.Bid, 10, mustPx(t, "100.00000"))
	require.NoError(t, err)
	require.Empty(t, fills)
	require.True(t, c.OwnsOrder(oid))

	require.NoError(t, c.Cancel(context.Background(), oid))

	views, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestThrottledClientCrossesRestingOrder(t *testing.T) {
	e := engine.New()
	c := NewThrottledClient(e, "IBM", mustPx(t, "0.00001"), 1000, nil)

	_, _, err := c.SubmitNew(context.Background(), matching.Ask, 5, mustPx(t, "100.00000"))
	require.NoError(t, err)

	_, fills, err := c.SubmitNew(context.Background(), matching.Bid, 5, mustPx(t, "101.00000"))
	require.NoError(t, err)
	require.Len(t, fills, 2)
}

func TestThrottledClientWaitsOnThrottle(t *testing.T) {
	throttle := make(chan time.Time, 1)
	e := engine.New()
	c := NewThrottledClient(e, "IBM", mustPx(t, "0.00001"), 1000, throttle)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := c.SubmitNew(ctx, matching.Bid, 1, mustPx(t, "1.00000"))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	throttle <- time.Now()
	_, _, err = c.SubmitNew(context.Background(), matching.Bid, 1, mustPx(t, "1.00000"))
	require.NoError(t, err)
}

func TestBestBidAskReflectsRestingOrders(t *testing.T) {
	e := engine.New()
	c := NewThrottledClient(e, "IBM", mustPx(t, "0.00001"), 1000, nil)

	_, bidOK, _, askOK := c.BestBidAsk(context.Background())
	require.False(t, bidOK)
	require.False(t, askOK)

	_, _, err := c.SubmitNew(context.Background(), matching.Bid, 5, mustPx(t, "99.00000"))
	require.NoError(t, err)
	_, _, err = c.SubmitNew(context.Background(), matching.Ask, 5, mustPx(t, "101.00000"))
	require.NoError(t, err)

	bid, bidOK, ask, askOK := c.BestBidAsk(context.Background())
	require.True(t, bidOK)
	require.True(t, askOK)
	require.Equal(t, mustPx(t, "99.00000"), bid)
	require.Equal(t, mustPx(t, "101.00000"), ask)
}

func TestNextOIDIsMonotonicPerClient(t *testing.T) {
	e := engine.New()
	c := NewThrottledClient(e, "IBM", mustPx(t, "0.00001"), 500, nil)

	first := c.NextOID()
	second := c.NextOID()
	require.Equal(t, first+1, second)
}
