package bots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMidPriceAveragesBestBidAndAsk(t *testing.T) {
	bid := int64(mustPx(t, "100.00000"))
	ask := int64(mustPx(t, "102.00000"))
	require.Equal(t, int64(mustPx(t, "101.00000")), midPrice(bid, true, ask, true))
}

func TestMidPriceFallsBackToOneSidedBook(t *testing.T) {
	bid := int64(mustPx(t, "50.00000"))
	require.Equal(t, bid, midPrice(bid, true, 0, false))
}

func TestMidPriceIsZeroWithNoBook(t *testing.T) {
	require.Equal(t, int64(0), midPrice(0, false, 0, false))
}
