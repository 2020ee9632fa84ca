package bots

// midPrice derives a reference price from the inside market, falling back
// to whichever side is present when the book is one-sided, and 0 when
// empty.
func midPrice(bid int64, bidOK bool, ask int64, askOK bool) int64 {
	switch {
	case bidOK && askOK:
		return (bid + ask) / 2
	case bidOK:
		return bid
	case askOK:
		return ask
	default:
		return 0
	}
}
