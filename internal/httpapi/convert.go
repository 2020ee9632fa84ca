package httpapi

import (
	"strconv"

	"crossengine/internal/engine"
	"crossengine/internal/errs"
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// resultView is the JSON shape handed back for a dispatched action: the
// same four result kinds as the textual wire format, rendered as a
// tagged struct instead of textio's line format.
type resultView struct {
	Kind  string            `json:"kind"`
	OID   matching.OID      `json:"oid,omitempty"`
	Fill  *matching.Fill    `json:"fill,omitempty"`
	View  *matching.OrderView `json:"view,omitempty"`
	Error string            `json:"error,omitempty"`
}

func toResultViews(results []engine.Result) []resultView {
	out := make([]resultView, 0, len(results))
	for _, r := range results {
		switch r.Kind {
		case engine.ResultFill:
			out = append(out, resultView{Kind: "fill", Fill: r.Fill})
		case engine.ResultCancelAck:
			out = append(out, resultView{Kind: "cancel_ack", OID: r.OID})
		case engine.ResultPrint:
			out = append(out, resultView{Kind: "print", View: r.View})
		case engine.ResultError:
			out = append(out, resultView{Kind: "error", Error: r.Err.Error()})
		}
	}
	return out
}

func buildNewAction(req newOrderRequest) (engine.Action, error) {
	var side matching.Side
	switch req.Side {
	case "B", "b", "Bid", "bid", "buy":
		side = matching.Bid
	case "S", "s", "Ask", "ask", "sell":
		side = matching.Ask
	default:
		return engine.Action{}, errs.Newf("unrecognized side %q", req.Side)
	}

	px, err := price.Parse(req.Price)
	if err != nil {
		return engine.Action{}, errs.Wrap(err, "parsing price")
	}

	return engine.Action{
		Kind:   engine.ActionNew,
		OID:    matching.OID(req.OID),
		Symbol: req.Symbol,
		Side:   side,
		Qty:    req.Qty,
		Price:  px,
	}, nil
}

func parseOIDParam(raw string) (matching.OID, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return matching.OID(n), nil
}
