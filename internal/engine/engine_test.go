package engine

import (
	"testing"

	"crossengine/internal/matching"
	"crossengine/internal/price"
)

func mustPrice(t *testing.T, s string) price.Price {
	t.Helper()
	p, err := price.Parse(s)
	if err != nil {
		t.Fatalf("price.Parse(%q): %v", s, err)
	}
	return p
}

func newAction(t *testing.T, oid matching.OID, symbol string, side matching.Side, qty uint16, p string) Action {
	return Action{Kind: ActionNew, OID: oid, Symbol: symbol, Side: side, Qty: qty, Price: mustPrice(t, p)}
}

// TestWorkedExample replays the full literal session from
// original_source/simple_cross.cpp's documentation comment line for
// line.
func TestWorkedExample(t *testing.T) {
	e := New()

	step := func(a Action) []Result { return e.Dispatch(a) }

	if r := step(newAction(t, 10000, "IBM", matching.Bid, 10, "100.00000")); len(r) != 0 {
		t.Fatalf("10000: expected no results, got %+v", r)
	}
	if r := step(newAction(t, 10001, "IBM", matching.Bid, 10, "99.00000")); len(r) != 0 {
		t.Fatalf("10001: expected no results, got %+v", r)
	}
	if r := step(newAction(t, 10002, "IBM", matching.Ask, 5, "101.00000")); len(r) != 0 {
		t.Fatalf("10002: expected no results, got %+v", r)
	}

	r := step(newAction(t, 10003, "IBM", matching.Ask, 5, "100.00000"))
	requireFills(t, r, []matching.Fill{
		{OID: 10003, Symbol: "IBM", Qty: 5, Price: mustPrice(t, "100.00000")},
		{OID: 10000, Symbol: "IBM", Qty: 5, Price: mustPrice(t, "100.00000")},
	})

	r = step(newAction(t, 10004, "IBM", matching.Ask, 5, "100.00000"))
	requireFills(t, r, []matching.Fill{
		{OID: 10004, Symbol: "IBM", Qty: 5, Price: mustPrice(t, "100.00000")},
		{OID: 10000, Symbol: "IBM", Qty: 5, Price: mustPrice(t, "100.00000")},
	})

	r = step(cancelAction(10002))
	if len(r) != 1 || r[0].Kind != ResultCancelAck || r[0].OID != 10002 {
		t.Fatalf("cancel 10002: got %+v", r)
	}

	mustEmpty(t, step(newAction(t, 10005, "IBM", matching.Bid, 10, "99.00000")))
	mustEmpty(t, step(newAction(t, 10006, "IBM", matching.Bid, 10, "100.00000")))
	mustEmpty(t, step(newAction(t, 10007, "IBM", matching.Ask, 10, "101.00000")))
	mustEmpty(t, step(newAction(t, 10008, "IBM", matching.Ask, 10, "102.00000")))

	r = step(newAction(t, 10008, "IBM", matching.Ask, 10, "102.00000"))
	if len(r) != 1 || r[0].Kind != ResultError || r[0].Err.Kind != matching.KindDuplicateOid {
		t.Fatalf("dup 10008: got %+v", r)
	}

	mustEmpty(t, step(newAction(t, 10009, "IBM", matching.Ask, 10, "102.00000")))

	r = step(printAction())
	wantOids := []matching.OID{10008, 10009, 10007, 10006, 10001, 10005}
	if len(r) != len(wantOids) {
		t.Fatalf("print: got %d results, want %d: %+v", len(r), len(wantOids), r)
	}
	for i, oid := range wantOids {
		if r[i].Kind != ResultPrint || r[i].View.OID != oid {
			t.Fatalf("print[%d]: got %+v, want oid %v", i, r[i], oid)
		}
	}

	r = step(newAction(t, 10010, "IBM", matching.Bid, 13, "102.00000"))
	requireFills(t, r, []matching.Fill{
		{OID: 10010, Symbol: "IBM", Qty: 10, Price: mustPrice(t, "101.00000")},
		{OID: 10007, Symbol: "IBM", Qty: 10, Price: mustPrice(t, "101.00000")},
		{OID: 10010, Symbol: "IBM", Qty: 3, Price: mustPrice(t, "102.00000")},
		{OID: 10008, Symbol: "IBM", Qty: 3, Price: mustPrice(t, "102.00000")},
	})
}

func cancelAction(oid matching.OID) Action {
	return Action{Kind: ActionCancel, OID: oid}
}

func printAction() Action {
	return Action{Kind: ActionPrint}
}

func TestDuplicateOidAfterFullFill(t *testing.T) {
	e := New()
	e.Dispatch(newAction(t, 1, "IBM", matching.Bid, 5, "10.00000"))
	e.Dispatch(newAction(t, 2, "IBM", matching.Ask, 5, "10.00000")) // fully fills both 1 and 2

	r := e.Dispatch(newAction(t, 1, "IBM", matching.Ask, 1, "10.00000"))
	if len(r) != 1 || r[0].Kind != ResultError || r[0].Err.Kind != matching.KindDuplicateOid {
		t.Fatalf("re-using a fully-filled oid must still be rejected, got %+v", r)
	}
}

// TestBadSymbolTakesPrecedenceOverDuplicateOid pins the validation order
// for a line that is wrong in two ways at once: a malformed symbol must
// be reported even when the oid is already in use, because field
// validation runs before the oid index is ever consulted.
func TestBadSymbolTakesPrecedenceOverDuplicateOid(t *testing.T) {
	e := New()
	e.Dispatch(newAction(t, 1, "IBM", matching.Bid, 10, "100.00000"))

	r := e.Dispatch(newAction(t, 1, "not a symbol", matching.Bid, 10, "100.00000"))
	if len(r) != 1 || r[0].Kind != ResultError || r[0].Err.Kind != matching.KindBadSymbol {
		t.Fatalf("reused oid with a malformed symbol must report BadSymbol, got %+v", r)
	}
}

func TestSymbolIsolation(t *testing.T) {
	e := New()
	e.Dispatch(newAction(t, 1, "IBM", matching.Bid, 10, "100.00000"))
	r := e.Dispatch(newAction(t, 2, "MSFT", matching.Ask, 10, "50.00000"))
	if len(r) != 0 {
		t.Fatalf("orders on different symbols must not cross, got %+v", r)
	}
}

func TestUnknownOidOnCancel(t *testing.T) {
	e := New()
	r := e.Dispatch(cancelAction(999))
	if len(r) != 1 || r[0].Kind != ResultError || r[0].Err.Kind != matching.KindUnknownOid {
		t.Fatalf("got %+v", r)
	}
}

func TestCancelOmittedFromPrint(t *testing.T) {
	e := New()
	e.Dispatch(newAction(t, 1, "IBM", matching.Bid, 5, "10.00000"))
	e.Dispatch(cancelAction(1))
	r := e.Dispatch(printAction())
	if len(r) != 0 {
		t.Fatalf("expected empty print after cancel, got %+v", r)
	}
}

func TestIdempotentPrint(t *testing.T) {
	e := New()
	e.Dispatch(newAction(t, 1, "IBM", matching.Bid, 5, "10.00000"))
	r1 := e.Dispatch(printAction())
	r2 := e.Dispatch(printAction())
	if len(r1) != len(r2) {
		t.Fatalf("print results differ in length: %+v vs %+v", r1, r2)
	}
	for i := range r1 {
		if *r1[i].View != *r2[i].View {
			t.Fatalf("print results differ at %d: %+v vs %+v", i, r1[i], r2[i])
		}
	}
}

func requireFills(t *testing.T, results []Result, want []matching.Fill) {
	t.Helper()
	if len(results) != len(want) {
		t.Fatalf("got %d results %+v, want %d fills %+v", len(results), results, len(want), want)
	}
	for i, w := range want {
		if results[i].Kind != ResultFill || *results[i].Fill != w {
			t.Fatalf("result %d: got %+v, want fill %+v", i, results[i], w)
		}
	}
}

func mustEmpty(t *testing.T, r []Result) {
	t.Helper()
	if len(r) != 0 {
		t.Fatalf("expected no results, got %+v", r)
	}
}
