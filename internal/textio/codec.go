// Package textio implements the line-oriented action/result protocol:
// tokenizing an input line into an engine.Action, and formatting an
// engine.Result back into its output line. It is a thin driver around
// the engine, owning no matching state of its own.
package textio

import (
	"strconv"
	"strings"

	"crossengine/internal/engine"
	"crossengine/internal/matching"
	"crossengine/internal/price"
)

// ParseLine tokenizes one input line into an Action. On any malformed
// input it returns a protocol Error instead, carrying an oid when one
// could still be recovered from the line.
func ParseLine(line string) (engine.Action, *matching.Error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return engine.Action{}, matching.NewErrorNoOid(matching.KindMalformedInput)
	}

	switch fields[0] {
	case "O":
		return parseNew(fields)
	case "X":
		return parseCancel(fields)
	case "P":
		if len(fields) != 1 {
			return engine.Action{}, matching.NewErrorNoOid(matching.KindMalformedInput)
		}
		return engine.Action{Kind: engine.ActionPrint}, nil
	default:
		return engine.Action{}, matching.NewErrorNoOid(matching.KindBadAction)
	}
}

func parseNew(fields []string) (engine.Action, *matching.Error) {
	if len(fields) != 6 {
		return engine.Action{}, malformedWithOID(fields, 1)
	}
	oid, oidErr := parseOID(fields[1])
	if oidErr != nil {
		return engine.Action{}, matching.NewErrorNoOid(matching.KindMalformedInput)
	}

	symbol := fields[2]

	var side matching.Side
	switch fields[3] {
	case "B":
		side = matching.Bid
	case "S":
		side = matching.Ask
	default:
		return engine.Action{}, matching.NewError(matching.KindBadSide, oid)
	}

	qty, err := parseQty(fields[4])
	if err != nil {
		return engine.Action{}, matching.NewError(matching.KindMalformedInput, oid)
	}

	p, err := price.Parse(fields[5])
	if err != nil {
		return engine.Action{}, matching.NewError(matching.KindMalformedInput, oid)
	}

	return engine.Action{
		Kind:   engine.ActionNew,
		OID:    oid,
		Symbol: symbol,
		Side:   side,
		Qty:    qty,
		Price:  p,
	}, nil
}

func parseCancel(fields []string) (engine.Action, *matching.Error) {
	if len(fields) != 2 {
		return engine.Action{}, matching.NewErrorNoOid(matching.KindMalformedInput)
	}
	oid, err := parseOID(fields[1])
	if err != nil {
		return engine.Action{}, matching.NewErrorNoOid(matching.KindMalformedInput)
	}
	return engine.Action{Kind: engine.ActionCancel, OID: oid}, nil
}

// malformedWithOID tries to recover an oid from an O line with the wrong
// field count, so the emitted error can still carry one when possible,
// giving a more useful error without changing the Kind.
func malformedWithOID(fields []string, idx int) *matching.Error {
	if idx < len(fields) {
		if oid, err := parseOID(fields[idx]); err == nil {
			return matching.NewError(matching.KindMalformedInput, oid)
		}
	}
	return matching.NewErrorNoOid(matching.KindMalformedInput)
}

func parseOID(s string) (matching.OID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, strconvErr(s)
	}
	return matching.OID(v), nil
}

func parseQty(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil || v == 0 {
		return 0, strconvErr(s)
	}
	return uint16(v), nil
}

type badValueError string

func (e badValueError) Error() string { return string(e) }

func strconvErr(s string) error { return badValueError("bad value: " + s) }

// FormatResult renders one engine.Result as its output line.
func FormatResult(r engine.Result) string {
	switch r.Kind {
	case engine.ResultFill:
		f := r.Fill
		return "F " + formatOID(f.OID) + " " + f.Symbol + " " + strconv.FormatUint(uint64(f.Qty), 10) + " " + f.Price.String()
	case engine.ResultCancelAck:
		return "X " + formatOID(r.OID)
	case engine.ResultPrint:
		v := r.View
		return "P " + formatOID(v.OID) + " " + v.Symbol + " " + v.Side.String() + " " + strconv.FormatUint(uint64(v.OpenQty), 10) + " " + v.Price.String()
	case engine.ResultError:
		return formatError(r.Err)
	default:
		return ""
	}
}

func formatError(e *matching.Error) string {
	if e.OID == nil {
		return "E " + e.Kind.Message()
	}
	return "E " + formatOID(*e.OID) + " " + e.Kind.Message()
}

func formatOID(oid matching.OID) string {
	return strconv.FormatUint(uint64(oid), 10)
}
