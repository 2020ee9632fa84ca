// Package price implements the engine's fixed-point price representation.
//
// Prices are never compared as binary floating point, which would let
// two textually identical prices from different input lines compare
// unequal: a Price is a signed count of 1e-5 units, parsed from and
// formatted to exactly the "7.5" wire format (up to 7 integer digits,
// exactly 5 fractional digits, no sign, no exponent).
package price

import (
	"strconv"
	"strings"
)

// Scale is the number of Price units per whole number (10^5, i.e. 5
// fractional digits).
const Scale = 100_000

// Price is a strictly positive fixed-point value, held as a multiple of
// 1e-5. The zero value is not a valid price.
type Price int64

// Parse validates and converts a "7.5" formatted string into a Price.
// The integer part must be 1-7 digits, the fractional part exactly 5
// digits, and the value must be strictly positive.
func Parse(s string) (Price, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0, errMalformed("price missing decimal point")
	}
	intPart, fracPart := s[:dot], s[dot+1:]
	if len(intPart) == 0 || len(intPart) > 7 {
		return 0, errMalformed("price integer part must be 1-7 digits")
	}
	if len(fracPart) != 5 {
		return 0, errMalformed("price fractional part must be exactly 5 digits")
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, errMalformed("price must contain only digits and one decimal point")
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, errMalformed("price integer part unparseable")
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, errMalformed("price fractional part unparseable")
	}

	p := Price(whole*Scale + frac)
	if p <= 0 {
		return 0, errMalformed("price must be positive")
	}
	return p, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String formats the price in the canonical "7.5" wire format.
func (p Price) String() string {
	neg := p < 0
	v := int64(p)
	if neg {
		v = -v
	}
	whole := v / Scale
	frac := v % Scale
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + strconv.FormatInt(whole, 10) + "." + zeroPad(frac, 5)
}

func zeroPad(v int64, width int) string {
	s := strconv.FormatInt(v, 10)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

type malformedError string

func (e malformedError) Error() string { return string(e) }

func errMalformed(msg string) error { return malformedError(msg) }
