package price

import "testing"

func TestParseValid(t *testing.T) {
	cases := map[string]Price{
		"100.00000":   100 * Scale,
		"99.00000":    99 * Scale,
		"0.00001":     1,
		"1234567.00000": 1234567 * Scale,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"100",
		"100.0",
		"100.000000",
		"12345678.00000",
		"-1.00000",
		"0.00000",
		"abc.00000",
		"1.abcde",
	}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"100.00000", "7.50000", "1234567.99999", "0.00001"} {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if p.String() != s {
			t.Fatalf("round trip %q -> %q", s, p.String())
		}
	}
}
