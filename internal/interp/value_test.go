package interp

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
	}
	for _, c := range cases {
		if got := isTruthy(c.v); got != c.want {
			t.Errorf("isTruthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestValuesEqualCrossTypeIsFalse(t *testing.T) {
	if valuesEqual("0", 0.0) {
		t.Errorf(`expected "0" != 0`)
	}
	if !valuesEqual(nil, nil) {
		t.Errorf("expected nil == nil")
	}
	if valuesEqual(nil, false) {
		t.Errorf("expected nil != false")
	}
}

func TestFormatNumberStripsTrailingDotZero(t *testing.T) {
	cases := map[float64]string{
		3.0: "3",
		3.5: "3.5",
		0.5: "0.5",
		100: "100",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestStringifyNil(t *testing.T) {
	if got := stringify(nil); got != "nil" {
		t.Errorf("stringify(nil) = %q, want \"nil\"", got)
	}
}
