package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the runtime representation of every loxi value. It is
// always one of: nil, bool, float64, string, Callable, or *Instance.
// Go's empty interface stands in for a tagged variant over that closed
// set; the evaluator type-switches at the few points the tag matters.
type Value = any

// isTruthy implements the language's truthiness rule: nil and false
// are falsey, everything else — including 0 and "" — is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// valuesEqual implements Value equality: nil equals only nil,
// otherwise two values are equal only when they share the same
// dynamic type and that type's own equality holds (so a number is
// never equal to a string, even "0" vs 0). NaN follows IEEE-754: it
// is not equal to itself.
func valuesEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders v in its display form, the representation used
// by `print` and by `+` when concatenating a non-string operand.
func stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber prints a float64 in decimal form, stripping a trailing
// ".0" so that 3.0 prints as "3" while 3.5 still prints as "3.5".
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.Contains(s, "e") || strings.Contains(s, "E") {
		// Large/small magnitudes still need a decimal rendering; %f
		// avoids Go's default exponent form, which the language
		// never produces syntactically.
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if strings.HasSuffix(s, ".0") {
		s = strings.TrimSuffix(s, ".0")
	}
	return s
}
