package algebra

import "github.com/filterwise/conflint/internal/conditions"

// Date reasoning reuses the interval primitives over epoch-millisecond
// values. The helpers here turn raw date conditions into constraints and
// express the one genuinely temporal rule: a lower bound on one property
// cannot be required to exceed the upper bound of another property that must
// come later.

// DateConstraints parses the date conditions of one property, dropping any
// whose operand does not parse.
func DateConstraints(conds []conditions.Condition) []Constraint {
	var out []Constraint
	for _, c := range conds {
		if con, ok := ConstraintOf(c, conditions.ParseDateMillis); ok {
			out = append(out, con)
		}
	}
	return out
}

// DateWindow computes the feasible epoch-millisecond window implied by a set
// of date constraints.
func DateWindow(conds []conditions.Condition, stepMillis float64) Interval {
	return Intersect(DateConstraints(conds), stepMillis)
}

// OrderViolated reports whether the interval required for the lower property
// starts after the interval required for the upper property ends. strict
// additionally rejects equality (a sale price equal to the regular price is
// not a sale).
func OrderViolated(lower, upper Interval, strict bool) bool {
	if !lower.Feasible() || !upper.Feasible() {
		return false
	}
	if strict {
		return lower.Min >= upper.Max
	}
	return lower.Min > upper.Max
}
