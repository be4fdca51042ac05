// Package algebra implements the pure reasoning primitives behind the rule
// catalog: interval intersection for numeric and date constraints, membership
// tracking for enumerated and boolean properties, and substring consistency
// for text properties. Every function is a pure computation over parsed
// inputs; unparsable operands are filtered out before they reach this
// package.
package algebra

import (
	"math"

	"github.com/filterwise/conflint/internal/conditions"
)

// Interval is a closed numeric interval. The zero value is the degenerate
// point [0,0]; use Full() for the unconstrained interval.
type Interval struct {
	Min float64
	Max float64
}

// Full returns the unconstrained interval.
func Full() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Feasible reports whether any value can satisfy the interval.
func (iv Interval) Feasible() bool {
	return iv.Min <= iv.Max
}

// Contains reports whether the point v lies inside the interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// Constraint is one parsed comparison over a single property.
type Constraint struct {
	Op     conditions.Operator
	Value  float64
	Value2 float64
}

// ParseFunc converts a raw condition operand into a comparable number.
// conditions.ParseNumber serves numeric properties, conditions.ParseDateMillis
// serves date properties.
type ParseFunc func(string) (float64, bool)

// ConstraintOf parses one condition into a Constraint. It abstains (ok ==
// false) when the operand does not parse, or when a range operator is missing
// either bound.
func ConstraintOf(c conditions.Condition, parse ParseFunc) (Constraint, bool) {
	op := conditions.NormalizeOperator(c.Operator)
	v, ok := parse(c.Value)
	if !ok {
		return Constraint{}, false
	}
	out := Constraint{Op: op, Value: v}
	if c.IsRange() {
		v2, ok := parse(c.Value2)
		if !ok {
			return Constraint{}, false
		}
		out.Value2 = v2
	}
	return out, true
}

// Intersect folds comparison constraints into the tightest feasible interval.
// Strict comparisons tighten by exactly one step (the property's minimum
// distinguishable increment). Exclusion operators (not_equals, not_between)
// and exact points (equals) do not tighten the interval; equals is checked
// separately against the interval implied by the rest.
func Intersect(cs []Constraint, step float64) Interval {
	iv := Full()
	for _, c := range cs {
		switch c.Op {
		case conditions.OpGreaterThan:
			iv.Min = math.Max(iv.Min, c.Value+step)
		case conditions.OpGreaterThanEqual:
			iv.Min = math.Max(iv.Min, c.Value)
		case conditions.OpLessThan:
			iv.Max = math.Min(iv.Max, c.Value-step)
		case conditions.OpLessThanEqual:
			iv.Max = math.Min(iv.Max, c.Value)
		case conditions.OpBetween:
			lo, hi := c.Value, c.Value2
			if lo > hi {
				lo, hi = hi, lo
			}
			iv.Min = math.Max(iv.Min, lo)
			iv.Max = math.Min(iv.Max, hi)
		}
	}
	return iv
}

// IntersectWithPoints behaves like Intersect but folds equals constraints as
// degenerate point intervals. Cross-property ordering checks use this form,
// where attribution to a particular row no longer matters.
func IntersectWithPoints(cs []Constraint, step float64) Interval {
	iv := Intersect(cs, step)
	for _, c := range cs {
		if c.Op == conditions.OpEquals {
			iv.Min = math.Max(iv.Min, c.Value)
			iv.Max = math.Min(iv.Max, c.Value)
		}
	}
	return iv
}

// EqualsPoints extracts the exact-point values among constraints.
func EqualsPoints(cs []Constraint) []float64 {
	var pts []float64
	for _, c := range cs {
		if c.Op == conditions.OpEquals {
			pts = append(pts, c.Value)
		}
	}
	return pts
}
