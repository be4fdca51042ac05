package catalog

import (
	"fmt"

	"github.com/filterwise/conflint/internal/algebra"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

// numericConstraints parses every include-mode condition on cond's property
// (cond included) into interval constraints, abstaining per condition.
func numericConstraints(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) ([]algebra.Constraint, schema.Property, bool) {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassNumeric || !cond.Include() {
		return nil, prop, false
	}
	all := append(sameProperty(others, cond.Property), cond)
	var cs []algebra.Constraint
	for _, c := range all {
		if con, ok := algebra.ConstraintOf(c, conditions.ParseNumber); ok {
			cs = append(cs, con)
		}
	}
	return cs, prop, true
}

func checkNumericRange(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	cs, prop, ok := numericConstraints(reg, cond, others)
	if !ok || len(cs) < 2 {
		return nil
	}
	iv := algebra.Intersect(cs, prop.Step)
	if iv.Feasible() {
		return nil
	}
	issue := conditions.NewError(
		conditions.KindNumericRangeImpossible,
		fmt.Sprintf("the combined %s conditions require a value above %g and below %g at the same time", prop.Label, iv.Min, iv.Max),
		"value",
	)
	return &issue
}

// checkNumericEqualsRange verifies that an exact point demanded by this
// condition fits inside the interval implied by the other conditions on the
// same property, and that no two exact points disagree.
func checkNumericEqualsRange(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	if conditions.NormalizeOperator(cond.Operator) != conditions.OpEquals || !cond.Include() {
		return nil
	}
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassNumeric {
		return nil
	}
	point, ok := conditions.ParseNumber(cond.Value)
	if !ok {
		return nil
	}

	var cs []algebra.Constraint
	for _, c := range sameProperty(others, cond.Property) {
		if con, ok := algebra.ConstraintOf(c, conditions.ParseNumber); ok {
			cs = append(cs, con)
		}
	}
	if len(cs) == 0 {
		return nil
	}

	for _, other := range algebra.EqualsPoints(cs) {
		if other != point {
			issue := conditions.NewError(
				conditions.KindEqualsIncompatibleRange,
				fmt.Sprintf("%s cannot equal both %g and %g", prop.Label, point, other),
				"value",
			)
			return &issue
		}
	}

	iv := algebra.Intersect(cs, prop.Step)
	if iv.Feasible() && !iv.Contains(point) {
		issue := conditions.NewError(
			conditions.KindEqualsIncompatibleRange,
			fmt.Sprintf("%s = %g falls outside the range required by the other conditions", prop.Label, point),
			"value",
		)
		return &issue
	}
	return nil
}
