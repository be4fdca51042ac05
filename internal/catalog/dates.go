package catalog

import (
	"fmt"

	"github.com/filterwise/conflint/internal/algebra"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

func checkDateRange(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassDate || !cond.Include() {
		return nil
	}
	all := append(sameProperty(others, cond.Property), cond)
	cs := algebra.DateConstraints(all)
	if len(cs) < 2 {
		return nil
	}
	if algebra.Intersect(cs, prop.Step).Feasible() {
		return nil
	}
	issue := conditions.NewError(
		conditions.KindDateRangeImpossible,
		fmt.Sprintf("the combined %s conditions describe an empty date range", prop.Label),
		"value",
	)
	return &issue
}

func checkDateEqualsRange(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	if conditions.NormalizeOperator(cond.Operator) != conditions.OpEquals || !cond.Include() {
		return nil
	}
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassDate {
		return nil
	}
	point, ok := conditions.ParseDateMillis(cond.Value)
	if !ok {
		return nil
	}

	cs := algebra.DateConstraints(sameProperty(others, cond.Property))
	if len(cs) == 0 {
		return nil
	}
	for _, other := range algebra.EqualsPoints(cs) {
		if other != point {
			issue := conditions.NewError(
				conditions.KindDateEqualsIncompatible,
				fmt.Sprintf("%s cannot equal two different dates", prop.Label),
				"value",
			)
			return &issue
		}
	}
	iv := algebra.Intersect(cs, prop.Step)
	if iv.Feasible() && !iv.Contains(point) {
		issue := conditions.NewError(
			conditions.KindDateEqualsIncompatible,
			fmt.Sprintf("%s = %s falls outside the window required by the other conditions", prop.Label, cond.Value),
			"value",
		)
		return &issue
	}
	return nil
}
