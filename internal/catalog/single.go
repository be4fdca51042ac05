package catalog

import (
	"fmt"
	"strings"

	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

// Single-condition detectors. These run under both combination logics: a row
// that can never match by itself is defective no matter how it is combined.

func checkBetweenInverted(reg *schema.Registry, cond conditions.Condition, _ []conditions.Condition) *conditions.Issue {
	if !cond.IsRange() {
		return nil
	}
	prop := reg.Classify(cond.Property)

	parse := conditions.ParseNumber
	if prop.Class == schema.ClassDate {
		parse = conditions.ParseDateMillis
	}
	lo, okLo := parse(cond.Value)
	hi, okHi := parse(cond.Value2)
	if !okLo || !okHi {
		return nil
	}
	if lo > hi {
		issue := conditions.NewError(
			conditions.KindBetweenInverted,
			fmt.Sprintf("%s range is inverted: the lower bound %s is above the upper bound %s", prop.Label, cond.Value, cond.Value2),
			"value2",
		)
		return &issue
	}
	return nil
}

func checkBoundedDomain(reg *schema.Registry, cond conditions.Condition, _ []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassNumeric || (prop.Min == nil && prop.Max == nil) {
		return nil
	}

	outside := func(v float64, field string) *conditions.Issue {
		issue := conditions.NewError(
			conditions.KindRatingOutOfBounds,
			fmt.Sprintf("%s is limited to %s; %g can never match", prop.Label, boundsText(prop), v),
			field,
		)
		return &issue
	}

	switch conditions.NormalizeOperator(cond.Operator) {
	case conditions.OpEquals:
		v, ok := conditions.ParseNumber(cond.Value)
		if !ok {
			return nil
		}
		if (prop.Min != nil && v < *prop.Min) || (prop.Max != nil && v > *prop.Max) {
			return outside(v, "value")
		}
	case conditions.OpGreaterThan, conditions.OpGreaterThanEqual:
		v, ok := conditions.ParseNumber(cond.Value)
		if !ok || prop.Max == nil {
			return nil
		}
		strict := conditions.NormalizeOperator(cond.Operator) == conditions.OpGreaterThan
		if v > *prop.Max || (strict && v >= *prop.Max) {
			return outside(v, "value")
		}
	case conditions.OpLessThan, conditions.OpLessThanEqual:
		v, ok := conditions.ParseNumber(cond.Value)
		if !ok || prop.Min == nil {
			return nil
		}
		strict := conditions.NormalizeOperator(cond.Operator) == conditions.OpLessThan
		if v < *prop.Min || (strict && v <= *prop.Min) {
			return outside(v, "value")
		}
	case conditions.OpBetween:
		lo, okLo := conditions.ParseNumber(cond.Value)
		hi, okHi := conditions.ParseNumber(cond.Value2)
		if !okLo || !okHi || lo > hi {
			return nil
		}
		if (prop.Max != nil && lo > *prop.Max) || (prop.Min != nil && hi < *prop.Min) {
			return outside(lo, "value")
		}
	}
	return nil
}

func boundsText(prop schema.Property) string {
	switch {
	case prop.Min != nil && prop.Max != nil:
		return fmt.Sprintf("%g to %g", *prop.Min, *prop.Max)
	case prop.Min != nil:
		return fmt.Sprintf("%g or above", *prop.Min)
	default:
		return fmt.Sprintf("%g or below", *prop.Max)
	}
}

func checkNegativeValue(reg *schema.Registry, cond conditions.Condition, _ []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassNumeric || !prop.NonNegative {
		return nil
	}

	flag := func(raw, field string) *conditions.Issue {
		v, ok := conditions.ParseNumber(raw)
		if !ok || v >= 0 {
			return nil
		}
		issue := conditions.NewError(
			conditions.KindNegativeValue,
			fmt.Sprintf("%s can never be negative", prop.Label),
			field,
		)
		return &issue
	}

	switch conditions.NormalizeOperator(cond.Operator) {
	case conditions.OpEquals, conditions.OpLessThan, conditions.OpLessThanEqual:
		// equals -5 matches nothing; "< -5" / "<= -5" likewise.
		if issue := flag(cond.Value, "value"); issue != nil {
			return issue
		}
	case conditions.OpBetween:
		// Only impossible when the whole range sits below zero.
		hi, ok := conditions.ParseNumber(cond.Value2)
		if ok && hi < 0 {
			return flag(cond.Value2, "value2")
		}
	}
	return nil
}

func checkUnknownSelectValue(reg *schema.Registry, cond conditions.Condition, _ []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassSelect || len(prop.Domain) == 0 {
		return nil
	}

	var literals []string
	switch conditions.NormalizeOperator(cond.Operator) {
	case conditions.OpEquals:
		v := strings.TrimSpace(cond.Value)
		if v == "" {
			return nil
		}
		literals = []string{v}
	case conditions.OpIn:
		items, ok := conditions.ParseList(cond.Value)
		if !ok {
			return nil
		}
		literals = items
	default:
		return nil
	}

	for _, lit := range literals {
		if !domainHas(prop.Domain, lit) {
			issue := conditions.NewError(
				conditions.KindUnknownSelectValue,
				fmt.Sprintf("%q is not a valid %s value", lit, prop.Label),
				"value",
			)
			return &issue
		}
	}
	return nil
}

func checkInvalidBooleanValue(reg *schema.Registry, cond conditions.Condition, _ []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassBoolean {
		return nil
	}
	if strings.TrimSpace(cond.Value) == "" {
		return nil
	}
	if _, ok := conditions.ParseBool(cond.Value); !ok {
		issue := conditions.NewError(
			conditions.KindInvalidBooleanValue,
			fmt.Sprintf("%s expects a yes/no value", prop.Label),
			"value",
		)
		return &issue
	}
	return nil
}

func domainHas(domain []string, v string) bool {
	for _, d := range domain {
		if d == v {
			return true
		}
	}
	return false
}
