// Package catalog is the ordered list of contradiction detectors. Each
// detector is an independent pure function given the condition under test and
// the other complete conditions of the set; it returns at most one issue.
// Detectors never mutate their inputs and never consult state outside the
// snapshot they are handed.
package catalog

import (
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

// Scope separates defects a condition carries on its own from defects that
// only exist against the rest of the set. Cross-scope detectors are gated on
// conjunctive combination logic by the driver: a disjunction cannot be made
// infeasible by widening it with more alternatives.
type Scope int

const (
	ScopeSingle Scope = iota
	ScopeCross
)

// CheckFunc inspects one condition. others holds every other complete
// condition of the set (empty for single-scope detectors).
type CheckFunc func(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue

// Detector is one named contradiction rule.
type Detector struct {
	Name  string
	Scope Scope
	Check CheckFunc
}

// Registry returns the full detector list in evaluation order. Order decides
// which issue surfaces first when several detectors fire for one row; the
// driver concatenates all results, so ordering is presentational only.
func Registry() []Detector {
	dets := []Detector{
		{Name: "between_inverted", Scope: ScopeSingle, Check: checkBetweenInverted},
		{Name: "bounded_domain", Scope: ScopeSingle, Check: checkBoundedDomain},
		{Name: "negative_value", Scope: ScopeSingle, Check: checkNegativeValue},
		{Name: "unknown_select_value", Scope: ScopeSingle, Check: checkUnknownSelectValue},
		{Name: "invalid_boolean_value", Scope: ScopeSingle, Check: checkInvalidBooleanValue},

		{Name: "numeric_range", Scope: ScopeCross, Check: checkNumericRange},
		{Name: "numeric_equals_range", Scope: ScopeCross, Check: checkNumericEqualsRange},
		{Name: "select_membership", Scope: ScopeCross, Check: checkSelectMembership},
		{Name: "boolean_contradiction", Scope: ScopeCross, Check: checkBooleanContradiction},
		{Name: "text_consistency", Scope: ScopeCross, Check: checkTextConsistency},
		{Name: "date_range", Scope: ScopeCross, Check: checkDateRange},
		{Name: "date_equals_range", Scope: ScopeCross, Check: checkDateEqualsRange},
	}
	dets = append(dets, pairOrderDetectors()...)
	dets = append(dets,
		Detector{Name: "stock_status_quantity", Scope: ScopeCross, Check: checkStockStatusQuantity},
		Detector{Name: "virtual_physical", Scope: ScopeCross, Check: checkVirtualPhysical},
		Detector{Name: "downloadable_physical", Scope: ScopeCross, Check: checkDownloadablePhysical},
		Detector{Name: "include_exclude", Scope: ScopeCross, Check: checkIncludeExclude},
		Detector{Name: "duplicate_condition", Scope: ScopeCross, Check: checkDuplicateCondition},
	)
	return dets
}

// sameProperty returns the include-mode conditions among others constraining
// the given property key.
func sameProperty(conds []conditions.Condition, key string) []conditions.Condition {
	out := make([]conditions.Condition, 0, len(conds))
	for _, c := range conds {
		if c.Property == key && c.Include() {
			out = append(out, c)
		}
	}
	return out
}
