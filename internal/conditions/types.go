// Package conditions holds the data model shared across the contradiction
// detector: conditions, condition sets, operators, and issue diagnostics.
package conditions

import "strings"

// Operator represents a comparison operator used in filter conditions.
type Operator string

// Supported filter operators (string values for clean JSON serialization).
const (
	OpEquals           Operator = "equals"
	OpNotEquals        Operator = "not_equals"
	OpGreaterThan      Operator = "greater_than"
	OpGreaterThanEqual Operator = "greater_than_equal"
	OpLessThan         Operator = "less_than"
	OpLessThanEqual    Operator = "less_than_equal"
	OpBetween          Operator = "between"
	OpNotBetween       Operator = "not_between"
	OpIn               Operator = "in"
	OpNotIn            Operator = "not_in"
	OpContains         Operator = "contains"
	OpNotContains      Operator = "not_contains"
	OpStartsWith       Operator = "starts_with"
	OpEndsWith         Operator = "ends_with"
)

// NormalizeOperator maps operator aliases and symbols onto the canonical
// vocabulary. Unknown spellings pass through unchanged.
func NormalizeOperator(op Operator) Operator {
	switch strings.ToLower(string(op)) {
	case "==", "eq", "equals":
		return OpEquals
	case "!=", "neq", "not_equals":
		return OpNotEquals
	case ">", "gt", "greater_than":
		return OpGreaterThan
	case ">=", "gte", "greater_than_equal":
		return OpGreaterThanEqual
	case "<", "lt", "less_than":
		return OpLessThan
	case "<=", "lte", "less_than_equal":
		return OpLessThanEqual
	case "between":
		return OpBetween
	case "not_between":
		return OpNotBetween
	case "in", "in_list":
		return OpIn
	case "not_in", "not_in_list", "nin":
		return OpNotIn
	case "contains":
		return OpContains
	case "not_contains", "notcontains":
		return OpNotContains
	case "starts_with", "startswith":
		return OpStartsWith
	case "ends_with", "endswith":
		return OpEndsWith
	default:
		return op
	}
}

// Mode controls whether a condition narrows the matched set directly or
// subtracts a complementary set from it.
type Mode string

const (
	ModeInclude Mode = "include"
	ModeExclude Mode = "exclude"
)

// Logic is the combination logic of a condition set.
type Logic string

const (
	// LogicAll combines conditions as a conjunction. Cross-condition
	// contradiction rules only apply here.
	LogicAll Logic = "all"
	// LogicAny combines conditions as a disjunction; adding alternatives
	// can only widen the matched set, so only single-condition checks
	// remain meaningful.
	LogicAny Logic = "any"
)

// Condition is one user-authored filter constraint. Values stay raw strings;
// numeric and date parsing happens at evaluation time and is never written
// back.
type Condition struct {
	Property string   `json:"property" yaml:"property"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    string   `json:"value" yaml:"value"`
	// Value2 is the upper bound for between / not_between.
	Value2 string `json:"value2,omitempty" yaml:"value2,omitempty"`
	Mode   Mode   `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Complete reports whether the condition is eligible for evaluation.
// Rows under construction (no property or operator picked yet) are always
// skipped.
func (c Condition) Complete() bool {
	return c.Property != "" && c.Operator != ""
}

// Include reports whether the condition participates directly in the match
// (an unset mode defaults to include).
func (c Condition) Include() bool {
	return c.Mode == "" || c.Mode == ModeInclude
}

// IsRange reports whether the operator takes two values.
func (c Condition) IsRange() bool {
	op := NormalizeOperator(c.Operator)
	return op == OpBetween || op == OpNotBetween
}

// Set is an ordered snapshot of conditions plus the combination logic under
// which they apply. The engine only ever reads snapshots; the authoritative
// set lives in the caller's store.
type Set struct {
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	Logic      Logic       `json:"logic" yaml:"logic"`
}

// Others returns every complete condition except the one at index.
// Incomplete rows never participate in cross-checks.
func (s Set) Others(index int) []Condition {
	out := make([]Condition, 0, len(s.Conditions))
	for i, c := range s.Conditions {
		if i == index || !c.Complete() {
			continue
		}
		out = append(out, c)
	}
	return out
}
