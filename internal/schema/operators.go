package schema

import "github.com/filterwise/conflint/internal/conditions"

// operatorsByClass maps each property class to its legal operator set.
var operatorsByClass = map[Class][]conditions.Operator{
	ClassNumeric: {
		conditions.OpEquals, conditions.OpNotEquals,
		conditions.OpGreaterThan, conditions.OpGreaterThanEqual,
		conditions.OpLessThan, conditions.OpLessThanEqual,
		conditions.OpBetween, conditions.OpNotBetween,
	},
	ClassSelect: {
		conditions.OpEquals, conditions.OpNotEquals,
		conditions.OpIn, conditions.OpNotIn,
	},
	ClassBoolean: {
		conditions.OpEquals, conditions.OpNotEquals,
	},
	ClassText: {
		conditions.OpEquals, conditions.OpNotEquals,
		conditions.OpContains, conditions.OpNotContains,
		conditions.OpStartsWith, conditions.OpEndsWith,
	},
	ClassDate: {
		conditions.OpEquals, conditions.OpNotEquals,
		conditions.OpGreaterThan, conditions.OpGreaterThanEqual,
		conditions.OpLessThan, conditions.OpLessThanEqual,
		conditions.OpBetween, conditions.OpNotBetween,
	},
}

// OperatorsFor returns the legal operators for a property class.
func OperatorsFor(class Class) []conditions.Operator {
	ops := operatorsByClass[class]
	out := make([]conditions.Operator, len(ops))
	copy(out, ops)
	return out
}

// OperatorLegal reports whether op may be used on a property of the given
// class.
func OperatorLegal(class Class, op conditions.Operator) bool {
	for _, legal := range operatorsByClass[class] {
		if legal == op {
			return true
		}
	}
	return false
}
