package engine

import (
	"reflect"
	"testing"

	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

func newValidator() *Validator {
	return New(schema.Default())
}

func allSet(conds ...conditions.Condition) conditions.Set {
	return conditions.Set{Conditions: conds, Logic: conditions.LogicAll}
}

func cond(property string, op conditions.Operator, value string) conditions.Condition {
	return conditions.Condition{Property: property, Operator: op, Value: value}
}

func hasKind(issues []conditions.Issue, kind string) bool {
	for _, issue := range issues {
		if issue.Kind == kind {
			return true
		}
	}
	return false
}

func TestValidateAllFlagsImpossiblePriceRange(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("price", conditions.OpGreaterThan, "100"),
		cond("price", conditions.OpLessThan, "50"),
	)

	result := v.ValidateAll(set)
	if len(result) != 2 {
		t.Fatalf("expected issues on both rows, got %d rows: %v", len(result), result)
	}
	for i := 0; i < 2; i++ {
		if !hasKind(result[i], conditions.KindNumericRangeImpossible) {
			t.Fatalf("row %d missing %q: %v", i, conditions.KindNumericRangeImpossible, result[i])
		}
	}
}

func TestValidateAllCleanSet(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("price", conditions.OpGreaterThan, "50"),
		cond("stock_status", conditions.OpEquals, "instock"),
		cond("featured", conditions.OpEquals, "1"),
	)
	if result := v.ValidateAll(set); len(result) != 0 {
		t.Fatalf("expected no issues, got %v", result)
	}
}

func TestValidateAllDeterministic(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("price", conditions.OpGreaterThan, "100"),
		cond("price", conditions.OpLessThan, "50"),
		cond("featured", conditions.OpEquals, "maybe"),
	)

	first := v.ValidateAll(set)
	second := v.ValidateAll(set)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between runs:\n%v\n%v", first, second)
	}
}

func TestAnyLogicDisablesCrossChecks(t *testing.T) {
	v := newValidator()
	set := conditions.Set{
		Logic: conditions.LogicAny,
		Conditions: []conditions.Condition{
			cond("price", conditions.OpGreaterThan, "100"),
			cond("price", conditions.OpLessThan, "50"),
		},
	}
	if result := v.ValidateAll(set); len(result) != 0 {
		t.Fatalf("disjunctive sets carry no cross-condition conflicts, got %v", result)
	}
}

func TestAnyLogicKeepsSingleConditionChecks(t *testing.T) {
	v := newValidator()
	set := conditions.Set{
		Logic: conditions.LogicAny,
		Conditions: []conditions.Condition{
			{Property: "price", Operator: conditions.OpBetween, Value: "80", Value2: "20"},
		},
	}
	result := v.ValidateAll(set)
	if !hasKind(result[0], conditions.KindBetweenInverted) {
		t.Fatalf("inverted range must be flagged under any logic, got %v", result)
	}
}

func TestValidateAllBooleanContradiction(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("featured", conditions.OpEquals, "true"),
		cond("featured", conditions.OpEquals, "0"),
	)
	result := v.ValidateAll(set)
	if !hasKind(result[0], conditions.KindBooleanContradiction) || !hasKind(result[1], conditions.KindBooleanContradiction) {
		t.Fatalf("both rows should carry the boolean contradiction, got %v", result)
	}
}

func TestValidateAllStockStatusQuantity(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("stock_status", conditions.OpEquals, "instock"),
		cond("stock_quantity", conditions.OpLessThanEqual, "0"),
	)
	result := v.ValidateAll(set)
	if !hasKind(result[0], conditions.KindStockStatusConflict) || !hasKind(result[1], conditions.KindStockStatusConflict) {
		t.Fatalf("both rows should carry the stock status conflict, got %v", result)
	}
}

func TestValidateAllSelectExhaustion(t *testing.T) {
	v := newValidator()
	set := allSet(cond("product_type", conditions.OpNotIn, "simple, variable, grouped, external"))
	result := v.ValidateAll(set)
	if !hasKind(result[0], conditions.KindSelectExhaustion) {
		t.Fatalf("excluding the full domain should be flagged, got %v", result)
	}
}

func TestValidateAllRatingBounds(t *testing.T) {
	v := newValidator()
	set := allSet(cond("average_rating", conditions.OpEquals, "7"))
	result := v.ValidateAll(set)
	if !hasKind(result[0], conditions.KindRatingOutOfBounds) {
		t.Fatalf("rating above 5 should be flagged, got %v", result)
	}
}

func TestValidateAllUnparsableAbstains(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("price", conditions.OpGreaterThan, "expensive"),
		cond("price", conditions.OpLessThan, "50"),
	)
	if result := v.ValidateAll(set); len(result) != 0 {
		t.Fatalf("unparsable operands must abstain, got %v", result)
	}
}

func TestValidateAllSkipsIncompleteRows(t *testing.T) {
	v := newValidator()
	set := allSet(
		conditions.Condition{Property: "price"},
		cond("price", conditions.OpLessThan, "50"),
		cond("price", conditions.OpGreaterThan, "100"),
	)

	result := v.ValidateAll(set)
	if _, ok := result[0]; ok {
		t.Fatalf("incomplete row must yield no issues, got %v", result[0])
	}
	if !hasKind(result[1], conditions.KindNumericRangeImpossible) {
		t.Fatalf("complete rows still cross-check each other, got %v", result)
	}
}

func TestValidateAllExcludeModeIgnoredByRangeRules(t *testing.T) {
	v := newValidator()
	excluded := cond("price", conditions.OpLessThan, "50")
	excluded.Mode = conditions.ModeExclude
	set := allSet(cond("price", conditions.OpGreaterThan, "100"), excluded)

	result := v.ValidateAll(set)
	if hasKind(result[0], conditions.KindNumericRangeImpossible) {
		t.Fatalf("excluded rows must not feed the range intersection, got %v", result)
	}
}

func TestValidateAllIncludeExcludeConflict(t *testing.T) {
	v := newValidator()
	excluded := cond("price", conditions.OpGreaterThan, "100")
	excluded.Mode = conditions.ModeExclude
	set := allSet(cond("price", conditions.OpGreaterThan, "100"), excluded)

	result := v.ValidateAll(set)
	if !hasKind(result[0], conditions.KindIncludeExcludeConflict) {
		t.Fatalf("mirrored include/exclude must be flagged, got %v", result)
	}
}

func TestValidateConditionIndexBounds(t *testing.T) {
	v := newValidator()
	set := allSet(cond("price", conditions.OpGreaterThan, "100"))

	if issues := v.ValidateCondition(set, -1); issues != nil {
		t.Fatalf("negative index: got %v", issues)
	}
	if issues := v.ValidateCondition(set, 1); issues != nil {
		t.Fatalf("out-of-range index: got %v", issues)
	}
}

func TestValidateConditionSingleRow(t *testing.T) {
	v := newValidator()
	set := allSet(
		cond("price", conditions.OpGreaterThan, "100"),
		cond("price", conditions.OpLessThan, "50"),
	)

	issues := v.ValidateCondition(set, 1)
	if !hasKind(issues, conditions.KindNumericRangeImpossible) {
		t.Fatalf("expected range conflict on row 1, got %v", issues)
	}
}

func TestFingerprintStability(t *testing.T) {
	set := allSet(
		cond("price", conditions.OpGreaterThan, "100"),
		cond("stock_status", conditions.OpEquals, "instock"),
	)
	if Fingerprint(set) != Fingerprint(set) {
		t.Fatal("fingerprint must be stable for identical snapshots")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := allSet(cond("price", conditions.OpGreaterThan, "100"))

	changedValue := allSet(cond("price", conditions.OpGreaterThan, "200"))
	if Fingerprint(base) == Fingerprint(changedValue) {
		t.Fatal("changing an operand must change the fingerprint")
	}

	changedLogic := base
	changedLogic.Logic = conditions.LogicAny
	if Fingerprint(base) == Fingerprint(changedLogic) {
		t.Fatal("changing the logic must change the fingerprint")
	}

	reordered := allSet(
		cond("stock_status", conditions.OpEquals, "instock"),
		cond("price", conditions.OpGreaterThan, "100"),
	)
	ordered := allSet(
		cond("price", conditions.OpGreaterThan, "100"),
		cond("stock_status", conditions.OpEquals, "instock"),
	)
	if Fingerprint(ordered) == Fingerprint(reordered) {
		t.Fatal("condition order is part of the snapshot identity")
	}
}
