package catalog

import (
	"testing"

	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

var testReg = schema.Default()

func mkCond(property string, op conditions.Operator, value string) conditions.Condition {
	return conditions.Condition{Property: property, Operator: op, Value: value}
}

func TestCheckBetweenInverted(t *testing.T) {
	tests := []struct {
		name string
		cond conditions.Condition
		want bool
	}{
		{
			name: "inverted numeric bounds",
			cond: conditions.Condition{Property: "price", Operator: conditions.OpBetween, Value: "80", Value2: "20"},
			want: true,
		},
		{
			name: "ordered numeric bounds",
			cond: conditions.Condition{Property: "price", Operator: conditions.OpBetween, Value: "20", Value2: "80"},
			want: false,
		},
		{
			name: "inverted not_between",
			cond: conditions.Condition{Property: "price", Operator: conditions.OpNotBetween, Value: "80", Value2: "20"},
			want: true,
		},
		{
			name: "inverted date bounds",
			cond: conditions.Condition{Property: "date_created", Operator: conditions.OpBetween, Value: "2025-06-30", Value2: "2025-01-01"},
			want: true,
		},
		{
			name: "unparsable bound abstains",
			cond: conditions.Condition{Property: "price", Operator: conditions.OpBetween, Value: "80", Value2: "cheap"},
			want: false,
		},
		{
			name: "non-range operator ignored",
			cond: mkCond("price", conditions.OpGreaterThan, "80"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := checkBetweenInverted(testReg, tt.cond, nil)
			if (issue != nil) != tt.want {
				t.Fatalf("checkBetweenInverted() issue = %v, want present = %v", issue, tt.want)
			}
			if issue != nil && issue.Kind != conditions.KindBetweenInverted {
				t.Fatalf("issue kind = %q, want %q", issue.Kind, conditions.KindBetweenInverted)
			}
		})
	}
}

func TestCheckBoundedDomain(t *testing.T) {
	tests := []struct {
		name string
		cond conditions.Condition
		want bool
	}{
		{name: "equals above max", cond: mkCond("average_rating", conditions.OpEquals, "7"), want: true},
		{name: "equals inside", cond: mkCond("average_rating", conditions.OpEquals, "4.5"), want: false},
		{name: "gte above max", cond: mkCond("average_rating", conditions.OpGreaterThanEqual, "6"), want: true},
		{name: "gt at max", cond: mkCond("average_rating", conditions.OpGreaterThan, "5"), want: true},
		{name: "gte at max", cond: mkCond("average_rating", conditions.OpGreaterThanEqual, "5"), want: false},
		{name: "lt at min", cond: mkCond("average_rating", conditions.OpLessThan, "0"), want: true},
		{
			name: "between entirely above",
			cond: conditions.Condition{Property: "average_rating", Operator: conditions.OpBetween, Value: "6", Value2: "9"},
			want: true,
		},
		{name: "unbounded property ignored", cond: mkCond("price", conditions.OpEquals, "7000"), want: false},
		{name: "unparsable abstains", cond: mkCond("average_rating", conditions.OpEquals, "lots"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := checkBoundedDomain(testReg, tt.cond, nil)
			if (issue != nil) != tt.want {
				t.Fatalf("checkBoundedDomain() issue = %v, want present = %v", issue, tt.want)
			}
		})
	}
}

func TestCheckNegativeValue(t *testing.T) {
	tests := []struct {
		name string
		cond conditions.Condition
		want bool
	}{
		{name: "negative price equals", cond: mkCond("price", conditions.OpEquals, "-5"), want: true},
		{name: "price below negative", cond: mkCond("price", conditions.OpLessThanEqual, "-1"), want: true},
		{
			name: "between fully below zero",
			cond: conditions.Condition{Property: "price", Operator: conditions.OpBetween, Value: "-10", Value2: "-1"},
			want: true,
		},
		{
			name: "between straddles zero",
			cond: conditions.Condition{Property: "price", Operator: conditions.OpBetween, Value: "-10", Value2: "5"},
			want: false,
		},
		{name: "greater_than negative is satisfiable", cond: mkCond("price", conditions.OpGreaterThan, "-5"), want: false},
		{name: "stock quantity may go negative", cond: mkCond("stock_quantity", conditions.OpEquals, "-3"), want: false},
		{name: "unparsable abstains", cond: mkCond("price", conditions.OpEquals, "minus five"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := checkNegativeValue(testReg, tt.cond, nil)
			if (issue != nil) != tt.want {
				t.Fatalf("checkNegativeValue() issue = %v, want present = %v", issue, tt.want)
			}
		})
	}
}

func TestCheckUnknownSelectValue(t *testing.T) {
	tests := []struct {
		name string
		cond conditions.Condition
		want bool
	}{
		{name: "legal value", cond: mkCond("stock_status", conditions.OpEquals, "instock"), want: false},
		{name: "unknown value", cond: mkCond("stock_status", conditions.OpEquals, "sold_out"), want: true},
		{name: "unknown item in list", cond: mkCond("product_type", conditions.OpIn, "simple, bundle"), want: true},
		{name: "legal list", cond: mkCond("product_type", conditions.OpIn, "simple, variable"), want: false},
		{name: "not_in unchecked", cond: mkCond("product_type", conditions.OpNotIn, "bundle"), want: false},
		{name: "blank abstains", cond: mkCond("stock_status", conditions.OpEquals, "  "), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := checkUnknownSelectValue(testReg, tt.cond, nil)
			if (issue != nil) != tt.want {
				t.Fatalf("checkUnknownSelectValue() issue = %v, want present = %v", issue, tt.want)
			}
		})
	}
}

func TestCheckInvalidBooleanValue(t *testing.T) {
	if issue := checkInvalidBooleanValue(testReg, mkCond("featured", conditions.OpEquals, "maybe"), nil); issue == nil {
		t.Fatal("expected issue for non-boolean operand")
	}
	if issue := checkInvalidBooleanValue(testReg, mkCond("featured", conditions.OpEquals, "1"), nil); issue != nil {
		t.Fatalf("unexpected issue: %v", issue)
	}
	if issue := checkInvalidBooleanValue(testReg, mkCond("featured", conditions.OpEquals, ""), nil); issue != nil {
		t.Fatalf("blank operand should abstain, got %v", issue)
	}
}

func TestCheckNumericRange(t *testing.T) {
	cond := mkCond("price", conditions.OpGreaterThan, "100")

	t.Run("impossible range", func(t *testing.T) {
		others := []conditions.Condition{mkCond("price", conditions.OpLessThan, "50")}
		issue := checkNumericRange(testReg, cond, others)
		if issue == nil || issue.Kind != conditions.KindNumericRangeImpossible {
			t.Fatalf("issue = %v, want kind %q", issue, conditions.KindNumericRangeImpossible)
		}
	})

	t.Run("feasible range", func(t *testing.T) {
		others := []conditions.Condition{mkCond("price", conditions.OpLessThan, "500")}
		if issue := checkNumericRange(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("different property ignored", func(t *testing.T) {
		others := []conditions.Condition{mkCond("weight", conditions.OpLessThan, "50")}
		if issue := checkNumericRange(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("exclude-mode conditions ignored", func(t *testing.T) {
		other := mkCond("price", conditions.OpLessThan, "50")
		other.Mode = conditions.ModeExclude
		if issue := checkNumericRange(testReg, cond, []conditions.Condition{other}); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("unparsable operand abstains", func(t *testing.T) {
		others := []conditions.Condition{mkCond("price", conditions.OpLessThan, "fifty")}
		if issue := checkNumericRange(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("integer step closes strict gap", func(t *testing.T) {
		qty := mkCond("stock_quantity", conditions.OpGreaterThan, "5")
		others := []conditions.Condition{mkCond("stock_quantity", conditions.OpLessThan, "6")}
		if issue := checkNumericRange(testReg, qty, others); issue == nil {
			t.Fatal("no integer lies strictly between 5 and 6; expected an issue")
		}
	})
}

func TestCheckNumericEqualsRange(t *testing.T) {
	t.Run("point outside interval", func(t *testing.T) {
		cond := mkCond("price", conditions.OpEquals, "200")
		others := []conditions.Condition{mkCond("price", conditions.OpLessThan, "100")}
		issue := checkNumericEqualsRange(testReg, cond, others)
		if issue == nil || issue.Kind != conditions.KindEqualsIncompatibleRange {
			t.Fatalf("issue = %v, want kind %q", issue, conditions.KindEqualsIncompatibleRange)
		}
	})

	t.Run("two equals disagree", func(t *testing.T) {
		cond := mkCond("price", conditions.OpEquals, "200")
		others := []conditions.Condition{mkCond("price", conditions.OpEquals, "150")}
		if issue := checkNumericEqualsRange(testReg, cond, others); issue == nil {
			t.Fatal("expected issue for disagreeing equals")
		}
	})

	t.Run("point inside interval", func(t *testing.T) {
		cond := mkCond("price", conditions.OpEquals, "75")
		others := []conditions.Condition{mkCond("price", conditions.OpLessThan, "100")}
		if issue := checkNumericEqualsRange(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("no other constraints", func(t *testing.T) {
		cond := mkCond("price", conditions.OpEquals, "75")
		if issue := checkNumericEqualsRange(testReg, cond, nil); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})
}

func TestCheckSelectMembership(t *testing.T) {
	tests := []struct {
		name     string
		cond     conditions.Condition
		others   []conditions.Condition
		wantKind string
	}{
		{
			name:     "disagreeing equals",
			cond:     mkCond("stock_status", conditions.OpEquals, "instock"),
			others:   []conditions.Condition{mkCond("stock_status", conditions.OpEquals, "outofstock")},
			wantKind: conditions.KindSelectContradiction,
		},
		{
			name:     "equals also excluded",
			cond:     mkCond("stock_status", conditions.OpEquals, "instock"),
			others:   []conditions.Condition{mkCond("stock_status", conditions.OpNotEquals, "instock")},
			wantKind: conditions.KindSelectExcludedEquals,
		},
		{
			name:     "single not_in exhausts domain",
			cond:     mkCond("product_type", conditions.OpNotIn, "simple, variable, grouped, external"),
			wantKind: conditions.KindSelectExhaustion,
		},
		{
			name:     "in and not_in cancel out",
			cond:     mkCond("product_type", conditions.OpIn, "simple, variable"),
			others:   []conditions.Condition{mkCond("product_type", conditions.OpNotIn, "variable, simple")},
			wantKind: conditions.KindSelectEmptyIntersection,
		},
		{
			name:   "compatible conditions",
			cond:   mkCond("product_type", conditions.OpIn, "simple, variable"),
			others: []conditions.Condition{mkCond("product_type", conditions.OpNotEquals, "variable")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := checkSelectMembership(testReg, tt.cond, tt.others)
			if tt.wantKind == "" {
				if issue != nil {
					t.Fatalf("unexpected issue: %v", issue)
				}
				return
			}
			if issue == nil || issue.Kind != tt.wantKind {
				t.Fatalf("issue = %v, want kind %q", issue, tt.wantKind)
			}
		})
	}
}

func TestCheckBooleanContradiction(t *testing.T) {
	t.Run("true vs false", func(t *testing.T) {
		cond := mkCond("featured", conditions.OpEquals, "1")
		others := []conditions.Condition{mkCond("featured", conditions.OpEquals, "0")}
		issue := checkBooleanContradiction(testReg, cond, others)
		if issue == nil || issue.Kind != conditions.KindBooleanContradiction {
			t.Fatalf("issue = %v, want kind %q", issue, conditions.KindBooleanContradiction)
		}
	})

	t.Run("word and digit spellings collide", func(t *testing.T) {
		cond := mkCond("featured", conditions.OpEquals, "true")
		others := []conditions.Condition{mkCond("featured", conditions.OpEquals, "0")}
		if issue := checkBooleanContradiction(testReg, cond, others); issue == nil {
			t.Fatal("expected issue for true vs 0")
		}
	})

	t.Run("agreeing spellings", func(t *testing.T) {
		cond := mkCond("featured", conditions.OpEquals, "true")
		others := []conditions.Condition{mkCond("featured", conditions.OpEquals, "1")}
		if issue := checkBooleanContradiction(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("unparsable operand abstains", func(t *testing.T) {
		cond := mkCond("featured", conditions.OpEquals, "1")
		others := []conditions.Condition{mkCond("featured", conditions.OpEquals, "maybe")}
		if issue := checkBooleanContradiction(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})
}

func TestCheckTextConsistencyDetector(t *testing.T) {
	cond := mkCond("name", conditions.OpContains, "sale")
	others := []conditions.Condition{mkCond("name", conditions.OpNotContains, "sale")}
	issue := checkTextConsistency(testReg, cond, others)
	if issue == nil || issue.Kind != conditions.KindTextContainsConflict {
		t.Fatalf("issue = %v, want kind %q", issue, conditions.KindTextContainsConflict)
	}

	// Unknown properties fall back to text class and still get checked.
	cond = mkCond("custom_field", conditions.OpEquals, "alpha")
	others = []conditions.Condition{mkCond("custom_field", conditions.OpEquals, "beta")}
	if issue := checkTextConsistency(testReg, cond, others); issue == nil {
		t.Fatal("expected issue for disagreeing equals on unknown property")
	}
}

func TestCheckDateRange(t *testing.T) {
	cond := mkCond("date_created", conditions.OpGreaterThanEqual, "2025-07-01")

	t.Run("empty window", func(t *testing.T) {
		others := []conditions.Condition{mkCond("date_created", conditions.OpLessThanEqual, "2025-06-30")}
		issue := checkDateRange(testReg, cond, others)
		if issue == nil || issue.Kind != conditions.KindDateRangeImpossible {
			t.Fatalf("issue = %v, want kind %q", issue, conditions.KindDateRangeImpossible)
		}
	})

	t.Run("open window", func(t *testing.T) {
		others := []conditions.Condition{mkCond("date_created", conditions.OpLessThanEqual, "2025-12-31")}
		if issue := checkDateRange(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})

	t.Run("unparsable date abstains", func(t *testing.T) {
		others := []conditions.Condition{mkCond("date_created", conditions.OpLessThanEqual, "last week")}
		if issue := checkDateRange(testReg, cond, others); issue != nil {
			t.Fatalf("unexpected issue: %v", issue)
		}
	})
}

func TestCheckDateEqualsRange(t *testing.T) {
	cond := mkCond("date_created", conditions.OpEquals, "2025-07-15")
	others := []conditions.Condition{mkCond("date_created", conditions.OpLessThan, "2025-07-01")}
	issue := checkDateEqualsRange(testReg, cond, others)
	if issue == nil || issue.Kind != conditions.KindDateEqualsIncompatible {
		t.Fatalf("issue = %v, want kind %q", issue, conditions.KindDateEqualsIncompatible)
	}

	others = []conditions.Condition{mkCond("date_created", conditions.OpLessThan, "2025-08-01")}
	if issue := checkDateEqualsRange(testReg, cond, others); issue != nil {
		t.Fatalf("unexpected issue: %v", issue)
	}
}

func TestRegistryOrderStable(t *testing.T) {
	a := Registry()
	b := Registry()
	if len(a) != len(b) {
		t.Fatalf("registry size changed between calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatalf("registry order differs at %d: %q vs %q", i, a[i].Name, b[i].Name)
		}
	}
}
