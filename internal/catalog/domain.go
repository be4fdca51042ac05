package catalog

import (
	"strings"

	"github.com/filterwise/conflint/internal/algebra"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

// propertyPair declares a required ordering between two properties: in any
// matchable record, lowerKey must stay at or below upperKey. New pairings are
// added here declaratively instead of as another hand-written pairwise loop.
type propertyPair struct {
	lowerKey string
	upperKey string
	// strict rejects equality as well (a sale price equal to the regular
	// price is not a sale).
	strict   bool
	kind     string
	severity conditions.Severity
	message  string
	// requireStatus gates the pairing on a required stock_status value;
	// empty means unconditional.
	requireStatus string
}

var propertyPairs = []propertyPair{
	{
		lowerKey: "date_created", upperKey: "date_modified",
		kind: conditions.KindDateTemporalViolation, severity: conditions.SeverityError,
		message: "a product cannot be created after its last modification",
	},
	{
		lowerKey: "date_on_sale_from", upperKey: "date_on_sale_to",
		kind: conditions.KindSaleWindowConflict, severity: conditions.SeverityError,
		message: "the sale window ends before it starts",
	},
	{
		lowerKey: "sale_price", upperKey: "regular_price", strict: true,
		kind: conditions.KindSalePriceConflict, severity: conditions.SeverityError,
		message: "these conditions force the sale price to meet or exceed the regular price",
	},
	{
		lowerKey: "low_stock_amount", upperKey: "stock_quantity", strict: true,
		kind: conditions.KindLowStockOverlap, severity: conditions.SeverityWarning,
		message:       "every matching product would already be at or below its low-stock threshold",
		requireStatus: "instock",
	},
}

// pairOrderDetectors expands the pair table into one detector per entry.
func pairOrderDetectors() []Detector {
	dets := make([]Detector, 0, len(propertyPairs))
	for _, pair := range propertyPairs {
		pair := pair
		dets = append(dets, Detector{
			Name:  "pair_order_" + pair.lowerKey,
			Scope: ScopeCross,
			Check: func(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
				return checkPairOrder(reg, pair, cond, others)
			},
		})
	}
	return dets
}

func checkPairOrder(reg *schema.Registry, pair propertyPair, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	if cond.Property != pair.lowerKey && cond.Property != pair.upperKey {
		return nil
	}
	if !cond.Include() {
		return nil
	}
	if pair.requireStatus != "" && !statusRequired(others, cond, pair.requireStatus) {
		return nil
	}

	all := append([]conditions.Condition{cond}, others...)
	lower := pairInterval(reg, all, pair.lowerKey)
	upper := pairInterval(reg, all, pair.upperKey)
	if !algebra.OrderViolated(lower, upper, pair.strict) {
		return nil
	}

	issue := conditions.Issue{
		Kind:        pair.kind,
		Message:     pair.message,
		Severity:    pair.severity,
		TargetField: "value",
	}
	return &issue
}

// pairInterval computes the feasible interval for one side of a pairing,
// equals folded in as points.
func pairInterval(reg *schema.Registry, conds []conditions.Condition, key string) algebra.Interval {
	prop := reg.Classify(key)
	parse := conditions.ParseNumber
	if prop.Class == schema.ClassDate {
		parse = conditions.ParseDateMillis
	}
	var cs []algebra.Constraint
	for _, c := range sameProperty(conds, key) {
		if con, ok := algebra.ConstraintOf(c, parse); ok {
			cs = append(cs, con)
		}
	}
	if len(cs) == 0 {
		return algebra.Full()
	}
	return algebra.IntersectWithPoints(cs, prop.Step)
}

// statusRequired reports whether some include-mode condition pins
// stock_status to the given value.
func statusRequired(others []conditions.Condition, cond conditions.Condition, status string) bool {
	all := append([]conditions.Condition{cond}, others...)
	for _, c := range all {
		if c.Property != "stock_status" || !c.Include() {
			continue
		}
		if conditions.NormalizeOperator(c.Operator) == conditions.OpEquals &&
			strings.TrimSpace(c.Value) == status {
			return true
		}
	}
	return false
}

func checkStockStatusQuantity(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	if cond.Property != "stock_status" && cond.Property != "stock_quantity" {
		return nil
	}
	if !cond.Include() {
		return nil
	}

	all := append([]conditions.Condition{cond}, others...)
	qty := pairInterval(reg, all, "stock_quantity")
	if !qty.Feasible() {
		// The per-property range detector already owns that defect.
		return nil
	}

	conflict := func(msg string) *conditions.Issue {
		issue := conditions.NewError(conditions.KindStockStatusConflict, msg, "value")
		return &issue
	}

	if statusRequired(others, cond, "instock") && qty.Max <= 0 {
		return conflict("a product cannot be in stock with a stock quantity of zero or less")
	}
	if statusRequired(others, cond, "outofstock") && qty.Min > 0 {
		return conflict("a product cannot be out of stock with a positive stock quantity")
	}
	return nil
}

// boolRequired reports whether some include-mode condition pins a boolean
// property to the given value.
func boolRequired(conds []conditions.Condition, key string, want bool) bool {
	for _, c := range conds {
		if c.Property != key || !c.Include() {
			continue
		}
		if conditions.NormalizeOperator(c.Operator) != conditions.OpEquals {
			continue
		}
		if v, ok := conditions.ParseBool(c.Value); ok && v == want {
			return true
		}
	}
	return false
}

var physicalDimensions = []string{"weight", "length", "width", "height"}

func checkVirtualPhysical(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	return checkBooleanVsDimensions(reg, cond, others, "virtual", physicalDimensions,
		conditions.KindVirtualPhysicalConflict,
		"virtual products have no physical dimensions")
}

func checkDownloadablePhysical(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	return checkBooleanVsDimensions(reg, cond, others, "downloadable", []string{"weight"},
		conditions.KindDownloadablePhysical,
		"downloadable products have no shipping weight")
}

func checkBooleanVsDimensions(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition, boolKey string, dims []string, kind, msg string) *conditions.Issue {
	if !cond.Include() {
		return nil
	}
	involved := cond.Property == boolKey
	for _, d := range dims {
		if cond.Property == d {
			involved = true
		}
	}
	if !involved {
		return nil
	}

	all := append([]conditions.Condition{cond}, others...)
	if !boolRequired(all, boolKey, true) {
		return nil
	}
	for _, d := range dims {
		iv := pairInterval(reg, all, d)
		if iv.Feasible() && iv.Min > 0 {
			issue := conditions.NewError(kind, msg, "value")
			return &issue
		}
	}
	return nil
}

func checkIncludeExclude(_ *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	for _, other := range others {
		if other.Include() == cond.Include() {
			continue
		}
		if sameConstraint(cond, other) {
			issue := conditions.NewError(
				conditions.KindIncludeExcludeConflict,
				"the same condition is both included and excluded; nothing can match",
				"operator",
			)
			return &issue
		}
	}
	return nil
}

func checkDuplicateCondition(_ *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	for _, other := range others {
		if other.Include() != cond.Include() {
			continue
		}
		if sameConstraint(cond, other) {
			issue := conditions.NewWarning(
				conditions.KindDuplicateCondition,
				"this condition appears more than once",
				"operator",
			)
			return &issue
		}
	}
	return nil
}

func sameConstraint(a, b conditions.Condition) bool {
	return a.Property == b.Property &&
		conditions.NormalizeOperator(a.Operator) == conditions.NormalizeOperator(b.Operator) &&
		strings.TrimSpace(a.Value) == strings.TrimSpace(b.Value) &&
		strings.TrimSpace(a.Value2) == strings.TrimSpace(b.Value2)
}
