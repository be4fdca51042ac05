package conditions

// Severity grades an issue for the presentation layer.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue kinds surfaced by the rule catalog. The kind is the machine-readable
// contract; messages are advisory text for the row the issue attaches to.
const (
	KindBetweenInverted          = "between_inverted"
	KindRatingOutOfBounds        = "rating_out_of_bounds"
	KindNegativeValue            = "negative_value"
	KindUnknownSelectValue       = "unknown_select_value"
	KindInvalidBooleanValue      = "invalid_boolean_value"
	KindDuplicateCondition       = "duplicate_condition"
	KindNumericRangeImpossible   = "numeric_range_impossible"
	KindEqualsIncompatibleRange  = "equals_incompatible_range"
	KindSelectContradiction      = "select_contradiction"
	KindSelectExcludedEquals     = "select_excluded_equals"
	KindSelectExhaustion         = "select_exhaustion"
	KindSelectEmptyIntersection  = "select_empty_intersection"
	KindBooleanContradiction     = "boolean_contradiction"
	KindTextContainsConflict     = "text_contains_conflict"
	KindTextEqualsConflict       = "text_equals_conflict"
	KindTextPrefixConflict       = "text_prefix_conflict"
	KindDateRangeImpossible      = "date_range_impossible"
	KindDateEqualsIncompatible   = "date_equals_incompatible"
	KindDateTemporalViolation    = "date_temporal_violation"
	KindSalePriceConflict        = "sale_price_conflict"
	KindSaleWindowConflict       = "sale_window_conflict"
	KindStockStatusConflict      = "stock_status_conflict"
	KindLowStockOverlap          = "low_stock_overlap"
	KindVirtualPhysicalConflict  = "virtual_physical_conflict"
	KindDownloadablePhysical     = "downloadable_physical_conflict"
	KindIncludeExcludeConflict   = "include_exclude_conflict"
)

// Issue is an advisory diagnostic attached to one condition row. Issues never
// mutate the condition set.
type Issue struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Message     string   `json:"message" yaml:"message"`
	Severity    Severity `json:"severity" yaml:"severity"`
	TargetField string   `json:"targetField" yaml:"targetField"`
}

// NewError builds an error-severity issue.
func NewError(kind, message, targetField string) Issue {
	return Issue{Kind: kind, Message: message, Severity: SeverityError, TargetField: targetField}
}

// NewWarning builds a warning-severity issue.
func NewWarning(kind, message, targetField string) Issue {
	return Issue{Kind: kind, Message: message, Severity: SeverityWarning, TargetField: targetField}
}
