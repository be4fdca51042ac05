package algebra

import (
	"strings"

	"github.com/filterwise/conflint/internal/conditions"
)

// TextOutcome classifies a substring consistency check over one text
// property.
type TextOutcome int

const (
	TextOK TextOutcome = iota
	// TextContainsConflict: contains and not_contains on the identical
	// literal.
	TextContainsConflict
	// TextPrefixConflict: an equals value that does not carry a required
	// prefix, in either direction.
	TextPrefixConflict
	// TextEqualsConflict: an equals value that cannot satisfy the other
	// substring requirements, or two differing equals.
	TextEqualsConflict
)

// TextReport carries the outcome and the pair of literals in conflict.
type TextReport struct {
	Outcome TextOutcome
	Left    string
	Right   string
}

type textLiteral struct {
	op  conditions.Operator
	raw string
	low string
}

// CheckTextConsistency examines all substring constraints over a single text
// property and reports the first inconsistency. All comparisons are
// case-insensitive; blank literals abstain.
func CheckTextConsistency(conds []conditions.Condition) TextReport {
	var lits []textLiteral
	for _, c := range conds {
		raw := strings.TrimSpace(c.Value)
		if raw == "" {
			continue
		}
		op := conditions.NormalizeOperator(c.Operator)
		switch op {
		case conditions.OpEquals, conditions.OpContains, conditions.OpNotContains,
			conditions.OpStartsWith, conditions.OpEndsWith:
			lits = append(lits, textLiteral{op: op, raw: raw, low: strings.ToLower(raw)})
		}
	}

	for i, a := range lits {
		for _, b := range lits[i+1:] {
			if a.op == conditions.OpContains && b.op == conditions.OpNotContains && a.low == b.low {
				return TextReport{Outcome: TextContainsConflict, Left: a.raw, Right: b.raw}
			}
			if a.op == conditions.OpNotContains && b.op == conditions.OpContains && a.low == b.low {
				return TextReport{Outcome: TextContainsConflict, Left: b.raw, Right: a.raw}
			}

			if r, conflict := equalsAgainst(a, b); conflict {
				return r
			}
			if r, conflict := equalsAgainst(b, a); conflict {
				return r
			}
		}
	}
	return TextReport{Outcome: TextOK}
}

// equalsAgainst checks an equals literal eq against another constraint other
// and reports whether eq can never satisfy it.
func equalsAgainst(eq, other textLiteral) (TextReport, bool) {
	if eq.op != conditions.OpEquals {
		return TextReport{}, false
	}
	switch other.op {
	case conditions.OpEquals:
		if eq.low != other.low {
			return TextReport{Outcome: TextEqualsConflict, Left: eq.raw, Right: other.raw}, true
		}
	case conditions.OpStartsWith:
		if !strings.HasPrefix(eq.low, other.low) {
			return TextReport{Outcome: TextPrefixConflict, Left: eq.raw, Right: other.raw}, true
		}
	case conditions.OpEndsWith:
		if !strings.HasSuffix(eq.low, other.low) {
			return TextReport{Outcome: TextEqualsConflict, Left: eq.raw, Right: other.raw}, true
		}
	case conditions.OpContains:
		if !strings.Contains(eq.low, other.low) {
			return TextReport{Outcome: TextEqualsConflict, Left: eq.raw, Right: other.raw}, true
		}
	case conditions.OpNotContains:
		if strings.Contains(eq.low, other.low) {
			return TextReport{Outcome: TextEqualsConflict, Left: eq.raw, Right: other.raw}, true
		}
	}
	return TextReport{}, false
}
