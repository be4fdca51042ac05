package catalog

import (
	"fmt"

	"github.com/filterwise/conflint/internal/algebra"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

func checkTextConsistency(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassText || !cond.Include() {
		return nil
	}
	all := append(sameProperty(others, cond.Property), cond)
	if len(all) < 2 {
		return nil
	}

	report := algebra.CheckTextConsistency(all)
	switch report.Outcome {
	case algebra.TextContainsConflict:
		issue := conditions.NewError(
			conditions.KindTextContainsConflict,
			fmt.Sprintf("%s is required to both contain and not contain %q", prop.Label, report.Left),
			"value",
		)
		return &issue
	case algebra.TextPrefixConflict:
		issue := conditions.NewError(
			conditions.KindTextPrefixConflict,
			fmt.Sprintf("%s = %q does not start with the required prefix %q", prop.Label, report.Left, report.Right),
			"value",
		)
		return &issue
	case algebra.TextEqualsConflict:
		issue := conditions.NewError(
			conditions.KindTextEqualsConflict,
			fmt.Sprintf("%s = %q cannot satisfy the other text conditions (%q)", prop.Label, report.Left, report.Right),
			"value",
		)
		return &issue
	}
	return nil
}
