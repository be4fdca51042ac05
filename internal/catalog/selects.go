package catalog

import (
	"fmt"
	"strings"

	"github.com/filterwise/conflint/internal/algebra"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

func checkSelectMembership(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassSelect || !cond.Include() {
		return nil
	}
	// A single not_in can exhaust the domain on its own, so no minimum
	// count applies here.
	all := append(sameProperty(others, cond.Property), cond)

	report := algebra.CheckMembership(all, prop.Domain)
	switch report.Outcome {
	case algebra.MembershipEqualsConflict:
		issue := conditions.NewError(
			conditions.KindSelectContradiction,
			fmt.Sprintf("the %s conditions demand different values (%s) at the same time", prop.Label, strings.Join(report.Values, ", ")),
			"value",
		)
		return &issue
	case algebra.MembershipExcludedEquals:
		issue := conditions.NewError(
			conditions.KindSelectExcludedEquals,
			fmt.Sprintf("%s is required to equal %s but that value is also excluded", prop.Label, strings.Join(report.Values, ", ")),
			"value",
		)
		return &issue
	case algebra.MembershipExhausted:
		issue := conditions.NewError(
			conditions.KindSelectExhaustion,
			fmt.Sprintf("every possible %s value is excluded; nothing can match", prop.Label),
			"value",
		)
		return &issue
	case algebra.MembershipEmptyIntersection:
		issue := conditions.NewError(
			conditions.KindSelectEmptyIntersection,
			fmt.Sprintf("the %s lists leave no common value to match", prop.Label),
			"value",
		)
		return &issue
	}
	return nil
}

// checkBooleanContradiction is the two-valued special case of the membership
// algebra, reported under its own kind because the user-facing message
// differs.
func checkBooleanContradiction(reg *schema.Registry, cond conditions.Condition, others []conditions.Condition) *conditions.Issue {
	prop := reg.Classify(cond.Property)
	if prop.Class != schema.ClassBoolean || !cond.Include() {
		return nil
	}
	all := append(sameProperty(others, cond.Property), cond)
	if len(all) < 2 {
		return nil
	}

	// Canonicalize the spellings so "true" and "1" collide, then feed the
	// 0/1 domain through the same membership algebra.
	canon := make([]conditions.Condition, 0, len(all))
	for _, c := range all {
		v, ok := conditions.ParseBool(c.Value)
		if !ok {
			continue
		}
		c.Value = "0"
		if v {
			c.Value = "1"
		}
		canon = append(canon, c)
	}

	report := algebra.CheckMembership(canon, []string{"0", "1"})
	if report.Outcome == algebra.MembershipOK {
		return nil
	}
	issue := conditions.NewError(
		conditions.KindBooleanContradiction,
		fmt.Sprintf("%s cannot be yes and no at the same time", prop.Label),
		"value",
	)
	return &issue
}
