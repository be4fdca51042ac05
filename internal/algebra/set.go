package algebra

import (
	"sort"
	"strings"

	"github.com/filterwise/conflint/internal/conditions"
)

// MembershipOutcome classifies the result of a membership check over one
// enumerated or boolean property.
type MembershipOutcome int

const (
	// MembershipOK means some legal value remains matchable.
	MembershipOK MembershipOutcome = iota
	// MembershipEqualsConflict means two requirements pin disjoint values
	// (two disagreeing equals, or an equals outside every in set).
	MembershipEqualsConflict
	// MembershipExcludedEquals means a required value is also excluded.
	MembershipExcludedEquals
	// MembershipExhausted means every value of the legal domain is excluded.
	MembershipExhausted
	// MembershipEmptyIntersection means the candidate sets minus the
	// exclusions leave no common value.
	MembershipEmptyIntersection
)

// MembershipReport carries the outcome plus the values involved, for
// message construction.
type MembershipReport struct {
	Outcome MembershipOutcome
	Values  []string
}

// CheckMembership folds equality/membership and exclusion constraints over a
// single property and reports the first contradiction found. domain is the
// property's full legal value set; pass nil when the domain is open (no
// exhaustion check then). Values compare after whitespace trimming, exact
// case.
func CheckMembership(conds []conditions.Condition, domain []string) MembershipReport {
	type valueSet = map[string]struct{}

	var candidates []valueSet
	var hasEquals bool
	excluded := valueSet{}

	for _, c := range conds {
		switch conditions.NormalizeOperator(c.Operator) {
		case conditions.OpEquals:
			v := strings.TrimSpace(c.Value)
			if v == "" {
				continue
			}
			hasEquals = true
			candidates = append(candidates, valueSet{v: {}})
		case conditions.OpIn:
			items, ok := conditions.ParseList(c.Value)
			if !ok {
				continue
			}
			set := valueSet{}
			for _, item := range items {
				set[item] = struct{}{}
			}
			candidates = append(candidates, set)
		case conditions.OpNotEquals:
			v := strings.TrimSpace(c.Value)
			if v != "" {
				excluded[v] = struct{}{}
			}
		case conditions.OpNotIn:
			items, ok := conditions.ParseList(c.Value)
			if !ok {
				continue
			}
			for _, item := range items {
				excluded[item] = struct{}{}
			}
		}
	}

	if len(candidates) > 0 {
		common := candidates[0]
		for _, set := range candidates[1:] {
			next := valueSet{}
			for v := range common {
				if _, ok := set[v]; ok {
					next[v] = struct{}{}
				}
			}
			common = next
		}
		if len(common) == 0 {
			return MembershipReport{Outcome: MembershipEqualsConflict, Values: setUnion(candidates)}
		}

		remaining := valueSet{}
		var removed []string
		for v := range common {
			if _, ok := excluded[v]; ok {
				removed = append(removed, v)
				continue
			}
			remaining[v] = struct{}{}
		}
		if len(remaining) == 0 {
			sort.Strings(removed)
			if hasEquals {
				return MembershipReport{Outcome: MembershipExcludedEquals, Values: removed}
			}
			return MembershipReport{Outcome: MembershipEmptyIntersection, Values: removed}
		}
		return MembershipReport{Outcome: MembershipOK}
	}

	if len(domain) > 0 && len(excluded) > 0 {
		allExcluded := true
		for _, v := range domain {
			if _, ok := excluded[v]; !ok {
				allExcluded = false
				break
			}
		}
		if allExcluded {
			return MembershipReport{Outcome: MembershipExhausted, Values: append([]string(nil), domain...)}
		}
	}

	return MembershipReport{Outcome: MembershipOK}
}

func setUnion(sets []map[string]struct{}) []string {
	seen := map[string]struct{}{}
	for _, set := range sets {
		for v := range set {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
