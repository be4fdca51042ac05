// Package engine is the evaluation driver for the contradiction detector. It
// decides which catalog rules run for a condition given the set's combination
// logic and aggregates their issues per row. Every entry point is a pure
// function of the snapshot it receives: identical input always produces
// identical output.
package engine

import (
	"github.com/filterwise/conflint/internal/catalog"
	"github.com/filterwise/conflint/internal/conditions"
	"github.com/filterwise/conflint/internal/schema"
)

// Validator runs the rule catalog against condition-set snapshots.
type Validator struct {
	registry  *schema.Registry
	detectors []catalog.Detector
}

// New builds a validator over the given property registry.
func New(reg *schema.Registry) *Validator {
	return &Validator{registry: reg, detectors: catalog.Registry()}
}

// ValidateCondition evaluates one row. Single-condition checks always run;
// cross-condition checks run only under conjunctive logic, against the other
// complete conditions of the set. Out-of-range indexes and incomplete rows
// yield no issues.
func (v *Validator) ValidateCondition(set conditions.Set, index int) []conditions.Issue {
	if index < 0 || index >= len(set.Conditions) {
		return nil
	}
	cond := set.Conditions[index]
	if !cond.Complete() {
		return nil
	}

	var others []conditions.Condition
	crossEnabled := set.Logic != conditions.LogicAny
	if crossEnabled {
		others = set.Others(index)
	}

	var issues []conditions.Issue
	for _, det := range v.detectors {
		if det.Scope == catalog.ScopeCross && !crossEnabled {
			continue
		}
		if issue := det.Check(v.registry, cond, others); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// ValidateAll evaluates every complete condition of the set. Rows without
// issues are absent from the result.
func (v *Validator) ValidateAll(set conditions.Set) map[int][]conditions.Issue {
	out := make(map[int][]conditions.Issue)
	for i := range set.Conditions {
		if issues := v.ValidateCondition(set, i); len(issues) > 0 {
			out[i] = issues
		}
	}
	return out
}
