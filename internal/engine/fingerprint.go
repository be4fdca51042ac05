package engine

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/filterwise/conflint/internal/conditions"
)

// Fingerprint returns a short stable token for a condition-set snapshot.
// Callers that fire validations on every keystroke use it to discard results
// that no longer correspond to the current set (last-write-wins at the UI
// layer).
func Fingerprint(set conditions.Set) string {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "logic=%s;", set.Logic)
	for i, c := range set.Conditions {
		_, _ = fmt.Fprintf(h, "%d|%s|%s|%s|%s|%s;", i, c.Property, c.Operator, c.Value, c.Value2, c.Mode)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
