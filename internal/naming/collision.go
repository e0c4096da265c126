package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateTarget is returned when two moves in one directory claim the
// same target name.
var ErrDuplicateTarget = errors.New("duplicate rename target")

// Move is one old → new name pair within a single directory.
type Move struct {
	From string
	To   string
}

// Identity reports whether the move leaves the name unchanged.
func (m Move) Identity() bool { return m.From == m.To }

// CheckTargets verifies that every target is claimed by exactly one source,
// tracking owners the same way across the whole move list.
func CheckTargets(moves []Move) error {
	owners := make(map[string]string, len(moves)) // target → source that owns it
	for _, m := range moves {
		if owner, exists := owners[m.To]; exists && owner != m.From {
			return fmt.Errorf("%w: %q wanted by both %q and %q", ErrDuplicateTarget, m.To, owner, m.From)
		}
		owners[m.To] = m.From
	}
	return nil
}

// FindChainConflicts returns the indices of moves whose target, at the point
// the move would run in list order, is still held by a source that has not
// been moved yet. Applying such a list directly would overwrite (or collide
// with) that pending source. Names are compared case-insensitively so the
// answer also holds on case-insensitive filesystems.
func FindChainConflicts(moves []Move) []int {
	pending := make(map[string]bool, len(moves))
	for _, m := range moves {
		if !m.Identity() {
			pending[strings.ToLower(m.From)] = true
		}
	}

	var conflicts []int
	for i, m := range moves {
		if m.Identity() {
			continue
		}
		from, to := strings.ToLower(m.From), strings.ToLower(m.To)
		if to != from && pending[to] {
			conflicts = append(conflicts, i)
		}
		delete(pending, from)
	}
	return conflicts
}
