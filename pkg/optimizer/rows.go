package optimizer

import "github.com/stitts-dev/lineup-core/pkg/lineup"

// ExposureDict is the per-call ban/lock list produced by the exposure
// controller (pkg/exposure) and threaded into a single Solve call.
type ExposureDict struct {
	Banned []string
	Locked []string
}

func (e ExposureDict) isBanned(name string) bool {
	for _, n := range e.Banned {
		if n == name {
			return true
		}
	}
	return false
}

func (e ExposureDict) isLocked(name string) bool {
	for _, n := range e.Locked {
		if n == name {
			return true
		}
	}
	return false
}

// decision is the per-row resolution of §4.1's "Flag resolution" step,
// computed once per Solve call from LineupConstraints, the exposure dict,
// and the Player's own pre-set flags. Player itself is never mutated —
// see §9's "Mutable Player flags" note.
type decision struct {
	lock         bool
	ban          bool
	positionLock bool
	positionBan  bool
}

func (d decision) lowerBound() float64 {
	if d.lock || d.positionLock {
		return 1
	}
	return 0
}

func (d decision) upperBound() float64 {
	if d.ban || d.positionBan {
		return 0
	}
	return 1
}

// resolveDecisions builds the per-row Decision table described in §9,
// folding together LineupConstraints, the exposure dict, and each Player's
// pre-set lock/ban/position flags.
func resolveDecisions(pool []lineup.Player, constraints lineup.Constraints, exposure ExposureDict) []decision {
	decisions := make([]decision, len(pool))
	for i, p := range pool {
		d := decision{
			lock:         constraints.IsLocked(p.Name) || exposure.isLocked(p.Name) || p.Lock,
			ban:          constraints.IsBanned(p.Name) || exposure.isBanned(p.Name) || p.Ban,
			positionLock: constraints.IsPositionLocked(p.SolverID),
			positionBan:  constraints.IsPositionBanned(p.SolverID),
		}
		decisions[i] = d
	}
	return decisions
}

// rowIndex holds the secondary indices built once per Solve call: name to
// its row indices (used by group constraints), and
// either base-to-rows (classic/showdown, keyed by the SolverID prefix before
// the first '-') or solverID-to-row (single/flex3, where each row already
// has row-level identity).
type rowIndex struct {
	byName   map[string][]int
	byBaseOrID map[string][]int
}

func buildRowIndex(pool []lineup.Player, rules lineup.RuleSet) rowIndex {
	idx := rowIndex{
		byName:     map[string][]int{},
		byBaseOrID: map[string][]int{},
	}
	for i, p := range pool {
		idx.byName[p.Name] = append(idx.byName[p.Name], i)

		key := p.Base()
		if rules.UsesRowLevelIdentity() {
			key = p.SolverID
		}
		idx.byBaseOrID[key] = append(idx.byBaseOrID[key], i)
	}
	return idx
}

// rowsOf returns the row indices that together represent the same physical
// player as the row identified by p — all rows sharing p's Base (classic),
// or p's own single row (single/flex3).
func (idx rowIndex) rowsOf(p lineup.Player, rules lineup.RuleSet) []int {
	key := p.Base()
	if rules.UsesRowLevelIdentity() {
		key = p.SolverID
	}
	return idx.byBaseOrID[key]
}
