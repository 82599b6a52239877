package lineup

import "fmt"

// InvalidBoundsError is returned when a row ends up with a lower bound that
// exceeds its upper bound (e.g. a row both locked and position-banned).
type InvalidBoundsError struct {
	SolverID string
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("lineup: invalid bounds for row %q: lower bound exceeds upper bound", e.SolverID)
}

// NewInvalidBoundsError constructs an InvalidBoundsError for the given row.
func NewInvalidBoundsError(solverID string) *InvalidBoundsError {
	return &InvalidBoundsError{SolverID: solverID}
}

// PlayerBanAndLockError is returned when a player is both locked and banned
// after merging LineupConstraints, the exposure dict, and the player's own
// pre-set flags.
type PlayerBanAndLockError struct {
	Name string
}

func (e *PlayerBanAndLockError) Error() string {
	return fmt.Sprintf("lineup: player %q is both locked and banned", e.Name)
}

// NewPlayerBanAndLockError constructs a PlayerBanAndLockError for the given player.
func NewPlayerBanAndLockError(name string) *PlayerBanAndLockError {
	return &PlayerBanAndLockError{Name: name}
}

// InfeasibleError indicates the solver could not find an optimal solution
// for the given inputs. It is not an input-shape error: callers may relax
// constraints and retry. batch.Generate stops at the first one.
type InfeasibleError struct {
	Reason string
}

func (e *InfeasibleError) Error() string {
	if e.Reason == "" {
		return "lineup: no optimal lineup exists for the given constraints"
	}
	return fmt.Sprintf("lineup: no optimal lineup exists for the given constraints: %s", e.Reason)
}

// NewInfeasibleError constructs an InfeasibleError, optionally annotated
// with a reason string.
func NewInfeasibleError(reason string) *InfeasibleError {
	return &InfeasibleError{Reason: reason}
}

// MalformedExposureRowError is surfaced by the (external) exposure CSV
// parser when a row is missing a required column. Kept here because §7
// names it alongside the other core error kinds, even though parsing itself
// is an out-of-scope external collaborator per §1.
type MalformedExposureRowError struct {
	Row     int
	Missing []string
}

func (e *MalformedExposureRowError) Error() string {
	return fmt.Sprintf("lineup: exposure row %d missing required column(s) %v", e.Row, e.Missing)
}

// NewMalformedExposureRowError constructs a MalformedExposureRowError.
func NewMalformedExposureRowError(row int, missing []string) *MalformedExposureRowError {
	return &MalformedExposureRowError{Row: row, Missing: missing}
}
