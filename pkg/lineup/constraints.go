package lineup

// GroupConstraint bounds how many rows across a named set of players may be
// chosen together: lb ≤ Σ x_i ≤ ub, summed over every row belonging to any
// name in Players. If Exact is non-nil, it overrides Lb/Ub with Lb=Ub=*Exact.
type GroupConstraint struct {
	Players []string
	Lb      int
	Ub      int
	Exact   *int
}

// Bounds returns the constraint's effective (lb, ub), applying Exact when set.
func (g GroupConstraint) Bounds() (lb, ub int) {
	if g.Exact != nil {
		return *g.Exact, *g.Exact
	}
	return g.Lb, g.Ub
}

// Constraints is the opaque provider the Optimizer queries while resolving
// per-row flags (§4.1 "Flag resolution") and building group constraints. The
// default implementation below is in-memory; callers may supply any type
// satisfying this interface — per §9's "polymorphic over
// {individual, positional, group}" note.
type Constraints interface {
	IsLocked(name string) bool
	IsBanned(name string) bool
	IsPositionLocked(solverID string) bool
	IsPositionBanned(solverID string) bool
	Groups() []GroupConstraint
}

// MapConstraints is the default in-memory Constraints implementation: locks
// and bans keyed by player name, position locks/bans keyed by SolverID, and
// a flat list of group constraints.
type MapConstraints struct {
	Locked         map[string]bool
	Banned         map[string]bool
	PositionLocked map[string]bool
	PositionBanned map[string]bool
	GroupList      []GroupConstraint
}

// NewMapConstraints returns an empty MapConstraints ready for use.
func NewMapConstraints() *MapConstraints {
	return &MapConstraints{
		Locked:         map[string]bool{},
		Banned:         map[string]bool{},
		PositionLocked: map[string]bool{},
		PositionBanned: map[string]bool{},
	}
}

// IsLocked reports whether name is individually locked.
func (c *MapConstraints) IsLocked(name string) bool { return c.Locked[name] }

// IsBanned reports whether name is individually banned.
func (c *MapConstraints) IsBanned(name string) bool { return c.Banned[name] }

// IsPositionLocked reports whether the row identified by solverID is locked.
func (c *MapConstraints) IsPositionLocked(solverID string) bool { return c.PositionLocked[solverID] }

// IsPositionBanned reports whether the row identified by solverID is banned.
func (c *MapConstraints) IsPositionBanned(solverID string) bool { return c.PositionBanned[solverID] }

// Groups returns the configured group constraints.
func (c *MapConstraints) Groups() []GroupConstraint { return c.GroupList }

// Lock marks name as individually locked.
func (c *MapConstraints) Lock(name string) { c.Locked[name] = true }

// Ban marks name as individually banned.
func (c *MapConstraints) Ban(name string) { c.Banned[name] = true }

// LockPosition marks the row identified by solverID as locked.
func (c *MapConstraints) LockPosition(solverID string) { c.PositionLocked[solverID] = true }

// BanPosition marks the row identified by solverID as banned.
func (c *MapConstraints) BanPosition(solverID string) { c.PositionBanned[solverID] = true }

// AddGroup appends a group constraint.
func (c *MapConstraints) AddGroup(g GroupConstraint) { c.GroupList = append(c.GroupList, g) }
