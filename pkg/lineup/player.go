package lineup

import "strings"

// Player is one selectable row in the optimizer's variable model. A single
// physical athlete contributes one Player per eligible role variant: classic
// contests key variants by a shared SolverID prefix ("<base>-<suffix>"),
// single/flex3 contests give every role its own globally unique SolverID.
//
// Player is immutable from the optimizer's point of view: Solve never writes
// back to Lock/Ban/PositionLock/PositionBan. Those fields are the
// caller's own pre-set flags, folded into the per-solve Decision table
// alongside LineupConstraints and the exposure dict (see pkg/optimizer).
type Player struct {
	Name               string  `json:"name"`
	SolverID           string  `json:"solver_id"`
	Pos                string  `json:"pos"`
	RealPos            string  `json:"real_pos,omitempty"`
	NBAGeneralPosition string  `json:"nba_general_position,omitempty"`
	Team               string  `json:"team"`
	Opponent           string  `json:"opponent,omitempty"`
	Cost               int     `json:"cost"`
	Proj               float64 `json:"proj"`
	PO                 float64 `json:"po,omitempty"`

	Lock         bool `json:"lock,omitempty"`
	Ban          bool `json:"ban,omitempty"`
	PositionLock bool `json:"position_lock,omitempty"`
	PositionBan  bool `json:"position_ban,omitempty"`
}

// GetName returns the player's display name, shared across role variants.
func (p Player) GetName() string { return p.Name }

// GetSolverID returns the unique row identifier for this variant.
func (p Player) GetSolverID() string { return p.SolverID }

// GetPos returns the row's position within its variant.
func (p Player) GetPos() string { return p.Pos }

// GetRealPos returns the underlying physical position (showdown captain/flex roles).
func (p Player) GetRealPos() string { return p.RealPos }

// GetTeam returns the player's team abbreviation.
func (p Player) GetTeam() string { return p.Team }

// GetOpponent returns the player's opponent team abbreviation for this slate.
func (p Player) GetOpponent() string { return p.Opponent }

// GetCost returns the row's salary.
func (p Player) GetCost() int { return p.Cost }

// GetProj returns the row's projected points, the objective coefficient.
func (p Player) GetProj() float64 { return p.Proj }

// GetPO returns the row's projected ownership in [0,1].
func (p Player) GetPO() float64 { return p.PO }

// Base returns the portion of SolverID before the first '-', grouping rows
// that represent the same physical player under classic/showdown contests.
func (p Player) Base() string {
	if idx := strings.IndexByte(p.SolverID, '-'); idx >= 0 {
		return p.SolverID[:idx]
	}
	return p.SolverID
}

// IsOpposingTeamInMatchup reports whether team is this player's opponent.
func (p Player) IsOpposingTeamInMatchup(team string) bool {
	return p.Opponent != "" && p.Opponent == team
}

// Roster is an ordered set of Players produced by one successful Solve call.
type Roster struct {
	Players []Player `json:"players"`
}

// Contains reports whether any player in the roster has the given name.
func (r Roster) Contains(name string) bool {
	for _, p := range r.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

// SortedPlayers returns the roster's players ordered by position then name,
// matching the presentation order contest sites expect on an uploaded entry.
func (r Roster) SortedPlayers() []Player {
	sorted := make([]Player, len(r.Players))
	copy(sorted, r.Players)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

func less(a, b Player) bool {
	if a.Pos != b.Pos {
		return a.Pos < b.Pos
	}
	return a.Name < b.Name
}

// TotalSalary sums the cost of every player in the roster.
func (r Roster) TotalSalary() int {
	total := 0
	for _, p := range r.Players {
		total += p.Cost
	}
	return total
}

// TotalProjection sums the projected points of every player in the roster.
func (r Roster) TotalProjection() float64 {
	total := 0.0
	for _, p := range r.Players {
		total += p.Proj
	}
	return total
}
