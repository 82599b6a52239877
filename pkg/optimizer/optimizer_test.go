package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/lineup-core/pkg/lineup"
)

// classicRules is a tiny three-slot contest with one position limit each,
// exact enough that salary caps force a single feasible roster regardless
// of solver tie-breaking.
func classicRules() lineup.RuleSet {
	return lineup.RuleSet{
		Site:       lineup.SiteFanDuel,
		GameType:   lineup.GameTypeClassic,
		SalaryMin:  90,
		SalaryMax:  90,
		RosterSize: 3,
		PositionLimits: []lineup.PositionLimit{
			{Position: "PG", Min: 1, Max: 1},
			{Position: "SG", Min: 1, Max: 1},
			{Position: "C", Min: 1, Max: 1},
		},
	}
}

func classicPool() []lineup.Player {
	return []lineup.Player{
		{Name: "Maxey", SolverID: "maxey-PG", Pos: "PG", Team: "PHI", Cost: 30, Proj: 20},
		{Name: "Harden", SolverID: "harden-SG", Pos: "SG", Team: "PHI", Cost: 30, Proj: 15},
		{Name: "Embiid", SolverID: "embiid-C", Pos: "C", Team: "PHI", Cost: 30, Proj: 10},
	}
}

// Scenario 1: a classic NBA pool with no optional settings and an exact
// salary match has exactly one feasible roster — the optimizer must find it.
func TestSolveClassicExactFeasibility(t *testing.T) {
	pool := classicPool()
	rules := classicRules()
	constraints := lineup.NewMapConstraints()

	result, err := Solve(context.Background(), pool, rules, lineup.Settings{}, constraints, ExposureDict{})
	require.NoError(t, err)
	require.True(t, result.Solved)

	assert.Len(t, result.Roster.Players, 3)
	assert.True(t, result.Roster.Contains("Maxey"))
	assert.True(t, result.Roster.Contains("Harden"))
	assert.True(t, result.Roster.Contains("Embiid"))
	assert.Equal(t, 90, result.Roster.TotalSalary())
	assert.InDelta(t, 45.0, result.Objective, 0.0001)
}

// Scenario 2: a player that ends up both locked and banned after merging
// LineupConstraints with the exposure dict is a fatal input-shape error,
// not an infeasible-result signal.
func TestSolvePlayerLockAndBanIsFatal(t *testing.T) {
	pool := classicPool()
	rules := classicRules()

	constraints := lineup.NewMapConstraints()
	constraints.Lock("Maxey")

	result, err := Solve(context.Background(), pool, rules, lineup.Settings{}, constraints, ExposureDict{Banned: []string{"Maxey"}})
	require.Error(t, err)
	assert.Nil(t, result)

	var target *lineup.PlayerBanAndLockError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "Maxey", target.Name)
}

// Scenario 3: requiring more stacked players from a team than the pool can
// supply at that team makes the roster infeasible — reported as a
// non-error, unsolved Result, never an error return.
func TestSolveStackInfeasible(t *testing.T) {
	pool := classicPool()
	rules := classicRules()
	constraints := lineup.NewMapConstraints()

	// the pool has no BOS players at all, so requiring even one forces
	// infeasibility regardless of the rest of the roster.
	settings := lineup.Settings{
		Stacks: []lineup.StackRule{{Team: "BOS", Count: 1}},
	}

	result, err := Solve(context.Background(), pool, rules, settings, constraints, ExposureDict{})
	require.NoError(t, err)
	assert.False(t, result.Solved)
}

// A locked player forces the solver toward the unique roster that contains
// them.
func TestSolveLockForcesFeasibleRoster(t *testing.T) {
	pool := classicPool()
	rules := classicRules()

	constraints := lineup.NewMapConstraints()
	constraints.Lock("Embiid")

	result, err := Solve(context.Background(), pool, rules, lineup.Settings{}, constraints, ExposureDict{})
	require.NoError(t, err)
	require.True(t, result.Solved)
	assert.True(t, result.Roster.Contains("Embiid"))
}
