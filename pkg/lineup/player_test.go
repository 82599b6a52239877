package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerBase(t *testing.T) {
	p := Player{SolverID: "jembiid-C"}
	assert.Equal(t, "jembiid", p.Base())

	single := Player{SolverID: "jembiid"}
	assert.Equal(t, "jembiid", single.Base())
}

func TestPlayerIsOpposingTeamInMatchup(t *testing.T) {
	p := Player{Team: "PHI", Opponent: "BOS"}
	assert.True(t, p.IsOpposingTeamInMatchup("BOS"))
	assert.False(t, p.IsOpposingTeamInMatchup("PHI"))

	noOpponent := Player{Team: "PHI"}
	assert.False(t, noOpponent.IsOpposingTeamInMatchup(""))
}

func TestRosterSortedPlayers(t *testing.T) {
	r := Roster{Players: []Player{
		{Name: "Embiid", Pos: "C"},
		{Name: "Maxey", Pos: "PG"},
		{Name: "Harris", Pos: "C"},
	}}

	sorted := r.SortedPlayers()
	assert.Equal(t, []string{"Embiid", "Harris", "Maxey"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})

	// original slice order is untouched
	assert.Equal(t, "Embiid", r.Players[0].Name)
}

func TestRosterContainsAndTotals(t *testing.T) {
	r := Roster{Players: []Player{
		{Name: "Embiid", Cost: 11000, Proj: 55.5},
		{Name: "Maxey", Cost: 7000, Proj: 40.2},
	}}

	assert.True(t, r.Contains("Embiid"))
	assert.False(t, r.Contains("Harden"))
	assert.Equal(t, 18000, r.TotalSalary())
	assert.InDelta(t, 95.7, r.TotalProjection(), 0.0001)
}
