// Package optimizer builds and solves one mixed-integer linear program per
// call, encoding a contest's salary/roster/position/stacking/exclusion rules
// as constraints over one binary variable per player row.
package optimizer

import (
	"context"
	"math"

	"github.com/costela/golpa"

	"github.com/stitts-dev/lineup-core/pkg/lineup"
	"github.com/stitts-dev/lineup-core/pkg/logging"
)

// Result is the outcome of one Solve call.
type Result struct {
	Solved    bool
	Roster    lineup.Roster
	Objective float64
}

// Solve builds one ILP from pool/rules/settings/constraints/exposure and
// solves it for the maximum-projection lineup. It returns a non-nil error
// for the two fatal input-shape failures (InvalidBoundsError,
// PlayerBanAndLockError) and for an error from golpa while creating the
// model, its row variables or the per-player constraints; an infeasible or
// non-optimal solve is reported
// through Result.Solved = false with a nil error, per §7's policy that
// solver infeasibility is a normal signaled result, not an exception.
func Solve(
	ctx context.Context,
	pool []lineup.Player,
	rules lineup.RuleSet,
	settings lineup.Settings,
	constraints lineup.Constraints,
	exposure ExposureDict,
) (*Result, error) {
	log := logging.WithOptimizationContext("", string(rules.GameType), string(rules.Site))

	decisions := resolveDecisions(pool, constraints, exposure)
	for i, p := range pool {
		d := decisions[i]
		if d.lock && d.ban {
			log.WithField("player", p.Name).Warn("player locked and banned simultaneously")
			return nil, lineup.NewPlayerBanAndLockError(p.Name)
		}
	}

	idx := buildRowIndex(pool, rules)

	model, err := golpa.NewModel("lineup", golpa.Maximize)
	if err != nil {
		return nil, err
	}

	// Every row variable is created unbounded over {0,1} — the per-row and
	// per-name-group lock/ban bounds are carried entirely by the
	// constraints setPlayerConstraints adds below. Baking a locked/banned
	// row's [lb,ub] directly into the variable itself would, for a
	// multi-position/showdown player, force every one of that player's rows
	// to the same bound against the shared group constraint instead of
	// letting the group pick exactly one row.
	vars := make([]*golpa.Variable, len(pool))
	for i, p := range pool {
		d := decisions[i]
		lb, ub := d.lowerBound(), d.upperBound()
		if lb > ub {
			log.WithField("solver_id", p.SolverID).Warn("row has lower bound above upper bound")
			return nil, lineup.NewInvalidBoundsError(p.SolverID)
		}
		v, err := model.AddDefinedVariable(p.SolverID, golpa.IntegerVariable, p.Proj, 0, 1)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}

	if err := setPlayerConstraints(model, pool, decisions, vars, rules); err != nil {
		return nil, err
	}
	setPlayerGroupConstraints(model, constraints, idx, vars)
	setSalaryRange(model, pool, vars, rules)
	setRosterSize(model, vars, rules)
	setPositions(model, pool, vars, rules.PositionLimits, func(p lineup.Player) string { return p.Pos })
	setPositions(model, pool, vars, rules.GeneralPositionLimits, func(p lineup.Player) string { return p.NBAGeneralPosition })
	setStacks(model, pool, vars, settings)
	setCombo(model, pool, vars, settings)
	setNoDuplicateLineups(model, pool, idx, vars, settings, rules)

	if !rules.IsFlexyFive() {
		setMinTeams(model, pool, vars, settings)
		setMaxPlayersPerTeam(model, pool, vars, rules)
	} else {
		log.Debug("flexy_five game type: skipping min-teams and per-team cap constraints")
	}

	setPOSettings(model, pool, vars, settings, rules)

	if rules.UsesRowLevelIdentity() {
		setNoDuplicatePlayers(model, pool, vars)
	}

	if (len(rules.OffensivePositions) > 0 && len(rules.DefensivePositions) > 0 && settings.NoOffenseAgainstDefense) ||
		(rules.IsShowdown() && settings.NoDefenseAgainstCaptain) {
		setNoOppDefense(model, pool, vars, rules)
	}

	res, err := model.SolveWithContext(ctx)
	if err != nil {
		log.WithError(err).Info("solve did not return optimal")
		return &Result{Solved: false}, nil
	}

	if res.Status() != golpa.SolutionOptimal {
		log.WithField("status", res.Status()).Info("solve returned non-optimal status")
		return &Result{Solved: false}, nil
	}

	var chosen []lineup.Player
	for i, p := range pool {
		if res.Value(vars[i]) > 0.5 {
			chosen = append(chosen, p)
		}
	}

	log.WithField("roster_size", len(chosen)).Info("solved lineup")

	return &Result{
		Solved:    true,
		Roster:    lineup.Roster{Players: chosen},
		Objective: res.ObjectiveValue(),
	}, nil
}

// setPlayerConstraints builds §4.1's per-row and shared group constraints
// from the resolved per-row decisions, preserving the original's branch
// structure exactly (see SPEC_FULL.md §9 "Resolved — position_ban without
// position_lock").
func setPlayerConstraints(model *golpa.Model, pool []lineup.Player, decisions []decision, vars []*golpa.Variable, rules lineup.RuleSet) error {
	type groupAccum struct {
		lb, ub  float64
		members []int
	}
	groups := map[string]*groupAccum{}

	for i, p := range pool {
		d := decisions[i]
		lb, ub := d.lowerBound(), d.upperBound()

		multi := isMultiPosition(pool, p, rules) || rules.IsShowdown()

		switch {
		case multi && !(d.positionLock || d.positionBan):
			g, ok := groups[p.Name]
			if !ok {
				g = &groupAccum{lb: lb, ub: ub}
				groups[p.Name] = g
			}
			g.members = append(g.members, i)

		case multi && d.positionLock:
			g, ok := groups[p.Name]
			if !ok {
				g = &groupAccum{lb: 0, ub: ub}
				groups[p.Name] = g
			}
			g.members = append(g.members, i)

			if err := model.AddConstraint(lb, ub, []*golpa.Variable{vars[i]}, []float64{1}); err != nil {
				return err
			}

		default:
			if err := model.AddConstraint(lb, ub, []*golpa.Variable{vars[i]}, []float64{1}); err != nil {
				return err
			}
		}
	}

	for _, g := range groups {
		gvars := make([]*golpa.Variable, len(g.members))
		coefs := make([]float64, len(g.members))
		for j, idx := range g.members {
			gvars[j] = vars[idx]
			coefs[j] = 1
		}
		if err := model.AddConstraint(g.lb, g.ub, gvars, coefs); err != nil {
			return err
		}
	}

	return nil
}

// isMultiPosition reports whether p shares its Base with another row in the
// pool — classic/showdown multi-position eligibility.
func isMultiPosition(pool []lineup.Player, p lineup.Player, rules lineup.RuleSet) bool {
	if rules.UsesRowLevelIdentity() {
		return false
	}
	count := 0
	for _, other := range pool {
		if other.Base() == p.Base() {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

func setPlayerGroupConstraints(model *golpa.Model, constraints lineup.Constraints, idx rowIndex, vars []*golpa.Variable) {
	for _, g := range constraints.Groups() {
		lb, ub := g.Bounds()
		var gvars []*golpa.Variable
		var coefs []float64
		for _, name := range g.Players {
			for _, i := range idx.byName[name] {
				gvars = append(gvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		_ = model.AddConstraint(float64(lb), float64(ub), gvars, coefs)
	}
}

func setSalaryRange(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, rules lineup.RuleSet) {
	coefs := make([]float64, len(pool))
	for i, p := range pool {
		coefs[i] = float64(p.Cost)
	}
	_ = model.AddConstraint(float64(rules.SalaryMin), float64(rules.SalaryMax), vars, coefs)
}

func setRosterSize(model *golpa.Model, vars []*golpa.Variable, rules lineup.RuleSet) {
	coefs := make([]float64, len(vars))
	for i := range coefs {
		coefs[i] = 1
	}
	_ = model.AddConstraint(float64(rules.RosterSize), float64(rules.RosterSize), vars, coefs)
}

// addConstraintSafe guards golpa's AddConstraint against a zero-length
// variable slice, which indexes row[0] internally and panics (golpa.go's
// add_constraintex call). An empty sum is always 0: if 0 already falls
// within [lower,upper] the constraint is vacuously satisfied and skipped;
// otherwise it can never be satisfied, so it is encoded as an always-false
// row on anchor at coefficient 0 — anchor's own value never matters, only
// that the row exists and its bounds exclude zero.
func addConstraintSafe(model *golpa.Model, anchor *golpa.Variable, lower, upper float64, vars []*golpa.Variable, coefs []float64) error {
	if len(vars) > 0 {
		return model.AddConstraint(lower, upper, vars, coefs)
	}
	if lower <= 0 && 0 <= upper {
		return nil
	}
	if anchor == nil {
		return nil
	}
	return model.AddConstraint(lower, upper, []*golpa.Variable{anchor}, []float64{0})
}

func setPositions(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, limits []lineup.PositionLimit, key func(lineup.Player) string) {
	var anchor *golpa.Variable
	if len(vars) > 0 {
		anchor = vars[0]
	}
	for _, limit := range limits {
		var lvars []*golpa.Variable
		var coefs []float64
		for i, p := range pool {
			if key(p) == limit.Position {
				lvars = append(lvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		_ = addConstraintSafe(model, anchor, float64(limit.Min), float64(limit.Max), lvars, coefs)
	}
}

func setStacks(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, settings lineup.Settings) {
	var anchor *golpa.Variable
	if len(vars) > 0 {
		anchor = vars[0]
	}
	for _, stack := range settings.Stacks {
		var svars []*golpa.Variable
		var coefs []float64
		for i, p := range pool {
			if p.Team == stack.Team {
				svars = append(svars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		_ = addConstraintSafe(model, anchor, float64(stack.Count), float64(stack.Count), svars, coefs)
	}
}

func setCombo(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, settings lineup.Settings) {
	if !settings.ForceCombo {
		return
	}
	comboPositions := map[string]bool{"WR": true}
	if settings.ComboAllowTE {
		comboPositions["TE"] = true
	}

	teams := map[string]bool{}
	for _, p := range pool {
		teams[p.Team] = true
	}

	var anchor *golpa.Variable
	if len(vars) > 0 {
		anchor = vars[0]
	}

	for team := range teams {
		var skillVars, qbVars []*golpa.Variable
		for i, p := range pool {
			if p.Team != team {
				continue
			}
			if comboPositions[p.Pos] {
				skillVars = append(skillVars, vars[i])
			}
			if p.Pos == "QB" {
				qbVars = append(qbVars, vars[i])
			}
		}
		// Σ skill ≥ Σ qb  ⇔  0 ≤ Σ skill − Σ qb ≤ +∞
		combined := append(append([]*golpa.Variable{}, skillVars...), qbVars...)
		coefs := make([]float64, 0, len(combined))
		for range skillVars {
			coefs = append(coefs, 1)
		}
		for range qbVars {
			coefs = append(coefs, -1)
		}
		_ = addConstraintSafe(model, anchor, 0, math.Inf(1), combined, coefs)
	}
}

// setNoOppDefense enforces §4.1's no-opp-defense rule. The defender set for
// team T is deliberately not gated on team==T for its showdown half — see
// SPEC_FULL.md §9 "Resolved — no-opp-defense operator precedence".
func setNoOppDefense(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, rules lineup.RuleSet) {
	offensive := toSet(rules.OffensivePositions)
	defensive := toSet(rules.DefensivePositions)

	teams := map[string]bool{}
	for _, p := range pool {
		teams[p.Team] = true
	}

	for team := range teams {
		var offensiveAgainst []int
		for i, p := range pool {
			if offensive[p.Pos] && p.IsOpposingTeamInMatchup(team) {
				offensiveAgainst = append(offensiveAgainst, i)
			}
		}

		var defenders []int
		for i, p := range pool {
			if (p.Team == team && defensive[p.Pos]) || (rules.IsShowdown() && defensive[p.RealPos]) {
				defenders = append(defenders, i)
			}
		}

		for _, o := range offensiveAgainst {
			for _, d := range defenders {
				// o + d ≤ 1
				_ = model.AddConstraint(math.Inf(-1), 1, []*golpa.Variable{vars[o], vars[d]}, []float64{1, 1})
			}
		}
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func setMinTeams(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, settings lineup.Settings) {
	if settings.MinTeams <= 0 {
		return
	}

	var teamVars []*golpa.Variable
	teams := map[string]bool{}
	for _, p := range pool {
		if p.Team != "" {
			teams[p.Team] = true
		}
	}

	for team := range teams {
		tv, err := model.AddDefinedVariable(team, golpa.IntegerVariable, 0, 0, 1)
		if err != nil {
			continue
		}
		var tvars []*golpa.Variable
		var coefs []float64
		for i, p := range pool {
			if p.Team == team {
				tvars = append(tvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		// t_T ≤ Σ players_on_team  ⇔  t_T − Σ players_on_team ≤ 0
		combined := append([]*golpa.Variable{tv}, tvars...)
		ccoefs := append([]float64{1}, negate(coefs)...)
		_ = model.AddConstraint(math.Inf(-1), 0, combined, ccoefs)

		teamVars = append(teamVars, tv)
	}

	if len(teamVars) > 0 {
		coefs := make([]float64, len(teamVars))
		for i := range coefs {
			coefs[i] = 1
		}
		_ = model.AddConstraint(float64(settings.MinTeams), math.Inf(1), teamVars, coefs)
	}
}

func negate(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = -v
	}
	return out
}

func setMaxPlayersPerTeam(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, rules lineup.RuleSet) {
	minCap, maxCap := rules.MaxPlayersPerTeam()

	teams := map[string]bool{}
	for _, p := range pool {
		if p.Team != "" {
			teams[p.Team] = true
		}
	}

	for team := range teams {
		var tvars []*golpa.Variable
		var coefs []float64
		for i, p := range pool {
			if p.Team == team {
				tvars = append(tvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		_ = model.AddConstraint(float64(minCap), float64(maxCap), tvars, coefs)
	}
}

func setNoDuplicateLineups(model *golpa.Model, pool []lineup.Player, idx rowIndex, vars []*golpa.Variable, settings lineup.Settings, rules lineup.RuleSet) {
	for _, roster := range settings.ExistingRosters {
		maxRepeats := settings.MaxRepeats(rules.RosterSize)

		var rvars []*golpa.Variable
		var coefs []float64
		seen := map[int]bool{}
		for _, rp := range roster.SortedPlayers() {
			for _, i := range idx.rowsOf(rp, rules) {
				if seen[i] {
					continue
				}
				seen[i] = true
				rvars = append(rvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		_ = model.AddConstraint(0, float64(maxRepeats), rvars, coefs)
	}
}

func setNoDuplicatePlayers(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable) {
	names := map[string]bool{}
	for _, p := range pool {
		names[p.Name] = true
	}
	for name := range names {
		nv, err := model.AddDefinedVariable(name, golpa.IntegerVariable, 0, 0, 1)
		if err != nil {
			continue
		}
		var nvars []*golpa.Variable
		var coefs []float64
		for i, p := range pool {
			if p.Name == name {
				nvars = append(nvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		// Σ players_on_name ≤ n_name  ⇔  Σ players_on_name − n_name ≤ 0
		combined := append(append([]*golpa.Variable{}, nvars...), nv)
		combinedCoefs := append(coefs, -1)
		_ = model.AddConstraint(math.Inf(-1), 0, combined, combinedCoefs)
	}
}

func setPOSettings(model *golpa.Model, pool []lineup.Player, vars []*golpa.Variable, settings lineup.Settings, rules lineup.RuleSet) {
	for _, tier := range settings.LineupSettings {
		var tvars []*golpa.Variable
		var coefs []float64
		for i, p := range pool {
			if p.PO < tier.POUpperBound {
				tvars = append(tvars, vars[i])
				coefs = append(coefs, 1)
			}
		}
		_ = model.AddConstraint(float64(tier.PlayerCount), float64(rules.RosterSize), tvars, coefs)
	}
}
