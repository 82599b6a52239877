package lineup

// Site identifies the contest operator whose roster/salary conventions a
// RuleSet encodes.
type Site string

const (
	SiteDraftKings  Site = "draftkings"
	SiteFanDuel     Site = "fanduel"
	SiteYahoo       Site = "yahoo"
	SiteUnspecified Site = ""
)

// GameType selects which subset of §4.1's constraint rules apply: classic
// rosters, showdown/captain-mode single-game slates, single/flex3 role-based
// single-game formats, or flexy_five (skips min-teams and per-team caps).
type GameType string

const (
	GameTypeClassic    GameType = "classic"
	GameTypeShowdown   GameType = "showdown"
	GameTypeSingle     GameType = "single"
	GameTypeFlex3      GameType = "flex3"
	GameTypeFlexyFive  GameType = "flexy_five"
)

// PositionLimit bounds how many rows of a given position may appear in a
// solved lineup.
type PositionLimit struct {
	Position string `json:"position"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

// RuleSet is an immutable description of one contest format: salary bounds,
// roster size, per-position and general-position limits, offensive/defensive
// position categories, and the site/game-type tags that select which
// optional constraint families apply.
type RuleSet struct {
	Site     Site     `json:"site"`
	GameType GameType `json:"game_type"`

	SalaryMin  int `json:"salary_min"`
	SalaryMax  int `json:"salary_max"`
	RosterSize int `json:"roster_size"`

	PositionLimits        []PositionLimit `json:"position_limits"`
	GeneralPositionLimits []PositionLimit `json:"general_position_limits,omitempty"`

	OffensivePositions []string `json:"offensive_positions,omitempty"`
	DefensivePositions []string `json:"defensive_positions,omitempty"`
}

// IsShowdown reports whether the rule set's game type is showdown/captain mode.
func (r RuleSet) IsShowdown() bool { return r.GameType == GameTypeShowdown }

// IsSingle reports whether the rule set's game type is single-game role-based.
func (r RuleSet) IsSingle() bool { return r.GameType == GameTypeSingle }

// IsFlex3 reports whether the rule set's game type is flex3.
func (r RuleSet) IsFlex3() bool { return r.GameType == GameTypeFlex3 }

// IsFlexyFive reports whether the rule set's game type is flexy_five, which
// skips min-teams and per-team cap constraints entirely.
func (r RuleSet) IsFlexyFive() bool { return r.GameType == GameTypeFlexyFive }

// UsesRowLevelIdentity reports whether SolverID (rather than Base) is the
// unique row key for this game type — true for single and flex3 formats.
func (r RuleSet) UsesRowLevelIdentity() bool {
	return r.IsSingle() || r.IsFlex3()
}

// IsDraftKings reports whether the contest's site is DraftKings. Kept
// per §9's open question: the max-players-per-team table keys off this flag
// alone, deliberately not sport-aware, even though DraftKings-classic NBA
// slates would usually want a tighter cap than 7.
func (r RuleSet) IsDraftKings() bool { return r.Site == SiteDraftKings }

// MaxPlayersPerTeam returns the (min, max) bound the optimizer enforces per
// team, following the site/game-type table from §4.1. flexy_five callers
// should not call this — the optimizer skips the constraint for that format.
func (r RuleSet) MaxPlayersPerTeam() (min, max int) {
	switch {
	case r.IsSingle():
		return 1, 4
	case r.IsFlex3():
		return 0, 2
	case r.IsDraftKings():
		return 0, 7
	default:
		return 0, 4
	}
}
