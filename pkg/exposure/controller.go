// Package exposure drives the optimizer across a batch of lineups, computing
// per-call bans and locks that steer the portfolio's aggregate player
// exposure toward caller-specified bounds, and reports post-hoc exposure
// diffs once a batch is complete.
package exposure

import (
	"math"
	"math/rand"
	"sort"

	"github.com/stitts-dev/lineup-core/pkg/lineup"
	"github.com/stitts-dev/lineup-core/pkg/logging"
	"github.com/stitts-dev/lineup-core/pkg/optimizer"
)

// Bound is one player's target exposure envelope across a planned batch of
// N lineups: Min ≤ fraction of lineups containing the player ≤ Max. Proj is
// an optional tie-breaker used to prioritize higher-value players when the
// deterministic mode's locking budget is scarce.
type Bound struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Proj float64 `json:"proj,omitempty"`
}

// Mode selects how ComputeArgs resolves a batch's ban/lock list.
type Mode int

const (
	// Deterministic ranks bounds by current exposure then projection and
	// locks/bans to steer toward the target envelope (§4.2).
	Deterministic Mode = iota
	// Randomized draws a seeded uniform variate per bound and locks
	// whenever it falls under the bound's max (§4.2).
	Randomized
)

// tally counts, for every player name, how many rosters in existing contain
// that name.
func tally(rosters []lineup.Roster) map[string]int {
	counts := map[string]int{}
	for _, r := range rosters {
		for _, p := range r.Players {
			counts[p.Name]++
		}
	}
	return counts
}

// ComputeArgs is the deterministic/randomized entry point described in
// §4.2(a). userLocked is a set of names the caller has user-locked, consulted
// alongside constraints.IsLocked — used by deterministic mode to decide whether a
// currently-overexposed name may still be banned (a user lock always wins).
func ComputeArgs(existing []lineup.Roster, bounds []Bound, n int, mode Mode, seed int64, userLocked map[string]bool, constraints lineup.Constraints) optimizer.ExposureDict {
	current := tally(existing)

	if mode == Randomized {
		return computeRandom(bounds, seed)
	}
	return computeDeterministic(current, n, bounds, constraints, userLocked)
}

func computeDeterministic(current map[string]int, n int, bounds []Bound, constraints lineup.Constraints, userLocked map[string]bool) optimizer.ExposureDict {
	log := logging.Get()

	sorted := make([]Bound, len(bounds))
	copy(sorted, bounds)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := current[sorted[i].Name], current[sorted[j].Name]
		if ci != cj {
			return ci < cj
		}
		return sorted[i].Proj > sorted[j].Proj
	})

	var banned, locked []string
	lockedSet := map[string]bool{}

	for _, bound := range sorted {
		name := bound.Name

		minLines := bound.Min * float64(n)
		maxLines := math.Floor(bound.Max * float64(n))
		if maxLines < 1 {
			maxLines = 1
		}
		lineups := float64(current[name])

		isBanned := constraints != nil && constraints.IsBanned(name)
		isUserLocked := (constraints != nil && constraints.IsLocked(name)) || userLocked[name]

		switch {
		case lineups < minLines && !isBanned && !lockedSet[name]:
			locked = append(locked, name)
			lockedSet[name] = true
		case lineups >= maxLines && !isUserLocked:
			banned = append(banned, name)
		}
	}

	log.WithField("locked_count", len(locked)).WithField("banned_count", len(banned)).Debug("computed deterministic exposure args")

	return optimizer.ExposureDict{Banned: banned, Locked: locked}
}

func computeRandom(bounds []Bound, seed int64) optimizer.ExposureDict {
	rng := rand.New(rand.NewSource(seed))

	var locked []string
	for _, bound := range bounds {
		r := rng.Float64()
		if r <= bound.Max {
			locked = append(locked, bound.Name)
		}
	}

	return optimizer.ExposureDict{Banned: nil, Locked: locked}
}

// CheckExposure computes the post-hoc diff described in §4.2(b): for each
// bound, positive values mean overexposed by that many lineups, negative
// values mean underexposed; bounds within range are omitted entirely.
func CheckExposure(rosters []lineup.Roster, bounds []Bound) map[string]float64 {
	if len(bounds) == 0 {
		return map[string]float64{}
	}

	counts := tally(rosters)
	total := float64(len(rosters))

	diffs := map[string]float64{}
	for _, bound := range bounds {
		e := float64(counts[bound.Name])

		switch {
		case e > total*bound.Max:
			diffs[bound.Name] = e - total*bound.Max
		case e < total*bound.Min:
			diffs[bound.Name] = e - total*bound.Min
		}
	}
	return diffs
}
