// Package batch sequences the Exposure Controller and Optimizer into the
// control flow described in SPEC_FULL.md §2 and §4.4: generate N lineups,
// feeding each solved roster's exposure tally into the next call.
package batch

import (
	"context"
	"strconv"

	"github.com/stitts-dev/lineup-core/pkg/exposure"
	"github.com/stitts-dev/lineup-core/pkg/lineup"
	"github.com/stitts-dev/lineup-core/pkg/logging"
	"github.com/stitts-dev/lineup-core/pkg/optimizer"
)

// Progress is reported once per solved (or failed) lineup in a batch run,
// matching the shape streamed to internal/progress's WebSocket hub.
type Progress struct {
	Index     int     `json:"index"`
	Total     int     `json:"total"`
	Solved    bool    `json:"solved"`
	Salary    int     `json:"salary"`
	Objective float64 `json:"objective"`
}

// ProgressFunc receives one Progress update per lineup that is solved or
// found infeasible; an attempt ending in a fatal solve error or a cancelled
// context reports nothing.
type ProgressFunc func(Progress)

// Config bundles the static inputs to a batch run — everything Solve and
// exposure.ComputeArgs need that does not change across lineups.
type Config struct {
	Pool        []lineup.Player
	RuleSet     lineup.RuleSet
	Settings    lineup.Settings
	Constraints lineup.Constraints
	Bounds      []exposure.Bound
	N           int
	Mode        exposure.Mode
	Seed        int64
}

// Generate runs the batch loop: for each of Config.N lineups, compute
// exposure args from the rosters solved so far, solve once, and on success
// append the roster and continue. A single InfeasibleError aborts the batch
// immediately — callers may catch it and retry with loosened settings, per
// §7's stated policy that the core does not relax constraints on its own.
func Generate(ctx context.Context, cfg Config, onProgress ProgressFunc) ([]lineup.Roster, error) {
	log := logging.WithOptimizationContext("", string(cfg.RuleSet.GameType), string(cfg.RuleSet.Site))

	rosters := make([]lineup.Roster, 0, cfg.N)
	settings := cfg.Settings

	for i := 0; i < cfg.N; i++ {
		if err := ctx.Err(); err != nil {
			return rosters, err
		}

		// Randomized mode reseeds a fresh PRNG per call (pkg/exposure), so the
		// seed must vary across the batch or every lineup draws the same
		// variate and locks the same names throughout. Deriving it from the
		// index keeps the whole batch reproducible from cfg.Seed alone.
		exposureDict := exposure.ComputeArgs(rosters, cfg.Bounds, cfg.N, cfg.Mode, cfg.Seed+int64(i), nil, cfg.Constraints)

		settings.ExistingRosters = append(append([]lineup.Roster{}, cfg.Settings.ExistingRosters...), rosters...)

		result, err := optimizer.Solve(ctx, cfg.Pool, cfg.RuleSet, settings, cfg.Constraints, exposureDict)
		if err != nil {
			log.WithError(err).WithField("batch_index", i).Error("batch aborted on fatal solve error")
			return rosters, err
		}

		if !result.Solved {
			log.WithField("batch_index", i).Warn("batch aborted: lineup infeasible")
			if onProgress != nil {
				onProgress(Progress{Index: i, Total: cfg.N, Solved: false})
			}
			return rosters, lineup.NewInfeasibleError("batch generation stopped at lineup index " + strconv.Itoa(i))
		}

		rosters = append(rosters, result.Roster)

		if onProgress != nil {
			onProgress(Progress{
				Index:     i,
				Total:     cfg.N,
				Solved:    true,
				Salary:    result.Roster.TotalSalary(),
				Objective: result.Objective,
			})
		}
	}

	return rosters, nil
}
