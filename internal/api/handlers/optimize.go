// Package handlers implements the HTTP surface in SPEC_FULL.md §6.1, wiring
// the optimizer/exposure/batch packages behind gin endpoints the way
// internal/api/handlers/optimization.go wires the teacher's algorithm.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/lineup-core/internal/progress"
	"github.com/stitts-dev/lineup-core/pkg/batch"
	"github.com/stitts-dev/lineup-core/pkg/config"
	"github.com/stitts-dev/lineup-core/pkg/exposure"
	"github.com/stitts-dev/lineup-core/pkg/lineup"
)

// OptimizeHandler serves /api/v1/optimize and /api/v1/optimize/validate.
type OptimizeHandler struct {
	hub    *progress.Hub
	config *config.Config
	logger *logrus.Logger
}

// NewOptimizeHandler constructs an OptimizeHandler.
func NewOptimizeHandler(hub *progress.Hub, cfg *config.Config, logger *logrus.Logger) *OptimizeHandler {
	return &OptimizeHandler{hub: hub, config: cfg, logger: logger}
}

// optimizeRequest is the wire shape of a POST /api/v1/optimize body.
type optimizeRequest struct {
	Pool        []lineup.Player        `json:"pool"`
	RuleSet     lineup.RuleSet         `json:"rule_set"`
	Settings    lineup.Settings        `json:"settings"`
	Bounds      []exposure.Bound       `json:"exposure_bounds"`
	N           int                    `json:"n"`
	Randomized  bool                   `json:"randomized"`
	Seed        int64                  `json:"seed"`
	LockedNames []string               `json:"locked_names"`
	BannedNames []string               `json:"banned_names"`
}

type optimizeResponse struct {
	OptimizationID string           `json:"optimization_id"`
	Lineups        []lineup.Roster  `json:"lineups"`
	Exposure       map[string]float64 `json:"exposure"`
}

// OptimizeLineups handles POST /api/v1/optimize: runs a full batch and
// returns every solved roster plus the post-hoc exposure diff.
func (h *OptimizeHandler) OptimizeLineups(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if req.N <= 0 {
		req.N = h.config.DefaultBatchSize
	}

	constraints := lineup.NewMapConstraints()
	for _, name := range req.LockedNames {
		constraints.Lock(name)
	}
	for _, name := range req.BannedNames {
		constraints.Ban(name)
	}

	mode := exposure.Deterministic
	if req.Randomized {
		mode = exposure.Randomized
	}

	runID := uuid.New().String()
	log := h.logger.WithField("optimization_id", runID)

	cfg := batch.Config{
		Pool:        req.Pool,
		RuleSet:     req.RuleSet,
		Settings:    req.Settings,
		Constraints: constraints,
		Bounds:      req.Bounds,
		N:           req.N,
		Mode:        mode,
		Seed:        req.Seed,
	}

	rosters, err := batch.Generate(c.Request.Context(), cfg, func(p batch.Progress) {
		if h.hub != nil {
			h.hub.Publish(runID, p)
		}
	})
	if err != nil {
		log.WithError(err).Warn("batch generation did not complete")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":           err.Error(),
			"optimization_id": runID,
			"lineups":         rosters,
		})
		return
	}

	c.JSON(http.StatusOK, optimizeResponse{
		OptimizationID: runID,
		Lineups:        rosters,
		Exposure:       exposure.CheckExposure(rosters, req.Bounds),
	})
}

// validateRequest is the wire shape of a POST /api/v1/optimize/validate body.
type validateRequest struct {
	Pool    []lineup.Player `json:"pool"`
	RuleSet lineup.RuleSet  `json:"rule_set"`
}

// ValidateLineupRequest sanity-checks a rule set against a player pool
// without running the solver: it reports whether enough players exist per
// position to ever satisfy the rule set's limits, and whether the salary
// bounds are ordered.
func (h *OptimizeHandler) ValidateLineupRequest(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	var warnings []string
	counts := map[string]int{}
	for _, p := range req.Pool {
		counts[p.Pos]++
	}
	for _, limit := range req.RuleSet.PositionLimits {
		if counts[limit.Position] < limit.Min {
			warnings = append(warnings, "not enough players at position "+limit.Position+" to satisfy its minimum")
		}
	}
	if req.RuleSet.SalaryMin > req.RuleSet.SalaryMax {
		warnings = append(warnings, "salary_min exceeds salary_max")
	}

	c.JSON(http.StatusOK, gin.H{"warnings": warnings, "valid": len(warnings) == 0})
}
