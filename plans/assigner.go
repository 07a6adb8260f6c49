package plans

import (
	"context"

	"github.com/rs/zerolog/log"
)

// DayAssigner is the slice of the API client the assigner needs.
type DayAssigner interface {
	AssignDay(ctx context.Context, planID string, week, day int, blockID string) error
}

// ItemFailure records one block that could not be assigned.
type ItemFailure struct {
	BlockID string
	Err     error
}

// Report tallies the outcome of assigning a selection of blocks.
type Report struct {
	Succeeded []string
	Failed    []ItemFailure
}

// AllSucceeded reports whether every selected block was assigned.
func (r Report) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// Assigner attaches selections of workout blocks to a plan day.
type Assigner struct {
	api DayAssigner
}

func NewAssigner(api DayAssigner) *Assigner {
	return &Assigner{api: api}
}

// Assign sends one request per selected block, strictly one at a time so the
// tally is deterministic. A failed item does not cancel the ones after it;
// the caller gets a per-item report, never an all-or-nothing rollback.
func (a *Assigner) Assign(ctx context.Context, planID string, week, day int, blockIDs []string) Report {
	var report Report
	for _, blockID := range blockIDs {
		if err := a.api.AssignDay(ctx, planID, week, day, blockID); err != nil {
			log.Warn().Err(err).
				Str("plan", planID).
				Int("week", week).
				Int("day", day).
				Str("block", blockID).
				Msg("block assignment failed")
			report.Failed = append(report.Failed, ItemFailure{BlockID: blockID, Err: err})
			continue
		}
		report.Succeeded = append(report.Succeeded, blockID)
	}
	return report
}
