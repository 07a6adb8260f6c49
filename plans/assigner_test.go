package plans_test

import (
	"context"
	"testing"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/plans"
	"github.com/rfonline/rfclient/plans/assignerfakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignAllSucceed(t *testing.T) {
	fake := assignerfakes.NewFakeDayAssigner()
	assigner := plans.NewAssigner(fake)

	report := assigner.Assign(context.Background(), "plan-1", 2, 3, []string{"b1", "b2", "b3"})

	assert.True(t, report.AllSucceeded())
	assert.Equal(t, []string{"b1", "b2", "b3"}, report.Succeeded)
	assert.Empty(t, report.Failed)
}

func TestAssignPartialFailureKeepsGoing(t *testing.T) {
	fake := assignerfakes.NewFakeDayAssigner()
	fake.FailBlock("b2", errors.ErrInternal)
	assigner := plans.NewAssigner(fake)

	report := assigner.Assign(context.Background(), "plan-1", 1, 1, []string{"b1", "b2", "b3"})

	// Failure of the second item must not cancel the third: the end state is
	// two successes and one failure, not a rollback.
	assert.False(t, report.AllSucceeded())
	assert.Equal(t, []string{"b1", "b3"}, report.Succeeded)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "b2", report.Failed[0].BlockID)
	assert.ErrorIs(t, report.Failed[0].Err, errors.ErrInternal)

	// Requests went out strictly one at a time, in selection order.
	assert.Equal(t, []string{"b1", "b2", "b3"}, fake.Calls())
}

func TestAssignEmptySelection(t *testing.T) {
	fake := assignerfakes.NewFakeDayAssigner()
	assigner := plans.NewAssigner(fake)

	report := assigner.Assign(context.Background(), "plan-1", 1, 1, nil)

	assert.True(t, report.AllSucceeded())
	assert.Empty(t, report.Succeeded)
	assert.Empty(t, fake.Calls())
}
