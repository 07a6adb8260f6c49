package assignerfakes

import (
	"context"
	"sync"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/plans"
)

var _ plans.DayAssigner = (*FakeDayAssigner)(nil)

// FakeDayAssigner records assignment calls in order and fails the block IDs
// it has been told to fail.
type FakeDayAssigner struct {
	lock     sync.Mutex
	calls    []string
	failures map[string]error
}

func NewFakeDayAssigner() *FakeDayAssigner {
	return &FakeDayAssigner{failures: make(map[string]error)}
}

// FailBlock makes subsequent assignments of blockID return err.
func (f *FakeDayAssigner) FailBlock(blockID string, err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err == nil {
		err = errors.ErrInternal
	}
	f.failures[blockID] = err
}

func (f *FakeDayAssigner) AssignDay(_ context.Context, _ string, _, _ int, blockID string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = append(f.calls, blockID)
	if err, ok := f.failures[blockID]; ok {
		return err
	}
	return nil
}

// Calls returns the block IDs in the order they were attempted.
func (f *FakeDayAssigner) Calls() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.calls...)
}
