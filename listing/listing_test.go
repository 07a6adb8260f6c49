package listing_test

import (
	"context"
	"testing"
	"time"

	"github.com/rfonline/rfclient/api"
	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/listing"
	"github.com/rfonline/rfclient/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	params api.ClientListParams
	reply  chan fetchResult
}

type fetchResult struct {
	page *users.ClientPage
	err  error
}

// gatedFetcher hands each call to the test, which decides when and with what
// to answer. That makes out-of-order completions deterministic.
type gatedFetcher struct {
	calls chan fetchCall
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{calls: make(chan fetchCall)}
}

func (g *gatedFetcher) Clients(_ context.Context, params api.ClientListParams) (*users.ClientPage, error) {
	reply := make(chan fetchResult)
	g.calls <- fetchCall{params: params, reply: reply}
	res := <-reply
	return res.page, res.err
}

func awaitCall(t *testing.T, g *gatedFetcher) fetchCall {
	t.Helper()
	select {
	case c := <-g.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no fetch call arrived")
		return fetchCall{}
	}
}

func TestRefreshAppliesResult(t *testing.T) {
	fetcher := newGatedFetcher()
	ctrl := listing.NewController(fetcher)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Refresh(context.Background(), api.ClientListParams{Page: 1})
	}()

	call := awaitCall(t, fetcher)
	want := &users.ClientPage{Page: 1, Total: 3, Limit: 10}
	call.reply <- fetchResult{page: want}
	require.NoError(t, <-done)

	page, err := ctrl.Page()
	require.NoError(t, err)
	assert.Equal(t, want, page)
}

func TestStaleResponseCannotOverwriteFresherState(t *testing.T) {
	fetcher := newGatedFetcher()
	ctrl := listing.NewController(fetcher)

	// First refresh goes out and hangs.
	done1 := make(chan error, 1)
	go func() {
		done1 <- ctrl.Refresh(context.Background(), api.ClientListParams{Page: 1})
	}()
	call1 := awaitCall(t, fetcher)

	// Second refresh supersedes it and completes first.
	done2 := make(chan error, 1)
	go func() {
		done2 <- ctrl.Refresh(context.Background(), api.ClientListParams{Page: 2})
	}()
	call2 := awaitCall(t, fetcher)

	fresh := &users.ClientPage{Page: 2, Total: 40, Limit: 10}
	call2.reply <- fetchResult{page: fresh}
	require.NoError(t, <-done2)

	// Now the first, superseded response lands. It must be dropped.
	call1.reply <- fetchResult{page: &users.ClientPage{Page: 1, Total: 40, Limit: 10}}
	require.NoError(t, <-done1)

	page, err := ctrl.Page()
	require.NoError(t, err)
	assert.Equal(t, fresh, page)
}

func TestRefreshSurfacesFetchError(t *testing.T) {
	fetcher := newGatedFetcher()
	ctrl := listing.NewController(fetcher)

	done := make(chan error, 1)
	go func() {
		done <- ctrl.Refresh(context.Background(), api.ClientListParams{Page: 1})
	}()

	call := awaitCall(t, fetcher)
	call.reply <- fetchResult{err: errors.ErrInternal}
	require.ErrorIs(t, <-done, errors.ErrInternal)

	_, err := ctrl.Page()
	assert.ErrorIs(t, err, errors.ErrInternal)
}
