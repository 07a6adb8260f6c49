// Package listing keeps the latest clientele page for a view. Refreshes may
// overlap; a response from a superseded refresh is dropped rather than
// allowed to overwrite fresher state.
package listing

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rfonline/rfclient/api"
	"github.com/rfonline/rfclient/internal/fence"
	"github.com/rfonline/rfclient/users"
)

// Fetcher is the slice of the API client the controller needs.
type Fetcher interface {
	Clients(ctx context.Context, params api.ClientListParams) (*users.ClientPage, error)
}

// Controller holds the page a clientele view renders from.
type Controller struct {
	fetch Fetcher

	fence fence.Fence
	mu    sync.RWMutex
	page  *users.ClientPage
	err   error
}

func NewController(fetch Fetcher) *Controller {
	return &Controller{fetch: fetch}
}

// Refresh fetches one page with the given filters. If a newer Refresh was
// issued while this one was in flight, its result is discarded. The returned
// error is the fetch error, surfaced so the view can offer a retry.
func (c *Controller) Refresh(ctx context.Context, params api.ClientListParams) error {
	ticket := c.fence.Next()

	page, err := c.fetch.Clients(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ticket.Valid() {
		log.Debug().Int("page", params.Page).Msg("listing: stale refresh dropped")
		return err
	}
	c.page = page
	c.err = err
	return err
}

// Page returns the latest applied page and fetch error.
func (c *Controller) Page() (*users.ClientPage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page, c.err
}
