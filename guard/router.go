package guard

import (
	"github.com/rs/zerolog/log"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/session"
	"github.com/rfonline/rfclient/token"
)

// SnapshotProvider reads the current session. session.Store implements it.
type SnapshotProvider interface {
	Snapshot() session.Snapshot
}

// RenderFunc draws a view.
type RenderFunc func()

// Route is one guarded destination. An empty AllowedRoles set admits any
// authenticated role.
type Route struct {
	Path         string
	AllowedRoles []token.Role
	Render       RenderFunc
}

// Router resolves navigation attempts against the session and renders the
// matching view: the route itself, or the waiting, login or not-authorized
// view the guard decided on.
type Router struct {
	sessions SnapshotProvider
	routes   map[string]Route

	waiting RenderFunc
	login   RenderFunc
	denied  RenderFunc
}

// NewRouter builds a router over the given session. The three fallback views
// may be nil, in which case the decision is returned without rendering.
func NewRouter(sessions SnapshotProvider, waiting, login, denied RenderFunc) (*Router, error) {
	if sessions == nil {
		return nil, errors.Wrapf(errors.ErrInternal, "guard.NewRouter: sessions is required")
	}
	return &Router{
		sessions: sessions,
		routes:   make(map[string]Route),
		waiting:  waiting,
		login:    login,
		denied:   denied,
	}, nil
}

// Handle registers a guarded route.
func (r *Router) Handle(route Route) {
	r.routes[route.Path] = route
}

// Navigate resolves a path and renders the outcome.
func (r *Router) Navigate(path string) (Decision, error) {
	route, ok := r.routes[path]
	if !ok {
		return Decision{}, errors.Wrapf(errors.ErrNotFound, "guard.Navigate: %s", path)
	}

	decision := Resolve(r.sessions.Snapshot(), path, route.AllowedRoles)
	log.Debug().Str("path", path).Stringer("outcome", decision.Outcome).Msg("guard: navigate")

	switch decision.Outcome {
	case OutcomeWait:
		r.render(r.waiting)
	case OutcomeRedirectLogin:
		r.render(r.login)
	case OutcomeDeny:
		r.render(r.denied)
	case OutcomeAllow:
		r.render(route.Render)
	}
	return decision, nil
}

func (r *Router) render(fn RenderFunc) {
	if fn != nil {
		fn()
	}
}
