// Package session owns the client-side authentication state: one Store per
// execution context, backed by persisted storage, kept in sync with other
// contexts through the storage notification channel.
package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rfonline/rfclient/api"
	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/storage"
	"github.com/rfonline/rfclient/token"
)

// State is the session lifecycle position. Loading is always transient: it
// never outlives the initialize or login call that entered it.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "uninitialized"
}

// Snapshot is a point-in-time read of the session. Identity is non-nil iff
// the state is Authenticated.
type Snapshot struct {
	State    State
	Identity *token.Identity
}

// Credentials are what the user typed into the login form.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator performs the external login call. api.Client implements it.
type Authenticator interface {
	Login(ctx context.Context, email, password string, remember bool) (string, error)
}

// Navigator is the view layer's navigation hook: login lands on the home
// view, logout on the login view.
type Navigator interface {
	ShowHome()
	ShowLogin()
}

// Store holds the authentication state for one execution context.
type Store struct {
	mu          sync.RWMutex
	storage     storage.Store
	auth        Authenticator
	nav         Navigator
	state       State
	identity    *token.Identity
	token       string
	listeners   map[int]func(Snapshot)
	nextID      int
	unsubscribe func()
}

// Option configures a Store.
type Option func(*Store)

// WithNavigator wires the view-layer navigation hook.
func WithNavigator(nav Navigator) Option {
	return func(s *Store) {
		s.nav = nav
	}
}

// New creates a session store bound to its storage and authenticator. The
// store immediately subscribes to storage mutations from other contexts; any
// event touching the token or remember key re-runs Initialize, so a login or
// logout elsewhere propagates here. Call Close to release the subscription.
func New(st storage.Store, auth Authenticator, options ...Option) (*Store, error) {
	if st == nil {
		return nil, stderrors.New("[session.New] storage is required")
	}
	if auth == nil {
		return nil, stderrors.New("[session.New] authenticator is required")
	}

	s := &Store{
		storage:   st,
		auth:      auth,
		state:     StateUninitialized,
		listeners: make(map[int]func(Snapshot)),
	}
	for _, opt := range options {
		opt(s)
	}

	s.unsubscribe = st.Subscribe(func(key string) {
		if key != storage.TokenKey && key != storage.RememberKey {
			return
		}
		log.Debug().Str("key", key).Msg("session: external storage mutation")
		s.Initialize()
	})

	return s, nil
}

// Initialize derives the session from persisted storage. Identity is restored
// only when a token is present, the remember flag is "true" and the token
// still decodes; in every other case the session is anonymous. Idempotent:
// with unchanged storage, repeated calls land in the same state.
func (s *Store) Initialize() {
	s.mu.Lock()
	s.state = StateLoading

	rawToken, hasToken := s.storage.Get(storage.TokenKey)
	remember, _ := s.storage.Get(storage.RememberKey)

	switch {
	case !hasToken || remember != "true":
		s.setAnonymousLocked()
	default:
		ident, err := token.Decode(rawToken)
		if err != nil {
			// Decode failures degrade to "no session", never to the user.
			log.Debug().Err(err).Msg("session: stored token rejected")
			s.setAnonymousLocked()
		} else {
			s.identity = ident
			s.token = rawToken
			s.state = StateAuthenticated
		}
	}

	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

// Login authenticates against the backend. On success the token and remember
// flag are persisted, the identity populated and the navigator pointed home.
// A non-2xx response surfaces ErrAuthenticationFailed wrapping the server
// message; a freshly issued token the client cannot decode is fatal and
// surfaces ErrInvalidSession. Either way Loading is cleared before returning
// and the identity is left as it was.
func (s *Store) Login(ctx context.Context, creds Credentials, remember bool) error {
	s.mu.Lock()
	prev := s.state
	s.state = StateLoading
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)

	rawToken, err := s.auth.Login(ctx, creds.Email, creds.Password, remember)
	if err != nil {
		s.restoreState(prev)
		var apiErr *api.Error
		if stderrors.As(err, &apiErr) {
			log.Info().Int("status", apiErr.StatusCode).Msg("session: login rejected")
			return fmt.Errorf("%w: %w", errors.ErrAuthenticationFailed, err)
		}
		return errors.Wrapf(err, "session.Login")
	}

	ident, err := token.Decode(rawToken)
	if err != nil {
		// The server just issued this token; failing to decode it locally
		// leaves no usable session.
		s.restoreState(prev)
		return fmt.Errorf("%w: %w", errors.ErrInvalidSession, err)
	}

	if err := s.storage.Set(storage.TokenKey, rawToken); err != nil {
		s.restoreState(prev)
		return errors.Wrapf(err, "session.Login: persisting token")
	}
	if err := s.storage.Set(storage.RememberKey, strconv.FormatBool(remember)); err != nil {
		s.restoreState(prev)
		return errors.Wrapf(err, "session.Login: persisting remember flag")
	}

	s.mu.Lock()
	s.identity = ident
	s.token = rawToken
	s.state = StateAuthenticated
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)

	log.Info().Str("user", ident.ID).Str("role", string(ident.Role)).Msg("session: login")
	if s.nav != nil {
		s.nav.ShowHome()
	}
	return nil
}

// Logout clears the persisted keys and the identity and points the navigator
// at the login view. Storage clearing is best effort; Logout never fails.
func (s *Store) Logout() {
	s.storage.Delete(storage.TokenKey)
	s.storage.Delete(storage.RememberKey)

	s.mu.Lock()
	s.setAnonymousLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)

	log.Info().Msg("session: logout")
	if s.nav != nil {
		s.nav.ShowLogin()
	}
}

// Snapshot returns the current state and identity.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Token implements api.TokenSource: the bearer token of the authenticated
// session, or nothing.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return "", false
	}
	return s.token, true
}

// OnChange registers a listener for session snapshots. The returned function
// unregisters it and must be called on teardown.
func (s *Store) OnChange(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close releases the storage subscription.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Store) setAnonymousLocked() {
	s.identity = nil
	s.token = ""
	s.state = StateAnonymous
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{State: s.state, Identity: s.identity}
}

// restoreState drops out of Loading after a failed login, leaving the
// identity untouched.
func (s *Store) restoreState(prev State) {
	s.mu.Lock()
	if prev == StateLoading || prev == StateUninitialized {
		prev = StateAnonymous
	}
	s.state = prev
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(snap)
}

func (s *Store) publish(snap Snapshot) {
	s.mu.RLock()
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(snap)
	}
}
