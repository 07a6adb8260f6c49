// Package guard gates navigation on the session state and a route's declared
// allowed roles.
package guard

import (
	"github.com/rfonline/rfclient/session"
	"github.com/rfonline/rfclient/token"
)

// Outcome is what the view layer should do with a navigation attempt.
type Outcome int

const (
	// OutcomeWait renders a neutral waiting indicator while the session is
	// still resolving. Redirecting here would bounce a still-loading
	// authenticated user to the login view.
	OutcomeWait Outcome = iota
	// OutcomeRedirectLogin sends an anonymous user to the login view.
	OutcomeRedirectLogin
	// OutcomeDeny renders the fixed not-authorized view. The user stays on
	// the blocked page; no redirect, no page content.
	OutcomeDeny
	// OutcomeAllow renders the requested view.
	OutcomeAllow
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedirectLogin:
		return "redirect-login"
	case OutcomeDeny:
		return "deny"
	case OutcomeAllow:
		return "allow"
	}
	return "wait"
}

// Decision is the resolved gate for one navigation attempt.
type Decision struct {
	Outcome Outcome

	// Location is the originally requested location, captured on a redirect
	// so a later enhancement can replay it after login.
	Location string
}

// Resolve gates a navigation attempt. An empty allowed set means any
// authenticated role. Role membership is a case-sensitive exact match
// against the closed role set; no hierarchy is inferred, so a page wanting
// both admin and coach must list both.
func Resolve(snap session.Snapshot, location string, allowed []token.Role) Decision {
	switch snap.State {
	case session.StateUninitialized, session.StateLoading:
		return Decision{Outcome: OutcomeWait}
	case session.StateAnonymous:
		return Decision{Outcome: OutcomeRedirectLogin, Location: location}
	}

	if len(allowed) == 0 {
		return Decision{Outcome: OutcomeAllow}
	}
	for _, role := range allowed {
		if snap.Identity != nil && snap.Identity.Role == role {
			return Decision{Outcome: OutcomeAllow}
		}
	}
	return Decision{Outcome: OutcomeDeny}
}
