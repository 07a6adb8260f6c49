package users

import (
	"math"
	"time"

	"github.com/rfonline/rfclient/internal/utils"
	"github.com/rfonline/rfclient/token"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Profile is a user as the backend reports it, subscription expiry included.
type Profile struct {
	ID                 string     `json:"_id"`
	Name               string     `json:"nombre"`
	Email              string     `json:"email"`
	Role               token.Role `json:"rol"`
	SubscriptionExpiry *time.Time `json:"fechaVencimiento,omitempty"`
}

// SubscriptionStatus buckets a profile's subscription expiry for display.
type SubscriptionStatus string

const (
	SubscriptionNone         SubscriptionStatus = "none"
	SubscriptionExpired      SubscriptionStatus = "expired"
	SubscriptionExpiringSoon SubscriptionStatus = "expiring_soon"
	SubscriptionActive       SubscriptionStatus = "active"
)

// expiringSoonWindow is how close to expiry a subscription is flagged.
const expiringSoonWindow = 7 * 24 * time.Hour

// SubscriptionStatus computes the expiry bucket against the current clock.
func (p *Profile) SubscriptionStatus() SubscriptionStatus {
	if p.SubscriptionExpiry == nil {
		return SubscriptionNone
	}
	expiry := utils.Value(p.SubscriptionExpiry)
	now := NowTimeFunc()
	switch {
	case expiry.Before(now):
		return SubscriptionExpired
	case expiry.Sub(now) <= expiringSoonWindow:
		return SubscriptionExpiringSoon
	}
	return SubscriptionActive
}

// ClientPage is one page of the clientele listing.
type ClientPage struct {
	Users []Profile `json:"usuarios"`
	Total int       `json:"total"`
	Page  int       `json:"pagina"`
	Limit int       `json:"limite"`
}

// TotalPages derives the page count from the total and the page size.
func (p ClientPage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.Limit)))
}

func (p ClientPage) HasNext() bool {
	return p.Page < p.TotalPages()
}

func (p ClientPage) HasPrev() bool {
	return p.Page > 1
}

// ClampPage keeps a requested page number inside [1, totalPages]. A listing
// with no pages clamps to 1 so the request stays well-formed.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
