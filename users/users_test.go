package users_test

import (
	"testing"
	"time"

	"github.com/rfonline/rfclient/internal/utils"
	"github.com/rfonline/rfclient/users"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t *testing.T) {
	t.Helper()
	users.NowTimeFunc = func() time.Time { return testNow }
	t.Cleanup(func() { users.NowTimeFunc = time.Now })
}

func TestSubscriptionStatus(t *testing.T) {
	fixedClock(t)

	tests := []struct {
		name   string
		expiry *time.Time
		want   users.SubscriptionStatus
	}{
		{"no expiry on record", nil, users.SubscriptionNone},
		{"expired yesterday", utils.Ptr(testNow.Add(-24 * time.Hour)), users.SubscriptionExpired},
		{"expires tomorrow", utils.Ptr(testNow.Add(24 * time.Hour)), users.SubscriptionExpiringSoon},
		{"expires in exactly seven days", utils.Ptr(testNow.Add(7 * 24 * time.Hour)), users.SubscriptionExpiringSoon},
		{"expires next month", utils.Ptr(testNow.Add(30 * 24 * time.Hour)), users.SubscriptionActive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := users.Profile{SubscriptionExpiry: tc.expiry}
			assert.Equal(t, tc.want, p.SubscriptionStatus())
		})
	}
}

func TestClientPageMath(t *testing.T) {
	tests := []struct {
		name       string
		page       users.ClientPage
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty listing", users.ClientPage{Total: 0, Page: 1, Limit: 10}, 0, false, false},
		{"single partial page", users.ClientPage{Total: 7, Page: 1, Limit: 10}, 1, false, false},
		{"exact fit", users.ClientPage{Total: 20, Page: 1, Limit: 10}, 2, true, false},
		{"middle page", users.ClientPage{Total: 35, Page: 2, Limit: 10}, 4, true, true},
		{"last page", users.ClientPage{Total: 35, Page: 4, Limit: 10}, 4, false, true},
		{"zero limit", users.ClientPage{Total: 35, Page: 1, Limit: 0}, 0, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.totalPages, tc.page.TotalPages())
			assert.Equal(t, tc.hasNext, tc.page.HasNext())
			assert.Equal(t, tc.hasPrev, tc.page.HasPrev())
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, users.ClampPage(0, 5))
	assert.Equal(t, 1, users.ClampPage(-3, 5))
	assert.Equal(t, 3, users.ClampPage(3, 5))
	assert.Equal(t, 5, users.ClampPage(9, 5))
	assert.Equal(t, 1, users.ClampPage(2, 0))
}
