package fence_test

import (
	"testing"

	"github.com/rfonline/rfclient/internal/fence"
	"github.com/stretchr/testify/assert"
)

func TestLatestTicketWins(t *testing.T) {
	var f fence.Fence

	first := f.Next()
	assert.True(t, first.Valid())

	second := f.Next()
	assert.False(t, first.Valid(), "superseded ticket must be dropped")
	assert.True(t, second.Valid())
}

func TestZeroTicketInvalid(t *testing.T) {
	var t0 fence.Ticket
	assert.False(t, t0.Valid())
}
