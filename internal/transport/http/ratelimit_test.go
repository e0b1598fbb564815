package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	req := require.New(t)

	rl := newRateLimiter(3)
	stop := make(chan struct{})
	defer close(stop)
	rl.startReset(stop)

	req.True(rl.allow())
	req.True(rl.allow())
	req.True(rl.allow())
	req.False(rl.allow())
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := newRateLimiter(0)
	for i := 0; i < 1000; i++ {
		require.True(t, rl.allow())
	}

	var nilLimiter *rateLimiter
	require.True(t, nilLimiter.allow())
}
