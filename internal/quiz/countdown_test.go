package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownExpiresOnce(t *testing.T) {
	clock := newFakeClock()
	c := NewCountdown(clock)

	var fractions []float64
	expired := 0
	c.Start(time.Second, func(f float64) { fractions = append(fractions, f) }, func() { expired++ })
	require.True(t, c.Running())

	clock.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, c.Fraction(), 1e-9)
	assert.Equal(t, 0, expired)

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, expired)
	assert.False(t, c.Running())
	assert.Equal(t, 0.0, c.Fraction())
	assert.Equal(t, 0, clock.pending())

	require.Len(t, fractions, 20)
	for i := 1; i < len(fractions); i++ {
		assert.Less(t, fractions[i], fractions[i-1])
	}
	assert.Equal(t, 0.0, fractions[len(fractions)-1])
}

func TestCountdownCancelSuppressesExpire(t *testing.T) {
	clock := newFakeClock()
	c := NewCountdown(clock)
	expired := 0
	c.Start(time.Second, nil, func() { expired++ })

	clock.Advance(300 * time.Millisecond)
	c.Cancel()
	assert.InDelta(t, 0.7, c.Fraction(), 1e-9)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 0, expired)
	assert.Equal(t, 0, clock.pending())
}

func TestCountdownRestartKeepsSingleTimer(t *testing.T) {
	clock := newFakeClock()
	c := NewCountdown(clock)
	first, second := 0, 0

	c.Start(time.Second, nil, func() { first++ })
	clock.Advance(900 * time.Millisecond)
	c.Start(time.Second, nil, func() { second++ })
	assert.Equal(t, 1, clock.pending())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestCountdownRestartFromTick(t *testing.T) {
	clock := newFakeClock()
	c := NewCountdown(clock)
	expired := 0
	restarted := false
	c.Start(time.Second, func(float64) {
		if !restarted {
			restarted = true
			c.Start(200*time.Millisecond, nil, func() { expired++ })
		}
	}, func() { expired += 100 })

	clock.Advance(5 * time.Second)
	assert.Equal(t, 1, expired)
	assert.Equal(t, 0, clock.pending())
}

func TestLowTime(t *testing.T) {
	assert.True(t, LowTime(0.29))
	assert.False(t, LowTime(0.30))
	assert.False(t, LowTime(1))
}
