package quiz

import "time"

const (
	// TickInterval is how often a running countdown recomputes its fraction.
	TickInterval = 50 * time.Millisecond
	// LowTimeThreshold marks the fraction below which time is shown as low.
	LowTimeThreshold = 0.30
)

// LowTime reports whether fraction should be presented as running out.
func LowTime(fraction float64) bool {
	return fraction < LowTimeThreshold
}

// Countdown is a per-question deadline. At most one countdown is live:
// Start cancels the previous run before scheduling a new one.
type Countdown struct {
	clock    Clock
	handle   Handle
	gen      uint64
	running  bool
	deadline time.Time
	duration time.Duration
	frozen   float64
	onTick   func(fraction float64)
	onExpire func()
}

// NewCountdown returns an idle countdown scheduled on clock.
func NewCountdown(clock Clock) *Countdown {
	return &Countdown{clock: clock}
}

// Start begins a countdown of duration d. onTick receives the remaining
// fraction on every tick; onExpire runs exactly once when it reaches zero.
func (c *Countdown) Start(d time.Duration, onTick func(fraction float64), onExpire func()) {
	c.Cancel()
	c.gen++
	c.running = true
	c.duration = d
	c.deadline = c.clock.Now().Add(d)
	c.onTick = onTick
	c.onExpire = onExpire
	c.schedule(c.gen)
}

// Cancel stops ticking without calling onExpire. The fraction at the moment
// of cancellation is kept for Fraction.
func (c *Countdown) Cancel() {
	if !c.running {
		return
	}
	c.frozen = c.remaining()
	c.running = false
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
	c.onTick = nil
	c.onExpire = nil
}

// Running reports whether a countdown is live.
func (c *Countdown) Running() bool {
	return c.running
}

// Fraction returns the remaining share of the duration in [0, 1].
func (c *Countdown) Fraction() float64 {
	if !c.running {
		return c.frozen
	}
	return c.remaining()
}

func (c *Countdown) remaining() float64 {
	if c.duration <= 0 {
		return 0
	}
	left := c.deadline.Sub(c.clock.Now())
	if left <= 0 {
		return 0
	}
	f := float64(left) / float64(c.duration)
	if f > 1 {
		return 1
	}
	return f
}

func (c *Countdown) schedule(gen uint64) {
	c.handle = c.clock.AfterFunc(TickInterval, func() { c.tick(gen) })
}

func (c *Countdown) tick(gen uint64) {
	if !c.running || gen != c.gen {
		return
	}
	c.handle = nil
	fraction := c.remaining()
	if fraction <= 0 {
		onTick, onExpire := c.onTick, c.onExpire
		c.Cancel()
		if onTick != nil {
			onTick(0)
		}
		if onExpire != nil {
			onExpire()
		}
		return
	}
	if c.onTick != nil {
		c.onTick(fraction)
	}
	// onTick may have cancelled or restarted the countdown.
	if c.running && gen == c.gen {
		c.schedule(gen)
	}
}
