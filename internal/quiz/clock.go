package quiz

import "time"

// Handle cancels a scheduled callback. Stop on a handle that already fired
// or was stopped is a no-op.
type Handle interface {
	Stop()
}

// Clock schedules callbacks. Implementations must run every callback on the
// same logical thread that delivers user events to the Controller, and a
// stopped callback must never run.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Handle
}
