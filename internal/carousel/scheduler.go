package carousel

import "time"

// Scheduler arms recurring auto-advance timers.
//
// Implementations must invoke fire on the same event loop that delivers user
// intents to the Controller, never concurrently with another intent, and must
// stop invoking it once Disarm has returned.
type Scheduler interface {
	Arm(interval time.Duration, fire func()) Timer
}

// Timer is the handle of one armed recurring timer.
type Timer interface {
	// Disarm stops the timer. Calling it more than once is harmless.
	Disarm()
}
