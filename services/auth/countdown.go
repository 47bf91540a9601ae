package auth

// Countdown gates OTP resends. The same primitive backs the registration,
// login and password-reset modals. It is tick-driven rather than clocked so
// callers (and tests) control time; the CLI ticks it once per elapsed second.
type Countdown struct {
	initial     int
	secondsLeft int
}

// NewCountdown creates a countdown that has not been started: resending is
// allowed until the first Start.
func NewCountdown(initialSeconds int) *Countdown {
	if initialSeconds <= 0 {
		initialSeconds = 34
	}
	return &Countdown{initial: initialSeconds}
}

// Start resets the countdown to its initial value, disabling resend.
func (c *Countdown) Start() {
	c.secondsLeft = c.initial
}

// Tick advances one second. It is safe to call at zero.
func (c *Countdown) Tick() {
	if c.secondsLeft > 0 {
		c.secondsLeft--
	}
}

// SecondsLeft reports the seconds until resend is allowed again.
func (c *Countdown) SecondsLeft() int {
	return c.secondsLeft
}

// CanResend is true exactly when the countdown has reached zero.
func (c *Countdown) CanResend() bool {
	return c.secondsLeft == 0
}
