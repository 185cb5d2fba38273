package game

import "time"

// ReportInterval is how much real time passes between frame-rate reports.
const ReportInterval = time.Second

// Clock is a fixed-timestep accumulator. Each call to Tick banks the real
// time elapsed since the previous call and pays it out in whole steps.
type Clock struct {
	step        time.Duration
	last        time.Time
	acc         time.Duration
	sinceReport time.Duration
	frames      int
	report      func(frames int)
}

// NewClock creates a clock running rate logical updates per second,
// starting at now. report, if non-nil, receives the number of frames
// counted in each ReportInterval.
func NewClock(rate int, now time.Time, report func(frames int)) *Clock {
	if rate < 1 {
		rate = 1
	}
	return &Clock{
		step:   time.Second / time.Duration(rate),
		last:   now,
		report: report,
	}
}

// Step returns the fixed duration of one logical update.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Tick returns how many logical updates are due at now. Time that does not
// fill a whole step carries over to the next call. A clock that goes
// backwards contributes nothing. Report intervals keep their overshoot, so
// reports stay aligned to whole seconds of clock time.
func (c *Clock) Tick(now time.Time) int {
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}

	c.acc += elapsed
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step

	c.sinceReport += elapsed
	if c.sinceReport >= ReportInterval {
		if c.report != nil {
			c.report(c.frames)
		}
		c.frames = 0
		c.sinceReport %= ReportInterval
	}
	return n
}

// CountFrame records one render pass for the next report.
func (c *Clock) CountFrame() {
	c.frames++
}

// Accumulated returns the banked time in units of steps, always in [0, 1)
// after Tick returns.
func (c *Clock) Accumulated() float64 {
	return float64(c.acc) / float64(c.step)
}
