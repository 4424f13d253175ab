package engine

import "time"

// Clock supplies the time source and the frame delay used by Scheduler.Run.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock reads the monotonic system clock and really sleeps.
type RealClock struct{}

func (RealClock) Now() time.Time        { return time.Now() }
func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock is a virtual clock: Sleep advances the reading instead of
// blocking. It is meant for tests and replays.
type ManualClock struct {
	now    time.Time
	slept  time.Duration
	sleeps int
}

// NewManualClock creates a virtual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

func (c *ManualClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
	c.sleeps++
}

// Advance moves the clock forward without counting as a sleep.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Slept returns the total virtual time spent sleeping and the number of sleeps.
func (c *ManualClock) Slept() (time.Duration, int) {
	return c.slept, c.sleeps
}

// Pacer turns variable frame deltas into a whole number of fixed ticks. It
// lets a host loop running faster than the tick rate, such as ebiten's
// update loop, poll input every frame while gravity advances at a constant rate.
type Pacer struct {
	interval time.Duration
	pending  time.Duration
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Advance adds dt and returns how many ticks have become due.
func (p *Pacer) Advance(dt time.Duration) int {
	p.pending += dt
	due := int(p.pending / p.interval)
	p.pending -= time.Duration(due) * p.interval
	return due
}

func (p *Pacer) Interval() time.Duration { return p.interval }
