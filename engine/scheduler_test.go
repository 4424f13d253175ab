package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
)

type Counter struct {
	Value int
}

type Trace struct {
	Calls []string
}

type IncrementSystem struct {
	Counter engine.Singleton[Counter]
	Trace   engine.Singleton[Trace]
}

func (s *IncrementSystem) Execute(frame *engine.UpdateFrame) {
	s.Counter.MustGet().Value++
	trace := s.Trace.MustGet()
	trace.Calls = append(trace.Calls, "increment")
}

type ReportSystem struct {
	Counter engine.Singleton[Counter]
	Trace   engine.Singleton[Trace]
	Seen    []int
}

func (s *ReportSystem) Execute(frame *engine.UpdateFrame) {
	s.Seen = append(s.Seen, s.Counter.MustGet().Value)
	trace := s.Trace.MustGet()
	trace.Calls = append(trace.Calls, "report")
}

// StopAfter halts the loop once the counter reaches Limit.
type StopAfter struct {
	Counter engine.Singleton[Counter]
	Limit   int
}

func (s *StopAfter) Execute(frame *engine.UpdateFrame) {
	if s.Counter.MustGet().Value >= s.Limit {
		frame.Commands.Halt("limit reached")
	}
}

func newResources() (*engine.Resources, *Counter, *Trace) {
	resources := engine.NewResources()
	counter := &Counter{}
	trace := &Trace{}
	engine.Provide(resources, counter)
	engine.Provide(resources, trace)
	return resources, counter, trace
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order and singleton initialization", func(t *testing.T) {
		resources, counter, trace := newResources()
		scheduler := engine.NewScheduler(resources)

		report := &ReportSystem{}
		scheduler.Register(&IncrementSystem{})
		scheduler.Register(report)

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		assert.Equal(t, 2, counter.Value)
		assert.Equal(t, []int{1, 2}, report.Seen)
		assert.Equal(t, []string{"increment", "report", "increment", "report"}, trace.Calls)
		assert.Equal(t, uint64(2), scheduler.Ticks())
	})

	t.Run("halt completes the tick then stops", func(t *testing.T) {
		resources, counter, _ := newResources()
		scheduler := engine.NewScheduler(resources)

		report := &ReportSystem{}
		scheduler.Register(&IncrementSystem{})
		scheduler.Register(&StopAfter{Limit: 2})
		scheduler.Register(report)

		for range 5 {
			scheduler.Once(1.0)
		}

		halted, reason := scheduler.Halted()
		assert.True(t, halted)
		assert.Equal(t, "limit reached", reason)
		assert.Equal(t, 2, counter.Value)
		assert.Equal(t, []int{1, 2}, report.Seen)
	})

	t.Run("deferred commands run after every system", func(t *testing.T) {
		resources, _, trace := newResources()
		scheduler := engine.NewScheduler(resources)

		scheduler.Register(systemFunc(func(frame *engine.UpdateFrame) {
			frame.Commands.Defer(func() { trace.Calls = append(trace.Calls, "deferred") })
		}))
		scheduler.Register(&IncrementSystem{})

		scheduler.Once(0)

		assert.Equal(t, []string{"increment", "deferred"}, trace.Calls)
	})

	t.Run("run with manual clock paces ticks", func(t *testing.T) {
		resources, counter, _ := newResources()
		scheduler := engine.NewScheduler(resources)
		scheduler.Register(&IncrementSystem{})
		scheduler.Register(&StopAfter{Limit: 7})

		clock := engine.NewManualClock(time.Unix(0, 0))
		err := scheduler.Run(context.Background(), clock, time.Second/7)

		require.NoError(t, err)
		assert.Equal(t, 7, counter.Value)
		slept, sleeps := clock.Slept()
		assert.Equal(t, 6, sleeps)
		assert.Equal(t, 6*(time.Second/7), slept)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		resources, counter, _ := newResources()
		scheduler := engine.NewScheduler(resources)
		scheduler.Register(&IncrementSystem{})

		ctx, cancel := context.WithCancel(context.Background())
		scheduler.Register(systemFunc(func(frame *engine.UpdateFrame) {
			if frame.Tick == 2 {
				cancel()
			}
		}))

		err := scheduler.Run(ctx, engine.NewManualClock(time.Unix(0, 0)), time.Millisecond)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 3, counter.Value)
	})

	t.Run("delta time reaches systems", func(t *testing.T) {
		resources, _, _ := newResources()
		scheduler := engine.NewScheduler(resources)

		var got []float64
		scheduler.Register(systemFunc(func(frame *engine.UpdateFrame) {
			got = append(got, frame.DeltaTime)
		}))

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, []float64{0.5, 0.25}, got)
	})
}

type funcSystem struct {
	fn func(frame *engine.UpdateFrame)
}

func (s *funcSystem) Execute(frame *engine.UpdateFrame) { s.fn(frame) }

func systemFunc(fn func(frame *engine.UpdateFrame)) engine.System {
	return &funcSystem{fn: fn}
}

type TestSystem struct {
	executeCount int
	sleepDur     time.Duration
}

func (s *TestSystem) Execute(frame *engine.UpdateFrame) {
	s.executeCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestSchedulerStats(t *testing.T) {
	scheduler := engine.NewScheduler(engine.NewResources())

	stats := scheduler.GetStats()
	assert.Equal(t, 0, stats.SystemCount)
	assert.Equal(t, int64(0), stats.TotalExecutions)

	sys1 := &TestSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &TestSystem{sleepDur: 2 * time.Millisecond}
	scheduler.Register(sys1)
	scheduler.Register(sys2)

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats = scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, uint64(3), stats.Ticks)
	require.Len(t, stats.Systems, 2)

	for _, sysStats := range stats.Systems {
		assert.Equal(t, "TestSystem", sysStats.Name)
		assert.Equal(t, int64(3), sysStats.ExecutionCount)
		assert.NotZero(t, sysStats.MinDuration)
		assert.LessOrEqual(t, sysStats.MinDuration, sysStats.AvgDuration)
		assert.LessOrEqual(t, sysStats.AvgDuration, sysStats.MaxDuration)
	}

	assert.Equal(t, 3, sys1.executeCount)
	assert.Equal(t, 3, sys2.executeCount)
}

func TestSingletonWithoutValue(t *testing.T) {
	resources := engine.NewResources()

	var s engine.Singleton[Counter]
	s.Init(resources)
	assert.False(t, s.Exists())
	assert.Nil(t, s.Get())
	assert.Panics(t, func() { s.MustGet() })

	created := engine.NewSingleton(resources, Counter{Value: 4})
	assert.Equal(t, 4, created.Get().Value)
	assert.True(t, s.Exists())
	assert.Equal(t, []string{"engine_test.Counter"}, resources.Types())
}

func TestPacer(t *testing.T) {
	pacer := engine.NewPacer(100 * time.Millisecond)

	assert.Equal(t, 0, pacer.Advance(60*time.Millisecond))
	assert.Equal(t, 1, pacer.Advance(60*time.Millisecond))
	assert.Equal(t, 0, pacer.Advance(70*time.Millisecond))
	assert.Equal(t, 3, pacer.Advance(280*time.Millisecond))
}
