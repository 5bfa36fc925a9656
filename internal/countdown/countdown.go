package countdown

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
)

const (
	TimeUp   = "Time up"
	NotReady = "Not ready yet"
)

var (
	ErrFinished = errors.New("countdown finished")
	ErrRunning  = errors.New("countdown already running")
)

// Remaining is a duration split into total hours, minutes and seconds.
type Remaining struct {
	Hours   int
	Minutes int
	Seconds int
}

func (r Remaining) String() string {
	return fmt.Sprintf("%dh %dm %ds", r.Hours, r.Minutes, r.Seconds)
}

// Until returns the whole time left before target, or zero once it passed.
func Until(target, now time.Time) Remaining {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{}
	}
	total := int(d / time.Second)
	return Remaining{
		Hours:   total / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// Frame is one rendering of a countdown.
type Frame struct {
	Remaining Remaining
	Done      bool
}

func (f Frame) String() string {
	if f.Done {
		return TimeUp
	}
	return f.Remaining.String()
}

// At computes the frame for target as seen at now.
func At(target, now time.Time) Frame {
	if !target.After(now) {
		return Frame{Done: true}
	}
	return Frame{Remaining: Until(target, now)}
}

type ticker func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Countdown emits a frame immediately and then once per second until the
// target is reached. A finished countdown cannot be restarted.
type Countdown struct {
	mu       sync.Mutex
	target   time.Time
	running  bool
	finished bool
	resetCh  chan struct{}

	interval  time.Duration
	timeNow   func() time.Time
	newTicker ticker
}

func New(target time.Time) *Countdown {
	return &Countdown{
		target:    target,
		resetCh:   make(chan struct{}, 1),
		interval:  time.Second,
		timeNow:   time.Now,
		newTicker: realTicker,
	}
}

// Run blocks until the countdown reaches zero or ctx ends.
func (c *Countdown) Run(ctx context.Context, emit func(Frame)) error {
	c.mu.Lock()
	switch {
	case c.finished:
		c.mu.Unlock()
		return ErrFinished
	case c.running:
		c.mu.Unlock()
		return ErrRunning
	}
	c.running = true
	c.mu.Unlock()

	metrics.CountdownsActive.Inc()
	defer metrics.CountdownsActive.Dec()
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	ticks, stop := c.newTicker(c.interval)
	defer stop()

	for {
		frame := c.Frame()
		if frame.Done {
			c.mu.Lock()
			c.finished = true
			c.mu.Unlock()
		}
		emit(frame)
		if frame.Done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
		case <-c.resetCh:
		}
	}
}

// Frame renders the countdown at the current time.
func (c *Countdown) Frame() Frame {
	c.mu.Lock()
	target := c.target
	c.mu.Unlock()
	return At(target, c.timeNow())
}

// Reset moves a live countdown to a new target and re-renders at once.
func (c *Countdown) Reset(target time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.finished {
		return ErrFinished
	}
	c.target = target
	select {
	case c.resetCh <- struct{}{}:
	default:
	}
	return nil
}

func (c *Countdown) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}
