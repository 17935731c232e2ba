package clock

import (
	"context"
	"sync"
	"time"
)

// Reading is one rendered clock value
type Reading struct {
	Time string
	Date string
}

// Clock renders wall-clock time with configurable layouts and ticks on an interval
type Clock struct {
	mu         sync.RWMutex
	timeLayout string
	dateLayout string
	interval   time.Duration
	now        func() time.Time
}

type Option func(*Clock)

// WithInterval overrides the one-second tick
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithNow replaces the time source
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

func New(timeLayout, dateLayout string, opts ...Option) *Clock {
	c := &Clock{
		timeLayout: timeLayout,
		dateLayout: dateLayout,
		interval:   time.Second,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLayouts swaps the layouts used from the next reading on
func (c *Clock) SetLayouts(timeLayout, dateLayout string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeLayout = timeLayout
	c.dateLayout = dateLayout
}

func (c *Clock) Format(t time.Time) Reading {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Reading{
		Time: t.Format(c.timeLayout),
		Date: t.Format(c.dateLayout),
	}
}

func (c *Clock) Current() Reading {
	return c.Format(c.now())
}

// Run calls onTick immediately and then once per interval until ctx is done
func (c *Clock) Run(ctx context.Context, onTick func(Reading)) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	onTick(c.Current())
	for {
		select {
		case <-ticker.C:
			onTick(c.Current())
		case <-ctx.Done():
			return
		}
	}
}
