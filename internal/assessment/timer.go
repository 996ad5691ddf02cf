package assessment

import (
	"sync"
	"time"
)

// countdown is the engine-owned session timer. It fires the tick callback
// at a fixed interval until stopped. Stop is idempotent and safe to call
// from inside the tick callback, so the engine can dispose the timer
// synchronously the moment a session completes. A stale countdown must
// never outlive its session.
type countdown struct {
	stop chan struct{}
	once sync.Once
}

// startCountdown launches the ticking goroutine.
func startCountdown(interval time.Duration, tick func()) *countdown {
	c := &countdown{stop: make(chan struct{})}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-t.C:
				tick()
			}
		}
	}()
	return c
}

// Stop cancels the countdown. Ticks already in flight may still run; the
// engine guards against them by checking session identity.
func (c *countdown) Stop() {
	c.once.Do(func() { close(c.stop) })
}
