package game

import (
	"sync"
	"time"
)

// Clock tracks when a game started and when it was last observed running.
// The end timestamp only moves on tick, so a finished game reports the time
// of its last tick, not the moment it ended.
type Clock struct {
	now        func() time.Time
	start, end time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func newClock(now func() time.Time) *Clock {
	started := now()
	return &Clock{
		now:   now,
		start: started,
		end:   started,
		done:  make(chan struct{}),
	}
}

func (clock *Clock) Start() time.Time {
	return clock.start
}

func (clock *Clock) End() time.Time {
	return clock.end
}

func (clock *Clock) ElapsedSeconds() int {
	return int(clock.end.Sub(clock.start) / time.Second)
}

func (clock *Clock) isStopped() bool {
	select {
	case <-clock.done:
		return true
	default:
		return false
	}
}

func (clock *Clock) tick() {
	if !clock.isStopped() {
		clock.end = clock.now()
	}
}

// stop freezes the end timestamp and cancels the ticker. Safe to call twice.
func (clock *Clock) stop() {
	clock.stopOnce.Do(func() {
		close(clock.done)
	})
}

// run calls onTick every interval until the clock is stopped
func (clock *Clock) run(interval time.Duration, onTick func()) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-clock.done:
				return
			case <-ticker.C:
				onTick()
			}
		}
	}()
}
