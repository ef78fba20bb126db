package animation

import (
	"context"
	"fmt"
	"time"
)

// Frame hooks run around every tick on the loop's goroutine.
type Frame interface {
	// Pump drains input before the tick. Returning false stops the loop.
	Pump() (bool, error)
	// Present submits the advanced scene.
	Present(State) error
}

// Loop drives an Animator until its context is cancelled or a hook stops it.
type Loop struct {
	anim     *Animator
	frame    Frame
	interval time.Duration // 0 runs as fast as Present allows
}

// NewLoop creates a loop. fpsLimit <= 0 disables pacing.
func NewLoop(anim *Animator, frame Frame, fpsLimit int) *Loop {
	l := &Loop{anim: anim, frame: frame}
	if fpsLimit > 0 {
		l.interval = time.Second / time.Duration(fpsLimit)
	}
	return l
}

// Run ticks until ctx is done or Pump returns false. It returns nil on a
// clean stop and the first hook error otherwise.
func (l *Loop) Run(ctx context.Context) error {
	var ticker *time.Ticker
	if l.interval > 0 {
		ticker = time.NewTicker(l.interval)
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ok, err := l.frame.Pump()
		if err != nil {
			return fmt.Errorf("input: %w", err)
		}
		if !ok {
			return nil
		}

		st := l.anim.Tick()

		if err := l.frame.Present(st); err != nil {
			return fmt.Errorf("present frame %d: %w", st.Frame, err)
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	}
}
