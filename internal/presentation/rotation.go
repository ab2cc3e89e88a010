package presentation

import (
	"sync"
	"time"
)

// Rotation is the image rotation state machine: indices 0..count-1, starting
// at 0 and advancing cyclically.
type Rotation struct {
	index int
	count int
}

func NewRotation(count int) Rotation {
	return Rotation{count: count}
}

func (r Rotation) Index() int { return r.index }

// Advance moves to the next image. It is a no-op with fewer than two images.
func (r *Rotation) Advance() {
	if r.count < 2 {
		return
	}
	r.index = (r.index + 1) % r.count
}

// Ticker is the recurring timer a Rotator owns.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// NewTickerFunc starts a Ticker firing every d.
type NewTickerFunc func(d time.Duration) Ticker

type systemTicker struct{ t *time.Ticker }

func (s systemTicker) Chan() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()                  { s.t.Stop() }

// SystemTicker is the NewTickerFunc backed by time.Ticker.
func SystemTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

// Rotator advances a Rotation on its own ticker until stopped.
//
// Stop closes the handle and joins the rotator goroutine, so once it returns
// the index can no longer change and the ticker is released.
type Rotator struct {
	mu       sync.RWMutex
	rotation Rotation

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartRotator starts rotating over imageCount images. interval <= 0 means
// RotationInterval; a nil newTicker means SystemTicker.
func StartRotator(imageCount int, interval time.Duration, newTicker NewTickerFunc) *Rotator {
	if interval <= 0 {
		interval = RotationInterval
	}
	if newTicker == nil {
		newTicker = SystemTicker
	}

	r := &Rotator{
		rotation: NewRotation(imageCount),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	go r.run(newTicker(interval))

	return r
}

func (r *Rotator) run(t Ticker) {
	defer close(r.done)
	defer t.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-t.Chan():
			// a tick racing with Stop must not win
			select {
			case <-r.stop:
				return
			default:
			}
			r.mu.Lock()
			r.rotation.Advance()
			r.mu.Unlock()
		}
	}
}

// Index returns the image currently on display.
func (r *Rotator) Index() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rotation.Index()
}

// Stop is idempotent and safe to call from any goroutine.
func (r *Rotator) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}

// Done is closed once the rotator goroutine has exited.
func (r *Rotator) Done() <-chan struct{} {
	return r.done
}
