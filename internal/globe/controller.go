// Package globe owns the orientation and zoom of the globe and the
// interaction state machine that drives them.
//
// The controller has three states. It starts AutoRotating: a ticker advances
// yaw every TickInterval. A pointer press switches to Dragging, where yaw
// and pitch follow the pointer displacement from the press position. Releasing
// the pointer moves to Paused and arms a resume timer; if no further
// interaction happens for ResumeDelay the globe goes back to AutoRotating.
// Wheel and touch input outside a drag also pause the globe and re-arm the
// timer, so auto-rotation never fights an active user.
//
// All transitions, timer callbacks included, are serialized on one mutex.
package globe

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

type dragOrigin struct {
	x, y     float64
	rotation Rotation
}

// Controller is the rotation state machine. The zero value is not usable;
// create one with NewController and release it with Close.
type Controller struct {
	mu    sync.Mutex
	clock clockwork.Clock

	state    State
	rotation Rotation
	zoom     float64
	retro    bool
	drag     dragOrigin

	ticker     clockwork.Ticker
	tickerStop chan struct{}
	spinners   sync.WaitGroup

	resume    clockwork.Timer
	resumeGen uint64

	subs   map[*Subscription]struct{}
	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source for the ticker and the resume timer.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithRetro starts the controller in the retro theme.
func WithRetro(retro bool) Option {
	return func(c *Controller) { c.retro = retro }
}

// NewController creates a controller in the AutoRotating state with its
// ticker running.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		clock:    clockwork.NewRealClock(),
		state:    StateAutoRotating,
		rotation: Rotation{Yaw: InitialYaw, Pitch: InitialPitch},
		zoom:     InitialZoom,
		subs:     make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.startTicker()
	c.mu.Unlock()
	return c
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// PointerDown starts a drag from (x, y). Auto-rotation stops and any pending
// resume is cancelled.
func (c *Controller) PointerDown(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.cancelResume()
	c.stopTicker()
	c.state = StateDragging
	c.drag = dragOrigin{x: x, y: y, rotation: c.rotation}
	c.publish()
}

// PointerMove rotates the globe proportionally to the displacement from the
// drag origin. boost applies BoostFactor for coarse adjustment. Moves outside
// a drag are ignored.
func (c *Controller) PointerMove(x, y float64, boost bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state != StateDragging {
		return
	}

	f := DragSensitivity
	if boost {
		f *= BoostFactor
	}
	dx := x - c.drag.x
	dy := y - c.drag.y
	c.rotation = Rotation{
		Yaw:   c.drag.rotation.Yaw + dx*f,
		Pitch: clamp(c.drag.rotation.Pitch-dy*f, MinPitch, MaxPitch),
	}
	c.publish()
}

// PointerUp ends a drag and arms the resume timer.
func (c *Controller) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state != StateDragging {
		return
	}

	c.state = StatePaused
	c.armResume()
	c.publish()
}

// TouchStart counts as an interaction: outside a drag it pauses the globe
// and re-arms the resume timer.
func (c *Controller) TouchStart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.interact()
	c.publish()
}

// Wheel zooms out for positive deltaY and in otherwise, clamped to
// [MinZoom, MaxZoom]. Rotation is unchanged.
func (c *Controller) Wheel(deltaY float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	factor := ZoomInFactor
	if deltaY > 0 {
		factor = ZoomOutFactor
	}
	c.zoom = clamp(c.zoom*factor, MinZoom, MaxZoom)
	c.interact()
	c.publish()
}

// FocusOn centers the globe on a coordinate. The interaction state is left
// as it is.
func (c *Controller) FocusOn(lat, lon float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.rotation = Rotation{Yaw: -lon, Pitch: clamp(-lat, MinPitch, MaxPitch)}
	c.publish()
}

// SetRetro switches between the default and the retro theme, which changes
// the auto-rotation speed.
func (c *Controller) SetRetro(retro bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.retro = retro
	c.publish()
}

// Close stops the ticker and the resume timer, closes every subscription and
// waits for the ticker goroutine to exit. Later calls on c are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelResume()
	c.stopTicker()
	for sub := range c.subs {
		delete(c.subs, sub)
		close(sub.ch)
	}
	c.mu.Unlock()

	c.spinners.Wait()
}

// interact pauses the globe and re-arms the resume timer unless a drag is in
// progress; the drag release re-arms it instead. mu must be held.
func (c *Controller) interact() {
	if c.state == StateDragging {
		return
	}
	c.stopTicker()
	c.state = StatePaused
	c.armResume()
}

func (c *Controller) speed() float64 {
	if c.retro {
		return RetroSpeed
	}
	return DefaultSpeed
}

func (c *Controller) viewLocked() View {
	return View{Rotation: c.rotation, Zoom: c.zoom, State: c.state, Retro: c.retro}
}

// Ticker management. mu must be held.

func (c *Controller) startTicker() {
	if c.ticker != nil {
		return
	}
	t := c.clock.NewTicker(TickInterval)
	stop := make(chan struct{})
	c.ticker, c.tickerStop = t, stop

	c.spinners.Add(1)
	go c.spin(t, stop)
}

func (c *Controller) stopTicker() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.tickerStop)
	c.ticker, c.tickerStop = nil, nil
}

func (c *Controller) spin(t clockwork.Ticker, stop <-chan struct{}) {
	defer c.spinners.Done()
	for {
		select {
		case <-stop:
			return
		case <-t.Chan():
			c.tick(stop)
		}
	}
}

func (c *Controller) tick(stop <-chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a tick delivered just before stopTicker must not move the globe
	select {
	case <-stop:
		return
	default:
	}
	if c.state != StateAutoRotating {
		return
	}
	c.rotation.Yaw += c.speed()
	c.publish()
}

// Resume timer management. mu must be held.

func (c *Controller) armResume() {
	c.cancelResume()
	gen := c.resumeGen
	c.resume = c.clock.AfterFunc(ResumeDelay, func() { c.fireResume(gen) })
}

func (c *Controller) cancelResume() {
	if c.resume != nil {
		c.resume.Stop()
		c.resume = nil
	}
	c.resumeGen++
}

func (c *Controller) fireResume(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// stale timers lost the race with a newer interaction
	if c.closed || gen != c.resumeGen || c.state != StatePaused {
		return
	}
	c.resume = nil
	c.state = StateAutoRotating
	c.startTicker()
	c.publish()
}
