package gesture

import (
	"math"
	"time"

	"github.com/ytget/precision-stopwatch/internal/loop"
)

// State is the classifier's position within one press/release cycle
type State int

const (
	StateIdle State = iota
	StatePressed
	StateDragging
	StateLongPressing
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	case StateLongPressing:
		return "long-pressing"
	default:
		return "unknown"
	}
}

// EventType identifies what a gesture resolved to
type EventType int

const (
	EventClick EventType = iota
	EventDrag
	EventLongPress
)

// String returns the event name used in logs
func (e EventType) String() string {
	switch e {
	case EventClick:
		return "click"
	case EventDrag:
		return "drag"
	case EventLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// Event is emitted by the classifier. DX and DY carry the incremental window
// move for EventDrag and are zero otherwise.
type Event struct {
	Type   EventType
	DX, DY int
}

// Point is a pointer sample in screen pixels
type Point struct {
	X, Y float32
}

// Distance returns the Euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Listeners acquires the transient input registrations a gesture cycle needs
// beyond the press itself (pointer capture for moves and releases outside the
// widget). The returned detach is called exactly once when the cycle ends.
type Listeners interface {
	Attach() (detach func())
}

// ListenersFunc adapts a function to Listeners
type ListenersFunc func() func()

// Attach calls f
func (f ListenersFunc) Attach() func() {
	return f()
}

// Gesture thresholds constants
const (
	DefaultLongPressDelay = 500 * time.Millisecond
	DefaultDragThreshold  = 5.0
)

// Classifier turns pointer down/move/up/leave into click, drag and long-press
// events. All methods must be called from the UI goroutine, and the scheduler
// must deliver its callbacks there too.
type Classifier struct {
	sched   loop.Scheduler
	onEvent func(Event)

	longPressDelay time.Duration
	dragThreshold  float64
	excluded       func(Point) bool
	listeners      Listeners

	state  State
	origin Point
	last   Point

	// Resources held by the current cycle, released by cleanup.
	timer  loop.Timer
	detach func()
	cycle  uint64
}

// Option configures a Classifier
type Option func(*Classifier)

// WithLongPressDelay sets how long a press must be held to count as a long press
func WithLongPressDelay(d time.Duration) Option {
	return func(c *Classifier) {
		if d > 0 {
			c.longPressDelay = d
		}
	}
}

// WithDragThreshold sets the distance in pixels a press must travel to become a drag
func WithDragThreshold(px float64) Option {
	return func(c *Classifier) {
		if px >= 0 {
			c.dragThreshold = px
		}
	}
}

// WithExclusion ignores presses that start where excluded returns true,
// such as the exit button
func WithExclusion(excluded func(Point) bool) Option {
	return func(c *Classifier) {
		c.excluded = excluded
	}
}

// WithListeners registers the per-cycle listener acquisition
func WithListeners(l Listeners) Option {
	return func(c *Classifier) {
		c.listeners = l
	}
}

// NewClassifier creates a classifier in the idle state
func NewClassifier(sched loop.Scheduler, onEvent func(Event), opts ...Option) *Classifier {
	c := &Classifier{
		sched:          sched,
		onEvent:        onEvent,
		longPressDelay: DefaultLongPressDelay,
		dragThreshold:  DefaultDragThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state
func (c *Classifier) State() State {
	return c.state
}

// Down starts a new gesture cycle at p. Whatever the previous cycle still
// holds is released first; a down without a prior up is tolerated.
func (c *Classifier) Down(p Point) {
	if c.excluded != nil && c.excluded(p) {
		return
	}

	c.cleanup()

	c.cycle++
	cycle := c.cycle
	c.origin = p
	c.last = p
	c.state = StatePressed

	if c.listeners != nil {
		c.detach = c.listeners.Attach()
	}
	c.timer = c.sched.AfterFunc(c.longPressDelay, func() {
		c.onLongPressTimer(cycle)
	})
}

// Move feeds a pointer sample while a press is active
func (c *Classifier) Move(p Point) {
	if c.state != StatePressed && c.state != StateDragging {
		return
	}

	if c.state == StatePressed && c.origin.Distance(p) > c.dragThreshold {
		c.stopTimer()
		c.state = StateDragging
	}

	if c.state != StateDragging {
		return
	}

	dx := int(math.Round(float64(p.X - c.last.X)))
	dy := int(math.Round(float64(p.Y - c.last.Y)))
	if dx == 0 && dy == 0 {
		return
	}

	// Advance by the emitted delta so rounding never accumulates drift.
	c.last = Point{X: c.last.X + float32(dx), Y: c.last.Y + float32(dy)}
	c.emit(Event{Type: EventDrag, DX: dx, DY: dy})
}

// Up ends the cycle. It is a click only if nothing else happened.
func (c *Classifier) Up(Point) {
	wasPressed := c.state == StatePressed
	c.cleanup()
	if wasPressed {
		c.emit(Event{Type: EventClick})
	}
}

// Leave ends the cycle without a click
func (c *Classifier) Leave() {
	c.cleanup()
}

// Cancel drops any active cycle. Safe to call at any time.
func (c *Classifier) Cancel() {
	c.cleanup()
}

func (c *Classifier) onLongPressTimer(cycle uint64) {
	if cycle != c.cycle || c.state != StatePressed {
		return
	}
	c.timer = nil
	c.state = StateLongPressing
	c.emit(Event{Type: EventLongPress})
}

// cleanup releases everything the current cycle holds and returns to idle.
// It is idempotent.
func (c *Classifier) cleanup() {
	c.stopTimer()
	if c.detach != nil {
		detach := c.detach
		c.detach = nil
		detach()
	}
	c.state = StateIdle
	c.origin = Point{}
	c.last = Point{}
}

func (c *Classifier) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Classifier) emit(e Event) {
	if c.onEvent != nil {
		c.onEvent(e)
	}
}
