package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Controller owns all camera state. It is driven from a single thread: key
// events and transitions may arrive between ticks, Update runs once per tick.
type Controller struct {
	mode    Mode
	pending Command

	// pitch, yaw, distance (third person) or pitch, yaw, roll (photo mode)
	offset        mgl32.Vec3
	photoOffset   mgl32.Vec3
	easedDistance float32

	tunables Tunables

	keys         [controlCount]KeyState
	mouseMove    bool
	distanceMove bool
	mouseInUse   bool

	savedUI      UIState
	photoSession string

	allowMultiplayer bool
	newSessionID     func() string
	log              Logger
}

type Option func(*Controller)

func WithTunables(t Tunables) Option {
	return func(c *Controller) {
		c.tunables = t
	}
}

func WithLogger(l Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMultiplayer lifts the single-player restriction on third person and
// photo mode. Meant for debug builds.
func WithMultiplayer(allow bool) Option {
	return func(c *Controller) {
		c.allowMultiplayer = allow
	}
}

// WithSessionIDs replaces the photo session id generator.
func WithSessionIDs(gen func() string) Option {
	return func(c *Controller) {
		if gen != nil {
			c.newSessionID = gen
		}
	}
}

func NewController(options ...Option) *Controller {
	c := &Controller{
		mode:          FirstPerson,
		offset:        mgl32.Vec3{0, 0, MinDistance},
		easedDistance: MinDistance,
		tunables:      DefaultTunables(),
		newSessionID:  uuid.NewString,
		log:           nopLogger{},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Controller) Mode() Mode { return c.mode }

// Offset is the committed camera offset consumed by the renderer.
func (c *Controller) Offset() mgl32.Vec3 { return c.offset }

func (c *Controller) PhotoOffset() mgl32.Vec3 { return c.photoOffset }

// EasedDistance is the smoothed distance computed on the last third-person
// tick. The committed offset carries the unsmoothed ideal distance instead.
func (c *Controller) EasedDistance() float32 { return c.easedDistance }

// MouseInUse reports whether the camera currently claims the mouse, so the
// host should not turn the player with it.
func (c *Controller) MouseInUse() bool { return c.mouseInUse }

// PhotoSession identifies the current photo mode entry, empty outside photo mode.
func (c *Controller) PhotoSession() string { return c.photoSession }

func (c *Controller) Tunables() Tunables { return c.tunables }

func (c *Controller) SetTunables(t Tunables) { c.tunables = t }

func (c *Controller) ToggleSnapTo() {
	c.tunables.SnapTo = !c.tunables.SnapTo
}

// IsThirdPerson reports whether the renderer should draw the player model
// from outside: third person, photo mode, or spectating the local player.
func (c *Controller) IsThirdPerson(host Host) bool {
	return c.mode == ThirdPerson || c.mode == PhotoMode || spectatingLocal(host)
}

func (c *Controller) IsPhotoMode(host Host) bool {
	return c.mode == PhotoMode || spectatingLocal(host)
}

func spectatingLocal(host Host) bool {
	mode, target := host.Observer()
	if mode == 0 {
		return false
	}
	local, ok := host.LocalPlayer()
	return ok && target == local
}

// Request queues a mode change for the next Update. A later request before
// that tick replaces an earlier one.
func (c *Controller) Request(cmd Command) {
	c.pending = cmd
}

func (c *Controller) Pending() Command { return c.pending }

func (c *Controller) Press(ctrl Control) {
	if ctrl >= 0 && ctrl < controlCount {
		c.keys[ctrl] = Pressed
	}
}

func (c *Controller) Release(ctrl Control) {
	if ctrl >= 0 && ctrl < controlCount {
		c.keys[ctrl] = Released
	}
}

func (c *Controller) KeyState(ctrl Control) KeyState {
	if ctrl >= 0 && ctrl < controlCount {
		return c.keys[ctrl]
	}
	return Released
}

func (c *Controller) held(ctrl Control) bool {
	return c.keys[ctrl] == Pressed
}

// StartMouseMove enables orbiting with the mouse. Only honored in third person.
func (c *Controller) StartMouseMove() {
	if c.mode != ThirdPerson {
		c.mouseMove = false
		c.mouseInUse = false
		return
	}
	if !c.mouseMove {
		c.mouseMove = true
		c.mouseInUse = true
	}
}

func (c *Controller) EndMouseMove() {
	c.mouseMove = false
	c.mouseInUse = false
}

// StartDistance switches the mouse to zooming. Only honored in third person.
func (c *Controller) StartDistance() {
	if c.mode != ThirdPerson {
		c.distanceMove = false
		c.mouseMove = false
		c.mouseInUse = false
		return
	}
	if !c.distanceMove {
		c.distanceMove = true
		c.mouseMove = true
		c.mouseInUse = true
	}
}

func (c *Controller) EndDistance() {
	c.distanceMove = false
	c.mouseMove = false
	c.mouseInUse = false
}
