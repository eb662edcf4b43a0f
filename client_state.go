package thirdcam

import (
	"github.com/gekko3d/thirdcam/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// ClientState is the in-process host the camera reads from and writes to:
// the player's view, session size, the HUD toggles photo mode hides and the
// pause flag.
type ClientState struct {
	View             mgl32.Vec3
	MouseSensitivity float32
	Clients          int

	HUDDraw   int
	Crosshair int
	ShowPause int
	Paused    bool

	// LocalIndex is the locally controlled entity, 0 while not spawned.
	LocalIndex     int
	ObserverMode   int
	ObserverTarget int

	resetPending bool
}

var _ camera.Host = (*ClientState)(nil)

func NewClientState() *ClientState {
	return &ClientState{
		MouseSensitivity: 3,
		Clients:          1,
		HUDDraw:          1,
		Crosshair:        1,
		ShowPause:        1,
		LocalIndex:       1,
	}
}

func (c *ClientState) ViewAngles() mgl32.Vec3 { return c.View }
func (c *ClientState) Sensitivity() float32   { return c.MouseSensitivity }
func (c *ClientState) MaxClients() int        { return c.Clients }

func (c *ClientState) UIState() camera.UIState {
	return camera.UIState{
		HUDDraw:   c.HUDDraw,
		Crosshair: c.Crosshair,
		ShowPause: c.ShowPause,
	}
}

func (c *ClientState) SetUIState(s camera.UIState) {
	c.HUDDraw = s.HUDDraw
	c.Crosshair = s.Crosshair
	c.ShowPause = s.ShowPause
}

func (c *ClientState) SetPaused(paused bool) { c.Paused = paused }

func (c *ClientState) LocalPlayer() (int, bool) {
	return c.LocalIndex, c.LocalIndex > 0
}

func (c *ClientState) Observer() (int, int) {
	return c.ObserverMode, c.ObserverTarget
}

// LevelChanged marks a level load or respawn; the camera resets on the next tick.
func (c *ClientState) LevelChanged() {
	c.resetPending = true
}
