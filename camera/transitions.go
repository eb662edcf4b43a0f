package camera

import "github.com/go-gl/mathgl/mgl32"

// singlePlayerOnly reports whether the session rules out third person and
// photo mode.
func (c *Controller) singlePlayerOnly(host Host) bool {
	if c.allowMultiplayer {
		return false
	}
	return host.MaxClients() > 1
}

// RequestThirdPerson switches to the orbiting camera, seeding it from the
// current view. Ignored in multiplayer sessions and when already active.
func (c *Controller) RequestThirdPerson(host Host) {
	if c.singlePlayerOnly(host) {
		c.log.Debugf("camera: thirdperson ignored, %d clients", host.MaxClients())
		return
	}

	if c.mode != ThirdPerson {
		c.exitPhotoMode(host)

		view := host.ViewAngles()
		c.mode = ThirdPerson
		c.offset = mgl32.Vec3{view[Pitch], view[Yaw], MinDistance}
		c.log.Debugf("camera: thirdperson")
	}
	c.pending = CommandNone
}

func (c *Controller) RequestFirstPerson(host Host) {
	c.exitPhotoMode(host)
	c.mode = FirstPerson
	c.pending = CommandNone
}

// TogglePhotoMode enters photo mode, or leaves it when already active.
// Entering is refused in multiplayer sessions; leaving never is.
func (c *Controller) TogglePhotoMode(host Host) {
	if c.mode == PhotoMode {
		c.exitPhotoMode(host)
		c.pending = CommandNone
		return
	}

	if c.singlePlayerOnly(host) {
		c.log.Debugf("camera: photomode ignored, %d clients", host.MaxClients())
		return
	}

	c.mode = PhotoMode
	c.mouseInUse = true
	c.mouseMove = false
	c.distanceMove = false

	c.offset = host.ViewAngles()
	c.photoOffset = mgl32.Vec3{}

	c.savedUI = host.UIState()
	host.SetUIState(UIState{})
	host.SetPaused(true)

	c.photoSession = c.newSessionID()
	c.log.Infof("camera: photomode session %s", c.photoSession)

	c.pending = CommandNone
}

// exitPhotoMode undoes photo mode's side effects. The caller picks the mode
// that follows; left alone it is first person.
func (c *Controller) exitPhotoMode(host Host) {
	if c.mode != PhotoMode {
		return
	}

	c.mode = FirstPerson
	c.mouseInUse = c.mouseMove
	host.SetUIState(c.savedUI)
	host.SetPaused(false)

	c.log.Infof("camera: photomode session %s closed", c.photoSession)
	c.photoSession = ""
}

// ClearAllStates resets the camera for a new level or respawn. An active
// photo mode is closed first so the host's HUD toggles and pause come back.
func (c *Controller) ClearAllStates(host Host) {
	c.exitPhotoMode(host)

	view := host.ViewAngles()

	for i := range c.keys {
		c.keys[i] = Released
	}

	c.mode = FirstPerson
	c.pending = CommandNone
	c.mouseMove = false
	c.distanceMove = false
	c.mouseInUse = false
	c.tunables.SnapTo = false

	c.offset = mgl32.Vec3{0, 0, MinDistance}
	c.photoOffset = mgl32.Vec3{}
	c.easedDistance = MinDistance

	c.tunables.Ideal = IdealPose{
		Pitch:    view[Pitch],
		Yaw:      view[Yaw],
		Roll:     view[Roll],
		Distance: MinDistance,
	}

	c.savedUI = host.UIState()
}
