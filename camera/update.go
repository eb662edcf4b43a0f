package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Update advances the camera by one client tick.
func (c *Controller) Update(host Host, input InputSampler) {
	switch c.pending {
	case CommandToThirdPerson:
		c.RequestThirdPerson(host)
	case CommandToFirstPerson:
		c.RequestFirstPerson(host)
	case CommandToPhotoMode:
		c.TogglePhotoMode(host)
	}
	c.pending = CommandNone

	if c.mode == FirstPerson {
		return
	}

	ideal := c.tunables.Ideal
	dx, dy := input.MouseDelta()
	sensitivity := SensitivityScale * host.Sensitivity()

	switch c.mode {
	case ThirdPerson:
		ideal = c.steerThirdPerson(ideal, dx, dy, sensitivity)
		c.commitThirdPerson(host, ideal)
	case PhotoMode:
		c.steerPhotoMode(dx, dy, sensitivity)
	}
}

func (c *Controller) steerThirdPerson(ideal IdealPose, dx, dy, sensitivity float32) IdealPose {
	b := c.tunables.Bounds

	if c.mouseMove && !c.distanceMove {
		if dx != 0 {
			ideal.Yaw = clamp32(ideal.Yaw-sensitivity*dx, b.MinYaw, b.MaxYaw)
		}
		if dy != 0 {
			ideal.Pitch = clamp32(ideal.Pitch+sensitivity*dy, b.MinPitch, b.MaxPitch)
		}
	}

	if c.held(ControlPitchUp) {
		ideal.Pitch += AngleDelta
	} else if c.held(ControlPitchDown) {
		ideal.Pitch -= AngleDelta
	}

	if c.held(ControlYawLeft) {
		ideal.Yaw -= AngleDelta
	} else if c.held(ControlYawRight) {
		ideal.Yaw += AngleDelta
	}

	if c.held(ControlIn) {
		ideal.Distance -= DistanceDelta
		if ideal.Distance < MinDistance {
			// zoomed all the way in, recentre behind the player
			ideal.Pitch = 0
			ideal.Yaw = 0
			ideal.Distance = MinDistance
		}
	} else if c.held(ControlOut) {
		ideal.Distance = min(ideal.Distance+DistanceDelta, b.MaxDistance)
	}

	if c.distanceMove && dy != 0 {
		ideal.Distance = clamp32(ideal.Distance+DistanceDelta*sensitivity*dy, b.MinDistance, b.MaxDistance)
	}

	return ideal
}

func (c *Controller) commitThirdPerson(host Host, ideal IdealPose) {
	c.tunables.Ideal = ideal

	view := host.ViewAngles()
	cur := c.offset

	if c.tunables.SnapTo {
		cur[Yaw] = ideal.Yaw + view[Yaw]
		cur[Pitch] = ideal.Pitch + view[Pitch]
		c.easedDistance = ideal.Distance
	} else {
		if cur[Yaw]-view[Yaw] != ideal.Yaw {
			cur[Yaw] = MoveToward(cur[Yaw], ideal.Yaw+view[Yaw], AngleSpeed)
		}
		if cur[Pitch]-view[Pitch] != ideal.Pitch {
			cur[Pitch] = MoveToward(cur[Pitch], ideal.Pitch+view[Pitch], AngleSpeed)
		}
		c.easedDistance = easeDistance(cur[Roll], ideal.Distance)
	}

	// orientation is eased, distance is not
	c.offset = mgl32.Vec3{cur[Pitch], cur[Yaw], ideal.Distance}
}

func (c *Controller) steerPhotoMode(dx, dy, sensitivity float32) {
	c.offset[Yaw] -= sensitivity * dx
	c.offset[Pitch] += sensitivity * dy
	c.offset[Roll] = 0

	forward, right := angleVectors(c.offset)

	move := mgl32.Vec3{
		c.keys[ControlPhotoForward].value() - c.keys[ControlPhotoBack].value(),
		c.keys[ControlPhotoRight].value() - c.keys[ControlPhotoLeft].value(),
		c.keys[ControlPhotoUp].value() - c.keys[ControlPhotoDown].value(),
	}

	step := forward.Mul(move[0] * PhotoMoveSpeed).Add(right.Mul(move[1] * PhotoMoveSpeed))
	step[2] += move[2] * PhotoMoveSpeed
	c.photoOffset = c.photoOffset.Add(step)
}

// angleVectors turns pitch/yaw/roll degrees into forward and right vectors in
// a Z-up world. Positive pitch looks down.
func angleVectors(angles mgl32.Vec3) (forward, right mgl32.Vec3) {
	sp, cp := math.Sincos(float64(mgl32.DegToRad(angles[Pitch])))
	sy, cy := math.Sincos(float64(mgl32.DegToRad(angles[Yaw])))
	sr, cr := math.Sincos(float64(mgl32.DegToRad(angles[Roll])))

	forward = mgl32.Vec3{
		float32(cp * cy),
		float32(cp * sy),
		float32(-sp),
	}
	right = mgl32.Vec3{
		float32(-sr*sp*cy + cr*sy),
		float32(-sr*sp*sy - cr*cy),
		float32(-sr * cp),
	}
	return forward, right
}
