package camera

import "fmt"

// Indices into an angle or offset vector.
const (
	Pitch = 0
	Yaw   = 1
	Roll  = 2
)

const (
	DistanceDelta       float32 = 1.0
	AngleDelta          float32 = 2.5
	AngleSpeed          float32 = 2.5
	PhotoMoveSpeed      float32 = 1.0
	MinDistance         float32 = 30.0
	SensitivityScale    float32 = 0.022
	distanceSnapEpsilon float32 = 2.0
)

type Mode int

const (
	FirstPerson Mode = iota
	ThirdPerson
	PhotoMode
)

func (m Mode) String() string {
	switch m {
	case FirstPerson:
		return "firstperson"
	case ThirdPerson:
		return "thirdperson"
	case PhotoMode:
		return "photomode"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Command is a one-shot mode change request. Update consumes at most one per
// call and clears it.
type Command int

const (
	CommandNone Command = iota
	CommandToThirdPerson
	CommandToFirstPerson
	CommandToPhotoMode
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandToThirdPerson:
		return "tothirdperson"
	case CommandToFirstPerson:
		return "tofirstperson"
	case CommandToPhotoMode:
		return "tophotomode"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

type KeyState uint8

const (
	Released KeyState = iota
	Pressed
)

// value is what a held key contributes to a movement axis.
func (k KeyState) value() float32 {
	if k == Pressed {
		return 1
	}
	return 0
}

type Control int

const (
	ControlPitchUp Control = iota
	ControlPitchDown
	ControlYawLeft
	ControlYawRight
	ControlIn
	ControlOut
	ControlPhotoForward
	ControlPhotoBack
	ControlPhotoLeft
	ControlPhotoRight
	ControlPhotoUp
	ControlPhotoDown

	controlCount
)

var controlNames = [controlCount]string{
	ControlPitchUp:      "campitchup",
	ControlPitchDown:    "campitchdown",
	ControlYawLeft:      "camyawleft",
	ControlYawRight:     "camyawright",
	ControlIn:           "camin",
	ControlOut:          "camout",
	ControlPhotoForward: "cam_pm_forward",
	ControlPhotoBack:    "cam_pm_back",
	ControlPhotoLeft:    "cam_pm_left",
	ControlPhotoRight:   "cam_pm_right",
	ControlPhotoUp:      "cam_pm_up",
	ControlPhotoDown:    "cam_pm_down",
}

func (c Control) String() string {
	if c >= 0 && c < controlCount {
		return controlNames[c]
	}
	return fmt.Sprintf("Control(%d)", int(c))
}

// UIState holds the three host toggles photo mode suppresses.
type UIState struct {
	HUDDraw   int
	Crosshair int
	ShowPause int
}
