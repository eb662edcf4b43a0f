package camera

import "github.com/go-gl/mathgl/mgl32"

// Host is everything the controller reads from or writes to the running
// client. Implementations must not fail: missing data reports a safe default.
type Host interface {
	// ViewAngles returns the controlled player's pitch, yaw and roll in degrees.
	ViewAngles() mgl32.Vec3
	// Sensitivity is the user's mouse sensitivity setting.
	Sensitivity() float32
	// MaxClients is the number of player slots in the current session.
	MaxClients() int

	UIState() UIState
	SetUIState(UIState)
	SetPaused(paused bool)

	// LocalPlayer returns the locally controlled entity index, ok is false
	// when there is none yet.
	LocalPlayer() (index int, ok bool)
	// Observer returns the spectator mode (0 when not spectating) and the
	// spectated entity index.
	Observer() (mode int, target int)
}

type InputSampler interface {
	// MouseDelta returns the relative mouse motion since the previous sample.
	MouseDelta() (dx, dy float32)
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
