package camera

import "github.com/go-gl/mathgl/mgl32"

type fakeHost struct {
	view        mgl32.Vec3
	sensitivity float32
	maxClients  int

	ui         UIState
	pauseCalls []bool

	local        int
	hasLocal     bool
	observerMode int
	observed     int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		sensitivity: 1,
		maxClients:  1,
		ui:          UIState{HUDDraw: 1, Crosshair: 1, ShowPause: 1},
		local:       1,
		hasLocal:    true,
	}
}

func (h *fakeHost) ViewAngles() mgl32.Vec3      { return h.view }
func (h *fakeHost) Sensitivity() float32        { return h.sensitivity }
func (h *fakeHost) MaxClients() int             { return h.maxClients }
func (h *fakeHost) UIState() UIState            { return h.ui }
func (h *fakeHost) SetUIState(s UIState)        { h.ui = s }
func (h *fakeHost) SetPaused(paused bool)       { h.pauseCalls = append(h.pauseCalls, paused) }
func (h *fakeHost) LocalPlayer() (int, bool)    { return h.local, h.hasLocal }
func (h *fakeHost) Observer() (mode int, t int) { return h.observerMode, h.observed }

type fakeInput struct {
	dx, dy  float32
	samples int
}

func (f *fakeInput) MouseDelta() (float32, float32) {
	f.samples++
	return f.dx, f.dy
}

func fixedSession(id string) Option {
	return WithSessionIDs(func() string { return id })
}
