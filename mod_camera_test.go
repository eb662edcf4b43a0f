package thirdcam

import (
	"testing"

	"github.com/gekko3d/thirdcam/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cameraRig struct {
	app    *App
	ctrl   *camera.Controller
	client *ClientState
	input  *Input
}

func newCameraRig(t *testing.T, mod CameraModule) cameraRig {
	t.Helper()
	app := NewAppBuilder().UseModule(mod).Build()

	ctrl, ok := Resource[camera.Controller](app)
	require.True(t, ok)
	client, ok := Resource[ClientState](app)
	require.True(t, ok)
	input, ok := Resource[Input](app)
	require.True(t, ok)
	_, ok = Resource[KeyBindings](app)
	require.True(t, ok)

	return cameraRig{app: app, ctrl: ctrl, client: client, input: input}
}

// tap presses key for one tick and releases it on the next.
func (r cameraRig) tap(key int) {
	r.input.SetKey(key, true)
	r.app.Tick()
	r.input.SetKey(key, false)
	r.app.Tick()
}

func TestCameraModule_KeepsExistingResources(t *testing.T) {
	client := NewClientState()
	client.Clients = 8
	binds := NewKeyBindings()

	app := NewAppBuilder().
		UseModule(moduleFunc(func(app *App, cmd *Commands) { cmd.AddResources(client, binds) })).
		UseModule(CameraModule{}).
		Build()

	got, _ := Resource[ClientState](app)
	assert.Same(t, client, got)
	gotBinds, _ := Resource[KeyBindings](app)
	assert.Same(t, binds, gotBinds)
}

func TestCameraModule_BoundKeysSwitchModes(t *testing.T) {
	r := newCameraRig(t, CameraModule{})

	r.tap(KeyF5)
	assert.Equal(t, camera.ThirdPerson, r.ctrl.Mode())
	assert.True(t, r.ctrl.IsThirdPerson(r.client))

	r.tap(KeyF6)
	assert.Equal(t, camera.FirstPerson, r.ctrl.Mode())
}

func TestCameraModule_MultiplayerRefusesThirdPerson(t *testing.T) {
	r := newCameraRig(t, CameraModule{})
	r.client.Clients = 4

	r.tap(KeyF5)
	assert.Equal(t, camera.FirstPerson, r.ctrl.Mode())

	r = newCameraRig(t, CameraModule{AllowMultiplayer: true})
	r.client.Clients = 4

	r.tap(KeyF5)
	assert.Equal(t, camera.ThirdPerson, r.ctrl.Mode())
}

func TestCameraModule_HeldZoomKey(t *testing.T) {
	r := newCameraRig(t, CameraModule{})
	r.tap(KeyF5)
	start := r.ctrl.Tunables().Ideal.Distance

	r.input.SetKey(KeyMinus, true)
	r.app.Tick()
	r.input.SetKey(KeyMinus, true)
	r.app.Tick()
	assert.Equal(t, start+2*camera.DistanceDelta, r.ctrl.Tunables().Ideal.Distance)
	assert.Equal(t, camera.Pressed, r.ctrl.KeyState(camera.ControlOut))

	r.input.SetKey(KeyMinus, false)
	r.app.Tick()
	assert.Equal(t, camera.Released, r.ctrl.KeyState(camera.ControlOut))
	assert.Equal(t, start+2*camera.DistanceDelta, r.ctrl.Tunables().Ideal.Distance)
}

func TestCameraModule_PlayerLook(t *testing.T) {
	r := newCameraRig(t, CameraModule{})

	r.input.SetCursor(100, 100)
	r.app.Tick()
	r.input.SetCursor(110, 100)
	r.app.Tick()

	want := -camera.SensitivityScale * r.client.MouseSensitivity * 10
	assert.InDelta(t, want, r.client.View[camera.Yaw], 1e-5)
	assert.Zero(t, r.client.View[camera.Pitch])
}

func TestCameraModule_PlayerLookClampsPitch(t *testing.T) {
	r := newCameraRig(t, CameraModule{})

	r.input.SetCursor(0, 0)
	r.app.Tick()
	r.input.SetCursor(0, 100000)
	r.app.Tick()

	assert.Equal(t, float32(89), r.client.View[camera.Pitch])
}

func TestCameraModule_PhotoModeFreezesSession(t *testing.T) {
	r := newCameraRig(t, CameraModule{})

	r.tap(KeyF7)
	require.Equal(t, camera.PhotoMode, r.ctrl.Mode())
	assert.True(t, r.client.Paused)
	assert.Equal(t, 0, r.client.HUDDraw)
	assert.NotEmpty(t, r.ctrl.PhotoSession())

	// the mouse steers the photo camera, not the player
	r.input.SetCursor(0, 0)
	r.app.Tick()
	r.input.SetCursor(50, 0)
	r.app.Tick()
	assert.Zero(t, r.client.View[camera.Yaw])
	assert.NotZero(t, r.ctrl.Offset()[camera.Yaw])

	r.input.SetCursor(50, 0)
	r.input.SetKey(KeyW, true)
	r.app.Tick()
	assert.NotEqual(t, mgl32.Vec3{}, r.ctrl.PhotoOffset())

	r.input.SetKey(KeyW, false)
	r.tap(KeyF7)
	assert.Equal(t, camera.FirstPerson, r.ctrl.Mode())
	assert.False(t, r.client.Paused)
	assert.Equal(t, 1, r.client.HUDDraw)
	assert.Empty(t, r.ctrl.PhotoSession())
}

func TestCameraModule_LevelChangeResets(t *testing.T) {
	r := newCameraRig(t, CameraModule{})
	r.tap(KeyF7)
	require.Equal(t, camera.PhotoMode, r.ctrl.Mode())

	r.client.LevelChanged()
	r.app.Tick()

	assert.Equal(t, camera.FirstPerson, r.ctrl.Mode())
	assert.False(t, r.client.Paused)
	assert.Equal(t, 1, r.client.Crosshair)
	assert.False(t, r.ctrl.MouseInUse())
	assert.False(t, r.client.resetPending)
}

func TestCameraModule_InvalidTunablesStillInstall(t *testing.T) {
	tun := camera.DefaultTunables()
	tun.Bounds.MinDistance, tun.Bounds.MaxDistance = 300, 10

	r := newCameraRig(t, CameraModule{Tunables: &tun})
	assert.Equal(t, tun, r.ctrl.Tunables())
}

type moduleFunc func(app *App, cmd *Commands)

func (f moduleFunc) Install(app *App, cmd *Commands) { f(app, cmd) }
