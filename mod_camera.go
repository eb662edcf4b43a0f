package thirdcam

import (
	"github.com/gekko3d/thirdcam/camera"
)

// CameraModule wires a camera.Controller into the tick. It also provides
// ClientState, Input and KeyBindings when no earlier module did.
type CameraModule struct {
	// Tunables overrides camera.DefaultTunables when set.
	Tunables *camera.Tunables
	// AllowMultiplayer keeps third person and photo mode available in
	// multiplayer sessions. Debug builds only.
	AllowMultiplayer bool
}

func (m CameraModule) Install(app *App, cmd *Commands) {
	tunables := camera.DefaultTunables()
	if m.Tunables != nil {
		tunables = *m.Tunables
	}
	if err := tunables.Validate(); err != nil {
		app.Logger().Warnf("camera: %v", err)
	}

	ctrl := camera.NewController(
		camera.WithTunables(tunables),
		camera.WithLogger(app.Logger()),
		camera.WithMultiplayer(m.AllowMultiplayer),
	)
	cmd.AddResources(ctrl)

	if _, ok := Resource[ClientState](app); !ok {
		cmd.AddResources(NewClientState())
	}
	if _, ok := Resource[Input](app); !ok {
		cmd.AddResources(&Input{})
	}
	if _, ok := Resource[KeyBindings](app); !ok {
		cmd.AddResources(DefaultKeyBindings())
	}

	app.UseSystem(System(cameraResetSystem).InStage(PreUpdate))
	app.UseSystem(System(cameraBindingSystem).InStage(PreUpdate))
	app.UseSystem(System(playerLookSystem).InStage(Update))
	app.UseSystem(System(cameraThinkSystem).InStage(PostUpdate))
}

func cameraResetSystem(client *ClientState, ctrl *camera.Controller) {
	if !client.resetPending {
		return
	}
	client.resetPending = false
	ctrl.ClearAllStates(client)
}

func cameraBindingSystem(input *Input, binds *KeyBindings, client *ClientState, ctrl *camera.Controller, cmd *Commands) {
	for _, line := range binds.Commands(input) {
		if !ctrl.Exec(client, line) {
			cmd.Logger().Warnf("unknown command %q", line)
		}
	}
}

// playerLookSystem turns the player with the mouse unless the camera has
// claimed it or the session is paused.
func playerLookSystem(input *Input, client *ClientState, ctrl *camera.Controller) {
	if ctrl.MouseInUse() || client.Paused {
		return
	}

	dx, dy := input.MouseDelta()
	sensitivity := camera.SensitivityScale * client.MouseSensitivity

	client.View[camera.Yaw] -= sensitivity * dx
	client.View[camera.Pitch] += sensitivity * dy
	if client.View[camera.Pitch] > 89 {
		client.View[camera.Pitch] = 89
	}
	if client.View[camera.Pitch] < -89 {
		client.View[camera.Pitch] = -89
	}
}

func cameraThinkSystem(input *Input, client *ClientState, ctrl *camera.Controller) {
	ctrl.Update(client, input)
}
