package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/gekko3d/thirdcam"
	"github.com/gekko3d/thirdcam/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

// offsetReport prints the committed camera state whenever it changes.
type offsetReport struct {
	mode   camera.Mode
	offset mgl32.Vec3
	photo  mgl32.Vec3
}

func reportSystem(report *offsetReport, ctrl *camera.Controller, cmd *thirdcam.Commands) {
	if report.mode == ctrl.Mode() && report.offset == ctrl.Offset() && report.photo == ctrl.PhotoOffset() {
		return
	}
	report.mode, report.offset, report.photo = ctrl.Mode(), ctrl.Offset(), ctrl.PhotoOffset()
	cmd.Logger().Debugf("%s offset=%v photo=%v", report.mode, report.offset, report.photo)
}

func escapeSystem(input *thirdcam.Input, cmd *thirdcam.Commands) {
	if input.JustPressed[thirdcam.KeyEscape] {
		cmd.Quit()
	}
}

func main() {
	config := flag.String("config", "", "camera tunables YAML file, watched for changes")
	debug := flag.Bool("debug", false, "log every camera change")
	maxClients := flag.Int("maxclients", 1, "session size reported to the camera")
	multiplayer := flag.Bool("allow-multiplayer", false, "allow third person and photo mode with more than one client")
	tickRate := flag.Int("tickrate", 60, "client ticks per second")
	flag.Parse()

	client := thirdcam.NewClientState()
	client.Clients = *maxClients

	builder := thirdcam.NewAppBuilder().
		UseModule(
			thirdcam.LoggingModule{Prefix: "thirdcam", Debug: *debug},
			thirdcam.TimeModule{TickRate: *tickRate},
			thirdcam.NewPlatformWindow(1280, 720, "thirdcam"),
			thirdcam.InputModule{},
			clientModule{client: client},
			thirdcam.CameraModule{AllowMultiplayer: *multiplayer},
		)
	if *config != "" {
		builder.UseModule(thirdcam.TunablesModule{Path: *config, Watch: true})
	}
	app := builder.Build()
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger().Errorf("shutdown: %v", err)
		}
	}()

	if input, ok := thirdcam.Resource[thirdcam.Input](app); ok {
		input.MouseCaptured = true
	}
	app.Commands().AddResources(&offsetReport{})
	app.UseSystem(thirdcam.System(reportSystem).InStage(thirdcam.Render))
	app.UseSystem(thirdcam.System(escapeSystem).InStage(thirdcam.PreUpdate))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.Run(ctx)
}

type clientModule struct {
	client *thirdcam.ClientState
}

func (m clientModule) Install(app *thirdcam.App, cmd *thirdcam.Commands) {
	cmd.AddResources(m.client)
}
