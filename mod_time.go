package thirdcam

import (
	"time"
)

// Time tracks client ticks. Dt is the wall time since the previous tick.
type Time struct {
	Time     time.Time
	Dt       time.Duration
	Frame    uint64
	TickRate int
}

// TimeModule installs the Time resource. A positive TickRate caps the loop at
// that many ticks per second; camera motion is per tick, so pacing keeps its
// speed stable.
type TimeModule struct {
	TickRate int
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time:     time.Now(),
		Dt:       0,
		TickRate: mod.TickRate,
	})
	app.UseSystem(System(timeSystem).InStage(Prelude))
	if mod.TickRate > 0 {
		app.UseSystem(System(tickPacingSystem).InStage(Finale))
	}
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Frame++
}

func tickPacingSystem(timeResource *Time) {
	if timeResource.TickRate <= 0 {
		return
	}
	budget := time.Second / time.Duration(timeResource.TickRate)
	if spent := time.Since(timeResource.Time); spent < budget {
		time.Sleep(budget - spent)
	}
}
