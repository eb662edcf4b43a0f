package thirdcam

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyD
	KeyS
	KeyW
	KeySpace
	KeyEscape
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyMinus
	KeyEqual
	KeyShift
	KeyControl
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

// Input is the per-tick snapshot of keyboard and mouse state. JustPressed and
// JustReleased are edges for the current tick only.
type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	// MouseCaptured hides and locks the cursor.
	MouseCaptured bool

	primed bool
}

// MouseDelta implements camera.InputSampler.
func (input *Input) MouseDelta() (dx, dy float32) {
	return float32(input.MouseDeltaX), float32(input.MouseDeltaY)
}

// SetKey records the state of key for this tick and derives the edges.
func (input *Input) SetKey(key int, down bool) {
	if key < 0 || key >= int(keyCount) {
		return
	}
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// SetCursor records the cursor position for this tick. The first sample only
// primes the position so there is no jump on startup.
func (input *Input) SetCursor(x, y float64) {
	if input.primed {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	} else {
		input.MouseDeltaX = 0
		input.MouseDeltaY = 0
		input.primed = true
	}
	input.MouseX = x
	input.MouseY = y
}

// InputModule polls the GLFW window into the Input resource every tick.
type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[Input](app); !ok {
		cmd.AddResources(&Input{})
	}
	app.UseSystem(
		System(inputSystem).
			InStage(Prelude),
	)
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.SetKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range mouseButtonToGlfw {
		input.SetKey(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.SetCursor(s.windowGlfw.GetCursorPos())

	if input.MouseCaptured {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

var mouseButtonToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:       glfw.KeyA,
	KeyD:       glfw.KeyD,
	KeyS:       glfw.KeyS,
	KeyW:       glfw.KeyW,
	KeySpace:   glfw.KeySpace,
	KeyEscape:  glfw.KeyEscape,
	KeyRight:   glfw.KeyRight,
	KeyLeft:    glfw.KeyLeft,
	KeyDown:    glfw.KeyDown,
	KeyUp:      glfw.KeyUp,
	KeyF1:      glfw.KeyF1,
	KeyF2:      glfw.KeyF2,
	KeyF3:      glfw.KeyF3,
	KeyF4:      glfw.KeyF4,
	KeyF5:      glfw.KeyF5,
	KeyF6:      glfw.KeyF6,
	KeyF7:      glfw.KeyF7,
	KeyF8:      glfw.KeyF8,
	KeyMinus:   glfw.KeyMinus,
	KeyEqual:   glfw.KeyEqual,
	KeyShift:   glfw.KeyLeftShift,
	KeyControl: glfw.KeyLeftControl,
}
