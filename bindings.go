package thirdcam

import (
	"maps"
	"slices"
	"strings"
)

// KeyBindings maps keys to console commands. A "+name" command is pressed on
// key down and released as "-name" on key up; anything else runs on key down.
type KeyBindings struct {
	binds map[int]string
}

func NewKeyBindings() *KeyBindings {
	return &KeyBindings{binds: make(map[int]string)}
}

func DefaultKeyBindings() *KeyBindings {
	b := NewKeyBindings()
	b.Bind(KeyUp, "+campitchup")
	b.Bind(KeyDown, "+campitchdown")
	b.Bind(KeyLeft, "+camyawleft")
	b.Bind(KeyRight, "+camyawright")
	b.Bind(KeyEqual, "+camin")
	b.Bind(KeyMinus, "+camout")
	b.Bind(MouseButtonRight, "+cammousemove")
	b.Bind(MouseButtonMiddle, "+camdistance")

	b.Bind(KeyW, "+cam_pm_forward")
	b.Bind(KeyS, "+cam_pm_back")
	b.Bind(KeyA, "+cam_pm_left")
	b.Bind(KeyD, "+cam_pm_right")
	b.Bind(KeySpace, "+cam_pm_up")
	b.Bind(KeyControl, "+cam_pm_down")

	b.Bind(KeyF5, "thirdperson")
	b.Bind(KeyF6, "firstperson")
	b.Bind(KeyF7, "photomode")
	b.Bind(KeyF8, "snapto")
	return b
}

func (b *KeyBindings) Bind(key int, command string) {
	b.binds[key] = strings.TrimSpace(command)
}

func (b *KeyBindings) Unbind(key int) {
	delete(b.binds, key)
}

func (b *KeyBindings) Command(key int) (string, bool) {
	command, ok := b.binds[key]
	return command, ok
}

// Commands returns the console lines triggered by this tick's key edges.
func (b *KeyBindings) Commands(input *Input) []string {
	var lines []string
	for _, key := range slices.Sorted(maps.Keys(b.binds)) {
		command := b.binds[key]
		if key < 0 || key >= int(keyCount) {
			continue
		}
		if input.JustPressed[key] {
			lines = append(lines, command)
		}
		if input.JustReleased[key] && strings.HasPrefix(command, "+") {
			lines = append(lines, "-"+command[1:])
		}
	}
	return lines
}
