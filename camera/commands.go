package camera

import (
	"strconv"
	"strings"
)

var controlByName = func() map[string]Control {
	m := make(map[string]Control, controlCount)
	for i, name := range controlNames {
		m[name] = Control(i)
	}
	return m
}()

// CommandNames lists every console command Exec understands.
func CommandNames() []string {
	names := []string{
		"thirdperson", "firstperson", "photomode", "snapto", "cam_command",
		"+cammousemove", "-cammousemove", "+camdistance", "-camdistance",
	}
	for _, name := range controlNames {
		names = append(names, "+"+name, "-"+name)
	}
	return names
}

// Exec runs one console command line against the controller. Button commands
// follow the +name/-name convention: + presses, - releases. It reports
// whether the command was recognised.
func (c *Controller) Exec(host Host, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name := strings.ToLower(fields[0])

	switch name {
	case "thirdperson":
		c.RequestThirdPerson(host)
		return true
	case "firstperson":
		c.RequestFirstPerson(host)
		return true
	case "photomode":
		c.TogglePhotoMode(host)
		return true
	case "snapto":
		c.ToggleSnapTo()
		return true
	case "cam_command":
		if len(fields) < 2 {
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < int(CommandNone) || n > int(CommandToPhotoMode) {
			c.log.Warnf("camera: bad cam_command %q", fields[1])
			return false
		}
		c.Request(Command(n))
		return true
	case "+cammousemove":
		c.StartMouseMove()
		return true
	case "-cammousemove":
		c.EndMouseMove()
		return true
	case "+camdistance":
		c.StartDistance()
		return true
	case "-camdistance":
		c.EndDistance()
		return true
	}

	if len(name) < 2 {
		return false
	}
	ctrl, ok := controlByName[name[1:]]
	if !ok {
		return false
	}
	switch name[0] {
	case '+':
		c.Press(ctrl)
	case '-':
		c.Release(ctrl)
	default:
		return false
	}
	return true
}
