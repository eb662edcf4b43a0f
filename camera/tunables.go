package camera

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Bounds struct {
	MinPitch    float32 `yaml:"min_pitch"`
	MaxPitch    float32 `yaml:"max_pitch"`
	MinYaw      float32 `yaml:"min_yaw"`
	MaxYaw      float32 `yaml:"max_yaw"`
	MinRoll     float32 `yaml:"min_roll"`
	MaxRoll     float32 `yaml:"max_roll"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

// IdealPose is the pose the third-person smoothing chases. Pitch and yaw are
// relative to the player's view angles.
type IdealPose struct {
	Pitch    float32 `yaml:"pitch"`
	Yaw      float32 `yaml:"yaw"`
	Roll     float32 `yaml:"roll"`
	Distance float32 `yaml:"distance"`
}

// Tunables is the externally configurable parameter set. Ideal is also written
// back by Update every third-person tick so it survives idle input.
type Tunables struct {
	Bounds Bounds    `yaml:"bounds"`
	Ideal  IdealPose `yaml:"ideal"`
	SnapTo bool      `yaml:"snap_to"`
}

func DefaultTunables() Tunables {
	return Tunables{
		Bounds: Bounds{
			MinPitch:    -90,
			MaxPitch:    90,
			MinYaw:      -180,
			MaxYaw:      180,
			MinRoll:     -180,
			MaxRoll:     180,
			MinDistance: 30,
			MaxDistance: 200,
		},
		Ideal: IdealPose{
			Pitch:    0,
			Yaw:      90,
			Roll:     0,
			Distance: 64,
		},
	}
}

var ErrInvalidBounds = errors.New("min greater than max")

// Validate reports bound pairs with min > max. Update itself never checks;
// clamping against such a pair always lands on the min.
func (t Tunables) Validate() error {
	pairs := []struct {
		name     string
		min, max float32
	}{
		{"pitch", t.Bounds.MinPitch, t.Bounds.MaxPitch},
		{"yaw", t.Bounds.MinYaw, t.Bounds.MaxYaw},
		{"roll", t.Bounds.MinRoll, t.Bounds.MaxRoll},
		{"distance", t.Bounds.MinDistance, t.Bounds.MaxDistance},
	}
	var errs []error
	for _, p := range pairs {
		if p.min > p.max {
			errs = append(errs, fmt.Errorf("tunables: %s bounds [%g, %g]: %w", p.name, p.min, p.max, ErrInvalidBounds))
		}
	}
	return errors.Join(errs...)
}

// ParseTunables decodes a YAML document on top of DefaultTunables, so absent
// keys keep their defaults.
func ParseTunables(data []byte) (Tunables, error) {
	t := DefaultTunables()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTunables(), fmt.Errorf("tunables: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTunables(), err
	}
	return t, nil
}

func LoadTunables(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTunables(), fmt.Errorf("tunables: load %s: %w", path, err)
	}
	t, err := ParseTunables(data)
	if err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func SaveTunables(path string, t Tunables) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("tunables: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("tunables: save %s: %w", path, err)
	}
	return nil
}
