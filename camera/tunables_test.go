package camera

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTunables(t *testing.T) {
	d := DefaultTunables()
	require.NoError(t, d.Validate())
	assert.Equal(t, IdealPose{Pitch: 0, Yaw: 90, Roll: 0, Distance: 64}, d.Ideal)
	assert.Equal(t, float32(30), d.Bounds.MinDistance)
	assert.Equal(t, float32(200), d.Bounds.MaxDistance)
	assert.False(t, d.SnapTo)
}

func TestParseTunables_KeepsDefaultsForMissingKeys(t *testing.T) {
	doc := []byte(`
bounds:
  max_distance: 400
ideal:
  distance: 100
snap_to: true
`)
	got, err := ParseTunables(doc)
	require.NoError(t, err)

	want := DefaultTunables()
	want.Bounds.MaxDistance = 400
	want.Ideal.Distance = 100
	want.SnapTo = true
	assert.Equal(t, want, got)
}

func TestParseTunables_RejectsInvertedBounds(t *testing.T) {
	doc := []byte(`
bounds:
  min_pitch: 10
  max_pitch: -10
  min_distance: 300
`)
	_, err := ParseTunables(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBounds))
	assert.Contains(t, err.Error(), "pitch")
	assert.Contains(t, err.Error(), "distance")
}

func TestParseTunables_Malformed(t *testing.T) {
	_, err := ParseTunables([]byte("bounds: [1, 2"))
	assert.Error(t, err)
}

func TestSaveLoadTunables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	tun := DefaultTunables()
	tun.Bounds.MinYaw = -45
	tun.Ideal.Yaw = 30

	require.NoError(t, SaveTunables(path, tun))
	got, err := LoadTunables(path)
	require.NoError(t, err)
	assert.Equal(t, tun, got)
}

func TestLoadTunables_MissingFile(t *testing.T) {
	got, err := LoadTunables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, DefaultTunables(), got)
}
