package thirdcam

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gekko3d/thirdcam/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTunables(t *testing.T, path string, tun camera.Tunables) {
	t.Helper()
	require.NoError(t, camera.SaveTunables(path, tun))
}

func TestTunablesModule_RequiresCamera(t *testing.T) {
	assert.Panics(t, func() {
		NewAppBuilder().UseModule(TunablesModule{Path: "camera.yaml"}).Build()
	})
}

func TestTunablesModule_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	tun := camera.DefaultTunables()
	tun.Bounds.MaxDistance = 120
	tun.Ideal.Distance = 80
	tun.SnapTo = true
	writeTunables(t, path, tun)

	app := NewAppBuilder().
		UseModule(CameraModule{}).
		UseModule(TunablesModule{Path: path}).
		Build()

	ctrl, _ := Resource[camera.Controller](app)
	assert.Equal(t, tun, ctrl.Tunables())

	file, ok := Resource[TunablesFile](app)
	require.True(t, ok)
	assert.Equal(t, path, file.Path)
	assert.Nil(t, file.watcher)
}

func TestTunablesModule_MissingFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	app := NewAppBuilder().
		UseModule(CameraModule{}).
		UseModule(TunablesModule{Path: path}).
		Build()

	ctrl, _ := Resource[camera.Controller](app)
	assert.Equal(t, camera.DefaultTunables(), ctrl.Tunables())
}

func TestTunablesFile_ReloadKeepsSteeredIdeal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	tun := camera.DefaultTunables()
	writeTunables(t, path, tun)

	ctrl := camera.NewController()
	file := &TunablesFile{Path: path, loaded: tun.Ideal}

	steered := ctrl.Tunables()
	steered.Ideal.Yaw = 10
	ctrl.SetTunables(steered)

	// bounds change only, the player's steering survives
	tun.Bounds.MaxDistance = 150
	writeTunables(t, path, tun)
	require.NoError(t, file.Reload(ctrl))
	assert.Equal(t, float32(150), ctrl.Tunables().Bounds.MaxDistance)
	assert.Equal(t, float32(10), ctrl.Tunables().Ideal.Yaw)

	// an edited ideal pose wins
	tun.Ideal.Yaw = 45
	writeTunables(t, path, tun)
	require.NoError(t, file.Reload(ctrl))
	assert.Equal(t, float32(45), ctrl.Tunables().Ideal.Yaw)
	assert.Equal(t, tun.Ideal, file.loaded)
}

func TestTunablesFile_ReloadErrorKeepsLive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bounds: [not, a, map"), 0o644))

	ctrl := camera.NewController()
	file := &TunablesFile{Path: path}

	err := file.Reload(ctrl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, camera.DefaultTunables(), ctrl.Tunables())
}

func TestTunablesWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	writeTunables(t, path, camera.DefaultTunables())

	w, err := NewTunablesWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644))
	writeTunables(t, path, camera.DefaultTunables())

	select {
	case name := <-w.Events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, filepath.Clean(name))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for tunables write")
	}

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestTunablesModule_WatchReloadsOnTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	tun := camera.DefaultTunables()
	writeTunables(t, path, tun)

	app := NewAppBuilder().
		UseModule(CameraModule{}).
		UseModule(TunablesModule{Path: path, Watch: true}).
		Build()
	defer app.Close()

	file, _ := Resource[TunablesFile](app)
	require.NotNil(t, file.watcher)
	ctrl, _ := Resource[camera.Controller](app)

	tun.Bounds.MaxDistance = 500
	writeTunables(t, path, tun)

	require.Eventually(t, func() bool {
		app.Tick()
		return ctrl.Tunables().Bounds.MaxDistance == 500
	}, 5*time.Second, 20*time.Millisecond)
}
