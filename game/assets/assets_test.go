package assets

import (
	"path/filepath"
	"testing"

	"github.com/jakubDoka/goml/goss"
	"github.com/jakubDoka/mlok/ggl/ui"
	"github.com/jakubDoka/mlok/load"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakubDoka/tankdemo/game/sim"
)

func TestCube(t *testing.T) {
	c := Cube(.5)
	require.NoError(t, c.Validate())
	assert.Equal(t, 8, c.VertexCount())
	assert.Equal(t, 12, c.EdgeCount())

	seen := map[[2]uint32]bool{}
	for i := 0; i < len(c.Indices); i += 2 {
		a, b := c.Indices[i], c.Indices[i+1]
		if a > b {
			a, b = b, a
		}
		require.False(t, seen[[2]uint32{a, b}], "duplicate edge %d-%d", a, b)
		seen[[2]uint32{a, b}] = true

		// cube edges differ in exactly one coordinate
		diff := 0
		for k := 0; k < 3; k++ {
			if c.Vertices[a*3+uint32(k)] != c.Vertices[b*3+uint32(k)] {
				diff++
			}
		}
		assert.Equal(t, 1, diff, "edge %d-%d", a, b)
	}
}

func TestMeshValidate(t *testing.T) {
	assert.Error(t, Mesh{Vertices: []float32{0, 0}, Indices: []uint32{0, 0}}.Validate())
	assert.Error(t, Mesh{Vertices: []float32{0, 0, 0}, Indices: []uint32{0}}.Validate())
	assert.Error(t, Mesh{Vertices: []float32{0, 0, 0}}.Validate())
	assert.Error(t, Mesh{Vertices: []float32{0, 0, 0}, Indices: []uint32{0, 1}}.Validate())
	assert.NoError(t, Mesh{Vertices: []float32{0, 0, 0, 1, 1, 1}, Indices: []uint32{0, 1}}.Validate())
}

func TestConfigNormalized(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Config{}.Normalized())

	c := Config{Width: 1000, Height: 600, Title: "x", FPS: 60, MaxDelta: .05, Resizable: true}
	assert.Equal(t, c, c.Normalized())

	bad := Config{Width: -1, Height: 10, FPS: -3, MaxDelta: 0}.Normalized()
	assert.Equal(t, 640, bad.Width)
	assert.Equal(t, 10, bad.Height)
	assert.Equal(t, 30.0, bad.FPS)
	assert.Equal(t, .1, bad.MaxDelta)
}

func TestStatsDefaults(t *testing.T) {
	a := &Assets{}
	assert.Equal(t, sim.DefaultTuning, a.TankTuning(NStyle(goss.Style{})))
	assert.Equal(t, sim.DefaultCamera, a.CameraStats(NStyle(goss.Style{})))
}

func TestStyleMissing(t *testing.T) {
	a := &Assets{Root: "assets"}
	stl := a.Style(goss.Styles{}, "tank")
	assert.Equal(t, sim.DefaultTuning, a.TankTuning(stl))
	assert.Len(t, a.Errors, 1)
	assert.False(t, a.Failed())

	a.Fatal(Mesh{}.Validate())
	assert.True(t, a.Failed())
}

func TestLoadEmbedded(t *testing.T) {
	a := &Assets{
		Config: DefaultConfig(),
		Mesh:   Cube(.5),
		parser: ui.NParser(),
	}
	a.Load("assets", RawAssets)

	// embedded stats describe the stock tank
	assert.InDelta(t, sim.Speed, a.Tuning.Speed, 1e-5)
	assert.InDelta(t, sim.RotSpeed, a.Tuning.RotSpeed, 1e-5)
	assert.InDelta(t, sim.DefaultCamera.FOV, a.Camera.FOV, 1e-5)
	assert.InDelta(t, sim.DefaultCamera.Eye.Z(), a.Camera.Eye.Z(), 1e-5)
	assert.InDelta(t, 640.0/480.0, a.Camera.Aspect, 1e-5)
	assert.False(t, a.Failed())
}

func TestPathName(t *testing.T) {
	assert.Equal(t, "tank", PathName("assets/stats/tank.goss"))
	assert.Equal(t, "stats", PathName("assets/stats"))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tank-demo")

	a := &Assets{Config: DefaultConfig()}
	a.AppData = load.Util{Loader: load.OS, Root: dir}
	a.Width, a.Height, a.FPS, a.Resizable = 1000, 600, 60, true
	require.NoError(t, a.SaveConfig())

	b := &Assets{Config: DefaultConfig(), AppData: a.AppData}
	b.LoadConfig()
	assert.Empty(t, b.Errors)
	assert.Equal(t, a.Config, b.Config)
}
