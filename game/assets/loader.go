package assets

import (
	"embed"
	"math"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakubDoka/goml/goss"
	"github.com/jakubDoka/mlok/ggl/ui"
	"github.com/jakubDoka/mlok/load"
	"github.com/jakubDoka/mlok/mat"
	"github.com/jakubDoka/sterr"
	"github.com/rs/zerolog/log"

	"github.com/jakubDoka/tankdemo/game/sim"
)

//go:embed assets
var RawAssets embed.FS

var (
	ErrMapping = sterr.New("error when mapping directory tree")
	ErrConfig  = sterr.New("problem with a config file, add or fix config.json")
	ErrProblem = sterr.New("problem with a %s file on path %s")
	ErrMissing = sterr.New("style %s is missing in %s")
	ErrFatal   = sterr.New("[fatal]")
	ErrWarning = sterr.New("[note]")
)

// Assets is everything the demo reads before it opens a window.
type Assets struct {
	Config
	Mesh

	Tuning sim.Tuning
	Camera sim.Camera

	Loader, AppData load.Util
	Root            string
	Errors          []error

	parser *ui.Parser
	buff   []string
}

func NAssets(appName string) *Assets {
	a := &Assets{
		Config: DefaultConfig(),
		Mesh:   Cube(.5),
		Tuning: sim.DefaultTuning,
		Camera: sim.DefaultCamera,
		parser: ui.NParser(),
	}

	dt, err := load.AppData(appName)
	if err != nil {
		a.Log(ErrConfig.Wrap(err))
	} else {
		a.AppData = dt
		a.LoadConfig()
	}

	return a
}

// Load reads stats from root using loader and checks the mesh.
func (a *Assets) Load(root string, loader load.Loader) {
	a.Root = root
	a.Loader.Loader = loader

	styles := a.LoadStyles(a.Path("stats"))
	a.Tuning = a.TankTuning(a.Style(styles, "tank"))
	a.Camera = a.CameraStats(a.Style(styles, "camera")).WithAspect(a.Width, a.Height)

	if err := a.Mesh.Validate(); err != nil {
		a.Fatal(err)
	}
}

func (a *Assets) TankTuning(stl RawStyle) sim.Tuning {
	return sim.Tuning{
		Speed:    stl.Float32("speed", sim.Speed),
		RotSpeed: stl.Float32("steer_speed", sim.RotSpeed),
	}
}

func (a *Assets) CameraStats(stl RawStyle) sim.Camera {
	def := sim.DefaultCamera
	eye := stl.Vec("eye", mat.V(float64(def.Eye.X()), float64(def.Eye.Y())))
	return sim.Camera{
		FOV:    stl.Float32("fov", def.FOV),
		Aspect: def.Aspect,
		Near:   stl.Float32("near", def.Near),
		Far:    stl.Float32("far", def.Far),
		Eye: mgl32.Vec3{
			float32(eye.X),
			float32(eye.Y),
			stl.Float32("eye_depth", def.Eye.Z()),
		},
		Tilt: stl.Float32("tilt", def.Tilt),
	}
}

// Style returns named style or an empty one, so every field falls back
// to its default.
func (a *Assets) Style(styles goss.Styles, name string) RawStyle {
	s, ok := styles[name]
	if !ok {
		a.Log(ErrMissing.Args(name, a.Path("stats")))
	}
	return NStyle(s)
}

func (a *Assets) LoadStyles(root string) goss.Styles {
	dest := goss.Styles{}
	for _, p := range a.ListPath(root, true, "goss") {
		bts, err := a.Loader.ReadFile(p)
		if err != nil {
			a.Log(err)
			continue
		}

		style, err := a.parser.GS.Parse(bts)
		if err != nil {
			a.Log(ErrProblem.Args("goss", p).Wrap(err))
			continue
		}

		log.Debug().Str("file", PathName(p)).Int("styles", len(style)).Msg("loaded stats")
		dest.Add(style)
	}
	return dest
}

func (a *Assets) ListPath(root string, rec bool, ext string) []string {
	var err error
	a.buff, err = a.Loader.List(root, a.buff[:0], rec, ext)
	if err != nil {
		a.Log(ErrMapping.Wrap(err))
	}
	return append([]string(nil), a.buff...)
}

func (a *Assets) Path(args ...string) string {
	return path.Join(append([]string{a.Root}, args...)...)
}

func (a *Assets) Log(err error) {
	if err != nil {
		a.AddErr(ErrWarning.Wrap(err))
	}
}

func (a *Assets) Fatal(err error) {
	if err != nil {
		a.AddErr(ErrFatal.Wrap(err))
	}
}

func (a *Assets) AddErr(err error) {
	if err != nil {
		a.Errors = append(a.Errors, err)
	}
}

// Failed reports whether any fatal error was collected.
func (a *Assets) Failed() bool {
	for _, e := range a.Errors {
		if strings.Contains(e.Error(), "[fatal]") {
			return true
		}
	}
	return false
}

func PathName(p string) string {
	base := filepath.Base(p)
	if strings.Contains(base, ".") {
		base = base[:strings.LastIndex(base, ".")]
	}
	return base
}

type RawStyle struct {
	load.RawStyle
}

func NStyle(style goss.Style) RawStyle {
	return RawStyle{RawStyle: load.RawStyle{Style: style}}
}

// Float32 is Float narrowed for the math package. Non-finite values fall
// back to def.
func (r RawStyle) Float32(key string, def float32) float32 {
	v := r.Float(key, float64(def))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return float32(v)
}
