package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakubDoka/mlok/ggl"
	"github.com/jakubDoka/mlok/ggl/key/binding"
	"github.com/jakubDoka/mlok/mat/rgba"

	"github.com/jakubDoka/tankdemo/game/assets"
	"github.com/jakubDoka/tankdemo/game/render"
	"github.com/jakubDoka/tankdemo/game/sim"
)

// World owns all per-session state: the tank pose, the transform
// pipeline and what is needed to draw.
type World struct {
	sim.Pipeline

	Pose sim.Pose
	MVP  mgl32.Mat4

	Input    binding.S
	Mesh     *render.Mesh
	MaxDelta float64

	Quit bool
}

func NWorld(a *assets.Assets, mesh *render.Mesh) *World {
	w := &World{
		Pipeline: sim.Pipeline{
			Tuning: a.Tuning,
			Camera: a.Camera,
		},
		Input:    Bindings.Clone(),
		Mesh:     mesh,
		MaxDelta: a.MaxDelta,
	}
	w.MVP = sim.Compose(w.Pose, w.Camera)

	return w
}

// Update runs one frame: input, simulation, draw, swap.
func (w *World) Update(win *ggl.Window, delta float64) {
	w.Input.Update(win)
	if w.Input.Pressed(Quit) {
		w.Quit = true
	}

	rect := win.Rect()
	w.Camera = w.Camera.WithAspect(int(rect.W()), int(rect.H()))

	w.Step(w.Sample(), delta)

	w.Mesh.Draw(w.MVP)

	win.Update()
	win.Clear(rgba.Black)
}

func (w *World) Sample() sim.Input {
	return SampleInput(
		w.Input.Pressed(Forward),
		w.Input.Pressed(Back),
		w.Input.Pressed(Left),
		w.Input.Pressed(Right),
	)
}

// Step advances the pose. Long frames are cut to MaxDelta so a stall
// does not teleport the tank.
func (w *World) Step(in sim.Input, delta float64) {
	if w.MaxDelta > 0 {
		delta = math.Min(delta, w.MaxDelta)
	}
	w.Pose, w.MVP = w.Advance(w.Pose, in, delta)
}
