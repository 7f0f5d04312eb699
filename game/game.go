package game

import (
	"context"
	"time"

	"github.com/jakubDoka/mlok/ggl"
	"github.com/jakubDoka/mlok/logic/frame"
	"github.com/jakubDoka/sterr"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jakubDoka/tankdemo/game/assets"
	"github.com/jakubDoka/tankdemo/game/render"
)

var (
	ErrAssets  = sterr.New("assets contain fatal errors")
	ErrWindow  = sterr.New("window could not be created")
	ErrProgram = sterr.New("unable to initialize opengl program")
	ErrMesh    = sterr.New("unable to upload %s mesh")
)

type Game struct {
	*ggl.Window
	*assets.Assets
	*World

	Program *render.Program

	Closed bool
}

// NGame opens the window and prepares everything the frame loop needs.
// Any failure is returned and nothing is left half initialized.
func NGame(a *assets.Assets) (g *Game, err error) {
	if a.Failed() {
		return nil, ErrAssets
	}

	g = &Game{Assets: a}
	defer func() {
		if err != nil {
			g.Close()
			g = nil
		}
	}()

	g.Window, err = ggl.NWindow(&ggl.WindowConfig{
		Width:     a.Width,
		Height:    a.Height,
		Resizable: a.Resizable,
		Title:     a.Title,
	})
	if err != nil {
		return g, ErrWindow.Wrap(err)
	}

	if err = render.Init(); err != nil {
		return g, err
	}

	g.Program, err = render.NTankProgram()
	if err != nil {
		return g, ErrProgram.Wrap(err)
	}

	mesh, err := render.NMesh(g.Program, a.Vertices, a.Indices)
	if err != nil {
		return g, ErrMesh.Args("tank").Wrap(err)
	}

	g.World = NWorld(a, mesh)

	log.Info().
		Int("width", a.Width).
		Int("height", a.Height).
		Int("edges", a.EdgeCount()).
		Msg("tank demo initialized")

	return g, nil
}

// Run drives frames until the window closes or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Limit(g.FPS), 1)
	ticker := newTicker()

	var (
		frames int
		since  = time.Now()
	)

	for !g.ShouldClose() {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("run cancelled")
				return nil
			}
			return err
		}

		delta := ticker.Tick()
		g.World.Update(g.Window, delta)

		frames++
		if elapsed := time.Since(since); elapsed >= time.Second {
			log.Debug().
				Float64("fps", float64(frames)/elapsed.Seconds()).
				Float32("heading", g.Pose.Heading).
				Msg("frame stats")
			frames = 0
			since = time.Now()
		}
	}

	return nil
}

// newTicker returns a delta ticker started now, so the first frame
// measures from the loop start.
func newTicker() frame.Delta {
	return frame.Delta{}.Init()
}

func (g *Game) ShouldClose() bool {
	return g.Window.ShouldClose() || g.Closed || g.World.Quit
}

// Close releases gpu objects. Safe to call on partially built game.
func (g *Game) Close() {
	if g.World != nil && g.World.Mesh != nil {
		g.World.Mesh.Delete()
	}
	if g.Program != nil {
		g.Program.Delete()
	}
}
