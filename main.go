package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jakubDoka/tankdemo/game"
	"github.com/jakubDoka/tankdemo/game/assets"
)

const appName = "tank-demo"

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Play struct {
		Width     int     `help:"Window width in pixels."`
		Height    int     `help:"Window height in pixels."`
		FPS       float64 `help:"Frame rate cap." name:"fps"`
		Resizable bool    `help:"Allow resizing the window."`
		Save      bool    `help:"Store the effective configuration before starting."`
	} `cmd:"" default:"1" help:"Open the demo window."`

	Config struct{} `cmd:"" help:"Write the effective configuration to standard output."`
}

func init() {
	// gl calls must stay on the main thread
	runtime.LockOSThread()
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	ctx := kong.Parse(&CLI,
		kong.Name(appName),
		kong.Description("steer a wireframe tank with W, S, A and D"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	configureLogging(CLI.Debug)

	// config file may turn on debug too, stats are loaded after that
	a := assets.NAssets(appName)
	if !CLI.Debug {
		configureLogging(a.Debug)
	}
	a.Load("assets", assets.RawAssets)
	applyFlags(a)

	for _, e := range a.Errors {
		log.Warn().Err(e).Msg("asset problem")
	}

	switch ctx.Command() {
	case "config":
		bts, err := json.MarshalIndent(a.Config, "", "\t")
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(append(bts, '\n'))
	default:
		if err := play(a); err != nil {
			writeError(err)
		}
	}
}

func configureLogging(debug bool) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Warn().Msg("debug logging enabled")
}

func applyFlags(a *assets.Assets) {
	p := CLI.Play
	if p.Width > 0 {
		a.Width = p.Width
	}
	if p.Height > 0 {
		a.Height = p.Height
	}
	if p.FPS > 0 {
		a.FPS = p.FPS
	}
	if p.Resizable {
		a.Resizable = true
	}
	a.Config = a.Config.Normalized()
	a.Camera = a.Camera.WithAspect(a.Width, a.Height)
}

func play(a *assets.Assets) error {
	if CLI.Play.Save {
		if err := a.SaveConfig(); err != nil {
			log.Error().Err(err).Msg("failed to save configuration")
		}
	}

	g, err := game.NGame(a)
	if err != nil {
		return err
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return g.Run(ctx)
}
