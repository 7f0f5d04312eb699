package assets

import (
	"os"
)

const ConfigFile = "config.json"

// Config is persisted in the user's app data directory.
type Config struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Title     string  `json:"title"`
	Resizable bool    `json:"resizable"`
	FPS       float64 `json:"fps"`
	MaxDelta  float64 `json:"max_delta"`
	Debug     bool    `json:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Width:    640,
		Height:   480,
		Title:    "Tank Demo",
		FPS:      30,
		MaxDelta: .1,
	}
}

// Normalized replaces unusable values with defaults.
func (c Config) Normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if !(c.FPS > 0) {
		c.FPS = def.FPS
	}
	if !(c.MaxDelta > 0) {
		c.MaxDelta = def.MaxDelta
	}
	return c
}

func (a *Assets) LoadConfig() {
	cfg := DefaultConfig()
	if err := a.AppData.Json(ConfigFile, &cfg); err != nil {
		a.Log(ErrConfig.Wrap(err))
		return
	}
	a.Config = cfg.Normalized()
}

func (a *Assets) SaveConfig() error {
	if err := os.MkdirAll(a.AppData.Root, os.ModePerm); err != nil {
		return ErrConfig.Wrap(err)
	}
	if err := a.AppData.SaveJson(ConfigFile, a.Config); err != nil {
		return ErrConfig.Wrap(err)
	}
	return nil
}
