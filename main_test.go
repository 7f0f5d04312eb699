package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	configureLogging(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	configureLogging(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
