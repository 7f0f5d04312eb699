package game

import (
	"github.com/jakubDoka/mlok/ggl/key"
	"github.com/jakubDoka/mlok/ggl/key/binding"

	"github.com/jakubDoka/tankdemo/game/sim"
)

const (
	Forward binding.B = iota
	Back
	Left
	Right

	Quit
)

var Bindings = binding.New(
	key.W,
	key.S,
	key.A,
	key.D,

	key.Escape,
)

// SampleInput turns held keys into intent. Forward wins over back and
// left over right when both are held.
func SampleInput(forward, back, left, right bool) sim.Input {
	var in sim.Input

	if forward {
		in.Forward = 1
	} else if back {
		in.Forward = -1
	}

	if left {
		in.Turn = 1
	} else if right {
		in.Turn = -1
	}

	return in
}
