package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pi2 is one full revolution.
const Pi2 = 2 * math.Pi

const (
	Speed    float32 = 5.0 // units per second
	RotSpeed float32 = Pi2 // one revolution per second
)

// Tuning holds the movement rates of the tank.
type Tuning struct {
	Speed, RotSpeed float32
}

var DefaultTuning = Tuning{Speed: Speed, RotSpeed: RotSpeed}

// Input is a single frame of player intent. Both fields are in {-1, 0, 1}.
type Input struct {
	Forward, Turn float32
}

// Idle reports whether input carries no intent.
func (i Input) Idle() bool {
	return i.Forward == 0 && i.Turn == 0
}

// Pose is position and heading of the tank. Heading is kept in [0, 2π).
type Pose struct {
	Position mgl32.Vec3
	Heading  float32
}

// Forward is the local direction the tank moves in.
var Forward = mgl32.Vec3{0, 1, 0}

// Step integrates one frame. Rotation is applied first so the velocity
// is rotated by the updated heading.
func (p Pose) Step(in Input, t Tuning, dt float64) Pose {
	d := ClampDelta(dt)
	if d == 0 || in.Idle() {
		return p
	}

	p.Heading = Wrap(p.Heading + in.Turn*t.RotSpeed*d)

	vel := Forward.Mul(in.Forward * t.Speed * d)
	vel = mgl32.TransformNormal(vel, mgl32.HomogRotate3DZ(p.Heading))
	p.Position = p.Position.Add(vel)

	return p
}

// Model returns translation followed by rotation around the vertical axis.
func (p Pose) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl32.HomogRotate3DZ(p.Heading))
}

// Wrap reduces angle modulo one revolution into [0, 2π).
func Wrap(angle float32) float32 {
	a := math.Mod(float64(angle), Pi2)
	if a < 0 {
		a += Pi2
	}
	r := float32(a)
	// rounding to float32 can land exactly on the upper bound
	if r >= float32(Pi2) || r < 0 {
		return 0
	}
	return r
}

// ClampDelta turns malformed, zero or negative frame deltas into zero.
func ClampDelta(dt float64) float32 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return 0
	}
	return float32(dt)
}
