package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is fixed for the whole session. The view looks down on the
// tank from behind: -Y is up, -Z is forward and X is right.
type Camera struct {
	FOV, Aspect, Near, Far float32
	Eye                    mgl32.Vec3
	Tilt                   float32
}

var DefaultCamera = Camera{
	FOV:    60,
	Aspect: 640.0 / 480.0,
	Near:   0.1,
	Far:    100,
	Eye:    mgl32.Vec3{0, -1, -5},
	Tilt:   -math.Pi / 2,
}

// WithAspect returns camera with aspect ratio of a w x h framebuffer.
func (c Camera) WithAspect(w, h int) Camera {
	if w <= 0 || h <= 0 {
		return c
	}
	c.Aspect = float32(w) / float32(h)
	return c
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(c.Eye.X(), c.Eye.Y(), c.Eye.Z()).
		Mul4(mgl32.HomogRotate3DX(c.Tilt))
}

// Compose returns projection * view * model. Vertices get the model
// transform first, projection last.
func Compose(p Pose, c Camera) mgl32.Mat4 {
	return c.Projection().Mul4(c.View()).Mul4(p.Model())
}
