package sim

import "github.com/go-gl/mathgl/mgl32"

// Pipeline turns input and elapsed time into the next pose and the
// matrix to draw it with.
type Pipeline struct {
	Tuning
	Camera
}

func NPipeline() Pipeline {
	return Pipeline{
		Tuning: DefaultTuning,
		Camera: DefaultCamera,
	}
}

func (p Pipeline) Advance(pose Pose, in Input, dt float64) (Pose, mgl32.Mat4) {
	pose = pose.Step(in, p.Tuning, dt)
	return pose, Compose(pose, p.Camera)
}
