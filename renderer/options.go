package renderer

import "github.com/torrra/spectrum-retreat-clone/scene"

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Clip distances for the projection matrix.
	Near float32
	Far  float32
}

// Get the options matching the default window.
func DefaultOptions() Options {
	return Options{
		FrameW: 1280,
		FrameH: 720,
		Near:   scene.DefaultNear,
		Far:    scene.DefaultFar,
	}
}

// Aspect ratio of the frame.
func (o Options) Aspect() float32 {
	if o.FrameH == 0 {
		return 1
	}
	return float32(o.FrameW) / float32(o.FrameH)
}
