package renderer

import "github.com/torrra/spectrum-retreat-clone/scene"

type Renderer interface {
	// Render the meshes and lights collected from the scene graph.
	Render(frame *scene.Frame) error

	// Release renderer resources.
	Close()

	// Get statistics for the last rendered frame.
	Stats() FrameStats
}
