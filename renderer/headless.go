package renderer

import (
	"sort"
	"time"

	"github.com/torrra/spectrum-retreat-clone/log"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
	"golang.org/x/image/math/f32"
)

var logger = log.New("renderer")

// DrawCall holds everything a shader needs to draw one mesh. Matrices are
// packed in row-major order.
type DrawCall struct {
	// Key of the scene node owning the mesh.
	Key string

	Model   string
	Texture string

	World  f32.Mat4
	MVP    f32.Mat4
	Normal f32.Mat3

	Textured bool
	Material scene.Material
}

// Translucent draw calls must be blended after the opaque ones.
func (d *DrawCall) Translucent() bool {
	return d.Material.Diffuse[3] < 1
}

// A renderer that builds draw lists without talking to a GPU. It is used by
// the simulation command and by tests.
type Headless struct {
	options Options
	calls   []DrawCall
	stats   FrameStats
	closed  bool
}

// Create a new headless renderer.
func NewHeadless(opts Options) (*Headless, error) {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return nil, ErrInvalidFrameSize
	}
	if opts.Near <= 0 {
		opts.Near = scene.DefaultNear
	}
	if opts.Far <= opts.Near {
		opts.Far = scene.DefaultFar
	}

	return &Headless{options: opts}, nil
}

// Build the draw list for frame. Opaque meshes come first followed by the
// translucent ones, each group keeping traversal order.
func (r *Headless) Render(frame *scene.Frame) error {
	if r.closed {
		return ErrClosed
	}
	if frame == nil {
		return ErrSceneNotDefined
	}
	if frame.Camera == nil {
		return ErrCameraNotDefined
	}

	start := time.Now()
	stats := FrameStats{
		Frame:             r.stats.Frame + 1,
		PointLights:       len(frame.PointLights),
		DirectionalLights: len(frame.DirectionalLights),
		SpotLights:        len(frame.SpotLights),
	}

	viewProj := frame.Camera.ProjectionMatrix(r.options.Aspect(), r.options.Near, r.options.Far).Mul4(frame.Camera.ViewMatrix())

	r.calls = r.calls[:0]
	for _, mesh := range frame.Meshes {
		node := mesh.Node()
		if node == nil {
			stats.Skipped++
			continue
		}

		call := DrawCall{
			Key:      node.Key(),
			Model:    mesh.Model,
			Texture:  mesh.Texture,
			World:    types.PackMat4(node.Global),
			MVP:      types.PackMat4(viewProj.Mul4(node.Global)),
			Normal:   types.PackMat3(types.NormalMatrix(node.Global)),
			Textured: mesh.Textured(),
		}
		if mesh.Material != nil {
			call.Material = *mesh.Material
		} else {
			call.Material = *scene.NewMaterial(types.White, 0)
		}

		if call.Textured {
			stats.Textured++
		}
		if call.Translucent() {
			stats.Translucent++
		}
		r.calls = append(r.calls, call)
	}

	sort.SliceStable(r.calls, func(i, j int) bool {
		return !r.calls[i].Translucent() && r.calls[j].Translucent()
	})

	stats.DrawCalls = len(r.calls)
	stats.RenderTime = time.Since(start)
	r.stats = stats

	if stats.Skipped > 0 {
		logger.Debugf("frame %d: skipped %d detached meshes", stats.Frame, stats.Skipped)
	}
	return nil
}

// Draw list produced by the last call to Render. The slice is reused by the
// next frame.
func (r *Headless) DrawCalls() []DrawCall {
	return r.calls
}

func (r *Headless) Stats() FrameStats {
	return r.stats
}

func (r *Headless) Close() {
	r.closed = true
	r.calls = nil
}
