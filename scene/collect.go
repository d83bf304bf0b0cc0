package scene

// Frame is the render input gathered from the scene graph: visible meshes
// and the lights that are switched on.
type Frame struct {
	Camera *Camera

	Meshes            []*Mesh
	PointLights       []*PointLight
	DirectionalLights []*DirectionalLight
	SpotLights        []*SpotLight
}

// Traverse the graph and collect the render input for camera.
func Collect(g *Graph, camera *Camera) *Frame {
	frame := &Frame{Camera: camera}

	g.Walk(func(n *Node, _ int) bool {
		switch obj := n.Object.(type) {
		case *Mesh:
			if n.Render {
				frame.Meshes = append(frame.Meshes, obj)
			}
		case Light:
			if !obj.IsEnabled() {
				break
			}
			switch light := obj.(type) {
			case *PointLight:
				frame.PointLights = append(frame.PointLights, light)
			case *DirectionalLight:
				frame.DirectionalLights = append(frame.DirectionalLights, light)
			case *SpotLight:
				frame.SpotLights = append(frame.SpotLights, light)
			}
		}
		return true
	})

	return frame
}

// Number of enabled lights in the frame.
func (f *Frame) LightCount() int {
	return len(f.PointLights) + len(f.DirectionalLights) + len(f.SpotLights)
}
