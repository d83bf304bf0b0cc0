package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

func testFrame(t *testing.T) *scene.Frame {
	g := scene.NewGraph()
	cam := scene.NewCamera(types.XYZ(0, 0, 0), 45, 1, 0.15, 0.1)
	g.AttachRoot("camera", cam)

	glass := scene.NewMesh("cube")
	glass.Material = scene.NewMaterial(types.Blue.WithAlpha(0.5), 32)
	g.AttachRoot("glass", glass)
	glass.Translate(types.XYZ(-10, 0, 0))

	crate := scene.NewMesh("cube")
	crate.Texture = "crate.png"
	g.AttachRoot("crate", crate)
	crate.Translate(types.XYZ(-5, 0, 0))

	g.AttachRoot("lamp", scene.NewPointLight(types.XYZ(0, 2, 0), types.White))
	g.UpdateAll()

	frame := scene.Collect(g, cam)
	require.Len(t, frame.Meshes, 2)
	return frame
}

func TestNewHeadless(t *testing.T) {
	if _, err := NewHeadless(Options{FrameW: 0, FrameH: 10}); err != ErrInvalidFrameSize {
		t.Fatalf("expected to get ErrInvalidFrameSize; got %v", err)
	}

	r, err := NewHeadless(Options{FrameW: 640, FrameH: 480})
	require.NoError(t, err)
	if r.options.Near != scene.DefaultNear || r.options.Far != scene.DefaultFar {
		t.Fatalf("expected default clip distances; got %f, %f", r.options.Near, r.options.Far)
	}
}

func TestRenderErrors(t *testing.T) {
	r, err := NewHeadless(DefaultOptions())
	require.NoError(t, err)

	if err = r.Render(nil); err != ErrSceneNotDefined {
		t.Fatalf("expected to get ErrSceneNotDefined; got %v", err)
	}
	if err = r.Render(&scene.Frame{}); err != ErrCameraNotDefined {
		t.Fatalf("expected to get ErrCameraNotDefined; got %v", err)
	}

	r.Close()
	if err = r.Render(testFrame(t)); err != ErrClosed {
		t.Fatalf("expected to get ErrClosed; got %v", err)
	}
}

func TestRenderDrawCalls(t *testing.T) {
	r, err := NewHeadless(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, r.Render(testFrame(t)))

	calls := r.DrawCalls()
	require.Len(t, calls, 2)

	crate, glass := calls[0], calls[1]
	assert.Equal(t, "crate", crate.Key)
	assert.Equal(t, "glass", glass.Key)
	assert.True(t, crate.Textured)
	assert.False(t, crate.Translucent())
	assert.True(t, glass.Translucent())

	// Row-major: translation lives in the last column.
	assert.InDelta(t, -5, crate.World[3], 1e-5)

	// Clip space w equals the view depth of the mesh origin.
	var w float32
	origin := [4]float32{-5, 0, 0, 1}
	for c := 0; c < 4; c++ {
		w += crate.MVP[12+c] * origin[c]
	}
	assert.InDelta(t, 5, w, 1e-4)

	// Unscaled meshes keep an identity normal matrix.
	assert.InDelta(t, 1, crate.Normal[0], 1e-5)
	assert.InDelta(t, 1, crate.Normal[4], 1e-5)
	assert.InDelta(t, 1, crate.Normal[8], 1e-5)

	stats := r.Stats()
	expStats := FrameStats{Frame: 1, DrawCalls: 2, Textured: 1, Translucent: 1, PointLights: 1, RenderTime: stats.RenderTime}
	if stats != expStats {
		t.Fatalf("expected stats to be %+v; got %+v", expStats, stats)
	}
}

func TestRenderSkipsDetachedMeshes(t *testing.T) {
	r, err := NewHeadless(DefaultOptions())
	require.NoError(t, err)

	frame := &scene.Frame{
		Camera: scene.NewCamera(types.XYZ(0, 0, 0), 45, 1, 0.15, 0.1),
		Meshes: []*scene.Mesh{scene.NewMesh("cube")},
	}
	require.NoError(t, r.Render(frame))
	require.NoError(t, r.Render(frame))

	stats := r.Stats()
	if stats.Frame != 2 || stats.Skipped != 1 || stats.DrawCalls != 0 {
		t.Fatalf("expected frame 2 with 1 skipped mesh; got %+v", stats)
	}
}

func TestFrameStatsString(t *testing.T) {
	out := FrameStats{Frame: 3, DrawCalls: 7, SpotLights: 1}.String()
	for _, exp := range []string{"Draw calls", "Translucent", "Spot"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got\n%s", exp, out)
		}
	}
}
