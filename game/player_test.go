package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/torrra/spectrum-retreat-clone/bvh"
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

func testPlayer(position types.Vec3) *Player {
	cam := scene.NewCamera(types.XYZ(0, 0, 0), 45, 1, 0.15, 0.1)
	return NewPlayer(position, cam)
}

func testWorld() *bvh.Hierarchy {
	h := bvh.New()
	h.AddCollider(WorldKey, physics.NewBox(types.XYZ(0, 0, 0), types.XYZ(worldHalfExtent, worldHalfExtent, worldHalfExtent)))
	return h
}

func assertVec(t *testing.T, exp, got types.Vec3) {
	t.Helper()
	for axis := 0; axis < 3; axis++ {
		if !assert.InDelta(t, exp[axis], got[axis], 1e-4) {
			t.Fatalf("expected (%f, %f, %f); got (%f, %f, %f)", exp[0], exp[1], exp[2], got[0], got[1], got[2])
		}
	}
}

func TestNewPlayerSyncsCamera(t *testing.T) {
	p := testPlayer(types.XYZ(1, 2, 3))

	assertVec(t, types.XYZ(1, 3, 3), p.Camera.Position)
	assertVec(t, types.XYZ(1, 2, 3), p.Collider.Position)
	if p.Collider.Radius != colliderRadius {
		t.Fatalf("expected collider radius to be %f; got %f", colliderRadius, p.Collider.Radius)
	}
	if !p.Color.Equal(types.White) {
		t.Fatalf("expected player to start white; got %v", p.Color)
	}
}

func TestUpdateMovement(t *testing.T) {
	p := testPlayer(types.XYZ(0, 5, 0))

	// The first update sees the spawn height as a vertical move.
	if p.UpdateMovement(0.1) || !p.Grounded() {
		t.Fatal("expected player to be grounded on the first update")
	}
	assert.Equal(t, float32(5), p.Position[1])

	p.UpdateMovement(0.1)
	if p.Grounded() {
		t.Fatal("expected player to be airborne")
	}
	assert.InDelta(t, -0.981, p.Velocity[1], 1e-5)
	assert.InDelta(t, 5-0.0981, p.Position[1], 1e-5)

	for i := 0; i < 50; i++ {
		p.UpdateMovement(0.1)
	}
	if p.Velocity[1] != gravity {
		t.Fatalf("expected falling speed to be clamped to %f; got %f", gravity, p.Velocity[1])
	}
}

func TestUpdateMovementFallLimit(t *testing.T) {
	p := testPlayer(types.XYZ(0, -25, 0))

	if p.UpdateMovement(0.1) {
		t.Fatal("expected grounded player not to trigger game over")
	}
	if !p.UpdateMovement(0.1) {
		t.Fatal("expected airborne player below the fall limit to trigger game over")
	}
}

func TestProcessKeyboardInput(t *testing.T) {
	type spec struct {
		keys     KeyInput
		grounded bool
		expPos   types.Vec3
		expVelY  float32
	}

	// Default camera looks down -X with -Z on its right.
	specs := []spec{
		{KeyInput{Forward: true}, true, types.XYZ(-1, 0, 0), 0},
		{KeyInput{Forward: true}, false, types.XYZ(-0.6, 0, 0), 0},
		{KeyInput{Forward: true, Back: true}, true, types.XYZ(-1, 0, 0), 0},
		{KeyInput{Back: true, Right: true}, true, types.XYZ(1, 0, -1), 0},
		{KeyInput{Left: true}, true, types.XYZ(0, 0, 1), 0},
		{KeyInput{Jump: true}, true, types.XYZ(0, 0, 0), verticalVelocity},
		{KeyInput{Jump: true}, false, types.XYZ(0, 0, 0), 0},
	}

	for index, s := range specs {
		p := testPlayer(types.XYZ(0, 0, 0))
		p.grounded = s.grounded
		p.ProcessKeyboardInput(s.keys, 0.1)

		for axis := 0; axis < 3; axis++ {
			if !assert.InDelta(t, s.expPos[axis], p.Position[axis], 1e-4) {
				t.Fatalf("[spec %d] expected position %v; got %v", index, s.expPos, p.Position)
			}
		}
		if p.Velocity[1] != s.expVelY {
			t.Fatalf("[spec %d] expected vertical velocity %f; got %f", index, s.expVelY, p.Velocity[1])
		}
	}
}

func TestCollideSlidesAlongWall(t *testing.T) {
	h := testWorld()
	h.AddChildCollider(WorldKey, "wall", physics.NewBox(types.XYZ(3, 0, 0), types.XYZ(1, 5, 5)))

	p := testPlayer(types.XYZ(0, 0, 0))
	p.Position = types.XYZ(1.6, 0, 0.5)
	p.Collider.Position = p.Position

	ev := p.Collide(h, KeyInput{})

	assertVec(t, types.XYZ(0, 0, 0.5), p.Position)
	assertVec(t, p.Position, p.Collider.Position)
	if ev.DoorBlocked {
		t.Fatal("expected walls not to raise door events")
	}
}

func TestCollideWithDoor(t *testing.T) {
	h := testWorld()
	door := physics.NewTaggedBox(physics.TypeDoor, types.XYZ(3, 0, 0), types.XYZ(1, 5, 5))
	h.AddChildCollider(WorldKey, "door", door)

	p := testPlayer(types.XYZ(0, 0, 0))
	p.Position = types.XYZ(1.6, 0, 0)
	p.Collider.Position = p.Position

	if ev := p.Collide(h, KeyInput{}); !ev.DoorBlocked {
		t.Fatal("expected closed door to block the player")
	}
	assertVec(t, types.XYZ(0, 0, 0), p.Position)

	door.Enabled = false
	p.Position = types.XYZ(1.6, 0, 0)
	p.Collider.Position = p.Position
	if ev := p.Collide(h, KeyInput{}); ev.DoorBlocked {
		t.Fatal("expected open door to let the player through")
	}
	assertVec(t, types.XYZ(1.6, 0, 0), p.Position)
}

func TestCollideTogglesLightsOnEdges(t *testing.T) {
	h := testWorld()
	lamp := scene.NewPointLight(types.XYZ(0, 3, 0), types.White)
	volume := physics.NewLightBox(types.XYZ(0, 0, 0), types.XYZ(2, 2, 2))
	volume.AddLight(lamp)
	h.AddChildCollider(WorldKey, "room", volume)

	if lamp.IsEnabled() {
		t.Fatal("expected light volume to switch its lights off")
	}

	p := testPlayer(types.XYZ(0, 0, 0))
	p.Collide(h, KeyInput{})
	if !lamp.IsEnabled() {
		t.Fatal("expected entering the volume to switch the light on")
	}

	// Lights are switched on every frame while the player remains inside.
	lamp.SetEnabled(false)
	p.Collide(h, KeyInput{})
	if !lamp.IsEnabled() {
		t.Fatal("expected the light to stay on while inside the volume")
	}

	p.Place(types.XYZ(10, 0, 0))
	p.Collide(h, KeyInput{})
	if lamp.IsEnabled() {
		t.Fatal("expected leaving the volume to switch the light off")
	}

	lamp.SetEnabled(true)
	p.Collide(h, KeyInput{})
	if !lamp.IsEnabled() {
		t.Fatal("expected lights of volumes left in earlier frames to be untouched")
	}
}

func TestTeleportOncePerVisit(t *testing.T) {
	h := testWorld()
	a := physics.NewTeleporter(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	b := physics.NewTeleporter(types.XYZ(30, 0, 0), types.XYZ(1, 1, 1))
	physics.Pair(a, b)
	h.AddChildCollider(WorldKey, "a", a)
	h.AddChildCollider(WorldKey, "b", b)

	p := testPlayer(types.XYZ(0, 0, 0))
	p.Camera.SetYaw(45)
	p.Camera.SetPitch(20)

	if ev := p.Collide(h, KeyInput{}); !ev.Teleported {
		t.Fatal("expected player to be teleported")
	}
	assertVec(t, b.Position, p.Position)
	if p.Camera.Yaw != teleporterYaw || p.Camera.Pitch != resetPitch {
		t.Fatalf("expected camera yaw/pitch to be reset; got %f, %f", p.Camera.Yaw, p.Camera.Pitch)
	}

	// Arriving on the other side does not send the player back.
	if ev := p.Collide(h, KeyInput{}); ev.Teleported || !p.Teleported() {
		t.Fatal("expected player to stay on the destination teleporter")
	}
	assertVec(t, b.Position, p.Position)

	p.Place(types.XYZ(10, 0, 0))
	p.Collide(h, KeyInput{})
	if p.Teleported() {
		t.Fatal("expected leaving the teleporter to end the visit")
	}

	p.Place(types.XYZ(30, 0, 0))
	if ev := p.Collide(h, KeyInput{}); !ev.Teleported {
		t.Fatal("expected a new visit to teleport the player back")
	}
	assertVec(t, a.Position, p.Position)
}

func TestTeleportWithoutPair(t *testing.T) {
	p := testPlayer(types.XYZ(0, 0, 0))
	if p.Teleport(physics.NewTeleporter(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))) {
		t.Fatal("expected unpaired teleporter to be ignored")
	}
	if p.Teleport(nil) {
		t.Fatal("expected nil teleporter to be ignored")
	}
}

func TestFinalTower(t *testing.T) {
	h := testWorld()
	h.AddChildCollider(WorldKey, "tower", physics.NewTaggedBox(physics.TypeFinalTower, types.XYZ(0, 0, 0), types.XYZ(5, 5, 5)))

	p := testPlayer(types.XYZ(0, 0, 0))
	if ev := p.Collide(h, KeyInput{}); !ev.InsideTower || !p.InsideTower() {
		t.Fatal("expected player to be inside the tower")
	}
	assertVec(t, types.XYZ(0, 0, 0), p.Position)

	p.Collide(h, KeyInput{Shift: true})
	assertVec(t, towerExit, p.Position)
	if p.Camera.Yaw != towerExitYaw {
		t.Fatalf("expected camera yaw to be %f; got %f", towerExitYaw, p.Camera.Yaw)
	}

	if ev := p.Collide(h, KeyInput{}); ev.InsideTower || p.InsideTower() {
		t.Fatal("expected player to have left the tower")
	}
}

func TestColorSwap(t *testing.T) {
	h := testWorld()
	cubeColor := types.Red
	cube := physics.NewColoredBox(types.XYZ(-5, 1, 0), types.XYZ(0.5, 0.5, 0.5), &cubeColor)
	h.AddChildCollider(WorldKey, "cube", cube)

	p := testPlayer(types.XYZ(0, 0, 0))

	hit, dist := p.CastRay(h)
	require.NotNil(t, hit)
	assert.Equal(t, "cube", hit.Key())
	assert.InDelta(t, 4.5, dist, 1e-4)

	if ev := p.Collide(h, KeyInput{}); ev.ColorSwapped {
		t.Fatal("expected colors to be swapped only on click")
	}

	if ev := p.Collide(h, KeyInput{Click: true}); !ev.ColorSwapped {
		t.Fatal("expected click to swap colors")
	}
	if !p.Color.Equal(types.Red) || !cubeColor.Equal(types.White) {
		t.Fatalf("expected player to be red and cube white; got %v and %v", p.Color, cubeColor)
	}
}

func TestColorRayBlockedByCloserBox(t *testing.T) {
	h := testWorld()
	cubeColor := types.Green
	h.AddChildCollider(WorldKey, "cube", physics.NewColoredBox(types.XYZ(-5, 1, 0), types.XYZ(0.5, 0.5, 0.5), &cubeColor))
	h.AddChildCollider(WorldKey, "crate", physics.NewBox(types.XYZ(-2.5, 1, 0), types.XYZ(0.5, 0.5, 0.5)))

	p := testPlayer(types.XYZ(0, 0, 0))

	hit, _ := p.CastRay(h)
	require.NotNil(t, hit)
	assert.Equal(t, "crate", hit.Key())

	if ev := p.Collide(h, KeyInput{Click: true}); ev.ColorSwapped {
		t.Fatal("expected the crate to block the color ray")
	}
	if !p.Color.Equal(types.White) || !cubeColor.Equal(types.Green) {
		t.Fatalf("expected colors to be unchanged; got %v and %v", p.Color, cubeColor)
	}
}

func TestColorRayThroughHole(t *testing.T) {
	h := testWorld()
	cubeColor := types.Blue
	h.AddChildCollider(WorldKey, "cube", physics.NewColoredBox(types.XYZ(-5, 1, 0), types.XYZ(0.5, 0.5, 0.5), &cubeColor))

	hole := physics.NewTaggedBox(physics.TypeIgnore, types.XYZ(-2.5, 1, 0), types.XYZ(1, 1, 1))
	h.AddChildCollider(WorldKey, "holed wall", physics.NewHoledBox(types.XYZ(-2.5, 1, 0), types.XYZ(0.5, 3, 3), hole))

	p := testPlayer(types.XYZ(0, 0, 0))
	hit, _ := p.CastRay(h)
	require.NotNil(t, hit)
	assert.Equal(t, "cube", hit.Key())

	// Looking above the hole hits the wall.
	p.Camera.SetPitch(45)
	hit, _ = p.CastRay(h)
	require.NotNil(t, hit)
	assert.Equal(t, "holed wall", hit.Key())
}

func TestUpdatePlayer(t *testing.T) {
	h := testWorld()
	p := testPlayer(types.XYZ(0, 5, 0))

	ev := p.UpdatePlayer(KeyInput{Forward: true}, 0.1, h)
	if ev.GameOver {
		t.Fatal("unexpected game over")
	}
	// Spawned players start airborne until the first movement update.
	assertVec(t, types.XYZ(-0.6, 5, 0), p.Position)
	assertVec(t, types.XYZ(-0.6, 6, 0), p.Camera.Position)
	assertVec(t, p.Position, p.Collider.Position)
}
