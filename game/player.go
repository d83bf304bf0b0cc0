package game

import (
	"github.com/torrra/spectrum-retreat-clone/bvh"
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

const (
	verticalVelocity   float32 = 5
	horizontalVelocity float32 = 10

	// Horizontal speed multiplier while airborne.
	airVelocityFactor float32 = 0.6

	gravity   float32 = -9.81
	fallLimit float32 = -20

	playerHeight   float32 = 1
	colliderRadius float32 = 0.75

	// Key of the volume every collision query starts from.
	WorldKey = "world"
)

const (
	towerExitYaw  float32 = 90
	teleporterYaw float32 = -180
	resetPitch    float32 = 0
)

// Ledge the final tower drops the player on when it gets stuck inside.
var towerExit = types.XYZ(10.42, 7.9, 12.846)

// Player is the first person character. The camera sits Height units above
// the player position.
type Player struct {
	Position types.Vec3
	Velocity types.Vec3
	Height   float32

	// Color carried by the player; it opens doors of the same color.
	Color types.Color

	Camera   *scene.Camera
	Collider *physics.Sphere

	lastY       float32
	grounded    bool
	teleported  bool
	insideTower bool

	// Light volumes the player was inside of during the last collision pass.
	litVolumes map[*physics.LightBox]struct{}
}

// Create a player at position driving camera.
func NewPlayer(position types.Vec3, camera *scene.Camera) *Player {
	p := &Player{
		Position:   position,
		Height:     playerHeight,
		Color:      types.White,
		Camera:     camera,
		Collider:   physics.NewSphere(position, colliderRadius),
		litVolumes: make(map[*physics.LightBox]struct{}),
	}
	p.syncCamera()
	return p
}

func (p *Player) ObjectType() scene.ObjectType {
	return scene.ObjectPlayer
}

func (p *Player) Grounded() bool {
	return p.grounded
}

func (p *Player) Teleported() bool {
	return p.teleported
}

func (p *Player) InsideTower() bool {
	return p.insideTower
}

// Move the player, its collider and its camera to position.
func (p *Player) Place(position types.Vec3) {
	p.Position = position
	p.Collider.Position = position
	p.syncCamera()
}

// Apply the walking and jumping keys. Opposite keys are exclusive with
// forward and right taking precedence.
func (p *Player) ProcessKeyboardInput(keys KeyInput, dt float32) {
	front := p.Camera.Front
	right := p.Camera.Right

	if keys.Forward {
		p.applyHorizontalVelocity(front, horizontalVelocity, dt)
	} else if keys.Back {
		p.applyHorizontalVelocity(front.Mul(-1), horizontalVelocity, dt)
	}

	if keys.Right {
		p.applyHorizontalVelocity(right, horizontalVelocity, dt)
	} else if keys.Left {
		p.applyHorizontalVelocity(right.Mul(-1), horizontalVelocity, dt)
	}

	if keys.Jump && p.grounded {
		p.Velocity[1] = verticalVelocity
	}
}

func (p *Player) applyHorizontalVelocity(dir types.Vec3, velocity, dt float32) {
	factor := airVelocityFactor
	if p.grounded {
		factor = 1
	}
	p.Position = p.Position.Add(types.XYZ(dir[0], 0, dir[2]).Mul(factor * velocity * dt))
}

// Integrate gravity. The player counts as grounded when a collision moved
// it vertically since the last update. Returns true if the player fell off
// the level.
func (p *Player) UpdateMovement(dt float32) (gameOver bool) {
	p.grounded = p.Position[1] != p.lastY

	if !p.grounded {
		p.Velocity[1] += gravity * dt
		if p.Velocity[1] < gravity {
			p.Velocity[1] = gravity
		}
		gameOver = p.Position[1] <= fallLimit
	}

	p.Position[1] += p.Velocity[1] * dt
	p.lastY = p.Position[1]
	return gameOver
}

// Move the player to the other side of t. Only the first call of a visit
// moves the player; the visit ends once no teleporter is touched.
func (p *Player) Teleport(t *physics.Teleporter) bool {
	if t == nil || t.OtherSide == nil || p.teleported {
		return false
	}

	p.Position = t.OtherSide.Position
	p.Camera.SetYaw(teleporterYaw)
	p.Camera.SetPitch(resetPitch)
	p.teleported = true
	return true
}

// Cast the color ray from the eye along the camera front and return the
// closest box, color cube, door or solid part of a holed wall.
func (p *Player) CastRay(h *bvh.Hierarchy) (*bvh.Node, float32) {
	ray := physics.NewRay(types.XYZ(p.Position[0], p.Position[1]+p.Height, p.Position[2]), p.Camera.Front)

	var (
		closest  *bvh.Node
		distance = physics.NoHit
	)
	for _, leaf := range h.PruneRay(WorldKey, ray) {
		switch leaf.Collider.Type() {
		case physics.TypeBox, physics.TypeColorCube, physics.TypeDoor, physics.TypeHoled:
		default:
			continue
		}

		if d, hit := ray.IntersectCollider(leaf.Collider); hit && (closest == nil || d < distance) {
			closest, distance = leaf, d
		}
	}
	return closest, distance
}

// Resolve collisions against the leaves pruned from the world volume and
// react to the volumes the player is in.
func (p *Player) Collide(h *bvh.Hierarchy, keys KeyInput) Events {
	var ev Events

	if keys.Click {
		if hit, _ := p.CastRay(h); hit != nil {
			if cube, ok := hit.Collider.(*physics.ColoredBox); ok && cube.Color != nil {
				cube.Color.Swap(&p.Color)
				ev.ColorSwapped = true
			}
		}
	}

	var (
		touchedTeleporter bool
		insideTower       bool
		lit               = make(map[*physics.LightBox]struct{})
	)

	for _, leaf := range h.Prune(WorldKey, p.Collider) {
		// Earlier corrections may have moved the player out of this leaf
		if !leaf.TestCollision(p.Collider) {
			continue
		}

		switch leaf.Collider.Type() {
		case physics.TypeLightBox:
			if volume, ok := leaf.Collider.(*physics.LightBox); ok {
				lit[volume] = struct{}{}
			}
		case physics.TypeTeleporter:
			touchedTeleporter = true
			if t, ok := leaf.Collider.(*physics.Teleporter); ok && p.Teleport(t) {
				ev.Teleported = true
			}
		case physics.TypeFinalTower:
			insideTower = true
			if keys.Shift {
				p.Position = towerExit
				p.Camera.SetYaw(towerExitYaw)
				p.Camera.SetPitch(resetPitch)
			}
		default:
			p.slide(leaf)
			if leaf.Collider.Type() == physics.TypeDoor {
				ev.DoorBlocked = true
			}
		}
	}

	for volume := range p.litVolumes {
		if _, still := lit[volume]; !still {
			volume.DisableLights()
		}
	}
	for volume := range lit {
		volume.EnableLights()
	}
	p.litVolumes = lit

	if !touchedTeleporter {
		p.teleported = false
	}
	p.insideTower = insideTower
	ev.InsideTower = insideTower

	p.Collider.Position = p.Position
	return ev
}

// Test each axis of the attempted move on its own and revert the axes that
// still collide to the position of the previous frame.
func (p *Player) slide(leaf *bvh.Node) {
	cam := p.Camera.Position
	feet := cam[1] - p.Height

	p.Collider.Position = types.XYZ(p.Position[0], feet, cam[2])
	if leaf.TestCollision(p.Collider) {
		p.Position[0] = cam[0]
	}

	p.Collider.Position = types.XYZ(cam[0], p.Position[1], cam[2])
	if leaf.TestCollision(p.Collider) {
		p.Position[1] = feet
	}

	p.Collider.Position = types.XYZ(cam[0], feet, p.Position[2])
	if leaf.TestCollision(p.Collider) {
		p.Position[2] = cam[2]
	}

	p.Collider.Position = p.Position
}

// Run the per-frame player update: input, gravity, collisions and camera.
func (p *Player) UpdatePlayer(keys KeyInput, dt float32, h *bvh.Hierarchy) Events {
	p.ProcessKeyboardInput(keys, dt)
	gameOver := p.UpdateMovement(dt)
	p.Collider.Position = p.Position

	ev := p.Collide(h, keys)
	ev.GameOver = gameOver

	p.syncCamera()
	return ev
}

func (p *Player) syncCamera() {
	if p.Camera == nil {
		return
	}
	p.Camera.Position = types.XYZ(p.Position[0], p.Position[1]+p.Height, p.Position[2])
}
