package game

import (
	"github.com/torrra/spectrum-retreat-clone/bvh"
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

const (
	// Half extent of the volume enclosing the whole level.
	worldHalfExtent float32 = 200

	teleporterHalfExtent float32 = 5

	spotCutOff      float32 = 7.5
	spotOuterCutOff float32 = 17.5
)

// Level owns the scene graph and collider hierarchy of a playable level
// together with the objects the game loop drives every frame.
type Level struct {
	Scene     *scene.Graph
	Colliders *bvh.Hierarchy

	Camera *scene.Camera
	Player *Player
	Spot   *scene.SpotLight

	Doors  []*Door
	Blocks []*ColorBlock

	materials map[string]*scene.Material
}

// Create an empty level containing the player, its camera, the flashlight
// and the world volume.
func NewLevel(opts Options) *Level {
	l := &Level{
		Scene:     scene.NewGraph(),
		Colliders: bvh.New(),
		materials: make(map[string]*scene.Material),
	}

	l.Camera = scene.NewCamera(opts.Spawn, opts.FOV, opts.MoveIncrement, opts.PitchSpeed, opts.YawSpeed)
	l.Camera.LegacyPlanes = opts.LegacyPlanes
	l.Scene.AttachRoot("camera", l.Camera)

	l.Player = NewPlayer(opts.Spawn, l.Camera)
	l.Player.Color = opts.PlayerColor
	l.Scene.AttachRoot("player", l.Player)

	l.Spot = scene.NewSpotLight(l.Camera.Position, l.Camera.Front, types.White, spotCutOff, spotOuterCutOff)
	l.Scene.AttachRoot("spot", l.Spot)

	l.Colliders.AddCollider(WorldKey, physics.NewBox(types.XYZ(0, 0, 0), types.XYZ(worldHalfExtent, worldHalfExtent, worldHalfExtent)))
	return l
}

// Get a shared material, creating it on first use.
func (l *Level) Material(name string, color types.Color, shininess float32) *scene.Material {
	if m, ok := l.materials[name]; ok {
		return m
	}
	m := scene.NewMaterial(color, shininess)
	l.materials[name] = m
	return m
}

// Add a partition volume below parentKey.
func (l *Level) AddArea(parentKey, key string, position, halfExtent types.Vec3) *bvh.Node {
	return l.Colliders.AddChildCollider(parentKey, key, physics.NewBox(position, halfExtent))
}

// Add a solid wall whose collider follows the mesh transform.
func (l *Level) AddWall(key, model string, position, scale types.Vec3, material *scene.Material, areaKey string) *scene.Mesh {
	mesh := l.addStaticMesh(key, model, position, scale, material)
	l.addLinkedCollider(areaKey, key, key, physics.NewBox(position, scale))
	return mesh
}

// Add a floor or ceiling slab.
func (l *Level) AddFloor(key, model string, position, scale types.Vec3, material *scene.Material, areaKey string) *scene.Mesh {
	return l.AddWall(key, model, position, scale, material, areaKey)
}

// Add a wall with a unit sized hole at its center. Rays passing through
// the hole do not hit the wall.
func (l *Level) AddHoledWall(key, model string, position, scale types.Vec3, material *scene.Material, areaKey string) *scene.Mesh {
	mesh := l.addStaticMesh(key, model, position, scale, material)
	hole := physics.NewTaggedBox(physics.TypeIgnore, position, types.XYZ(1, 1, 1))
	l.addLinkedCollider(areaKey, key, key, physics.NewHoledBox(position, scale, hole))
	return mesh
}

// Add a lamp with its light. The light is switched on.
func (l *Level) AddLight(key string, position types.Vec3, meshMaterial, edgeMaterial *scene.Material) *scene.PointLight {
	meshKey := key + " mesh"

	lamp := scene.NewMesh(lightModel)
	lamp.Material = meshMaterial
	l.Scene.AttachRoot(meshKey, lamp)
	lamp.Translate(position)

	edge := scene.NewMesh(lightEdgeModel)
	edge.Material = edgeMaterial
	l.Scene.AttachChild(meshKey, key+" edge", edge)

	light := scene.NewPointLight(position, types.White)
	l.Scene.AttachChild(meshKey, key, light)
	return light
}

// Add a light volume controlling lights. The lights are switched off until
// the player enters the volume.
func (l *Level) AddLightBox(parentKey, key string, position, halfExtent types.Vec3, lights ...scene.Light) *physics.LightBox {
	volume := physics.NewLightBox(position, halfExtent)
	for _, light := range lights {
		volume.AddLight(light)
	}
	l.Colliders.AddChildCollider(parentKey, key, volume)
	return volume
}

// Add a color block with its mesh, light and colored collider.
func (l *Level) AddColorBlock(key string, position types.Vec3, color types.Color, areaKey string) *ColorBlock {
	block := NewColorBlock(color)
	l.Scene.AttachRoot(key, block)

	meshKey := key + " mesh"
	block.Mesh = scene.NewMesh(cubeModel)
	block.Mesh.Material = &block.Material
	l.Scene.AttachChild(key, meshKey, block.Mesh)
	block.Mesh.Translate(position)

	block.Light = scene.NewPointLight(position, color)
	l.Scene.AttachChild(meshKey, key+" light", block.Light)

	block.Collider = physics.NewColoredBox(position, block.Mesh.Scaling, &block.Color)
	l.addLinkedCollider(areaKey, key, meshKey, block.Collider)

	l.Blocks = append(l.Blocks, block)
	return block
}

// Add the pedestal shown below a color block.
func (l *Level) AddCubeHolder(key string, position types.Vec3) *scene.Mesh {
	holder := scene.NewMesh(cubeModel)
	holder.Material = l.Material("dark gray", types.DarkGray, 89.2)
	l.Scene.AttachRoot(key, holder)
	holder.Translate(types.XYZ(position[0], position[1]-1.5, position[2]))
	holder.Scale(types.XYZ(1.5, 0.66, 1.5))
	return holder
}

// Add a door. Doors start closed.
func (l *Level) AddDoor(key string, position, scale types.Vec3, color types.Color, model, areaKey string) *Door {
	door := NewDoor(color)
	l.Scene.AttachRoot(key, door)

	meshKey := key + " mesh"
	door.Mesh = scene.NewMesh(model)
	door.Mesh.Material = &door.Material
	l.Scene.AttachChild(key, meshKey, door.Mesh)
	door.Mesh.Translate(position)
	door.Mesh.Scale(scale)

	door.Collider = physics.NewTaggedBox(physics.TypeDoor, position, scale)
	l.addLinkedCollider(areaKey, key, meshKey, door.Collider)

	l.Doors = append(l.Doors, door)
	return door
}

// Add a pair of linked teleporters registered as key and "key other".
func (l *Level) AddTeleporters(key string, position, otherPosition types.Vec3, areaKey string) (*physics.Teleporter, *physics.Teleporter) {
	half := types.XYZ(teleporterHalfExtent, teleporterHalfExtent, teleporterHalfExtent)
	a := physics.NewTeleporter(position, half)
	b := physics.NewTeleporter(otherPosition, half)
	physics.Pair(a, b)

	l.Colliders.AddChildCollider(areaKey, key, a)
	l.Colliders.AddChildCollider(areaKey, key+" other", b)
	return a, b
}

// Add the volume of the final tower.
func (l *Level) AddFinalTower(parentKey, key string, position, halfExtent types.Vec3) *physics.Box {
	tower := physics.NewTaggedBox(physics.TypeFinalTower, position, halfExtent)
	l.Colliders.AddChildCollider(parentKey, key, tower)
	return tower
}

// Propagate transforms and collider geometry so the level can be queried
// before the first tick.
func (l *Level) Settle() {
	l.Scene.UpdateAll()
	l.Colliders.Update()
}

// Refresh doors and color blocks. Doors follow the color of the player.
func (l *Level) UpdateObjects(dt float32) {
	for _, door := range l.Doors {
		door.UpdateState(l.Player.Color)
	}
	for _, block := range l.Blocks {
		block.Update(dt)
	}
}

func (l *Level) addStaticMesh(key, model string, position, scale types.Vec3, material *scene.Material) *scene.Mesh {
	mesh := scene.NewMesh(model)
	mesh.Material = material
	l.Scene.AttachRoot(key, mesh)
	mesh.Translate(position)
	mesh.Scale(scale)
	return mesh
}

func (l *Level) addLinkedCollider(areaKey, key, sceneKey string, c physics.Collider) {
	if areaKey == "" {
		areaKey = WorldKey
	}
	l.Colliders.AddChildCollider(areaKey, key, c)
	l.Colliders.LinkToNode(l.Scene, key, sceneKey)
}
