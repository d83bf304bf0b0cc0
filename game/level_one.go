package game

import (
	"github.com/torrra/spectrum-retreat-clone/scene"
	"github.com/torrra/spectrum-retreat-clone/types"
)

// Material shininess values.
const (
	matteShininess float32 = 89.2
	wallShininess  float32 = 750
	edgeShininess  float32 = 38.4
)

var (
	// Destination on the ground level and entry point in the underground.
	teleporterExit  = v(20, 1.476, 46)
	teleporterEntry = v(30, -4.5, 20)

	finalTowerPosition   = v(9, 0, 23)
	finalTowerHalfExtent = v(6, 20, 6)
)

// Build the first level.
func BuildLevelOne(opts Options) *Level {
	l := NewLevel(opts)

	for _, area := range levelOneAreas {
		l.AddArea(area.parent, area.key, area.pos, area.halfExtent)
	}
	l.AddFinalTower(WorldKey, "final tower", finalTowerPosition, finalTowerHalfExtent)

	white := l.Material("white", types.White, matteShininess)
	lightGray := l.Material("light gray", types.LightGray, wallShininess)

	for _, slabs := range [][]slabSpec{ceilings, startingArea, areaTwo, areaThree, areaFour, underground} {
		for _, s := range slabs {
			switch s.kind {
			case floor:
				l.AddFloor(s.key, s.model, s.pos, s.scale, white, s.area)
			case holedWall:
				l.AddHoledWall(s.key, s.model, s.pos, s.scale, lightGray, s.area)
			default:
				l.AddWall(s.key, s.model, s.pos, s.scale, lightGray, s.area)
			}
		}
	}

	placeLevelOneLights(l)
	placeLevelOneColorBlocks(l)

	for _, d := range levelOneDoors {
		l.AddDoor(d.key, d.pos, d.scale, d.color, d.model, d.area)
	}

	l.AddTeleporters("teleporter", teleporterExit, teleporterEntry, WorldKey)

	l.Settle()
	return l
}

func placeLevelOneLights(l *Level) {
	white := l.Material("white", types.White, matteShininess)
	edge := l.Material("edge", types.Gray, edgeShininess)

	lamp := func(key string, pos types.Vec3) scene.Light {
		return l.AddLight(key, pos, white, edge)
	}

	spawn1 := lamp("spawnPointLight1", v(45, 4.5, 45))
	spawn2 := lamp("spawnPointLight2", v(43, 4.5, 33))
	spawn3 := lamp("spawnPointLight3", v(43, 4.5, 4.5))
	facingSpawn := lamp("light facing spawnpoint", v(15.6557, 4.5, 44.2081))
	corridor := lamp("corridor1", v(30, 4.5, 5.65916))
	rightToHole := lamp("light right to hole", v(8.13134, 4.5, -15.7522))
	aboveHole := lamp("light above hole", v(-8.99016, 4.45205, -0.123407))
	undergroundLight := lamp("underground light", v(25.1362, -1.5, -7.19665))
	undergroundCorridor := lamp("underground corridor light", v(30.5, -1.5, 20))
	light1 := lamp("light1", v(10, -1.4, -22.5))
	light2 := lamp("light2", v(40, -1.4, -22))
	light3 := lamp("light3", v(40, -1.4, 8))
	bottomStairs := lamp("bottom stair light", v(23.0493, 4.5, 37.7347))
	light4 := lamp("light4", v(-20, 4.5, 34.5))
	light5 := lamp("light5", v(-34, 4.5, 10))
	light7 := lamp("light7", v(-29, 4.5, 63))
	light8 := lamp("light8", v(-49, 4.5, 63))
	light9 := lamp("light9", v(-47.5, 4.5, 42))
	light10 := lamp("light10", v(-40, 4.5, 55))
	light11 := lamp("light11", v(-20, 4.5, 72))
	light12 := lamp("light12", v(12, 4.5, 77))
	light13 := lamp("light13", v(15, 10.5, 9.5))

	l.AddLightBox(WorldKey, "lightBox1", v(45, 1, 45), v(40, 2.5, 7), spawn1, facingSpawn)
	l.AddLightBox(WorldKey, "lightBox2", v(45, 1, 5), v(20, 2.5, 35), spawn2, spawn3)
	l.AddLightBox(WorldKey, "corridorBox1", v(35, 1, -15.65916), v(15, 2.5, 30), corridor)
	l.AddLightBox("area4", "box right to hole", v(14.6712, 1.4535, -10.6112), v(15, 2.5, 15), rightToHole)
	l.AddLightBox(WorldKey, "box above hole", v(0, 1, 0), v(25, 2.5, 5), aboveHole)
	l.AddLightBox("underground", "level-1 box", v(25.1362, -5, -7.19665), v(80, 2.5, 80),
		undergroundLight, undergroundCorridor, light1, light2, light3)
	l.AddLightBox("ground level", "backrooms box", v(-36.2, 1.3, 40), v(45, 1.5, 70),
		light4, light5, light7, light8, light9, light10)
	l.AddLightBox(WorldKey, "bottom stairs box", v(5.02217, 1, 34.8133), v(20, 1.5, 15), bottomStairs)
	l.AddLightBox("ground level", "back corridor box", v(12, 1.5, 77), v(45, 1.5, 15), light12)
	l.AddLightBox("ground level", "back level box", v(-20, 1.5, 35), v(60, 1.5, 85), light11)
	l.AddLightBox("second level", "ceiling light box", v(15, 5.5, 9.5), v(35, 3.5, 35), light13)
}

func placeLevelOneColorBlocks(l *Level) {
	block := func(key string, pos types.Vec3, color types.Color) *ColorBlock {
		return l.AddColorBlock(key, pos, color, WorldKey)
	}
	holder := func(key string, b *ColorBlock) {
		l.AddCubeHolder(key, b.Mesh.Position)
	}
	white := l.Material("white", types.White, matteShininess)
	edge := l.Material("edge", types.Gray, edgeShininess)

	spawnCube := block("cube", v(29.8, 2, 20), types.Red)
	cube1 := block("cube1", v(5, 2, 8), types.White)
	cube2 := block("cube2", v(-5, 2, 8), types.Red)
	holder("cubeHolder1", spawnCube)
	holder("cubeHolder2", cube1)
	holder("cubeHolder3", cube2)

	cube3 := block("cube3", v(20, 2, -27), types.Red)
	cube4 := block("cube4", v(20, 2, -35), types.White)
	holder("cubeHolder4", cube3)
	holder("cubeHolder5", cube4)

	cube5 := block("cube5", v(-10, -1.3, 0), types.Orange)
	cube6 := block("cube6", v(15, -3.7, 10), types.Blue)
	cube7 := block("cube7", v(21, -3.5, -7), types.Green)
	cube8 := block("cube8", v(29, -3.5, -7), types.White)
	cube8.Mesh.Scale(v(1.5, 1, 1))
	holder("cubeHolder7", cube6)

	// Moving platforms inside the final tower
	cube9 := block("cube9", v(5, -10, 23), types.White)
	cube10 := block("cube10", v(2, -4, 23), types.White)
	cube11 := block("cube11", v(5, 2, 23), types.White)
	for _, b := range []*ColorBlock{cube9, cube10, cube11} {
		b.Mesh.Scale(v(1.5, 1, 1))
	}
	cube9.SetMovementDirections(2.4, 3, Left, Right)
	cube10.SetMovementDirections(2.4, 3, Right, Left)
	cube11.SetMovementDirections(2.4, 3, Left, Right)

	cube12 := block("cube12", v(-30, 2, 29), types.White)
	cube13 := block("cube13", v(-16.5, 2, 14), types.White)
	cube14 := block("cube14", v(-34, 2, 1), types.White)
	holder("cubeHolder10", cube12)
	holder("cubeHolder11", cube13)
	holder("cubeHolder12", cube14)

	cube15 := block("cube15", v(-34, 2, -5), types.Red)
	cube16 := block("cube16", v(-36.2, 2, 40), types.Green)
	holder("cubeHolder13", cube15)
	holder("cubeHolder14", cube16)

	cube24 := block("cube24", v(-11.5, 2, 81.5), types.White)
	cube24.Mesh.Scale(v(1, 1, 1.5))
	cube24.SetMovementDirections(1.2, 4, Left, Right)

	cube17 := block("cube17", v(4, 2, 54), types.Blue)
	holder("cubeHolder15", cube17)

	cubeRoom := l.AddLight("cube room light", v(11.7971, 4.5, -35.1758), white, edge)
	light14 := l.AddLight("light14", v(13, 4.5, 70), white, edge)
	light15 := l.AddLight("light15", v(37, 4.5, 68), white, edge)

	type volume struct {
		key       string
		pos, half types.Vec3
		lights    []scene.Light
	}
	volumes := []volume{
		{"red cube1 light box", v(40, 1, 35), v(20, 2.5, 55), []scene.Light{spawnCube.Light}},
		{"next to trap", v(3.40729, 2, 11.78987), v(35, 0.1, 20), []scene.Light{cube1.Light, cube2.Light}},
		{"two blue cubes box", v(11.7526, 1, -5.2917), v(30, 2, 50), []scene.Light{cube3.Light, cube4.Light, cubeRoom}},
		{"cubeLight2", v(-10, -2, 0), v(15, 2, 15), []scene.Light{cube5.Light}},
		{"cubeLight3", v(15, -4.4, 10), v(35, 2, 35), []scene.Light{cube6.Light}},
		{"cubeLight4", v(21, -4.2, -7), v(15, 2, 15), []scene.Light{cube7.Light}},
		{"cubeLight5", v(29, -4.2, -7), v(50, 2, 50), []scene.Light{cube8.Light}},
		{"towerBox", v(5, 0, 25), v(50, 50, 35), []scene.Light{cube9.Light, cube10.Light, cube11.Light}},
		{"cubeLight9", v(-30, 1.3, 29), v(25, 2, 30), []scene.Light{cube12.Light}},
		{"cubeLight10", v(-16.5, 1, 14), v(25, 2, 30), []scene.Light{cube13.Light}},
		{"cubeLight11", v(-34, 1.3, 1), v(15, 2, 15), []scene.Light{cube14.Light}},
		{"cubeLight12", v(-34, 1.3, -5), v(15, 2, 15), []scene.Light{cube15.Light}},
		{"cubeLight13", v(-36.2, 1.3, 40), v(7, 2, 25), []scene.Light{cube16.Light}},
		{"cubeLight15", v(15, 1.3, 70), v(35, 2, 35), []scene.Light{cube17.Light, light14, light15}},
		{"cubeLight16", v(-13, 1.3, 82.5), v(60, 2, 50), []scene.Light{cube24.Light}},
	}
	for _, vol := range volumes {
		l.AddLightBox(WorldKey, vol.key, vol.pos, vol.half, vol.lights...)
	}
}
