package game

import (
	"github.com/torrra/spectrum-retreat-clone/types"
)

// Model asset keys.
const (
	floorModel     = "TriFloor.obj"
	wallModel      = "wallV10R.obj"
	wallModel2     = "wallV10.obj"
	wallModelHole  = "wallV10RHole.obj"
	wallModel2Hole = "wallV10Hole.obj"
	cubeModel      = "cube.obj"
	lightModel     = "Light.obj"
	lightEdgeModel = "LightEdge.obj"
)

type slabKind uint8

const (
	wall slabKind = iota
	floor
	holedWall
)

type slabSpec struct {
	kind  slabKind
	key   string
	model string
	pos   types.Vec3
	scale types.Vec3
	area  string
}

type doorSpec struct {
	key   string
	pos   types.Vec3
	scale types.Vec3
	color types.Color
	model string
	area  string
}

type areaSpec struct {
	parent     string
	key        string
	pos        types.Vec3
	halfExtent types.Vec3
}

func v(x, y, z float32) types.Vec3 {
	return types.Vec3{x, y, z}
}

var (
	wallScale  = v(1, 3, 5)
	wallScaleR = v(5, 3, 1)
)

// Partition volumes. No collision inside a volume is tested unless the
// player overlaps it.
var levelOneAreas = []areaSpec{
	{WorldKey, "underground", v(25.1362, -5, -7.19665), v(100, 5, 100)},
	{WorldKey, "ground level", v(0, 1.5, 0), v(100, 1.5, 100)},
	{WorldKey, "second level", v(0, 5.9, 0), v(100, 3.5, 100)},
	{"ground level", "starting area", v(25, 1.5, 25), v(80, 1.5, 80)},
	{"ground level", "area2", v(-25, -0.3, 25), v(50, 10, 60)},
	{"ground level", "area3", v(-25, -0.3, -25), v(35, 10, 35)},
	{"ground level", "area4", v(25, -0.3, -25), v(35, 10, 35)},
	{"second level", "areasec1", v(25, 5.9, 25), v(35, 10, 35)},
	{"second level", "areasec2", v(-25, 5.9, 25), v(35, 10, 35)},
	{"second level", "areasec3", v(-25, 5.9, -25), v(35, 10, 35)},
	{"second level", "areasec4", v(25, 5.9, -25), v(35, 10, 35)},
}

// Ceilings, upper floors and the stairs leading to the second level.
var ceilings = []slabSpec{
	{floor, "ceil1", floorModel, v(-10.2, 5.9, -13.9), v(60, 1, 30), WorldKey},
	{floor, "ceil2", floorModel, v(38.7, 5.9, 35), v(15, 1, 20), "areasec1"},
	{floor, "ceil3", floorModel, v(-16, 5.9, 50), v(40, 1, 20), "areasec2"},
	{floor, "ceil4", floorModel, v(-25, 5.9, 23), v(29.7, 1, 7), "areasec2"},
	{floor, "ceil5", floorModel, v(16, 11.9, 16), v(15, 1, 15), WorldKey},
	{floor, "ceil6", floorModel, v(8, 5.9, 74), v(35, 1, 19), "areasec1"},
	{floor, "ceil7", floorModel, v(15, 5.9, -43), v(35, 1, 5), "areasec4"},
	{floor, "stair1", floorModel, v(19.4, 5, 17), v(5, 1, 1), WorldKey},
	{floor, "stair2", floorModel, v(19.4, 4, 20), v(5, 1, 1), WorldKey},
	{floor, "stair3", floorModel, v(19.4, 3, 23), v(5, 1, 1), WorldKey},
	{floor, "stair4", floorModel, v(19.4, 2, 26), v(5, 1, 1), WorldKey},
	{floor, "stair5", floorModel, v(19.4, 1, 29), v(5, 1, 1), WorldKey},
}

var startingArea = []slabSpec{
	{holedWall, "wall10", wallModel2Hole, v(35, 2.7, 20), wallScale, "starting area"},
	{holedWall, "wall10a", wallModelHole, v(30, 2.7, 15), wallScaleR, "starting area"},
	{holedWall, "wall10b", wallModelHole, v(-10, 2.7, -10), v(5, 1, 1), "starting area"},
	{holedWall, "wall17", wallModelHole, v(5, 2.7, 5), wallScaleR, "starting area"},
	{wall, "wall5", wallModel, v(45, 2.7, 40), wallScaleR, "starting area"},
	{wall, "wall5b", wallModel, v(37, 2.7, 40), v(3, 3, 1), "starting area"},
	{wall, "wall6", wallModel2, v(24.8, 2.7, 45), wallScale, "starting area"},
	{wall, "wall6b", wallModel2, v(24.8, 2.7, 35), wallScale, "starting area"},
	{wall, "wall6c", wallModel2, v(24.8, 2.7, 25), wallScale, "starting area"},
	{wall, "wall6d", wallModel2, v(24.8, 2.7, 15), wallScale, "starting area"},
	{wall, "wall8", wallModel2, v(35, 2.7, 35.1), v(1, 3, 5), "starting area"},
	{wall, "wall2", wallModel, v(45, 2.7, 50), wallScaleR, "starting area"},
	{wall, "wall2a", wallModel, v(35, 2.7, 50), wallScaleR, "starting area"},
	{wall, "wall2b", wallModel, v(25, 2.7, 50), wallScaleR, "starting area"},
	{wall, "wall2c", wallModel, v(15, 2.7, 50), wallScaleR, "starting area"},
	{wall, "wall4", wallModel2, v(50, 2.7, 45), wallScale, "starting area"},
	{wall, "wall4b", wallModel2, v(50, 2.7, 35), wallScale, "starting area"},
	{wall, "wall4c", wallModel2, v(50, 2.7, 25), wallScale, "starting area"},
	{wall, "wall4d", wallModel2, v(50, 2.7, 15), wallScale, "starting area"},
	{wall, "wall4e", wallModel2, v(50, 2.7, 5), wallScale, "starting area"},
	{wall, "wall4f", wallModel2, v(50, 2.7, 5), wallScale, "starting area"},
	{wall, "wall12", wallModel2, v(35, 2.7, 10), wallScale, "starting area"},
	{wall, "wall12b", wallModel2, v(35, 2.7, 0), wallScale, "starting area"},
	{wall, "wall14", wallModel2, v(24.8, 2.7, 5), wallScale, "starting area"},
	{wall, "wall16", wallModel, v(20, 2.7, 15), wallScaleR, "starting area"},
	{wall, "wall16b", wallModel, v(10, 2.7, 15), wallScaleR, "starting area"},
	{wall, "wall16c", wallModel, v(0, 2.7, 15), wallScaleR, "starting area"},
	{wall, "wall28", wallModel2, v(10.1, 2.7, 4.1), v(1, 3, 1), "starting area"},
	{wall, "wall45", wallModel, v(20, 2.7, 39.5), v(5, 3, 1), "starting area"},
	{wall, "wall46", wallModel, v(7.4, 2.7, 50), v(2.6, 3, 1), "starting area"},
	{wall, "wall67", wallModel2, v(42.5, 2.7, 67), v(1, 3, 15), "starting area"},
	{wall, "wall68", wallModel, v(4, 2.7, 50), v(10, 3, 1), "starting area"},
	{wall, "wall70", wallModel, v(10, 2.7, 82), v(35, 3, 1), "starting area"},
	{wall, "wall72", wallModel, v(8.5, 2.7, 72), v(24.5, 3, 1), WorldKey},
	{floor, "floor1", floorModel, v(37.5, -0.3, 45), v(12.7, 1, 4.9), "starting area"},
	{floor, "floor2", floorModel, v(29.9, -0.3, 27.6), v(5.1, 1, 12.5), "starting area"},
	{floor, "floor3", floorModel, v(42.4, -0.3, 17), v(7.5, 1, 22.9), "starting area"},
	{floor, "floor5", floorModel, v(29.9, -0.3, 4.5), v(5, 1, 10.4), "starting area"},
	{floor, "floor22", floorModel, v(14.8, -0.3, 45), v(10, 1, 5), "starting area"},
	{floor, "floor23", floorModel, v(4.6, -0.3, 35), v(20, 1, 5), WorldKey},
	{floor, "floor24", floorModel, v(19.8, -0.3, 22.6), v(5, 1, 7.4), "starting area"},
	{floor, "floor33", floorModel, v(3.4, -0.3, 55), v(3, 1, 5), "starting area"},
	{floor, "ceil8", floorModel, v(52, -0.3, 38), v(20, 1, 5), "starting area"},
	{wall, "wall99", wallModel, v(14, 8.9, 30.5), v(10, 3, 1), "second level"},
	{wall, "wall100", wallModel2, v(4.5, 8.9, 17), v(1, 3, 15), "second level"},
	{wall, "wall101", wallModel, v(14, 8.9, 3), v(10, 3, 1), "second level"},
	{wall, "wall102", wallModel2, v(24, 8.9, 17), v(1, 3, 15), "second level"},
	{wall, "wall103", wallModel2, v(15, 8.7, 23), v(1, 3, 7.5), "second level"},
}

var areaTwo = []slabSpec{
	{holedWall, "wall17b", wallModelHole, v(-5, 2.7, 5), wallScaleR, "area2"},
	{holedWall, "wall81", wallModel2Hole, v(-25.5, 2.7, 13.4), v(1, 3, 2), "area2"},
	{holedWall, "wall82", wallModelHole, v(20, 2.7, -24.9), v(5, 3, 1), "area2"},
	{holedWall, "wall74", wallModelHole, v(-34, 2.7, 5), wallScaleR, "area2"},
	{wall, "wall16d", wallModel, v(-10, 2.7, 15), wallScaleR, "area2"},
	{wall, "wall17c", wallModel, v(-15, 2.7, 5), wallScaleR, "area2"},
	{wall, "wall23", wallModel2, v(-15.2, 2.7, 4.1), v(1, 3, 1), "area2"},
	{wall, "wall24", wallModel2, v(-24.1, 2.7, 0), v(1, 3, 5.1), "area2"},
	{wall, "wall25", wallModel2, v(-15.2, 2.7, 12.5), v(1, 3, 7.5), "area2"},
	{wall, "wall47", wallModel, v(-0.3, 2.7, 30), v(15.2, 3, 1), "area2"},
	{wall, "wall48", wallModel, v(-5.3, 2.7, 40), v(10.1, 3, 1), "area2"},
	{wall, "wall50", wallModel2, v(14.8, 2.7, 22.7), v(1, 3, 7.2), WorldKey},
	{wall, "wall51", wallModel2, v(4.8, 2.7, 45), v(1, 3, 5.1), "area2"},
	{wall, "wall52", wallModel2, v(4.5, 2.7, 23), v(1, 3, 7), "area2"},
	{wall, "wall53", wallModel2, v(-15.6, 2.7, 55), v(1, 3, 7), "area2"},
	{wall, "wall54", wallModel2, v(-5.4, 2.7, 45), v(1, 3, 5), "area2"},
	{wall, "wall55", wallModel2, v(-25.4, 2.7, 6.4), v(1, 3, 1), "area2"},
	{wall, "wall56", wallModel2, v(-25.4, 2.7, 23), v(1, 3, 8), "area2"},
	{wall, "wall57", wallModel2, v(-25.4, 2.7, 39), v(1, 3, 1), "area2"},
	{wall, "wall58", wallModel2, v(-25.4, 2.7, 49), v(1, 3, 3), "area2"},
	{wall, "wall59", wallModel2, v(-25.4, 2.7, 63), v(1, 3, 5), "area2"},
	{wall, "wall59a", wallModel2, v(14.5, -3.3, 23), v(1, 3, 7.5), WorldKey},
	{wall, "wall59b", wallModel2, v(4.5, -3.3, 23), v(1, 3, 7.5), WorldKey},
	{wall, "wall59c", wallModel2, v(14.5, -9.3, 23), v(1, 3, 7.5), WorldKey},
	{wall, "wall59d", wallModel2, v(4.5, -9.3, 23), v(1, 3, 7.5), WorldKey},
	{wall, "wall59e", wallModel2, v(14.5, -15.3, 23), v(1, 3, 7.5), WorldKey},
	{wall, "wall59f", wallModel2, v(4.5, -15.3, 23), v(1, 3, 7.5), WorldKey},
	{wall, "wall59g", wallModel, v(9.5, -3.3, 30), wallScaleR, WorldKey},
	{wall, "wall59i", wallModel, v(9.5, -9.3, 30), wallScaleR, WorldKey},
	{wall, "wall59j", wallModel, v(9.5, -9.3, 16), wallScaleR, WorldKey},
	{wall, "wall59k", wallModel, v(9.5, -15.3, 30), wallScaleR, WorldKey},
	{wall, "wall59l", wallModel, v(9.5, -15.3, 16), wallScaleR, WorldKey},
	{wall, "wall60", wallModel2, v(-32.4, 2.7, 48), v(1, 3, 10), "area2"},
	{wall, "wall61", wallModel2, v(-40, 2.7, 44), v(1, 3, 6), "area2"},
	{wall, "wall62", wallModel2, v(-47, 2.7, 52), v(1, 3, 6), "area2"},
	{wall, "wall64", wallModel, v(-40, 2.7, 38), v(15, 3, 1), "area2"},
	{wall, "wall65", wallModel, v(-40, 2.7, 68), v(15, 3, 1), "area2"},
	{wall, "wall66", wallModel, v(-40, 2.7, 58), v(7, 3, 1), "area2"},
	{wall, "wall69", wallModel2, v(-25, 2.7, 75), v(1, 3, 7), "area2"},
	{wall, "wall73", wallModel, v(-10.7, 2.7, 62), v(5.3, 3, 1), "area2"},
	{wall, "wall75", wallModel, v(-35.7, 2.7, 15), v(10, 3, 1), "area2"},
	{wall, "wall95", wallModel, v(-30.5, 2.7, 28), v(5, 3, 1), "area2"},
	{wall, "wall96", wallModel2, v(-34.5, 2.7, 33), v(1, 3, 5), "area2"},
	{wall, "wall97", wallModel, v(-10, 2.7, 50), v(5, 3, 1), "area2"},
	{wall, "wall98", wallModel2, v(-15.6, 2.7, 44.4), v(1, 3, 5), "area2"},
	{floor, "floor32", floorModel, v(-8.4, -0.3, 67), v(7, 1, 5), "area2"},
	{floor, "floor34", floorModel, v(13.4, -0.3, 67), v(5, 1, 5), WorldKey},
	{floor, "floor35", floorModel, v(25.4, -0.3, 55), v(5, 1, 5), WorldKey},
	{floor, "floor36", floorModel, v(37.4, -0.3, 67), v(5, 1, 5), WorldKey},
	{floor, "floor37", floorModel, v(9, -0.3, 77), v(34, 1, 5), WorldKey},
	{floor, "floor38", floorModel, v(-20.4, -0.3, 67), v(5, 1, 6), "area2"},
	{floor, "floor39", floorModel, v(9.7, -18.3, 23.1), v(5, 1, 7), WorldKey},
	{floor, "floor40", floorModel, v(-35.4, -0.3, 10), v(10, 1, 5), "area2"},
	{floor, "floor8", floorModel, v(-8.5, -0.3, 10), v(6.6, 1, 5), "area2"},
	{floor, "floor25", floorModel, v(-20.4, -0.3, 35), v(5, 1, 30), "area2"},
	{floor, "floor26", floorModel, v(-10.4, -0.3, 45), v(5, 1, 5), "area2"},
	{floor, "floor27", floorModel, v(-30.4, -0.3, 33), v(5, 1, 5), "area2"},
	{floor, "floor28", floorModel, v(-45.4, -0.3, 53), v(20, 1, 15), "area2"},
}

var areaThree = []slabSpec{
	{wall, "wall18c", wallModel, v(-10, 2.7, -5), wallScaleR, "area3"},
	{wall, "wall18d", wallModel, v(-20, 2.7, -5), wallScaleR, "area3"},
	{wall, "wall20", wallModel, v(-1, 2.7, -24.9), v(1, 3, 1), "area3"},
	{wall, "wall22", wallModel2, v(-15.2, 2.7, -4.1), v(1, 3, 1), "area3"},
	{wall, "wall76", wallModel, v(-35.7, 2.7, -15), v(10, 3, 1), "area3"},
	{wall, "wall77", wallModel2, v(-25.5, 2.7, -5), v(1, 3, 10), "area3"},
	{floor, "floor29", floorModel, v(-20, -0.3, -31), v(5, 1, 4), "area3"},
	{floor, "floor30", floorModel, v(-6, -0.3, -20), v(9, 1, 19.1), "area3"},
	{floor, "floor41", floorModel, v(-35.4, -0.3, -5), v(10, 1, 10), "area3"},
}

var areaFour = []slabSpec{
	{wall, "wall1", wallModel, v(0, 2.7, -45), v(50, 3, 1), "area4"},
	{wall, "wall3", wallModel2, v(-55, 2.7, 10), v(1, 3, 60), WorldKey},
	{wall, "wall4g", wallModel2, v(50, 2.7, -5), wallScale, "area4"},
	{wall, "wall4h", wallModel2, v(50, 2.7, -15), wallScale, "area4"},
	{wall, "wall9", wallModel, v(36.9, 2.7, -5.2), v(2, 3, 1), "area4"},
	{wall, "wall11", wallModel, v(47.9, 2.7, -5.2), v(2, 3, 1), "area4"},
	{wall, "wall13", wallModel, v(45, 2.7, -15), v(5, 3, 1), "area4"},
	{wall, "wall13b", wallModel, v(35, 2.7, -15), v(5, 3, 1), "area4"},
	{wall, "wall13c", wallModel, v(28, 2.7, -15), v(2.5, 3, 1), "area4"},
	{wall, "wall15", wallModel2, v(24.8, 2.7, -10), v(1, 3, 5), "area4"},
	{wall, "wall17d", wallModel, v(-25, 2.7, 5), v(5, 3, 1), WorldKey},
	{wall, "wall18", wallModel, v(10, 2.7, -5), v(5, 3, 1), "area4"},
	{wall, "wall18b", wallModel, v(0, 2.7, -5), v(5, 3, 1), "area4"},
	{wall, "wall19", wallModel, v(10, 2.7, -24.9), v(5, 3, 1), "area4"},
	{wall, "wall21", wallModel, v(11, 2.7, -45), v(14, 3, 1), "area4"},
	{wall, "wall26", wallModel2, v(24.8, 2.7, -20), wallScale, "area4"},
	{wall, "wall26b", wallModel2, v(24.8, 2.7, -30), wallScale, "area4"},
	{wall, "wall26c", wallModel2, v(24.8, 2.7, -40), wallScale, "area4"},
	{wall, "wall27", wallModel2, v(0, 2.7, -10), wallScale, "area4"},
	{wall, "wall27b", wallModel2, v(0, 2.7, -20), wallScale, "area4"},
	{wall, "wall27c", wallModel2, v(0, 2.7, -30), wallScale, "area4"},
	{wall, "wall27d", wallModel2, v(0, 2.7, -40), wallScale, "area4"},
	{wall, "wall29", wallModel2, v(10.1, 2.7, -4.1), v(1, 3, 1), "area4"},
	{wall, "wall30", wallModel2, v(0, 2.7, 4.1), v(1, 3, 1), "area4"},
	{wall, "wall31", wallModel2, v(0, 2.7, -4.1), v(1, 3, 1), "area4"},
	{wall, "wall78", wallModel2, v(-45, 2.7, 0), v(1, 3, 15), WorldKey},
	{floor, "floor4", floorModel, v(37.5, -0.3, -10.4), v(12.6, 1, 4.5), "area4"},
	{floor, "floor6", floorModel, v(11.5, -0.3, -4.9), v(13.4, 1, 19.9), WorldKey},
	{floor, "floor7", floorModel, v(11.4, -0.3, -34.9), v(13.3, 1, 10.1), "area4"},
	{floor, "floor9", floorModel, v(-8.6, -0.3, 0), v(6.7, 1, 5), WorldKey},
	{floor, "floor10", floorModel, v(-19.6, -6.3, 0), v(4.4, 1, 5), WorldKey},
	{floor, "floor31", floorModel, v(45, -0.3, -30), v(21, 1, 20), "area4"},
}

var underground = []slabSpec{
	{wall, "wall32", wallModel, v(-19.7, -3.5, -5), v(4.5, 3, 1), "underground"},
	{wall, "wall33", wallModel2, v(-24.1, -3.5, 0), v(1, 3, 5), "underground"},
	{wall, "wall34", wallModel, v(-19.7, -3.5, 5), v(4.5, 3, 1), "underground"},
	{wall, "wall35", wallModel2, v(-15.3, -3.5, -16), v(1, 3, 11), "underground"},
	{wall, "wall36", wallModel2, v(-15.3, -3.5, 9), v(1, 3, 6), "underground"},
	{wall, "wall37", wallModel2, v(-5.1, -3.5, -15), v(1, 3, 20), "underground"},
	{wall, "wall38", wallModel, v(-15.2, -3.5, -35), v(10, 3, 1), "underground"},
	{wall, "wall39", wallModel, v(-20.2, -3.5, -27), v(5, 3, 1), "underground"},
	{wall, "wall40", wallModel, v(-0.2, -3.5, 15), v(15, 3, 1), "underground"},
	{wall, "wall42", wallModel2, v(-25.1, -3.5, -31), v(1, 3, 3.9), "underground"},
	{wall, "wall83", wallModel, v(0, -3.5, 5.2), v(5, 3, 1), WorldKey},
	{wall, "wall86", wallModel, v(25, -3.5, -12.8), v(3.3, 3, 1), "underground"},
	{wall, "wall87", wallModel, v(25, -3.5, -1.5), v(3.3, 3, 1), "underground"},
	{wall, "wall88", wallModel2, v(28.5, -3.5, -7), v(1, 3, 5.5), "underground"},
	{wall, "wall89", wallModel2, v(21.5, -3.5, -7), v(1, 3, 5.5), "underground"},
	{wall, "wall104", wallModel, v(23, -3.5, -35), v(30, 3, 1), "underground"},
	{wall, "wall105", wallModel2, v(50, -3.5, -2), v(1, 3, 35), "underground"},
	{wall, "wall106", wallModel, v(15, -3.5, 6), v(3, 3, 1), "underground"},
	{wall, "wall90", wallModel, v(45, -3.5, 33), v(10, 3, 1), "underground"},
	{wall, "wall91", wallModel, v(40, -3.5, 43), v(15, 3, 1), "underground"},
	{wall, "wall92", wallModel2, v(35, -3.5, 23), v(1, 3, 10.5), "underground"},
	{wall, "wall93", wallModel2, v(25.5, -3.5, 28.5), v(1, 3, 16), "underground"},
	{wall, "wall94", wallModel2, v(54, -3.5, 38), v(1, 3, 5.5), "underground"},
	{holedWall, "wall85", wallModel2Hole, v(12.5, -3.5, 10), v(1, 3, 5), "underground"},
	{floor, "floor11", floorModel, v(-10.2, -6.3, -7), v(5, 1, 22), "underground"},
	{floor, "floor12", floorModel, v(-15.2, -6.3, -30.9), v(10, 1, 4), "underground"},
	{floor, "floor14", floorModel, v(9.8, -6.3, 6), v(5, 1, 9), "underground"},
	{floor, "floor15", floorModel, v(-0.2, -6.3, 10), v(5, 1, 5), "underground"},
	{floor, "floor16", floorModel, v(9.8, -6.3, -22.2), v(5, 1, 5), "underground"},
	{floor, "floor17", floorModel, v(40.1, -6.3, -22.2), v(5, 1, 5), "underground"},
	{floor, "floor18", floorModel, v(40.1, -6.3, 8), v(5, 1, 5), "underground"},
	{floor, "floor19", floorModel, v(25, -6.3, -7), v(3, 1, 5), "underground"},
	{floor, "floor20", floorModel, v(30, -6.3, 28.1), v(5, 1, 15), "underground"},
	{floor, "floor21", floorModel, v(45, -6.3, 38.1), v(10, 1, 5), "underground"},
}

var levelOneDoors = []doorSpec{
	{"door1", v(35, 2.7, 27.55), v(0.1, 3, 2.5), types.Red, cubeModel, "starting area"},
	{"door2", v(42.4, 2.7, -5.2), v(3.5, 3, 0.1), types.White, cubeModel, "area4"},
	{"door7", v(2.8, 2.7, -24.9), v(2.2, 3, 0.1), types.Red, cubeModel, "area4"},
	{"door6", v(-15.2, 2.7, -0.05), v(0.1, 3, 3.1), types.White, cubeModel, "area3"},
	{"door5", v(0, 2.7, 0), v(0.1, 3, 3.1), types.Red, cubeModel, WorldKey},
	{"door4", v(10.1, 2.7, 0), v(0.1, 3, 3.1), types.White, cubeModel, WorldKey},
	{"door3", v(24.8, 2.7, -2.5), v(0.1, 3, 2.5), types.Red, cubeModel, "area4"},
	{"door8", v(-25.4, 2.7, 9.4), v(0.1, 3, 2), types.White, cubeModel, "area2"},
	{"door9", v(-25.4, 2.7, 43), v(0.1, 3, 3), types.White, cubeModel, "area2"},
	{"door10", v(-25.4, 2.7, 55), v(0.1, 3, 3), types.Green, cubeModel, "area2"},
	{"door12", v(-42, 2.7, 5), v(3, 3, 0.1), types.White, cubeModel, "area2"},
	{"door13", v(-10, -3.5, 4), v(5, 3, 0.1), types.Orange, cubeModel, "underground"},
	{"door14", v(7, -3.5, 5.4), v(5, 3, 0.1), types.Blue, cubeModel, "underground"},
	{"door15", v(-15, 2.7, 67), v(0.1, 3, 5), types.Orange, cubeModel, "area2"},
	{"door16", v(-13, 2.7, 77), v(0.1, 3, 5), types.White, cubeModel, "area2"},
	{"door17", v(30, -3.5, 14), v(5, 3, 0.1), types.Orange, cubeModel, "underground"},
	{"door18", v(15, 2.7, 45), v(0.1, 3, 5.1), types.Orange, cubeModel, "starting area"},
	{"doorF1", v(9.8, -6.3, -10), v(5, 1, 7), types.Blue, floorModel, "underground"},
	{"doorF2", v(24.9, -6.3, -22.2), v(10, 1, 5), types.Green, floorModel, "underground"},
	{"doorF3", v(40.1, -6.3, -7.1), v(5, 1, 10), types.Blue, floorModel, "underground"},
	{"doorF4", v(30, -6.3, 8), v(5, 1, 5), types.White, floorModel, "underground"},
	{"doorF5", v(9.7, -12.3, 23.1), v(5, 1, 7), types.Red, floorModel, WorldKey},
	{"doorF6", v(9.7, -6.3, 23.1), v(5, 1, 7), types.Blue, floorModel, "underground"},
	{"doorF7", v(9.7, -0.3, 23.1), v(5, 1, 7), types.Green, floorModel, WorldKey},
	{"doorF8", v(9.7, 5.7, 23.1), v(5, 1, 7), types.White, floorModel, "areasec1"},
}
