package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/torrra/spectrum-retreat-clone/physics"
	"github.com/torrra/spectrum-retreat-clone/types"
)

const (
	maxPitch float32 = 80.0

	// Clip distances used for the projection matrix.
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 100.0
)

var worldUp = types.XYZ(0, 1, 0)

// The camera type controls the first person view. Orientation is expressed
// as yaw/pitch angles in degrees.
type Camera struct {
	Position types.Vec3

	Front types.Vec3
	Right types.Vec3
	Up    types.Vec3

	Yaw   float32
	Pitch float32

	// Vertical field of view in degrees.
	FOV float32

	MoveIncrement float32
	PitchSpeed    float32
	YawSpeed      float32

	// Build frustum planes using the point magnitude as plane distance.
	LegacyPlanes bool

	ViewProjection types.Mat4

	lastCursor types.Vec2
	cursorSeen bool
}

// CameraInput carries the per-frame window state consumed by the camera.
type CameraInput struct {
	Cursor       types.Vec2
	CursorLocked bool
	Aspect       float32
}

// Create a camera looking down the negative X axis.
func NewCamera(position types.Vec3, fov, moveIncrement, pitchSpeed, yawSpeed float32) *Camera {
	c := &Camera{
		Position:       position,
		Yaw:            180,
		FOV:            fov,
		MoveIncrement:  moveIncrement,
		PitchSpeed:     pitchSpeed,
		YawSpeed:       yawSpeed,
		ViewProjection: mgl32.Ident4(),
	}
	c.updateVectors()
	return c
}

func (c *Camera) ObjectType() ObjectType {
	return ObjectCamera
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera pos: (%3.3f, %3.3f, %3.3f) yaw: %3.3f pitch: %3.3f front: (%3.3f, %3.3f, %3.3f)",
		c.Position[0], c.Position[1], c.Position[2],
		c.Yaw, c.Pitch,
		c.Front[0], c.Front[1], c.Front[2],
	)
}

func (c *Camera) SetYaw(degrees float32) {
	c.Yaw = degrees
	c.updateVectors()
}

func (c *Camera) SetPitch(degrees float32) {
	c.Pitch = degrees
	c.updateVectors()
}

// Apply a rotation delta scaled by the camera speeds. Pitch is clamped and
// yaw wraps around at 360 degrees.
func (c *Camera) ProcessCameraRotation(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.YawSpeed
	c.Pitch += deltaY * c.PitchSpeed

	c.Pitch = mgl32.Clamp(c.Pitch, -maxPitch, maxPitch)
	c.Yaw = math32.Mod(c.Yaw, 360)

	c.updateVectors()
}

// Rotate the camera using an absolute cursor position. The first sample
// only records the cursor.
func (c *Camera) ProcessMouseMovement(cursor types.Vec2) {
	if !c.cursorSeen {
		c.lastCursor = cursor
		c.cursorSeen = true
		return
	}

	deltaX := cursor[0] - c.lastCursor[0]
	deltaY := c.lastCursor[1] - cursor[1]
	c.lastCursor = cursor

	c.ProcessCameraRotation(deltaX, deltaY)
}

func (c *Camera) ViewMatrix() types.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) ProjectionMatrix(aspect, near, far float32) types.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, near, far)
}

// Process input and cache the view projection matrix for this frame.
func (c *Camera) UpdateCamera(in CameraInput) {
	if in.CursorLocked {
		c.ProcessMouseMovement(in.Cursor)
	}

	aspect := in.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.ViewProjection = c.ProjectionMatrix(aspect, DefaultNear, DefaultFar).Mul4(c.ViewMatrix())
}

// Build the view frustum. All plane normals point into the view volume.
func (c *Camera) CameraFrustum(aspect, near, far float32) physics.Frustum {
	front := types.Normalize(c.Front)
	right := types.Normalize(front.Cross(c.Up))
	up := right.Cross(front)

	halfFarHeight := far * math32.Tan(mgl32.DegToRad(c.FOV)*0.5)
	halfFarWidth := halfFarHeight * aspect
	frontFar := front.Mul(far)

	// The standard near plane passes through the camera so boxes around the
	// eye are never culled; clipping closer than near is left to the
	// projection.
	plane := physics.PlaneFromPoint
	nearPoint := c.Position
	if c.LegacyPlanes {
		plane = physics.LegacyPlaneFromPoint
		nearPoint = c.Position.Add(front.Mul(near))
	}

	var f physics.Frustum
	f.Planes[physics.Near] = plane(nearPoint, front)
	f.Planes[physics.Far] = plane(c.Position.Add(frontFar), front.Mul(-1))
	f.Planes[physics.Right] = plane(c.Position, up.Cross(frontFar.Add(right.Mul(halfFarWidth))))
	f.Planes[physics.Left] = plane(c.Position, frontFar.Sub(right.Mul(halfFarWidth)).Cross(up))
	f.Planes[physics.Top] = plane(c.Position, frontFar.Add(up.Mul(halfFarHeight)).Cross(right))
	f.Planes[physics.Bottom] = plane(c.Position, right.Cross(frontFar.Sub(up.Mul(halfFarHeight))))
	return f
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	c.Front = types.Normalize(types.XYZ(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	))
	c.Right = types.Normalize(c.Front.Cross(worldUp))
	c.Up = types.Normalize(c.Right.Cross(c.Front))
}
