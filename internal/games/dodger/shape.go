package dodger

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/block-dodger/internal/core"
)

// Shape is the closed set of obstacle variants.
// A shape decides the collision volume and the asset the renderer draws.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeTorus

	shapeCount = 3
)

// Local bounding boxes, as half extents around the obstacle origin.
var shapeHalfExtents = [shapeCount]mgl64.Vec3{
	ShapeBox:    {0.5, 0.5, 0.5}, // 1x1x1 cube
	ShapeSphere: {0.7, 0.7, 0.7}, // radius 0.7
	ShapeTorus:  {0.7, 0.7, 0.2}, // radius 0.5, tube 0.2, lying in the XY plane
}

var shapeAssets = [shapeCount]string{
	ShapeBox:    "box",
	ShapeSphere: "sphere",
	ShapeTorus:  "torus",
}

// ShapeFromUnit maps a uniform value in [0, 1) onto a shape.
func ShapeFromUnit(u float64) Shape {
	idx := int(math.Floor(u * shapeCount))
	return Shape(core.Clamp(idx, 0, shapeCount-1))
}

// String returns the shape name.
func (s Shape) String() string {
	return s.AssetKey()
}

// AssetKey is the identifier the rendering collaborator resolves to a visual.
func (s Shape) AssetKey() string {
	if s < 0 || s >= shapeCount {
		return "unknown"
	}
	return shapeAssets[s]
}

// HalfExtents returns the unrotated local bounding box of the shape.
func (s Shape) HalfExtents() mgl64.Vec3 {
	if s < 0 || s >= shapeCount {
		return mgl64.Vec3{}
	}
	return shapeHalfExtents[s]
}

// WorldBounds returns the axis-aligned box enclosing the shape's local
// bounding box after rotating it by rot (Euler angles, XYZ order) and
// moving it to pos.
func (s Shape) WorldBounds(pos, rot mgl64.Vec3) core.Box3 {
	m := eulerXYZ(rot)
	h := s.HalfExtents()

	var half mgl64.Vec3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			half[row] += math.Abs(m.At(row, col)) * h[col]
		}
	}
	return core.BoxFromCenter(pos, half)
}

// eulerXYZ builds Rx * Ry * Rz.
func eulerXYZ(rot mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DX(rot.X()).
		Mul3(mgl64.Rotate3DY(rot.Y())).
		Mul3(mgl64.Rotate3DZ(rot.Z()))
}
