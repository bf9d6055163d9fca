package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularTransform is returned when a model matrix has no inverse
var ErrSingularTransform = errors.New("model matrix is not invertible")

// singularEpsilon bounds |det| below which a matrix is treated as singular
const singularEpsilon = 1e-12

// Transform is an affine model matrix together with its precomputed inverse.
// The forward matrix maps model space to world space.
type Transform struct {
	matrix  mgl64.Mat4
	inverse mgl64.Mat4
}

// NewTransform validates and inverts an affine model matrix
func NewTransform(matrix mgl64.Mat4) (Transform, error) {
	det := matrix.Det()
	if math.IsNaN(det) || math.Abs(det) < singularEpsilon {
		return Transform{}, fmt.Errorf("%w (det=%g)", ErrSingularTransform, det)
	}
	return Transform{matrix: matrix, inverse: matrix.Inv()}, nil
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{matrix: mgl64.Ident4(), inverse: mgl64.Ident4()}
}

// Translation returns a translation matrix
func Translation(offset Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(offset.X, offset.Y, offset.Z)
}

// Scaling returns a (possibly non-uniform) scaling matrix
func Scaling(factors Vec3) mgl64.Mat4 {
	return mgl64.Scale3D(factors.X, factors.Y, factors.Z)
}

// UniformScaling returns a uniform scaling matrix
func UniformScaling(factor float64) mgl64.Mat4 {
	return mgl64.Scale3D(factor, factor, factor)
}

// Rotation returns a rotation of angle radians about axis
func Rotation(angle float64, axis Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3D(angle, toMgl(axis).Normalize())
}

// Compose multiplies matrices left to right, so the last matrix is applied first
func Compose(matrices ...mgl64.Mat4) mgl64.Mat4 {
	result := mgl64.Ident4()
	for _, m := range matrices {
		result = result.Mul4(m)
	}
	return result
}

// Matrix returns the forward (model to world) matrix
func (t Transform) Matrix() mgl64.Mat4 {
	return t.matrix
}

// Inverse returns the inverse (world to model) matrix
func (t Transform) Inverse() mgl64.Mat4 {
	return t.inverse
}

// TransformPoint maps a model-space point to world space (w = 1)
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return fromMgl(t.matrix.Mul4x1(toMgl(p).Vec4(1)).Vec3())
}

// TransformVector maps a model-space direction to world space (w = 0)
func (t Transform) TransformVector(v Vec3) Vec3 {
	return fromMgl(t.matrix.Mul4x1(toMgl(v).Vec4(0)).Vec3())
}

// InversePoint maps a world-space point to model space (w = 1)
func (t Transform) InversePoint(p Vec3) Vec3 {
	return fromMgl(t.inverse.Mul4x1(toMgl(p).Vec4(1)).Vec3())
}

// InverseVector maps a world-space direction to model space (w = 0)
func (t Transform) InverseVector(v Vec3) Vec3 {
	return fromMgl(t.inverse.Mul4x1(toMgl(v).Vec4(0)).Vec3())
}

// InverseRay maps a world-space ray into model space
func (t Transform) InverseRay(r Ray) Ray {
	return NewRay(t.InversePoint(r.Origin), t.InverseVector(r.Direction))
}

// TransformBox returns the world-space box enclosing the eight transformed corners of box
func (t Transform) TransformBox(box AABB) AABB {
	corners := make([]Vec3, 0, 8)
	for _, x := range [2]float64{box.Min.X, box.Max.X} {
		for _, y := range [2]float64{box.Min.Y, box.Max.Y} {
			for _, z := range [2]float64{box.Min.Z, box.Max.Z} {
				corners = append(corners, t.TransformPoint(NewVec3(x, y, z)))
			}
		}
	}
	return NewAABBFromPoints(corners...)
}

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
