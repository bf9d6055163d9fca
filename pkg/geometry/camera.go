package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a look-from/look-at thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 `json:"lookFrom"`
	LookAt        core.Vec3 `json:"lookAt"`
	Up            core.Vec3 `json:"up"`
	VFov          float64   `json:"vfov"`          // vertical field of view in degrees
	AspectRatio   float64   `json:"aspectRatio"`   // width / height
	Aperture      float64   `json:"aperture"`      // lens diameter, 0 = pinhole
	FocusDistance float64   `json:"focusDistance"` // 0 = distance from LookFrom to LookAt
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.LookFrom.IsZero() {
		result.LookFrom = override.LookFrom
	}
	if !override.LookAt.IsZero() {
		result.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates world-space primary rays
type Camera struct {
	eye             core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	forward         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// w points backwards, away from the scene
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := config.LookFrom.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		eye:             config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		forward:         w.Negate(),
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay returns the ray through normalized image coordinates (s, t) in [0,1]²,
// with t = 0 at the bottom edge. The origin is jittered across the lens.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.eye
	if c.lensRadius > 0 {
		rd := sampler.UnitDisk().Multiply(c.lensRadius)
		origin = c.eye.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	return core.NewRay(origin, target.Subtract(origin))
}

// Position returns the eye point
func (c *Camera) Position() core.Vec3 {
	return c.eye
}

// Forward returns the unit viewing direction, toward LookAt
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}
