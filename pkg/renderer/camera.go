package renderer

import (
	"math"
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// CameraConfig describes a camera placement and lens
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Target position
	VUp           core.Vec3 // World-space up used to derive the camera basis
	VFovDegrees   float64   // Vertical field of view
	AspectRatio   float64   // Width over height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the plane in perfect focus
	Time0, Time1  float64   // Shutter open/close interval for motion blur
}

// Camera maps normalized image-plane coordinates plus a defocus sample to a
// world-space ray. Immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera derives the orthonormal camera frame and viewport from the config
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFovDegrees * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(viewportWidth * cfg.FocusDistance)
	vertical := v.Multiply(viewportHeight * cfg.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// Ray generates the ray through normalized image coordinates (s, t) with a
// thin-lens defocus sample and a shutter time drawn from the interval.
func (c *Camera) Ray(s, t float64, rng *rand.Rand) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(rng).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.time0 + rng.Float64()*(c.time1-c.time0)

	return core.NewRay(c.origin.Add(offset), direction, time)
}
