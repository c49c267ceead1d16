package behaviour

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance along the ray)
func RayIntersectSphere(ray Ray, center mgl32.Vec3, radius float32) (bool, float32) {
	oc := ray.Origin.Sub(center)

	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return false, 0
	}
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false, 0
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest hit in front of the origin. Starting inside the sphere counts.
	switch {
	case t1 >= 0:
		return true, t1
	case t2 >= 0:
		return true, t2
	default:
		return false, 0
	}
}

// Pick returns the closest active object whose pick sphere the ray hits.
// Objects with a zero PickRadius are ignored.
func (cm *ComponentManager) Pick(ray Ray) (*GameObject, float32) {
	var best *GameObject
	bestDist := float32(math.MaxFloat32)
	for _, obj := range cm.gameObjects {
		if !obj.Active || obj.PickRadius <= 0 {
			continue
		}
		hit, dist := RayIntersectSphere(ray, obj.Transform.Position, obj.PickRadius)
		if hit && dist < bestDist {
			best, bestDist = obj, dist
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestDist
}
