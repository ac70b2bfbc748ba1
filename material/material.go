// Package material implements the Material collaborator contract:
// scatter() for bounce direction + attenuation, emit() for
// light-emitting surfaces. These are external collaborators (their math
// is assumed standard) but are implemented here so the shading kernel
// and end-to-end scenes have something concrete to exercise.
package material

import (
	"math"
	"math/rand"

	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/texture"
	"github.com/loamlabs/pathtrace/vec3"
)

// Lambertian is a matte diffuse surface; scatter direction is the
// normal plus a random unit vector (Lambertian-distributed).
type Lambertian struct {
	Albedo texture.Texture
}

func NewLambertian(albedo texture.Texture) *Lambertian { return &Lambertian{Albedo: albedo} }

func (m *Lambertian) Scatter(rIn ray.Ray, rec *hittable.HitRecord, rng *rand.Rand) (vec3.Vec3, ray.Ray, bool) {
	direction := rec.Normal.Add(vec3.RandomUnitVector(rng))
	if direction.NearZero() {
		direction = rec.Normal
	}
	scattered := ray.New(rec.Point, direction, rIn.Time)
	return m.Albedo.Value(rec.U, rec.V, rec.Point), scattered, true
}

func (m *Lambertian) Emit(u, v float64, p vec3.Vec3) vec3.Vec3 { return vec3.Vec3{} }

// Metal is a reflective surface with an optional fuzz radius.
type Metal struct {
	Albedo vec3.Vec3
	Fuzz   float64
}

func NewMetal(albedo vec3.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rIn ray.Ray, rec *hittable.HitRecord, rng *rand.Rand) (vec3.Vec3, ray.Ray, bool) {
	reflected := vec3.Reflect(rIn.Direction.Unit(), rec.Normal)
	direction := reflected.Add(vec3.RandomInUnitSphere(rng).Scale(m.Fuzz))
	scattered := ray.New(rec.Point, direction, rIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return vec3.Vec3{}, ray.Ray{}, false
	}
	return m.Albedo, scattered, true
}

func (m *Metal) Emit(u, v float64, p vec3.Vec3) vec3.Vec3 { return vec3.Vec3{} }

// Dielectric is a clear refractive material (glass, water) that either
// reflects or refracts depending on angle, with Schlick's approximation
// for the angle-dependent reflectance.
type Dielectric struct {
	RefractionIndex float64
}

func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (m *Dielectric) Scatter(rIn ray.Ray, rec *hittable.HitRecord, rng *rand.Rand) (vec3.Vec3, ray.Ray, bool) {
	ratio := m.RefractionIndex
	if rec.FrontFace {
		ratio = 1.0 / m.RefractionIndex
	}

	unitDirection := rIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction vec3.Vec3
	cannotRefract := ratio*sinTheta > 1.0
	if cannotRefract || schlick(cosTheta, ratio) > rng.Float64() {
		direction = vec3.Reflect(unitDirection, rec.Normal)
	} else {
		direction = vec3.Refract(unitDirection, rec.Normal, ratio)
	}

	scattered := ray.New(rec.Point, direction, rIn.Time)
	return vec3.Vec3{X: 1, Y: 1, Z: 1}, scattered, true
}

func (m *Dielectric) Emit(u, v float64, p vec3.Vec3) vec3.Vec3 { return vec3.Vec3{} }

// schlick approximates the angle-dependent reflectance of glass.
func schlick(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Isotropic scatters uniformly in all directions; used as the phase
// function for ConstantMedium (volumetric fog/smoke).
type Isotropic struct {
	Albedo texture.Texture
}

func NewIsotropic(albedo texture.Texture) *Isotropic { return &Isotropic{Albedo: albedo} }

func (m *Isotropic) Scatter(rIn ray.Ray, rec *hittable.HitRecord, rng *rand.Rand) (vec3.Vec3, ray.Ray, bool) {
	scattered := ray.New(rec.Point, vec3.RandomInUnitSphere(rng), rIn.Time)
	return m.Albedo.Value(rec.U, rec.V, rec.Point), scattered, true
}

func (m *Isotropic) Emit(u, v float64, p vec3.Vec3) vec3.Vec3 { return vec3.Vec3{} }

// DiffuseLight emits a configurable color and scatters nothing.
type DiffuseLight struct {
	Emission texture.Texture
}

func NewDiffuseLight(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (m *DiffuseLight) Scatter(rIn ray.Ray, rec *hittable.HitRecord, rng *rand.Rand) (vec3.Vec3, ray.Ray, bool) {
	return vec3.Vec3{}, ray.Ray{}, false
}

func (m *DiffuseLight) Emit(u, v float64, p vec3.Vec3) vec3.Vec3 {
	return m.Emission.Value(u, v, p)
}
