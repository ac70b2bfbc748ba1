package scene

import (
	"math/rand"

	"github.com/loamlabs/pathtrace/bvh"
	"github.com/loamlabs/pathtrace/camera"
	"github.com/loamlabs/pathtrace/geom"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/material"
	"github.com/loamlabs/pathtrace/texture"
	"github.com/loamlabs/pathtrace/vec3"
)

// Name identifies one of the fixed scenes this package can build
// directly, without a YAML file, mirroring main.rs's single
// random_scene builder plus the reference scenes it dropped.
type Name string

const (
	RandomSpheres    Name = "random_spheres"
	CornellBox       Name = "cornell_box"
	TwoPerlinSpheres Name = "two_perlin_spheres"
	Earth            Name = "earth"
)

// Builtins lists the fixed scenes in the order a CLI usage listing
// should present them, mirroring eg/eg.go's ordered example table.
var Builtins = []struct {
	Name        Name
	Description string
}{
	{RandomSpheres, "random_spheres: field of random spheres with glass/metal/diffuse materials"},
	{CornellBox, "cornell_box: enclosed box scene with area light, two blocks"},
	{TwoPerlinSpheres, "two_perlin_spheres: ground + sphere rendered with marble/turbulence texture"},
	{Earth, "earth: single sphere textured from an image map"},
}

// BuildNamed constructs one of the fixed scenes by name.
func BuildNamed(name Name, aspectRatio float64, rng *rand.Rand) (*Built, error) {
	switch name {
	case RandomSpheres:
		return buildRandomSpheres(aspectRatio, rng), nil
	case CornellBox:
		return buildCornellBox(aspectRatio), nil
	case TwoPerlinSpheres:
		return buildTwoPerlinSpheres(aspectRatio, rng), nil
	case Earth:
		return buildEarth(aspectRatio, rng)
	default:
		return nil, unknownSceneError(name)
	}
}

// A ground plane plus a 22x22 grid of small random-material spheres
// around three large feature spheres (glass, diffuse, metal), wrapped
// in a BVH.
func buildRandomSpheres(aspectRatio float64, rng *rand.Rand) *Built {
	objects := hittable.NewList()

	ground := material.NewLambertian(texture.NewSolidColor(vec3.New(0.5, 0.5, 0.5)))
	objects.Add(geom.NewSphere(vec3.New(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := vec3.New(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())

			if center.Sub(vec3.New(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat hittable.Material
			switch {
			case chooseMat < 0.8:
				albedo := vec3.Random(rng).Mul(vec3.Random(rng))
				mat = material.NewLambertian(texture.NewSolidColor(albedo))
			case chooseMat < 0.95:
				albedo := vec3.RandomRange(rng, 0.5, 1)
				fuzz := rng.Float64() * 0.5
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			objects.Add(geom.NewSphere(center, 0.2, mat))
		}
	}

	glass := material.NewDielectric(1.5)
	objects.Add(geom.NewSphere(vec3.New(0, 1, 0), 1, glass))

	diffuse := material.NewLambertian(texture.NewSolidColor(vec3.New(0.4, 0.2, 0.1)))
	objects.Add(geom.NewSphere(vec3.New(-4, 1, 0), 1, diffuse))

	metal := material.NewMetal(vec3.New(0.7, 0.6, 0.5), 0)
	objects.Add(geom.NewSphere(vec3.New(4, 1, 0), 1, metal))

	world := hittable.NewList()
	world.Add(bvh.Build(objects.Objects, 0, 1, rng))

	cam := camera.New(vec3.New(13, 2, 3), vec3.New(0, 0, 0), vec3.New(0, 1, 0), 20, aspectRatio, 0.1, 10, 0, 1)

	return &Built{World: world, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0)}
}

// buildCornellBox is the classic enclosed-box test scene: five walls
// (floor, ceiling, back, two sides) plus a ceiling light and two
// instanced-and-rotated boxes, the standard way a path tracer exercises
// RectXY/RectXZ/RectYZ, Translate, and RotateY together.
func buildCornellBox(aspectRatio float64) *Built {
	objects := hittable.NewList()

	red := material.NewLambertian(texture.NewSolidColor(vec3.New(0.65, 0.05, 0.05)))
	white := material.NewLambertian(texture.NewSolidColor(vec3.New(0.73, 0.73, 0.73)))
	green := material.NewLambertian(texture.NewSolidColor(vec3.New(0.12, 0.45, 0.15)))
	light := material.NewDiffuseLight(texture.NewSolidColor(vec3.New(15, 15, 15)))

	objects.Add(geom.NewRectYZ(0, 555, 0, 555, 555, green))
	objects.Add(geom.NewRectYZ(0, 555, 0, 555, 0, red))
	objects.Add(geom.NewRectXZ(213, 343, 227, 332, 554, light))
	objects.Add(geom.NewRectXZ(0, 555, 0, 555, 0, white))
	objects.Add(geom.NewRectXZ(0, 555, 0, 555, 555, white))
	objects.Add(geom.NewRectXY(0, 555, 0, 555, 555, white))

	box1 := hittable.Hittable(geom.NewCube(vec3.New(0, 0, 0), vec3.New(165, 330, 165), white))
	box1 = geom.NewRotateY(box1, 15, 0, 1)
	box1 = geom.NewTranslate(box1, vec3.New(265, 0, 295))
	objects.Add(box1)

	box2 := hittable.Hittable(geom.NewCube(vec3.New(0, 0, 0), vec3.New(165, 165, 165), white))
	box2 = geom.NewRotateY(box2, -18, 0, 1)
	box2 = geom.NewTranslate(box2, vec3.New(130, 0, 65))
	objects.Add(box2)

	lookFrom := vec3.New(278, 278, -800)
	lookAt := vec3.New(278, 278, 0)
	cam := camera.New(lookFrom, lookAt, vec3.New(0, 1, 0), 40, aspectRatio, 0, 10, 0, 1)

	return &Built{World: objects, Camera: cam, Background: vec3.Vec3{}}
}

// buildTwoPerlinSpheres exercises the Marble procedural texture (turbulence
// lattice noise, per texture/noise.go, itself grounded on the original's
// textures/marble.rs) on a ground plane and a single feature sphere.
func buildTwoPerlinSpheres(aspectRatio float64, rng *rand.Rand) *Built {
	objects := hittable.NewList()

	marble := material.NewLambertian(texture.NewMarble(rng, 4))
	objects.Add(geom.NewSphere(vec3.New(0, -1000, 0), 1000, marble))
	objects.Add(geom.NewSphere(vec3.New(0, 2, 0), 2, marble))

	cam := camera.New(vec3.New(13, 2, 3), vec3.New(0, 0, 0), vec3.New(0, 1, 0), 20, aspectRatio, 0, 10, 0, 1)

	return &Built{World: objects, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0)}
}

// buildEarth exercises the golang.org/x/image/bmp-backed Image texture
// against a single sphere. It requires an "earthmap.bmp" texture file
// in the current working directory.
func buildEarth(aspectRatio float64, rng *rand.Rand) (*Built, error) {
	img, err := texture.NewImageFromFile("earthmap.bmp")
	if err != nil {
		return nil, err
	}

	objects := hittable.NewList()
	globe := material.NewLambertian(img)
	objects.Add(geom.NewSphere(vec3.New(0, 0, 0), 2, globe))

	cam := camera.New(vec3.New(13, 2, 3), vec3.New(0, 0, 0), vec3.New(0, 1, 0), 20, aspectRatio, 0, 10, 0, 1)

	return &Built{World: objects, Camera: cam, Background: vec3.New(0.7, 0.8, 1.0)}, nil
}

func unknownSceneError(name Name) error {
	return &unknownSceneErr{name: name}
}

type unknownSceneErr struct{ name Name }

func (e *unknownSceneErr) Error() string {
	return "scene: unknown builtin scene " + string(e.name)
}
