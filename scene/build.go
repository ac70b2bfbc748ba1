package scene

import (
	"fmt"
	"math/rand"

	"github.com/loamlabs/pathtrace/camera"
	"github.com/loamlabs/pathtrace/geom"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/material"
	"github.com/loamlabs/pathtrace/texture"
	"github.com/loamlabs/pathtrace/vec3"
)

// Built is the runtime result of converting a Description into the
// types a render needs.
type Built struct {
	World      *hittable.List
	Camera     *camera.Camera
	Background vec3.Vec3
	AspectHint float64
}

func v(a [3]float64) vec3.Vec3 { return vec3.New(a[0], a[1], a[2]) }

// Build converts desc into a world list and camera, using aspectRatio
// for the camera's viewport shape. rng supplies any randomness the
// build needs (moving-sphere jitter is supplied directly in the
// description, so currently this is only used if a procedural
// material needs noise).
func Build(desc *Description, aspectRatio float64, rng *rand.Rand) (*Built, error) {
	world := hittable.NewList()

	for i, obj := range desc.Objects {
		mat, err := buildMaterial(obj.Material, rng)
		if err != nil {
			return nil, fmt.Errorf("scene: object %d: %w", i, err)
		}

		h, err := buildObject(obj, mat)
		if err != nil {
			return nil, fmt.Errorf("scene: object %d: %w", i, err)
		}
		world.Add(h)
	}

	cd := desc.Camera
	cam := camera.New(v(cd.LookFrom), v(cd.LookAt), v(cd.ViewUp), cd.VFov, aspectRatio,
		cd.Aperture, cd.FocusDist, cd.ShutterOpen, cd.ShutterShut)

	return &Built{
		World:      world,
		Camera:     cam,
		Background: v(desc.Background),
	}, nil
}

func buildObject(obj ObjectDesc, mat hittable.Material) (hittable.Hittable, error) {
	switch obj.Kind {
	case "sphere":
		return geom.NewSphere(v(obj.Center), obj.Radius, mat), nil
	case "moving_sphere":
		return geom.NewMovingSphere(v(obj.Center), v(obj.Center1), obj.Time0, obj.Time1, obj.Radius, mat), nil
	case "rect_xy":
		return geom.NewRectXY(obj.X0, obj.X1, obj.Y0, obj.Y1, obj.K, mat), nil
	case "rect_xz":
		return geom.NewRectXZ(obj.X0, obj.X1, obj.Z0, obj.Z1, obj.K, mat), nil
	case "rect_yz":
		return geom.NewRectYZ(obj.Y0, obj.Y1, obj.Z0, obj.Z1, obj.K, mat), nil
	case "cube":
		return geom.NewCube(v(obj.Min), v(obj.Max), mat), nil
	case "triangle":
		return geom.NewTriangle(v(obj.V0), v(obj.V1), v(obj.V2), mat), nil
	default:
		return nil, fmt.Errorf("unknown object kind %q", obj.Kind)
	}
}

func buildMaterial(desc MaterialDesc, rng *rand.Rand) (hittable.Material, error) {
	switch desc.Kind {
	case "lambertian":
		return material.NewLambertian(texture.NewSolidColor(v(desc.Albedo))), nil
	case "metal":
		return material.NewMetal(v(desc.Albedo), desc.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(desc.RefractionIndex), nil
	case "diffuse_light":
		return material.NewDiffuseLight(texture.NewSolidColor(v(desc.Emission))), nil
	case "checker":
		odd := texture.NewSolidColor(v(desc.Albedo))
		even := texture.NewSolidColor(vec3.New(1, 1, 1).Sub(v(desc.Albedo)))
		return material.NewLambertian(texture.NewChecker(odd, even, desc.CheckerScale)), nil
	case "marble":
		return material.NewLambertian(texture.NewMarble(rng, desc.CheckerScale)), nil
	default:
		return nil, fmt.Errorf("unknown material kind %q", desc.Kind)
	}
}
