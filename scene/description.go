// Package scene loads scene descriptions and builds the object lists,
// cameras, and BVHs a render needs. It supports two paths: a YAML
// description file for ad-hoc scenes, and a small set of fixed, named
// scene builders for the standard reference scenes every path tracer
// ships.
package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Description is the on-disk YAML shape of a scene file: camera pose,
// background color, and a flat list of objects. It mirrors load/shd.go's
// pattern of unmarshaling into a plain config struct before converting
// to the engine's real types.
type Description struct {
	Camera     CameraDesc   `yaml:"camera"`
	Background [3]float64   `yaml:"background"`
	Objects    []ObjectDesc `yaml:"objects"`
}

// CameraDesc is the YAML shape of a camera pose.
type CameraDesc struct {
	LookFrom    [3]float64 `yaml:"look_from"`
	LookAt      [3]float64 `yaml:"look_at"`
	ViewUp      [3]float64 `yaml:"view_up"`
	VFov        float64    `yaml:"vfov"`
	Aperture    float64    `yaml:"aperture"`
	FocusDist   float64    `yaml:"focus_dist"`
	ShutterOpen float64    `yaml:"shutter_open"`
	ShutterShut float64    `yaml:"shutter_shut"`
}

// ObjectDesc is the YAML shape of a single scene object: one of sphere,
// moving_sphere, rect_xy, rect_xz, rect_yz, cube, or triangle, selected
// by Kind. Unused fields for a given Kind are simply left at zero.
type ObjectDesc struct {
	Kind    string       `yaml:"kind"`
	Center  [3]float64   `yaml:"center"`
	Center1 [3]float64   `yaml:"center1"`
	Radius  float64      `yaml:"radius"`
	Min     [3]float64   `yaml:"min"`
	Max     [3]float64   `yaml:"max"`
	V0      [3]float64   `yaml:"v0"`
	V1      [3]float64   `yaml:"v1"`
	V2      [3]float64   `yaml:"v2"`
	X0      float64      `yaml:"x0"`
	X1      float64      `yaml:"x1"`
	Y0      float64      `yaml:"y0"`
	Y1      float64      `yaml:"y1"`
	Z0      float64      `yaml:"z0"`
	Z1      float64      `yaml:"z1"`
	K       float64      `yaml:"k"`
	Time0   float64      `yaml:"time0"`
	Time1   float64      `yaml:"time1"`

	Material MaterialDesc `yaml:"material"`
}

// MaterialDesc is the YAML shape of a material: one of lambertian,
// metal, dielectric, diffuse_light, checker, or marble, selected by
// Kind. CheckerScale is the scale of both checker and marble.
type MaterialDesc struct {
	Kind            string     `yaml:"kind"`
	Albedo          [3]float64 `yaml:"albedo"`
	Fuzz            float64    `yaml:"fuzz"`
	RefractionIndex float64    `yaml:"refraction_index"`
	CheckerScale    float64    `yaml:"checker_scale"`
	Emission        [3]float64 `yaml:"emission"`
}

// LoadBytes unmarshals a YAML scene description.
func LoadBytes(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("scene: yaml %w", err)
	}
	return &desc, nil
}
