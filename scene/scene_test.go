package scene

import (
	"math/rand"
	"testing"
)

func TestLoadBytesRoundTrip(t *testing.T) {
	data := []byte(`
camera:
  look_from: [0, 0, 5]
  look_at: [0, 0, 0]
  view_up: [0, 1, 0]
  vfov: 40
  aperture: 0
  focus_dist: 10
  shutter_open: 0
  shutter_shut: 1
background: [0.5, 0.7, 1.0]
objects:
  - kind: sphere
    center: [0, 0, -1]
    radius: 0.5
    material:
      kind: lambertian
      albedo: [0.5, 0.5, 0.5]
`)

	desc, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(desc.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(desc.Objects))
	}
	if desc.Objects[0].Kind != "sphere" {
		t.Fatalf("unexpected object kind %q", desc.Objects[0].Kind)
	}
	if desc.Camera.VFov != 40 {
		t.Fatalf("unexpected vfov %v", desc.Camera.VFov)
	}
}

func TestBuildFromDescription(t *testing.T) {
	desc := &Description{
		Camera: CameraDesc{
			LookFrom: [3]float64{0, 0, 5}, LookAt: [3]float64{0, 0, 0}, ViewUp: [3]float64{0, 1, 0},
			VFov: 40, FocusDist: 10, ShutterShut: 1,
		},
		Background: [3]float64{0.5, 0.7, 1.0},
		Objects: []ObjectDesc{
			{Kind: "sphere", Center: [3]float64{0, 0, -1}, Radius: 0.5,
				Material: MaterialDesc{Kind: "lambertian", Albedo: [3]float64{0.5, 0.5, 0.5}}},
		},
	}

	built, err := Build(desc, 1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(built.World.Objects) != 1 {
		t.Fatalf("expected 1 world object, got %d", len(built.World.Objects))
	}
}

func TestBuildRejectsUnknownKinds(t *testing.T) {
	desc := &Description{
		Objects: []ObjectDesc{{Kind: "nonsense"}},
	}
	if _, err := Build(desc, 1.0, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error for unknown object kind")
	}
}

func TestBuildNamedCoversEveryBuiltin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, b := range Builtins {
		if b.Name == Earth {
			// requires an on-disk texture file (earthmap.bmp), which
			// the tests do not provide; not built here.
			continue
		}
		built, err := BuildNamed(b.Name, 1.5, rng)
		if err != nil {
			t.Fatalf("BuildNamed(%s): %v", b.Name, err)
		}
		if built.Camera == nil {
			t.Fatalf("BuildNamed(%s): nil camera", b.Name)
		}
	}
}

func TestBuildNamedUnknown(t *testing.T) {
	if _, err := BuildNamed(Name("nope"), 1.0, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error for unknown scene name")
	}
}
