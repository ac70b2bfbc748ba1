package hittable

import (
	"math"
	"math/rand"
	"testing"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hrpp"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// stubSphere is a minimal Hittable used to exercise List without
// depending on package geom (which imports hittable).
type stubSphere struct {
	center vec3.Vec3
	radius float64
}

func (s stubSphere) Hit(r ray.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := r.Origin.Sub(s.center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.radius*s.radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return HitRecord{}, false
	}
	root := (-halfB - math.Sqrt(disc)) / a
	if root < tMin || root > tMax {
		root = (-halfB + math.Sqrt(disc)) / a
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}
	var rec HitRecord
	rec.T = root
	rec.Point = r.At(root)
	outward := rec.Point.Sub(s.center).Scale(1 / s.radius)
	rec.SetFaceNormal(r, outward)
	return rec, true
}

func (s stubSphere) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	r := vec3.New(s.radius, s.radius, s.radius)
	return aabb.New(s.center.Sub(r), s.center.Add(r)), true
}

func TestSetFaceNormalFrontFace(t *testing.T) {
	r := ray.New(vec3.New(0, 0, -5), vec3.New(0, 0, 1), 0)
	var rec HitRecord
	outward := vec3.New(0, 0, -1)
	rec.SetFaceNormal(r, outward)
	if !rec.FrontFace {
		t.Error("expected front face when ray opposes outward normal")
	}
	if rec.Normal != outward {
		t.Errorf("front-face normal: got %v, want %v", rec.Normal, outward)
	}
}

func TestSetFaceNormalBackFace(t *testing.T) {
	r := ray.New(vec3.New(0, 0, -5), vec3.New(0, 0, 1), 0)
	var rec HitRecord
	outward := vec3.New(0, 0, 1)
	rec.SetFaceNormal(r, outward)
	if rec.FrontFace {
		t.Error("expected back face when ray aligns with outward normal")
	}
	if rec.Normal != outward.Neg() {
		t.Errorf("back-face normal: got %v, want %v", rec.Normal, outward.Neg())
	}
}

func TestListHitReturnsNearest(t *testing.T) {
	list := NewList(
		stubSphere{center: vec3.New(0, 0, -5), radius: 1},
		stubSphere{center: vec3.New(0, 0, -2), radius: 1},
	)
	r := ray.New(vec3.New(0, 0, 0), vec3.New(0, 0, -1), 0)
	rec, hit := list.Hit(r, 0.001, 1e9)
	if !hit {
		t.Fatal("expected a hit")
	}
	if got, want := rec.Point.Z, -1.0; got != want {
		t.Errorf("nearest hit z: got %v, want %v", got, want)
	}
}

func TestListHitMiss(t *testing.T) {
	list := NewList(stubSphere{center: vec3.New(10, 10, 10), radius: 1})
	r := ray.New(vec3.New(0, 0, 0), vec3.New(0, 0, -1), 0)
	if _, hit := list.Hit(r, 0.001, 1e9); hit {
		t.Error("expected no hit")
	}
}

func TestListBoundingBoxEmpty(t *testing.T) {
	list := NewList()
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("expected empty list to report no bounding box")
	}
}

func TestListBoundingBoxUnionsChildren(t *testing.T) {
	list := NewList(
		stubSphere{center: vec3.New(-5, 0, 0), radius: 1},
		stubSphere{center: vec3.New(5, 0, 0), radius: 1},
	)
	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min.X > -6 || box.Max.X < 6 {
		t.Errorf("bounding box doesn't enclose both children: %v", box)
	}
}

func TestMaterialInterfaceTakesRandSource(t *testing.T) {
	// sanity: confirms the Material interface signature compiles against
	// math/rand.Rand without a cycle.
	var _ Material = fakeMaterial{}
	_ = rand.New(rand.NewSource(1))
}

type fakeMaterial struct{}

func (fakeMaterial) Scatter(rIn ray.Ray, rec *HitRecord, rng *rand.Rand) (vec3.Vec3, ray.Ray, bool) {
	return vec3.Vec3{}, ray.Ray{}, false
}
func (fakeMaterial) Emit(u, v float64, p vec3.Vec3) vec3.Vec3 { return vec3.Vec3{} }

// stubPredictorAttacher is a minimal PredictorAttacher used to verify
// List.AttachPredictor forwards to its children without depending on
// package bvh (which imports hittable).
type stubPredictorAttacher struct {
	stubSphere
	got *hrpp.Registry
}

func (s *stubPredictorAttacher) AttachPredictor(reg *hrpp.Registry) { s.got = reg }

func TestListAttachPredictorForwardsToAttachableChildren(t *testing.T) {
	attacher := &stubPredictorAttacher{stubSphere: stubSphere{center: vec3.New(0, 0, 0), radius: 1}}
	list := NewList(attacher, stubSphere{center: vec3.New(5, 0, 0), radius: 1})

	reg := hrpp.NewRegistry(0)
	list.AttachPredictor(reg)

	if attacher.got != reg {
		t.Errorf("expected AttachPredictor to forward the registry, got %v", attacher.got)
	}
}

func TestListAttachPredictorIgnoresPlainChildren(t *testing.T) {
	// A list with no PredictorAttacher children must not panic.
	list := NewList(stubSphere{center: vec3.New(0, 0, 0), radius: 1})
	list.AttachPredictor(hrpp.NewRegistry(0))
}
