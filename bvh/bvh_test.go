package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/loamlabs/pathtrace/geom"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/hrpp"
	"github.com/loamlabs/pathtrace/material"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/texture"
	"github.com/loamlabs/pathtrace/vec3"
)

func lambertian() *material.Lambertian {
	return material.NewLambertian(texture.NewSolidColor(vec3.New(0.5, 0.5, 0.5)))
}

func randomSpheres(n int, rng *rand.Rand) []hittable.Hittable {
	objects := make([]hittable.Hittable, n)
	for i := range objects {
		center := vec3.New(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		objects[i] = geom.NewSphere(center, 0.3+rng.Float64(), lambertian())
	}
	return objects
}

func TestBuildRootBoxEnclosesAllLeaves(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	objects := randomSpheres(30, rng)
	tree := Build(objects, 0, 1, rng)

	root, ok := tree.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected root bounding box")
	}
	for i, o := range objects {
		box, _ := o.BoundingBox(0, 1)
		if box.Min.X < root.Min.X || box.Min.Y < root.Min.Y || box.Min.Z < root.Min.Z ||
			box.Max.X > root.Max.X || box.Max.Y > root.Max.Y || box.Max.Z > root.Max.Z {
			t.Errorf("object %d box %v not enclosed by root box %v", i, box, root)
		}
	}
}

func TestBuildSingleObjectDuplicatesLeaf(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	objects := randomSpheres(1, rng)
	tree := Build(objects, 0, 1, rng)
	node := tree.Nodes[tree.RootIndex]
	if !node.Left.IsLeaf || !node.Right.IsLeaf {
		t.Fatal("expected a single-object tree to have two leaf children")
	}
	if node.Left.Leaf != node.Right.Leaf {
		t.Error("expected both children to reference the same duplicated leaf")
	}
}

func TestHitMatchesBruteForceList(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	objects := randomSpheres(50, rng)
	tree := Build(objects, 0, 1, rng)
	list := hittable.NewList(objects...)

	probeRNG := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		origin := vec3.New(probeRNG.Float64()*40-20, probeRNG.Float64()*40-20, probeRNG.Float64()*40-20)
		dir := vec3.New(probeRNG.Float64()*2-1, probeRNG.Float64()*2-1, probeRNG.Float64()*2-1)
		r := ray.New(origin, dir, 0)

		wantRec, wantHit := list.Hit(r, 0.001, math.Inf(1))
		gotRec, gotHit := tree.Hit(r, 0.001, math.Inf(1))

		if gotHit != wantHit {
			t.Fatalf("ray %d: hit mismatch, bvh=%v list=%v", i, gotHit, wantHit)
		}
		if wantHit && math.Abs(gotRec.T-wantRec.T) > 1e-9 {
			t.Fatalf("ray %d: t mismatch, bvh=%v list=%v", i, gotRec.T, wantRec.T)
		}
	}
}

func TestHitWithPredictorMatchesPlainTraversal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	objects := randomSpheres(40, rng)

	plain := Build(objects, 0, 1, rng)

	predicted := Build(objects, 0, 1, rng)
	reg := hrpp.NewRegistry(0)
	predicted.AttachPredictor(reg)

	probeRNG := rand.New(rand.NewSource(55))
	for i := 0; i < 100; i++ {
		origin := vec3.New(probeRNG.Float64()*40-20, probeRNG.Float64()*40-20, probeRNG.Float64()*40-20)
		dir := vec3.New(probeRNG.Float64()*2-1, probeRNG.Float64()*2-1, probeRNG.Float64()*2-1)
		r := ray.New(origin, dir, 0)

		wantRec, wantHit := plain.Hit(r, 0.001, math.Inf(1))
		gotRec, gotHit := predicted.Hit(r, 0.001, math.Inf(1))

		if gotHit != wantHit {
			t.Fatalf("ray %d: hit mismatch, predicted=%v plain=%v", i, gotHit, wantHit)
		}
		if wantHit && math.Abs(gotRec.T-wantRec.T) > 1e-9 {
			t.Fatalf("ray %d: t mismatch, predicted=%v plain=%v", i, gotRec.T, wantRec.T)
		}
	}

	p, ok := reg.Get(predicted.ID)
	if !ok {
		t.Fatal("expected predictor to be registered")
	}
	counters := p.Snapshot()
	if counters.TruePositive+counters.FalsePositive+counters.NoPrediction == 0 {
		t.Error("expected the predictor to have recorded at least one outcome")
	}
}

func TestHitWithoutRegisteredPredictorFallsBackToPlainTraversal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	objects := randomSpheres(10, rng)
	tree := Build(objects, 0, 1, rng)

	reg := hrpp.NewRegistry(0)
	tree.registry = reg // simulate an attach whose registration was lost

	r := ray.New(vec3.New(0, 0, 20), vec3.New(0, 0, -1), 0)
	if _, _, ok := tree.hitNode(tree.RootIndex, r, 0.001, math.Inf(1)); !ok {
		t.Skip("probe ray happens not to hit this random scene; not a predictor concern")
	}
	if _, hit := tree.Hit(r, 0.001, math.Inf(1)); !hit {
		t.Error("expected Hit to still find the intersection via root traversal")
	}
}

func TestWalkUpStopsAtRoot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	objects := randomSpheres(20, rng)
	tree := Build(objects, 0, 1, rng)

	// Walking up an enormous number of levels from any node must land on
	// the root, never panic or go out of bounds.
	got := tree.walkUp(0, 1000)
	if got != tree.RootIndex {
		t.Errorf("walkUp with excessive levels: got %v, want root %v", got, tree.RootIndex)
	}
}
