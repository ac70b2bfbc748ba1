package hrpp

import (
	"testing"

	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

func TestFingerprintIsStableForIdenticalRays(t *testing.T) {
	r := ray.New(vec3.New(1.0001, 2.0002, 3.0003), vec3.New(0.1, 0.2, 0.3), 0.5)
	if Fingerprint(r) != Fingerprint(r) {
		t.Error("expected identical rays to produce identical fingerprints")
	}
}

func TestFingerprintCollapsesNearbyRays(t *testing.T) {
	a := ray.New(vec3.New(1.00001, 2.00001, 3.00001), vec3.New(0.1, 0.2, 0.3), 0)
	b := ray.New(vec3.New(1.00002, 2.00002, 3.00002), vec3.New(0.1, 0.2, 0.3), 0)
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("expected geometrically close rays to collapse to the same fingerprint")
	}
}

func TestFingerprintDiffersForDistantRays(t *testing.T) {
	a := ray.New(vec3.New(0, 0, 0), vec3.New(1, 0, 0), 0)
	b := ray.New(vec3.New(1000, -1000, 500), vec3.New(-1, 0, 0), 0)
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("expected distant, differently-directed rays to produce distinct fingerprints")
	}
}

func TestPredictorLookupMissThenInsertThenHit(t *testing.T) {
	p := New()
	if _, ok := p.Lookup(42); ok {
		t.Fatal("expected no entry before Insert")
	}
	p.Insert(42, 7)
	idx, ok := p.Lookup(42)
	if !ok || idx != 7 {
		t.Errorf("got (%v, %v), want (7, true)", idx, ok)
	}
}

func TestPredictorCountersAccumulate(t *testing.T) {
	p := New()
	p.IncTruePositive()
	p.IncTruePositive()
	p.IncFalsePositive()
	p.IncNoPrediction()
	got := p.Snapshot()
	want := Counters{TruePositive: 2, FalsePositive: 1, NoPrediction: 1}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPredictorSizeTracksDistinctFingerprints(t *testing.T) {
	p := New()
	p.Insert(1, 10)
	p.Insert(2, 20)
	p.Insert(1, 99) // overwrite, not a new entry
	if got := p.Size(); got != 2 {
		t.Errorf("Size: got %v, want 2", got)
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry(3)
	if got := reg.GoUpLevel(); got != 3 {
		t.Errorf("GoUpLevel: got %v, want 3", got)
	}
	p := reg.Register(100)
	got, ok := reg.Get(100)
	if !ok || got != p {
		t.Errorf("Get(100): got (%v, %v), want (%v, true)", got, ok, p)
	}
}

func TestRegistryGetUnregisteredIDFails(t *testing.T) {
	reg := NewRegistry(0)
	if _, ok := reg.Get(999); ok {
		t.Error("expected no predictor for an unregistered BVH id")
	}
}
