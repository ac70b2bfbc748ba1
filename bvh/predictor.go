package bvh

import (
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/hrpp"
	"github.com/loamlabs/pathtrace/ray"
)

// AttachPredictor registers this BVH with reg so Hit consults HRPP.
// Passing a nil registry (the zero value of *BVH.registry) makes Hit
// fall back to a plain traversal; this is how the predictor stays an
// optional, caller-controlled heuristic.
func (b *BVH) AttachPredictor(reg *hrpp.Registry) {
	b.registry = reg
	if reg != nil {
		reg.Register(b.ID)
	}
}

// Hit intersects r against the tree. When a predictor is registered for
// this BVH, it drives traversal per the HRPP policy below; otherwise
// this is a plain root traversal.
func (b *BVH) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	if b.registry == nil {
		rec, _, ok := b.hitNode(b.RootIndex, r, tMin, tMax)
		return rec, ok
	}
	predictor, ok := b.registry.Get(b.ID)
	if !ok {
		rec, _, hit := b.hitNode(b.RootIndex, r, tMin, tMax)
		return rec, hit
	}
	return b.hitWithPredictor(predictor, b.registry.GoUpLevel(), r, tMin, tMax)
}

// hitWithPredictor implements the predictor's lookup policy: a prediction
// whose subtree hits (true positive, returned as is), a prediction whose
// subtree misses (false positive, falls back to a root traversal), and
// no prediction (root traversal). Each of the three outcomes increments
// its own counter; a root traversal that hits inserts a new prediction.
func (b *BVH) hitWithPredictor(p *hrpp.Predictor, goUpLevel int, r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	fingerprint := hrpp.Fingerprint(r)

	predictedIndex, found := p.Lookup(fingerprint)
	if found {
		rec, leaf, hit := b.hitNode(predictedIndex, r, tMin, tMax)
		if hit {
			p.IncTruePositive()
			return rec, true
		}
		// False positive: the predicted subtree missed. Fall back to a
		// full traversal from the root; this may find a hit the
		// predicted subtree could never have reached.
		p.IncFalsePositive()
		rec, leaf, hit = b.hitNode(b.RootIndex, r, tMin, tMax)
		if hit {
			p.Insert(fingerprint, b.walkUp(leaf, goUpLevel))
		}
		return rec, hit
	}

	// No entry for this fingerprint: do a full traversal and, on a hit,
	// seed a prediction for next time.
	p.IncNoPrediction()
	rec, leaf, hit := b.hitNode(b.RootIndex, r, tMin, tMax)
	if hit {
		p.Insert(fingerprint, b.walkUp(leaf, goUpLevel))
	}
	return rec, hit
}

// walkUp returns the node index reached by following Parent links
// goUpLevel times starting at leafNode (0 = leafNode itself). Stops at
// the root if reached before completing the walk.
func (b *BVH) walkUp(leafNode, goUpLevel int) int {
	idx := leafNode
	for i := 0; i < goUpLevel; i++ {
		if b.Nodes[idx].Parent == noParent {
			break
		}
		idx = b.Nodes[idx].Parent
	}
	return idx
}
