package hrpp

import "sync"

// Counters tallies prediction outcomes for diagnostics and for tuning
// Go-Up-Level / precision in future runs.
type Counters struct {
	TruePositive  uint64
	FalsePositive uint64
	NoPrediction  uint64
}

// Predictor is a per-BVH fingerprint -> node-index hash table. It is
// shared across every worker rendering the scene and guarded by a
// single mutex; the lock is held only for table access or a counter
// increment, never while traversing geometry.
type Predictor struct {
	mu       sync.Mutex
	table    map[uint64]int
	counters Counters
}

// New creates an empty predictor.
func New() *Predictor {
	return &Predictor{table: make(map[uint64]int)}
}

// Lookup returns the node index predicted for fingerprint, if any.
func (p *Predictor) Lookup(fingerprint uint64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx, ok := p.table[fingerprint]
	return idx, ok
}

// Insert records nodeIndex as the prediction for fingerprint. Two
// workers racing to insert the same fingerprint is benign: either
// value is a valid prediction.
func (p *Predictor) Insert(fingerprint uint64, nodeIndex int) {
	p.mu.Lock()
	p.table[fingerprint] = nodeIndex
	p.mu.Unlock()
}

func (p *Predictor) IncTruePositive() {
	p.mu.Lock()
	p.counters.TruePositive++
	p.mu.Unlock()
}

func (p *Predictor) IncFalsePositive() {
	p.mu.Lock()
	p.counters.FalsePositive++
	p.mu.Unlock()
}

func (p *Predictor) IncNoPrediction() {
	p.mu.Lock()
	p.counters.NoPrediction++
	p.mu.Unlock()
}

// Snapshot returns a copy of the current prediction statistics.
func (p *Predictor) Snapshot() Counters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counters
}

// Size returns the number of fingerprints currently memoized.
func (p *Predictor) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.table)
}

// Registry maps a BVH's opaque id to its predictor. Not every BVH has
// an entry; nested BVHs each own their own predictor if one is desired.
type Registry struct {
	mu         sync.RWMutex
	predictors map[uint64]*Predictor
	goUpLevel  int
}

// NewRegistry creates an empty registry. goUpLevel configures how many
// parent steps above the hit leaf are recorded as a new prediction; the
// paper's recommended value is 0 (the leaf's containing node itself).
func NewRegistry(goUpLevel int) *Registry {
	return &Registry{predictors: make(map[uint64]*Predictor), goUpLevel: goUpLevel}
}

// GoUpLevel returns the configured Go-Up-Level.
func (r *Registry) GoUpLevel() int { return r.goUpLevel }

// Register creates (or replaces) the predictor for bvhID and returns it.
func (r *Registry) Register(bvhID uint64) *Predictor {
	p := New()
	r.mu.Lock()
	r.predictors[bvhID] = p
	r.mu.Unlock()
	return p
}

// Get returns the predictor for bvhID, if one has been registered.
func (r *Registry) Get(bvhID uint64) (*Predictor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predictors[bvhID]
	return p, ok
}

// AggregateCounters sums Counters across every predictor registered so
// far, so a renderer can report overall HRPP effectiveness after a
// render without tracking individual BVH ids itself.
func (r *Registry) AggregateCounters() Counters {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total Counters
	for _, p := range r.predictors {
		c := p.Snapshot()
		total.TruePositive += c.TruePositive
		total.FalsePositive += c.FalsePositive
		total.NoPrediction += c.NoPrediction
	}
	return total
}
