package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/facet/record"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// TreeConfig shapes a random tree.
type TreeConfig struct {
	// Depth is the number of levels below the top level.
	Depth int
	// Fanout is the maximum number of children per node (at least 1).
	Fanout int
	// Base is the reference time for date values. Defaults to time.Now.
	Base time.Time
}

var (
	statuses = []string{"ip", "fin", "wtg", "hld"}
	tags     = []string{"fx", "anim", "comp", "light"}
	users    = []map[string]any{
		{"type": "HumanUser", "id": 1, "name": "Alice"},
		{"type": "HumanUser", "id": 2, "name": "Bob"},
		{"type": "HumanUser", "id": 3, "name": "Carol"},
	}
)

// RandomTree builds a tree whose display payloads are maps with a fixed set
// of fields of every data type. Some values are missing or empty.
func (r *RNG) RandomTree(cfg TreeConfig) *record.Tree {
	if cfg.Fanout < 1 {
		cfg.Fanout = 1
	}
	if cfg.Base.IsZero() {
		cfg.Base = time.Now()
	}

	t := record.NewTree()
	n := 0
	var grow func(parent *record.Node, level int)
	grow = func(parent *record.Node, level int) {
		for range 1 + r.Intn(cfg.Fanout) {
			child := parent.Add(r.RandomPayload(n, cfg.Base))
			n++
			if level < cfg.Depth {
				grow(child, level+1)
			}
		}
	}
	grow(t.Root(), 0)
	return t
}

// RandomPayload returns one random map payload.
func (r *RNG) RandomPayload(i int, base time.Time) map[string]any {
	p := map[string]any{
		"name":     fmt.Sprintf("item %d", i),
		"status":   statuses[r.Intn(len(statuses))],
		"priority": r.Intn(4),
		"done":     r.Intn(2) == 1,
		"due":      base.AddDate(0, 0, r.Intn(61)-30),
		"owner":    users[r.Intn(len(users))],
	}

	var itemTags []any
	for range r.Intn(3) {
		itemTags = append(itemTags, tags[r.Intn(len(tags))])
	}
	p["tags"] = itemTags

	if r.Intn(5) == 0 {
		delete(p, "status")
	}
	return p
}
