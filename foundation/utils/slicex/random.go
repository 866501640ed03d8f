// File: random.go
// Title: Random Element Selection
// Description: Uniform random choice from a slice with an injectable source
//              for reproducible tests.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package slicex

import (
	"math/rand/v2"
	"sync"
)

// Chooser picks random elements. The zero value draws from the global
// generator. A Chooser is safe for concurrent use.
type Chooser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewChooser returns a Chooser backed by rng. A nil rng uses the global
// generator.
func NewChooser(rng *rand.Rand) *Chooser {
	return &Chooser{rng: rng}
}

// NewSeededChooser returns a deterministic Chooser, mainly for tests.
func NewSeededChooser(seed uint64) *Chooser {
	return NewChooser(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Index returns a uniformly random index in [0, n). n must be positive.
func (c *Chooser) Index(n int) int {
	if c.rng == nil {
		return rand.IntN(n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}

var defaultChooser = NewChooser(nil)

// RandomChoice returns a uniformly random element of items together with
// its index. ok is false for an empty slice and no index is touched.
func RandomChoice[T any](items []T) (item T, index int, ok bool) {
	return RandomChoiceWith(defaultChooser, items)
}

// RandomChoiceWith is RandomChoice using the given Chooser. A nil Chooser
// behaves like RandomChoice.
func RandomChoiceWith[T any](c *Chooser, items []T) (item T, index int, ok bool) {
	if len(items) == 0 {
		return item, -1, false
	}
	if c == nil {
		c = defaultChooser
	}
	index = c.Index(len(items))
	return items[index], index, true
}
