// Package partmap provide a partitioned map.
package partmap

import (
	"hash/maphash"
	"sync"
)

type part[K comparable, V any] struct {
	mu             sync.Mutex
	m              map[K]V
	source, target []K
}

// Map is a map split into independently locked partitions. Keys inserted
// during one breadth-first layer are collected as targets and become the
// sources of the next layer on SwapTargets.
type Map[K comparable, V any] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K, V]
}

func New[K comparable, V any](start K, v V, numPart int) *Map[K, V] {
	if numPart < 1 {
		numPart = 1
	}
	pm := &Map[K, V]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K, V], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K, V]{m: make(map[K]V)}
	}
	// store start state
	part := pm.part(start)
	part.m[start] = v
	part.source = append(part.source, start)
	return pm
}

func (pm *Map[K, V]) part(k K) *part[K, V] {
	return pm.parts[maphash.Comparable(pm.seed, k)%pm.numPart]
}

func (pm *Map[K, V]) Load(k K) (V, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// StoreTarget inserts k if absent and queues it for the next layer. It
// reports whether this call inserted k.
func (pm *Map[K, V]) StoreTarget(k K, v V) bool {
	part := pm.part(k)
	part.mu.Lock()
	if _, ok := part.m[k]; !ok {
		part.m[k] = v
		part.target = append(part.target, k)
		part.mu.Unlock()
		return true
	}
	part.mu.Unlock()
	return false
}

func (pm *Map[K, V]) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}

func (pm *Map[K, V]) NumPart() int { return int(pm.numPart) }

func (pm *Map[K, V]) Source(idx int) []K { return pm.parts[idx].source }

// SourceSize returns the number of keys in the current layer.
func (pm *Map[K, V]) SourceSize() int {
	n := 0
	for _, part := range pm.parts {
		n += len(part.source)
	}
	return n
}

func (pm *Map[K, V]) SwapTargets() {
	for _, part := range pm.parts {
		part.source, part.target = part.target, nil
	}
}
