package tables

import (
	"context"
	"math/bits"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/plan-systems/klog"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

const chunkWords = 4096

// GenerateOption configures Generate.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	workers  int
	maxDepth int
	progress func(depth, count int)
}

func defaultGenerateConfig() *generateConfig {
	return &generateConfig{
		workers:  runtime.NumCPU(),
		maxDepth: -1,
	}
}

// WithGenerateWorkers sets the number of goroutines expanding each layer.
func WithGenerateWorkers(n int) GenerateOption {
	return func(c *generateConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithGenerateMaxDepth stops after depth layers. Entries further away stay
// Unvisited.
func WithGenerateMaxDepth(depth int) GenerateOption {
	return func(c *generateConfig) {
		c.maxDepth = depth
	}
}

// WithGenerateProgress registers a callback invoked after every layer.
func WithGenerateProgress(fn func(depth, count int)) GenerateOption {
	return func(c *generateConfig) {
		c.progress = fn
	}
}

type bitset []uint32

func newBitset(n int) bitset {
	return make(bitset, (n+31)/32)
}

func (b bitset) set(i int) {
	b[i>>5] |= 1 << (i & 31)
}

// claim sets bit i and reports whether this call changed it.
func (b bitset) claim(i int) bool {
	mask := uint32(1) << (i & 31)
	return atomic.OrUint32(&b[i>>5], mask)&mask == 0
}

func (b bitset) clear() {
	for i := range b {
		b[i] = 0
	}
}

// Generate builds the table for p by breadth-first search over pattern
// indexes, starting at the solved index. Each layer is split across
// workers; a visited bitset updated atomically decides which worker
// records a newly reached index.
func Generate(ctx context.Context, p Pattern, opts ...GenerateOption) (*Table, error) {
	cfg := defaultGenerateConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	data := make([]byte, p.Bytes())
	for i := range data {
		data[i] = Unvisited<<4 | Unvisited
	}

	visited := newBitset(p.Size)
	current := newBitset(p.Size)
	next := newBitset(p.Size)

	solved := p.SolvedIndex()
	visited.set(solved)
	current.set(solved)
	setNibble(data, solved, 0)

	total := 1
	for depth := 0; cfg.maxDepth < 0 || depth < cfg.maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		forEachChunk(len(current), cfg.workers, func(lo, hi int) {
			for w := lo; w < hi; w++ {
				word := current[w]
				for word != 0 {
					bit := bits.TrailingZeros32(word)
					word &^= 1 << bit
					expand(p, w<<5|bit, visited, next)
				}
			}
		})

		count := 0
		var mu sync.Mutex
		forEachChunk(len(next), cfg.workers, func(lo, hi int) {
			n := 0
			for w := lo; w < hi; w++ {
				word := next[w]
				for word != 0 {
					bit := bits.TrailingZeros32(word)
					word &^= 1 << bit
					setNibble(data, w<<5|bit, byte(depth+1))
					n++
				}
			}
			mu.Lock()
			count += n
			mu.Unlock()
		})
		if count == 0 {
			break
		}
		total += count
		klog.Infof("%s: depth %d: %d new, %d of %d", p.Name, depth+1, count, total, p.Size)
		if cfg.progress != nil {
			cfg.progress(depth+1, count)
		}

		current, next = next, current
		next.clear()
	}

	return New(p, data)
}

func expand(p Pattern, index int, visited, next bitset) {
	state := p.State(index)
	for t := uint8(0); t < types.NumMoves; t++ {
		child := p.Index(state.ApplyToken(t))
		if visited.claim(child) {
			next.claim(child)
		}
	}
}

// forEachChunk calls fn on consecutive word ranges of [0, n) from workers
// goroutines and waits for all of them.
func forEachChunk(n, workers int, fn func(lo, hi int)) {
	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				lo := int(cursor.Add(chunkWords)) - chunkWords
				if lo >= n {
					return
				}
				fn(lo, min(lo+chunkWords, n))
			}
		}()
	}
	wg.Wait()
}
