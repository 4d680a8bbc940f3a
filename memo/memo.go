package memo

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/dora-network/batch-exchange-utils/merkle"
	"github.com/dora-network/batch-exchange-utils/metrics"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// TreeBuilder builds a commitment tree. *merkle.Builder implements it.
//
//counterfeiter:generate . TreeBuilder
type TreeBuilder interface {
	Build(leaves ...merkle.Leaf) (*merkle.Tree, error)
}

// Memoizer caches the trees built by a TreeBuilder, keyed by the exact leaf sequence.
// Entries are never evicted; Reset drops all of them.
type Memoizer struct {
	builder         TreeBuilder
	mu              sync.RWMutex
	trees           map[string]*merkle.Tree
	group           singleflight.Group
	log             zerolog.Logger
	instrumentation *metrics.Instrumentation
}

type Option func(*Memoizer)

// WithLogger sets the logger cache misses are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Memoizer) {
		m.log = logger
	}
}

// WithInstrumentation records hits, misses and build durations.
// See metrics.NewCommitmentInstrumentation for the expected collectors.
func WithInstrumentation(instrumentation *metrics.Instrumentation) Option {
	return func(m *Memoizer) {
		m.instrumentation = instrumentation
	}
}

// New wraps builder with a cache.
func New(builder TreeBuilder, opts ...Option) *Memoizer {
	m := &Memoizer{
		builder: builder,
		trees:   make(map[string]*merkle.Tree),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Build returns the tree previously built for an equal leaf sequence, or builds and stores it.
// Concurrent calls for the same sequence share a single build. Failed builds are not stored.
func (m *Memoizer) Build(leaves ...merkle.Leaf) (*merkle.Tree, error) {
	key := Key(leaves)
	if t, ok := m.get(key); ok {
		m.countRequest(metrics.LabelHit)
		return t, nil
	}

	m.countRequest(metrics.LabelMiss)
	v, err, _ := m.group.Do(key, func() (any, error) {
		if t, ok := m.get(key); ok {
			return t, nil
		}

		start := time.Now()
		t, err := m.builder.Build(leaves...)
		if err != nil {
			m.countFailure()
			return nil, err
		}
		m.observeBuild(time.Since(start))

		m.mu.Lock()
		m.trees[key] = t
		size := len(m.trees)
		m.mu.Unlock()

		m.setSize(size)
		m.log.Debug().
			Int("leaves", len(leaves)).
			Int("entries", size).
			Str("root", t.Root().Hex()).
			Msg("built commitment tree")
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*merkle.Tree), nil
}

// BuildInterleaved is Build over a flat index, value, index, value... list.
func (m *Memoizer) BuildInterleaved(args ...any) (*merkle.Tree, error) {
	leaves, err := merkle.Interleaved(args...)
	if err != nil {
		return nil, err
	}
	return m.Build(leaves...)
}

// Len returns the number of cached trees.
func (m *Memoizer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trees)
}

// Reset drops every cached tree.
func (m *Memoizer) Reset() {
	m.mu.Lock()
	m.trees = make(map[string]*merkle.Tree)
	m.mu.Unlock()
	m.setSize(0)
}

func (m *Memoizer) get(key string) (*merkle.Tree, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.trees[key]
	return t, ok
}

func (m *Memoizer) countRequest(result string) {
	if m.instrumentation == nil {
		return
	}
	if c, ok := m.instrumentation.CounterVecs[metrics.InstrumentationTypeCacheRequestCount]; ok {
		c.WithLabelValues(result).Inc()
	}
}

func (m *Memoizer) countFailure() {
	if m.instrumentation == nil {
		return
	}
	if c, ok := m.instrumentation.Counters[metrics.InstrumentationTypeTreeBuildFailure]; ok {
		c.Inc()
	}
}

func (m *Memoizer) observeBuild(d time.Duration) {
	if m.instrumentation == nil {
		return
	}
	if h, ok := m.instrumentation.Histograms[metrics.InstrumentationTypeTreeBuildDuration]; ok {
		h.Observe(d.Seconds())
	}
}

func (m *Memoizer) setSize(size int) {
	if m.instrumentation == nil {
		return
	}
	if g, ok := m.instrumentation.Gauges[metrics.InstrumentationTypeCacheSize]; ok {
		g.Set(float64(size))
	}
}
