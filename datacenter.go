// Package datacenter reads a data center container: a segmented heap of
// fixed-stride element and attribute records, addressed by (segment, index)
// and backed by interned name, value, and extension tables. Trees are
// materialized lazily and safely from concurrent goroutines.
package datacenter

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/scigolib/datacenter/internal/core"
)

const defaultCacheSize = 4096

// LoaderInput bundles everything a DataCenter needs to open a container:
// the two fully-resident record heaps and the three interned tables. The
// loader that decompresses and lays out the container image is outside this
// package's scope; New only validates and wraps what it's given.
type LoaderInput struct {
	// ElementRecords is the element heap's backing buffer: a sequence of
	// 16-byte records, one heap segment after another.
	ElementRecords []byte
	// ElementSegmentCounts gives the record count of each element heap
	// segment, in order.
	ElementSegmentCounts []int

	// AttributeRecords is the attribute heap's backing buffer: 8-byte
	// records, segmented the same way.
	AttributeRecords []byte
	AttributeSegmentCounts []int

	// Names is the interned name table, in on-disk order.
	Names []string
	// Values is the interned string value table, keyed by the address a
	// string-typed attribute's primitive field resolves to.
	Values map[core.Address]string
	// Extensions is the interned extension descriptor table.
	Extensions []core.ExtensionDescriptor

	// RootAddress is the address of the tree's root element. The zero
	// value addresses segment 0, index 0.
	RootAddress core.Address

	// CacheSize bounds the number of materialized elements kept alive by
	// the memoization cache. Zero selects a default.
	CacheSize int

	// Logger, if non-nil, receives structured diagnostics for open and
	// materialization events. A nil Logger disables logging entirely; no
	// logging ever occurs on the hot materialization path without one.
	Logger *zap.Logger
}

const elementRecordStride = 16
const attributeRecordStride = 8

// DataCenter owns a container's heaps and tables and mediates all access to
// them. A *DataCenter is safe for concurrent use: materialized elements are
// memoized in a per-address LRU cache (callers racing on an uncached address
// may each parse its record; see materialize), and teardown is guarded by an
// RWMutex so a heap lookup in progress finishes before Dispose proceeds.
type DataCenter struct {
	mu sync.RWMutex

	elementHeap   *core.Heap
	attributeHeap *core.Heap
	names         *core.NameTable
	values        *core.ValueTable
	extensions    *core.ExtensionTable

	cache    *lru.Cache[core.Address, *Element]
	rootAddr core.Address

	frozen   atomic.Bool
	disposed atomic.Bool

	logger *zap.Logger
}

// New validates input and opens a DataCenter over it. It does not
// materialize anything; Root triggers the first read.
func New(input LoaderInput) (*DataCenter, error) {
	if input.ElementRecords != nil && len(input.ElementRecords)%elementRecordStride != 0 {
		return nil, &core.InvalidArgumentError{Reason: "element heap buffer length is not a multiple of the element record stride"}
	}
	if input.AttributeRecords != nil && len(input.AttributeRecords)%attributeRecordStride != 0 {
		return nil, &core.InvalidArgumentError{Reason: "attribute heap buffer length is not a multiple of the attribute record stride"}
	}

	cacheSize := input.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[core.Address, *Element](cacheSize)
	if err != nil {
		return nil, err
	}

	dc := &DataCenter{
		elementHeap:   core.NewHeap(input.ElementRecords, elementRecordStride, input.ElementSegmentCounts),
		attributeHeap: core.NewHeap(input.AttributeRecords, attributeRecordStride, input.AttributeSegmentCounts),
		names:         core.NewNameTable(input.Names),
		values:        core.NewValueTable(input.Values),
		extensions:    core.NewExtensionTable(input.Extensions),
		cache:         cache,
		rootAddr:      input.RootAddress,
		logger:        input.Logger,
	}

	if dc.logger != nil {
		dc.logger.Debug("data center opened",
			zap.Int("element_segments", len(input.ElementSegmentCounts)),
			zap.Int("attribute_segments", len(input.AttributeSegmentCounts)),
			zap.Int("names", len(input.Names)),
		)
	}

	return dc, nil
}

// SetLogger installs or replaces the logger used for diagnostic events. A
// nil logger disables logging.
func (dc *DataCenter) SetLogger(logger *zap.Logger) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.logger = logger
}

// dummyRootName is the synthetic root name returned when the data center
// carries no name table: there is nothing to dereference a name index
// against, so the root is a placeholder-free, attribute-free, child-free
// stand-in rather than a structural error.
const dummyRootName = "__root__"

// dummyRootRecord is the synthetic element record backing the dummy root.
// NameIndexPlusOne is set to a non-zero sentinel purely so IsPlaceholder
// reports false for it; nothing ever resolves this index against the name
// table since the dummy root's name is assigned directly.
var dummyRootRecord = core.ElementRecord{NameIndexPlusOne: 1}

// Root materializes and returns the tree's root element. A data center
// opened with an empty name table has no interned strings to resolve a
// real root's name against; Root then returns a synthetic dummy root named
// "__root__" with no attributes and no children, rather than attempting to
// parse a record it could never name.
func (dc *DataCenter) Root() (*Element, error) {
	if dc.names.Len() == 0 {
		return dc.materializeDummyRoot()
	}
	return dc.materialize(dc.rootAddr, RootParent(dc))
}

// materializeDummyRoot builds or returns the cached synthetic root used
// when the data center carries no name table. Disposal and the cache are
// both checked under the same read-lock critical section as materialize,
// so a Dispose that has already completed (serialized on mu) is never
// missed by a racing reader.
func (dc *DataCenter) materializeDummyRoot() (*Element, error) {
	dc.mu.RLock()
	defer dc.mu.RUnlock()

	if dc.disposed.Load() {
		return nil, &core.UseAfterDisposeError{What: "data center"}
	}
	if cached, ok := dc.cache.Get(dc.rootAddr); ok {
		return cached, nil
	}

	root := &Element{dc: dc, addr: dc.rootAddr, parent: RootParent(dc), name: dummyRootName, rec: dummyRootRecord}
	root.attrsOnce.Do(func() { root.attrs = map[string]TypedValue{} })
	root.childrenOnce.Do(func() { root.children = nil })
	dc.cache.Add(dc.rootAddr, root)
	return root, nil
}

// Freeze marks the data center frozen: Dispose will refuse to run, but reads
// remain permitted for as long as the process holds the DataCenter. Freeze
// has no inverse.
func (dc *DataCenter) Freeze() {
	dc.frozen.Store(true)
	dc.mu.RLock()
	logger := dc.logger
	dc.mu.RUnlock()
	if logger != nil {
		logger.Info("data center frozen")
	}
}

// IsFrozen reports whether Freeze has been called.
func (dc *DataCenter) IsFrozen() bool {
	return dc.frozen.Load()
}

// Dispose tears the data center down, after which Root and the
// materialization of any element not yet materialized fail with
// UseAfterDisposeError. Element.Attrs and Element.Children do not check for
// disposal themselves: sets realized before Dispose stay readable, and Attrs
// still reads the attribute records of an element it has not realized yet.
// It fails with FrozenViolationError if the data center has been frozen.
func (dc *DataCenter) Dispose() error {
	if dc.frozen.Load() {
		return &core.FrozenViolationError{}
	}
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.disposed.Store(true)
	dc.cache.Purge()
	if dc.logger != nil {
		dc.logger.Info("data center disposed")
	}
	return nil
}

// Walk performs a depth-first, pre-order traversal of the whole tree
// starting at Root, calling fn for every element visited. Traversal stops
// and returns fn's error as soon as one is returned.
func (dc *DataCenter) Walk(fn func(*Element) error) error {
	root, err := dc.Root()
	if err != nil {
		return err
	}
	return walk(root, fn)
}

func walk(e *Element, fn func(*Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	children, err := e.Children()
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// materialize returns the Element at addr, building it on first access and
// memoizing it for subsequent callers. Concurrent callers racing on the same
// address may each parse the record, but only one materialized Element
// survives in the cache; all callers observe a consistent view of the
// addressed record either way, since records are immutable once the
// container is open.
//
// The disposed check and cache lookup both happen inside the same RLock
// critical section as the heap read: Dispose takes the exclusive Lock to
// flip disposed and purge the cache, so a reader that acquires RLock either
// runs entirely before that section (and sees a live heap) or entirely
// after it (and observes disposed==true) — never a stale disposed==false
// read racing an in-flight Dispose.
func (dc *DataCenter) materialize(addr core.Address, parent Parent) (*Element, error) {
	dc.mu.RLock()
	if dc.disposed.Load() {
		dc.mu.RUnlock()
		return nil, &core.UseAfterDisposeError{What: "data center"}
	}
	if cached, ok := dc.cache.Get(addr); ok {
		dc.mu.RUnlock()
		return cached, nil
	}
	cur, err := dc.elementHeap.ReaderAt(addr)
	logger := dc.logger
	dc.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	rec, err := core.ParseElementRecord(cur)
	if err != nil {
		return nil, err
	}

	el := &Element{dc: dc, addr: addr, parent: parent, rec: rec}

	if !rec.IsPlaceholder() {
		flags, extIndex := core.DecodeExtensionWord(rec.ExtensionWord)
		if flags != 0 {
			return nil, core.NewStructuralError("element extension word", "flags must be zero, got %#x", flags)
		}
		if !dc.extensions.InRange(extIndex) {
			return nil, core.NewStructuralError("element extension index", "index %d out of range", extIndex)
		}

		name, ok := dc.names.Lookup(int(rec.NameIndexPlusOne) - 1)
		if !ok {
			return nil, core.NewStructuralError("element name index", "index %d out of range", int(rec.NameIndexPlusOne)-1)
		}
		el.name = name
	}

	dc.cache.Add(addr, el)
	if logger != nil {
		logger.Debug("element materialized", zap.Uint16("segment", addr.Segment), zap.Uint16("index", addr.Index), zap.String("name", el.name))
	}
	return el, nil
}
