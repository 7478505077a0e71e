package frontier

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors returned by Frontier operations.
var (
	// ErrDuplicate indicates Insert was called for an item already in the frontier.
	ErrDuplicate = errors.New("frontier: item already present")

	// ErrAbsent indicates DecreaseKey was called for an item not in the frontier.
	ErrAbsent = errors.New("frontier: item not present")

	// ErrKeyNotDecreased indicates DecreaseKey was called with a key that is
	// not strictly smaller than the stored key.
	ErrKeyNotDecreased = errors.New("frontier: new key is not smaller than current key")

	// ErrEmpty indicates PopMin was called on an empty frontier.
	ErrEmpty = errors.New("frontier: empty")
)

// Frontier is a min-priority queue over comparable items with decrease-key.
// The zero value is not usable; construct with New. Not safe for concurrent use.
type Frontier[K comparable] struct {
	h     itemHeap[K]
	index map[K]*item[K]
	seq   uint64
}

// New returns an empty Frontier.
func New[K comparable]() *Frontier[K] {
	return &Frontier[K]{index: make(map[K]*item[K])}
}

// Insert adds value with the given key. Returns ErrDuplicate if value is present.
func (f *Frontier[K]) Insert(value K, key int) error {
	if _, ok := f.index[value]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, value)
	}
	it := &item[K]{value: value, key: key, seq: f.seq}
	f.seq++
	heap.Push(&f.h, it)
	f.index[value] = it

	return nil
}

// DecreaseKey lowers the key of value. The new key must be strictly smaller
// than the stored one; otherwise ErrKeyNotDecreased is returned and the
// frontier is left unchanged.
func (f *Frontier[K]) DecreaseKey(value K, key int) error {
	it, ok := f.index[value]
	if !ok {
		return fmt.Errorf("%w: %v", ErrAbsent, value)
	}
	if key >= it.key {
		return fmt.Errorf("%w: %v has key %d, got %d", ErrKeyNotDecreased, value, it.key, key)
	}
	it.key = key
	heap.Fix(&f.h, it.pos)

	return nil
}

// Upsert inserts value if absent, otherwise decreases its key.
// The monotonic contract of DecreaseKey still applies.
func (f *Frontier[K]) Upsert(value K, key int) error {
	if _, ok := f.index[value]; !ok {
		return f.Insert(value, key)
	}
	return f.DecreaseKey(value, key)
}

// PopMin removes and returns an item with the minimum key.
// Among equal keys the earliest inserted item is returned.
func (f *Frontier[K]) PopMin() (K, int, error) {
	if f.h.Len() == 0 {
		var zero K
		return zero, 0, ErrEmpty
	}
	it := heap.Pop(&f.h).(*item[K])
	delete(f.index, it.value)

	return it.value, it.key, nil
}

// IsEmpty reports whether no items remain.
func (f *Frontier[K]) IsEmpty() bool { return f.h.Len() == 0 }

// Len returns the number of items in the frontier.
func (f *Frontier[K]) Len() int { return f.h.Len() }

// Contains reports whether value is currently queued.
func (f *Frontier[K]) Contains(value K) bool {
	_, ok := f.index[value]
	return ok
}

// Key returns the stored key of value.
func (f *Frontier[K]) Key(value K) (int, bool) {
	it, ok := f.index[value]
	if !ok {
		return 0, false
	}
	return it.key, true
}

// item is one heap slot. pos is kept current by Swap so heap.Fix can be
// called directly on decrease-key.
type item[K comparable] struct {
	value K
	key   int
	seq   uint64
	pos   int
}

// itemHeap is a min-heap of *item ordered by key, then insertion sequence.
type itemHeap[K comparable] []*item[K]

func (h itemHeap[K]) Len() int { return len(h) }

func (h itemHeap[K]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *itemHeap[K]) Push(x any) {
	it := x.(*item[K])
	it.pos = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.pos = -1
	*h = old[:n-1]

	return it
}
