package Tables

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zsebastian/structures"
	"golang.org/x/exp/constraints"
	"unsafe"
)

// Capacity ladder from the smallest table up. Past the last rung growth is
// ~1.5x and primality is no longer promised, only strict monotonic growth.
var primeSizes = [...]uint{13, 17, 29, 47, 61, 97, 157, 251, 349}

func nextCap(n uint) uint {
	if n >= primeSizes[len(primeSizes)-1] {
		return n*2 - n/2
	}
	for _, p := range primeSizes {
		if p > n {
			return p
		}
	}
	panic("unexpected case")
}

// New returns a table at the smallest capacity with the given hash,
// equality, and lifecycle policies. Policies that need extra context should
// capture it in their closures.
func New[K, V any](hash func(K) uint, eq func(K, K) bool, kp Assign[K], vp Assign[V]) *ProbeMap[K, V] {
	n := nextCap(0)
	return &ProbeMap[K, V]{
		keys: make([]K, n),
		vals: make([]V, n),
		flag: makeFlagArr(n),
		hash: hash,
		eq:   eq,
		kp:   kp,
		vp:   vp,
	}
}

// Of returns a table for integer keys hashed by a randomly seeded runtime
// hasher, with plain-value lifecycles.
func Of[K constraints.Integer, V any]() *ProbeMap[K, V] {
	s := structures.MakeHasher()
	return New[K, V](func(k K) uint {
		return s.HashMem(unsafe.Pointer(&k), unsafe.Sizeof(k))
	}, func(a, b K) bool { return a == b }, Assign[K]{}, Assign[V]{})
}

// OfStrings returns a table for string keys hashed with xxhash, with
// plain-value lifecycles.
func OfStrings[V any]() *ProbeMap[string, V] {
	return New[string, V](func(k string) uint {
		return uint(xxhash.Sum64String(k))
	}, func(a, b string) bool { return a == b }, Assign[string]{}, Assign[V]{})
}

// ProbeMap is an open-addressing hash table over three parallel regions:
// keys, values, and per-slot states. Collisions probe quadratically,
// deletion leaves tombstones, and growth rehashes into fresh regions along a
// prime capacity ladder. Not safe for concurrent use.
type ProbeMap[K, V any] struct {
	keys []K
	vals []V
	flag flagArr
	// load counts every placement since the last rehash, tombstones
	// included, so stale slots keep pushing the table toward the growth
	// trigger. live counts occupied slots only.
	load, live uint
	hash       func(K) uint
	eq         func(K, K) bool
	kp         Assign[K]
	vp         Assign[V]
}

// Store maps k to v and reports whether k was absent (true) or had its value
// replaced in place (false). When load has passed half of capacity the table
// grows first, even when the call ends up replacing in place.
func (u *ProbeMap[K, V]) Store(k K, v V) bool {
	return u.place(k, v, false)
}

// place is the insertion primitive shared by Store and grow. In reset mode
// it relocates elements the table already owns, so the lifecycle hooks are
// skipped and neither the growth trigger nor probe exhaustion can be hit.
func (u *ProbeMap[K, V]) place(k K, v V, reset bool) bool {
	if u.load > uint(len(u.keys))/2 {
		if reset {
			panic("unexpected case")
		}
		u.grow(nextCap(uint(len(u.keys))))
	}
	for {
		n := uint(len(u.keys))
		h := u.hash(k)
		free := n // first reusable slot of the sequence; n while none seen
	probe:
		for i := uint(0); i < n; i++ {
			switch j := (h + i*i) % n; u.flag.get(j) {
			case slotUsed:
				if u.eq(u.keys[j], k) {
					if reset {
						u.vals[j] = v
					} else {
						u.vp.drop(u.vals[j])
						u.vals[j] = u.vp.clone(v)
					}
					return false
				}
			case slotDead:
				if free == n {
					free = j
				}
				// not terminating: k may live further along
			default:
				if free == n {
					free = j
				}
				break probe // an empty slot proves k absent
			}
		}
		if free != n {
			if reset {
				u.keys[free], u.vals[free] = k, v
			} else {
				u.keys[free], u.vals[free] = u.kp.clone(k), u.vp.clone(v)
			}
			u.flag.set(free, slotUsed)
			u.load++
			u.live++
			return true
		}
		// The whole sequence was occupied without a match. Growing strictly
		// and retrying always terminates: rehash restores load <= capacity/2,
		// and a half-empty table can't exhaust a quadratic sequence over a
		// prime capacity.
		if reset {
			panic("unexpected case")
		}
		u.grow(nextCap(n))
	}
}

// grow rehashes into fresh regions of capacity n. Live slots relocate
// through place in reset mode (plain moves, ownership travels with the
// value), tombstones are left behind, and load is recomputed to the live
// count.
func (u *ProbeMap[K, V]) grow(n uint) {
	m := ProbeMap[K, V]{
		keys: make([]K, n),
		vals: make([]V, n),
		flag: makeFlagArr(n),
		hash: u.hash,
		eq:   u.eq,
		kp:   u.kp,
		vp:   u.vp,
	}
	for i := range u.keys {
		if u.flag.get(uint(i)) == slotUsed {
			m.place(u.keys[i], u.vals[i], true)
		}
	}
	u.keys, u.vals, u.flag, u.load, u.live = m.keys, m.vals, m.flag, m.load, m.live
}

// Load returns the value stored for k. It never mutates the table; the
// returned value is a plain copy, so for owning policies it borrows whatever
// the stored element owns.
func (u *ProbeMap[K, V]) Load(k K) (V, bool) {
	n := uint(len(u.keys))
	h := u.hash(k)
	for i := uint(0); i < n; i++ {
		switch j := (h + i*i) % n; u.flag.get(j) {
		case slotUsed:
			if u.eq(u.keys[j], k) {
				return u.vals[j], true
			}
		case slotFree:
			return *new(V), false
		}
	}
	return *new(V), false
}

// HasKey reports whether k is in the table.
func (u *ProbeMap[K, V]) HasKey(k K) bool {
	_, ok := u.Load(k)
	return ok
}

// LoadAndDelete removes k and returns the value it had, copied out before
// the drop hooks run. The vacated slot becomes a tombstone: lookups skip it,
// placements may reuse it, and it counts toward the growth trigger until a
// rehash discards it. load is deliberately not decremented here.
func (u *ProbeMap[K, V]) LoadAndDelete(k K) (V, bool) {
	n := uint(len(u.keys))
	h := u.hash(k)
	for i := uint(0); i < n; i++ {
		switch j := (h + i*i) % n; u.flag.get(j) {
		case slotUsed:
			if u.eq(u.keys[j], k) {
				v := u.vals[j]
				u.kp.drop(u.keys[j])
				u.vp.drop(u.vals[j])
				u.keys[j], u.vals[j] = *new(K), *new(V)
				u.flag.set(j, slotDead)
				u.live--
				return v, true
			}
		case slotFree:
			return *new(V), false
		}
	}
	return *new(V), false
}

// Delete removes k, reporting whether it was present.
func (u *ProbeMap[K, V]) Delete(k K) bool {
	_, ok := u.LoadAndDelete(k)
	return ok
}

// Size returns the number of live pairs.
func (u *ProbeMap[K, V]) Size() uint {
	return u.live
}

// Cap returns the current slot count.
func (u *ProbeMap[K, V]) Cap() uint {
	return uint(len(u.keys))
}

// Cursor is an opaque position in the slot array. Any Store or Delete may
// rehash and invalidates every Cursor; advancing a stale one is undefined
// behavior and isn't detected.
type Cursor uint

func (u *ProbeMap[K, V]) Begin() Cursor {
	return 0
}

func (u *ProbeMap[K, V]) End() Cursor {
	return Cursor(len(u.keys))
}

// Next returns the first pair at or after c in slot order along with the
// successor position, or ok == false once exhausted. Slot order has no
// relation to insertion order.
func (u *ProbeMap[K, V]) Next(c Cursor) (k K, v V, next Cursor, ok bool) {
	for i := uint(c); i < uint(len(u.keys)); i++ {
		if u.flag.get(i) == slotUsed {
			return u.keys[i], u.vals[i], Cursor(i + 1), true
		}
	}
	return *new(K), *new(V), u.End(), false
}

// Range calls f on every pair in slot order until f returns false. The table
// must not be mutated during the walk.
func (u *ProbeMap[K, V]) Range(f func(K, V) bool) {
	for i := uint(0); i < uint(len(u.keys)); i++ {
		if u.flag.get(i) == slotUsed && !f(u.keys[i], u.vals[i]) {
			return
		}
	}
}

// Pairs returns a stateful iterator over the pairs in slot order.
func (u *ProbeMap[K, V]) Pairs() func() (K, V, bool) {
	c := u.Begin()
	return func() (K, V, bool) {
		k, v, next, ok := u.Next(c)
		c = next
		return k, v, ok
	}
}

// Keys is Pairs restricted to keys.
func (u *ProbeMap[K, V]) Keys() func() (K, bool) {
	next := u.Pairs()
	return func() (K, bool) {
		k, _, ok := next()
		return k, ok
	}
}

// Values is Pairs restricted to values.
func (u *ProbeMap[K, V]) Values() func() (V, bool) {
	next := u.Pairs()
	return func() (V, bool) {
		_, v, ok := next()
		return v, ok
	}
}

// Free drops every stored element and releases all three regions. The table
// stays usable afterwards: the next Store reallocates from the smallest
// capacity, and lookups on the freed table simply miss.
func (u *ProbeMap[K, V]) Free() {
	for i := uint(0); i < uint(len(u.keys)); i++ {
		if u.flag.get(i) == slotUsed {
			u.kp.drop(u.keys[i])
			u.vp.drop(u.vals[i])
		}
	}
	u.keys, u.vals, u.flag, u.load, u.live = nil, nil, flagArr{}, 0, 0
}
