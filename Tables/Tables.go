// Package Tables implements hash tables with pluggable hash, equality, and
// element-lifecycle policies. The implementations here assume exclusive
// access by one logical owner at a time; nothing is synchronized internally.
package Tables

// Assign is the lifecycle policy for one element type. The zero value treats
// elements as plain values, stored and discarded with ordinary assignment,
// which is right for anything that doesn't own an external resource.
type Assign[E any] struct {
	// Clone produces the stored copy of an element on insertion and on
	// overwrite. Reads and slot relocations never clone: the stored value
	// is handed out or moved as is, so ownership stays with the table.
	Clone func(E) E
	// Drop releases whatever an element owns when it leaves the table
	// through Delete, overwrite, or Free.
	Drop func(E)
}

func (u *Assign[E]) clone(e E) E {
	if u.Clone == nil {
		return e
	}
	return u.Clone(e)
}

func (u *Assign[E]) drop(e E) {
	if u.Drop != nil {
		u.Drop(e)
	}
}

// Map is the operation set shared by table implementations. Store reports
// whether the key was absent; Delete reports whether it was present.
type Map[K, V any] interface {
	Store(K, V) bool
	Load(K) (V, bool)
	HasKey(K) bool
	Delete(K) bool
	LoadAndDelete(K) (V, bool)
	Size() uint
	Range(func(K, V) bool)
}
