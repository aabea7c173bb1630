// Package Lists implements an intrusive doubly linked list as a base layer
// for building concrete list shapes. No head or tail node is owned here and
// nothing allocates: the caller's node type carries the links, reached
// through accessor functions. Functions take a node along with the accessors
// for the links they touch; an accessor is never called with nil, so it
// needs no nil checks of its own. All nodes of one list must share the same
// accessors.
package Lists

// Ref returns the address of one of n's link fields.
type Ref[N any] func(n *N) **N

// Next returns n's successor, or nil.
func Next[N any](n *N, next Ref[N]) *N {
	if n != nil {
		return *next(n)
	}
	return nil
}

// Prev returns n's predecessor, or nil.
func Prev[N any](n *N, prev Ref[N]) *N {
	if n != nil {
		return *prev(n)
	}
	return nil
}

// Link places n between prevNode and nextNode. Either neighbor may be nil,
// making this an append, a prepend, or a link of a lone node. Returns n.
func Link[N any](n, prevNode, nextNode *N, prev, next Ref[N]) *N {
	*prev(n) = prevNode
	*next(n) = nextNode
	if prevNode != nil {
		*next(prevNode) = n
	}
	if nextNode != nil {
		*prev(nextNode) = n
	}
	return n
}

// LinkAfter links n right after at.
func LinkAfter[N any](n, at *N, prev, next Ref[N]) *N {
	return Link(n, at, Next(at, next), prev, next)
}

// LinkBefore links n right before at.
func LinkBefore[N any](n, at *N, prev, next Ref[N]) *N {
	return Link(n, Prev(at, prev), at, prev, next)
}

// Unlink removes n, joining its neighbors and zeroing n's links. Returns n.
func Unlink[N any](n *N, prev, next Ref[N]) *N {
	p, x := prev(n), next(n)
	if *p != nil {
		*next(*p) = *x
	}
	if *x != nil {
		*prev(*x) = *p
	}
	*p = nil
	*x = nil
	return n
}

// Head walks prev links from n to the first node. Nil in, nil out.
func Head[N any](n *N, prev Ref[N]) *N {
	head := n
	for head != nil {
		p := *prev(head)
		if p == nil {
			break
		}
		head = p
	}
	return head
}

// Tail walks next links from n to the last node. Nil in, nil out.
func Tail[N any](n *N, next Ref[N]) *N {
	tail := n
	for tail != nil {
		x := *next(tail)
		if x == nil {
			break
		}
		tail = x
	}
	return tail
}

// LinkHead prepends n to the list holding from, which needn't be the head.
// Returns n.
func LinkHead[N any](from, n *N, prev, next Ref[N]) *N {
	return Link(n, nil, Head(from, prev), prev, next)
}

// LinkTail appends n to the list holding from, which needn't be the tail.
// Returns n.
func LinkTail[N any](from, n *N, prev, next Ref[N]) *N {
	return Link(n, Tail(from, next), nil, prev, next)
}

// UnlinkHead unlinks and returns the head of the list holding n.
func UnlinkHead[N any](n *N, prev, next Ref[N]) *N {
	return Unlink(Head(n, prev), prev, next)
}

// UnlinkTail unlinks and returns the tail of the list holding n.
func UnlinkTail[N any](n *N, prev, next Ref[N]) *N {
	return Unlink(Tail(n, next), prev, next)
}
