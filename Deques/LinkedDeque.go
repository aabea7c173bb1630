package Deques

import (
	"github.com/zsebastian/structures/Lists"
)

type node[T any] struct {
	prev, next *node[T]
	item       T
}

func nodePrev[T any](n *node[T]) **node[T] { return &n.prev }
func nodeNext[T any](n *node[T]) **node[T] { return &n.next }

// MakeLinkedDeque makes a Deque of linked nodes. Pushes allocate a node
// each; pops free one. No resizing ever happens, so single operations stay
// O(1) in the worst case.
func MakeLinkedDeque[T any]() Deque[T] {
	return &linkedDeq[T]{}
}

type linkedDeq[T any] struct {
	head, tail *node[T]
	length     uint
}

func (this linkedDeq[T]) Empty() bool {
	return this.length == 0
}

func (this linkedDeq[T]) Size() uint {
	return this.length
}

func (this *linkedDeq[T]) PushFront(item T) {
	this.head = Lists.Link(&node[T]{item: item}, nil, this.head, nodePrev[T], nodeNext[T])
	if this.tail == nil {
		this.tail = this.head
	}
	this.length++
}

func (this *linkedDeq[T]) PushBack(item T) {
	this.tail = Lists.Link(&node[T]{item: item}, this.tail, nil, nodePrev[T], nodeNext[T])
	if this.head == nil {
		this.head = this.tail
	}
	this.length++
}

func (this *linkedDeq[T]) PopFront() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyDequeError{}
	} else {
		n := this.head
		this.head = n.next
		Lists.Unlink(n, nodePrev[T], nodeNext[T])
		if this.head == nil {
			this.tail = nil
		}
		this.length--
		return n.item, nil
	}
}

func (this *linkedDeq[T]) PopBack() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyDequeError{}
	} else {
		n := this.tail
		this.tail = n.prev
		Lists.Unlink(n, nodePrev[T], nodeNext[T])
		if this.tail == nil {
			this.head = nil
		}
		this.length--
		return n.item, nil
	}
}

func (this linkedDeq[T]) Front() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.head.item
	}
}

func (this linkedDeq[T]) Back() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.tail.item
	}
}

func (this *linkedDeq[T]) Clear() {
	this.head, this.tail, this.length = nil, nil, 0
}
