package Deques

type circArrD[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayDeque makes a Deque over a circular buffer. Pushes at either end
// grow the buffer by half when full; Shrink gives the slack back. Popped
// cells are zeroed so the buffer pins nothing.
func MakeArrayDeque[T any](initCap uint) ArrayDeque[T] {
	return &circArrD[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrD[T]) Empty() bool {
	return this.sz == 0
}

func (this circArrD[T]) Size() uint {
	return this.sz
}

func (this *circArrD[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
	} else if this.sz > 0 {
		copy(nc, this.content[this.head:])
		copy(nc[uint(len(this.content))-this.head:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

func (this *circArrD[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrD[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrD[T]) PushBack(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrD[T]) PushFront(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.head = (this.head + uint(len(this.content)) - 1) % uint(len(this.content))
	this.content[this.head] = item
	this.sz++
}

func (this *circArrD[T]) PopFront() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyDequeError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this *circArrD[T]) PopBack() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyDequeError{}
	} else {
		this.tail = (this.tail + uint(len(this.content)) - 1) % uint(len(this.content))
		t := this.content[this.tail]
		this.content[this.tail] = *new(T)
		this.sz--
		return t, nil
	}
}

func (this circArrD[T]) Front() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}

func (this circArrD[T]) Back() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[(this.tail+uint(len(this.content))-1)%uint(len(this.content))]
	}
}
