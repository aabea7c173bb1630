package Deques

type Deque[T any] interface {
	PushFront(item T)
	PushBack(item T)
	PopFront() (T, error)
	PopBack() (T, error)
	Front() T
	Back() T
	Empty() bool
	Size() uint
	Clear()
}

type ArrayDeque[T any] interface {
	Deque[T]
	Shrink()
	resize(newLen uint)
}

type EmptyDequeError struct {
}

func (e *EmptyDequeError) Error() string {
	return "Deque is Empty: cannot Pop."
}
