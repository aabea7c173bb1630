// Package Vectors implements a growable array with positional inserts and
// binary search over caller-ordered content.
package Vectors

import (
	"slices"
)

const baseSize = 10

type EmptyVectorError struct {
}

func (e *EmptyVectorError) Error() string {
	return "Vector is Empty: cannot Pop."
}

// Make makes a Vector with room for initCap elements. The zero Vector is
// also ready to use.
func Make[T any](initCap uint) *Vector[T] {
	return &Vector[T]{make([]T, 0, initCap)}
}

type Vector[T any] struct {
	s []T
}

func (u *Vector[T]) Size() uint {
	return uint(len(u.s))
}

func (u *Vector[T]) Cap() uint {
	return uint(cap(u.s))
}

// Reserve reallocates so at least n elements fit. It never shrinks.
func (u *Vector[T]) Reserve(n uint) {
	if uint(cap(u.s)) < n {
		ns := make([]T, len(u.s), n*2+baseSize)
		copy(ns, u.s)
		u.s = ns
	}
}

func (u *Vector[T]) Push(v T) {
	u.Reserve(uint(len(u.s)) + 1)
	u.s = append(u.s, v)
}

// Pop removes and returns the last element, zeroing the vacated cell.
func (u *Vector[T]) Pop() (T, error) {
	if len(u.s) == 0 {
		return *new(T), &EmptyVectorError{}
	}
	v := u.s[len(u.s)-1]
	u.s[len(u.s)-1] = *new(T)
	u.s = u.s[:len(u.s)-1]
	return v, nil
}

func (u *Vector[T]) At(i uint) T {
	return u.s[i]
}

// Ptr returns the address of element i, valid until the next reallocation.
func (u *Vector[T]) Ptr(i uint) *T {
	return &u.s[i]
}

func (u *Vector[T]) Set(i uint, v T) {
	u.s[i] = v
}

func (u *Vector[T]) First() (T, error) {
	if len(u.s) == 0 {
		return *new(T), &EmptyVectorError{}
	}
	return u.s[0], nil
}

func (u *Vector[T]) Last() (T, error) {
	if len(u.s) == 0 {
		return *new(T), &EmptyVectorError{}
	}
	return u.s[len(u.s)-1], nil
}

// Insert places v at index i, shifting everything from i one step right.
// i == Size() appends; anything past that panics.
func (u *Vector[T]) Insert(i uint, v T) {
	u.Reserve(uint(len(u.s)) + 1)
	u.s = slices.Insert(u.s, int(i), v)
}

// RemoveAt removes and returns the element at i, shifting the tail one step
// left and zeroing the vacated cell.
func (u *Vector[T]) RemoveAt(i uint) T {
	v := u.s[i]
	u.s = slices.Delete(u.s, int(i), int(i)+1)
	return v
}

// Resize sets the length to n, zero-filling grown cells and zeroing trimmed
// ones.
func (u *Vector[T]) Resize(n uint) {
	if n <= uint(len(u.s)) {
		clear(u.s[n:])
		u.s = u.s[:n]
		return
	}
	u.Reserve(n)
	old := len(u.s)
	u.s = u.s[:n]
	clear(u.s[old:])
}

func (u *Vector[T]) Clear() {
	clear(u.s)
	u.s = u.s[:0]
}

// Range calls f on each element in order until f returns false.
func (u *Vector[T]) Range(f func(T) bool) {
	for _, v := range u.s {
		if !f(v) {
			return
		}
	}
}

// BinarySearch finds v in an ascending Vector using cmp, which goes negative
// when its first argument orders before its second. It returns the index of
// a match, or the bitwise complement of the insertion point when there is
// none; callers recover the insertion point with ^.
func (u *Vector[T]) BinarySearch(v T, cmp func(T, T) int) int {
	if i, ok := slices.BinarySearchFunc(u.s, v, cmp); ok {
		return i
	} else {
		return ^i
	}
}
