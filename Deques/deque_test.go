package Deques

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func eachDeque(t *testing.T, run func(t *testing.T, D Deque[int])) {
	for _, impl := range []struct {
		name string
		mk   func() Deque[int]
	}{
		{"linked", MakeLinkedDeque[int]},
		{"array", func() Deque[int] { return MakeArrayDeque[int](0) }},
	} {
		t.Run(impl.name, func(t *testing.T) { run(t, impl.mk()) })
	}
}

func TestDeque_Stack(t *testing.T) {
	eachDeque(t, func(t *testing.T, D Deque[int]) {
		for _, v := range []int{1, 2, 3} {
			D.PushBack(v)
		}
		if D.Size() != 3 || D.Front() != 1 || D.Back() != 3 {
			t.Fatalf("bad ends: size %d front %d back %d", D.Size(), D.Front(), D.Back())
		}
		for _, want := range []int{3, 2, 1} {
			if got, err := D.PopBack(); err != nil || got != want {
				t.Errorf("PopBack() = %d, %v; want %d", got, err, want)
			}
		}
		if !D.Empty() {
			t.Error("deque not empty after popping everything")
		}
	})
}

func TestDeque_Queue(t *testing.T) {
	eachDeque(t, func(t *testing.T, D Deque[int]) {
		for _, v := range []int{1, 2, 3} {
			D.PushBack(v)
		}
		for _, want := range []int{1, 2, 3} {
			if got, err := D.PopFront(); err != nil || got != want {
				t.Errorf("PopFront() = %d, %v; want %d", got, err, want)
			}
		}
		if _, err := D.PopFront(); err == nil {
			t.Error("PopFront on an empty deque gave no error")
		}
	})
}

func TestDeque_FrontPushes(t *testing.T) {
	eachDeque(t, func(t *testing.T, D Deque[int]) {
		for _, v := range []int{1, 2, 3} {
			D.PushFront(v)
		}
		if D.Front() != 3 || D.Back() != 1 {
			t.Fatalf("front %d back %d after front pushes", D.Front(), D.Back())
		}
		for _, want := range []int{1, 2, 3} {
			if got, err := D.PopBack(); err != nil || got != want {
				t.Errorf("PopBack() = %d, %v; want %d", got, err, want)
			}
		}
	})
}

func TestDeque_EmptyPops(t *testing.T) {
	eachDeque(t, func(t *testing.T, D Deque[int]) {
		if _, err := D.PopFront(); err == nil {
			t.Error("PopFront on an empty deque gave no error")
		} else if _, ok := err.(*EmptyDequeError); !ok {
			t.Errorf("PopFront error has type %T", err)
		}
		if _, err := D.PopBack(); err == nil {
			t.Error("PopBack on an empty deque gave no error")
		} else if _, ok := err.(*EmptyDequeError); !ok {
			t.Errorf("PopBack error has type %T", err)
		}
		if D.Front() != 0 || D.Back() != 0 {
			t.Error("peeking an empty deque isn't the zero value")
		}
	})
}

func TestDeque_Clear(t *testing.T) {
	eachDeque(t, func(t *testing.T, D Deque[int]) {
		for i := 0; i < 10; i++ {
			D.PushBack(i)
		}
		D.Clear()
		if !D.Empty() || D.Size() != 0 {
			t.Error("deque not empty after Clear")
		}
		D.PushBack(7)
		if v, err := D.PopBack(); err != nil || v != 7 {
			t.Errorf("PopBack() = %d, %v after Clear; want 7", v, err)
		}
	})
}

func TestDeque_Model(t *testing.T) {
	eachDeque(t, func(t *testing.T, D Deque[int]) {
		model := make([]int, 0, 256)
		for i := 0; i < 100000; i++ {
			op := rg.Intn(6)
			switch {
			case op == 0 && len(model) > 0:
				want := model[0]
				model = model[1:]
				if got, err := D.PopFront(); err != nil || got != want {
					t.Fatalf("op %d: PopFront() = %d, %v; want %d", i, got, err, want)
				}
			case op == 1 && len(model) > 0:
				want := model[len(model)-1]
				model = model[:len(model)-1]
				if got, err := D.PopBack(); err != nil || got != want {
					t.Fatalf("op %d: PopBack() = %d, %v; want %d", i, got, err, want)
				}
			case op%2 == 0:
				model = append([]int{i}, model...)
				D.PushFront(i)
			default:
				model = append(model, i)
				D.PushBack(i)
			}
			if D.Size() != uint(len(model)) {
				t.Fatalf("op %d: size %d, model has %d", i, D.Size(), len(model))
			}
		}
		if len(model) > 0 && (D.Front() != model[0] || D.Back() != model[len(model)-1]) {
			t.Error("ends diverged from the model")
		}
	})
}

func TestArrayDeque_Wrap(t *testing.T) {
	D := MakeArrayDeque[int](4)
	next := 0
	for i := 0; i < 256; i++ {
		D.PushBack(2 * i)
		D.PushBack(2*i + 1)
		if v, err := D.PopFront(); err != nil || v != next {
			t.Fatalf("round %d: PopFront() = %d, %v; want %d", i, v, err, next)
		}
		next++
	}
	for ; !D.Empty(); next++ {
		if v, err := D.PopFront(); err != nil || v != next {
			t.Fatalf("drain: PopFront() = %d, %v; want %d", v, err, next)
		}
	}
	if next != 512 {
		t.Errorf("popped %d values, want 512", next)
	}
}

func TestArrayDeque_Shrink(t *testing.T) {
	D := MakeArrayDeque[int](64)
	for i := 0; i < 5; i++ {
		D.PushBack(i)
	}
	D.Shrink()
	if raw := D.(*circArrD[int]); uint(len(raw.content)) != 5 {
		t.Errorf("capacity %d after Shrink, want 5", len(raw.content))
	}
	D.PushFront(-1)
	for i := -1; i < 5; i++ {
		if v, err := D.PopFront(); err != nil || v != i {
			t.Fatalf("PopFront() = %d, %v; want %d", v, err, i)
		}
	}
}

func TestArrayDeque_PopZeroes(t *testing.T) {
	D := MakeArrayDeque[*int](8)
	for i := 0; i < 6; i++ {
		v := i
		D.PushBack(&v)
	}
	for i := 0; i < 4; i++ {
		if _, err := D.PopFront(); err != nil {
			t.Fatal(err)
		}
	}
	raw := D.(*circArrD[*int])
	for i, p := range raw.content {
		if live := i >= 4 && i < 6; (p != nil) != live {
			t.Errorf("cell %d: pointer %v, live %v", i, p, live)
		}
	}
}

const benchRound = 256

func BenchmarkLinkedDeque_Cycle(b *testing.B) {
	D := MakeLinkedDeque[int]()
	b.ReportAllocs()
	for _t := 0; _t < b.N; _t++ {
		for i := 0; i < benchRound; i++ {
			D.PushBack(i)
		}
		for i := 0; i < benchRound; i++ {
			if _, err := D.PopFront(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkArrayDeque_Cycle(b *testing.B) {
	D := MakeArrayDeque[int](benchRound)
	b.ReportAllocs()
	for _t := 0; _t < b.N; _t++ {
		for i := 0; i < benchRound; i++ {
			D.PushBack(i)
		}
		for i := 0; i < benchRound; i++ {
			if _, err := D.PopFront(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkGodsList_Cycle(b *testing.B) {
	l := doublylinkedlist.New()
	b.ReportAllocs()
	for _t := 0; _t < b.N; _t++ {
		for i := 0; i < benchRound; i++ {
			l.Append(i)
		}
		for i := 0; i < benchRound; i++ {
			if _, ok := l.Get(0); !ok {
				b.Fail()
			}
			l.Remove(0)
		}
	}
}
