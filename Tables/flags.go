package Tables

import (
	"math/bits"
)

const (
	slotFree byte = iota
	slotUsed
	slotDead
)

// flagArr packs one 2-bit slot state per index into words.
type flagArr struct {
	words []uint
}

func makeFlagArr(n uint) flagArr {
	return flagArr{words: make([]uint, (n*2+bits.UintSize-1)/bits.UintSize)}
}

func (u flagArr) get(i uint) byte {
	return byte(u.words[i*2/bits.UintSize]>>(i*2%bits.UintSize)) & 3
}

func (u flagArr) set(i uint, f byte) {
	w := &u.words[i*2/bits.UintSize]
	s := i * 2 % bits.UintSize
	*w = *w&^(3<<s) | uint(f)<<s
}
