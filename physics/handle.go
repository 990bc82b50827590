package physics

import (
	"strconv"
	"sync/atomic"
)

// BodyHandle identifies a body inside the World that created it.
type BodyHandle uint64

// ColliderHandle identifies a collider inside the World that created it.
type ColliderHandle uint64

type slotIndex uint32
type generation uint32

const slotIndexBits = 32

// worldGeneration hands every arena a distinct generation so handles kept
// across a level restart are rejected by the new World.
var worldGeneration atomic.Uint32

func makeHandle(idx slotIndex, gen generation) uint64 {
	return uint64(gen)<<slotIndexBits | uint64(idx)
}

func handleIndex(h uint64) slotIndex {
	return slotIndex(uint32(h))
}

func handleGeneration(h uint64) generation {
	return generation(uint32(h >> slotIndexBits))
}

func (h BodyHandle) Valid() bool {
	return h > 0
}

func (h BodyHandle) String() string {
	return "body:" + strconv.FormatUint(uint64(handleIndex(uint64(h))), 10) +
		"@" + strconv.FormatUint(uint64(handleGeneration(uint64(h))), 10)
}

func (h ColliderHandle) Valid() bool {
	return h > 0
}

func (h ColliderHandle) String() string {
	return "collider:" + strconv.FormatUint(uint64(handleIndex(uint64(h))), 10) +
		"@" + strconv.FormatUint(uint64(handleGeneration(uint64(h))), 10)
}

// arena stores records by slot. Nothing is ever removed, so the generation
// only changes between arenas.
type arena[T any] struct {
	gen   generation
	items []T
}

func newArena[T any]() arena[T] {
	gen := generation(worldGeneration.Add(1))
	if gen == 0 {
		gen = generation(worldGeneration.Add(1))
	}
	return arena[T]{gen: gen}
}

func (a *arena[T]) insert(v T) uint64 {
	idx := slotIndex(len(a.items))
	a.items = append(a.items, v)
	return makeHandle(idx, a.gen)
}

func (a *arena[T]) get(h uint64) (*T, bool) {
	if h == 0 || handleGeneration(h) != a.gen {
		return nil, false
	}
	idx := int(handleIndex(h))
	if idx >= len(a.items) {
		return nil, false
	}
	return &a.items[idx], true
}

func (a *arena[T]) len() int {
	return len(a.items)
}

func (a *arena[T]) handleAt(i int) uint64 {
	return makeHandle(slotIndex(i), a.gen)
}
