package separatechaining

import "github.com/gostonefire/hashtable/hashfunc"

// node - One link in the chain
type node[K hashfunc.Key] struct {
	key  K
	next *node[K]
}

// Chain - Represents a bucket used in open dispersion, an unbounded singly linked chain of synonyms.
// New keys are linked in at the tail so the chain keeps insertion order.
type Chain[K hashfunc.Key] struct {
	head *node[K]
	tail *node[K]
	size int
}

// NewChain - Returns a pointer to a new empty Chain
func NewChain[K hashfunc.Key]() *Chain[K] {
	return &Chain[K]{}
}

// Search - Walks the chain and returns true if key is found
func (C *Chain[K]) Search(key K) bool {
	for n := C.head; n != nil; n = n.next {
		if n.key == key {
			return true
		}
	}

	return false
}

// Insert - Links key in at the tail of the chain.
// It returns false only if the key is already in the chain.
func (C *Chain[K]) Insert(key K) bool {
	if C.Search(key) {
		return false
	}

	n := &node[K]{key: key}
	if C.tail == nil {
		C.head = n
	} else {
		C.tail.next = n
	}
	C.tail = n
	C.size++

	return true
}

// IsFull - A chain is never full
func (C *Chain[K]) IsFull() bool {
	return false
}

// Size - Returns the number of keys in the chain
func (C *Chain[K]) Size() int {
	return C.size
}

// Keys - Returns the keys from head to tail
func (C *Chain[K]) Keys() []K {
	keys := make([]K, 0, C.size)
	for n := C.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}

	return keys
}
