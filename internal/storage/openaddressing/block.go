package openaddressing

import (
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/utils"
)

// Block - Represents a bucket of fixed capacity used in closed dispersion. Once the block is full, keys
// dispersed to it have to be placed elsewhere by the exploration function.
type Block[K hashfunc.Key] struct {
	capacity int
	keys     []K
}

// NewBlock - Returns a pointer to a new empty Block holding at most capacity keys
func NewBlock[K hashfunc.Key](capacity int) *Block[K] {
	return &Block[K]{
		capacity: capacity,
		keys:     make([]K, 0, capacity),
	}
}

// Search - Returns true if key is stored in the block
func (B *Block[K]) Search(key K) bool {
	return utils.Contains(B.keys, key)
}

// Insert - Appends key to the block.
// It returns false if the key is already stored or if the block is full.
func (B *Block[K]) Insert(key K) bool {
	if B.IsFull() || B.Search(key) {
		return false
	}

	B.keys = append(B.keys, key)

	return true
}

// IsFull - Returns true when the number of keys equals the capacity
func (B *Block[K]) IsFull() bool {
	return len(B.keys) >= B.capacity
}

// Size - Returns the number of keys stored
func (B *Block[K]) Size() int {
	return len(B.keys)
}

// Capacity - Returns the max number of keys the block can hold
func (B *Block[K]) Capacity() int {
	return B.capacity
}

// Keys - Returns a copy of the stored keys in insertion order
func (B *Block[K]) Keys() []K {
	keys := make([]K, len(B.keys))
	_ = copy(keys, B.keys)

	return keys
}
