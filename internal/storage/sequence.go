package storage

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
	"github.com/gostonefire/hashtable/internal/storage/separatechaining"
)

// Sequence - Interface for the contents of one bucket, any implementation must refuse duplicate keys
type Sequence[K hashfunc.Key] interface {
	// Search - Returns true if key is stored in the sequence
	Search(key K) bool
	// Insert - Stores key, returns false if it is already stored or if there is no room left
	Insert(key K) bool
	// IsFull - Returns true if the sequence accepts no more keys
	IsFull() bool
	// Size - Returns the number of keys stored
	Size() int
	// Keys - Returns the stored keys in storage order
	Keys() []K
}

// NewSequence - Returns an empty bucket for the given collision resolution technique.
//   - technique is crt.OpenDispersion (unbounded chain) or crt.CloseDispersion (bounded block)
//   - blockSize is the capacity of a bounded block, it is ignored for crt.OpenDispersion
func NewSequence[K hashfunc.Key](technique int, blockSize int) (sequence Sequence[K], err error) {
	switch technique {
	case crt.OpenDispersion:
		sequence = separatechaining.NewChain[K]()
	case crt.CloseDispersion:
		if blockSize <= 0 {
			err = fmt.Errorf("block size must be a positive value higher than 0 (zero)")
			return
		}
		sequence = openaddressing.NewBlock[K](blockSize)
	default:
		err = fmt.Errorf("technique %d: %w", technique, crt.UnknownTechnique{})
	}

	return
}
