package hashfunc

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/hashtable/internal/utils"
)

// Modulo - Disperses a key by taking it modulo the table size
type Modulo[K Key] struct {
	tableSize uint64
}

// NewModulo - Returns a pointer to a new Modulo instance
func NewModulo[K Key](tableSize uint64) *Modulo[K] {
	return &Modulo[K]{tableSize: tableSize}
}

// Disperse - Returns key mod table size
func (M *Modulo[K]) Disperse(key K) uint64 {
	return uint64(key) % M.tableSize
}

// GetTableSize - Returns the table size the function disperses over
func (M *Modulo[K]) GetTableSize() uint64 {
	return M.tableSize
}

// Sum - Disperses a key by summing its decimal digits and taking the sum modulo the table size
type Sum[K Key] struct {
	tableSize uint64
}

// NewSum - Returns a pointer to a new Sum instance
func NewSum[K Key](tableSize uint64) *Sum[K] {
	return &Sum[K]{tableSize: tableSize}
}

// Disperse - Returns the digit sum of key mod table size
func (S *Sum[K]) Disperse(key K) uint64 {
	return utils.DigitSum(uint64(key)) % S.tableSize
}

// GetTableSize - Returns the table size the function disperses over
func (S *Sum[K]) GetTableSize() uint64 {
	return S.tableSize
}

// Pseudorandom - Disperses a key by seeding a pseudorandom generator with it and drawing one value.
// The generator is private to the instance and reseeded on every call, so the result for a key never
// depends on what was dispersed before it.
type Pseudorandom[K Key] struct {
	tableSize uint64
	rnd       *rand.Rand
}

// NewPseudorandom - Returns a pointer to a new Pseudorandom instance
func NewPseudorandom[K Key](tableSize uint64) *Pseudorandom[K] {
	return &Pseudorandom[K]{
		tableSize: tableSize,
		rnd:       rand.New(rand.NewSource(1)),
	}
}

// Disperse - Returns the first draw of a generator seeded with key, mod table size
func (P *Pseudorandom[K]) Disperse(key K) uint64 {
	P.rnd.Seed(int64(key))
	return uint64(P.rnd.Int63()) % P.tableSize
}

// GetTableSize - Returns the table size the function disperses over
func (P *Pseudorandom[K]) GetTableSize() uint64 {
	return P.tableSize
}

// XXHash - Disperses a key by hashing its 8 byte little endian representation with xxhash
type XXHash[K Key] struct {
	tableSize uint64
}

// NewXXHash - Returns a pointer to a new XXHash instance
func NewXXHash[K Key](tableSize uint64) *XXHash[K] {
	return &XXHash[K]{tableSize: tableSize}
}

// Disperse - Returns xxhash of key mod table size
func (X *XXHash[K]) Disperse(key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return xxhash.Sum64(buf[:]) % X.tableSize
}

// GetTableSize - Returns the table size the function disperses over
func (X *XXHash[K]) GetTableSize() uint64 {
	return X.tableSize
}
