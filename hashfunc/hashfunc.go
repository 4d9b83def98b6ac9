package hashfunc

// Key - Constraint for the keys a hash table can hold. Any integer kind qualifies, the functions in this package
// work on the key converted to uint64.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DispersionFunction - Interface for the function that maps a key to its primary bucket.
type DispersionFunction[K Key] interface {
	// Disperse - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in a failed operation down stream.
	Disperse(key K) uint64
}

// ExplorationFunction - Interface for the function that produces the probe sequence used when the primary bucket
// is full. The returned value is an offset that the hash table adds to the primary bucket index, modulo the table size.
type ExplorationFunction[K Key] interface {
	// Explore - Returns the offset to probe for key in the given attempt, attempt starts at 0 and is
	// incremented by one for every bucket found full.
	Explore(key K, attempt uint64) uint64
}

// Sized - Optional interface for dispersion functions that know the table size they disperse over.
// A hash table refuses a dispersion function that reports a table size other than its own.
type Sized interface {
	GetTableSize() uint64
}

// DispersionFunc - Adapter that allows an ordinary function to be used as a DispersionFunction
type DispersionFunc[K Key] func(key K) uint64

// Disperse - Calls F(key)
func (F DispersionFunc[K]) Disperse(key K) uint64 {
	return F(key)
}

// ExplorationFunc - Adapter that allows an ordinary function to be used as an ExplorationFunction
type ExplorationFunc[K Key] func(key K, attempt uint64) uint64

// Explore - Calls F(key, attempt)
func (F ExplorationFunc[K]) Explore(key K, attempt uint64) uint64 {
	return F(key, attempt)
}
