package hashfunc

import "math/rand"

// Linear - Implements linear probing, g(k, i) = i + 1
type Linear[K Key] struct{}

// NewLinear - Returns a pointer to a new Linear instance
func NewLinear[K Key]() *Linear[K] {
	return &Linear[K]{}
}

// Explore - Returns attempt + 1 regardless of key
func (L *Linear[K]) Explore(_ K, attempt uint64) uint64 {
	return attempt + 1
}

// Quadratic - Implements quadratic probing, g(k, i) = i * i
type Quadratic[K Key] struct{}

// NewQuadratic - Returns a pointer to a new Quadratic instance
func NewQuadratic[K Key]() *Quadratic[K] {
	return &Quadratic[K]{}
}

// Explore - Returns attempt squared regardless of key
func (Q *Quadratic[K]) Explore(_ K, attempt uint64) uint64 {
	return attempt * attempt
}

// DoubleDispersion - Implements double hashing, g(k, i) = f(k) * i where f is a second dispersion function
type DoubleDispersion[K Key] struct {
	dispersion DispersionFunction[K]
}

// NewDoubleDispersion - Returns a pointer to a new DoubleDispersion instance probing with the given dispersion function
func NewDoubleDispersion[K Key](dispersion DispersionFunction[K]) *DoubleDispersion[K] {
	return &DoubleDispersion[K]{dispersion: dispersion}
}

// Explore - Returns f(key) * attempt
func (D *DoubleDispersion[K]) Explore(key K, attempt uint64) uint64 {
	return D.dispersion.Disperse(key) * attempt
}

// Redispersion - Implements redispersion, the probe sequence for a key is the sequence of draws from a
// pseudorandom generator seeded with that key. The generator is private to the instance.
type Redispersion[K Key] struct {
	rnd *rand.Rand
}

// NewRedispersion - Returns a pointer to a new Redispersion instance
func NewRedispersion[K Key]() *Redispersion[K] {
	return &Redispersion[K]{rnd: rand.New(rand.NewSource(1))}
}

// Explore - Reseeds with key, skips attempt - 1 draws and returns the next one.
// Attempts 0 and 1 both yield the first draw.
func (R *Redispersion[K]) Explore(key K, attempt uint64) uint64 {
	R.rnd.Seed(int64(key))
	for j := uint64(1); j < attempt; j++ {
		R.rnd.Int63()
	}

	return uint64(R.rnd.Int63())
}
