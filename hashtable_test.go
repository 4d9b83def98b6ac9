//go:build unit

package hashtable

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewHashTable(t *testing.T) {
	t.Run("creates an open dispersion table", func(t *testing.T) {
		// Prepare
		conf := Conf[uint64]{
			TableSize:   5,
			Technique:   crt.OpenDispersion,
			BlockSize:   3,
			Dispersion:  hashfunc.NewModulo[uint64](5),
			Exploration: hashfunc.NewLinear[uint64](),
		}

		// Execute
		ht, info, err := NewHashTable(conf)

		// Check
		assert.NoError(t, err, "create new hash table")
		assert.Len(t, ht.buckets, 5, "one bucket per index")
		assert.Equal(t, uint64(5), info.TableSize, "table size preserved")
		assert.Equal(t, crt.OpenDispersion, info.Technique, "technique preserved")
		assert.Equal(t, 0, info.BlockSize, "block size ignored")
		assert.Equal(t, uint64(0), info.Capacity, "no capacity limit")
		assert.Nil(t, ht.exploration, "exploration ignored")
	})

	t.Run("creates a closed dispersion table", func(t *testing.T) {
		// Prepare
		conf := Conf[uint64]{
			TableSize:   10,
			Technique:   crt.CloseDispersion,
			BlockSize:   3,
			Dispersion:  hashfunc.NewSum[uint64](10),
			Exploration: hashfunc.NewQuadratic[uint64](),
			SearchMode:  crt.SearchPrimaryOnly,
		}

		// Execute
		ht, info, err := NewHashTable(conf)

		// Check
		assert.NoError(t, err, "create new hash table")
		assert.Len(t, ht.buckets, 10, "one bucket per index")
		assert.Equal(t, 3, info.BlockSize, "block size preserved")
		assert.Equal(t, uint64(30), info.Capacity, "capacity is table size times block size")
		assert.Equal(t, crt.SearchPrimaryOnly, info.SearchMode, "search mode preserved")
		assert.Equal(t, info, ht.Parameters(), "parameters match")
	})

	t.Run("refuses invalid configurations", func(t *testing.T) {
		// Prepare
		tests := map[string]Conf[uint64]{
			"zero table size": {
				TableSize: 0, Technique: crt.OpenDispersion, Dispersion: hashfunc.NewModulo[uint64](1),
			},
			"missing dispersion": {
				TableSize: 5, Technique: crt.OpenDispersion,
			},
			"dispersion over other table size": {
				TableSize: 5, Technique: crt.OpenDispersion, Dispersion: hashfunc.NewModulo[uint64](7),
			},
			"closed without block size": {
				TableSize: 5, Technique: crt.CloseDispersion, Dispersion: hashfunc.NewModulo[uint64](5),
				Exploration: hashfunc.NewLinear[uint64](),
			},
			"closed without exploration": {
				TableSize: 5, Technique: crt.CloseDispersion, BlockSize: 1, Dispersion: hashfunc.NewModulo[uint64](5),
			},
			"unknown technique": {
				TableSize: 5, Technique: 0, Dispersion: hashfunc.NewModulo[uint64](5),
			},
			"unknown search mode": {
				TableSize: 5, Technique: crt.OpenDispersion, Dispersion: hashfunc.NewModulo[uint64](5), SearchMode: 9,
			},
		}

		for name, conf := range tests {
			// Execute
			ht, _, err := NewHashTable(conf)

			// Check
			assert.Errorf(t, err, "refuses %s", name)
			assert.Nilf(t, ht, "no table for %s", name)
		}
	})

	t.Run("reports unknown technique with typed error", func(t *testing.T) {
		// Prepare
		conf := Conf[uint64]{TableSize: 5, Technique: 3, Dispersion: hashfunc.NewModulo[uint64](5)}

		// Execute
		_, _, err := NewHashTable(conf)

		// Check
		assert.ErrorIs(t, err, crt.UnknownTechnique{}, "correct error")
	})
}
