//go:build unit

package storage

import (
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/storage/openaddressing"
	"github.com/gostonefire/hashtable/internal/storage/separatechaining"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewSequence(t *testing.T) {
	t.Run("returns a chain for open dispersion", func(t *testing.T) {
		// Execute
		s, err := NewSequence[uint64](crt.OpenDispersion, 0)

		// Check
		assert.NoError(t, err, "creates sequence")
		assert.IsType(t, &separatechaining.Chain[uint64]{}, s, "unbounded chain")
	})

	t.Run("returns a block for closed dispersion", func(t *testing.T) {
		// Execute
		s, err := NewSequence[uint64](crt.CloseDispersion, 4)

		// Check
		assert.NoError(t, err, "creates sequence")
		assert.IsType(t, &openaddressing.Block[uint64]{}, s, "bounded block")
	})

	t.Run("refuses closed dispersion without block size", func(t *testing.T) {
		// Execute
		_, err := NewSequence[uint64](crt.CloseDispersion, 0)

		// Check
		assert.Error(t, err, "block size required")
	})

	t.Run("refuses an unknown technique", func(t *testing.T) {
		// Execute
		_, err := NewSequence[uint64](42, 1)

		// Check
		assert.ErrorIs(t, err, crt.UnknownTechnique{}, "correct error")
	})
}
