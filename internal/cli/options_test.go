//go:build unit

package cli

import (
	"errors"
	"github.com/gostonefire/hashtable/crt"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewParser(t *testing.T) {
	t.Run("parses closed dispersion options", func(t *testing.T) {
		// Prepare
		var opts Options
		args := []string{"--ts", "100", "--fd", "1", "--hash", "close", "--bs", "10", "--fe", "2", "-n", "5", "-l", "debug"}

		// Execute
		rest, err := NewParser(&opts).ParseArgs(args)

		// Check
		assert.NoError(t, err, "parses arguments")
		assert.Empty(t, rest, "no arguments left")
		assert.Equal(t, uint64(100), opts.TableSize, "table size")
		assert.Equal(t, crt.DispersionModulo, opts.Dispersion, "dispersion code")
		assert.Equal(t, "close", opts.Technique, "technique")
		assert.Equal(t, 10, opts.BlockSize, "block size")
		assert.Equal(t, crt.ExplorationQuadratic, opts.Exploration, "exploration code")
		assert.Equal(t, 5, opts.Random, "random NIFs")
		assert.Equal(t, "debug", opts.LogLevel, "log level")
		assert.Equal(t, "probing", opts.Search, "default search mode")
		assert.NoError(t, opts.Validate(), "valid options")
	})

	t.Run("reads options from the environment", func(t *testing.T) {
		// Prepare
		t.Setenv("HASHTABLE_TS", "7")
		t.Setenv("HASHTABLE_HASH", "open")
		var opts Options

		// Execute
		_, err := NewParser(&opts).ParseArgs([]string{"--fd", "2"})

		// Check
		assert.NoError(t, err, "parses arguments")
		assert.Equal(t, uint64(7), opts.TableSize, "table size from environment")
		assert.Equal(t, "open", opts.Technique, "technique from environment")
		assert.Equal(t, "warning", opts.LogLevel, "default log level")
		assert.NoError(t, opts.Validate(), "valid options")
	})

	t.Run("refuses unknown options", func(t *testing.T) {
		// Prepare
		var opts Options

		// Execute
		_, err := NewParser(&opts).ParseArgs([]string{"--size", "7"})

		// Check
		assert.Error(t, err, "unknown option refused")
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Run("accepts open dispersion without closed only options", func(t *testing.T) {
		// Prepare
		opts := Options{TableSize: 5, Dispersion: crt.DispersionSum, Technique: "open", LogLevel: "info"}

		// Execute
		err := opts.Validate()

		// Check
		assert.NoError(t, err, "valid options")
	})

	t.Run("collects every missing required option", func(t *testing.T) {
		// Prepare
		opts := Options{}

		// Execute
		err := opts.Validate()

		// Check
		var merr *multierror.Error
		assert.True(t, errors.As(err, &merr), "multiple errors returned")
		assert.Len(t, merr.Errors, 4, "table size, dispersion, technique and log level reported")
		assert.ErrorIs(t, err, crt.UnknownFunction{}, "dispersion code reported")
		assert.ErrorIs(t, err, crt.UnknownTechnique{}, "technique reported")
	})

	t.Run("collects every invalid closed dispersion option", func(t *testing.T) {
		// Prepare
		opts := Options{
			TableSize:        5,
			Dispersion:       crt.DispersionModulo,
			Technique:        "close",
			BlockSize:        6,
			Exploration:      7,
			SecondDispersion: 9,
			Search:           "everywhere",
			Random:           -1,
			LogLevel:         "warning",
		}

		// Execute
		err := opts.Validate()

		// Check
		var merr *multierror.Error
		assert.True(t, errors.As(err, &merr), "multiple errors returned")
		assert.Len(t, merr.Errors, 5, "block size, exploration, secondary dispersion, search and random reported")
	})

	t.Run("requires a block size for closed dispersion", func(t *testing.T) {
		// Prepare
		opts := Options{TableSize: 5, Dispersion: 1, Technique: "close", Exploration: 1, LogLevel: "warning"}

		// Execute
		err := opts.Validate()

		// Check
		assert.Error(t, err, "block size required")
	})

	t.Run("refuses a table size beyond the limit", func(t *testing.T) {
		// Prepare
		opts := Options{TableSize: 1 << 40, Dispersion: 1, Technique: "open", LogLevel: "warning"}

		// Execute
		err := opts.Validate()

		// Check
		assert.Error(t, err, "table size too big")
	})
}
