//go:build unit

package cli

import (
	"bytes"
	"github.com/gostonefire/hashtable/crt"
	"github.com/stretchr/testify/assert"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("inserts random NIFs and runs the menu", func(t *testing.T) {
		// Prepare
		opts := Options{TableSize: 50, Dispersion: crt.DispersionXXHash, Technique: "open", Random: 20, Seed: 1,
			LogLevel: "info", NoColor: true}
		var out, logOut bytes.Buffer

		// Execute
		err := Run(opts, strings.NewReader("4\n5\n"), &out, &logOut)

		// Check
		assert.NoError(t, err, "runs")
		assert.Contains(t, out.String(), "Keys:           20", "random NIFs inserted")
		assert.Contains(t, logOut.String(), "inserted 20 random NIFs, 0 refused", "insertion logged")
		assert.Contains(t, logOut.String(), "open dispersion table with 50 buckets", "table logged")
	})

	t.Run("refuses invalid options", func(t *testing.T) {
		// Prepare
		opts := Options{TableSize: 5, Dispersion: 8, Technique: "open", LogLevel: "warning"}

		// Execute
		err := Run(opts, strings.NewReader(""), io.Discard, io.Discard)

		// Check
		assert.ErrorIs(t, err, crt.UnknownFunction{}, "unknown dispersion reported")
	})
}

func TestSetupLogging(t *testing.T) {
	t.Run("logs to a file", func(t *testing.T) {
		// Prepare
		logFile := filepath.Join(t.TempDir(), "hashtable.log")
		var logOut bytes.Buffer

		// Execute
		err := SetupLogging(&logOut, "warning", logFile, true)
		log.Info("not logged")
		log.Warning("logged to both")

		// Check
		assert.NoError(t, err, "sets up logging")
		data, err := os.ReadFile(logFile)
		assert.NoError(t, err, "log file written")
		assert.Contains(t, string(data), "logged to both", "record in file")
		assert.NotContains(t, string(data), "not logged", "level respected in file")
		assert.Contains(t, logOut.String(), "logged to both", "record in writer")

		// Clean up
		err = SetupLogging(io.Discard, "critical", "", true)
		assert.NoError(t, err, "resets logging")
	})

	t.Run("refuses an unknown level", func(t *testing.T) {
		// Execute
		err := SetupLogging(io.Discard, "chatty", "", true)

		// Check
		assert.Error(t, err, "unknown level refused")
	})
}
