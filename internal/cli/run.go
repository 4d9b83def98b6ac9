package cli

import (
	"io"
	"math/rand"
	"time"

	"github.com/gostonefire/hashtable/crt"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cli")

// Run - Validates the options, sets up logging, builds the table, inserts any random NIFs asked for and hands
// over to the interactive menu reading from in and writing to out. Log records are written to logOut.
func Run(opts Options, in io.Reader, out io.Writer, logOut io.Writer) (err error) {
	err = opts.Validate()
	if err != nil {
		return
	}

	err = SetupLogging(logOut, opts.LogLevel, opts.LogFile, opts.NoColor)
	if err != nil {
		return
	}

	table, info, err := BuildTable(opts)
	if err != nil {
		log.Error(err)
		return
	}

	log.Infof("%s dispersion table with %d buckets, block size %d, capacity %d",
		crt.TechniqueName(info.Technique), info.TableSize, info.BlockSize, info.Capacity)

	if opts.Random > 0 {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		inserted, refused := InsertRandom(table, opts.Random, rand.New(rand.NewSource(seed)))
		log.Noticef("inserted %d random NIFs, %d refused", inserted, refused)
	}

	return NewMenu(table, in, out, opts.NoColor).Run()
}
