package cli

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
)

// Options - Command line options, each of them can also be given through its environment variable
type Options struct {
	TableSize        uint64 `long:"ts" env:"HASHTABLE_TS" description:"table size, the number of buckets (required)"`
	Dispersion       int    `long:"fd" env:"HASHTABLE_FD" description:"dispersion function code: 1 modulo, 2 sum of digits, 3 pseudorandom, 4 xxhash (required)"`
	Technique        string `long:"hash" env:"HASHTABLE_HASH" description:"dispersion technique: open or close (required)"`
	BlockSize        int    `long:"bs" env:"HASHTABLE_BS" description:"block size, closed dispersion only"`
	Exploration      int    `long:"fe" env:"HASHTABLE_FE" description:"exploration function code: 1 linear, 2 quadratic, 3 double dispersion, 4 redispersion, closed dispersion only"`
	SecondDispersion int    `long:"fd2" env:"HASHTABLE_FD2" description:"dispersion function code used by double dispersion, defaults to --fd"`
	Search           string `long:"search" env:"HASHTABLE_SEARCH" default:"probing" description:"search mode: probing follows the exploration sequence, primary looks in the primary bucket only"`
	Random           int    `short:"n" long:"random" env:"HASHTABLE_RANDOM" description:"insert this many random NIFs before showing the menu"`
	Seed             int64  `long:"seed" env:"HASHTABLE_SEED" description:"seed for the random NIFs, 0 seeds from the clock"`
	LogLevel         string `short:"l" long:"loglevel" env:"HASHTABLE_LOGLEVEL" default:"warning" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	LogFile          string `long:"logfile" env:"HASHTABLE_LOGFILE" description:"also log to this file, rotated when it grows"`
	NoColor          bool   `long:"nocolor" env:"HASHTABLE_NOCOLOR" description:"disable colored output"`
}

// NewParser - Returns a command line parser filling in opts
func NewParser(opts *Options) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "--ts <s> --fd <f> --hash <open|close> [--bs <s> --fe <f>]"

	return parser
}

// Validate - Checks the options and returns all problems found as one error
func (O Options) Validate() error {
	var result *multierror.Error

	if O.TableSize == 0 {
		result = multierror.Append(result, fmt.Errorf("--ts: table size must be a positive value higher than 0 (zero)"))
	} else if O.TableSize > conf.MaxTableSize {
		result = multierror.Append(result, fmt.Errorf("--ts: table size can not exceed %d", conf.MaxTableSize))
	}

	if !validDispersion(O.Dispersion) {
		result = multierror.Append(result, fmt.Errorf("--fd %d: %w", O.Dispersion, crt.UnknownFunction{}))
	}

	technique, err := O.technique()
	if err != nil {
		result = multierror.Append(result, err)
	}

	if technique == crt.CloseDispersion {
		if O.BlockSize <= 0 {
			result = multierror.Append(result, fmt.Errorf("--bs: block size must be a positive value higher than 0 (zero) for closed dispersion"))
		} else if uint64(O.BlockSize) > O.TableSize {
			result = multierror.Append(result, fmt.Errorf("--bs: block size %d can not exceed table size %d", O.BlockSize, O.TableSize))
		}
		if O.Exploration < crt.ExplorationLinear || O.Exploration > crt.ExplorationRedispersion {
			result = multierror.Append(result, fmt.Errorf("--fe %d: %w", O.Exploration, crt.UnknownFunction{}))
		}
		if O.SecondDispersion != 0 && !validDispersion(O.SecondDispersion) {
			result = multierror.Append(result, fmt.Errorf("--fd2 %d: %w", O.SecondDispersion, crt.UnknownFunction{}))
		}
	}

	if _, err = O.searchMode(); err != nil {
		result = multierror.Append(result, err)
	}

	if O.Random < 0 {
		result = multierror.Append(result, fmt.Errorf("--random: can not be negative"))
	}

	if _, err = logging.LogLevel(O.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("--loglevel: %w", err))
	}

	return result.ErrorOrNil()
}

// technique - Translates the --hash option to a collision resolution technique
func (O Options) technique() (technique int, err error) {
	switch O.Technique {
	case "open":
		technique = crt.OpenDispersion
	case "close":
		technique = crt.CloseDispersion
	default:
		err = fmt.Errorf("--hash %q: %w", O.Technique, crt.UnknownTechnique{})
	}

	return
}

// searchMode - Translates the --search option to a search mode
func (O Options) searchMode() (mode int, err error) {
	switch O.Search {
	case "probing", "":
		mode = crt.SearchProbing
	case "primary":
		mode = crt.SearchPrimaryOnly
	default:
		err = fmt.Errorf("--search %q: search mode must be probing or primary", O.Search)
	}

	return
}

func validDispersion(code int) bool {
	return code >= crt.DispersionModulo && code <= crt.DispersionXXHash
}
