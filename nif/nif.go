package nif

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gostonefire/hashtable/internal/conf"
	"github.com/gostonefire/hashtable/internal/utils"
)

// Nif - An 8 digit identification number, used as key in the hash table
type Nif uint64

// String - Returns the NIF zero padded to 8 digits
func (N Nif) String() string {
	return fmt.Sprintf("%0*d", conf.NifDigits, uint64(N))
}

// Parse - Returns the Nif represented by s, which has to be a decimal number of at most 8 digits.
// Leading and trailing white space is ignored.
func Parse(s string) (nif Nif, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		err = fmt.Errorf("empty NIF")
		return
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		err = fmt.Errorf("invalid NIF %q: %w", s, err)
		return
	}
	if v > conf.MaxNif {
		err = fmt.Errorf("invalid NIF %q: more than %d digits", s, conf.NifDigits)
		return
	}

	nif = Nif(v)
	return
}

// Random - Returns a NIF drawn from rnd
func Random(rnd *rand.Rand) Nif {
	return Nif(rnd.Int63n(int64(conf.MaxNif) + 1))
}

// Valid - Returns true if the value fits in 8 digits
func (N Nif) Valid() bool {
	return utils.Digits(uint64(N)) <= conf.NifDigits
}
