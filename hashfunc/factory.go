package hashfunc

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
)

// NewDispersionFunction - Returns the dispersion function identified by code.
//   - code is one of crt.DispersionModulo, crt.DispersionSum, crt.DispersionPseudorandom or crt.DispersionXXHash
//   - tableSize is the number of buckets to disperse over, it has to be higher than 0 (zero)
//
// It returns:
//   - dispersion is the selected function
//   - err is of type crt.UnknownFunction if the code is not recognized, or a standard error if the table size is invalid
func NewDispersionFunction[K Key](code int, tableSize uint64) (dispersion DispersionFunction[K], err error) {
	if tableSize == 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	switch code {
	case crt.DispersionModulo:
		dispersion = NewModulo[K](tableSize)
	case crt.DispersionSum:
		dispersion = NewSum[K](tableSize)
	case crt.DispersionPseudorandom:
		dispersion = NewPseudorandom[K](tableSize)
	case crt.DispersionXXHash:
		dispersion = NewXXHash[K](tableSize)
	default:
		err = fmt.Errorf("dispersion function code %d: %w", code, crt.UnknownFunction{})
	}

	return
}

// NewExplorationFunction - Returns the exploration function identified by code.
//   - code is one of crt.ExplorationLinear, crt.ExplorationQuadratic, crt.ExplorationDoubleDispersion or crt.ExplorationRedispersion
//   - dispersion is the function double dispersion probes with, it is ignored by the other functions
//
// It returns:
//   - exploration is the selected function
//   - err is of type crt.UnknownFunction if the code is not recognized, or a standard error if double dispersion lacks its dispersion function
func NewExplorationFunction[K Key](code int, dispersion DispersionFunction[K]) (exploration ExplorationFunction[K], err error) {
	switch code {
	case crt.ExplorationLinear:
		exploration = NewLinear[K]()
	case crt.ExplorationQuadratic:
		exploration = NewQuadratic[K]()
	case crt.ExplorationDoubleDispersion:
		if dispersion == nil {
			err = fmt.Errorf("double dispersion requires a dispersion function")
			return
		}
		exploration = NewDoubleDispersion[K](dispersion)
	case crt.ExplorationRedispersion:
		exploration = NewRedispersion[K]()
	default:
		err = fmt.Errorf("exploration function code %d: %w", code, crt.UnknownFunction{})
	}

	return
}
