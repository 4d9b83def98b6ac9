package crt

// OpenDispersion - Separate chaining, every bucket holds an unbounded chain of synonyms
const OpenDispersion int = 1

// CloseDispersion - Open addressing into fixed size blocks, overflowing keys are placed by an exploration function
const CloseDispersion int = 2

// SearchProbing - Search follows the same exploration sequence as insertion does
const SearchProbing int = 0

// SearchPrimaryOnly - Search looks in the primary bucket only, keys relocated by exploration are not found
const SearchPrimaryOnly int = 1

// Dispersion function selector codes
const (
	DispersionModulo       = 1
	DispersionSum          = 2
	DispersionPseudorandom = 3
	DispersionXXHash       = 4
)

// Exploration function selector codes
const (
	ExplorationLinear           = 1
	ExplorationQuadratic        = 2
	ExplorationDoubleDispersion = 3
	ExplorationRedispersion     = 4
)

// TechniqueName - Returns a printable name of a collision resolution technique
func TechniqueName(technique int) string {
	switch technique {
	case OpenDispersion:
		return "open"
	case CloseDispersion:
		return "close"
	default:
		return "unknown"
	}
}
