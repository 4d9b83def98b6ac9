package hashtable

import (
	"fmt"

	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/internal/storage"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("hashtable")

// Conf - Is a struct to be passed in the call to NewHashTable and contains the construction parameters.
//   - TableSize is the number of buckets, fixed for the lifetime of the table
//   - Technique is crt.OpenDispersion or crt.CloseDispersion
//   - BlockSize is the capacity of each bucket, only used with crt.CloseDispersion
//   - Dispersion is the function mapping a key to its primary bucket
//   - Exploration is the probe sequence function, only used with crt.CloseDispersion
//   - SearchMode is crt.SearchProbing (default) or crt.SearchPrimaryOnly
type Conf[K hashfunc.Key] struct {
	TableSize   uint64
	Technique   int
	BlockSize   int
	Dispersion  hashfunc.DispersionFunction[K]
	Exploration hashfunc.ExplorationFunction[K]
	SearchMode  int
}

// TableInfo - Information structure containing some information about the hash table created
//   - TableSize is the number of buckets
//   - Technique is the collision resolution technique in use
//   - BlockSize is the capacity of each bucket, 0 (zero) for open dispersion
//   - Capacity is the total number of keys the table can hold, 0 (zero) for open dispersion which has no limit
//   - SearchMode is the search mode in use
type TableInfo struct {
	TableSize  uint64
	Technique  int
	BlockSize  int
	Capacity   uint64
	SearchMode int
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Keys is the total number of keys stored
//   - PrimaryKeys is the number of keys stored in the bucket their dispersion function points at
//   - RelocatedKeys is the number of keys that were placed by the exploration function
//   - FullBuckets is the number of buckets that accept no more keys
//   - BucketDistribution is the number of keys stored in each bucket
type TableStat struct {
	Keys               int64
	PrimaryKeys        int64
	RelocatedKeys      int64
	FullBuckets        int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct
type HashTable[K hashfunc.Key] struct {
	tableSize   uint64
	technique   int
	blockSize   int
	searchMode  int
	buckets     []storage.Sequence[K]
	dispersion  hashfunc.DispersionFunction[K]
	exploration hashfunc.ExplorationFunction[K]
}

// NewHashTable - Returns a new hash table with TableSize empty buckets.
//   - conf is a Conf struct with the construction parameters, dispersion (and exploration for closed dispersion) are held by the table for its lifetime.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the hash table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable[K hashfunc.Key](conf Conf[K]) (hashTable *HashTable[K], tableInfo TableInfo, err error) {
	// Check if table size is valid
	if conf.TableSize == 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	// Check that there is a dispersion function and that it agrees on the table size
	if conf.Dispersion == nil {
		err = fmt.Errorf("a dispersion function must be given")
		return
	}
	if sized, ok := conf.Dispersion.(hashfunc.Sized); ok && sized.GetTableSize() != conf.TableSize {
		err = fmt.Errorf("dispersion function covers %d buckets but table size is %d", sized.GetTableSize(), conf.TableSize)
		return
	}

	// Check technique specific parameters
	switch conf.Technique {
	case crt.OpenDispersion:
		conf.BlockSize = 0
		conf.Exploration = nil
	case crt.CloseDispersion:
		if conf.BlockSize <= 0 {
			err = fmt.Errorf("block size must be a positive value higher than 0 (zero) for closed dispersion")
			return
		}
		if conf.Exploration == nil {
			err = fmt.Errorf("an exploration function must be given for closed dispersion")
			return
		}
	default:
		err = fmt.Errorf("technique %d: %w", conf.Technique, crt.UnknownTechnique{})
		return
	}

	// Check search mode
	if conf.SearchMode != crt.SearchProbing && conf.SearchMode != crt.SearchPrimaryOnly {
		err = fmt.Errorf("search mode %d is not recognized", conf.SearchMode)
		return
	}

	buckets := make([]storage.Sequence[K], conf.TableSize)
	for i := range buckets {
		buckets[i], err = storage.NewSequence[K](conf.Technique, conf.BlockSize)
		if err != nil {
			return
		}
	}

	hashTable = &HashTable[K]{
		tableSize:   conf.TableSize,
		technique:   conf.Technique,
		blockSize:   conf.BlockSize,
		searchMode:  conf.SearchMode,
		buckets:     buckets,
		dispersion:  conf.Dispersion,
		exploration: conf.Exploration,
	}

	tableInfo = hashTable.Parameters()

	log.Debugf("created %s dispersion table with %d buckets, block size %d", crt.TechniqueName(conf.Technique), conf.TableSize, conf.BlockSize)

	return
}

// Parameters - Returns a TableInfo struct with the parameters the table was built with
func (H *HashTable[K]) Parameters() (tableInfo TableInfo) {
	tableInfo = TableInfo{
		TableSize:  H.tableSize,
		Technique:  H.technique,
		BlockSize:  H.blockSize,
		SearchMode: H.searchMode,
	}
	if H.technique == crt.CloseDispersion {
		tableInfo.Capacity = H.tableSize * uint64(H.blockSize)
	}

	return
}
