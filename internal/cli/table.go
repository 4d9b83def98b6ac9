package cli

import (
	"math/rand"

	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/hashfunc"
	"github.com/gostonefire/hashtable/nif"
)

// BuildTable - Assembles the dispersion and exploration functions selected by the options and returns a hash table
// of NIFs using them. The options are expected to be validated.
func BuildTable(opts Options) (table *hashtable.HashTable[nif.Nif], tableInfo hashtable.TableInfo, err error) {
	technique, err := opts.technique()
	if err != nil {
		return
	}
	searchMode, err := opts.searchMode()
	if err != nil {
		return
	}

	dispersion, err := hashfunc.NewDispersionFunction[nif.Nif](opts.Dispersion, opts.TableSize)
	if err != nil {
		return
	}

	var exploration hashfunc.ExplorationFunction[nif.Nif]
	if technique == crt.CloseDispersion {
		secondary := dispersion
		if opts.SecondDispersion != 0 && opts.SecondDispersion != opts.Dispersion {
			secondary, err = hashfunc.NewDispersionFunction[nif.Nif](opts.SecondDispersion, opts.TableSize)
			if err != nil {
				return
			}
		}

		exploration, err = hashfunc.NewExplorationFunction[nif.Nif](opts.Exploration, secondary)
		if err != nil {
			return
		}
	}

	return hashtable.NewHashTable(hashtable.Conf[nif.Nif]{
		TableSize:   opts.TableSize,
		Technique:   technique,
		BlockSize:   opts.BlockSize,
		Dispersion:  dispersion,
		Exploration: exploration,
		SearchMode:  searchMode,
	})
}

// InsertRandom - Inserts count random NIFs drawn from rnd.
// It returns the number of NIFs inserted and the number refused as duplicates or for lack of room.
func InsertRandom(table *hashtable.HashTable[nif.Nif], count int, rnd *rand.Rand) (inserted, refused int) {
	for i := 0; i < count; i++ {
		if table.Insert(nif.Random(rnd)) {
			inserted++
		} else {
			refused++
		}
	}

	return
}
