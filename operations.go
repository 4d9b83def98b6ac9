package hashtable

import (
	"errors"
	"fmt"
	"io"

	"github.com/gostonefire/hashtable/crt"
)

// Insert - Stores key in the table.
//   - key is the key to store
//
// It returns false if the key is already in the table or if no bucket with room was found (closed dispersion),
// use Set to tell the two apart.
func (H *HashTable[K]) Insert(key K) bool {
	return H.Set(key) == nil
}

// Set - Stores key in the table. In open dispersion the key is linked into the chain of its primary bucket.
// In closed dispersion it is put in the primary bucket if there is room, otherwise in the first bucket with room
// along the exploration sequence.
//   - key is the key to store
//
// It returns:
//   - err is of type crt.DuplicateKey if the key is already stored, crt.TableFull if the exploration sequence found
//     no bucket with room, or a standard error if the dispersion function misbehaves
func (H *HashTable[K]) Set(key K) (err error) {
	if H.Search(key) {
		err = crt.DuplicateKey{}
		return
	}

	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		return
	}

	if H.technique == crt.CloseDispersion && H.buckets[bucketNo].IsFull() {
		bucketNo, err = H.probingForSet(key, bucketNo)
		if err != nil {
			if errors.Is(err, crt.TableFull{}) {
				log.Warningf("no room for key %v after %d attempts", key, H.tableSize)
			}
			return
		}
	}

	// The bucket refuses keys it already holds, which can happen when search only looks in the primary bucket
	if !H.buckets[bucketNo].Insert(key) {
		err = crt.DuplicateKey{}
		return
	}

	log.Debugf("key %v stored in bucket %d", key, bucketNo)

	return
}

// Search - Returns true if key is stored in the table.
// With crt.SearchProbing the search follows the exploration sequence the same way Set does, so keys relocated
// from a full primary bucket are found. With crt.SearchPrimaryOnly only the primary bucket is looked at.
func (H *HashTable[K]) Search(key K) bool {
	bucketNo, err := H.GetBucketNo(key)
	if err != nil {
		log.Error(err)
		return false
	}

	bucket := H.buckets[bucketNo]
	if bucket.Search(key) {
		return true
	}

	if H.technique == crt.OpenDispersion || H.searchMode == crt.SearchPrimaryOnly || !bucket.IsFull() {
		return false
	}

	return H.probingForGet(key, bucketNo)
}

// Write - Writes one line per bucket to w, with the bucket number followed by its keys in storage order.
// The output is meant for inspection and is not a stable format.
func (H *HashTable[K]) Write(w io.Writer) (err error) {
	for i, bucket := range H.buckets {
		_, err = fmt.Fprintf(w, "%d: %v\n", i, bucket.Keys())
		if err != nil {
			return
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length TableSize with number of keys per bucket, false will set TableStat.BucketDistribution to nil.
func (H *HashTable[K]) Stat(includeDistribution bool) (tableStat *TableStat) {
	var ts TableStat

	if includeDistribution {
		ts.BucketDistribution = make([]int64, H.tableSize)
	}

	for i, bucket := range H.buckets {
		for _, key := range bucket.Keys() {
			ts.Keys++
			if H.dispersion.Disperse(key) == uint64(i) {
				ts.PrimaryKeys++
			} else {
				ts.RelocatedKeys++
			}
		}

		if bucket.IsFull() {
			ts.FullBuckets++
		}

		if includeDistribution {
			ts.BucketDistribution[i] = int64(bucket.Size())
		}
	}

	tableStat = &ts
	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the key to disperse
func (H *HashTable[K]) GetBucketNo(key K) (bucketNo uint64, err error) {
	bucketNo = H.dispersion.Disperse(key)
	if bucketNo >= H.tableSize {
		err = fmt.Errorf("received bucket number %d from dispersion function is outside permitted range", bucketNo)
		return
	}

	return
}

// probe - Returns the bucket to try in the given attempt, the exploration offset is added to the primary bucket
// and wrapped around the table
func (H *HashTable[K]) probe(key K, bucketNo, attempt uint64) uint64 {
	offset := H.exploration.Explore(key, attempt) % H.tableSize

	return (bucketNo + offset) % H.tableSize
}

// probingForSet - Follows the exploration sequence from the full primary bucket and returns the first bucket with room.
// It gives up with crt.TableFull after TableSize attempts.
func (H *HashTable[K]) probingForSet(key K, bucketNo uint64) (probe uint64, err error) {
	for i := uint64(0); i < H.tableSize; i++ {
		probe = H.probe(key, bucketNo, i)
		log.Debugf("key %v attempt %d probes bucket %d", key, i, probe)
		if !H.buckets[probe].IsFull() {
			return
		}
	}

	err = crt.TableFull{}
	return
}

// probingForGet - Follows the exploration sequence from the full primary bucket looking for key.
// Buckets never lose keys, so a bucket with room on the path is where Set would have stopped, and the key is not
// beyond it.
func (H *HashTable[K]) probingForGet(key K, bucketNo uint64) bool {
	for i := uint64(0); i < H.tableSize; i++ {
		bucket := H.buckets[H.probe(key, bucketNo, i)]
		if bucket.Search(key) {
			return true
		}
		if !bucket.IsFull() {
			return false
		}
	}

	return false
}
