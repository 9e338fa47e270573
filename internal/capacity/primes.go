package capacity

import "github.com/gostonefire/memhashmap/internal/conf"

// primes - Ascending table sizes. Consecutive entries grow by roughly 20% which keeps memory overhead modest
// while the geometric progression still gives amortized constant time inserts.
var primes = []int{
	3, 7, 11, 17, 23, 29, 37, 47, 59, 71, 89, 107, 131,
	163, 197, 239, 293, 353, 431, 521, 631, 761, 919,
	1103, 1327, 1597, 1931, 2333, 2801, 3371, 4049, 4861,
	5839, 7013, 8419, 10103, 12143, 14591, 17519, 21023,
	25229, 30293, 36353, 43627, 52361, 62851, 75431, 90523,
	108631, 130363, 156437, 187751, 225307, 270371, 324449,
	389357, 467237, 560689, 672827, 807403, 968897, 1162687,
	1395263, 1674319, 2009191, 2411033, 2893249, 3471899,
	4166287, 4999559, 5999471, 7199369,
}

// Len - Returns the number of entries in the prime capacity table
func Len() int {
	return len(primes)
}

// At - Returns the capacity at the given prime index
func At(idx int) int {
	return primes[idx]
}

// Largest - Returns the biggest capacity in the table
func Largest() int {
	return primes[len(primes)-1]
}

// IsPrimeCapacity - Returns true if size is one of the capacities in the table
func IsPrimeCapacity(size int) bool {
	for _, p := range primes {
		if p == size {
			return true
		}
		if p > size {
			return false
		}
	}

	return false
}

// Initial - Returns the capacity to use for a new table given a size hint.
//   - sizeHint is the number of buckets asked for, zero or less means no hint
//
// It returns:
//   - size is the smallest capacity in the table greater or equal to sizeHint, or sizeHint itself if it is bigger than all of them
//   - primeIdx is the index of size in the table or conf.NoPrimeIdx if sizeHint was used as is
func Initial(sizeHint int) (size, primeIdx int) {
	if sizeHint <= 0 {
		return primes[0], 0
	}

	for i, p := range primes {
		if p >= sizeHint {
			return p, i
		}
	}

	return sizeHint, conf.NoPrimeIdx
}

// Next - Returns the capacity to grow to.
// The search continues from baseIdx, it never restarts from the beginning of the table, which keeps repeated growth
// linear in the number of table entries over the whole lifetime of a hash table.
//   - baseIdx is the current prime index, conf.NoPrimeIdx if the table is no longer prime tracked
//   - loadFactor is the load factor of the hash table
//   - size is the current size of the hash table
//   - count is the number of entries that must fit under the load factor after growth
//
// It returns:
//   - newSize is the capacity to grow to
//   - primeIdx is the index of newSize in the table, or conf.NoPrimeIdx when the table is exhausted
func Next(baseIdx int, loadFactor float64, size, count int) (newSize, primeIdx int) {
	if baseIdx != conf.NoPrimeIdx {
		for i := baseIdx; i < len(primes); i++ {
			c := float64(primes[i])
			if loadFactor*c >= float64(size) && loadFactor*c > float64(count) {
				return primes[i], i
			}
		}
	}

	newSize = size * conf.GrowthMultiplier
	for loadFactor*float64(newSize) <= float64(count) {
		newSize *= conf.GrowthMultiplier
	}

	return newSize, conf.NoPrimeIdx
}
