package utils

// DigitSum - Returns the sum of the decimal digits of v
func DigitSum(v uint64) (sum uint64) {
	for v > 0 {
		sum += v % 10
		v /= 10
	}

	return
}

// Contains - Returns true if k is equal to any of the elements in s
func Contains[K comparable](s []K, k K) bool {
	for _, e := range s {
		if e == k {
			return true
		}
	}

	return false
}

// Digits - Returns the number of decimal digits needed to print v, 0 (zero) needs one digit
func Digits(v uint64) (n int) {
	n = 1
	for v >= 10 {
		v /= 10
		n++
	}

	return
}
