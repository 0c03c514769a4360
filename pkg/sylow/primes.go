package sylow

// isPrime reports whether p is prime, by trial division. Inputs are
// bounded by group orders, so this is never a bottleneck.
func isPrime(p int) bool {
	if p < 2 {
		return false
	}
	for d := 2; d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}
	return true
}

// intPow returns base^exp, reporting overflow or results past limit as
// !ok. Used to size tuple spaces and to check p^n divisibility without
// wrapping.
func intPow(base, exp, limit int) (result int, ok bool) {
	result = 1
	for i := 0; i < exp; i++ {
		if result > limit/base {
			return 0, false
		}
		result *= base
	}
	return result, true
}
