package shared

import "fmt"

// AssertLE panics unless smaller <= bigger.
// Bit counts that break this bound mean the caller or the engine has a bug;
// continuing would corrupt the bit stream.
func AssertLE(smaller, bigger uint) {
	if smaller > bigger {
		panic(fmt.Sprintf("assertion failed: (%d <= %d)", smaller, bigger))
	}
}

// SafeSub returns a - b, panicking on unsigned underflow.
func SafeSub(a, b uint) uint {
	AssertLE(b, a)
	return a - b
}
