package fixturego

import "fmt"

// MaxFactorial is the largest input whose factorial fits in an int64. It is
// the upper bound accepted by FactorialChecked.
const MaxFactorial = 20

// Factorial returns n! computed by direct recursion, mirroring the corpus
// fixture byte for byte in behavior: every n <= 1 yields 1, negative inputs
// included. Results are exact only for n <= MaxFactorial; larger inputs wrap
// silently. Callers that need those inputs rejected should use
// FactorialChecked.
func Factorial(n int) int64 {
	if n <= 1 {
		return 1
	}
	return int64(n) * Factorial(n-1)
}

// FactorialChecked is the guarded form of Factorial. It rejects negative
// inputs with a wrapped ErrInvalidInput and inputs above MaxFactorial with a
// wrapped ErrOverflow, instead of returning 1 or a wrapped-around product.
func FactorialChecked(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative input %d: %w", n, ErrInvalidInput)
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("factorial(%d) exceeds the int64 range: %w", n, ErrOverflow)
	}
	return Factorial(n), nil
}
