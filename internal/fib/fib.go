// Package fib computes Fibonacci numbers through a closure that memoizes
// previously computed values. Results are big.Int because the sequence
// outgrows int64 past n = 92.
package fib

import (
	"fmt"
	"math/big"
)

// MaxInput bounds the accepted sequence position. The recursive closure
// allocates one cache entry per position, so the bound keeps both stack
// depth and memory predictable.
const MaxInput = 10000

// Func computes the n-th Fibonacci number.
type Func func(n int) (*big.Int, error)

// CachingFibonacci returns a Fibonacci function with internal caching.
//
// The returned closure computes the n-th Fibonacci number recursively,
// storing previously computed results in a map captured by the closure so
// repeated and intermediate positions are never recomputed.
func CachingFibonacci() Func {
	cache := make(map[int]*big.Int)

	var fibonacci Func
	fibonacci = func(n int) (*big.Int, error) {
		if n <= 0 {
			return big.NewInt(0), nil
		}
		if n == 1 {
			return big.NewInt(1), nil
		}
		if n > MaxInput {
			return nil, fmt.Errorf("%d is too large to handle; please try a value up to %d", n, MaxInput)
		}

		if v, ok := cache[n]; ok {
			return v, nil
		}

		a, err := fibonacci(n - 1)
		if err != nil {
			return nil, err
		}
		b, err := fibonacci(n - 2)
		if err != nil {
			return nil, err
		}

		v := new(big.Int).Add(a, b)
		cache[n] = v
		return v, nil
	}

	return fibonacci
}

// PlainFibonacci returns a Fibonacci function without caching. It exists to
// contrast against CachingFibonacci; anything past n = 35 or so gets slow.
func PlainFibonacci() Func {
	var fibonacci Func
	fibonacci = func(n int) (*big.Int, error) {
		if n <= 0 {
			return big.NewInt(0), nil
		}
		if n == 1 {
			return big.NewInt(1), nil
		}
		if n > MaxInput {
			return nil, fmt.Errorf("%d is too large to handle; please try a value up to %d", n, MaxInput)
		}

		a, err := fibonacci(n - 1)
		if err != nil {
			return nil, err
		}
		b, err := fibonacci(n - 2)
		if err != nil {
			return nil, err
		}

		return new(big.Int).Add(a, b), nil
	}

	return fibonacci
}
