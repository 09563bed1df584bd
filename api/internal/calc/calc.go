// Package calc holds the number utilities served by the dispatcher.
package calc

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrEmptyInput   = errors.New("calc: empty input")
	ErrTooManyTerms = errors.New("calc: too many terms")
)

// Fibonacci returns the first n terms starting 0, 1, 1, 2, ...
// n <= 0 yields an empty slice; n above limit is rejected when limit > 0.
func Fibonacci(n, limit int) ([]*big.Int, error) {
	if limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTerms, n, limit)
	}
	if n <= 0 {
		return []*big.Int{}, nil
	}
	out := make([]*big.Int, 0, n)
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		out = append(out, new(big.Int).Set(a))
		a.Add(a, b)
		a, b = b, a
	}
	return out, nil
}

func IsPrime(x int64) bool {
	if x < 2 {
		return false
	}
	for d := int64(2); d <= x/d; d++ {
		if x%d == 0 {
			return false
		}
	}
	return true
}

// FilterPrimes keeps the prime elements of xs in their original order.
func FilterPrimes(xs []int64) []int64 {
	out := make([]int64, 0, len(xs))
	for _, x := range xs {
		if IsPrime(x) {
			out = append(out, x)
		}
	}
	return out
}

// GCD is the Euclidean gcd: gcd(a, 0) = a, otherwise gcd(b, a mod b).
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// HCF folds GCD over xs from the left.
func HCF(xs []int64) (int64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = GCD(acc, x)
	}
	return acc, nil
}

// LCM folds lcm(a, b) = a*b / gcd(a, b) over xs from the left. Intermediate
// values are unbounded; lcm(0, 0) is 0.
func LCM(xs []int64) (*big.Int, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	acc := big.NewInt(xs[0])
	for _, x := range xs[1:] {
		acc = lcm(acc, big.NewInt(x))
	}
	return acc, nil
}

func lcm(a, b *big.Int) *big.Int {
	g := gcdBig(a, b)
	if g.Sign() == 0 {
		return new(big.Int)
	}
	p := new(big.Int).Mul(a, b)
	return p.Quo(p, g)
}

// gcdBig mirrors GCD on big integers; Rem truncates like the % operator.
func gcdBig(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Set(a), new(big.Int).Set(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	return x
}
