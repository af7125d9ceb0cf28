package util

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Min[A Number](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A Number](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Clamp[A Number](v A, lo A, hi A) A {
	return Max(lo, Min(v, hi))
}

func Sum[A Number](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

// CeilDiv is ceil(a/b) for non-negative integers. A zero divisor gives 0.
func CeilDiv[A constraints.Integer](a A, b A) A {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
