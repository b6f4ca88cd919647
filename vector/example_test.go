// SPDX-License-Identifier: MIT
package vector_test

import (
	"fmt"

	"github.com/katalvlaran/exactla/bigsqrt"
	"github.com/katalvlaran/exactla/scalar"
	"github.com/katalvlaran/exactla/vector"
)

func ExampleBuilder() {
	b, _ := vector.NewBuilder[scalar.Int, scalar.Int](2)
	_ = b.PutNext(scalar.NewInt(3))
	_ = b.PutNext(scalar.NewInt(4))
	v, _ := b.Build()

	norm, _ := v.EuclideanNorm(bigsqrt.WithScale(2, bigsqrt.RoundHalfUp))
	fmt.Println(v, v.TaxicabNorm(), v.MaxNorm(), v.EuclideanNormPow2(), norm)
	// Output: [3, 4] 7 4 25 5.00
}

func ExampleDecimals() {
	v, _ := vector.Decimals("0.1", "0.2")
	w, _ := vector.Decimals("0.3", "-0.05")
	sum, _ := v.Add(w)
	dot, _ := v.Dot(w)
	fmt.Println(sum, dot)
	// Output: [0.4, 0.15] 0.020
}
