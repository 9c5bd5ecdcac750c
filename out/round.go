// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements rounding and formatting of calculation results
package out

import "math"

// Round rounds x to n decimal places. Halfway cases go to the even neighbour
func Round(x float64, n int) float64 {
	p := math.Pow10(n)
	return math.RoundToEven(x*p) / p
}

// RoundInt rounds x to the nearest integer. Halfway cases go to the even neighbour
func RoundInt(x float64) int {
	return int(math.RoundToEven(x))
}
