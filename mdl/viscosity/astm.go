// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"math"

	"github.com/lpozo/lubricalc/out"
)

// Band holds the ASTM D2270 interpolation coefficients valid for KV100 ∈ [Lo, Hi)
//
//   L = a⋅KV100² + b⋅KV100 + c
//   H = d⋅KV100² + e⋅KV100 + f
//
type Band struct {
	Lo, Hi           float64 // range of viscosity at 100°C
	A, B, C, D, E, F float64 // coefficients
}

// Table holds the contiguous bands covering [2, ∞)
var Table = []Band{
	{2, 3.8, 1.14673, 1.7576, -0.109, 0.84155, 1.5521, -0.077},
	{3.8, 4.4, 3.38095, -15.4952, 33.196, 0.78571, 1.7929, -0.183},
	{4.4, 5, 2.5, -7.2143, 13.812, 0.82143, 1.5679, 0.119},
	{5, 6.4, 0.101, 16.635, -45.469, 0.04985, 9.1613, -18.557},
	{6.4, 7, 3.35714, -23.5643, 78.466, 0.22619, 7.7369, -16.656},
	{7, 7.7, 0.01191, 21.475, -72.870, 0.79762, -0.7321, 14.61},
	{7.7, 9, 0.41858, 16.1558, -56.040, 0.05794, 10.5156, -28.240},
	{9, 12, 0.88779, 7.5527, -16.600, 0.26665, 6.7015, -10.810},
	{12, 15, 0.7672, 10.7972, -38.180, 0.20073, 8.4658, -22.490},
	{15, 18, 0.97305, 5.3135, -2.200, 0.28889, 5.9741, -4.930},
	{18, 22, 0.97256, 5.25, -0.980, 0.24504, 7.416, -16.730},
	{22, 28, 0.91413, 7.4759, -21.820, 0.20323, 9.1267, -34.230},
	{28, 40, 0.87031, 9.7157, -50.770, 0.18411, 10.1015, -46.750},
	{40, 55, 0.84703, 12.6752, -133.310, 0.17029, 11.4866, -80.620},
	{55, 70, 0.85921, 11.1009, -83.19, 0.1713, 11.368, -76.940},
	{70, math.Inf(1), 0.83531, 14.6731, -216.246, 0.16841, 11.8493, -96.947},
}

// FindBand returns the band containing kv100 or nil if kv100 < 2
func FindBand(kv100 float64) *Band {
	for i := range Table {
		if Table[i].Lo <= kv100 && kv100 < Table[i].Hi {
			return &Table[i]
		}
	}
	return nil
}

// LH computes the reference viscosities at 40°C of oils with the same viscosity at 100°C:
//  L -- oil with index 0
//  H -- oil with index 100
func (o Band) LH(kv100 float64) (L, H float64) {
	x2 := kv100 * kv100
	L = o.A*x2 + o.B*kv100 + o.C
	H = o.D*x2 + o.E*kv100 + o.F
	return
}

// rawIndex computes the viscosity index without checking data nor the range of results.
// kv100 must be ≥ 2
//
//  VI ≤ 100 (KV40 ≥ H):
//
//         (L - KV40)
//    VI = ---------- ⋅ 100
//          (L - H)
//
//  VI > 100 (KV40 < H):
//
//         (10ᴺ - 1)
//    VI = --------- + 100     with    N = (log10(H) - log10(KV40)) / log10(KV100)
//          0.00715
//
func rawIndex(kv40, kv100 float64) int {
	L, H := FindBand(kv100).LH(kv100)
	if kv40 >= H {
		return out.RoundInt((L - kv40) / (L - H) * 100)
	}
	N := (math.Log10(H) - math.Log10(kv40)) / math.Log10(kv100)
	return out.RoundInt((math.Pow(10, N)-1)/0.00715 + 100)
}
