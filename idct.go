// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import "math"

// s0..s7 and m1..m5 are the scaling and rotation constants of the
// Loeffler/Arai-Agui-Nakajima fast factorization of the 8-point IDCT, per
// spec.md §4.4. They are computed once at package initialization rather
// than hand-expanded, since cos/sqrt are not Go constant expressions.
var (
	s0, s1, s2, s3, s4, s5, s6, s7 float32
	m1, m2, m3, m4, m5             float32
)

func init() {
	scale := func(k int) float32 {
		n := 4.0
		if k == 0 {
			n = 8.0
		}
		return float32(math.Cos(float64(k)*math.Pi/16) / math.Sqrt(n))
	}
	s0, s1, s2, s3 = scale(0), scale(1), scale(2), scale(3)
	s4, s5, s6, s7 = scale(4), scale(5), scale(6), scale(7)

	sqrt2 := math.Sqrt2
	m1 = float32(sqrt2 * math.Cos(2*math.Pi/8))
	m2 = float32(sqrt2 * math.Cos(6*math.Pi/8))
	m3 = m2
	m5 = float32(sqrt2 * math.Cos(2*math.Pi/8))
	m4 = m5 + m2
}

// idct1D applies one 1-D, 8-point inverse DCT butterfly to the 8 values
// addressed by get/set, which abstract over whether this pass runs over a
// column (stride 8) or a row (stride 1).
func idct1D(get func(int) float32, set func(int, float32)) {
	g0 := get(0) * s0
	g1 := get(4) * s4
	g2 := get(2) * s2
	g3 := get(6) * s6
	g4 := get(5) * s5
	g5 := get(1) * s1
	g6 := get(7) * s7
	g7 := get(3) * s3

	f0, f1, f2, f3 := g0, g1, g2, g3
	f4 := g4 - g7
	f5 := g5 + g6
	f6 := g5 - g6
	f7 := g4 + g7

	e0, e1 := f0, f1
	e2 := f2 - f3
	e3 := f2 + f3
	e4 := f4
	e5 := f5 - f7
	e6 := f6
	e7 := f5 + f7
	e8 := f4 + f6

	d0, d1 := e0, e1
	d2 := e2 * m1
	d3 := e3
	d4 := e4 * m2
	d5 := e5 * m3
	d6 := e6 * m4
	d7 := e7
	d8 := e8 * m5

	c0 := d0 + d1
	c1 := d0 - d1
	c2 := d2 - d3
	c3 := d3
	c4 := d4 + d8
	c5 := d5 + d7
	c6 := d6 - d8
	c7 := d7
	c8 := c5 - c6

	b0 := c0 + c3
	b1 := c1 + c2
	b2 := c1 - c2
	b3 := c0 - c3
	b4 := c4 - c8
	b5 := c8
	b6 := c6 - c7
	b7 := c7

	set(0, b0+b7)
	set(1, b1+b6)
	set(2, b2+b5)
	set(3, b3+b4)
	set(4, b3-b4)
	set(5, b2-b5)
	set(6, b1-b6)
	set(7, b0-b7)
}

// idctBlock performs the 2-D inverse DCT on a dequantized block in place:
// an 8-point 1-D IDCT over every column, then over every row. Results are
// rounded to the nearest integer and stored unclamped; the +128 level
// shift and [0,255] saturation happen later, in the color conversion step.
func idctBlock(b *block) {
	var col [8]float32
	for i := 0; i < 8; i++ {
		idct1D(
			func(k int) float32 { return float32(b[k*8+i]) },
			func(k int, v float32) { col[k] = v },
		)
		for k := 0; k < 8; k++ {
			b[k*8+i] = int32(math.Round(float64(col[k])))
		}
	}

	var row [8]float32
	for i := 0; i < 8; i++ {
		idct1D(
			func(k int) float32 { return float32(b[i*8+k]) },
			func(k int, v float32) { row[k] = v },
		)
		for k := 0; k < 8; k++ {
			b[i*8+k] = int32(math.Round(float64(row[k])))
		}
	}
}

// idct applies idctBlock to every populated block of every component.
func idct(h *FrameHeader, grids [3]componentGrid) {
	for i := 0; i < h.NumComponents; i++ {
		for y := 0; y < h.BlockHeight; y += h.MaxV {
			for x := 0; x < h.BlockWidth; x += h.MaxH {
				comp := h.Components[i]
				for v := 0; v < comp.V; v++ {
					for hh := 0; hh < comp.H; hh++ {
						idx := (y+v)*h.BlockWidthReal + (x + hh)
						idctBlock(&grids[i][idx])
					}
				}
			}
		}
	}
}
