// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bjpeg

import (
	"bufio"
	"bytes"
	"image"
	"image/color"
)

// Image is the decoder's output: a width x height raster of RGB samples,
// tightly packed row-major, top-to-bottom, [R,G,B] per pixel (spec.md §6).
type Image struct {
	Width, Height int
	// RGB is width*height*3 bytes; pixel (x,y)'s components start at
	// (y*Width+x)*3.
	RGB []byte
}

func newImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		RGB:    make([]byte, width*height*3),
	}
}

func (img *Image) setRGB(x, y int, r, g, b byte) {
	i := (y*img.Width + x) * 3
	img.RGB[i+0] = r
	img.RGB[i+1] = g
	img.RGB[i+2] = b
}

// At returns the color of the pixel at (x, y). Image implements
// image.Image so decoded output composes with the rest of the standard
// library's image-processing tools even though the core pipeline never
// needs that interface itself.
func (img *Image) At(x, y int) color.Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return color.RGBA{}
	}
	i := (y*img.Width + x) * 3
	return color.RGBA{R: img.RGB[i], G: img.RGB[i+1], B: img.RGB[i+2], A: 0xFF}
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Decode reads a baseline JPEG byte stream and returns the decoded RGB
// raster, running the full pipeline of spec.md §2: marker parsing, entropy
// decoding, dequantization, inverse DCT, and upsample + color conversion.
// Any failure returns a *DecodeError and no partial Image.
func Decode(data []byte) (*Image, error) {
	r := bufio.NewReader(bytes.NewReader(data))
	header, err := readJPEG(r)
	if err != nil {
		return nil, err
	}

	grids, err := decodeEntropyData(header)
	if err != nil {
		return nil, err
	}

	dequantize(header, grids)
	idct(header, grids)

	return colorConvert(header, grids), nil
}

// PeekHeader parses a JPEG's markers and frame header without running the
// entropy decoder, IDCT, or color conversion, for --dump-header style
// diagnostics on inputs that may otherwise fail to decode.
func PeekHeader(data []byte) (*FrameHeader, error) {
	r := bufio.NewReader(bytes.NewReader(data))
	return readJPEG(r)
}
