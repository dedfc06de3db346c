// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bjpeg implements a baseline JPEG (ITU-T T.81, SOF0) decoder.
//
// It decodes grayscale and YCbCr Huffman-coded baseline streams into an RGB
// raster. Progressive, arithmetic-coded, 12-bit, hierarchical and CMYK/YIQ
// variants are rejected rather than decoded. Encoding is out of scope; the
// package only reads JPEG and writes nothing back to that format.
package bjpeg
