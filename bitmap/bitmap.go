/*
Package bitmap implements an encoder for uncompressed 24-bit Windows bitmaps.

A file is written as a 14 byte file header, a 40 byte BITMAPINFOHEADER image
descriptor and then the pixel data, three bytes per pixel stored in blue,
green, red order. Every multi-byte field is little-endian. No palette, no
compression and no row padding is written, so the resulting file is exactly
54 + 3 * width * height bytes in size.
*/
package bitmap

import (
	"errors"
	"io"
)

const (
	// FileHeaderSize is the size in bytes of the file header
	FileHeaderSize = 14
	// InfoHeaderSize is the size in bytes of the image descriptor
	InfoHeaderSize = 40
	// PixelOffset is the offset in bytes from the start of the file to
	// the pixel data
	PixelOffset = FileHeaderSize + InfoHeaderSize
	// BitsPerPixel is the only supported color depth
	BitsPerPixel = 24
	// BytesPerPixel is the size in bytes of a single pixel record
	BytesPerPixel = BitsPerPixel >> 3

	planes      = 1
	compression = 0 // BI_RGB
	// 72 DPI
	pixelsPerMeter = 2835
)

// Signature is the magic number at the start of every file.
var Signature = [2]byte{'B', 'M'}

var errTooLarge = errors.New("bitmap: image is too large")

// FileSize returns the total size in bytes of a file holding an image of the
// given dimensions.
func FileSize(width, height int) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.New("bitmap: invalid dimensions")
	}
	size := uint64(PixelOffset) + uint64(BytesPerPixel)*uint64(width)*uint64(height)
	if size > 1<<32-1 {
		return 0, errTooLarge
	}
	return uint32(size), nil
}

func write(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
