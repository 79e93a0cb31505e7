package bitmap

import (
	"encoding/binary"
	"io"
)

// WriteFileHeader writes the 14 byte file header to w. size is the total size
// of the file in bytes including both headers.
func WriteFileHeader(w io.Writer, size uint32) error {
	var h [FileHeaderSize]byte

	copy(h[0:2], Signature[:])
	binary.LittleEndian.PutUint32(h[2:6], size)
	// Two reserved 16-bit fields, left as zero
	binary.LittleEndian.PutUint16(h[6:8], 0)
	binary.LittleEndian.PutUint16(h[8:10], 0)
	binary.LittleEndian.PutUint32(h[10:14], PixelOffset)

	return write(w, h[:])
}

// WriteInfoHeader writes the 40 byte BITMAPINFOHEADER describing a 24-bit
// uncompressed image of the given dimensions to w.
func WriteInfoHeader(w io.Writer, width, height int32) error {
	var h [InfoHeaderSize]byte

	binary.LittleEndian.PutUint32(h[0:4], InfoHeaderSize)
	binary.LittleEndian.PutUint32(h[4:8], uint32(width))
	binary.LittleEndian.PutUint32(h[8:12], uint32(height))
	binary.LittleEndian.PutUint16(h[12:14], planes)
	binary.LittleEndian.PutUint16(h[14:16], BitsPerPixel)
	binary.LittleEndian.PutUint32(h[16:20], compression)
	// Zero is allowed for BI_RGB, readers compute it from the dimensions
	binary.LittleEndian.PutUint32(h[20:24], 0)
	binary.LittleEndian.PutUint32(h[24:28], pixelsPerMeter)
	binary.LittleEndian.PutUint32(h[28:32], pixelsPerMeter)
	// Colors used and important colors, zero means all
	binary.LittleEndian.PutUint32(h[32:36], 0)
	binary.LittleEndian.PutUint32(h[36:40], 0)

	return write(w, h[:])
}

// WritePixel writes a single pixel record to w in blue, green, red order.
func WritePixel(w io.Writer, r, g, b uint8) error {
	return write(w, []byte{b, g, r})
}
