package gradient

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/bodgit/gradient/bitmap"
)

const (
	scale     = 255.999
	blueLevel = 0.25
)

// ProgressFunc receives the percentage of rows written so far, from 0 to
// 100, after every row.
type ProgressFunc func(percent float64)

// Options describes the image to generate.
type Options struct {
	Width    int
	Height   int
	Order    RowOrder
	Progress ProgressFunc
}

// Result describes a generation run, successful or otherwise.
type Result struct {
	State  State
	Rows   int
	Pixels int
	Size   int64

	// Only set by Generate
	CRC  string
	SHA1 string
}

// Position n along an axis of length max, in the range [0, 1]. A single pixel
// axis is always at 0.
func fraction(n, max int) float64 {
	if max <= 1 {
		return 0
	}
	return float64(n) / float64(max-1)
}

func channel(f float64) uint8 {
	v := math.Floor(scale * f)
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}

// Color returns the color of the pixel at column i of row j in an image of
// the given dimensions. Red increases with the column, green with the row and
// blue is constant.
func Color(i, j, width, height int) (r, g, b uint8) {
	return channel(fraction(i, width)), channel(fraction(j, height)), channel(blueLevel)
}

// Encode writes a complete bitmap to w. The returned Result is never nil
// when the options are valid, even on error.
func (g *Generator) Encode(w io.Writer, o Options) (*Result, error) {
	size, err := bitmap.FileSize(o.Width, o.Height)
	if err != nil {
		return nil, err
	}

	res := &Result{State: Uninitialized}
	fail := func(err error) (*Result, error) {
		return res, &Error{Kind: ErrWrite, State: res.State, Err: err}
	}

	bw := bufio.NewWriter(w)

	if err := bitmap.WriteFileHeader(bw, size); err != nil {
		return fail(err)
	}
	if err := bitmap.WriteInfoHeader(bw, int32(o.Width), int32(o.Height)); err != nil {
		return fail(err)
	}
	res.State = HeaderWritten
	res.Size = bitmap.PixelOffset

	for k := 0; k < o.Height; k++ {
		j := k
		if o.Order == BottomUp {
			j = o.Height - 1 - k
		}
		res.State = PixelsStreaming

		for i := 0; i < o.Width; i++ {
			red, green, blue := Color(i, j, o.Width, o.Height)
			if err := bitmap.WritePixel(bw, red, green, blue); err != nil {
				return fail(err)
			}
			res.Pixels++
			res.Size += bitmap.BytesPerPixel
		}
		res.Rows++

		if o.Progress != nil {
			o.Progress(float64(res.Rows) / float64(o.Height) * 100)
		}
	}

	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	res.State = Complete

	return res, nil
}

// Generate creates or truncates the file at path and writes a complete
// bitmap to it. On failure the partially written file is left in place.
func (g *Generator) Generate(path string, o Options) (*Result, error) {
	if _, err := bitmap.FileSize(o.Width, o.Height); err != nil {
		return nil, err
	}

	g.logger.Printf("Generating %dx%d image \"%s\"\n", o.Width, o.Height, path)

	f, err := os.Create(path)
	if err != nil {
		return &Result{State: Uninitialized}, &Error{Kind: ErrCreate, State: Uninitialized, Err: err}
	}
	defer f.Close()

	res, err := g.Encode(f, o)
	if err != nil {
		g.logger.Printf("Aborted \"%s\" after %d rows: %v\n", path, res.Rows, err)
		return res, err
	}

	if err := f.Close(); err != nil {
		return res, &Error{Kind: ErrWrite, State: res.State, Err: err}
	}

	if res.CRC, res.SHA1, err = checksumFile(path); err != nil {
		return res, err
	}
	g.logger.Printf("Wrote %d bytes to \"%s\", with CRC \"%s\"\n", res.Size, path, res.CRC)

	if g.catalog != nil {
		if err := g.catalog.Record(path, o, res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// String formats the result for display.
func (r *Result) String() string {
	return fmt.Sprintf("%s: %d rows, %d pixels, %d bytes", r.State, r.Rows, r.Pixels, r.Size)
}
