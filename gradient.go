/*
Package gradient is a library for generating a synthetic gradient test image
and writing it out as an uncompressed 24-bit bitmap.
*/
package gradient

import (
	"io/ioutil"
	"log"
)

// Default image parameters
const (
	DefaultWidth  = 512
	DefaultHeight = 512
	DefaultPath   = "image.bmp"
)

// Generator produces gradient images, optionally recording each one in a
// Catalog.
type Generator struct {
	catalog *Catalog
	logger  *log.Logger
}

// New returns a Generator. catalog and logger may both be nil.
func New(catalog *Catalog, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Generator{
		catalog: catalog,
		logger:  logger,
	}
}
