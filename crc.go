package gradient

import (
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// checksumFile returns the CRC-32 and SHA-1 of file as upper case hex strings.
func checksumFile(file string) (string, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	c := crc32.NewIEEE()
	s := sha1.New()
	if _, err = io.Copy(io.MultiWriter(c, s), f); err != nil {
		return "", "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, c.Sum(nil)), fmt.Sprintf("%X", s.Sum(nil)), nil
}
