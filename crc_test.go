package gradient

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, ioutil.WriteFile(file, []byte("123456789"), 0644))

	crc, sha, err := checksumFile(file)
	require.NoError(t, err)
	assert.Equal(t, "CBF43926", crc)
	assert.Equal(t, "F7C3BC1D808E04732ADF679965CCC34CA7AE3441", sha)
}

func TestChecksumFileMissing(t *testing.T) {
	_, _, err := checksumFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
