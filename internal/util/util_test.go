package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.jpg")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	sum, size, err := FileChecksum(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)
	assert.Equal(t, int64(3), size)

	_, _, err = FileChecksum(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 512, want: "512 B"},
		{in: 1024, want: "1.0 KB"},
		{in: 1536, want: "1.5 KB"},
		{in: 5 * 1024 * 1024, want: "5.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in))
	}
}
