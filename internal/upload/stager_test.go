package upload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes returns a payload that sniffs as image/png, padded to size.
func pngBytes(size int) []byte {
	header := []byte("\x89PNG\r\n\x1a\n")
	if size < len(header) {
		return header[:size]
	}
	return append(header, bytes.Repeat([]byte{0}, size-len(header))...)
}

func jpegBytes() []byte {
	return []byte("\xff\xd8\xff\xe0padding")
}

func newTestStager(t *testing.T) *Stager {
	t.Helper()
	s := NewStager(t.TempDir())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStager_Add(t *testing.T) {
	s := newTestStager(t)

	img, err := s.Add("photos/boots.png", bytes.NewReader(pngBytes(1024)))
	require.NoError(t, err)

	assert.NotEmpty(t, img.ID)
	assert.Equal(t, "boots.png", img.Name)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, int64(1024), img.Size)
	assert.FileExists(t, img.Path)

	jpg, err := s.Add("front.jpg", bytes.NewReader(jpegBytes()))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", jpg.ContentType)

	require.Len(t, s.Images(), 2)
}

func TestStager_RejectsUnsupportedType(t *testing.T) {
	s := newTestStager(t)

	_, err := s.Add("notes.txt", strings.NewReader("just some text"))
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, s.Images())
}

func TestStager_RejectsOversized(t *testing.T) {
	s := newTestStager(t)

	_, err := s.Add("huge.png", bytes.NewReader(pngBytes(MaxFileSize+1)))
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, s.Images())

	// Exactly at the cap is fine.
	_, err = s.Add("big.png", bytes.NewReader(pngBytes(MaxFileSize)))
	require.NoError(t, err)
}

func TestStager_BoundedToFive(t *testing.T) {
	s := newTestStager(t)

	for range MaxImages {
		_, err := s.Add("img.png", bytes.NewReader(pngBytes(64)))
		require.NoError(t, err)
	}

	_, err := s.Add("one-too-many.png", bytes.NewReader(pngBytes(64)))
	require.ErrorIs(t, err, ErrTooManyImages)
	assert.Len(t, s.Images(), MaxImages)

	// Removing one frees a slot.
	require.NoError(t, s.Remove(s.Images()[0].ID))
	_, err = s.Add("fits-again.png", bytes.NewReader(pngBytes(64)))
	require.NoError(t, err)
}

func TestStager_RemoveReleasesExactlyOnce(t *testing.T) {
	s := newTestStager(t)

	img, err := s.Add("img.png", bytes.NewReader(pngBytes(64)))
	require.NoError(t, err)

	require.NoError(t, s.Remove(img.ID))
	assert.NoFileExists(t, img.Path)

	// A second removal is an error, not a second release.
	require.ErrorIs(t, s.Remove(img.ID), ErrNotStaged)

	// Close does not touch the already-released entry.
	require.NoError(t, s.Close())
}

func TestStager_CloseReleasesRemaining(t *testing.T) {
	s := NewStager(t.TempDir())

	a, err := s.Add("a.png", bytes.NewReader(pngBytes(64)))
	require.NoError(t, err)
	b, err := s.Add("b.png", bytes.NewReader(pngBytes(64)))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.NoFileExists(t, a.Path)
	assert.NoFileExists(t, b.Path)
	assert.Empty(t, s.Images())
}

func TestStager_Open(t *testing.T) {
	s := newTestStager(t)

	img, err := s.Add("img.png", bytes.NewReader(pngBytes(64)))
	require.NoError(t, err)

	f, err := s.Open(img.ID)
	require.NoError(t, err)
	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(64), info.Size())
	require.NoError(t, f.Close())

	_, err = s.Open("unknown")
	require.ErrorIs(t, err, ErrNotStaged)
}
