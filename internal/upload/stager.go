// Package upload stages product images selected for a product-creation form
// before they are submitted. Staging is bounded and scoped: at most five
// images at a time, each backed by a temp file that is released exactly once,
// on removal or on Close.
package upload

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

const (
	// MaxImages bounds the staging list.
	MaxImages = 5
	// MaxFileSize is the per-image size cap (5 MiB).
	MaxFileSize = 5 << 20

	// sniffLen is how many bytes http.DetectContentType inspects.
	sniffLen = 512
)

// AcceptedImageTypes are the content types allowed for product images. The
// type is sniffed from the file bytes, never trusted from the caller.
var AcceptedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

var (
	// ErrTooManyImages is returned when staging a sixth image.
	ErrTooManyImages = errors.New("at most 5 images can be staged")
	// ErrFileTooLarge is returned when an image exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("image exceeds the 5MB size limit")
	// ErrUnsupportedType is returned for non jpeg/png/webp content.
	ErrUnsupportedType = errors.New("unsupported image type")
	// ErrNotStaged is returned when removing an unknown or already
	// released entry.
	ErrNotStaged = errors.New("image is not staged")
)

// StagedImage is one staged entry. Path points at the backing temp file and
// is only valid until the entry is removed or the stager is closed.
type StagedImage struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	Path        string
}

// Stager holds the transient image selection for one form. Safe for
// concurrent use.
type Stager struct {
	mu     sync.Mutex
	dir    string
	images []StagedImage
}

// NewStager creates a Stager backed by temp files under dir. An empty dir
// uses the system temp directory.
func NewStager(dir string) *Stager {
	return &Stager{dir: dir}
}

// Add validates and stages one image. The content type is sniffed from the
// first bytes and the size cap is enforced while copying, so a lying or
// oversized reader never leaves a staged entry behind.
func (s *Stager) Add(name string, r io.Reader) (StagedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.images) >= MaxImages {
		return StagedImage{}, ErrTooManyImages
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return StagedImage{}, errors.Wrap(err, "read image")
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !accepted(contentType) {
		return StagedImage{}, errors.Wrapf(ErrUnsupportedType, "%s", contentType)
	}

	f, err := os.CreateTemp(s.dir, "staged-image-*")
	if err != nil {
		return StagedImage{}, errors.Wrap(err, "create temp file")
	}

	// Cap at one byte past the limit so an oversized source is detected
	// without copying it whole.
	size, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), io.LimitReader(r, MaxFileSize-int64(len(head))+1)))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return StagedImage{}, errors.Wrap(err, "copy image")
	}
	if size > MaxFileSize {
		os.Remove(f.Name())
		return StagedImage{}, ErrFileTooLarge
	}

	img := StagedImage{
		ID:          uuid.NewString(),
		Name:        filepath.Base(name),
		ContentType: contentType,
		Size:        size,
		Path:        f.Name(),
	}
	s.images = append(s.images, img)
	return img, nil
}

// Remove releases the staged entry with the given id. Removing an entry
// twice is an error; the backing file is deleted exactly once.
func (s *Stager) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, img := range s.images {
		if img.ID != id {
			continue
		}
		s.images = append(s.images[:i], s.images[i+1:]...)
		return os.Remove(img.Path)
	}
	return ErrNotStaged
}

// Images returns a snapshot of the staged entries in selection order.
func (s *Stager) Images() []StagedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StagedImage, len(s.images))
	copy(out, s.images)
	return out
}

// Open opens the backing file of a staged entry for submission.
func (s *Stager) Open(id string) (*os.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, img := range s.images {
		if img.ID == id {
			return os.Open(img.Path)
		}
	}
	return nil, ErrNotStaged
}

// Close releases every remaining staged entry. Entries already removed are
// not touched again.
func (s *Stager) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, img := range s.images {
		if err := os.Remove(img.Path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.images = nil
	return firstErr
}

func accepted(contentType string) bool {
	for _, t := range AcceptedImageTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

