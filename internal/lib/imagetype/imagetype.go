// Package imagetype decides whether an uploaded portfolio image is in an
// accepted format.
package imagetype

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

// Format is an accepted image format.
type Format string

const (
	PNG      Format = "png"
	JPEG     Format = "jpeg"
	JPEG2000 Format = "jp2"
)

// ErrInvalidFileType is returned for anything that is not PNG, JPEG or
// JPEG 2000.
var ErrInvalidFileType = errors.New("invalid file type: only png, jpeg and jp2 images are accepted")

// MIME returns the content type stored alongside the format.
func (f Format) MIME() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case JPEG2000:
		return "image/jp2"
	default:
		return "application/octet-stream"
	}
}

// Classifier inspects raw bytes and names their format.
type Classifier interface {
	Classify(data []byte) (Format, error)
}

// MimeClassifier sniffs magic numbers with gabriel-vasile/mimetype.
type MimeClassifier struct{}

// NewClassifier returns the default classifier.
func NewClassifier() Classifier {
	return MimeClassifier{}
}

func (MimeClassifier) Classify(data []byte) (Format, error) {
	if len(data) == 0 {
		return "", ErrInvalidFileType
	}

	detected := mimetype.Detect(data)
	switch {
	case detected.Is("image/png"):
		return PNG, nil
	case detected.Is("image/jpeg"):
		return JPEG, nil
	case detected.Is("image/jp2"):
		return JPEG2000, nil
	default:
		return "", ErrInvalidFileType
	}
}
