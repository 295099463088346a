package storage

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path/filepath"
	"strings"
)

// ErrUnsupportedImage is returned for uploads that are not JPEG or PNG images.
var ErrUnsupportedImage = errors.New("unsupported image")

var allowedExtensions = map[string]string{
	".jpg": "jpeg",
	".png": "png",
}

// AllowedExtension reports whether filename ends in one of the accepted photo extensions.
func AllowedExtension(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ValidateImage checks the extension and that content decodes as the matching image format.
func ValidateImage(filename string, content []byte) error {
	want, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return ErrUnsupportedImage
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil || format != want {
		return ErrUnsupportedImage
	}
	return nil
}
