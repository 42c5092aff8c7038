// Package imgfile saves rendered images. The encoder is chosen from the file
// extension: .png, .bmp, .tif or .tiff.
package imgfile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for file extensions without an encoder.
var ErrUnknownFormat = errors.New("imgfile: unknown image format")

// Encoder writes img to w in one format.
type Encoder func(w io.Writer, img image.Image) error

// EncoderFor returns the encoder matching the extension of name.
func EncoderFor(name string) (Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Save encodes img into the file name.
func Save(name string, img image.Image) (err error) {
	enc, err := EncoderFor(name)
	if err != nil {
		return err
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return nil
}
