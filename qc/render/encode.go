package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/pixiv/go-libjpeg/jpeg"
)

// EncodeTo writes img to w in format (png or jpg)
func EncodeTo(w io.Writer, img image.Image, format string, quality int) error {
	switch format {
	case common.FormatJPG, "jpeg":
		if quality <= 0 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.EncoderOptions{Quality: quality})
	case common.FormatPNG, "":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// ContentType returns the MIME type for format
func ContentType(format string) string {
	if format == common.FormatJPG || format == "jpeg" {
		return "image/jpeg"
	}
	return "image/png"
}

// Encode writes img to path, creating missing directories. The image is
// encoded into a temporary file in the same directory and renamed into
// place, so a failed encode never leaves a partial file at path. The rename
// is only atomic where the filesystem makes it so.
func Encode(img image.Image, path string, format string, quality int) (err error) {
	defer func() {
		if err != nil {
			err = &EncodeError{Path: path, Err: err}
		}
	}()

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".quote-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodeTo(tmp, img, format, quality); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
