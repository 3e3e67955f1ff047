package source

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Page images come in whatever format the scanner or distributor
	// chose; register the common ones with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageExtensions lists the file extensions treated as page images.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// isImagePath reports whether name has a recognized image extension.
func isImagePath(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// LoadImage reads and decodes a single image file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
