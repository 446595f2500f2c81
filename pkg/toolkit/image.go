package toolkit

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageLoader turns an image reference from a description into pixels.
type ImageLoader interface {
	LoadImage(ref string) (image.Image, error)
}

// ImageLoaderFunc adapts a function to ImageLoader.
type ImageLoaderFunc func(ref string) (image.Image, error)

func (f ImageLoaderFunc) LoadImage(ref string) (image.Image, error) { return f(ref) }

// FileImageLoader decodes image files by content: PNG, JPEG, GIF, BMP, TIFF
// and WebP.
type FileImageLoader struct {
	// Dir resolves relative references. Empty means the working directory.
	Dir string
}

// LoadImage opens and decodes ref.
func (l FileImageLoader) LoadImage(ref string) (image.Image, error) {
	path := ref
	if l.Dir != "" && !filepath.IsAbs(ref) {
		path = filepath.Join(l.Dir, ref)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", ref, err)
	}
	return img, nil
}
