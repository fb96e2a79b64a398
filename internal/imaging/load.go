package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Open loads an image from disk.
//
// Supported formats are PNG, JPEG, GIF, TIFF and BMP. EXIF orientation is
// applied so that rotated captures decode with the expected handedness.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// Save writes an image to disk; the format is inferred from the file
// extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
