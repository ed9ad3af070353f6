package utils

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// CreateThumb resizes the saved image at <dir>/<id><ext> to the given width
// and writes it next to the original as <dir>/thumb/<id><ext>.
func CreateThumb(id, dir, ext string, width, height int) error {
	src := filepath.Join(dir, id+ext)
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	thumb := imaging.Resize(img, width, height, imaging.Lanczos)
	dst := filepath.Join(dir, "thumb", id+ext)
	if err := imaging.Save(thumb, dst); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}
	return nil
}
