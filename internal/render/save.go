package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
)

// SavePNG writes img to path, upscaling by an integer factor with
// nearest-neighbour sampling so cells stay crisp. Missing parent directories
// are created.
func SavePNG(path string, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		img = transform.Resize(img, b.Dx()*scale, b.Dy()*scale, transform.NearestNeighbor)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	return errors.Wrapf(imgio.Save(path, img, imgio.PNGEncoder()), "save %s", path)
}

// FramePath names the n-th interval snapshot written with prefix.
func FramePath(prefix string, n int) string {
	return fmt.Sprintf("%s%d.png", prefix, n)
}

// AnimationFramePath names the frame of tick inside dir so that lexical order
// matches tick order.
func AnimationFramePath(dir string, tick int) string {
	return filepath.Join(dir, fmt.Sprintf("frame-%010d.png", tick))
}
