//go:build !linux

package imageloader

import (
	"image"
	"os"

	"github.com/disintegration/imaging"
	"vincit.fi/image-gallery/api/apitype"
)

func decodeFile(path string, _ *apitype.Size) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return imaging.Decode(file)
}
