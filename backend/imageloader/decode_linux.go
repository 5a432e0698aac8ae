package imageloader

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var options = &jpeg.DecoderOptions{}

// With a size, libjpeg decodes directly at the smallest DCT scale that is
// still at least as large as the size. Files libjpeg cannot read are decoded
// with imaging so that non-JPEG patterns keep working.
func decodeFile(path string, size *apitype.Size) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decodeOptions := options
	if size != nil {
		decodeOptions = &jpeg.DecoderOptions{ScaleTarget: image.Rect(0, 0, size.Width(), size.Height())}
	}
	img, err := jpeg.Decode(file, decodeOptions)
	if err == nil {
		return img, nil
	}

	logger.Trace.Printf("libjpeg could not decode '%s', trying other formats: %s", path, err)
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return nil, seekErr
	}
	return imaging.Decode(file)
}
