package api

import (
	"image"

	"vincit.fi/image-gallery/api/apitype"
)

type ImageLoader interface {
	// LoadThumbnail scales the image to exactly the given size.
	LoadThumbnail(*apitype.ImageFile, apitype.Size) (*image.RGBA, error)
	// LoadFitted scales the image to fit inside the given size keeping its aspect ratio.
	LoadFitted(*apitype.ImageFile, apitype.Size) (*image.RGBA, error)
	LoadExifData(*apitype.ImageFile) (*apitype.ExifData, error)
}
