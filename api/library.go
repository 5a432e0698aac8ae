package api

import (
	"vincit.fi/image-gallery/api/apitype"
)

type ImageLibrary interface {
	ListImages(directory string) ([]*apitype.ImageFile, error)
}
