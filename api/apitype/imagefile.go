package apitype

import (
	"path/filepath"
)

// ImageFile references one image in the gallery. The file name doubles as
// the display name. Values are never mutated after creation.
type ImageFile struct {
	directory string
	filename  string
	path      string
}

var EmptyImageFile = ImageFile{path: ""}

func NewImageFile(fileDir string, fileName string) *ImageFile {
	path := ""
	if fileName != "" {
		path = filepath.Join(fileDir, fileName)
	}
	return &ImageFile{
		directory: fileDir,
		filename:  fileName,
		path:      path,
	}
}

func GetEmptyImageFile() *ImageFile {
	return &EmptyImageFile
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageFile{" + s.filename + "}"
		} else {
			return "ImageFile<invalid>"
		}
	} else {
		return "ImageFile<nil>"
	}
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}
