package internal

import (
	"image"
	"sync"

	"github.com/AllenDang/giu"
	"vincit.fi/image-gallery/api/apitype"
)

// TextureSlot holds the texture of one image. Textures are uploaded by giu
// asynchronously, so the slot is the only thing the upload callback touches.
type TextureSlot struct {
	mux        sync.Mutex
	texture    *giu.Texture
	imageFile  *apitype.ImageFile
	size       apitype.Size
	generation int
	loading    bool
	failed     bool
}

func NewTextureSlot() *TextureSlot {
	return &TextureSlot{}
}

// Load uploads rgba as the texture of imageFile. A later Load or Fail
// supersedes uploads still in flight.
func (s *TextureSlot) Load(imageFile *apitype.ImageFile, rgba *image.RGBA) {
	s.mux.Lock()
	s.generation++
	generation := s.generation
	s.imageFile = imageFile
	s.texture = nil
	s.size = apitype.SizeFromRectangle(rgba.Bounds())
	s.loading = true
	s.failed = false
	s.mux.Unlock()

	giu.NewTextureFromRgba(rgba, func(texture *giu.Texture) {
		s.mux.Lock()
		defer s.mux.Unlock()
		if generation != s.generation {
			return
		}
		s.texture = texture
		s.loading = false
		giu.Update()
	})
}

// Fail clears the slot and marks imageFile as not loadable.
func (s *TextureSlot) Fail(imageFile *apitype.ImageFile) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.generation++
	s.imageFile = imageFile
	s.texture = nil
	s.size = apitype.Size{}
	s.loading = false
	s.failed = true
}

func (s *TextureSlot) Texture() *giu.Texture {
	if s == nil {
		return nil
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.texture
}

func (s *TextureSlot) ImageFile() *apitype.ImageFile {
	if s == nil {
		return nil
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.imageFile
}

// Size is the pixel size of the uploaded image.
func (s *TextureSlot) Size() apitype.Size {
	if s == nil {
		return apitype.Size{}
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.size
}

func (s *TextureSlot) IsLoading() bool {
	if s == nil {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loading
}

func (s *TextureSlot) IsFailed() bool {
	if s == nil {
		return false
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.failed
}
