package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var DefaultPatterns = []string{"*.jpg"}

// Library lists the images of a directory. File names are matched case
// insensitively against the configured glob patterns.
type Library struct {
	patterns []glob.Glob

	api.ImageLibrary
}

func NewLibrary(patterns []string) (*Library, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := CompilePattern(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, g)
	}
	return &Library{patterns: compiled}, nil
}

// CompilePattern compiles a file name pattern. Patterns are lower-cased
// since they are always matched against lower-cased names.
func CompilePattern(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern '%s': %w", pattern, err)
	}
	return g, nil
}

// ListImages returns the matching regular files of the directory sorted by
// name. A missing path or a path that is not a directory yields no images and
// no error. Errors while reading an existing directory are returned.
func (s *Library) ListImages(directory string) ([]*apitype.ImageFile, error) {
	info, err := os.Stat(directory)
	if err != nil {
		logger.Warn.Printf("Image directory '%s' is not available: %s", directory, err)
		return []*apitype.ImageFile{}, nil
	}
	if !info.IsDir() {
		logger.Warn.Printf("Image directory '%s' is not a directory", directory)
		return []*apitype.ImageFile{}, nil
	}

	logger.Debug.Printf("Scanning directory '%s'", directory)
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("could not read directory '%s': %w", directory, err)
	}

	imageFiles := []*apitype.ImageFile{}
	for _, entry := range entries {
		name := entry.Name()
		if !s.IsSupported(name) {
			continue
		}
		if !isRegularFile(directory, entry) {
			logger.Trace.Printf(" - skip '%s': not a regular file", name)
			continue
		}
		imageFiles = append(imageFiles, apitype.NewImageFile(directory, name))
	}

	sortByName(imageFiles)
	logger.Debug.Printf("Found %d images", len(imageFiles))
	return imageFiles, nil
}

func (s *Library) IsSupported(fileName string) bool {
	lowerCaseName := strings.ToLower(fileName)
	for _, pattern := range s.patterns {
		if pattern.Match(lowerCaseName) {
			return true
		}
	}
	return false
}

// Symlinks count as regular files when they point to one.
func isRegularFile(directory string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(directory, entry.Name()))
	if err != nil {
		logger.Warn.Printf("Could not resolve link '%s': %s", entry.Name(), err)
		return false
	}
	return info.Mode().IsRegular()
}

func sortByName(imageFiles []*apitype.ImageFile) {
	sort.SliceStable(imageFiles, func(i, j int) bool {
		a := strings.ToLower(imageFiles[i].FileName())
		b := strings.ToLower(imageFiles[j].FileName())
		if a != b {
			return a < b
		}
		return imageFiles[i].FileName() < imageFiles[j].FileName()
	})
}
