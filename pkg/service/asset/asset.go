package asset

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

// DefaultURLPrefix is where the HTTP server mounts the image directory
const DefaultURLPrefix = "/images"

// FileName returns the image file name for a week
func FileName(week types.Week) string {
	return fmt.Sprintf("week%d.png", week)
}

// Dir is an AssetStore backed by a directory of week{N}.png files. Files are
// checked on every call so images can be added without a restart.
type Dir struct {
	dir       string
	urlPrefix string
}

// NewDir creates a directory asset store
func NewDir(dir, urlPrefix string) *Dir {
	return &Dir{
		dir:       dir,
		urlPrefix: NormalizePrefix(urlPrefix),
	}
}

var _ interfaces.AssetStore = (*Dir)(nil)

// Has reports whether the week's image file exists
func (d *Dir) Has(week types.Week) bool {
	info, err := os.Stat(filepath.Join(d.dir, FileName(week)))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Ref returns the URL path of the week's image
func (d *Dir) Ref(week types.Week) types.ImageRef {
	return types.ImageRef(path.Join(d.urlPrefix, FileName(week)))
}

// Path returns the directory served by this store
func (d *Dir) Path() string {
	return d.dir
}

// URLPrefix returns the URL prefix of image refs
func (d *Dir) URLPrefix() string {
	return d.urlPrefix
}

// NormalizePrefix turns a configured prefix into "/a/b" form
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return DefaultURLPrefix
	}
	return "/" + prefix
}

// Set is a fixed AssetStore, mainly for tests
type Set struct {
	weeks map[types.Week]struct{}
}

// NewSet creates an asset store that has images for exactly the given weeks
func NewSet(weeks ...types.Week) *Set {
	s := &Set{
		weeks: make(map[types.Week]struct{}, len(weeks)),
	}
	for _, w := range weeks {
		s.weeks[w] = struct{}{}
	}
	return s
}

var _ interfaces.AssetStore = (*Set)(nil)

// Has reports whether week is in the set
func (s *Set) Has(week types.Week) bool {
	_, ok := s.weeks[week]
	return ok
}

// Ref returns the URL path of the week's image
func (s *Set) Ref(week types.Week) types.ImageRef {
	return types.ImageRef(path.Join(DefaultURLPrefix, FileName(week)))
}
