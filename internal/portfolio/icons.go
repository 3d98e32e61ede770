package portfolio

import (
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"strings"
)

// Icon is either a decoded image or, when the asset is unavailable, the
// upper-cased label drawn in its place.
type Icon struct {
	Name  string
	Image image.Image
	Label string
}

func (i Icon) Fallback() bool { return i.Image == nil }

// IconSet resolves skill icons named <name>.png from a filesystem.
type IconSet struct {
	fsys  fs.FS
	cache map[string]Icon
}

// NewIconSet accepts a nil fsys, in which case every icon falls back.
func NewIconSet(fsys fs.FS) *IconSet {
	return &IconSet{fsys: fsys, cache: map[string]Icon{}}
}

func (s *IconSet) Lookup(name string) Icon {
	if icon, ok := s.cache[name]; ok {
		return icon
	}
	icon := Icon{Name: name}
	if img, err := s.load(name); err == nil {
		icon.Image = img
	} else {
		icon.Label = strings.ToUpper(name)
	}
	s.cache[name] = icon
	return icon
}

func (s *IconSet) load(name string) (image.Image, error) {
	if s.fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := s.fsys.Open(name + ".png")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("[Icons] %s.png unreadable, using label: %v", name, err)
		return nil, err
	}
	return img, nil
}
