package bundle

import (
	"os"
	"sort"
	"time"
)

// DirectoryWatch pairs a directory path with the modification time observed
// when the directory was first touched during discovery. A watch whose
// directory has since changed or disappeared marks the owning bundle stale.
type DirectoryWatch struct {
	Path    string
	ModTime time.Time
}

// Fresh re-stats the directory and reports whether it still exists as a
// directory with an unchanged modification time. One stat call, no side
// effects; this runs on every cache lookup.
func (w DirectoryWatch) Fresh() bool {
	info, err := os.Stat(w.Path)
	if err != nil || !info.IsDir() {
		return false
	}
	return info.ModTime().Equal(w.ModTime)
}

// Watches returns the bundle's directory watches sorted by path.
func (b *Bundle) Watches() []DirectoryWatch {
	out := make([]DirectoryWatch, 0, len(b.watched))
	for path, mod := range b.watched {
		out = append(out, DirectoryWatch{Path: path, ModTime: mod})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
