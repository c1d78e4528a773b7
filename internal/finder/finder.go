// Package finder locates localization files on disk. It wraps doublestar
// globbing so callers can pass extended patterns (brace sets, ** recursion)
// and get back deterministic, sorted results.
package finder

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/potomac-dev/potomac/internal/types"
)

// conventionalSubdirs are the directory names packages conventionally keep
// their translation files in, searched in addition to the directory itself.
var conventionalSubdirs = []string{"languages", "language", "lang"}

// sourceExtension is the source-code extension scanned for domain
// attribution. Hosts currently ship a single implementation language.
const sourceExtension = ".php"

// Finder implements filesystem discovery of POT/PO/MO and source files.
type Finder struct{}

// New creates a finder.
func New() *Finder {
	return &Finder{}
}

// glob runs a doublestar pattern and returns sorted matches. A pattern that
// matches nothing is not an error.
func (f *Finder) glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// group splits paths into template and translation candidates by extension.
func group(paths []string) types.FileGroup {
	var g types.FileGroup
	for _, p := range paths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".pot":
			g.Templates = append(g.Templates, p)
		case ".po":
			g.Translations = append(g.Translations, p)
		}
	}
	return g
}

// FindGrouped matches a glob pattern and splits the hits into template and
// translation candidates.
func (f *Finder) FindGrouped(pattern string) (types.FileGroup, error) {
	matches, err := f.glob(pattern)
	if err != nil {
		return types.FileGroup{}, err
	}
	return group(matches), nil
}

// FindTranslationFiles returns the POT/PO files under dir, looking in the
// directory itself and in its conventional language subdirectories.
func (f *Finder) FindTranslationFiles(dir string) (types.FileGroup, error) {
	var all []string
	for _, d := range searchDirs(dir) {
		matches, err := f.glob(filepath.Join(d, "*.{po,pot}"))
		if err != nil {
			return types.FileGroup{}, err
		}
		all = append(all, matches...)
	}
	return group(all), nil
}

// FindBinaryFiles returns the compiled MO files under dir, using the same
// directory conventions as FindTranslationFiles.
func (f *Finder) FindBinaryFiles(dir string) ([]string, error) {
	var all []string
	for _, d := range searchDirs(dir) {
		matches, err := f.glob(filepath.Join(d, "*.mo"))
		if err != nil {
			return nil, err
		}
		all = append(all, matches...)
	}
	return all, nil
}

// FindSourceFiles returns source-code files anywhere under dir.
func (f *Finder) FindSourceFiles(dir string) ([]string, error) {
	return f.glob(filepath.Join(dir, "**", "*"+sourceExtension))
}

// searchDirs lists the directories FindTranslationFiles and FindBinaryFiles
// look in for a given root.
func searchDirs(dir string) []string {
	dirs := []string{dir}
	for _, sub := range conventionalSubdirs {
		dirs = append(dirs, filepath.Join(dir, sub))
	}
	return dirs
}
