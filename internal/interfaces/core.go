// Package interfaces defines the collaborator abstractions the discovery core
// consumes. The core never talks to the host environment, the filesystem
// globber, or the translation parser directly; it goes through these narrow
// interfaces so callers can inject their own implementations and tests can
// substitute fakes.
package interfaces

import (
	"github.com/potomac-dev/potomac/internal/types"
)

// HostRegistry enumerates the packages the host environment knows about.
// Lookups return (meta, false) when the handle is unknown; absence is not an
// error.
type HostRegistry interface {
	// LookupTheme resolves a theme handle (directory name) to its metadata.
	LookupTheme(handle string) (types.ThemeMeta, bool)
	// LookupPlugin resolves a plugin handle (relative file path) to its
	// metadata.
	LookupPlugin(handle string) (types.PluginMeta, bool)
}

// Finder locates localization files on disk.
type Finder interface {
	// FindGrouped matches a glob pattern and splits the hits into template
	// (POT) and translation (PO) candidates.
	FindGrouped(pattern string) (types.FileGroup, error)
	// FindTranslationFiles returns all POT/PO files directly under dir.
	FindTranslationFiles(dir string) (types.FileGroup, error)
	// FindBinaryFiles returns all compiled MO files directly under dir.
	FindBinaryFiles(dir string) ([]string, error)
	// FindSourceFiles returns source-code files under dir that may attribute
	// strings to a text domain.
	FindSourceFiles(dir string) ([]string, error)
}

// Classifier resolves text domain and locale from filename conventions.
type Classifier interface {
	// ResolveDomain extracts the text domain from a file path, returning
	// ("", false) when the name carries no domain.
	ResolveDomain(path string) (string, bool)
	// ResolveLocale extracts the locale from a file path, returning
	// (zero, false) when the name carries no recognizable locale.
	ResolveLocale(path string) (types.Locale, bool)
}

// LocaleResolver turns a bare locale code into a resolved Locale.
type LocaleResolver interface {
	Resolve(code string) (types.Locale, bool)
}

// FileStats summarizes the translation progress of a parsed PO file.
type FileStats struct {
	// Total is the number of message entries, excluding the header entry.
	Total int
	// Translated is the number of entries with a non-empty translation.
	Translated int
	// Fuzzy is the number of entries flagged fuzzy.
	Fuzzy int
}

// Parser extracts headers and entry statistics from a translation file.
type Parser interface {
	// ParseWithHeaders reads a PO file and returns its stats and header map.
	// Malformed input yields an error; callers decide whether that is fatal.
	ParseWithHeaders(path string) (FileStats, map[string]string, error)
}

// Cache is the process-wide key/value store the registry memoizes bundles in.
// Implementations must tolerate concurrent readers and writers.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Clear(key string)
}
