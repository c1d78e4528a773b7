// Package bundle implements the package descriptor at the center of
// localization discovery. A Bundle aggregates the template (POT), translation
// (PO), and compiled (MO) files discovered for one theme, plugin, or core
// package, grouped by text domain and locale, and computes derived views:
// the canonical template per domain, the best directory for new files,
// permission status, and a memoized metadata summary.
//
// Bundles are populated by the variant builders in the registry package and
// cached there; every registered file's directory is recorded with the
// modification time first observed so the cache can detect staleness.
package bundle

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/potomac-dev/potomac/internal/interfaces"
	"github.com/potomac-dev/potomac/internal/types"
)

// Bundle describes the localization assets of one package.
type Bundle struct {
	handle string
	kind   types.PackageKind

	// name is the human-readable display name; falls back to the domain.
	name string
	// domain is the default text domain. Defaulting runs once, lazily; see
	// Domain.
	domain       string
	domainLoaded bool

	// root is the package install directory.
	root string
	// baseDir is the kind's global base language directory, the last-resort
	// location for new files.
	baseDir string

	// parent links a child theme to its template theme's bundle.
	parent *Bundle

	// templates maps domain to its single canonical POT path.
	templates map[string]string
	// translations maps domain, then locale code, to a PO or MO path. The
	// xx_XX placeholder keys files whose locale could not be determined.
	translations map[string]map[string]string
	// domainOrder preserves discovery order so "first discovered domain"
	// and summary output stay deterministic.
	domainOrder []string

	// sourceDirs are directories that may contain source code attributing
	// strings to this package's domains.
	sourceDirs []string

	// watched records each directory containing a registered file together
	// with the modification time first observed. First observation wins.
	watched map[string]time.Time

	lastModified time.Time
	fileCount    int

	// meta memoizes Summary output; nil means not computed or invalidated.
	meta *Meta

	classifier interfaces.Classifier
	parser     interfaces.Parser
}

// New creates an empty bundle for a package handle. The classifier resolves
// domains and locales from filenames during registration; the parser is used
// by Summary to read translation file headers and counts.
func New(handle string, kind types.PackageKind, classifier interfaces.Classifier, parser interfaces.Parser) *Bundle {
	return &Bundle{
		handle:       handle,
		kind:         kind,
		templates:    make(map[string]string),
		translations: make(map[string]map[string]string),
		watched:      make(map[string]time.Time),
		classifier:   classifier,
		parser:       parser,
	}
}

// Handle returns the host-assigned package identifier.
func (b *Bundle) Handle() string { return b.handle }

// Kind returns the package kind tag.
func (b *Bundle) Kind() types.PackageKind { return b.kind }

// Root returns the package install directory.
func (b *Bundle) Root() string { return b.root }

// SetRoot records the package install directory.
func (b *Bundle) SetRoot(dir string) { b.root = dir }

// BaseDir returns the kind's global base language directory.
func (b *Bundle) BaseDir() string { return b.baseDir }

// SetBaseDir records the kind's global base language directory.
func (b *Bundle) SetBaseDir(dir string) { b.baseDir = dir }

// Parent returns the parent theme bundle, if one was recorded.
func (b *Bundle) Parent() *Bundle { return b.parent }

// SetParent links a parent theme bundle.
func (b *Bundle) SetParent(parent *Bundle) { b.parent = parent }

// Name returns the display name, falling back to the default domain.
func (b *Bundle) Name() string {
	if b.name != "" {
		return b.name
	}
	return b.Domain()
}

// SetName records the display name.
func (b *Bundle) SetName(name string) { b.name = name }

// DeclaredDomain returns the domain as currently set, without triggering the
// lazy defaulting logic.
func (b *Bundle) DeclaredDomain() string { return b.domain }

// SetDomain overrides the default text domain. Used by builders for declared
// domains and for parent theme inheritance.
func (b *Bundle) SetDomain(domain string) {
	b.domain = domain
	b.invalidate()
}

// Domain returns the default text domain. On first call an unset domain
// defaults to the handle; whenever the default owns no discovered files, the
// first discovered domain silently takes its place.
func (b *Bundle) Domain() string {
	if !b.domainLoaded {
		b.domainLoaded = true
		if b.domain == "" {
			b.domain = b.handle
		}
	}
	if !b.hasDomain(b.domain) && len(b.domainOrder) > 0 {
		b.domain = b.domainOrder[0]
	}
	return b.domain
}

// hasDomain reports whether any template or translation file was discovered
// under the given domain.
func (b *Bundle) hasDomain(domain string) bool {
	if _, ok := b.templates[domain]; ok {
		return true
	}
	return len(b.translations[domain]) > 0
}

// Domains returns all discovered domains in discovery order.
func (b *Bundle) Domains() []string {
	out := make([]string, len(b.domainOrder))
	copy(out, b.domainOrder)
	return out
}

// AddSourceDir appends a source-code directory. Duplicates are ignored.
func (b *Bundle) AddSourceDir(dir string) {
	for _, d := range b.sourceDirs {
		if d == dir {
			return
		}
	}
	b.sourceDirs = append(b.sourceDirs, dir)
	b.invalidate()
}

// SourceDirs returns the ordered source directories.
func (b *Bundle) SourceDirs() []string {
	out := make([]string, len(b.sourceDirs))
	copy(out, b.sourceDirs)
	return out
}

// LastModified returns the newest modification time across all added files.
func (b *Bundle) LastModified() time.Time { return b.lastModified }

// FileCount returns the number of non-empty files added.
func (b *Bundle) FileCount() int { return b.fileCount }

// WatchedDirs returns a copy of the watched directory snapshot.
func (b *Bundle) WatchedDirs() map[string]time.Time {
	out := make(map[string]time.Time, len(b.watched))
	for k, v := range b.watched {
		out[k] = v
	}
	return out
}

// Template returns the canonical template path registered for a domain,
// without attempting promotion.
func (b *Bundle) Template(domain string) (string, bool) {
	p, ok := b.templates[domain]
	return p, ok
}

// Translation returns the file registered for a domain and locale code.
func (b *Bundle) Translation(domain, code string) (string, bool) {
	p, ok := b.translations[domain][code]
	return p, ok
}

// Translations returns the locale-to-path map for a domain, sorted keys via
// translationCodes. The returned map is a copy.
func (b *Bundle) Translations(domain string) map[string]string {
	out := make(map[string]string, len(b.translations[domain]))
	for k, v := range b.translations[domain] {
		out[k] = v
	}
	return out
}

// translationCodes returns the locale codes registered for a domain, sorted
// for deterministic iteration.
func (b *Bundle) translationCodes(domain string) []string {
	codes := make([]string, 0, len(b.translations[domain]))
	for code := range b.translations[domain] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// resolveDomain applies the registration domain fallback chain: explicit
// argument, then filename classification, then the bundle's default domain.
func (b *Bundle) resolveDomain(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if domain, ok := b.classifier.ResolveDomain(path); ok {
		return domain
	}
	return b.Domain()
}

// resolveLocale applies locale classification with the xx_XX placeholder
// fallback, keeping every translation entry keyed.
func (b *Bundle) resolveLocale(path string) string {
	if loc, ok := b.classifier.ResolveLocale(path); ok {
		return loc.Code
	}
	return types.PlaceholderLocale
}

// AddTranslationFiles registers discovered template and translation files.
// When domain is non-empty it overrides filename classification for every
// file in the group.
func (b *Bundle) AddTranslationFiles(group types.FileGroup, domain string) {
	for _, path := range group.Templates {
		d := b.resolveDomain(path, domain)
		if d == "" || !b.addFile(path) {
			continue
		}
		b.setTemplate(d, path)
	}
	for _, path := range group.Translations {
		d := b.resolveDomain(path, domain)
		if d == "" || !b.addFile(path) {
			continue
		}
		b.setTranslation(d, b.resolveLocale(path), path)
	}
}

// AddBinaryFiles registers compiled MO files, but only for (domain, locale)
// pairs that have no source-form entry yet: a PO always beats a binary-only
// fallback.
func (b *Bundle) AddBinaryFiles(paths []string, domain string) {
	for _, path := range paths {
		d := b.resolveDomain(path, domain)
		if d == "" {
			continue
		}
		code := b.resolveLocale(path)
		if _, exists := b.translations[d][code]; exists {
			continue
		}
		if !b.addFile(path) {
			continue
		}
		b.setTranslation(d, code, path)
	}
}

// addFile validates a file and folds it into the bundle counters. Empty and
// unreadable files are rejected and leave no trace.
func (b *Bundle) addFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return false
	}
	if mod := info.ModTime(); mod.After(b.lastModified) {
		b.lastModified = mod
	}
	b.fileCount++
	b.watchDir(filepath.Dir(path))
	b.invalidate()
	return true
}

// watchDir snapshots a directory's modification time. The first observation
// wins; later registrations in the same directory do not refresh it.
func (b *Bundle) watchDir(dir string) {
	if _, seen := b.watched[dir]; seen {
		return
	}
	var mod time.Time
	if info, err := os.Stat(dir); err == nil {
		mod = info.ModTime()
	}
	b.watched[dir] = mod
}

// setTemplate records the canonical template for a domain. The map keeps at
// most one entry per domain; a later discovery replaces an earlier one.
func (b *Bundle) setTemplate(domain, path string) {
	b.trackDomain(domain)
	b.templates[domain] = path
}

// setTranslation records a translation file, overwriting any prior entry for
// the same domain and locale.
func (b *Bundle) setTranslation(domain, code, path string) {
	b.trackDomain(domain)
	if b.translations[domain] == nil {
		b.translations[domain] = make(map[string]string)
	}
	b.translations[domain][code] = path
}

// trackDomain appends newly seen domains to the discovery-order list.
func (b *Bundle) trackDomain(domain string) {
	if _, ok := b.templates[domain]; ok {
		return
	}
	if _, ok := b.translations[domain]; ok {
		return
	}
	b.domainOrder = append(b.domainOrder, domain)
}

// ResolveTemplate returns the template path for a domain. When no template
// was discovered, a translation file registered under a placeholder locale is
// promoted in priority order: the promoted file moves out of the translation
// map and becomes the domain's template. Promotion is idempotent.
func (b *Bundle) ResolveTemplate(domain string) (string, bool) {
	if domain == "" {
		domain = b.Domain()
	}
	if path, ok := b.templates[domain]; ok {
		return path, true
	}
	for _, code := range types.TemplateLocales {
		if path, ok := b.translations[domain][code]; ok {
			b.templates[domain] = path
			delete(b.translations[domain], code)
			b.invalidate()
			return path, true
		}
	}
	return "", false
}

// invalidate clears the memoized summary after any mutation.
func (b *Bundle) invalidate() {
	b.meta = nil
}

// Uncache drops the memoized summary. The registry calls this when evicting
// a bundle from the process cache.
func (b *Bundle) Uncache() {
	b.invalidate()
}
