package bundle

import (
	"path/filepath"
	"strings"

	"github.com/potomac-dev/potomac/internal/types"
)

// LanguageDirectory resolves the directory new translation files for a
// domain should go to. Candidates are tried in priority order and the first
// writable one wins: directories already holding the domain's template, then
// its translations, then each source directory's "languages" child or the
// source directory itself, then the kind's global base directory. When
// nothing is writable the highest-priority candidate seen is returned anyway,
// preferring existing file locations over synthesizing new ones.
func (b *Bundle) LanguageDirectory(domain string) string {
	var remembered []string

	for _, d := range b.domainOrder {
		if domain != "" && d != domain {
			continue
		}
		if path, ok := b.templates[d]; ok {
			dir := filepath.Dir(path)
			if writable(dir) {
				return dir
			}
			remembered = append(remembered, dir)
		}
	}

	for _, d := range b.domainOrder {
		if domain != "" && d != domain {
			continue
		}
		for _, code := range b.translationCodes(d) {
			dir := filepath.Dir(b.translations[d][code])
			if writable(dir) {
				return dir
			}
			remembered = append(remembered, dir)
		}
	}

	for _, src := range b.sourceDirs {
		lang := filepath.Join(src, "languages")
		if writable(lang) {
			return lang
		}
		if writable(src) {
			return src
		}
		if isDir(lang) {
			remembered = append(remembered, lang)
		} else {
			remembered = append(remembered, src)
		}
	}

	if b.baseDir != "" {
		if writable(b.baseDir) {
			return b.baseDir
		}
		remembered = append(remembered, b.baseDir)
	}

	if len(remembered) > 0 {
		return remembered[0]
	}
	return b.baseDir
}

// BuildTranslationPath computes the path a new translation file for the
// given locale should be created at. Plugins and files placed under the
// global base directory carry a "{domain}-" filename prefix; files inside a
// package's own languages folder do not. When translation files already
// exist for the domain, the naming convention of the first one whose
// directory is writable is copied, and that directory is preferred over the
// computed one.
func (b *Bundle) BuildTranslationPath(loc types.Locale, domain string) string {
	if domain == "" {
		domain = b.Domain()
	}

	dir := b.LanguageDirectory(domain)
	prefix := ""
	if b.kind == types.KindPlugin || underDir(dir, b.baseDir) {
		prefix = domain + "-"
	}

	for _, code := range b.translationCodes(domain) {
		existing := b.translations[domain][code]
		existingDir := filepath.Dir(existing)
		if !writable(existingDir) {
			continue
		}
		dir = existingDir
		if strings.HasPrefix(filepath.Base(existing), domain+"-") {
			prefix = domain + "-"
		} else {
			prefix = ""
		}
		break
	}

	return filepath.Join(dir, prefix+loc.Code+".po")
}

// underDir reports whether dir equals base or lies beneath it.
func underDir(dir, base string) bool {
	if base == "" || dir == "" {
		return false
	}
	if dir == base {
		return true
	}
	return strings.HasPrefix(dir, base+string(filepath.Separator))
}
