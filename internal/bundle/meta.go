package bundle

import (
	"path/filepath"
	"strings"

	"github.com/potomac-dev/potomac/internal/interfaces"
)

// TemplateRef is one resolved template in a summary.
type TemplateRef struct {
	Domain string `json:"domain" yaml:"domain"`
	Path   string `json:"path" yaml:"path"`
}

// TranslationRef is one translation file in a summary, with the statistics
// extracted by the parser.
type TranslationRef struct {
	Path       string               `json:"path" yaml:"path"`
	Domain     string               `json:"domain" yaml:"domain"`
	Name       string               `json:"name" yaml:"name"`
	Locale     string               `json:"locale" yaml:"locale"`
	Stats      interfaces.FileStats `json:"stats" yaml:"stats"`
	EntryCount int                  `json:"entry_count" yaml:"entry_count"`
}

// Meta is the summary snapshot of a bundle: every resolved template, every
// parseable translation file, and the package's top-level identity.
type Meta struct {
	Name         string           `json:"name" yaml:"name"`
	Root         string           `json:"root" yaml:"root"`
	Domain       string           `json:"domain" yaml:"domain"`
	Parent       string           `json:"parent,omitempty" yaml:"parent,omitempty"`
	Templates    []TemplateRef    `json:"pot" yaml:"pot"`
	Translations []TranslationRef `json:"po" yaml:"po"`
}

// Summary builds the metadata snapshot for the bundle, memoized until the
// next mutation. Template resolution runs for every discovered domain, so
// building a summary can promote placeholder-locale translations to template
// status. Files the parser rejects are skipped, never fatal.
//
// A child theme sharing its parent's domain folds the parent's templates and
// translations into its own summary, child entries first, and records the
// parent's display name.
func (b *Bundle) Summary() *Meta {
	if b.meta != nil {
		return b.meta
	}

	meta := &Meta{
		Name:   b.Name(),
		Root:   b.root,
		Domain: b.Domain(),
	}

	for _, d := range b.Domains() {
		if path, ok := b.ResolveTemplate(d); ok {
			meta.Templates = append(meta.Templates, TemplateRef{Domain: d, Path: path})
		}
	}

	for _, d := range b.Domains() {
		for _, code := range b.translationCodes(d) {
			path := b.translations[d][code]
			stats, _, err := b.parser.ParseWithHeaders(path)
			if err != nil {
				continue
			}
			name := filepath.Base(path)
			name = strings.TrimSuffix(name, filepath.Ext(name))
			meta.Translations = append(meta.Translations, TranslationRef{
				Path:       path,
				Domain:     d,
				Name:       name,
				Locale:     code,
				Stats:      stats,
				EntryCount: stats.Total,
			})
		}
	}

	if b.parent != nil && b.Domain() == b.parent.Domain() {
		parentMeta := b.parent.Summary()
		meta.Templates = append(meta.Templates, parentMeta.Templates...)
		meta.Translations = append(meta.Translations, parentMeta.Translations...)
		meta.Parent = b.parent.Name()
	}

	b.meta = meta
	return meta
}
