package registry

import (
	"path/filepath"
	"strings"

	"github.com/potomac-dev/potomac/internal/bundle"
	"github.com/potomac-dev/potomac/internal/types"
)

// buildTheme populates a bundle for a theme handle. Themes that declare a
// parent template theme link the parent's bundle and may inherit its domain:
// a child with its own declared domain keeps it, a child with its own files
// keeps its default, and a bare child takes the parent's domain.
func (r *Registry) buildTheme(handle string) (*bundle.Bundle, bool) {
	meta, ok := r.host.LookupTheme(handle)
	if !ok {
		return nil, false
	}

	b := bundle.New(handle, types.KindTheme, r.classifier, r.parser)
	b.SetName(meta.Name)
	if meta.TextDomain != "" {
		b.SetDomain(meta.TextDomain)
	}
	b.SetBaseDir(filepath.Join(r.globalBase, "themes"))
	b.SetRoot(meta.InstallRoot)
	b.AddSourceDir(meta.InstallRoot)

	r.discover(b)

	// Direct self-reference guard only; longer parent chains are taken at
	// face value.
	if meta.TemplateParent != "" && meta.TemplateParent != handle {
		if parent, ok := r.Get(meta.TemplateParent, types.KindTheme); ok {
			b.SetParent(parent)
			switch {
			case meta.TextDomain != "" && meta.TextDomain != parent.Domain():
				// Child declares its own distinct domain.
			case b.FileCount() > 0:
				// Child ships its own files; its domain stands.
			default:
				b.SetDomain(parent.Domain())
			}
		}
	}

	return b, true
}

// buildPlugin populates a bundle for a plugin handle, a file path relative
// to the plugin install root. Plugins without a declared text domain default
// to the dasherized name of their directory.
func (r *Registry) buildPlugin(handle string) (*bundle.Bundle, bool) {
	meta, ok := r.host.LookupPlugin(handle)
	if !ok {
		return nil, false
	}

	b := bundle.New(handle, types.KindPlugin, r.classifier, r.parser)
	b.SetName(meta.Name)
	domain := meta.TextDomain
	if domain == "" {
		domain = defaultPluginDomain(handle)
	}
	if domain != "" {
		b.SetDomain(domain)
	}
	b.SetBaseDir(filepath.Join(r.globalBase, "plugins"))
	b.SetRoot(meta.InstallRoot)
	b.AddSourceDir(meta.InstallRoot)

	r.discover(b)
	return b, true
}

// buildCore would populate a bundle for the host system itself. Core
// discovery is not implemented; lookups always come back empty.
func (r *Registry) buildCore(string) (*bundle.Bundle, bool) {
	return nil, false
}

// discover runs the two-stage file search shared by themes and plugins:
// everything under the package's own root, then domain-matched files in the
// kind's global base directory, with unmatched binaries promoted last.
func (r *Registry) discover(b *bundle.Bundle) {
	root := b.Root()

	if group, err := r.finder.FindTranslationFiles(root); err == nil {
		b.AddTranslationFiles(group, "")
	} else {
		r.log.Debug("translation search failed", "dir", root, "error", err)
	}
	if mo, err := r.finder.FindBinaryFiles(root); err == nil {
		b.AddBinaryFiles(mo, "")
	} else {
		r.log.Debug("binary search failed", "dir", root, "error", err)
	}

	// The global directory is shared between packages, so only files
	// matching the bundle's domain are claimed: {domain}-*.po, {domain}.pot.
	base := b.BaseDir()
	domain := b.Domain()
	if base == "" || domain == "" {
		return
	}
	pattern := filepath.Join(base, domain+"{-*.po,.pot}")
	if group, err := r.finder.FindGrouped(pattern); err == nil {
		b.AddTranslationFiles(group, domain)
	} else {
		r.log.Debug("global translation search failed", "pattern", pattern, "error", err)
	}
	if mo, err := r.finder.FindBinaryFiles(base); err == nil {
		b.AddBinaryFiles(filterDomainFiles(mo, domain), domain)
	} else {
		r.log.Debug("global binary search failed", "dir", base, "error", err)
	}
}

// filterDomainFiles keeps paths whose filename belongs to the domain, either
// "{domain}.<ext>" or "{domain}-<locale>.<ext>".
func filterDomainFiles(paths []string, domain string) []string {
	var out []string
	for _, p := range paths {
		name := filepath.Base(p)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stem == domain || strings.HasPrefix(name, domain+"-") {
			out = append(out, p)
		}
	}
	return out
}

// defaultPluginDomain derives a text domain from a plugin handle: the
// dasherized name of the plugin's directory, or of the file itself for
// single-file plugins.
func defaultPluginDomain(handle string) string {
	name := filepath.Dir(handle)
	if name == "." || name == "/" || name == "" {
		base := filepath.Base(handle)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, " ", "-")
	return name
}
