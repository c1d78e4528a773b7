// Package hostfs is a filesystem-backed host package registry. It treats a
// content directory layout of themes/<handle>/ and plugins/<handle-path> as
// the installed-package catalog, reading declared metadata from an optional
// theme.yml or plugin.yml manifest inside each package.
//
// Hosts with a richer package catalog implement interfaces.HostRegistry
// themselves; this implementation exists so the CLI works against a plain
// directory tree.
package hostfs

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/potomac-dev/potomac/internal/types"
)

// Registry resolves package handles against theme and plugin install roots.
type Registry struct {
	themesRoot  string
	pluginsRoot string
}

// New creates a registry over the given install roots.
func New(themesRoot, pluginsRoot string) *Registry {
	return &Registry{themesRoot: themesRoot, pluginsRoot: pluginsRoot}
}

type themeManifest struct {
	Name       string `yaml:"name"`
	TextDomain string `yaml:"text_domain"`
	Template   string `yaml:"template"`
}

type pluginManifest struct {
	Name       string `yaml:"name"`
	TextDomain string `yaml:"text_domain"`
}

// LookupTheme resolves a theme handle (directory name under the themes
// root). A missing directory means the theme is not installed.
func (r *Registry) LookupTheme(handle string) (types.ThemeMeta, bool) {
	if handle == "" || handle != filepath.Base(handle) {
		return types.ThemeMeta{}, false
	}
	root := filepath.Join(r.themesRoot, handle)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return types.ThemeMeta{}, false
	}

	meta := types.ThemeMeta{Name: handle, InstallRoot: root}
	var manifest themeManifest
	if readManifest(filepath.Join(root, "theme.yml"), &manifest) {
		if manifest.Name != "" {
			meta.Name = manifest.Name
		}
		meta.TextDomain = manifest.TextDomain
		meta.TemplateParent = manifest.Template
	}
	return meta, true
}

// LookupPlugin resolves a plugin handle, a file path relative to the plugins
// root such as "my-plugin/my-plugin.php". The handle file must exist.
func (r *Registry) LookupPlugin(handle string) (types.PluginMeta, bool) {
	if handle == "" || filepath.IsAbs(handle) {
		return types.PluginMeta{}, false
	}
	clean := filepath.Clean(handle)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return types.PluginMeta{}, false
	}

	file := filepath.Join(r.pluginsRoot, clean)
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return types.PluginMeta{}, false
	}

	root := filepath.Dir(file)
	meta := types.PluginMeta{Name: pluginName(clean), InstallRoot: root}
	var manifest pluginManifest
	if readManifest(filepath.Join(root, "plugin.yml"), &manifest) {
		if manifest.Name != "" {
			meta.Name = manifest.Name
		}
		meta.TextDomain = manifest.TextDomain
	}
	return meta, true
}

// pluginName derives a fallback display name from the handle.
func pluginName(handle string) string {
	dir := filepath.Dir(handle)
	if dir != "." {
		return dir
	}
	base := filepath.Base(handle)
	return base[:len(base)-len(filepath.Ext(base))]
}

// readManifest loads a YAML manifest when present. Unreadable or malformed
// manifests are ignored: declared metadata is best-effort.
func readManifest(path string, out interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return yaml.Unmarshal(data, out) == nil
}
