// Package types provides common type definitions shared across the potomac
// packages. Keeping them here avoids circular dependencies between the
// discovery, registry, and classification packages.
package types

// PackageKind identifies how a localizable package is installed and where its
// assets are searched for.
type PackageKind string

const (
	// KindTheme packages are identified by directory name and may inherit
	// translations from a parent template theme.
	KindTheme PackageKind = "theme"
	// KindPlugin packages are identified by a relative file path inside the
	// plugin install root.
	KindPlugin PackageKind = "plugin"
	// KindCore is the host system itself. Discovery for core is not
	// implemented; lookups always come back empty.
	KindCore PackageKind = "core"
)

// Valid reports whether k is one of the known package kinds.
func (k PackageKind) Valid() bool {
	switch k {
	case KindTheme, KindPlugin, KindCore:
		return true
	}
	return false
}

// String returns the kind tag as used in cache keys and CLI arguments.
func (k PackageKind) String() string { return string(k) }

// ThemeMeta is the host registry's view of an installed theme.
type ThemeMeta struct {
	// Name is the human-readable display name declared by the theme.
	Name string
	// TextDomain is the text domain the theme declares, may be empty.
	TextDomain string
	// InstallRoot is the absolute path of the theme's install directory.
	InstallRoot string
	// TemplateParent is the handle of the parent template theme, empty for
	// standalone themes.
	TemplateParent string
}

// PluginMeta is the host registry's view of an installed plugin.
type PluginMeta struct {
	// Name is the human-readable display name declared by the plugin.
	Name string
	// TextDomain is the text domain the plugin declares, may be empty.
	TextDomain string
	// InstallRoot is the absolute path of the plugin's install directory.
	InstallRoot string
}

// FileGroup is the result of a grouped pattern search: template (POT)
// candidates and translation (PO) candidates, kept separate because they are
// registered differently.
type FileGroup struct {
	Templates    []string
	Translations []string
}

// Empty reports whether the group holds no files at all.
func (g FileGroup) Empty() bool {
	return len(g.Templates) == 0 && len(g.Translations) == 0
}

// Locale is a resolved locale code. Code is always populated; the zero value
// is not a valid locale.
type Locale struct {
	// Code is the normalized ll_RR identifier, e.g. "fr_FR".
	Code string
	// Lang is the bare language subtag, e.g. "fr".
	Lang string
	// Region is the region subtag when present, e.g. "FR".
	Region string
}

// PlaceholderLocale is the sentinel code recorded for translation files whose
// locale could not be determined from the filename. Using a literal code
// keeps the translations map total: every entry has a locale key.
const PlaceholderLocale = "xx_XX"

// TemplateLocales are the locale codes, in priority order, under which a
// translation file may stand in for a missing POT template.
var TemplateLocales = []string{"", PlaceholderLocale, "en_US", "en_GB"}
