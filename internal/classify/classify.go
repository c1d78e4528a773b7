// Package classify resolves text domains and locales from gettext filename
// conventions. Hosts name translation files "{domain}-{locale}.po" (or bare
// "{locale}.po" inside a package's own languages folder) and templates
// "{domain}.pot"; this package takes those names apart again.
package classify

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/potomac-dev/potomac/internal/types"
)

// localePattern matches the shape of a gettext locale code: a 2-3 letter
// language subtag with an optional 2-letter region. The shape check is
// deliberate: unknown-but-well-formed codes such as the xx_XX placeholder
// must still classify as locales.
var localePattern = regexp.MustCompile(`^([A-Za-z]{2,3})(?:[_-]([A-Za-z]{2}))?$`)

// LocaleResolver resolves bare locale codes into normalized Locale values.
type LocaleResolver struct{}

// NewLocaleResolver creates a locale resolver.
func NewLocaleResolver() *LocaleResolver {
	return &LocaleResolver{}
}

// Resolve parses a locale code into its normalized ll_RR form. Known tags are
// canonicalized through x/text; codes that are well-formed but unknown (like
// the xx_XX placeholder) pass through with case normalization only.
func (r *LocaleResolver) Resolve(code string) (types.Locale, bool) {
	m := localePattern.FindStringSubmatch(code)
	if m == nil {
		return types.Locale{}, false
	}

	lang := strings.ToLower(m[1])
	region := strings.ToUpper(m[2])

	bcp := lang
	if region != "" {
		bcp += "-" + region
	}
	tag, err := language.Parse(bcp)
	if err == nil {
		if base, conf := tag.Base(); conf >= language.High {
			lang = base.String()
		}
		if reg, conf := tag.Region(); region != "" && conf >= language.High {
			region = reg.String()
		}
	} else if region == "" {
		// A bare 2-3 letter token that x/text does not recognize is more
		// likely a short domain name ("seo", "ads") than a locale. Tokens
		// with a region part keep the benefit of the doubt so placeholder
		// codes like xx_XX still classify as locales.
		return types.Locale{}, false
	}

	normalized := lang
	if region != "" {
		normalized += "_" + region
	}
	return types.Locale{Code: normalized, Lang: lang, Region: region}, true
}

// Classifier resolves domains and locales from file paths.
type Classifier struct {
	locales *LocaleResolver
}

// New creates a classifier backed by the given locale resolver. A nil
// resolver gets the default one.
func New(locales *LocaleResolver) *Classifier {
	if locales == nil {
		locales = NewLocaleResolver()
	}
	return &Classifier{locales: locales}
}

// stem strips the directory and the gettext extension from a path.
func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ResolveDomain extracts the text domain from a file name.
//
// "example-fr_FR.po" resolves to "example", "example.pot" to "example". A
// name that is nothing but a locale ("fr_FR.po") carries no domain.
func (c *Classifier) ResolveDomain(path string) (string, bool) {
	s := stem(path)
	if s == "" {
		return "", false
	}
	if _, ok := c.locales.Resolve(s); ok {
		// The whole name is a locale; the domain is implied by location.
		return "", false
	}
	if i := strings.LastIndex(s, "-"); i > 0 {
		if _, ok := c.locales.Resolve(s[i+1:]); ok {
			return s[:i], true
		}
	}
	return s, true
}

// ResolveLocale extracts the locale from a file name.
//
// Both "example-fr_FR.po" and "fr_FR.po" resolve to fr_FR. Template files
// and files without a recognizable locale suffix resolve to nothing.
func (c *Classifier) ResolveLocale(path string) (types.Locale, bool) {
	s := stem(path)
	if s == "" {
		return types.Locale{}, false
	}
	if loc, ok := c.locales.Resolve(s); ok {
		return loc, true
	}
	if i := strings.LastIndex(s, "-"); i > 0 {
		if loc, ok := c.locales.Resolve(s[i+1:]); ok {
			return loc, true
		}
	}
	return types.Locale{}, false
}
