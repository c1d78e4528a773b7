// Package registry is the cached factory for localization bundles. Given a
// package handle and kind it returns a populated bundle, either fresh from
// the kind-specific builder or from an injected process-wide cache. Cached
// bundles are validated against their directory watches on every lookup, so
// a package whose files changed on disk is silently rebuilt.
package registry

import (
	"log/slog"
	"sort"

	"github.com/potomac-dev/potomac/internal/bundle"
	"github.com/potomac-dev/potomac/internal/interfaces"
	"github.com/potomac-dev/potomac/internal/logging"
	"github.com/potomac-dev/potomac/internal/types"
)

// Options wires the registry's collaborators.
type Options struct {
	Host       interfaces.HostRegistry
	Finder     interfaces.Finder
	Classifier interfaces.Classifier
	Parser     interfaces.Parser
	// Cache is the process-wide store bundles are memoized in. Defaults to
	// an in-memory cache.
	Cache interfaces.Cache
	// GlobalBase is the host's shared languages directory; kind-specific
	// base directories ("themes", "plugins") live beneath it.
	GlobalBase string
	Logger     *slog.Logger
}

// Registry builds and caches bundles.
type Registry struct {
	host       interfaces.HostRegistry
	finder     interfaces.Finder
	classifier interfaces.Classifier
	parser     interfaces.Parser
	cache      interfaces.Cache
	globalBase string
	log        *slog.Logger
}

// New creates a registry from options.
func New(opts Options) *Registry {
	cache := opts.Cache
	if cache == nil {
		cache = NewMemoryCache()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Registry{
		host:       opts.Host,
		finder:     opts.Finder,
		classifier: opts.Classifier,
		parser:     opts.Parser,
		cache:      cache,
		globalBase: opts.GlobalBase,
		log:        log,
	}
}

// cacheKey builds the process-cache key for a (kind, handle) pair.
func cacheKey(kind types.PackageKind, handle string) string {
	return string(kind) + handle
}

// Get returns the bundle for a package, from cache when a valid entry
// exists, rebuilding otherwise. The second return is false when the host
// registry does not know the handle. Freshly built bundles have their
// summary computed eagerly so parse problems surface at build time and the
// memoized view is warm.
func (r *Registry) Get(handle string, kind types.PackageKind) (*bundle.Bundle, bool) {
	key := cacheKey(kind, handle)

	if cached, ok := r.cache.Get(key); ok {
		if b, ok := cached.(*bundle.Bundle); ok {
			if r.Validate(b) {
				return b, true
			}
			r.log.Debug("cached package is stale, rebuilding", "kind", kind, "handle", handle)
			r.cache.Clear(key)
			b.Uncache()
		}
	}

	b, ok := r.build(handle, kind)
	if !ok {
		return nil, false
	}
	b.Summary()
	r.cache.Set(key, b)
	r.log.Debug("package cached", "kind", kind, "handle", handle, "files", b.FileCount())
	return b, true
}

// build dispatches to the kind-specific builder.
func (r *Registry) build(handle string, kind types.PackageKind) (*bundle.Bundle, bool) {
	switch kind {
	case types.KindTheme:
		return r.buildTheme(handle)
	case types.KindPlugin:
		return r.buildPlugin(handle)
	case types.KindCore:
		return r.buildCore(handle)
	}
	return nil, false
}

// Validate re-checks every directory watch recorded on a bundle. A watch
// whose directory disappeared or whose modification time changed marks the
// bundle stale. One stat per watched directory; no side effects.
func (r *Registry) Validate(b *bundle.Bundle) bool {
	for _, w := range b.Watches() {
		if !w.Fresh() {
			return false
		}
	}
	return true
}

// Uncache evicts a bundle from the process cache and drops its memoized
// summary.
func (r *Registry) Uncache(b *bundle.Bundle) {
	r.cache.Clear(cacheKey(b.Kind(), b.Handle()))
	b.Uncache()
}

// SortByRecency orders bundles by last modification, newest first. The sort
// is stable: bundles with equal timestamps keep their relative order.
func SortByRecency(bundles []*bundle.Bundle) {
	sort.SliceStable(bundles, func(i, j int) bool {
		return bundles[i].LastModified().After(bundles[j].LastModified())
	})
}
