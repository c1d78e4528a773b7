// Package internal contains the core implementation packages for potomac.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the potomac CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - types: Package kinds, host metadata, locales, and file groups
//   - interfaces: Contracts between discovery, classification, and caching
//   - classify: Text domain and locale extraction from file names
//   - finder: Glob-based discovery of POT, PO, and MO files
//   - gettext: PO file parsing for headers and translation statistics
//   - bundle: Per-package file sets, template resolution, and summaries
//   - registry: Cached bundle construction with staleness validation
//   - hostfs: Filesystem-backed theme and plugin lookup
//   - watcher: File system monitoring with debouncing
//   - config: Configuration loading and validation
//   - logging: Structured logger construction
//   - errors: Typed errors and permission problem reports
//
// # Inter-Package Communication
//
// Packages communicate through the interfaces package:
//
//   - Registry builds bundles using host, finder, classifier, and parser
//   - Bundle classifies discovered files and tracks watched directories
//   - Watcher monitors a bundle's directories and reports changes
//   - Gettext supplies translation statistics to bundle summaries
//
// For detailed documentation, see the individual package documentation.
package internal
