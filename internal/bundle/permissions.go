package bundle

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/potomac-dev/potomac/internal/errors"
)

// binaryPath maps a PO path to its compiled MO sibling.
func binaryPath(po string) string {
	return strings.TrimSuffix(po, filepath.Ext(po)) + ".mo"
}

// CheckPermissions verifies the package's localization files can be managed
// in place. It fails when a template or translation file is not writable,
// when a translation file has no compiled binary next to it, when the
// resolved language directory is not writable, or when any directory holding
// a registered file is not writable. All problems found are reported
// together.
func (b *Bundle) CheckPermissions() error {
	perr := &errors.PermissionError{}

	for _, d := range b.domainOrder {
		if path, ok := b.templates[d]; ok {
			if !writable(path) {
				perr.Add(path, errors.ReasonFileNotWritable)
			}
		}
		for _, code := range b.translationCodes(d) {
			path := b.translations[d][code]
			if !writable(path) {
				perr.Add(path, errors.ReasonFileNotWritable)
			}
			if mo := binaryPath(path); mo != path && !fileExists(mo) {
				perr.Add(mo, errors.ReasonMissingBinary)
			}
		}
	}

	if dir := b.LanguageDirectory(""); dir != "" && !writable(dir) {
		perr.Add(dir, errors.ReasonFolderNotWritable)
	}

	dirs := make([]string, 0, len(b.watched))
	for dir := range b.watched {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		if !writable(dir) {
			perr.Add(dir, errors.ReasonFolderNotWritable)
		}
	}

	if perr.Empty() {
		return nil
	}
	return perr
}

// PermissionReport returns the permission status of every path of interest,
// sorted by path. Paths without a problem carry an empty reason. The report
// always includes the resolved language directory and the global base
// directory; a bundle with no files at all also reports its package root and
// the root's "languages" child, since those are where files would have to be
// created.
func (b *Bundle) PermissionReport() []errors.Problem {
	status := make(map[string]string)
	note := func(path, reason string) {
		if path == "" {
			return
		}
		if existing, ok := status[path]; !ok || (existing == "" && reason != "") {
			status[path] = reason
		}
	}
	noteWritable := func(path, reason string) {
		if path == "" {
			return
		}
		if writable(path) {
			note(path, "")
		} else {
			note(path, reason)
		}
	}

	for _, d := range b.domainOrder {
		if path, ok := b.templates[d]; ok {
			noteWritable(path, errors.ReasonFileNotWritable)
			noteWritable(filepath.Dir(path), errors.ReasonFolderNotWritable)
		}
		for _, code := range b.translationCodes(d) {
			path := b.translations[d][code]
			noteWritable(path, errors.ReasonFileNotWritable)
			noteWritable(filepath.Dir(path), errors.ReasonFolderNotWritable)
			if mo := binaryPath(path); mo != path && !fileExists(mo) {
				note(mo, errors.ReasonMissingBinary)
			}
		}
	}

	noteWritable(b.LanguageDirectory(""), errors.ReasonFolderNotWritable)
	noteWritable(b.baseDir, errors.ReasonFolderNotWritable)

	if b.fileCount == 0 && b.root != "" {
		noteWritable(b.root, errors.ReasonFolderNotWritable)
		noteWritable(filepath.Join(b.root, "languages"), errors.ReasonFolderNotWritable)
	}

	report := make([]errors.Problem, 0, len(status))
	for path, reason := range status {
		report = append(report, errors.Problem{Path: path, Reason: reason})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Path < report[j].Path })
	return report
}
