package bundle

import (
	"os"

	"golang.org/x/sys/unix"
)

// writable is a hook so permission-dependent behavior can be exercised in
// tests without chmod games that break under root.
var writable = defaultWritable

// defaultWritable reports whether the process may write to path. A path that
// does not exist is not writable.
func defaultWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
