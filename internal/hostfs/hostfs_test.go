package hostfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLookupTheme(t *testing.T) {
	themes := t.TempDir()
	root := filepath.Join(themes, "mytheme")
	writeFile(t, root, "theme.yml", "name: My Theme\ntext_domain: mytheme\ntemplate: parent\n")

	reg := New(themes, t.TempDir())

	meta, ok := reg.LookupTheme("mytheme")
	require.True(t, ok)
	assert.Equal(t, "My Theme", meta.Name)
	assert.Equal(t, "mytheme", meta.TextDomain)
	assert.Equal(t, "parent", meta.TemplateParent)
	assert.Equal(t, root, meta.InstallRoot)
}

func TestLookupTheme_NoManifest(t *testing.T) {
	themes := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(themes, "bare"), 0o755))

	reg := New(themes, t.TempDir())

	meta, ok := reg.LookupTheme("bare")
	require.True(t, ok)
	assert.Equal(t, "bare", meta.Name, "handle is the fallback name")
	assert.Empty(t, meta.TextDomain)
}

func TestLookupTheme_Missing(t *testing.T) {
	reg := New(t.TempDir(), t.TempDir())
	_, ok := reg.LookupTheme("ghost")
	assert.False(t, ok)
}

func TestLookupTheme_RejectsPathHandles(t *testing.T) {
	themes := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(themes, "real"), 0o755))

	reg := New(themes, t.TempDir())
	for _, handle := range []string{"", "a/b", "../real", "./real"} {
		_, ok := reg.LookupTheme(handle)
		assert.False(t, ok, "handle %q must be rejected", handle)
	}
}

func TestLookupPlugin(t *testing.T) {
	plugins := t.TempDir()
	writeFile(t, plugins, "demo/demo.php", "<?php\n")
	writeFile(t, plugins, "demo/plugin.yml", "name: Demo Plugin\ntext_domain: demo\n")

	reg := New(t.TempDir(), plugins)

	meta, ok := reg.LookupPlugin("demo/demo.php")
	require.True(t, ok)
	assert.Equal(t, "Demo Plugin", meta.Name)
	assert.Equal(t, "demo", meta.TextDomain)
	assert.Equal(t, filepath.Join(plugins, "demo"), meta.InstallRoot)
}

func TestLookupPlugin_SingleFile(t *testing.T) {
	plugins := t.TempDir()
	writeFile(t, plugins, "hello.php", "<?php\n")

	reg := New(t.TempDir(), plugins)

	meta, ok := reg.LookupPlugin("hello.php")
	require.True(t, ok)
	assert.Equal(t, "hello", meta.Name)
	assert.Equal(t, plugins, meta.InstallRoot)
}

func TestLookupPlugin_Missing(t *testing.T) {
	reg := New(t.TempDir(), t.TempDir())
	_, ok := reg.LookupPlugin("ghost/ghost.php")
	assert.False(t, ok)
}

func TestLookupPlugin_RejectsEscapingHandles(t *testing.T) {
	plugins := t.TempDir()
	outside := writeFile(t, filepath.Dir(plugins), "evil.php", "<?php\n")
	_ = outside

	reg := New(t.TempDir(), plugins)
	for _, handle := range []string{"", "/abs/path.php", "../evil.php", ".."} {
		_, ok := reg.LookupPlugin(handle)
		assert.False(t, ok, "handle %q must be rejected", handle)
	}
}

func TestLookupPlugin_MalformedManifestIgnored(t *testing.T) {
	plugins := t.TempDir()
	writeFile(t, plugins, "demo/demo.php", "<?php\n")
	writeFile(t, plugins, "demo/plugin.yml", "\t: not yaml {{{")

	reg := New(t.TempDir(), plugins)

	meta, ok := reg.LookupPlugin("demo/demo.php")
	require.True(t, ok)
	assert.Equal(t, "demo", meta.Name, "fallback name when the manifest is unreadable")
}
