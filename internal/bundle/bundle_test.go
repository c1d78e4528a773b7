package bundle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potomac-dev/potomac/internal/classify"
	"github.com/potomac-dev/potomac/internal/gettext"
	"github.com/potomac-dev/potomac/internal/types"
)

const minimalPO = `msgid ""
msgstr "Language: fr_FR\n"

msgid "Hello"
msgstr "Bonjour"
`

func newTestBundle(handle string, kind types.PackageKind) *Bundle {
	return New(handle, kind, classify.New(nil), gettext.New())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// stubWritable replaces the writability check for the duration of a test.
func stubWritable(t *testing.T, fn func(string) bool) {
	t.Helper()
	orig := writable
	writable = fn
	t.Cleanup(func() { writable = orig })
}

func TestAddTranslationFiles(t *testing.T) {
	dir := t.TempDir()
	pot := writeFile(t, dir, "example.pot", "msgid \"\"\nmsgstr \"\"\n")
	po := writeFile(t, dir, "example-fr_FR.po", minimalPO)

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{
		Templates:    []string{pot},
		Translations: []string{po},
	}, "")

	got, ok := b.Template("example")
	require.True(t, ok)
	assert.Equal(t, pot, got)

	got, ok = b.Translation("example", "fr_FR")
	require.True(t, ok)
	assert.Equal(t, po, got)

	assert.Equal(t, 2, b.FileCount())
	assert.Equal(t, []string{"example"}, b.Domains())

	watched := b.WatchedDirs()
	assert.Len(t, watched, 1)
	assert.Contains(t, watched, dir)
}

func TestAddTranslationFiles_EmptyFileIgnored(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "example.pot", "")

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Templates: []string{empty}}, "")

	assert.Equal(t, 0, b.FileCount())
	assert.True(t, b.LastModified().IsZero())
	_, ok := b.Template("example")
	assert.False(t, ok)
	assert.Empty(t, b.WatchedDirs())
}

func TestAddTranslationFiles_ExplicitDomainWins(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "example-fr_FR.po", minimalPO)

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "forced")

	_, ok := b.Translation("example", "fr_FR")
	assert.False(t, ok)
	got, ok := b.Translation("forced", "fr_FR")
	require.True(t, ok)
	assert.Equal(t, po, got)
}

func TestAddTranslationFiles_PlaceholderLocale(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "example.po", minimalPO)

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "")

	got, ok := b.Translation("example", types.PlaceholderLocale)
	require.True(t, ok)
	assert.Equal(t, po, got)
}

func TestLastModified_TakesNewestFile(t *testing.T) {
	dir := t.TempDir()
	pot := writeFile(t, dir, "example.pot", "msgid \"\"\nmsgstr \"\"\n")
	po := writeFile(t, dir, "example-fr_FR.po", minimalPO)

	t1 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	require.NoError(t, os.Chtimes(pot, t1, t1))
	require.NoError(t, os.Chtimes(po, t2, t2))

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{
		Templates:    []string{pot},
		Translations: []string{po},
	}, "")

	assert.True(t, b.LastModified().Equal(t2))

	meta := b.Summary()
	require.Len(t, meta.Templates, 1)
	assert.Equal(t, TemplateRef{Domain: "example", Path: pot}, meta.Templates[0])
}

func TestTemplates_AtMostOnePerDomain(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a/example.pot", "msgid \"\"\nmsgstr \"\"\n")
	second := writeFile(t, dir, "b/example.pot", "msgid \"\"\nmsgstr \"\"\n")

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Templates: []string{first, second}}, "")

	got, ok := b.Template("example")
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Equal(t, []string{"example"}, b.Domains())
}

func TestAddBinaryFiles_PrefersSourceForm(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "x-de_DE.po", minimalPO)
	mo := writeFile(t, dir, "x-de_DE.mo", "binary")
	ja := writeFile(t, dir, "x-ja.mo", "binary")

	b := newTestBundle("x", types.KindPlugin)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "")
	count := b.FileCount()

	b.AddBinaryFiles([]string{mo, ja}, "")

	got, ok := b.Translation("x", "de_DE")
	require.True(t, ok)
	assert.Equal(t, po, got, "existing PO entry must not be replaced by a binary")

	got, ok = b.Translation("x", "ja")
	require.True(t, ok)
	assert.Equal(t, ja, got)

	assert.Equal(t, count+1, b.FileCount(), "the skipped binary must not count")
}

func TestResolveTemplate_PromotesPlaceholderLocales(t *testing.T) {
	dir := t.TempDir()
	enUS := writeFile(t, dir, "foo-en_US.po", minimalPO)
	enGB := writeFile(t, dir, "foo-en_GB.po", minimalPO)

	b := newTestBundle("foo", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{enGB, enUS}}, "")

	path, ok := b.ResolveTemplate("foo")
	require.True(t, ok)
	assert.Equal(t, enUS, path, "en_US outranks en_GB as template stand-in")

	_, ok = b.Translation("foo", "en_US")
	assert.False(t, ok, "promoted file must leave the translation map")
	_, ok = b.Translation("foo", "en_GB")
	assert.True(t, ok)

	again, ok := b.ResolveTemplate("foo")
	require.True(t, ok)
	assert.Equal(t, path, again, "promotion is idempotent")
}

func TestResolveTemplate_PlaceholderOutranksEnglish(t *testing.T) {
	dir := t.TempDir()
	enUS := writeFile(t, dir, "foo-en_US.po", minimalPO)
	unknown := writeFile(t, dir, "foo.po", minimalPO)

	b := newTestBundle("foo", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{enUS, unknown}}, "")

	path, ok := b.ResolveTemplate("foo")
	require.True(t, ok)
	assert.Equal(t, unknown, path)
}

func TestResolveTemplate_NoCandidates(t *testing.T) {
	b := newTestBundle("foo", types.KindTheme)
	_, ok := b.ResolveTemplate("foo")
	assert.False(t, ok)
}

func TestDomain_DefaultsToHandle(t *testing.T) {
	b := newTestBundle("my-theme", types.KindTheme)
	assert.Equal(t, "my-theme", b.Domain())
}

func TestDomain_CorrectedToFirstDiscovered(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "actual-fr_FR.po", minimalPO)

	b := newTestBundle("my-theme", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "")

	assert.Equal(t, "actual", b.Domain())
}

func TestDomain_DeclaredWithFilesStands(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "declared-fr_FR.po", minimalPO)

	b := newTestBundle("my-theme", types.KindTheme)
	b.SetDomain("declared")
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "")

	assert.Equal(t, "declared", b.Domain())
}

func TestName_FallsBackToDomain(t *testing.T) {
	b := newTestBundle("my-theme", types.KindTheme)
	assert.Equal(t, "my-theme", b.Name())

	b.SetName("My Theme")
	assert.Equal(t, "My Theme", b.Name())
}

func TestWatchedDirs_FirstObservationWins(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "example-fr_FR.po", minimalPO)

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "")
	before := b.WatchedDirs()[dir]

	// Change the directory mtime, then register another file in it.
	later := before.Add(time.Hour)
	require.NoError(t, os.Chtimes(dir, later, later))
	de := writeFile(t, dir, "example-de_DE.po", minimalPO)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{de}}, "")

	assert.True(t, b.WatchedDirs()[dir].Equal(before), "first observed mtime must be kept")
}

func TestSummary_Memoized(t *testing.T) {
	dir := t.TempDir()
	po := writeFile(t, dir, "example-fr_FR.po", minimalPO)

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{po}}, "")

	first := b.Summary()
	assert.Same(t, first, b.Summary())

	de := writeFile(t, dir, "example-de_DE.po", minimalPO)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{de}}, "")
	assert.NotSame(t, first, b.Summary(), "mutation must invalidate the memoized summary")

	b.Uncache()
	assert.NotSame(t, first, b.Summary())
}

func TestSummary_SkipsUnparseableFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "example-fr_FR.po", minimalPO)
	writeFile(t, dir, "example-de_DE.po", "definitely not a po file")

	b := newTestBundle("example", types.KindTheme)
	b.AddTranslationFiles(types.FileGroup{Translations: []string{
		good,
		filepath.Join(dir, "example-de_DE.po"),
	}}, "")

	assert.Equal(t, 2, b.FileCount())

	meta := b.Summary()
	require.Len(t, meta.Translations, 1)
	assert.Equal(t, good, meta.Translations[0].Path)
	assert.Equal(t, "fr_FR", meta.Translations[0].Locale)
	assert.Equal(t, 1, meta.Translations[0].EntryCount)
	assert.Equal(t, 1, meta.Translations[0].Stats.Translated)
}

func TestSummary_MergesParentWithSharedDomain(t *testing.T) {
	parentDir := t.TempDir()
	parentPO := writeFile(t, parentDir, "shared-fr_FR.po", minimalPO)
	parent := newTestBundle("parent-theme", types.KindTheme)
	parent.SetName("Parent Theme")
	parent.SetDomain("shared")
	parent.AddTranslationFiles(types.FileGroup{Translations: []string{parentPO}}, "")

	childDir := t.TempDir()
	childPO := writeFile(t, childDir, "shared-de_DE.po", minimalPO)
	child := newTestBundle("child-theme", types.KindTheme)
	child.SetDomain("shared")
	child.AddTranslationFiles(types.FileGroup{Translations: []string{childPO}}, "")
	child.SetParent(parent)

	meta := child.Summary()
	assert.Equal(t, "Parent Theme", meta.Parent)
	require.Len(t, meta.Translations, 2)
	assert.Equal(t, childPO, meta.Translations[0].Path, "child entries come first")
	assert.Equal(t, parentPO, meta.Translations[1].Path)
}

func TestSummary_DistinctDomainDoesNotMerge(t *testing.T) {
	parent := newTestBundle("parent-theme", types.KindTheme)
	parent.SetDomain("parent")

	childDir := t.TempDir()
	childPO := writeFile(t, childDir, "child-de_DE.po", minimalPO)
	child := newTestBundle("child-theme", types.KindTheme)
	child.SetDomain("child")
	child.AddTranslationFiles(types.FileGroup{Translations: []string{childPO}}, "")
	child.SetParent(parent)

	meta := child.Summary()
	assert.Empty(t, meta.Parent)
	assert.Len(t, meta.Translations, 1)
}
