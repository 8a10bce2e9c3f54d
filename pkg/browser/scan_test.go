package browser

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScan(t *testing.T) {
	t.Parallel()
	dir := files.NewNamesReader(".", "..", "a.txt", "b")

	listing, err := Scan(dir, "/tmp/x/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/x/..", "/tmp/x/a.txt", "/tmp/x/b"}, listing.Entries)
	assert.Equal(t, 15, listing.Longest)
	assert.Equal(t, 0, listing.Columns)
	assert.Equal(t, 3, listing.Len())
}

func TestScan_Idempotent(t *testing.T) {
	t.Parallel()
	dir := files.NewNamesReader(".", "..", "zeta", "Alpha", "beta")
	first, err := Scan(dir, "/d/", 80, nil)
	require.NoError(t, err)
	require.NoError(t, dir.Rewind())
	second, err := Scan(dir, "/d/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScan_LongestClamp(t *testing.T) {
	t.Parallel()

	listing, err := Scan(files.NewNamesReader(".", ".."), "/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, listing.Longest)

	listing, err = Scan(files.NewNamesReader("a"), "/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, 11, listing.Longest)

	listing, err = Scan(files.NewNamesReader(), "/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, listing.Longest)
	assert.Equal(t, 0, listing.Len())

	long := "a-file-name-that-is-much-longer-than-the-terminal-is-wide.txt"
	listing, err = Scan(files.NewNamesReader(long), "/", 40, nil)
	require.NoError(t, err)
	assert.Equal(t, 39, listing.Longest)

	for _, cols := range []int{1, 5, 7} {
		listing, err = Scan(files.NewNamesReader("..", long), "/", cols, nil)
		require.NoError(t, err)
		assert.Equal(t, 7, listing.Longest, "cols=%d", cols)
	}
}

func TestScan_Hide(t *testing.T) {
	t.Parallel()
	hide := glob.MustCompile("{*.o,.git,..}")
	dir := files.NewNamesReader(".", "..", "main.c", "main.o", ".git")

	listing, err := Scan(dir, "/src/", 80, hide)
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/..", "/src/main.c"}, listing.Entries)
}

func TestScan_DirectoryShrinksBetweenPasses(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dir := files.NewMockDirReader(ctrl)
	gomock.InOrder(
		dir.EXPECT().Next().Return(".", nil),
		dir.EXPECT().Next().Return("a", nil),
		dir.EXPECT().Next().Return("b", nil),
		dir.EXPECT().Next().Return("", io.EOF),
		dir.EXPECT().Rewind().Return(nil),
		dir.EXPECT().Next().Return(".", nil),
		dir.EXPECT().Next().Return("a", nil),
		dir.EXPECT().Next().Return("", io.EOF),
	)

	listing, err := Scan(dir, "/d/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/d/a"}, listing.Entries)
}

func TestScan_DirectoryGrowsBetweenPasses(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	dir := files.NewMockDirReader(ctrl)
	gomock.InOrder(
		dir.EXPECT().Next().Return("a", nil),
		dir.EXPECT().Next().Return("", io.EOF),
		dir.EXPECT().Rewind().Return(nil),
		dir.EXPECT().Next().Return("new", nil),
	)

	listing, err := Scan(dir, "/d/", 80, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/d/new"}, listing.Entries)
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	failing := files.NewMockDirReader(ctrl)
	failing.EXPECT().Next().Return("", errors.New("io error"))
	_, err := Scan(failing, "/d/", 80, nil)
	assert.EqualError(t, err, "io error")

	noRewind := files.NewMockDirReader(ctrl)
	noRewind.EXPECT().Next().Return("", io.EOF)
	noRewind.EXPECT().Rewind().Return(errors.New("rewind failed"))
	_, err = Scan(noRewind, "/d/", 80, nil)
	assert.EqualError(t, err, "rewind failed")
}

func TestDirsFirstCollated(t *testing.T) {
	t.Parallel()
	less := DirsFirstCollated()
	assert.True(t, less(SortKey{Path: "/d/z", IsDir: true}, SortKey{Path: "/d/a"}))
	assert.False(t, less(SortKey{Path: "/d/a"}, SortKey{Path: "/d/z", IsDir: true}))
	assert.True(t, less(SortKey{Path: "/d/apple"}, SortKey{Path: "/d/Banana"}))
	assert.True(t, less(SortKey{Path: "/d/Apple"}, SortKey{Path: "/d/banana"}))
	assert.False(t, less(SortKey{Path: "/d/b"}, SortKey{Path: "/d/b"}))
}

func TestSortEntries(t *testing.T) {
	t.Parallel()
	store := newMockStore(t)
	expectTree(store, map[string]os.FileInfo{
		"/d/..":       files.NewDirInfo(".."),
		"/d/src":      files.NewDirInfo("src"),
		"/d/Makefile": files.NewFileInfo("Makefile"),
		"/d/main.c":   files.NewFileInfo("main.c"),
	})
	entries := []string{"/d/main.c", "/d/src", "/d/Makefile", "/d/..", "/d/gone"}

	sortEntries(entries, store, DirsFirstCollated())
	assert.Equal(t, []string{"/d/..", "/d/src", "/d/gone", "/d/main.c", "/d/Makefile"}, entries)
}
