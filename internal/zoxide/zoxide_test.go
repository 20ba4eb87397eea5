package zoxide_test

import (
	"context"
	"fmt"
	"os/exec"
	"testing"

	"github.com/hbjs97/zpick/internal/testutil"
	"github.com/hbjs97/zpick/internal/zoxide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_SplitsWordsAndAppendsList(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query foo bar --list", testutil.QueryOutput("/home/u/foobar"), nil)

	z := zoxide.NewAdapter(fake, "")
	paths, err := z.Query(context.Background(), "  foo   bar ", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"/home/u/foobar"}, paths)
	assert.True(t, fake.Called("zoxide query foo bar --list"))
}

func TestQuery_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list",
		testutil.QueryOutput("/a", "/b", "/c", "/d"), nil)

	z := zoxide.NewAdapter(fake, "")
	paths, err := z.Query(context.Background(), "p", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b"}, paths)
}

func TestQuery_ZeroLimitMeansUnlimited(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list",
		testutil.QueryOutput("/a", "/b", "/c"), nil)

	z := zoxide.NewAdapter(fake, "")
	paths, err := z.Query(context.Background(), "p", 0)
	require.NoError(t, err)

	assert.Len(t, paths, 3)
}

func TestQuery_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list", "/a\n\n/b\n\n", nil)

	z := zoxide.NewAdapter(fake, "")
	paths, err := z.Query(context.Background(), "p", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b"}, paths)
}

func TestQuery_PreservesRankingOrder(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list",
		testutil.QueryOutput("/zzz", "/aaa", "/mmm"), nil)

	z := zoxide.NewAdapter(fake, "")
	paths, err := z.Query(context.Background(), "p", 10)
	require.NoError(t, err)

	// zoxide's ranking order must never be re-sorted.
	assert.Equal(t, []string{"/zzz", "/aaa", "/mmm"}, paths)
}

func TestQuery_NotInstalled(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query", "", &exec.Error{Name: "zoxide", Err: exec.ErrNotFound})

	z := zoxide.NewAdapter(fake, "")
	_, err := z.Query(context.Background(), "p", 10)

	require.ErrorIs(t, err, zoxide.ErrNotInstalled)
}

func TestQuery_NonZeroExitIncludesStderr(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query", "zoxide: database error", fmt.Errorf("exit status 1"))

	z := zoxide.NewAdapter(fake, "")
	_, err := z.Query(context.Background(), "p", 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestQuery_CustomBinary(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("/opt/bin/zoxide query p --list", testutil.QueryOutput("/a"), nil)

	z := zoxide.NewAdapter(fake, "/opt/bin/zoxide")
	paths, err := z.Query(context.Background(), "p", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"/a"}, paths)
}

func TestQueryScored_ParsesScoreAndPath(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list --score",
		"   112.5 /home/u/proj\n     3.0 /home/u/dir with spaces\n", nil)

	z := zoxide.NewAdapter(fake, "")
	entries, err := z.QueryScored(context.Background(), "p", 10)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, zoxide.Entry{Score: 112.5, Path: "/home/u/proj"}, entries[0])
	assert.Equal(t, zoxide.Entry{Score: 3.0, Path: "/home/u/dir with spaces"}, entries[1])
}

func TestQueryScored_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list --score",
		"garbage\n   12.0 /ok\nnoscore /bad\n", nil)

	z := zoxide.NewAdapter(fake, "")
	entries, err := z.QueryScored(context.Background(), "p", 10)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "/ok", entries[0].Path)
}

func TestQueryScored_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide query p --list --score",
		"   3.0 /a\n   2.0 /b\n   1.0 /c\n", nil)

	z := zoxide.NewAdapter(fake, "")
	entries, err := z.QueryScored(context.Background(), "p", 2)
	require.NoError(t, err)

	assert.Len(t, entries, 2)
}

func TestAdd_RunsZoxideAdd(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide add /home/u/proj", "", nil)

	z := zoxide.NewAdapter(fake, "")
	require.NoError(t, z.Add(context.Background(), "/home/u/proj"))

	assert.True(t, fake.Called("zoxide add /home/u/proj"))
}

func TestAdd_EmptyPath(t *testing.T) {
	t.Parallel()

	z := zoxide.NewAdapter(testutil.NewFakeCommander(), "")
	require.Error(t, z.Add(context.Background(), ""))
}

func TestRemove_RunsZoxideRemove(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide remove /home/u/gone", "", nil)

	z := zoxide.NewAdapter(fake, "")
	require.NoError(t, z.Remove(context.Background(), "/home/u/gone"))

	assert.True(t, fake.Called("zoxide remove /home/u/gone"))
}

func TestVersion_Trimmed(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("zoxide --version", "zoxide 0.9.6\n", nil)

	z := zoxide.NewAdapter(fake, "")
	v, err := z.Version(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "zoxide 0.9.6", v)
}
