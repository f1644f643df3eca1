package fsutil_test

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcha-hdl/verifmt/pkg/fsutil"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("returns content and metadata", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "module m;\nendmodule\n")

		content, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "module m;\nendmodule\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(len(content)), info.Size)
		assert.Equal(t, sha256.Sum256(content), info.Hash)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "missing.v"))
		assert.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(ctx, t.TempDir())
		assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CheckModified(ctx, nil)
		assert.ErrorIs(t, err, fsutil.ErrNilFileInfo)
	})

	t.Run("unchanged file", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "wire x;\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("edited file", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "wire x;\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("wire y;\n"), 0644))
		// Same size, so detection falls through to the content hash.
		require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "wire x;\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		require.NoError(t, os.Remove(path))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("touched file counts as modified", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "wire x;\n")
		_, info, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		later := info.ModTime.Add(2 * time.Second)
		require.NoError(t, os.Chtimes(path, later, later))

		modified, err := fsutil.CheckModified(ctx, info)
		require.NoError(t, err)
		assert.True(t, modified)
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("writes content with mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.v")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("module m;\n"), 0600))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "module m;\n", string(content))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())
	})

	t.Run("zero mode uses default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.v")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0))

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "out.v", "old")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("new"), 0644))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.v")
		require.NoError(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.v", entries[0].Name())
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("skips identical content", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "same")
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("same"), 0644)
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("writes changed content", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "old")
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("new"), 0644)
		require.NoError(t, err)
		assert.True(t, written)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("creates missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.v")
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("x"), 0644)
		require.NoError(t, err)
		assert.True(t, written)
	})
}

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.v"+fsutil.BackupSuffix, fsutil.BackupPath("a.v", fsutil.BackupModeSidecar))
	assert.Empty(t, fsutil.BackupPath("a.v", fsutil.BackupModeNone))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	enabled := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("creates sidecar copy", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "original")
		created, err := fsutil.CreateBackup(ctx, path, enabled)
		require.NoError(t, err)
		assert.True(t, created)

		content, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))
	})

	t.Run("never overwrites an existing backup", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "first")
		created, err := fsutil.CreateBackup(ctx, path, enabled)
		require.NoError(t, err)
		require.True(t, created)

		require.NoError(t, os.WriteFile(path, []byte("second"), 0644))
		created, err = fsutil.CreateBackup(ctx, path, enabled)
		require.NoError(t, err)
		assert.False(t, created)

		content, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "first", string(content), "backup keeps pre-rewrite content")
	})

	t.Run("disabled config is a no-op", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "a.v", "x")
		created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: false})
		require.NoError(t, err)
		assert.False(t, created)

		_, err = os.Stat(path + fsutil.BackupSuffix)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing original is a no-op", func(t *testing.T) {
		t.Parallel()

		created, err := fsutil.CreateBackup(ctx, filepath.Join(t.TempDir(), "gone.v"), enabled)
		require.NoError(t, err)
		assert.False(t, created)
	})
}
