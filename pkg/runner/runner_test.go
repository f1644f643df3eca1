package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/fsutil"
	"github.com/matcha-hdl/verifmt/pkg/runner"
)

// writeTree creates files (relative path to content) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("walks directories for verilog extensions", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"a.v":       "",
			"b.sv":      "",
			"notes.txt": "",
			"sub/c.vh":  "",
		})

		files, err := runner.Discover(ctx, runner.Options{WorkingDir: root})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.v", "b.sv", "sub/c.vh"}, relPaths(t, root, files))
	})

	t.Run("skips hidden files and directories", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"a.v":          "",
			".hidden.v":    "",
			".git/stash.v": "",
		})

		files, err := runner.Discover(ctx, runner.Options{WorkingDir: root})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.v"}, relPaths(t, root, files))
	})

	t.Run("exclude globs prune directories", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"a.v":          "",
			"build/gen.v":  "",
			"sub/skip.v":   "",
			"sub/keep.sv":  "",
			"vendor/dep.v": "",
		})

		files, err := runner.Discover(ctx, runner.Options{
			WorkingDir:   root,
			ExcludeGlobs: []string{"build/**", "vendor", "sub/skip.v"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.v", "sub/keep.sv"}, relPaths(t, root, files))
	})

	t.Run("explicit file paths are deduplicated", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"a.v": ""})

		files, err := runner.Discover(ctx, runner.Options{
			WorkingDir: root,
			Paths:      []string{"a.v", "a.v", "."},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.v"}, relPaths(t, root, files))
	})

	t.Run("missing path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Discover(ctx, runner.Options{
			WorkingDir: t.TempDir(),
			Paths:      []string{"nope.v"},
		})
		assert.Error(t, err)
	})
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	pipeline := runner.NewPipeline(config.DefaultHierarchical())
	backup := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("check only leaves disk untouched", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"a.v": "module m;\nx;\nendmodule"})
		path := filepath.Join(root, "a.v")

		pr, err := pipeline.ProcessFile(ctx, path, runner.PipelineOptions{Write: false})
		require.NoError(t, err)
		assert.True(t, pr.Changed)
		assert.False(t, pr.Written)
		assert.Equal(t, "module m;\n\tx;\nendmodule", string(pr.Formatted))

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "module m;\nx;\nendmodule", string(onDisk))
	})

	t.Run("write rewrites file and creates backup", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"a.v": "module m;\nx;\nendmodule"})
		path := filepath.Join(root, "a.v")

		pr, err := pipeline.ProcessFile(ctx, path, runner.PipelineOptions{Write: true, Backup: backup})
		require.NoError(t, err)
		assert.True(t, pr.Written)
		assert.True(t, pr.BackupCreated)
		assert.Equal(t, "formatted (backup created)", pr.Summary())

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "module m;\n\tx;\nendmodule", string(onDisk))

		bak, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "module m;\nx;\nendmodule", string(bak))
	})

	t.Run("already formatted file is not written", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"a.v": "module m;\n\tx;\nendmodule"})
		path := filepath.Join(root, "a.v")

		pr, err := pipeline.ProcessFile(ctx, path, runner.PipelineOptions{Write: true, Backup: backup})
		require.NoError(t, err)
		assert.False(t, pr.Changed)
		assert.False(t, pr.Written)
		assert.Equal(t, "ok", pr.Summary())

		_, err = os.Stat(path + fsutil.BackupSuffix)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("detector rejection skips the file", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"proofs.v": "Theorem t : True.\nProof. auto. Qed.\n"})
		path := filepath.Join(root, "proofs.v")

		pr, err := pipeline.ProcessFile(ctx, path, runner.PipelineOptions{
			Write:    true,
			Detector: func(string, []byte) bool { return false },
		})
		require.NoError(t, err)
		assert.True(t, pr.Skipped)
		assert.Equal(t, "skipped: not a Verilog source file", pr.Summary())

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Theorem t : True.\nProof. auto. Qed.\n", string(onDisk))
	})

	t.Run("missing file maps to sentinel", func(t *testing.T) {
		t.Parallel()

		_, err := pipeline.ProcessFile(ctx, filepath.Join(t.TempDir(), "gone.v"), runner.PipelineOptions{})
		assert.ErrorIs(t, err, runner.ErrFileNotFound)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("outcomes are ordered by path regardless of workers", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{
			"c.v": "module c;\nx;\nendmodule",
			"a.v": "module a;\nx;\nendmodule",
			"b.v": "module b;\n\tx;\nendmodule",
		})

		r := runner.New(runner.NewPipeline(config.DefaultHierarchical()))
		result, err := r.Run(ctx, runner.Options{WorkingDir: root, Jobs: 3})
		require.NoError(t, err)

		require.Len(t, result.Files, 3)
		var got []string
		for _, f := range result.Files {
			got = append(got, f.Path)
		}
		assert.Equal(t, []string{"a.v", "b.v", "c.v"}, relPaths(t, root, got))

		assert.Equal(t, 3, result.Stats.FilesDiscovered)
		assert.Equal(t, 3, result.Stats.FilesProcessed)
		assert.Equal(t, 2, result.Stats.FilesChanged)
		assert.Equal(t, 0, result.Stats.FilesWritten)
		assert.True(t, result.HasChanges())
		assert.False(t, result.HasErrors())
	})

	t.Run("empty directory yields empty result", func(t *testing.T) {
		t.Parallel()

		r := runner.New(runner.NewPipeline(config.DefaultHierarchical()))
		result, err := r.Run(ctx, runner.Options{WorkingDir: t.TempDir()})
		require.NoError(t, err)

		assert.Empty(t, result.Files)
		assert.False(t, result.HasChanges())
	})

	t.Run("write pass updates stats", func(t *testing.T) {
		t.Parallel()

		root := writeTree(t, map[string]string{"a.v": "module a;\nx;\nendmodule"})

		r := runner.New(runner.NewPipeline(config.DefaultHierarchical()))
		result, err := r.Run(ctx, runner.Options{
			WorkingDir: root,
			Pipeline: runner.PipelineOptions{
				Write:  true,
				Backup: fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Stats.FilesWritten)

		// Backup files must not get picked up by a second discovery pass.
		files, err := runner.Discover(ctx, runner.Options{WorkingDir: root})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.v"}, relPaths(t, root, files))
	})
}
