package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmmoran/modelspec/pkg/parser"
)

func TestRecordAndDiff(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(root, "manifest.yaml")
	opts := parser.New(parser.WithOutDir(filepath.Join(root, "api")))

	_, err := Record(opts, manifestPath, "", "User", "name:String")
	require.ErrorIs(t, err, ErrMissingVersion)

	res, err := Record(opts, manifestPath, "v1", "User", "name:String")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "api", "v1", "user_gen.go"), res.File)
	require.Equal(t, filepath.Join(root, "api"), opts.OutDir)

	_, err = DiffCurrentWithPrevious(manifestPath, "User")
	require.ErrorContains(t, err, "no previous snapshot")

	_, err = Record(opts, manifestPath, "v2", "User", "name:String", "age:Int")
	require.NoError(t, err)

	m, err := List(manifestPath)
	require.NoError(t, err)
	require.Equal(t, "v2", m.CurrentVersion)
	require.Equal(t, "v1", m.PreviousVersion)
	require.Len(t, m.Snapshots, 2)

	diff, err := DiffCurrentWithPrevious(manifestPath, "User")
	require.NoError(t, err)
	require.Contains(t, diff, "Age")
	require.Contains(t, diff, "package v2")

	_, err = DiffCurrentWithPrevious(manifestPath, "Post")
	require.ErrorContains(t, err, "not found in manifest")
}

func TestDiffIgnoresOtherModels(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(root, "manifest.yaml")
	opts := parser.New(parser.WithOutDir(filepath.Join(root, "api")))

	_, err := Record(opts, manifestPath, "v1", "User", "name:String")
	require.NoError(t, err)
	_, err = Record(opts, manifestPath, "v2", "Post", "title:String")
	require.NoError(t, err)
	_, err = Record(opts, manifestPath, "v3", "User", "name:String", "email:String!")
	require.NoError(t, err)

	m, err := List(manifestPath)
	require.NoError(t, err)
	require.Equal(t, "v3", m.CurrentVersion)
	require.Equal(t, "v2", m.PreviousVersion)

	diff, err := DiffCurrentWithPrevious(manifestPath, "User")
	require.NoError(t, err)
	require.Contains(t, diff, "Email")
	require.Contains(t, diff, "package v3")
	require.Contains(t, diff, "package v1")

	_, err = DiffCurrentWithPrevious(manifestPath, "Post")
	require.ErrorContains(t, err, "no previous snapshot of Post")
}
