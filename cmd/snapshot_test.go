package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotCommands(t *testing.T) {
	root := t.TempDir()
	manifestPath := filepath.Join(root, "manifest.yaml")
	apiDir := filepath.Join(root, "api")

	_, err := runCommand(t, NewSnapshotCommand(), "record", "-m", manifestPath, "-o", apiDir, "User", "name:String")
	require.ErrorContains(t, err, "snapshot version is required")

	out, err := runCommand(t, NewSnapshotCommand(), "record", "-m", manifestPath, "-V", "v1", "-o", apiDir, "User", "name:String")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(apiDir, "v1", "user_gen.go"), strings.TrimSpace(out))

	_, err = runCommand(t, NewSnapshotCommand(), "record", "-m", manifestPath, "-V", "v2", "-o", apiDir, "Post", "title:String")
	require.NoError(t, err)
	_, err = runCommand(t, NewSnapshotCommand(), "record", "-m", manifestPath, "-V", "v3", "-o", apiDir, "User", "name:String", "age:Int")
	require.NoError(t, err)

	out, err = runCommand(t, NewSnapshotCommand(), "list", "-m", manifestPath)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, rows, 4)
	require.Equal(t, []string{"MODEL", "VERSION", "FILE"}, strings.Fields(rows[0]))
	require.Equal(t, []string{"User", "v1", filepath.Join(apiDir, "v1", "user_gen.go")}, strings.Fields(rows[1]))
	require.Equal(t, []string{"Post", "v2", filepath.Join(apiDir, "v2", "post_gen.go")}, strings.Fields(rows[2]))

	out, err = runCommand(t, NewSnapshotCommand(), "diff", "-m", manifestPath, "User")
	require.NoError(t, err)
	require.Contains(t, out, "Age")

	_, err = runCommand(t, NewSnapshotCommand(), "diff", "-m", manifestPath, "Comment")
	require.ErrorContains(t, err, "not found in manifest")
}
