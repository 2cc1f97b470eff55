package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// useConfig points the next command run at a config file.
func useConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	configFiles = []string{path}
	t.Cleanup(func() { configFiles = nil })
}

func TestGenerateCommandPrecedence(t *testing.T) {
	root := t.TempDir()
	cfgDir := filepath.Join(root, "fromconfig")
	envDir := filepath.Join(root, "fromenv")
	flagDir := filepath.Join(root, "fromflag")
	useConfig(t, "generate:\n  out_dir: "+cfgDir+"\n  suffix: DTO\n")
	lines := []string{"User", "name:String!", "gender:Enum{male,female}"}

	out, err := runCommand(t, NewGenerateCommand(), lines...)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfgDir, "user_gen.go"), strings.TrimSpace(out))

	src, err := os.ReadFile(filepath.Join(cfgDir, "user_gen.go"))
	require.NoError(t, err)
	require.Contains(t, string(src), "package fromconfig")
	require.Contains(t, string(src), "type UserDTO struct")

	t.Setenv("MODELSPEC_GENERATE_OUT_DIR", envDir)
	out, err = runCommand(t, NewGenerateCommand(), lines...)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(envDir, "user_gen.go"), strings.TrimSpace(out))

	out, err = runCommand(t, NewGenerateCommand(), append([]string{"-o", flagDir, "-s", "Model"}, lines...)...)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(flagDir, "user_gen.go"), strings.TrimSpace(out))

	src, err = os.ReadFile(filepath.Join(flagDir, "user_gen.go"))
	require.NoError(t, err)
	require.Contains(t, string(src), "type UserModel struct")
}

func TestGenerateCommandParseError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "api")
	_, err := runCommand(t, NewGenerateCommand(), "-o", dir, "User", "name")
	require.Error(t, err)
	require.NoDirExists(t, dir)
}
