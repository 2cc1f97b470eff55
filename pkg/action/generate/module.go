package generate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ImportPath resolves the import path of dir from the nearest go.mod above it.
func ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	modDir, err := findGoModDir(abs)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(modDir, "go.mod"))
	if err != nil {
		return "", err
	}
	mf, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return "", err
	}
	if mf.Module == nil {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(modDir, "go.mod"))
	}

	rel, err := filepath.Rel(modDir, abs)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return mf.Module.Mod.Path, nil
	}
	return path.Join(mf.Module.Mod.Path, filepath.ToSlash(rel)), nil
}

// findGoModDir walks up from dir until it finds go.mod.
func findGoModDir(from string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(from, "go.mod")); err == nil {
			return from, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("no go.mod found")
		}
		from = parent
	}
}
