package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/modelspec/pkg/action/generate"
	"github.com/cmmoran/modelspec/pkg/manifest"
	"github.com/cmmoran/modelspec/pkg/parser"
)

var ErrMissingVersion = errors.New("snapshot version is required")

// Record generates the model into <OutDir>/<version> and records the file in
// the manifest. opts is not modified.
func Record(opts *parser.Options, manifestPath, version string, lines ...string) (*generate.Result, error) {
	if version == "" {
		return nil, ErrMissingVersion
	}
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	o := *opts
	o.OutDir = filepath.Join(opts.OutDir, version)
	o.ExcludeFields = slices.Clone(opts.ExcludeFields)
	res, err := generate.Generate(&o, lines...)
	if err != nil {
		return nil, err
	}

	m.AddSnapshot(manifest.Snapshot{Name: res.Model.ModelName, Version: version, File: res.File})
	if err := m.Save(manifestPath); err != nil {
		return nil, err
	}

	return res, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the two most recent
// snapshot files of the named model, and returns a textual diff of their
// contents. Snapshots of other models recorded in between do not matter.
func DiffCurrentWithPrevious(manifestPath, name string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	h := m.History(name)
	switch len(h) {
	case 0:
		return "", fmt.Errorf("snapshot files for %s not found in manifest", name)
	case 1:
		return "", fmt.Errorf("no previous snapshot of %s recorded", name)
	}
	previousPath, currentPath := h[len(h)-2].File, h[len(h)-1].File

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
