package generate

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cmmoran/modelspec/internal/render"
	"github.com/cmmoran/modelspec/pkg/model"
	"github.com/cmmoran/modelspec/pkg/parser"
)

// Result describes one generated file.
type Result struct {
	File  string
	Model *model.ModelDescriptor
}

// Generate parses a model definition and writes its Go API types to
// opts.OutDir/opts.OutFile. opts is normalized in place.
func Generate(opts *parser.Options, lines ...string) (*Result, error) {
	d, err := parser.Parse(lines...)
	if err != nil {
		return nil, err
	}
	opts.Normalize(d.ModelName)

	if err = os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	importPath, err := ImportPath(opts.OutDir)
	if err != nil {
		slog.Debug("output directory is outside any module", "dir", opts.OutDir, "error", err)
	}

	f := render.NewFile(render.ToApiFile(d, opts), importPath, opts.Package)
	buf := new(bytes.Buffer)
	if err = f.Render(buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", d.ModelName, err)
	}

	outFile := filepath.Clean(filepath.Join(opts.OutDir, opts.OutFile))
	if err = os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", outFile, err)
	}

	slog.Info("generated model", "model", d.ModelName, "file", outFile, "fields", len(d.Fields))
	return &Result{File: outFile, Model: d}, nil
}
