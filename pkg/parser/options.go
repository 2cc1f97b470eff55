package parser

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Options control how a model descriptor is rendered into Go API types.
//
// OutDir        – output directory
// OutFile       – output filename, defaults to <model>_gen.go
// Package       – package name of the generated file, defaults to the base of OutDir
// Suffix        – append to every generated struct name
// ExcludeFields – field names or dotted paths (settings.sms) to leave out
// ExcludeTypes  – referenced model names whose fields are left out (case‑insensitive)
// OmitBSONTags  – do not emit bson tags
type Options struct {
	OutDir        string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile       string   `json:"out_file,omitempty" yaml:"out_file,omitempty" toml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Package       string   `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty" mapstructure:"package,omitempty"`
	Suffix        string   `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty" mapstructure:"suffix,omitempty"`
	ExcludeFields []string `json:"exclude_fields,omitempty" yaml:"exclude_fields,omitempty" toml:"exclude_fields,omitempty" mapstructure:"exclude_fields,omitempty"`
	ExcludeTypes  []string `json:"exclude_types,omitempty" yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" mapstructure:"exclude_types,omitempty"`
	OmitBSONTags  bool     `json:"omit_bson_tags,omitempty" yaml:"omit_bson_tags,omitempty" toml:"omit_bson_tags,omitempty" mapstructure:"omit_bson_tags,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir: "api",
	}
}

// Normalize fills defaults that depend on the model being generated.
func (o *Options) Normalize(modelName string) {
	if len(o.OutDir) == 0 {
		o.OutDir = "api"
	}
	if strings.Contains(o.OutDir, ".") {
		o.OutDir, _ = filepath.Abs(o.OutDir)
	}
	if len(o.OutFile) == 0 {
		o.OutFile = strings.ToLower(modelName) + "_gen.go"
	}
	if len(o.Package) == 0 {
		o.Package = packageName(filepath.Base(o.OutDir))
	}
	for i, f := range o.ExcludeFields {
		o.ExcludeFields[i] = strings.TrimSpace(f)
	}
}

// packageName reduces a directory name to a valid Go package name.
func packageName(dir string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(dir) {
		if unicode.IsLetter(r) || (b.Len() > 0 && unicode.IsDigit(r)) || (b.Len() > 0 && r == '_') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "api"
	}
	return b.String()
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithOutDir(d string) Option  { return func(o *Options) { o.OutDir = d } }
func WithOutFile(f string) Option { return func(o *Options) { o.OutFile = f } }
func WithPackage(p string) Option { return func(o *Options) { o.Package = p } }
func WithSuffix(s string) Option  { return func(o *Options) { o.Suffix = s } }
func WithOmitBSONTags() Option    { return func(o *Options) { o.OmitBSONTags = true } }
func WithExcludeFields(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeFields = append(o.ExcludeFields, strings.TrimSpace(n))
		}
	}
}
func WithExcludeTypes(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			o.ExcludeTypes = append(o.ExcludeTypes, strings.TrimSpace(n))
		}
	}
}

// New builds Options from functional options.
func New(opts ...Option) *Options {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	return o
}
