package parser

import (
	"strings"

	"github.com/cmmoran/modelspec/pkg/model"
)

// ShouldOmitField determines whether a field should be left out of the
// generated types. path holds the names of the enclosing object blocks.
func ShouldOmitField(path []string, f *model.Field, opts *Options) bool {
	if f == nil {
		return true
	}
	if opts == nil {
		return false
	}

	if len(opts.ExcludeFields) > 0 {
		dotted := strings.Join(append(append([]string{}, path...), f.Name), ".")
		for _, ex := range opts.ExcludeFields {
			if ex == f.Name || ex == dotted {
				return true
			}
		}
	}

	if f.IsReference() && containsFold(opts.ExcludeTypes, f.Type) {
		return true
	}

	return false
}

// containsFold reports whether any entry equals name, ignoring case.
func containsFold(list []string, name string) bool {
	for _, v := range list {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}
