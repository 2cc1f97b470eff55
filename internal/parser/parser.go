package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cmmoran/modelspec/pkg/model"
)

const (
	openObject      = "{"
	openObjectArray = "[{"
	closeObject     = "}"
	closeArray      = "}]"
)

// frame is an object block still being filled.
type frame struct {
	name    string
	isArray bool
	line    int
	text    string
	fields  []*model.Field
}

// Parse turns a model definition into its descriptor. lines[0] is the model
// name; every other line is a field line or a block open/close line. The first
// error aborts the parse.
func Parse(lines []string) (*model.ModelDescriptor, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrMissingModelName
	}
	modelName := strings.TrimSpace(lines[0])
	if !isModelName(modelName) {
		return nil, lineError(1, lines[0], ErrInvalidModelName)
	}

	fields, err := parseFields(modelName, lines[1:], 2)
	if err != nil {
		return nil, err
	}

	names := ResolveNames(modelName)
	return &model.ModelDescriptor{
		ModelName:      modelName,
		CollectionName: names.Collection,
		VarName:        names.Var,
		PluralVarName:  names.PluralVar,
		Fields:         fields,
	}, nil
}

// parseFields folds the block structure with an explicit frame stack. The
// root frame is never popped. first is the line number of lines[0].
func parseFields(modelName string, lines []string, first int) ([]*model.Field, error) {
	stack := []*frame{{fields: make([]*model.Field, 0)}}
	path := make([]string, 0)

	for i, raw := range lines {
		lineNo := first + i
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, isArray, ok := openBlock(line); ok {
			stack = append(stack, &frame{
				name:    name,
				isArray: isArray,
				line:    lineNo,
				text:    raw,
				fields:  make([]*model.Field, 0),
			})
			path = append(path, PathSegment(name, isArray))
			continue
		}

		if isArray, ok := closeBlock(line); ok {
			if len(stack) == 1 {
				return nil, lineError(lineNo, raw, fmt.Errorf("%w: close without open block", ErrUnbalancedNesting))
			}
			top := stack[len(stack)-1]
			if top.isArray != isArray {
				return nil, lineError(lineNo, raw, fmt.Errorf("%w: %q does not close %q", ErrUnbalancedNesting, line, strings.TrimSpace(top.text)))
			}
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]

			parent := stack[len(stack)-1]
			parent.fields = append(parent.fields, &model.Field{
				Name:    top.name,
				Kind:    model.KindObject,
				IsArray: top.isArray,
				Fields:  top.fields,
			})
			continue
		}

		f, err := parseField(line, modelName, path)
		if err != nil {
			return nil, lineError(lineNo, raw, err)
		}
		top := stack[len(stack)-1]
		top.fields = append(top.fields, f)
	}

	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, lineError(top.line, top.text, fmt.Errorf("%w: block %q is never closed", ErrUnbalancedNesting, top.name))
	}
	return stack[0].fields, nil
}

// openBlock recognizes name:{ and name:[{, with optional spaces around the
// colon and brackets.
func openBlock(line string) (string, bool, bool) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", false, false
	}
	var isArray bool
	switch strings.Join(strings.Fields(rest), "") {
	case openObjectArray:
		isArray = true
	case openObject:
	default:
		return "", false, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false, false
	}
	return name, isArray, true
}

// closeBlock recognizes } and }].
func closeBlock(line string) (bool, bool) {
	switch line {
	case closeObject:
		return false, true
	case closeArray:
		return true, true
	}
	return false, false
}

// isModelName reports whether s is an identifier starting with an upper-case
// letter, e.g. User or Building2.
func isModelName(s string) bool {
	for i, r := range s {
		switch {
		case i == 0 && !unicode.IsUpper(r):
			return false
		case unicode.IsLetter(r), r == '_':
		case unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
