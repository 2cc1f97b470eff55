package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cmmoran/modelspec/pkg/model"
)

// typeDelimiters end a type token.
const typeDelimiters = "!^$/[]:"

// lineScanner walks the part of a field line that follows the field name.
type lineScanner struct {
	src string
	pos int
}

func (s *lineScanner) done() bool { return s.pos >= len(s.src) }

func (s *lineScanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

// typeToken reads the type token, unwrapping an optional [...] array marker.
// Enum{...} bodies may contain any character except '}'.
func (s *lineScanner) typeToken() (string, bool, error) {
	isArray := false
	if s.peek() == '[' {
		isArray = true
		s.pos++
	}

	start := s.pos
	if strings.HasPrefix(s.src[s.pos:], enumPrefix) {
		end := strings.Index(s.src[s.pos:], enumSuffix)
		if end < 0 {
			return "", false, fmt.Errorf("%w: unterminated enum", ErrMalformedLine)
		}
		s.pos += end + len(enumSuffix)
	} else {
		for !s.done() && strings.IndexByte(typeDelimiters, s.peek()) < 0 {
			s.pos++
		}
	}
	token := s.src[start:s.pos]
	if token == "" {
		return "", false, fmt.Errorf("%w: missing type", ErrMalformedLine)
	}
	if !isEnumToken(token) && strings.ContainsFunc(token, unicode.IsSpace) {
		return "", false, fmt.Errorf("%w: space in type %q", ErrMalformedLine, token)
	}

	if isArray {
		if s.peek() != ']' {
			return "", false, fmt.Errorf("%w: unterminated array type", ErrMalformedLine)
		}
		s.pos++
	}
	return token, isArray, nil
}

// pattern reads a /.../ match pattern, delimiters included. A slash escaped
// with a backslash does not end the pattern.
func (s *lineScanner) pattern() (string, error) {
	start := s.pos
	for i := s.pos + 1; i < len(s.src); i++ {
		switch s.src[i] {
		case '\\':
			i++
		case '/':
			s.pos = i + 1
			return s.src[start:s.pos], nil
		}
	}
	return "", fmt.Errorf("%w: unterminated match pattern", ErrMalformedLine)
}

// flags consumes modifier flag characters up to the trailing-value colon.
func (s *lineScanner) flags(m *model.Modifiers) error {
	for !s.done() && s.peek() != ':' {
		switch c := s.peek(); c {
		case '!':
			m.Required = true
		case '^':
			m.Index = true
		case '$':
			m.Unique = true
		default:
			return fmt.Errorf("%w %q", ErrUnsupportedModifier, string(c))
		}
		s.pos++
	}
	// sparse only accompanies a lone unique flag.
	m.Sparse = m.Unique && !m.Required && !m.Index
	return nil
}

// trailing returns the value after the trailing colon, if any.
func (s *lineScanner) trailing() (string, bool) {
	if s.peek() != ':' {
		return "", false
	}
	return s.src[s.pos+1:], true
}

// parseField parses one leaf line. path holds the capitalized segments of the
// enclosing object blocks and is only used to name enums.
func parseField(line, modelName string, path []string) (*model.Field, error) {
	name, rest, ok := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if !ok {
		return nil, fmt.Errorf("%w: expected name:Type", ErrMalformedLine)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: missing field name", ErrMalformedLine)
	}

	s := &lineScanner{src: strings.TrimSpace(rest)}
	token, isArray, err := s.typeToken()
	if err != nil {
		return nil, err
	}

	f := &model.Field{Name: name, IsArray: isArray}
	if isEnumToken(token) {
		values, ok := parseEnumValues(token)
		if !ok {
			return nil, fmt.Errorf("%w: empty enum value in %s", ErrMalformedLine, token)
		}
		enumName := EnumTypeName(modelName, path, name)
		f.Kind = model.KindPrimitive
		f.Type = enumName
		f.NativeType = stringType
		f.APIType = enumName
		f.Modifiers.Enum = values
	} else {
		rt := resolveType(token)
		f.Kind = rt.kind
		f.Type = rt.typ
		f.NativeType = rt.native
		f.APIType = rt.api
		f.Modifiers.Uploader = rt.uploader
	}

	if s.peek() == '/' {
		if f.Modifiers.Match, err = s.pattern(); err != nil {
			return nil, err
		}
	}
	if err = s.flags(&f.Modifiers); err != nil {
		return nil, err
	}

	if value, ok := s.trailing(); ok {
		if err = applyTrailing(f, value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// applyTrailing interprets the :value segment: a default for primitives, a
// foreign key or an association table for references.
func applyTrailing(f *model.Field, value string) error {
	if f.Kind == model.KindPrimitive {
		f.Modifiers.Default = coerceDefault(value)
		return nil
	}

	if !strings.Contains(value, ".") {
		if value == "" {
			return fmt.Errorf("%w: empty foreign key", ErrMalformedLine)
		}
		f.ForeignKey = value
		return nil
	}

	parts := strings.Split(value, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return fmt.Errorf("%w: association must be Model.destKey.selfKey, got %q", ErrMalformedLine, value)
	}
	f.AssocModel, f.DestKey, f.SelfKey = parts[0], parts[1], parts[2]
	return nil
}

// coerceDefault never fails: numbers and booleans are recognized, anything
// else is kept as a string literal.
func coerceDefault(raw string) *model.Literal {
	switch raw {
	case "true":
		return model.BoolLiteral(true)
	case "false":
		return model.BoolLiteral(false)
	}
	if v, ok := parseNumber(raw); ok {
		return model.NumberLiteral(raw, v)
	}
	return model.StringLiteral(raw)
}

func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
