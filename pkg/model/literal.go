package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
)

// Literal is a coerced default value. Raw holds the source text as written
// after the trailing colon.
type Literal struct {
	Kind LiteralKind
	Raw  string
	Num  float64
	Bool bool
}

func StringLiteral(raw string) *Literal {
	return &Literal{Kind: LiteralString, Raw: raw}
}

func NumberLiteral(raw string, v float64) *Literal {
	return &Literal{Kind: LiteralNumber, Raw: raw, Num: v}
}

func BoolLiteral(v bool) *Literal {
	return &Literal{Kind: LiteralBool, Raw: strconv.FormatBool(v), Bool: v}
}

// Value returns the literal as it appears in a descriptor: a float64, a bool
// or the single-quoted string form.
func (l *Literal) Value() any {
	switch l.Kind {
	case LiteralNumber:
		return l.Num
	case LiteralBool:
		return l.Bool
	}
	return Quote(l.Raw)
}

// String returns the literal in source-code form, e.g. 18, true or 'No Name'.
func (l *Literal) String() string {
	switch l.Kind {
	case LiteralNumber:
		return strconv.FormatFloat(l.Num, 'f', -1, 64)
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	}
	return Quote(l.Raw)
}

func (l *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Value())
}

func (l *Literal) MarshalYAML() (any, error) {
	return l.Value(), nil
}

var (
	quoter   = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	unquoter = strings.NewReplacer(`\\`, `\`, `\'`, `'`)
)

// Quote wraps s in single quotes, escaping backslashes and single quotes.
func Quote(s string) string {
	return "'" + quoter.Replace(s) + "'"
}

// Unquote reverses Quote. Strings that are not single-quoted are returned as is.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return s
	}
	return unquoter.Replace(s[1 : len(s)-1])
}
