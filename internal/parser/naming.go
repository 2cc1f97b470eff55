package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
)

// Names are the identifiers derived from a model name.
type Names struct {
	Collection string
	Var        string
	PluralVar  string
}

var irregularPlurals = map[string]string{
	"person":     "people",
	"man":        "men",
	"woman":      "women",
	"child":      "children",
	"tooth":      "teeth",
	"foot":       "feet",
	"mouse":      "mice",
	"goose":      "geese",
	"ox":         "oxen",
	"leaf":       "leaves",
	"life":       "lives",
	"knife":      "knives",
	"wife":       "wives",
	"half":       "halves",
	"wolf":       "wolves",
	"die":        "dice",
	"cactus":     "cacti",
	"octopus":    "octopi",
	"radius":     "radii",
	"alumnus":    "alumni",
	"criterion":  "criteria",
	"phenomenon": "phenomena",
	"analysis":   "analyses",
	"thesis":     "theses",
	"crisis":     "crises",
	"matrix":     "matrices",
	"vertex":     "vertices",
}

// irregularSingulars is the inverse of irregularPlurals.
var irregularSingulars = func() map[string]string {
	m := make(map[string]string, len(irregularPlurals))
	for s, p := range irregularPlurals {
		m[p] = s
	}
	return m
}()

var uncountables = map[string]bool{
	"fish":        true,
	"sheep":       true,
	"deer":        true,
	"moose":       true,
	"bison":       true,
	"salmon":      true,
	"trout":       true,
	"swine":       true,
	"series":      true,
	"species":     true,
	"news":        true,
	"money":       true,
	"rice":        true,
	"information": true,
	"equipment":   true,
	"aircraft":    true,
	"software":    true,
	"metadata":    true,
}

// ResolveNames derives the collection and variable names of a PascalCase
// model name.
func ResolveNames(modelName string) Names {
	plural, uncountable := pluralize(modelName)
	n := Names{
		Collection: strings.ToLower(plural),
		Var:        lowerFirst(modelName),
		PluralVar:  lowerFirst(plural),
	}
	if uncountable {
		n.PluralVar = "all" + capitalize(modelName)
	}
	return n
}

// pluralize pluralizes the last word of a camel-case identifier, keeping the
// case of its first letter. The second result reports an uncountable noun.
func pluralize(name string) (string, bool) {
	head, word := splitLastWord(name)
	lower := strings.ToLower(word)

	if p, ok := irregularPlurals[lower]; ok {
		return head + matchCase(word, p), false
	}
	if uncountables[lower] {
		return name, true
	}
	return head + matchCase(word, pluralSuffix(lower)), false
}

func pluralSuffix(w string) string {
	n := len(w)
	switch {
	case n >= 2 && w[n-1] == 'z' && isVowel(w[n-2]):
		return w + "zes"
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"), strings.HasSuffix(w, "z"),
		strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "sh"):
		return w + "es"
	case n >= 2 && w[n-1] == 'y' && !isVowel(w[n-2]):
		return w[:n-1] + "ies"
	}
	return w + "s"
}

// Singularize returns the singular of the last word of a camel-case identifier.
func Singularize(name string) string {
	head, word := splitLastWord(name)
	lower := strings.ToLower(word)

	if s, ok := irregularSingulars[lower]; ok {
		return head + matchCase(word, s)
	}
	if uncountables[lower] {
		return name
	}
	return head + matchCase(word, inflection.Singular(lower))
}

// EnumTypeName builds <Model><Path...><Field>. Path segments are expected to
// be capitalized already.
func EnumTypeName(modelName string, path []string, field string) string {
	var b strings.Builder
	b.WriteString(modelName)
	for _, seg := range path {
		b.WriteString(seg)
	}
	b.WriteString(capitalize(field))
	return b.String()
}

// PathSegment is the enum naming segment contributed by an open block.
func PathSegment(name string, isArray bool) string {
	if isArray {
		name = Singularize(name)
	}
	return capitalize(name)
}

// splitLastWord splits "BlogPost" into "Blog" and "Post".
func splitLastWord(s string) (string, string) {
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			return string(runes[:i]), string(runes[i:])
		}
	}
	return "", s
}

func matchCase(like, s string) string {
	r, _ := utf8.DecodeRuneInString(like)
	if unicode.IsUpper(r) {
		return capitalize(s)
	}
	return s
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
