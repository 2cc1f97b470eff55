package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cmmoran/modelspec/internal/model"
	core "github.com/cmmoran/modelspec/internal/parser"
	pmodel "github.com/cmmoran/modelspec/pkg/model"
	"github.com/cmmoran/modelspec/pkg/parser"
)

const multipartPkg = "mime/multipart"

// ToApiFile converts a model descriptor into the enums and structs to emit.
// Nested object blocks become their own structs, named like enum types
// (<Model><Path...><Field>), and are emitted before the struct using them.
// A block whose name is taken by an enum, a referenced model or another
// block gets an Object suffix: BuildingUserObject.
func ToApiFile(d *pmodel.ModelDescriptor, opts *parser.Options) *model.ApiFile {
	if opts == nil {
		opts = parser.NewOptions()
	}
	m := &mapper{
		opts:     opts,
		model:    d.ModelName,
		file:     &model.ApiFile{Model: d.ModelName},
		enums:    make(map[string]bool),
		declared: make(map[string]bool),
	}
	name := m.declare(d.ModelName)
	m.reserve(d.Fields)
	comment := fmt.Sprintf("%s is the API type of the %s model, stored in the %s collection.",
		name, d.ModelName, d.CollectionName)
	m.mapStruct(name, nil, nil, d.Fields, comment)
	return m.file
}

type mapper struct {
	opts  *parser.Options
	model string
	file  *model.ApiFile
	enums map[string]bool
	// declared holds every type name used in the file.
	declared map[string]bool
}

// reserve marks enum and referenced type names so nested structs avoid them.
func (m *mapper) reserve(fields []*pmodel.Field) {
	for _, f := range fields {
		switch {
		case f.IsObject():
			m.reserve(f.Fields)
		case f.IsReference():
			m.declared[m.structName(f.Type)] = true
		case len(f.Modifiers.Enum) > 0:
			m.declared[f.Type] = true
		}
	}
}

// declare picks the first free struct name for base.
func (m *mapper) declare(base string) string {
	name := m.structName(base)
	for i := 1; m.declared[name]; i++ {
		name = base + "Object"
		if i > 1 {
			name += strconv.Itoa(i)
		}
		name = m.structName(name)
	}
	m.declared[name] = true
	return name
}

// mapStruct emits the struct for one field list. segs are the naming
// segments and names the raw field names of the enclosing blocks.
func (m *mapper) mapStruct(name string, segs, names []string, fields []*pmodel.Field, comment string) {
	s := &model.ApiStruct{Name: name, Comment: comment}

	for _, f := range fields {
		if parser.ShouldOmitField(names, f, m.opts) {
			continue
		}

		var t *model.TypeRef
		switch f.Kind {
		case pmodel.KindObject:
			childSegs := append(append([]string{}, segs...), core.PathSegment(f.Name, f.IsArray))
			childNames := append(append([]string{}, names...), f.Name)
			childName := m.declare(m.model + strings.Join(childSegs, ""))
			m.mapStruct(childName, childSegs, childNames, f.Fields,
				fmt.Sprintf("%s is the %s block of %s.", childName, f.Name, name))
			t = model.Named(childName)
		case pmodel.KindReference:
			t = model.PointerTo(model.Named(m.structName(f.Type)))
		default:
			t = m.primitiveType(f)
		}
		if f.IsArray {
			t = model.SliceOf(t)
		}

		s.Fields = append(s.Fields, &model.ApiField{
			Name:    goName(f.Name),
			Type:    t,
			Tag:     m.tags(f),
			Comment: fieldComment(f),
		})
	}

	m.file.Structs = append(m.file.Structs, s)
}

func (m *mapper) primitiveType(f *pmodel.Field) *model.TypeRef {
	if len(f.Modifiers.Enum) > 0 {
		m.addEnum(f)
		return model.Named(f.Type)
	}
	switch f.APIType {
	case "Int":
		return model.Builtin("int64")
	case "Float":
		return model.Builtin("float64")
	case "Boolean":
		return model.Builtin("bool")
	case "File":
		return model.PointerTo(model.Qualified(multipartPkg, "FileHeader"))
	}
	// String, ID
	return model.Builtin("string")
}

func (m *mapper) addEnum(f *pmodel.Field) {
	if m.enums[f.Type] {
		return
	}
	m.enums[f.Type] = true

	e := &model.ApiEnum{
		Name:    f.Type,
		Comment: fmt.Sprintf("%s enumerates the values of %s.", f.Type, f.Name),
	}
	seen := make(map[string]int)
	for i, lit := range f.Modifiers.EnumValues() {
		c := f.Type + constName(lit)
		if c == f.Type {
			c += "Value" + strconv.Itoa(i)
		}
		if n := seen[c]; n > 0 {
			seen[c] = n + 1
			c += strconv.Itoa(n + 1)
		} else {
			seen[c] = 1
		}
		e.Values = append(e.Values, model.EnumValue{Const: c, Literal: lit})
	}
	m.file.Enums = append(m.file.Enums, e)
}

func (m *mapper) structName(name string) string {
	if m.opts.Suffix != "" && !strings.HasSuffix(name, m.opts.Suffix) {
		return name + m.opts.Suffix
	}
	return name
}

func (m *mapper) tags(f *pmodel.Field) map[string]string {
	tags := map[string]string{}
	if f.Modifiers.Required {
		tags["json"] = f.Name
	} else {
		tags["json"] = f.Name + ",omitempty"
	}
	if !m.opts.OmitBSONTags {
		tags["bson"] = f.Name
	}
	return tags
}

// fieldComment lists the modifiers a Go type cannot express.
func fieldComment(f *pmodel.Field) string {
	var parts []string
	mods := f.Modifiers
	if mods.Required {
		parts = append(parts, "required")
	}
	if mods.Index {
		parts = append(parts, "indexed")
	}
	if mods.Unique {
		parts = append(parts, "unique")
	}
	if mods.Sparse {
		parts = append(parts, "sparse")
	}
	if mods.Match != "" {
		parts = append(parts, "match "+mods.Match)
	}
	if mods.Default != nil {
		parts = append(parts, "default "+mods.Default.String())
	}
	if mods.Uploader != "" {
		parts = append(parts, "uploader "+mods.Uploader)
	}
	if f.ForeignKey != "" {
		parts = append(parts, "foreign key "+f.ForeignKey)
	}
	if f.IsAssociation() {
		parts = append(parts, fmt.Sprintf("through %s (%s -> %s)", f.AssocModel, f.SelfKey, f.DestKey))
	}
	return strings.Join(parts, ", ")
}

// goName turns a field name into an exported Go identifier.
func goName(name string) string {
	id := identifier(name, nil)
	switch {
	case id == "":
		return "Field"
	case id == "Id":
		return "ID"
	case strings.HasSuffix(id, "Id"):
		return strings.TrimSuffix(id, "Id") + "ID"
	case unicode.IsDigit(rune(id[0])):
		return "F" + id
	}
	return id
}

var enumSymbols = map[rune]string{
	'+': "Plus",
	'-': "Minus",
}

// constName maps an enum literal to an identifier suffix: A+ -> APlus.
func constName(lit string) string {
	return identifier(lit, enumSymbols)
}

// identifier keeps letters and digits, capitalizing the first one and any
// that follow a dropped character. symbols spells out selected characters.
func identifier(s string, symbols map[rune]string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		case symbols[r] != "":
			b.WriteString(symbols[r])
			upper = true
		default:
			upper = true
		}
	}
	return b.String()
}
