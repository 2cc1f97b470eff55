package model

import (
	"encoding/json"
)

// FieldKind discriminates the three field descriptor shapes.
type FieldKind int

const (
	KindInvalid   FieldKind = iota
	KindPrimitive           // String, Int, Enum{...}, *Uploader, ...
	KindReference           // any unrecognized type token, names another model
	KindObject              // nested name:{ ... } or name:[{ ... }] block
)

func (k FieldKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindReference:
		return "reference"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// ModelDescriptor is the parsed form of one model definition.
type ModelDescriptor struct {
	ModelName      string   `json:"modelName" yaml:"modelName"`
	CollectionName string   `json:"collectionName" yaml:"collectionName"`
	VarName        string   `json:"varName" yaml:"varName"`
	PluralVarName  string   `json:"pluralVarName" yaml:"pluralVarName"`
	Fields         []*Field `json:"fields" yaml:"fields"`
}

// Field is one entry of a model's (or nested object's) field list.
//
// Object fields only carry Name, IsArray and Fields. Primitive and reference
// fields carry the type triple and Modifiers; reference fields may also carry
// either ForeignKey or the association triple AssocModel/SelfKey/DestKey.
type Field struct {
	Name    string
	Kind    FieldKind
	IsArray bool

	Fields []*Field

	Type       string
	NativeType string
	APIType    string
	Modifiers  Modifiers

	ForeignKey string
	AssocModel string
	SelfKey    string
	DestKey    string
}

func (f *Field) IsObject() bool    { return f.Kind == KindObject }
func (f *Field) IsPrimitive() bool { return f.Kind == KindPrimitive }
func (f *Field) IsReference() bool { return f.Kind == KindReference }

// IsAssociation reports whether the reference is mediated by a join model.
func (f *Field) IsAssociation() bool { return f.AssocModel != "" }

type objectField struct {
	Name     string   `json:"name" yaml:"name"`
	IsObject bool     `json:"isObject" yaml:"isObject"`
	IsArray  bool     `json:"isArray" yaml:"isArray"`
	Fields   []*Field `json:"fields" yaml:"fields"`
}

type valueField struct {
	Name       string     `json:"name" yaml:"name"`
	Type       string     `json:"type" yaml:"type"`
	NativeType string     `json:"nativeType" yaml:"nativeType"`
	APIType    string     `json:"apiType" yaml:"apiType"`
	IsArray    bool       `json:"isArray" yaml:"isArray"`
	Primitive  bool       `json:"primitive" yaml:"primitive"`
	Modifiers  *Modifiers `json:"modifiers" yaml:"modifiers"`
	ForeignKey string     `json:"foreignKey,omitempty" yaml:"foreignKey,omitempty"`
	AssocModel string     `json:"assocModel,omitempty" yaml:"assocModel,omitempty"`
	SelfKey    string     `json:"selfKey,omitempty" yaml:"selfKey,omitempty"`
	DestKey    string     `json:"destKey,omitempty" yaml:"destKey,omitempty"`
}

func (f *Field) shape() any {
	if f.Kind == KindObject {
		fields := f.Fields
		if fields == nil {
			fields = []*Field{}
		}
		return objectField{Name: f.Name, IsObject: true, IsArray: f.IsArray, Fields: fields}
	}
	mods := f.Modifiers
	return valueField{
		Name:       f.Name,
		Type:       f.Type,
		NativeType: f.NativeType,
		APIType:    f.APIType,
		IsArray:    f.IsArray,
		Primitive:  f.Kind == KindPrimitive,
		Modifiers:  &mods,
		ForeignKey: f.ForeignKey,
		AssocModel: f.AssocModel,
		SelfKey:    f.SelfKey,
		DestKey:    f.DestKey,
	}
}

// MarshalJSON emits the object shape or the primitive/reference shape.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.shape())
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (f *Field) MarshalYAML() (any, error) {
	return f.shape(), nil
}

// Modifiers are orthogonal per-field annotations. Field order is the
// canonical output order.
type Modifiers struct {
	Match    string   `json:"match,omitempty" yaml:"match,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Index    bool     `json:"index,omitempty" yaml:"index,omitempty"`
	Unique   bool     `json:"unique,omitempty" yaml:"unique,omitempty"`
	Sparse   bool     `json:"sparse,omitempty" yaml:"sparse,omitempty"`
	Default  *Literal `json:"default,omitempty" yaml:"default,omitempty"`
	Enum     []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Uploader string   `json:"uploader,omitempty" yaml:"uploader,omitempty"`
}

// IsZero reports whether no modifier is set.
func (m Modifiers) IsZero() bool {
	return m.Match == "" && !m.Required && !m.Index && !m.Unique && !m.Sparse &&
		m.Default == nil && len(m.Enum) == 0 && m.Uploader == ""
}

// EnumValues returns the enum literals without their quotes.
func (m Modifiers) EnumValues() []string {
	if len(m.Enum) == 0 {
		return nil
	}
	out := make([]string, len(m.Enum))
	for i, v := range m.Enum {
		out[i] = Unquote(v)
	}
	return out
}
