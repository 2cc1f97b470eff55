package model

type ApiField struct {
	Name    string // exported Go name
	Type    *TypeRef
	Tag     map[string]string // json, bson
	Comment string
}

type ApiStruct struct {
	Name    string
	Comment string
	Fields  []*ApiField
}

type EnumValue struct {
	Const   string // Go constant name
	Literal string // unquoted enum literal
}

type ApiEnum struct {
	Name    string
	Comment string
	Values  []EnumValue
}

// ApiFile is everything generated for one model, in emission order.
type ApiFile struct {
	Model   string
	Enums   []*ApiEnum
	Structs []*ApiStruct
}

// FindStruct returns the struct with the given name, or nil.
func (f *ApiFile) FindStruct(name string) *ApiStruct {
	for _, s := range f.Structs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FindEnum returns the enum with the given name, or nil.
func (f *ApiFile) FindEnum(name string) *ApiEnum {
	for _, e := range f.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}
