package model

type Kind int

const (
	KindInvalid   Kind = iota
	KindBuiltin        // string, int64, bool, etc.
	KindNamed          // a type declared in the generated file or a sibling model
	KindQualified      // a type from another package, e.g. multipart.FileHeader
	KindPointer        // *T
	KindSlice          // []T
)

// TypeRef is the Go type of a generated field.
type TypeRef struct {
	Kind    Kind
	PkgPath string // only for KindQualified
	Name    string // empty for KindPointer and KindSlice
	Elem    *TypeRef
}

func Builtin(name string) *TypeRef { return &TypeRef{Kind: KindBuiltin, Name: name} }
func Named(name string) *TypeRef   { return &TypeRef{Kind: KindNamed, Name: name} }
func Qualified(pkgPath, name string) *TypeRef {
	return &TypeRef{Kind: KindQualified, PkgPath: pkgPath, Name: name}
}
func PointerTo(elem *TypeRef) *TypeRef { return &TypeRef{Kind: KindPointer, Elem: elem} }
func SliceOf(elem *TypeRef) *TypeRef   { return &TypeRef{Kind: KindSlice, Elem: elem} }

// String renders the Go spelling, used in tests and log output.
func (t *TypeRef) String() string {
	if t == nil {
		return "UNKNOWN"
	}
	switch t.Kind {
	case KindPointer:
		return "*" + t.Elem.String()
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindQualified:
		return t.PkgPath + "." + t.Name
	}
	return t.Name
}
