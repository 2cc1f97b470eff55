package render

import (
	"github.com/dave/jennifer/jen"

	"github.com/cmmoran/modelspec/internal/model"
)

const header = "Code generated by modelspec. DO NOT EDIT."

// NewFile renders an ApiFile. importPath may be empty when the output
// directory is not inside a module.
func NewFile(f *model.ApiFile, importPath, pkgName string) *jen.File {
	var jf *jen.File
	if importPath != "" {
		jf = jen.NewFilePathName(importPath, pkgName)
	} else {
		jf = jen.NewFile(pkgName)
	}
	jf.HeaderComment(header)

	for _, e := range f.Enums {
		renderEnum(jf, e)
	}
	for _, s := range f.Structs {
		renderStruct(jf, s)
	}
	return jf
}

func renderEnum(jf *jen.File, e *model.ApiEnum) {
	if e.Comment != "" {
		jf.Comment(e.Comment)
	}
	jf.Type().Id(e.Name).String()

	jf.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range e.Values {
			g.Id(v.Const).Id(e.Name).Op("=").Lit(v.Literal)
		}
	})

	jf.Comment("Values returns every " + e.Name + " in declaration order.")
	jf.Func().Params(jen.Id(e.Name)).Id("Values").Params().Index().Id(e.Name).Block(
		jen.Return(jen.Index().Id(e.Name).ValuesFunc(func(g *jen.Group) {
			for _, v := range e.Values {
				g.Id(v.Const)
			}
		})),
	)

	jf.Comment("Valid reports whether v is one of the declared values.")
	jf.Func().Params(jen.Id("v").Id(e.Name)).Id("Valid").Params().Bool().Block(
		jen.For(jen.List(jen.Id("_"), jen.Id("x")).Op(":=").Range().Id("v").Dot("Values").Call()).Block(
			jen.If(jen.Id("x").Op("==").Id("v")).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
}

func renderStruct(jf *jen.File, s *model.ApiStruct) {
	if s.Comment != "" {
		jf.Comment(s.Comment)
	}
	jf.Type().Id(s.Name).StructFunc(func(g *jen.Group) {
		for _, f := range s.Fields {
			st := g.Id(f.Name).Add(typeExpr(f.Type))
			if len(f.Tag) > 0 {
				st.Tag(f.Tag)
			}
			if f.Comment != "" {
				st.Comment(f.Comment)
			}
		}
	})
}

func typeExpr(t *model.TypeRef) jen.Code {
	if t == nil {
		return jen.Interface()
	}
	switch t.Kind {
	case model.KindPointer:
		return jen.Op("*").Add(typeExpr(t.Elem))
	case model.KindSlice:
		return jen.Index().Add(typeExpr(t.Elem))
	case model.KindQualified:
		return jen.Qual(t.PkgPath, t.Name)
	}
	return jen.Id(t.Name)
}
