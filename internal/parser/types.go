package parser

import (
	"strings"

	"github.com/cmmoran/modelspec/pkg/model"
)

const (
	enumPrefix     = "Enum{"
	enumSuffix     = "}"
	uploaderSuffix = "Uploader"
	fileType       = "File"
	stringType     = "String"
)

type typeInfo struct {
	native string
	api    string
}

// primitiveTypes maps DSL type tokens to their native and API types. It is
// never written after init.
var primitiveTypes = map[string]typeInfo{
	"String":   {native: "String", api: "String"},
	"Int":      {native: "Number", api: "Int"},
	"Number":   {native: "Number", api: "Int"},
	"Float":    {native: "Number", api: "Float"},
	"Boolean":  {native: "Boolean", api: "Boolean"},
	"ID":       {native: "ObjectId", api: "ID"},
	"ObjectId": {native: "ObjectId", api: "ID"},
}

type resolvedType struct {
	typ      string
	native   string
	api      string
	kind     model.FieldKind
	uploader string
}

// resolveType looks up a non-enum type token. Uploader tokens become File
// primitives; anything unknown is a reference to another model.
func resolveType(token string) resolvedType {
	if ti, ok := primitiveTypes[token]; ok {
		return resolvedType{typ: token, native: ti.native, api: ti.api, kind: model.KindPrimitive}
	}
	if strings.HasSuffix(token, uploaderSuffix) {
		return resolvedType{typ: fileType, native: fileType, api: fileType, kind: model.KindPrimitive, uploader: token}
	}
	return resolvedType{typ: token, native: token, api: token, kind: model.KindReference}
}

func isEnumToken(token string) bool {
	return strings.HasPrefix(token, enumPrefix) && strings.HasSuffix(token, enumSuffix)
}

// parseEnumValues splits Enum{a,b,c} into its quoted literals, in order.
func parseEnumValues(token string) ([]string, bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(token, enumPrefix), enumSuffix)
	if strings.TrimSpace(body) == "" {
		return nil, false
	}
	parts := strings.Split(body, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, false
		}
		values = append(values, model.Quote(p))
	}
	return values, true
}
