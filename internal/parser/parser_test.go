package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/modelspec/pkg/model"
)

func boolField(name string, def bool) *model.Field {
	return &model.Field{
		Name: name, Kind: model.KindPrimitive, Type: "Boolean", NativeType: "Boolean", APIType: "Boolean",
		Modifiers: model.Modifiers{Required: true, Default: model.BoolLiteral(def)},
	}
}

func TestParse(ttt *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []*model.Field
	}{
		{
			name:  "nested object",
			lines: []string{"User", "settings:{", "sms:Boolean!:true", "}", "name:String"},
			want: []*model.Field{
				{Name: "settings", Kind: model.KindObject, Fields: []*model.Field{boolField("sms", true)}},
				{Name: "name", Kind: model.KindPrimitive, Type: "String", NativeType: "String", APIType: "String"},
			},
		},
		{
			name:  "deep nesting",
			lines: []string{"User", "settings:[{", "pn:{", "ipad:Boolean!:true", "}", "webSocket:Boolean!:false", "}]"},
			want: []*model.Field{
				{Name: "settings", Kind: model.KindObject, IsArray: true, Fields: []*model.Field{
					{Name: "pn", Kind: model.KindObject, Fields: []*model.Field{boolField("ipad", true)}},
					boolField("webSocket", false),
				}},
			},
		},
		{
			name:  "empty block",
			lines: []string{"User", "meta:{", "}"},
			want: []*model.Field{
				{Name: "meta", Kind: model.KindObject, Fields: []*model.Field{}},
			},
		},
		{
			name:  "blank lines and padding are skipped",
			lines: []string{" User ", "", "  info:{  ", "gender:Enum{male,female}", " } "},
			want: []*model.Field{
				{Name: "info", Kind: model.KindObject, Fields: []*model.Field{
					{
						Name: "gender", Kind: model.KindPrimitive, Type: "UserInfoGender", NativeType: "String", APIType: "UserInfoGender",
						Modifiers: model.Modifiers{Enum: []string{"'male'", "'female'"}},
					},
				}},
			},
		},
		{
			name:  "spaces after the colon",
			lines: []string{"User", "info : {", "age: Int", "}", "tags: [ {", "label:String", "}]"},
			want: []*model.Field{
				{Name: "info", Kind: model.KindObject, Fields: []*model.Field{
					{Name: "age", Kind: model.KindPrimitive, Type: "Int", NativeType: "Number", APIType: "Int"},
				}},
				{Name: "tags", Kind: model.KindObject, IsArray: true, Fields: []*model.Field{
					{Name: "label", Kind: model.KindPrimitive, Type: "String", NativeType: "String", APIType: "String"},
				}},
			},
		},
		{
			name:  "enum under array block",
			lines: []string{"Building", "users:[{", "gender:Enum{male,female}!", "}]"},
			want: []*model.Field{
				{Name: "users", Kind: model.KindObject, IsArray: true, Fields: []*model.Field{
					{
						Name: "gender", Kind: model.KindPrimitive, Type: "BuildingUserGender", NativeType: "String", APIType: "BuildingUserGender",
						Modifiers: model.Modifiers{Enum: []string{"'male'", "'female'"}, Required: true},
					},
				}},
			},
		},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(tt.want, got.Fields))
		})
	}
}

func TestParseErrors(ttt *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantErr  error
		wantLine int
	}{
		{name: "empty input", lines: nil, wantErr: ErrMissingModelName},
		{name: "blank model name", lines: []string{"  "}, wantErr: ErrMissingModelName},
		{name: "structural model name", lines: []string{"{"}, wantErr: ErrInvalidModelName, wantLine: 1},
		{name: "model name with colon", lines: []string{"name:String"}, wantErr: ErrInvalidModelName, wantLine: 1},
		{name: "lower-case model name", lines: []string{"user", "a:Int"}, wantErr: ErrInvalidModelName, wantLine: 1},
		{name: "keyword model name", lines: []string{"func", "a:Int"}, wantErr: ErrInvalidModelName, wantLine: 1},
		{name: "model name starting with underscore", lines: []string{"_User"}, wantErr: ErrInvalidModelName, wantLine: 1},
		{name: "malformed line", lines: []string{"User", "name:String", "age"}, wantErr: ErrMalformedLine, wantLine: 3},
		{name: "close without open", lines: []string{"User", "}"}, wantErr: ErrUnbalancedNesting, wantLine: 2},
		{name: "array close without open", lines: []string{"User", "name:String", "}]"}, wantErr: ErrUnbalancedNesting, wantLine: 3},
		{name: "unclosed block", lines: []string{"User", "info:{", "a:String"}, wantErr: ErrUnbalancedNesting, wantLine: 2},
		{name: "unclosed inner block", lines: []string{"User", "a:{", "b:[{", "}]"}, wantErr: ErrUnbalancedNesting, wantLine: 2},
		{name: "mismatched close", lines: []string{"User", "a:[{", "x:Int", "}"}, wantErr: ErrUnbalancedNesting, wantLine: 4},
		{name: "unsupported modifier", lines: []string{"User", "x:Int%"}, wantErr: ErrUnsupportedModifier, wantLine: 2},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			require.Nil(t, got)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantLine == 0 {
				return
			}
			var le *LineError
			require.True(t, errors.As(err, &le))
			require.Equal(t, tt.wantLine, le.Line)
		})
	}
}

func depth(fields []*model.Field) int {
	d := 0
	for _, f := range fields {
		if f.IsObject() {
			if n := 1 + depth(f.Fields); n > d {
				d = n
			}
		}
	}
	return d
}

func TestParseDepth(t *testing.T) {
	for n := 0; n <= 64; n += 8 {
		lines := []string{"Deep"}
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				lines = append(lines, fmt.Sprintf("level%d:{", i))
			} else {
				lines = append(lines, fmt.Sprintf("level%d:[{", i))
			}
		}
		lines = append(lines, "leaf:Enum{a,b}")
		for i := n - 1; i >= 0; i-- {
			if i%2 == 0 {
				lines = append(lines, "}")
			} else {
				lines = append(lines, "}]")
			}
		}
		got, err := Parse(lines)
		require.NoError(t, err)
		require.Equal(t, n, depth(got.Fields))
	}
}

func TestParseIdempotent(t *testing.T) {
	lines := []string{
		"User",
		"name:[String]!^$:No Name",
		"settings:[{",
		"level:Enum{A+,A,A-}!",
		"}]",
		"courses:[Course]:Favorite.course.user",
	}
	a, err := Parse(lines)
	require.NoError(t, err)
	b, err := Parse(lines)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(a, b))
	require.NotSame(t, a, b)
}
