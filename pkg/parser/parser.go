package parser

import (
	core "github.com/cmmoran/modelspec/internal/parser"
	"github.com/cmmoran/modelspec/pkg/model"
)

var (
	ErrMissingModelName    = core.ErrMissingModelName
	ErrInvalidModelName    = core.ErrInvalidModelName
	ErrMalformedLine       = core.ErrMalformedLine
	ErrUnbalancedNesting   = core.ErrUnbalancedNesting
	ErrUnsupportedModifier = core.ErrUnsupportedModifier
)

// LineError reports the input line a parse failed on.
type LineError = core.LineError

// Parse converts a model definition into its descriptor. The first line is
// the model name, the rest are field lines:
//
//	name:String!^$:default     required, indexed, unique, with a default
//	tags:[String]              array
//	email:String/\S+@\S+/      match pattern
//	gender:Enum{male,female}   enum, typed <Model><Path><Field>
//	avatar:AvatarUploader      file upload
//	posts:[Post]:author        reference with a foreign key
//	courses:[Course]:Favorite.course.user
//	settings:{ ... }           nested object, or settings:[{ ... }] for arrays
//
// Parse holds no state between calls and is safe for concurrent use.
func Parse(lines ...string) (*model.ModelDescriptor, error) {
	return core.Parse(lines)
}
