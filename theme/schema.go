package theme

import (
	"github.com/invopop/jsonschema"
)

// Schema describes the persisted theme state.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&State{})
	s.Title = "Theme state"
	return s
}
