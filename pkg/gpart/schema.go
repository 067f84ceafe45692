package gpart

import (
	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON Schema of Document. Fields without omitempty are
// required; renderer and the curve fields of a range are optional.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(Document))
	schema.Title = "GPart Particle Effect"
	schema.Description = "Particle effect definition exported for runtimes without a native particle format (schema version " + Version + ")."
	return schema
}
