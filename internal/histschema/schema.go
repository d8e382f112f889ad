// Package histschema provides the JSON schema describing the JSON
// encoding of b2histogram.Histogram.
package histschema

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema"
)

// URL is the identifier under which the histogram schema is registered.
const URL = "https://int08h.github.io/b2histogram/histogram.json"

// Histogram is the JSON schema for an encoded histogram.
const Histogram = `{
  "title": "Base-2 histogram",
  "type": "object",
  "required": ["buckets", "total"],
  "additionalProperties": false,
  "properties": {
    "total": {"type": "integer", "minimum": 0},
    "buckets": {
      "type": "array",
      "maxItems": 65,
      "items": {"$ref": "#/definitions/bucket"}
    }
  },
  "definitions": {
    "bucket": {
      "type": "object",
      "required": ["begin", "end", "count"],
      "additionalProperties": false,
      "properties": {
        "begin": {"type": "integer", "minimum": 0},
        "end": {"type": "integer", "minimum": 0},
        "count": {"type": "integer", "minimum": 1}
      }
    }
  }
}`

// Compile compiles and returns the histogram schema.
func Compile() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(URL, strings.NewReader(Histogram)); err != nil {
		return nil, errors.Wrap(err, "failed to add histogram schema")
	}
	schema, err := compiler.Compile(URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile histogram schema")
	}
	return schema, nil
}
