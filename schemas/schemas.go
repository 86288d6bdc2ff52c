// Package schemas holds the embedded JSON Schemas used to validate YAML
// input files before they are parsed into typed structures.
package schemas

// SignatureSchemaJSON is the JSON Schema for signature YAML files: a named
// gene signature split into up-regulated and down-regulated gene lists.
const SignatureSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Gene signature",
  "type": "object",
  "required": ["up", "down"],
  "additionalProperties": false,
  "properties": {
    "pathway": {
      "type": "string",
      "minLength": 1,
      "description": "Name of the pathway this signature characterizes."
    },
    "up": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 },
      "description": "Genes up-regulated when the pathway is active."
    },
    "down": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 },
      "description": "Genes down-regulated when the pathway is active."
    }
  }
}`
