package report

// Schema is the JSON Schema (Draft 2020-12) for calc JSON output. It
// documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/calc/report.schema.json",
  "title": "calc Report",
  "description": "Output schema for calc --format=json",
  "type": "object",
  "required": ["version", "calculations", "metadata"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "calculations": {
      "type": "array",
      "items": { "$ref": "#/$defs/Calculation" }
    },
    "metadata": { "$ref": "#/$defs/Metadata" }
  },
  "$defs": {
    "Calculation": {
      "type": "object",
      "required": ["id", "expression", "a", "b", "mode"],
      "properties": {
        "id": {
          "type": "string",
          "pattern": "^calc-[0-9a-f]{8}$",
          "description": "Stable identifier derived from the inputs"
        },
        "operation": {
          "type": "string",
          "enum": ["multiply", "divide"]
        },
        "expression": {
          "type": "string",
          "description": "Input expression or canonical 'a op b' rendering"
        },
        "a": { "type": "string" },
        "b": { "type": "string" },
        "mode": { "$ref": "#/$defs/Mode" },
        "result": {
          "type": "string",
          "description": "Formatted result; absent when the calculation failed"
        },
        "error": {
          "type": "string",
          "description": "Failure message; absent on success"
        },
        "error_kind": {
          "type": "string",
          "enum": [
            "division_by_zero", "invalid_operand",
            "invalid_expression", "unknown_operation", "internal"
          ]
        }
      },
      "oneOf": [
        { "required": ["result"], "not": { "required": ["error"] } },
        { "required": ["error", "error_kind"], "not": { "required": ["result"] } }
      ]
    },
    "Mode": {
      "type": "string",
      "enum": ["float", "decimal"]
    },
    "Metadata": {
      "type": "object",
      "required": ["calc_version", "go_version", "mode", "duration_ms"],
      "properties": {
        "calc_version": { "type": "string" },
        "go_version": { "type": "string" },
        "mode": { "$ref": "#/$defs/Mode" },
        "duration_ms": {
          "type": "integer",
          "description": "Evaluation duration in milliseconds"
        },
        "timestamp": {
          "type": "string",
          "format": "date-time"
        }
      }
    }
  }
}`
