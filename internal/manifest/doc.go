// Package manifest parses and validates templates.yaml, the manifest that
// lists the starter templates a catalog provides. Validation runs against the
// JSON Schema embedded from schema/catalog.schema.json.
package manifest
