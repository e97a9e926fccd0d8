// Package schemas holds the JSON Schemas shipped with the consent generator.
package schemas

import _ "embed"

// Roster is the JSON Schema of a JSON roster file
//
//go:embed roster.schema.json
var Roster string
