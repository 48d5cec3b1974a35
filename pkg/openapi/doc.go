// Package openapi derives field definitions from the request body schemas of
// an OpenAPI 3 document.
//
// Each operation with an object request body becomes a form whose id is the
// operationId (or "method:path" when absent). Properties map to fields sorted
// by name; string formats, enums and length constraints pick the field type
// and constraints. A property may carry an x-formfield extension whose keys
// override the derived definition, using the same keys as definition files.
package openapi
