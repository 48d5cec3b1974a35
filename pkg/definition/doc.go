// Package definition loads named field sets from JSON, YAML or TOML files and
// validates or renders whole submissions against them.
//
// A definition file holds one or more forms:
//
//	forms:
//	  signup:
//	    fields:
//	      - id: email
//	        type: email
//	        label: Email
//	        required: true
//	      - id: title
//	        type: select
//	        choices: [Mr, Mrs, {Doctor: dr}]
//
// Keys without a dedicated meaning (placeholder, autofocus, step...) are
// passed through as HTML attributes.
package definition
