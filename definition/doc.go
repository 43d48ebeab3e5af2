// Package definition provides YAML form definitions, the registry of named
// transformers and validators they refer to, definition checks and JSON
// Schema export.
//
// # Schema Overview
//
// A definition file has the following structure:
//
//	version: "1"
//	forms:
//	  - name: person
//	    data_type: person
//	    elements:
//	      - name: last_name
//	        type: text
//	        required: true
//	        validators:
//	          - name: length
//	            max: 64
//	      - name: birthday
//	        type: date
//	      - name: gender
//	        type: choice
//	        choices:
//	          - {label: Female, value: f}
//	          - {label: Male, value: m}
//	      - name: addresses
//	        type: collection
//	        min_elements: 1
//	        prototype:
//	          type: group
//	          data_type: address
//	          elements:
//	            - {name: city, type: text}
//	            - {name: zip, type: text, validators: [not_empty]}
//	      - name: tags
//	        type: collection
//	        transformers: [array_filter, array_values]
//	        prototype: {type: text}
//
// # Element types
//
// Field types are those of the form package (text, textarea, email, url,
// password, hidden, search, tel, number, range, color, date, time,
// datetime, checkbox) plus choice, group and collection.
//
// # Named transformers and validators
//
// "transformers" takes one name or a list; each name resolves through the
// Registry, builtins included. A validator is either a bare name or a
// mapping with a name, an optional message and parameters:
//
//	validators:
//	  - not_empty
//	  - {name: pattern, pattern: "^[0-9]{5}$", message: "Invalid zip code."}
//
// Check reports every problem of a file as diagnostics, Build turns a form
// definition into a form tree, and Schema describes the values a form
// accepts as a JSON Schema.
package definition
