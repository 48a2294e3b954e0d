// Package manifest loads the resource table that feeds R class generation.
//
// # Format
//
// A manifest is YAML. IDs may be written in hex or decimal:
//
//	package: com.example.app
//	resources:
//	  attr:
//	    - name: colorPrimary
//	      id: 0x7f010000
//	      comment: Primary brand color.
//	  string:
//	    - name: app_name
//	      id: 0x7f030000
//	    - name: old_title
//	      id: 0x7f030001
//	      deprecated: true
//	styleables:
//	  - name: Theme
//	    attrs: [colorPrimary]
//
// # Validation
//
// ParseBytes and Load validate the table and return ValidationErrors listing
// every problem: missing or duplicate names, names that do not map to Java
// identifiers, invalid or reused IDs, and styleable attrs that are not
// declared under attr.
package manifest
