// Package bank reads question banks from YAML or JSON files and imports them
// through the question service.
//
// A bank file holds a single document:
//
//	questions:
//	  - title: "2 + 2?"
//	    points: 2
//	    max_selections: 1
//	    choices:
//	      - text: "4"
//	        correct: true
//	      - text: "5"
//
// Points and max_selections are optional and fall back to the service
// defaults. Unknown fields are rejected.
package bank
