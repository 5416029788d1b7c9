// Package batch loads YAML batch files: a list of patterns with shared
// default settings and optional per-pattern overrides.
//
// Example:
//
//	version: "1"
//	defaults:
//	  target: ES2018
//	  unicode: auto
//	patterns:
//	  - name: greeting
//	    source: '(?<w>hi)\k<w>'
//	    target: ES2009
//	    tags: [demo]
//
// A file becomes a list of transpile jobs with Jobs.
package batch
