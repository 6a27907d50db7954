// Package model loads declarative model files and builds them into
// [lang.Document] values.
//
// A model is YAML (JSON is accepted as well) with optional indent, banner,
// specials, variables and entries keys:
//
//	specials: {$fn: 64}
//	variables:
//	  - {name: wall, value: 2, section: Options, comment: Wall thickness}
//	  - {name: outer, value: "=wall * 2 + 10"}
//	entries:
//	  - call: translate
//	    args: [[10, 0, 0]]
//	    children:
//	      - {call: cube, args: ["@outer"]}
//	  - {modifier: debug, child: {call: sphere, args: [{r: "@wall"}]}}
//
// Two string prefixes are interpreted. "@name" refers to a variable
// declared earlier in the file and is written by name. "=expr" is an
// expr-lang expression over the values of earlier variables; its result is
// written literally. A doubled prefix ("@@", "==") escapes a literal
// leading character.
//
// An entry with call is a module if it has children or sets block, and an
// object otherwise. An entry with modifier takes one of bg, debug, root or
// disable and wraps a single child. An entry with assign writes a
// variable assignment statement.
//
// [Read] caches decoded models by content hash, so reading the same bytes
// twice decodes them once.
package model
