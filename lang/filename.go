package lang

import "strings"

// Extension is the file name extension of OpenSCAD source files.
const Extension = ".scad"

// sourceSuffixes are stripped, in order, by [ScadFilename].
var sourceSuffixes = []string{".ts", ".js", ".go", ".yaml", ".yml", ".json"}

// ScadFilename derives an output file name from the name of the source that
// produced it: known source suffixes are removed (case-insensitively, each
// at most once) and [Extension] is appended.
//
//	ScadFilename("bracket.go")   // "bracket.scad"
//	ScadFilename("model.YAML")   // "model.scad"
//	ScadFilename("notes.txt")    // "notes.txt.scad"
func ScadFilename(src string) string {
	for _, suffix := range sourceSuffixes {
		if n := len(src) - len(suffix); n >= 0 &&
			strings.EqualFold(src[n:], suffix) {
			src = src[:n]
		}
	}

	return src + Extension
}
