// Package view implements an interactive terminal previewer for scad model
// files.
//
// The previewer renders a model to OpenSCAD source and shows it in a
// scrollable pane. Typing "/" opens a fuzzy filter that narrows the pane to
// matching lines; when the filter names a builtin, its call signature is
// shown in the status bar. Pressing "e" opens the model in $EDITOR and
// re-renders it on exit, and "r" reloads it from disk.
//
// Filter queries are kept in a history file in the cache directory and can
// be recalled with the Up and Down keys.
package view
