// Package lang builds OpenSCAD source text from an in-memory tree.
//
// A [Document] collects declared variables and top-level entries. Entries
// are [Node] values of four kinds: modules with a child block, leaf objects,
// assignments, and modifiers that prefix a single child with one of the
// markers %, #, ! or *.
//
// # Building
//
// Nodes are usually built through a [Call], which captures a name and its
// arguments and then becomes a module or an object:
//
//	doc := lang.New()
//	wall := doc.AddVariable("wall", lang.Number(2), lang.WithSection("Options"))
//
//	doc.Add(lang.Module("difference").With(
//		lang.Module("cube", lang.Opts("size", lang.Vec(20, 20, 10))).Leaf(),
//		lang.Debug(lang.Module("cylinder", lang.Opts("r", wall, "h", 12)).Leaf()),
//	))
//
// [Resolve] maps an identifier to a constructor at run time. The reserved
// names bg, debug, root and disable yield modifier constructors; every
// other identifier yields a generic constructor.
//
// # Values
//
// Arguments are [Value]s: [Number], [Bool], [String], [List], [Record] and
// [*Variable]. A Record is written as name=value pairs and is only valid in
// argument position. A Variable is always written as its name, so a later
// [Variable.Set] changes the declaration but never the call sites.
//
// # Rendering
//
// [Document.Render] returns the banner, the special variables, the
// unsectioned variables, one block per section in alphabetical order, and
// the entries. Any failure aborts the render without partial output.
// [Document.WriteOutput] hands the rendered text to a [Sink].
package lang
