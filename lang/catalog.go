package lang

import "iter"

// Builtin describes an OpenSCAD module or primitive that ships with the
// renderer. The catalog is informational; [Resolve] accepts any identifier
// regardless of whether it appears here.
type Builtin struct {
	Name    string
	Kind    Kind // KindModule for operators that take children, else KindObject
	Params  []string
	Summary string
}

var builtins = []Builtin{
	// Boolean operations
	{"union", KindModule, nil, "combine all children"},
	{"difference", KindModule, nil, "subtract later children from the first"},
	{"intersection", KindModule, nil, "keep the overlap of all children"},

	// Transformations
	{"translate", KindModule, []string{"v"}, "move children by a vector"},
	{"rotate", KindModule, []string{"a", "v"}, "rotate children about an axis or by Euler angles"},
	{"scale", KindModule, []string{"v"}, "scale children by a vector"},
	{"resize", KindModule, []string{"newsize", "auto"}, "resize children to absolute dimensions"},
	{"mirror", KindModule, []string{"v"}, "mirror children across the plane through the origin normal to v"},
	{"multmatrix", KindModule, []string{"m"}, "apply an affine transformation matrix"},
	{"color", KindModule, []string{"c", "alpha"}, "color children by name, hex or RGBA vector"},
	{"offset", KindModule, []string{"r", "delta", "chamfer"}, "grow or shrink 2D children"},
	{"fill", KindModule, nil, "remove holes from 2D children"},
	{"hull", KindModule, nil, "convex hull of all children"},
	{"minkowski", KindModule, []string{"convexity"}, "Minkowski sum of all children"},
	{"projection", KindModule, []string{"cut"}, "project 3D children onto the XY plane"},

	// Extrusions
	{"linear_extrude", KindModule, []string{"height", "center", "convexity", "twist", "slices", "scale"}, "extrude 2D children along Z"},
	{"rotate_extrude", KindModule, []string{"angle", "convexity"}, "sweep 2D children around the Z axis"},

	// 3D primitives
	{"cube", KindObject, []string{"size", "center"}, "cube or box"},
	{"sphere", KindObject, []string{"r", "d"}, "sphere"},
	{"cylinder", KindObject, []string{"h", "r", "r1", "r2", "d", "d1", "d2", "center"}, "cylinder or cone"},
	{"polyhedron", KindObject, []string{"points", "faces", "convexity"}, "closed solid from points and faces"},

	// 2D primitives
	{"square", KindObject, []string{"size", "center"}, "square or rectangle"},
	{"circle", KindObject, []string{"r", "d"}, "circle"},
	{"polygon", KindObject, []string{"points", "paths", "convexity"}, "polygon from points"},
	{"text", KindObject, []string{"text", "size", "font", "halign", "valign", "spacing", "direction", "language", "script"}, "2D text"},
}

// Builtins returns an iterator over the builtin catalog in a fixed order:
// boolean operations, transformations, extrusions, then 3D and 2D
// primitives.
func Builtins() iter.Seq[Builtin] {
	return func(yield func(Builtin) bool) {
		for _, b := range builtins {
			if !yield(b) {
				return
			}
		}
	}
}

// LookupBuiltin returns the catalog entry for name.
func LookupBuiltin(name string) (Builtin, bool) {
	for _, b := range builtins {
		if b.Name == name {
			return b, true
		}
	}

	return Builtin{}, false
}

// Signature returns the builtin's call form, such as "cube(size, center)".
func (b Builtin) Signature() string {
	s := b.Name + "("

	for i, p := range b.Params {
		if i > 0 {
			s += ", "
		}

		s += p
	}

	return s + ")"
}
