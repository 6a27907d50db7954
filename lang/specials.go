package lang

// Specials holds OpenSCAD special variables that apply to the whole file.
// A nil field is not emitted.
type Specials struct {
	Fa       Value // $fa: minimum fragment angle
	Fs       Value // $fs: minimum fragment size
	Fn       Value // $fn: number of fragments
	T        Value // $t: animation step
	Vpr      Value // $vpr: viewport rotation angles in degrees
	Vpt      Value // $vpt: viewport translation
	Vpd      Value // $vpd: viewport camera distance
	Vpf      Value // $vpf: viewport camera field of view
	Children Value // $children: number of module children
	Preview  Value // $preview: true in preview, false in full render
}

// Assignments returns an assignment node for every special that is set, in
// declaration order.
func (s *Specials) Assignments() []*Node {
	var nodes []*Node

	for _, e := range []struct {
		name  string
		value Value
	}{
		{"$fa", s.Fa},
		{"$fs", s.Fs},
		{"$fn", s.Fn},
		{"$t", s.T},
		{"$vpr", s.Vpr},
		{"$vpt", s.Vpt},
		{"$vpd", s.Vpd},
		{"$vpf", s.Vpf},
		{"$children", s.Children},
		{"$preview", s.Preview},
	} {
		if e.value != nil {
			nodes = append(nodes, NewAssignment(e.name, e.value))
		}
	}

	return nodes
}

// Set assigns the special with the given name ("$fn" or "fn"). It reports
// false if name is not a known special.
func (s *Specials) Set(name string, v Value) bool {
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}

	switch name {
	case "fa":
		s.Fa = v
	case "fs":
		s.Fs = v
	case "fn":
		s.Fn = v
	case "t":
		s.T = v
	case "vpr":
		s.Vpr = v
	case "vpt":
		s.Vpt = v
	case "vpd":
		s.Vpd = v
	case "vpf":
		s.Vpf = v
	case "children":
		s.Children = v
	case "preview":
		s.Preview = v
	default:
		return false
	}

	return true
}
