package lang

// Kind identifies the variant of a [Node].
type Kind int

const (
	// KindModule is a block construct with children: name(args) { ... }.
	KindModule Kind = iota

	// KindObject is a terminal statement: name(args);.
	KindObject

	// KindModifier prefixes a single child with a marker symbol.
	KindModifier

	// KindAssignment is a variable assignment statement: name = value;.
	KindAssignment
)

// String returns a string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "Module"

	case KindObject:
		return "Object"

	case KindModifier:
		return "Modifier"

	case KindAssignment:
		return "Assignment"

	default:
		return "Unknown"
	}
}

// Node is a single statement or block in the generated source.
//
// Exactly the fields relevant to Kind are set:
//
//	KindModule:     Name, Args, Children
//	KindObject:     Name, Args
//	KindModifier:   Symbol, Child
//	KindAssignment: Name, Args (a single assigned value)
//
// Nodes are built bottom-up from already constructed children and are never
// modified by this package once created.
type Node struct {
	Kind     Kind
	Name     string
	Args     []Value
	Children []*Node
	Symbol   Modifier
	Child    *Node
}

// NewModule returns a module node.
func NewModule(name string, args []Value, children ...*Node) *Node {
	return &Node{
		Kind:     KindModule,
		Name:     name,
		Args:     args,
		Children: children,
	}
}

// NewObject returns an object (leaf) node.
func NewObject(name string, args ...Value) *Node {
	return &Node{
		Kind: KindObject,
		Name: name,
		Args: args,
	}
}

// NewModifier returns a node that prefixes child with symbol.
func NewModifier(symbol Modifier, child *Node) *Node {
	return &Node{
		Kind:   KindModifier,
		Symbol: symbol,
		Child:  child,
	}
}

// NewAssignment returns an assignment statement node.
func NewAssignment(name string, value Value) *Node {
	return &Node{
		Kind: KindAssignment,
		Name: name,
		Args: []Value{value},
	}
}

// Modifier is a prefix marker that changes how the renderer treats a node.
type Modifier string

// Prefix modifiers understood by OpenSCAD.
const (
	ModBackground Modifier = "%"
	ModDebug      Modifier = "#"
	ModRoot       Modifier = "!"
	ModDisable    Modifier = "*"
)

// Name returns the short name of m used in model files and tree exports:
// "bg", "debug", "root" or "disable". Unknown modifiers return their symbol.
func (m Modifier) Name() string {
	switch m {
	case ModBackground:
		return "bg"
	case ModDebug:
		return "debug"
	case ModRoot:
		return "root"
	case ModDisable:
		return "disable"
	default:
		return string(m)
	}
}
