package grammar

// Construct is one node of a declarative binary-format description.
type Construct interface {
	// Name returns the declared name of the node, or "" if unnamed.
	// Only Renamed carries a name; naming a field means wrapping it.
	Name() string

	// Docs returns the documentation string attached to the node, or "".
	Docs() string

	// Kind reports the coarse category of the node.
	Kind() KindEnum
}

// Wrapper is implemented by constructs that occupy a position in the format
// tree but delegate their whole behavior to a single inner construct.
type Wrapper interface {
	Construct

	// Subcon returns the wrapped construct.
	Subcon() Construct
}

// base supplies the unnamed, undocumented defaults shared by most nodes.
type base struct{}

func (base) Name() string { return "" }
func (base) Docs() string { return "" }

// Field names a construct. It mirrors the `"name" / subcon` sugar of the
// original format library: naming is a Renamed wrapper, not a node attribute.
func Field(name string, sub Construct) *Renamed {
	return &Renamed{NewName: name, Sub: sub}
}

// CondFunc evaluates an if/else condition against a parse context.
type CondFunc func(*Context) bool

// KeyFunc evaluates a switch key against a parse context.
type KeyFunc func(*Context) any

// CountFunc evaluates a dynamic element count against a parse context.
type CountFunc func(*Context) int
