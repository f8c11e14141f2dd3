package grammar

// Struct is a fixed sequence of fields, each usually a Renamed construct.
type Struct struct {
	base
	Fields []Construct
}

func (*Struct) Kind() KindEnum { return KindStruct }

// Array repeats Sub a number of times. The count is either the static Count
// or, when CountOf is set, evaluated against the parse context; CountDesc is
// the display text of a dynamic count.
type Array struct {
	base
	Count     int
	CountOf   CountFunc
	CountDesc string
	Sub       Construct
}

func (*Array) Kind() KindEnum      { return KindArray }
func (a *Array) Subcon() Construct { return a.Sub }

// GreedyRange repeats Sub until the input is exhausted; the element count is
// known only from the parsed object.
type GreedyRange struct {
	base
	Sub Construct
}

func (*GreedyRange) Kind() KindEnum      { return KindGreedyRange }
func (g *GreedyRange) Subcon() Construct { return g.Sub }

// IfThenElse selects Then or Else depending on Cond evaluated against the
// parse context. CondDesc is the display text of the condition.
type IfThenElse struct {
	base
	Cond     CondFunc
	CondDesc string
	Then     Construct
	Else     Construct
}

func (*IfThenElse) Kind() KindEnum { return KindIfThenElse }

// Case is one keyed branch of a Switch.
type Case struct {
	Key any
	Sub Construct
}

// Switch selects one of Cases by evaluating Key against the parse context,
// falling back to Default (which may be nil). Cases keep declaration order.
type Switch struct {
	base
	Key     KeyFunc
	KeyDesc string
	Cases   []Case
	Default Construct
}

func (*Switch) Kind() KindEnum { return KindSwitch }

// Renamed gives its wrapped construct a name and optionally new docs.
type Renamed struct {
	NewName string
	NewDocs string
	Sub     Construct
}

func (r *Renamed) Name() string      { return r.NewName }
func (r *Renamed) Docs() string      { return r.NewDocs }
func (*Renamed) Kind() KindEnum      { return KindRenamed }
func (r *Renamed) Subcon() Construct { return r.Sub }
