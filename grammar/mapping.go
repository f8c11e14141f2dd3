package grammar

// Symbol maps one integer code to its symbolic name.
type Symbol struct {
	Value int64
	Name  string
}

// Enum wraps an integer construct with a symbol table. Symbols keep
// declaration order so choice editors stay stable.
type Enum struct {
	base
	Sub     Construct
	Symbols []Symbol
}

func (*Enum) Kind() KindEnum      { return KindEnumerated }
func (e *Enum) Subcon() Construct { return e.Sub }

// SymbolName returns the symbolic name for code v.
func (e *Enum) SymbolName(v int64) (string, bool) {
	for _, s := range e.Symbols {
		if s.Value == v {
			return s.Name, true
		}
	}

	return "", false
}

// Flag is one named bit of a FlagsEnum.
type Flag struct {
	Name  string
	Value int64
}

// FlagsEnum wraps an integer construct with a set of named bits. The parsed
// value is a mapping from flag name to bool.
type FlagsEnum struct {
	base
	Sub   Construct
	Flags []Flag
}

func (*FlagsEnum) Kind() KindEnum      { return KindFlagsEnum }
func (f *FlagsEnum) Subcon() Construct { return f.Sub }
