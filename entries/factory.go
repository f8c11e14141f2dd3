package entries

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/Ircama/construct-editor/grammar"
)

// Factory errors
var (
	// ErrUnsupportedConstruct indicates a construct no registration and no
	// fallback can build an entry for.
	ErrUnsupportedConstruct = errors.New("unsupported construct")
)

func errNotWrapper(con grammar.Construct) error {
	return fmt.Errorf("%w: %T registered against the wrong entry", ErrUnsupportedConstruct, con)
}

// Ctor builds the entry variant for one construct category.
type Ctor func(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error)

// fallbackRegistration is one (predicate, constructor) pair of the ordered
// fallback list.
type fallbackRegistration struct {
	match func(grammar.Construct) bool
	ctor  Ctor
}

// Factory maps construct runtime types to entry constructors. Lookup order:
// exact type match, registered fallback predicates in registration order,
// then the generic Base entry for any remaining non-nil construct. The
// registry is open: new construct kinds plug in without touching existing
// variants.
type Factory struct {
	exact     map[reflect.Type]Ctor
	fallbacks []fallbackRegistration
}

// NewFactory creates a factory with the default construct registrations.
func NewFactory() *Factory {
	f := &Factory{exact: make(map[reflect.Type]Ctor)}

	// bytes and bits
	f.Register(reflect.TypeFor[*grammar.Bytes](), newBytes)

	// integers and floats
	f.Register(reflect.TypeFor[*grammar.FormatField](), newFormatField)
	f.Register(reflect.TypeFor[*grammar.BytesInteger](), newBytesInteger)
	f.Register(reflect.TypeFor[*grammar.BitsInteger](), newBitsInteger)

	// mappings
	f.Register(reflect.TypeFor[*grammar.Enum](), newEnum)
	f.Register(reflect.TypeFor[*grammar.FlagsEnum](), newFlagsEnum)

	// structures, arrays and repeaters
	f.Register(reflect.TypeFor[*grammar.Struct](), newStruct)
	f.Register(reflect.TypeFor[*grammar.Array](), newArray)
	f.Register(reflect.TypeFor[*grammar.GreedyRange](), newGreedyRange)

	// specials
	f.Register(reflect.TypeFor[*grammar.Renamed](), newRenamed)

	// miscellaneous
	f.Register(reflect.TypeFor[*grammar.Const](), newTransparent)
	f.Register(reflect.TypeFor[*grammar.Default](), newTransparent)
	f.Register(reflect.TypeFor[*grammar.Computed](), newComputed)
	f.Register(reflect.TypeFor[*grammar.TimestampAdapter](), newTimestamp)

	// conditional
	f.Register(reflect.TypeFor[*grammar.IfThenElse](), newIfThenElse)
	f.Register(reflect.TypeFor[*grammar.Switch](), newSwitch)

	// stream manipulation
	f.Register(reflect.TypeFor[*grammar.Pointer](), newTransparent)
	f.Register(reflect.TypeFor[*grammar.Peek](), newPeek)
	f.Register(reflect.TypeFor[*grammar.Seek](), newSeek)
	f.Register(reflect.TypeFor[*grammar.Tell](), newTell)
	f.Register(reflect.TypeFor[*grammar.Pass](), newPass)

	// tunneling
	f.Register(reflect.TypeFor[*grammar.RawCopy](), newRawCopy)
	f.Register(reflect.TypeFor[*grammar.Transformed](), newTransparent)
	f.Register(reflect.TypeFor[*grammar.Restreamed](), newTransparent)

	// Any otherwise unmapped construct that delegates to a single inner one
	// behaves as a transparent wrapper.
	f.RegisterFallback(func(con grammar.Construct) bool {
		_, ok := con.(grammar.Wrapper)
		return ok
	}, newTransparent)

	return f
}

// Register binds an exact construct runtime type to an entry constructor,
// replacing any previous binding.
func (f *Factory) Register(t reflect.Type, ctor Ctor) {
	f.exact[t] = ctor
}

// RegisterFallback appends a (predicate, constructor) pair to the ordered
// fallback list. Earlier registrations win: registration order encodes
// priority.
func (f *Factory) RegisterFallback(match func(grammar.Construct) bool, ctor Ctor) {
	f.fallbacks = append(f.fallbacks, fallbackRegistration{match: match, ctor: ctor})
}

// New builds the entry tree for con under parent.
func (f *Factory) New(m Model, parent Entry, con grammar.Construct) (Entry, error) {
	if con == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedConstruct)
	}

	if ctor, ok := f.exact[reflect.TypeOf(con)]; ok {
		return ctor(f, m, parent, con)
	}

	for _, reg := range f.fallbacks {
		if reg.match(con) {
			return reg.ctor(f, m, parent, con)
		}
	}

	// Generic fallback: any construct renders as a plain leaf.
	e := &Base{}
	*e = NewBase(f, m, parent, con)
	e.Bind(e)

	return e, nil
}
