package entries

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
)

// formatInfo describes one struct-style format code.
type formatInfo struct {
	Label   string
	Integer bool
	Bits    int
	Signed  bool
}

// formatFieldInfos maps format strings to display parameters, mirroring the
// naming convention of the format library (Int<bits><u/s><b/l/n>).
var formatFieldInfos = map[string]formatInfo{
	">B": {"Int8ub", true, 8, false},
	">H": {"Int16ub", true, 16, false},
	">L": {"Int32ub", true, 32, false},
	">Q": {"Int64ub", true, 64, false},
	">b": {"Int8sb", true, 8, true},
	">h": {"Int16sb", true, 16, true},
	">l": {"Int32sb", true, 32, true},
	">q": {"Int64sb", true, 64, true},
	"<B": {"Int8ul", true, 8, false},
	"<H": {"Int16ul", true, 16, false},
	"<L": {"Int32ul", true, 32, false},
	"<Q": {"Int64ul", true, 64, false},
	"<b": {"Int8sl", true, 8, true},
	"<h": {"Int16sl", true, 16, true},
	"<l": {"Int32sl", true, 32, true},
	"<q": {"Int64sl", true, 64, true},
	"=B": {"Int8un", true, 8, false},
	"=H": {"Int16un", true, 16, false},
	"=L": {"Int32un", true, 32, false},
	"=Q": {"Int64un", true, 64, false},
	"=b": {"Int8sn", true, 8, true},
	"=h": {"Int16sn", true, 16, true},
	"=l": {"Int32sn", true, 32, true},
	"=q": {"Int64sn", true, 64, true},
	">e": {Label: "Float16b"},
	"<e": {Label: "Float16l"},
	"=e": {Label: "Float16n"},
	">f": {Label: "Float32b"},
	"<f": {Label: "Float32l"},
	"=f": {Label: "Float32n"},
	">d": {Label: "Float64b"},
	"<d": {Label: "Float64l"},
	"=d": {Label: "Float64n"},
}

// FormatField is a fixed-width integer or float leaf.
type FormatField struct {
	Base
	con   *grammar.FormatField
	info  formatInfo
	known bool
}

func newFormatField(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	ff, ok := con.(*grammar.FormatField)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &FormatField{con: ff}
	e.Base = NewBase(f, m, parent, con)
	e.Bind(e)
	e.info, e.known = formatFieldInfos[ff.Fmt]

	return e, nil
}

func (e *FormatField) TypeLabel() string {
	if e.known {
		return e.info.Label
	}

	return fmt.Sprintf("FormatField[%q]", e.con.Fmt)
}

func (e *FormatField) ValueLabel() string {
	if !e.known || !e.info.Integer {
		return plainLabel(e.Obj())
	}

	return intLabel(e.model.IntegerFormat(), e.Obj())
}

func (e *FormatField) Panel() Panel {
	if e.known && e.info.Integer {
		return IntegerPanel{Text: e.ValueLabel()}
	}

	return e.Base.Panel()
}

// BytesInteger is an integer leaf stored in whole bytes.
type BytesInteger struct {
	Base
	con *grammar.BytesInteger
}

func newBytesInteger(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	bi, ok := con.(*grammar.BytesInteger)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &BytesInteger{con: bi}
	e.Base = NewBase(f, m, parent, con)
	e.Bind(e)

	return e, nil
}

func (e *BytesInteger) TypeLabel() string {
	// 24-bit integers have conventional short names.
	if e.con.Length == 3 {
		label := "Int24"

		if e.con.Signed {
			label += "s"
		} else {
			label += "u"
		}

		if e.con.Swapped {
			label += "l"
		} else {
			label += "b"
		}

		return label
	}

	if e.con.Signed {
		return fmt.Sprintf("BytesInteger[%d, signed]", e.con.Length)
	}

	return fmt.Sprintf("BytesInteger[%d]", e.con.Length)
}

func (e *BytesInteger) ValueLabel() string {
	return intLabel(e.model.IntegerFormat(), e.Obj())
}

func (e *BytesInteger) Panel() Panel {
	return IntegerPanel{Text: e.ValueLabel()}
}

// BitsInteger is an integer leaf stored in a bit field.
type BitsInteger struct {
	Base
	con *grammar.BitsInteger
}

func newBitsInteger(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	bi, ok := con.(*grammar.BitsInteger)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &BitsInteger{con: bi}
	e.Base = NewBase(f, m, parent, con)
	e.Bind(e)

	return e, nil
}

func (e *BitsInteger) TypeLabel() string {
	if e.con.Signed {
		return fmt.Sprintf("BitsInteger[%d, signed]", e.con.Length)
	}

	return fmt.Sprintf("BitsInteger[%d]", e.con.Length)
}

func (e *BitsInteger) ValueLabel() string {
	return intLabel(e.model.IntegerFormat(), e.Obj())
}

func (e *BitsInteger) Panel() Panel {
	return IntegerPanel{Text: e.ValueLabel()}
}

// Bytes is a raw byte block leaf rendered as hex octets.
type Bytes struct {
	Base
	con *grammar.Bytes
}

func newBytes(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	b, ok := con.(*grammar.Bytes)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Bytes{con: b}
	e.Base = NewBase(f, m, parent, con)
	e.Bind(e)

	return e, nil
}

func (e *Bytes) TypeLabel() string {
	if s, ok := hexLabel(e.Obj()); ok {
		return fmt.Sprintf("Byte[%d]", (len(s)+1)/3)
	}

	return fmt.Sprintf("Byte[%d]", e.con.Length)
}

func (e *Bytes) ValueLabel() string {
	if s, ok := hexLabel(e.Obj()); ok {
		return s
	}

	return plainLabel(e.Obj())
}

// Enum is an integer leaf with a symbol table, rendered "code (name)".
type Enum struct {
	Subconstruct
	con *grammar.Enum
}

func newEnum(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	en, ok := con.(*grammar.Enum)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Enum{con: en}
	if err := e.init(f, m, parent, en, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Enum) TypeLabel() string {
	return e.Subconstruct.TypeLabel() + " as Enum"
}

func (e *Enum) ValueLabel() string {
	n, ok := grammar.AsInt64(meta.Unwrap(e.Obj()))
	if !ok {
		return plainLabel(e.Obj())
	}

	name, ok := e.con.SymbolName(n)
	if !ok {
		// An integer outside the symbol table keeps the code-and-name
		// shape, with the code standing in for the name.
		return fmt.Sprintf("%d (%d)", n, n)
	}

	return fmt.Sprintf("%d (%s)", n, name)
}

func (e *Enum) Panel() Panel {
	choices := make([]Choice, 0, len(e.con.Symbols))
	for _, s := range e.con.Symbols {
		choices = append(choices, Choice{Value: s.Value, Name: s.Name})
	}

	return ChoicePanel{Choices: choices, Selected: e.ValueLabel()}
}

// FlagsEnum is a flag-set leaf over a named-bit table, rendered as the
// "|"-joined names of the set bits.
type FlagsEnum struct {
	Subconstruct
	con *grammar.FlagsEnum
}

func newFlagsEnum(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	fe, ok := con.(*grammar.FlagsEnum)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &FlagsEnum{con: fe}
	if err := e.init(f, m, parent, fe, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *FlagsEnum) TypeLabel() string {
	return e.Subconstruct.TypeLabel() + " as Flags"
}

// flagStates reads the live flag mapping in declaration order.
func (e *FlagsEnum) flagStates() ([]FlagState, bool) {
	obj, ok := meta.Unwrap(e.Obj()).(map[string]any)
	if !ok {
		return nil, false
	}

	states := make([]FlagState, 0, len(e.con.Flags))
	for _, f := range e.con.Flags {
		set, _ := obj[f.Name].(bool)
		states = append(states, FlagState{Name: f.Name, Value: f.Value, Set: set})
	}

	return states, true
}

func (e *FlagsEnum) ValueLabel() string {
	states, ok := e.flagStates()
	if !ok {
		return plainLabel(e.Obj())
	}

	var set []string
	for _, s := range states {
		if s.Set {
			set = append(set, s.Name)
		}
	}

	return strings.Join(set, " | ")
}

func (e *FlagsEnum) Panel() Panel {
	states, _ := e.flagStates()

	return FlagsPanel{Flags: states}
}

// Computed is a read-only derived value.
type Computed struct {
	Base
}

func newComputed(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	e := &Computed{Base: NewBase(f, m, parent, con)}
	e.Bind(e)

	return e, nil
}

func (e *Computed) TypeLabel() string { return "Computed" }

func (e *Computed) ValueLabel() string {
	if s, ok := hexLabel(e.Obj()); ok {
		return s
	}

	return plainLabel(e.Obj())
}

// Timestamp is a calendar timestamp leaf over a wrapped integer construct.
type Timestamp struct {
	Subconstruct
}

func newTimestamp(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	ts, ok := con.(*grammar.TimestampAdapter)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Timestamp{}
	if err := e.init(f, m, parent, ts, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Timestamp) ValueLabel() string {
	if t, ok := meta.Unwrap(e.Obj()).(time.Time); ok {
		return t.Format("2006-01-02 15:04:05 -07:00")
	}

	return plainLabel(e.Obj())
}

func (e *Timestamp) TypeLabel() string { return "Timestamp" }

func (e *Timestamp) Panel() Panel {
	t, _ := meta.Unwrap(e.Obj()).(time.Time)

	return TimestampPanel{Value: t}
}

// Tell is a read-only stream-position marker.
type Tell struct {
	Base
}

func newTell(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	e := &Tell{Base: NewBase(f, m, parent, con)}
	e.Bind(e)

	return e, nil
}

func (e *Tell) TypeLabel() string { return "Tell" }

// Seek is a stream-position move without an editable value.
type Seek struct {
	Base
}

func newSeek(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	e := &Seek{Base: NewBase(f, m, parent, con)}
	e.Bind(e)

	return e, nil
}

func (e *Seek) TypeLabel() string  { return "Seek" }
func (e *Seek) ValueLabel() string { return "" }

// Pass is a no-op marker.
type Pass struct {
	Base
}

func newPass(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	e := &Pass{Base: NewBase(f, m, parent, con)}
	e.Bind(e)

	return e, nil
}

func (e *Pass) TypeLabel() string  { return "Pass" }
func (e *Pass) ValueLabel() string { return "" }
