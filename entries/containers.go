package entries

import (
	"fmt"
	"strconv"

	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
)

// Struct mirrors a fixed sequence of fields. Its children are built once at
// construction and never rebuilt.
type Struct struct {
	Base
	subs []Entry
}

func newStruct(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	st, ok := con.(*grammar.Struct)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Struct{Base: NewBase(f, m, parent, con)}
	e.Bind(e)

	e.subs = make([]Entry, 0, len(st.Fields))
	for _, field := range st.Fields {
		sub, err := f.New(m, e, field)
		if err != nil {
			return nil, err
		}

		e.subs = append(e.subs, sub)
	}

	return e, nil
}

func (e *Struct) TypeLabel() string  { return "Struct" }
func (e *Struct) ValueLabel() string { return "" }

func (e *Struct) Subentries() []Entry { return e.subs }

// repeated is the shared behavior of Array and GreedyRange: children mirror
// the live list, one entry per index, rebuilt whenever the live length and
// the cached child count disagree.
type repeated struct {
	Base
	sub  grammar.Construct
	subs []Entry
}

// liveLen returns the current element count of the live value.
func (e *repeated) liveLen() (int, bool) {
	lst, ok := meta.Unwrap(e.self.Obj()).([]any)
	if !ok {
		return 0, false
	}

	return len(lst), true
}

// resize rebuilds the cached children to n index entries if the count
// changed. Each child applies the element construct at its index, named by
// the index.
func (e *repeated) resize(n int) []Entry {
	if len(e.subs) == n {
		return e.subs
	}

	e.subs = e.subs[:0]
	for i := 0; i < n; i++ {
		con := grammar.Field(strconv.Itoa(i), e.sub)

		sub, err := e.fac.New(e.model, e.self, con)
		if err != nil {
			// A failed constructor still occupies its index, as a plain
			// leaf, so the child count always matches the element count.
			g := &Base{}
			*g = NewBase(e.fac, e.model, e.self, con)
			g.Bind(g)
			sub = g
		}

		e.subs = append(e.subs, sub)
	}

	return e.subs
}

// contextMenu adds the list-view toggle when the element type is itself a
// container, so the consumer can flatten this entry's subtree into columns.
func (e *repeated) contextMenu(menu *ContextMenu) {
	probe, err := e.fac.New(e.model, e.self, e.sub)
	if err != nil || probe.Subentries() == nil {
		return
	}

	menu.Append(MenuItem{Separator: true})

	self, model := e.self, e.model
	menu.Append(MenuItem{
		Label:     "Enable List View",
		Checkable: true,
		Checked:   model.IsListViewed(self),
		Invoke:    func() { model.ToggleListView(self) },
	})
}

// Array mirrors a counted repetition. The child count tracks the live list
// length, falling back to the declared static count, then to one.
type Array struct {
	repeated
	con *grammar.Array
}

func newArray(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	arr, ok := con.(*grammar.Array)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Array{con: arr}
	e.Base = NewBase(f, m, parent, con)
	e.sub = arr.Sub
	e.Bind(e)

	return e, nil
}

func (e *Array) Subentries() []Entry {
	n, ok := e.liveLen()
	if !ok {
		if e.con.CountOf == nil {
			n = e.con.Count
		} else {
			n = 1
		}
	}

	return e.resize(n)
}

func (e *Array) TypeLabel() string {
	if n, ok := e.liveLen(); ok {
		return fmt.Sprintf("Array[%d]", n)
	}

	if e.con.CountOf == nil {
		return fmt.Sprintf("Array[%d]", e.con.Count)
	}

	return fmt.Sprintf("Array[%s]", e.con.CountDesc)
}

func (e *Array) ValueLabel() string { return "" }

func (e *Array) ModifyContextMenu(menu *ContextMenu) { e.contextMenu(menu) }

// GreedyRange mirrors an open-ended repetition; without a readable live
// value the element count is unknown and defaults to one.
type GreedyRange struct {
	repeated
}

func newGreedyRange(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	gr, ok := con.(*grammar.GreedyRange)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &GreedyRange{}
	e.Base = NewBase(f, m, parent, con)
	e.sub = gr.Sub
	e.Bind(e)

	return e, nil
}

func (e *GreedyRange) Subentries() []Entry {
	n, ok := e.liveLen()
	if !ok {
		n = 1
	}

	return e.resize(n)
}

func (e *GreedyRange) TypeLabel() string {
	if n, ok := e.liveLen(); ok {
		return fmt.Sprintf("GreedyRange[%d]", n)
	}

	return "GreedyRange"
}

func (e *GreedyRange) ValueLabel() string { return "" }

func (e *GreedyRange) ModifyContextMenu(menu *ContextMenu) { e.contextMenu(menu) }
