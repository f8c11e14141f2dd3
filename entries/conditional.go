package entries

import (
	"fmt"

	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
)

// IfThenElse mirrors a two-way conditional. Both branches are permanently
// allocated as synthetic, path-excluded rename entries; every access
// re-evaluates the condition against the context recovered from the live
// value and delegates to the active branch. Without a readable value or
// context there is no active branch and both branches are listed.
type IfThenElse struct {
	Base
	con       *grammar.IfThenElse
	thenEntry *Renamed
	elseEntry *Renamed
	branches  []Entry
}

func newIfThenElse(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	ite, ok := con.(*grammar.IfThenElse)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &IfThenElse{con: ite}
	e.Base = NewBase(f, m, parent, con)
	e.Bind(e)

	cond := ite.CondDesc
	if cond == "" {
		cond = "cond"
	}

	var err error

	e.thenEntry, err = newRenamedEntry(f, m, e,
		&grammar.Renamed{NewName: fmt.Sprintf("If %s then", cond), Sub: ite.Then}, true)
	if err != nil {
		return nil, err
	}

	e.elseEntry, err = newRenamedEntry(f, m, e,
		&grammar.Renamed{NewName: "Else", Sub: ite.Else}, true)
	if err != nil {
		return nil, err
	}

	e.branches = []Entry{e.thenEntry, e.elseEntry}

	return e, nil
}

// active evaluates the condition and returns the entry of the live branch,
// or nil when the value, its context or the condition is unavailable.
// Never cached: the underlying value can change between accesses.
func (e *IfThenElse) active() Entry {
	obj := e.Obj()
	if obj == nil {
		return nil
	}

	ctx := meta.LookupContext(obj)
	if ctx == nil || e.con.Cond == nil {
		return nil
	}

	if e.con.Cond(ctx) {
		return e.thenEntry.Sub()
	}

	return e.elseEntry.Sub()
}

func (e *IfThenElse) ValueLabel() string {
	if a := e.active(); a != nil {
		return a.ValueLabel()
	}

	return ""
}

func (e *IfThenElse) TypeLabel() string {
	if a := e.active(); a != nil {
		return a.TypeLabel()
	}

	return "IfThenElse"
}

func (e *IfThenElse) Subentries() []Entry {
	if a := e.active(); a != nil {
		return a.Subentries()
	}

	return e.branches
}

func (e *IfThenElse) Panel() Panel {
	if a := e.active(); a != nil {
		return a.Panel()
	}

	return e.Base.Panel()
}

// Switch mirrors a keyed multi-way branch: one synthetic, path-excluded
// rename entry per case plus an optional default. Every access re-evaluates
// the key against the recovered context and delegates to the matching case.
type Switch struct {
	Base
	con      *grammar.Switch
	cases    map[any]Entry
	fallback Entry
	branches []Entry
}

func newSwitch(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	sw, ok := con.(*grammar.Switch)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Switch{con: sw, cases: make(map[any]Entry, len(sw.Cases))}
	e.branches = make([]Entry, 0, len(sw.Cases)+1)
	e.Base = NewBase(f, m, parent, con)
	e.Bind(e)

	key := sw.KeyDesc
	if key == "" {
		key = "key"
	}

	for _, c := range sw.Cases {
		sub, err := newRenamedEntry(f, m, e,
			&grammar.Renamed{NewName: fmt.Sprintf("Case %s == %v", key, c.Key), Sub: c.Sub}, true)
		if err != nil {
			return nil, err
		}

		e.cases[c.Key] = sub
		e.branches = append(e.branches, sub)
	}

	if sw.Default != nil {
		sub, err := newRenamedEntry(f, m, e,
			&grammar.Renamed{NewName: "Default", Sub: sw.Default}, true)
		if err != nil {
			return nil, err
		}

		e.fallback = sub
		e.branches = append(e.branches, sub)
	}

	return e, nil
}

// active evaluates the key and returns the matching case entry, the default
// entry, or nil when nothing applies.
func (e *Switch) active() Entry {
	obj := e.Obj()
	if obj == nil {
		return nil
	}

	ctx := meta.LookupContext(obj)
	if ctx == nil || e.con.Key == nil {
		return nil
	}

	if sub, ok := e.cases[e.con.Key(ctx)]; ok {
		return sub
	}

	return e.fallback
}

func (e *Switch) ValueLabel() string {
	if a := e.active(); a != nil {
		return a.ValueLabel()
	}

	return ""
}

func (e *Switch) TypeLabel() string {
	if a := e.active(); a != nil {
		return a.TypeLabel()
	}

	return "Switch"
}

func (e *Switch) Subentries() []Entry {
	if a := e.active(); a != nil {
		return a.Subentries()
	}

	return e.branches
}

func (e *Switch) Panel() Panel {
	if a := e.active(); a != nil {
		return a.Panel()
	}

	return e.Base.Panel()
}
