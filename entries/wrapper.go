package entries

import (
	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/objpath"
)

// Subconstruct is the delegating wrapper entry: it occupies a tree position
// for a construct that forwards all behavior to a single inner construct.
// Everything except name, docs and path passes through to the sub entry.
type Subconstruct struct {
	Base
	sub Entry
}

// init fills in the wrapper state and creates the wrapped entry. self must
// be the outermost entry embedding this Subconstruct.
func (s *Subconstruct) init(f *Factory, m Model, parent Entry, con grammar.Wrapper, self Entry) error {
	s.Base = NewBase(f, m, parent, con)
	s.Bind(self)

	sub, err := f.New(m, self, con.Subcon())
	if err != nil {
		return err
	}

	s.sub = sub

	return nil
}

// Sub returns the wrapped entry.
func (s *Subconstruct) Sub() Entry { return s.sub }

func (s *Subconstruct) ValueLabel() string { return s.sub.ValueLabel() }
func (s *Subconstruct) TypeLabel() string  { return s.sub.TypeLabel() }

func (s *Subconstruct) Subentries() []Entry { return s.sub.Subentries() }

func (s *Subconstruct) Panel() Panel { return s.sub.Panel() }

func (s *Subconstruct) ModifyContextMenu(menu *ContextMenu) {
	s.sub.ModifyContextMenu(menu)
}

// The display handle lives on the wrapped entry so a wrapper and its inner
// entry always correlate to the same visible row.
func (s *Subconstruct) DisplayHandle() any     { return s.sub.DisplayHandle() }
func (s *Subconstruct) SetDisplayHandle(h any) { s.sub.SetDisplayHandle(h) }

// newTransparent builds a plain pass-through wrapper entry. It serves Const,
// Default, Pointer, Transformed, Restreamed and, through the factory's
// fallback, any unmapped construct that wraps a single inner one.
func newTransparent(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	w, ok := con.(grammar.Wrapper)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Subconstruct{}
	if err := e.init(f, m, parent, w, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Renamed renders and behaves as its wrapped entry but contributes the new
// name to display and path. Synthetic renames (branch labels) and nested
// renames that repeat the inner name are excluded from the path.
type Renamed struct {
	Subconstruct
	excludeFromPath bool
}

func newRenamed(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	r, ok := con.(*grammar.Renamed)
	if !ok {
		return nil, errNotWrapper(con)
	}

	return newRenamedEntry(f, m, parent, r, false)
}

// newRenamedEntry builds a rename wrapper, optionally excluded from path.
// Conditional and switch entries use the exclusion for their synthetic
// branch labels.
func newRenamedEntry(f *Factory, m Model, parent Entry, con *grammar.Renamed, excludeFromPath bool) (*Renamed, error) {
	e := &Renamed{excludeFromPath: excludeFromPath}
	if err := e.init(f, m, parent, con, e); err != nil {
		return nil, err
	}

	// A rename wrapping another rename of the same resolved name must emit
	// only one path segment; the outer one falls through.
	if con.Name() == con.Sub.Name() {
		e.excludeFromPath = true
	}

	return e, nil
}

func (r *Renamed) Path() objpath.Path {
	if r.excludeFromPath {
		if r.parent == nil {
			return nil
		}

		return r.parent.Path()
	}

	return r.Base.Path()
}

// Peek represents a non-consuming read of its inner construct.
type Peek struct {
	Subconstruct
}

func newPeek(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	w, ok := con.(*grammar.Peek)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &Peek{}
	if err := e.init(f, m, parent, w, e); err != nil {
		return nil, err
	}

	return e, nil
}

// RawCopy represents a construct parsed alongside its raw bytes.
type RawCopy struct {
	Subconstruct
}

func newRawCopy(f *Factory, m Model, parent Entry, con grammar.Construct) (Entry, error) {
	w, ok := con.(*grammar.RawCopy)
	if !ok {
		return nil, errNotWrapper(con)
	}

	e := &RawCopy{}
	if err := e.init(f, m, parent, w, e); err != nil {
		return nil, err
	}

	return e, nil
}
