// Package editor provides the tree model that bridges a consumer (a tree
// widget, a shell, a test) and the entry tree: traversal with visibility
// filtering, column value lookup including the flattened list view, and
// value mutation routed through an undoable command.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ircama/construct-editor/commands"
	"github.com/Ircama/construct-editor/entries"
	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
)

// Model errors
var (
	// ErrInvalidColumn indicates a mutation targeting a non-value column.
	ErrInvalidColumn = errors.New("column cannot be modified")
)

// Column identifies one of the model's fixed data columns. Columns past the
// fixed ones address flattened list-view values.
type Column int

const (
	ColumnName Column = iota
	ColumnType
	ColumnValue

	// ColumnCount is the number of fixed columns.
	ColumnCount = int(iota)
)

// String returns a human-readable column name.
func (c Column) String() string {
	switch c {
	case ColumnName:
		return "name"
	case ColumnType:
		return "type"
	case ColumnValue:
		return "value"
	default:
		return fmt.Sprintf("list-view[%d]", int(c)-ColumnCount)
	}
}

// protectedPrefix marks fields hidden from default display.
const protectedPrefix = "_"

// Model is one editing session over a format spec and a parsed object.
// It is not safe for concurrent use.
type Model struct {
	factory   *entries.Factory
	rootEntry entries.Entry
	rootObj   any

	// HideProtected filters out entries whose name starts with the
	// protected prefix or is empty. Default true.
	HideProtected bool

	intFormat  entries.IntegerFormat
	listViewed []entries.Entry

	// Processor keeps the bounded undo/redo history of value edits.
	Processor *commands.Processor

	// OnValueChanged is invoked after every applied or undone value edit.
	// The embedding application must set it to refresh its view.
	OnValueChanged func(entries.Entry)
}

// NewModel creates an empty editing session.
func NewModel() *Model {
	return &Model{
		factory:       entries.NewFactory(),
		HideProtected: true,
		Processor:     commands.NewProcessor(commands.DefaultMaxCommands),
	}
}

// Factory returns the entry factory, open for additional registrations.
func (m *Model) Factory() *entries.Factory { return m.factory }

// Load replaces the session's format spec and object, rebuilding the entry
// tree. The object graph stays externally owned; the model only addresses
// into it.
func (m *Model) Load(con grammar.Construct, obj any) error {
	m.rootObj = obj

	root, err := m.factory.New(m, nil, con)
	if err != nil {
		// A failed load leaves no session behind.
		m.rootObj = nil
		m.rootEntry = nil
		return err
	}

	m.rootEntry = root
	m.listViewed = m.listViewed[:0]

	return nil
}

// Root returns the root entry, or nil before Load.
func (m *Model) Root() entries.Entry { return m.rootEntry }

// RootObject returns the live object graph.
func (m *Model) RootObject() any { return m.rootObj }

// IntegerFormat returns the model-wide integer display format.
func (m *Model) IntegerFormat() entries.IntegerFormat { return m.intFormat }

// SetIntegerFormat switches the integer display format.
func (m *Model) SetIntegerFormat(f entries.IntegerFormat) { m.intFormat = f }

// IsListViewed reports whether e is opted into the flattened list view.
func (m *Model) IsListViewed(e entries.Entry) bool {
	for _, lv := range m.listViewed {
		if lv == e {
			return true
		}
	}

	return false
}

// ToggleListView adds e to the flattened list view set, or removes it.
func (m *Model) ToggleListView(e entries.Entry) {
	for i, lv := range m.listViewed {
		if lv == e {
			m.listViewed = append(m.listViewed[:i], m.listViewed[i+1:]...)
			return
		}
	}

	m.listViewed = append(m.listViewed, e)
}

// GetChildren returns the children of e, or the single-element root list
// when e is nil. Children whose name is protected or empty are filtered out
// and marked not visible while HideProtected is set.
func (m *Model) GetChildren(e entries.Entry) []entries.Entry {
	if m.rootEntry == nil {
		return nil
	}

	if e == nil {
		m.rootEntry.SetVisible(true)
		return []entries.Entry{m.rootEntry}
	}

	subs := e.Subentries()
	if subs == nil {
		return nil
	}

	children := make([]entries.Entry, 0, len(subs))
	for _, sub := range subs {
		name := sub.Name()

		if m.HideProtected && (name == "" || strings.HasPrefix(name, protectedPrefix)) {
			sub.SetVisible(false)
			continue
		}

		sub.SetVisible(true)
		children = append(children, sub)
	}

	return children
}

// IsContainer reports whether e has a child list, even an empty one.
func (m *Model) IsContainer(e entries.Entry) bool {
	return e.Subentries() != nil
}

// GetParent returns the parent of e in terms of visible rows: filtered-out
// ancestors and transparent intermediates never surface.
func (m *Model) GetParent(e entries.Entry) entries.Entry {
	if e == nil {
		return nil
	}

	row := visibleRowEntry(e)
	if row == nil {
		return nil
	}

	parent := row.Parent()
	if parent == nil {
		return nil
	}

	return visibleRowEntry(parent)
}

// visibleRowEntry returns the nearest self-or-ancestor entry that surfaces
// as a row.
func visibleRowEntry(e entries.Entry) entries.Entry {
	for ; e != nil; e = e.Parent() {
		if e.Visible() {
			return e
		}
	}

	return nil
}

// GetValue returns the display value of e for a column: the name, the type
// label, or the entry itself for the value column (the consumer renders it
// via ValueLabel or its panel). Columns past the fixed ones select flattened
// leaf values when e's parent is list viewed.
func (m *Model) GetValue(e entries.Entry, column int) any {
	switch Column(column) {
	case ColumnName:
		return e.Name()
	case ColumnType:
		return e.TypeLabel()
	case ColumnValue:
		return e
	}

	if e.Parent() == nil || !m.IsListViewed(e.Parent()) {
		return ""
	}

	flat := entries.Flatten(e)

	column -= ColumnCount
	if column < len(flat) {
		return flat[column].ValueLabel()
	}

	return ""
}

// SetValue routes a value edit through an undoable command: the old value's
// metadata is carried over to the new value, the command assigns it at the
// entry's path and notifies OnValueChanged, undo restores the old value and
// notifies again.
func (m *Model) SetValue(newValue any, e entries.Entry, column int) error {
	if Column(column) != ColumnValue {
		return fmt.Errorf("%w: %v", ErrInvalidColumn, Column(column))
	}

	oldValue := e.Obj()

	if md := meta.Lookup(oldValue); md != nil {
		newValue = meta.Attach(newValue, md)
	}

	label := e.Name()
	if path := e.Path(); len(path) > 0 {
		label = path[len(path)-1]
	}

	return m.Processor.Submit(&valueChange{
		model:    m,
		entry:    e,
		oldValue: oldValue,
		newValue: newValue,
		label:    fmt.Sprintf("Value %q changed", label),
	})
}

// notifyValueChanged invokes the embedder's hook.
func (m *Model) notifyValueChanged(e entries.Entry) {
	if m.OnValueChanged != nil {
		m.OnValueChanged(e)
	}
}

// valueChange is the reversible edit of one entry's value.
type valueChange struct {
	model    *Model
	entry    entries.Entry
	oldValue any
	newValue any
	label    string
}

func (c *valueChange) Label() string { return c.label }

func (c *valueChange) Do() error {
	if err := c.entry.SetObj(c.newValue); err != nil {
		return err
	}

	c.model.notifyValueChanged(c.entry)

	return nil
}

func (c *valueChange) Undo() error {
	if err := c.entry.SetObj(c.oldValue); err != nil {
		return err
	}

	c.model.notifyValueChanged(c.entry)

	return nil
}
