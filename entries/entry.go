package entries

import (
	"fmt"
	"strconv"

	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
	"github.com/Ircama/construct-editor/objpath"
)

// IntegerFormat selects how integer leaves render their value.
type IntegerFormat int

const (
	FormatDec IntegerFormat = iota
	FormatHex
)

// String returns a human-readable format name.
func (f IntegerFormat) String() string {
	switch f {
	case FormatDec:
		return "dec"
	case FormatHex:
		return "hex"
	default:
		return "unknown"
	}
}

// Model is the slice of the tree model that entries need: the live object
// graph to address into and the model-wide display state.
type Model interface {
	// RootObject returns the externally owned object graph.
	RootObject() any

	// IntegerFormat returns the model-wide integer display format.
	IntegerFormat() IntegerFormat

	// IsListViewed reports whether e is opted into the flattened list view.
	IsListViewed(e Entry) bool

	// ToggleListView adds or removes e from the flattened list view set.
	ToggleListView(e Entry)
}

// Entry is the editor's tree-node counterpart to a grammar construct, bound
// to a live value through its path.
type Entry interface {
	// Parent returns the owning entry, or nil for the root. Parent links are
	// back-references only; ownership runs parent to child.
	Parent() Entry

	// Construct returns the grammar node this entry represents.
	Construct() grammar.Construct

	// Name returns the construct's declared name, or "".
	Name() string

	// Docs returns the construct's documentation, or "".
	Docs() string

	// TypeLabel returns a short descriptor of the construct kind, possibly
	// parameterized, e.g. "Array[4]".
	TypeLabel() string

	// ValueLabel renders the current live value of this entry.
	ValueLabel() string

	// Subentries returns the child entries: nil for a leaf, a possibly empty
	// list for a container. Data-dependent containers may rebuild their
	// children on each call; the returned slice must not be retained across
	// object mutations.
	Subentries() []Entry

	// Path returns the address of this entry's value in the object graph.
	Path() objpath.Path

	// Obj returns the live value at this entry's path, or nil if the path
	// does not resolve.
	Obj() any

	// SetObj assigns v at this entry's path.
	SetObj(v any) error

	// Panel returns the editor descriptor for in-place editing.
	Panel() Panel

	// ModifyContextMenu lets the entry add items to a context menu.
	ModifyContextMenu(menu *ContextMenu)

	// DisplayHandle returns the consumer's correlation handle for this
	// entry's visible row, or nil while no row is materialized.
	DisplayHandle() any

	// SetDisplayHandle stores the consumer's correlation handle.
	SetDisplayHandle(h any)

	// Visible reports whether the entry currently surfaces as a row.
	Visible() bool

	// SetVisible marks the entry as surfaced or filtered out.
	SetVisible(v bool)
}

// Base is the default entry: a leaf rendering its value generically. It is
// used directly for constructs without a specific variant and embedded by
// every variant for the shared plumbing.
type Base struct {
	fac     *Factory
	model   Model
	parent  Entry
	con     grammar.Construct
	self    Entry
	handle  any
	visible bool
}

// NewBase creates the shared entry state. The caller must Bind the outermost
// entry value before use so overridden methods dispatch correctly.
func NewBase(f *Factory, m Model, parent Entry, con grammar.Construct) Base {
	return Base{fac: f, model: m, parent: parent, con: con}
}

// Bind records the outermost entry embedding this Base. Base methods that
// depend on overridable behavior (Path in particular) go through it.
func (b *Base) Bind(self Entry) { b.self = self }

func (b *Base) Parent() Entry                { return b.parent }
func (b *Base) Construct() grammar.Construct { return b.con }
func (b *Base) Name() string                 { return b.con.Name() }
func (b *Base) Docs() string                 { return b.con.Docs() }

func (b *Base) TypeLabel() string { return b.con.Kind().String() }

func (b *Base) ValueLabel() string { return plainLabel(b.self.Obj()) }

// Subentries returns nil: the generic entry is a leaf.
func (b *Base) Subentries() []Entry { return nil }

// Path walks to the root, taking each named entry's name as one segment.
// The root entry addresses the whole object and never contributes a
// segment, named or not.
func (b *Base) Path() objpath.Path {
	if b.parent == nil {
		return nil
	}

	path := b.parent.Path()
	if name := b.self.Name(); name != "" {
		path = append(path, name)
	}

	return path
}

func (b *Base) Obj() any {
	v, err := objpath.Read(b.model.RootObject(), b.self.Path())
	if err != nil {
		return nil
	}

	return v
}

func (b *Base) SetObj(v any) error {
	return objpath.Write(b.model.RootObject(), b.self.Path(), v)
}

func (b *Base) Panel() Panel {
	return DefaultPanel{Text: b.self.ValueLabel(), ReadOnly: true}
}

func (b *Base) ModifyContextMenu(*ContextMenu) {}

func (b *Base) DisplayHandle() any     { return b.handle }
func (b *Base) SetDisplayHandle(h any) { b.handle = h }
func (b *Base) Visible() bool          { return b.visible }
func (b *Base) SetVisible(v bool)      { b.visible = v }

// Flatten returns the leaf entries of e depth-first, left to right.
// Containers recurse and are themselves excluded.
func Flatten(e Entry) []Entry {
	var out []Entry

	flattenInto(e, &out)

	return out
}

func flattenInto(e Entry, out *[]Entry) {
	subs := e.Subentries()
	if subs == nil {
		*out = append(*out, e)
		return
	}

	for _, sub := range subs {
		flattenInto(sub, out)
	}
}

// plainLabel is the generic fallback rendering of a live value.
func plainLabel(v any) string {
	v = meta.Unwrap(v)
	if v == nil {
		return ""
	}

	return fmt.Sprint(v)
}

// intLabel renders an integer leaf value: decimal, with a parenthesized hex
// form once values stop being trivially readable, or hex-first when the
// model is in hex mode. Non-integers fall back to the generic rendering.
func intLabel(format IntegerFormat, v any) string {
	n, ok := grammar.AsInt64(meta.Unwrap(v))
	if !ok {
		return plainLabel(v)
	}

	if format == FormatHex {
		return fmt.Sprintf("0x%X", n)
	}

	if n < 10 {
		return strconv.FormatInt(n, 10)
	}

	return fmt.Sprintf("%d   /   0x%X", n, n)
}

// hexLabel renders a byte block as space-separated hex octets.
func hexLabel(v any) (string, bool) {
	var raw []byte

	switch b := meta.Unwrap(v).(type) {
	case []byte:
		raw = b
	case string:
		raw = []byte(b)
	default:
		return "", false
	}

	out := make([]byte, 0, len(raw)*3)
	for i, c := range raw {
		if i > 0 {
			out = append(out, ' ')
		}

		out = append(out, hexDigits[c>>4], hexDigits[c&0xf])
	}

	return string(out), true
}

const hexDigits = "0123456789abcdef"
