package entries

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Panel is an editor descriptor: what kind of in-place editor an entry
// offers and the data needed to drive it. Rendering is the consumer's
// concern; panels only parse and compose candidate values.
type Panel interface {
	panel()
}

// DefaultPanel is a plain text rendering, read-only unless stated otherwise.
type DefaultPanel struct {
	Text     string
	ReadOnly bool
}

func (DefaultPanel) panel() {}

// IntegerPanel edits an integer leaf as text.
type IntegerPanel struct {
	Text string
}

func (IntegerPanel) panel() {}

// Parse interprets s as an integer, allowing 0x/0o/0b prefixes and plain
// decimal. Unparsable text passes through as the raw string; committing it
// surfaces as a build failure later, not as a rejection here.
func (IntegerPanel) Parse(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "0"
	}

	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return s
	}

	return n
}

// Choice is one selectable enum symbol.
type Choice struct {
	Value int64
	Name  string
}

// Display renders the choice the way selection lists show it.
func (c Choice) Display() string {
	return fmt.Sprintf("%d (%s)", c.Value, c.Name)
}

// ChoicePanel edits an enum leaf through its symbol table.
type ChoicePanel struct {
	Choices  []Choice
	Selected string
}

func (ChoicePanel) panel() {}

// Parse interprets s as a choice: a leading integer code (as shown by
// Display), or a bare symbol name. Anything else passes through raw.
func (p ChoicePanel) Parse(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "0"
	}

	first, _, _ := strings.Cut(s, " ")

	if n, err := strconv.ParseInt(first, 0, 64); err == nil {
		return n
	}

	for _, c := range p.Choices {
		if c.Name == s {
			return c.Value
		}
	}

	return s
}

// FlagState is one named bit and its current setting.
type FlagState struct {
	Name  string
	Value int64
	Set   bool
}

// FlagsPanel edits a flag-set leaf as a checkable list.
type FlagsPanel struct {
	Flags []FlagState
}

func (FlagsPanel) panel() {}

// Compose builds a new flag-set value with exactly the named flags set.
func (p FlagsPanel) Compose(set []string) any {
	on := make(map[string]bool, len(set))
	for _, name := range set {
		on[name] = true
	}

	out := make(map[string]any, len(p.Flags))
	for _, f := range p.Flags {
		out[f.Name] = on[f.Name]
	}

	return out
}

// TimestampPanel edits a timestamp leaf as a date plus a time of day.
type TimestampPanel struct {
	Value time.Time
}

func (TimestampPanel) panel() {}

// Compose combines a "2006-01-02" date and a "15:04:05" clock into one
// timestamp in the current value's location.
func (p TimestampPanel) Compose(date, clock string) (time.Time, error) {
	loc := p.Value.Location()
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	return t, nil
}

// MenuItem is one entry of a context menu descriptor.
type MenuItem struct {
	Label     string
	Separator bool
	Checkable bool
	Checked   bool
	Invoke    func()
}

// ContextMenu collects menu items contributed by an entry.
type ContextMenu struct {
	Items []MenuItem
}

// Append adds one item to the menu.
func (m *ContextMenu) Append(item MenuItem) {
	m.Items = append(m.Items, item)
}
