// Package objpath addresses into a nested map/list object graph by a
// sequence of name segments. A segment indexes a map by key or, parsed as an
// integer, a list by position. The graph is externally owned: objpath only
// reads and assigns slots, never copies or restructures.
package objpath

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Ircama/construct-editor/meta"
)

// Addressing errors
var (
	// ErrEmptyPath indicates a write with no segments to assign at.
	ErrEmptyPath = errors.New("empty path")

	// ErrMissingKey indicates a map segment that is not present.
	ErrMissingKey = errors.New("key not found")

	// ErrBadIndex indicates a list segment that is not a valid index.
	ErrBadIndex = errors.New("invalid list index")

	// ErrNotContainer indicates a segment applied to a non-container value.
	ErrNotContainer = errors.New("value is not a container")
)

// Path is an ordered sequence of name segments from the root of the object
// graph to one slot.
type Path []string

// String renders the path in dotted form.
func (p Path) String() string {
	out := ""
	for i, seg := range p {
		if i > 0 {
			out += "."
		}

		out += seg
	}

	return out
}

// Read resolves path against root and returns the value stored at the final
// slot, as stored (a tagged value stays tagged). Resolution is O(depth) and
// never cached: the graph may be replaced wholesale between calls.
func Read(root any, path Path) (any, error) {
	cur := root

	for i, seg := range path {
		next, err := index(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("at %q: %w", Path(path[:i+1]).String(), err)
		}

		cur = next
	}

	return cur, nil
}

// Write resolves all but the last segment like Read, then assigns v at the
// final key or index.
func Write(root any, path Path, v any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	cur := root
	for i, seg := range path[:len(path)-1] {
		next, err := index(cur, seg)
		if err != nil {
			return fmt.Errorf("at %q: %w", Path(path[:i+1]).String(), err)
		}

		cur = next
	}

	last := path[len(path)-1]

	switch c := meta.Unwrap(cur).(type) {
	case map[string]any:
		if _, ok := c[last]; !ok {
			return fmt.Errorf("at %q: %w", path.String(), ErrMissingKey)
		}

		c[last] = v

		return nil

	case []any:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i >= len(c) {
			return fmt.Errorf("at %q: %w", path.String(), ErrBadIndex)
		}

		c[i] = v

		return nil

	default:
		return fmt.Errorf("at %q: %w", path.String(), ErrNotContainer)
	}
}

// index resolves one segment against one container value, looking through
// metadata tagging.
func index(v any, seg string) (any, error) {
	switch c := meta.Unwrap(v).(type) {
	case map[string]any:
		sub, ok := c[seg]
		if !ok {
			return nil, ErrMissingKey
		}

		return sub, nil

	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, ErrBadIndex
		}

		if i < 0 || i >= len(c) {
			return nil, ErrBadIndex
		}

		return c[i], nil

	default:
		return nil, ErrNotContainer
	}
}
