package grammar

// Context holds the field values visible at a point of a parsed object:
// the fields of the enclosing structure plus, through Parent, every
// enclosing scope up to the root. Conditionals, switches and dynamic
// counts are evaluated against it.
type Context struct {
	Values map[string]any
	Parent *Context
}

// NewContext creates an empty context nested under parent (nil for the root).
func NewContext(parent *Context) *Context {
	return &Context{Values: make(map[string]any), Parent: parent}
}

// Get returns the value bound to name, searching the current scope first
// and then the enclosing ones.
func (c *Context) Get(name string) (any, bool) {
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		if v, ok := ctx.Values[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Set binds name to v in the current scope.
func (c *Context) Set(name string, v any) {
	c.Values[name] = v
}

// AsInt64 converts any integer-typed value (including values decoded from
// YAML or JSON) to int64. Floats convert only when integral.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		if float32(int64(n)) == n {
			return int64(n), true
		}
	case float64:
		if float64(int64(n)) == n {
			return int64(n), true
		}
	}

	return 0, false
}

// EqualValues compares two values, treating all integer widths as one
// numeric domain. Used by loader-built conditions and switch cases.
func EqualValues(a, b any) bool {
	if ai, ok := AsInt64(a); ok {
		bi, ok := AsInt64(b)
		return ok && ai == bi
	}

	return a == b
}
