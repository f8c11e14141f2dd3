// Package preprocess attaches parse contexts to a plain object graph. A
// graph decoded from YAML or JSON carries no side-channel metadata, so
// conditionals and switches cannot recover the field values their
// predicates need. Object walks the grammar and the graph together,
// building the nested context chain a binary parser would have produced
// and tagging every addressed value with it.
package preprocess

import (
	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/meta"
)

// Object tags obj and its nested values with parse contexts derived from
// con. The graph is modified in place where possible and the (possibly
// wrapped) root value is returned.
func Object(con grammar.Construct, obj any) any {
	return walk(con, obj, grammar.NewContext(nil))
}

func walk(con grammar.Construct, obj any, ctx *grammar.Context) any {
	switch c := con.(type) {
	case *grammar.Struct:
		return walkStruct(c, obj, ctx)

	case *grammar.Array:
		return walkList(c.Sub, obj, ctx)

	case *grammar.GreedyRange:
		return walkList(c.Sub, obj, ctx)

	case *grammar.IfThenElse:
		// Descend the branch the value actually has; the condition sees
		// only fields bound before this position, as at parse time.
		if c.Cond != nil {
			if c.Cond(ctx) {
				return walk(c.Then, obj, ctx)
			}

			return walk(c.Else, obj, ctx)
		}

		return tag(obj, ctx)

	case *grammar.Switch:
		if c.Key != nil {
			key := c.Key(ctx)
			for _, cs := range c.Cases {
				if grammar.EqualValues(cs.Key, key) {
					return walk(cs.Sub, obj, ctx)
				}
			}

			if c.Default != nil {
				return walk(c.Default, obj, ctx)
			}
		}

		return tag(obj, ctx)

	case *grammar.FlagsEnum:
		// The flag mapping is a leaf for context purposes; its keys are
		// bit names, not fields.
		return tag(obj, ctx)

	case grammar.Wrapper:
		return walk(c.Subcon(), obj, ctx)

	default:
		return tag(obj, ctx)
	}
}

func walkStruct(con *grammar.Struct, obj any, ctx *grammar.Context) any {
	fields, ok := meta.Unwrap(obj).(map[string]any)
	if !ok {
		return tag(obj, ctx)
	}

	inner := grammar.NewContext(ctx)

	for _, field := range con.Fields {
		name := field.Name()
		if name == "" {
			continue
		}

		raw, ok := fields[name]
		if !ok {
			continue
		}

		fields[name] = walk(field, raw, inner)
		inner.Set(name, meta.Unwrap(fields[name]))
	}

	return tag(fields, ctx)
}

func walkList(sub grammar.Construct, obj any, ctx *grammar.Context) any {
	items, ok := meta.Unwrap(obj).([]any)
	if !ok {
		return tag(obj, ctx)
	}

	for i, item := range items {
		items[i] = walk(sub, item, ctx)
	}

	return tag(items, ctx)
}

func tag(obj any, ctx *grammar.Context) any {
	return meta.Attach(obj, &meta.Metadata{Context: ctx})
}
