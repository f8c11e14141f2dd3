// Package meta is the metadata side-channel that associates runtime values
// with their originating parse context. Values in the live object graph are
// plain maps, slices and scalars; tagging wraps them so a conditional or
// switch entry can recover the context its predicate needs.
//
// The association is carried by value wrapping, not a global registry, so it
// survives the object graph being handed around and can be faked in tests.
package meta

import "github.com/Ircama/construct-editor/grammar"

// Metadata is the side-channel payload attached to a runtime value.
type Metadata struct {
	Context *grammar.Context
}

// Tagged wraps a runtime value together with its metadata.
type Tagged struct {
	Value any
	Meta  *Metadata
}

// Attach wraps v with md. Attaching to an already tagged value replaces its
// metadata while keeping the inner value.
func Attach(v any, md *Metadata) any {
	return &Tagged{Value: Unwrap(v), Meta: md}
}

// Lookup returns the metadata attached to v, or nil.
func Lookup(v any) *Metadata {
	if t, ok := v.(*Tagged); ok {
		return t.Meta
	}

	return nil
}

// LookupContext returns the parse context attached to v, or nil.
func LookupContext(v any) *grammar.Context {
	if md := Lookup(v); md != nil {
		return md.Context
	}

	return nil
}

// Unwrap returns the plain value behind v, which may or may not be tagged.
func Unwrap(v any) any {
	if t, ok := v.(*Tagged); ok {
		return t.Value
	}

	return v
}
