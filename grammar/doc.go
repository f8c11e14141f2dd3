// Package grammar provides the declarative binary-format description nodes
// that the editor mirrors: structures, arrays, conditionals, switches and
// primitive fields, each exposing its declared parameters for introspection.
//
// The nodes describe formats only. Parsing and building of actual bytes is
// deliberately absent; the editor addresses already-parsed values through
// their paths and only needs stable, introspectable node parameters.
//
// Key pieces:
//   - Construct: the node interface (name, docs, kind)
//   - Wrapper: nodes that delegate to a single inner node
//   - Context: field values visible at a point of the format, used to
//     evaluate conditionals, switches and dynamic counts
//   - LoadSpec/ParseSpec: YAML loader for a declarative spec subset
package grammar
