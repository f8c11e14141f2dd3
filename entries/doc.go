// Package entries builds and maintains the editor's tree of entry nodes, one
// per grammar construct: the static mirror of structs, the object-dependent
// mirror of arrays, conditionals and switches, and the leaf formatting and
// editing behavior of primitive fields.
//
// Entries never hold pointers into the live object graph. Each entry derives
// its path from its ancestry and reads or assigns its value through objpath
// on every access, so the graph can be replaced wholesale between calls.
// Data-dependent containers compare a shape fingerprint (live length, active
// branch) on every access and rebuild their children only on mismatch.
//
// The Factory maps construct types to entry constructors through an open,
// ordered registry: exact type matches first, then registered fallbacks in
// registration order, then a generic entry for any remaining construct.
package entries
