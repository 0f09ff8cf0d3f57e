// Package packval implements the client-side value model and wire
// encoding of a graph database network protocol: a closed set of
// tagged, immutable values (Null, Boolean, Integer, Float, String,
// List, Map, Identity, generic Struct, and the graph composites Node,
// Relationship and Path) together with PackStream serialization and
// zero-copy decoding.
//
// Values are non-owning views: string bytes, list items, map entries
// and struct fields are borrowed from the caller or the decode
// buffer, and the model never copies, mutates or frees them. The
// session and transport layers sit outside this package; they build
// request payloads through the constructors, read responses through
// the typed accessors, and move bytes with Encoder and Decoder.
package packval
