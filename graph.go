package packval

/* node */

// Node returns a node value over three fields: identity, a list of
// string labels and a property map. Field shape violations yield
// ErrInvalidFieldType; a non-string label yields ErrInvalidLabelType.
func Node(identity, labels, properties Value) (Value, error) {
	if identity.typ != TypeIdentity {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "node identity is " + identity.typ.String()}
	}
	if labels.typ != TypeList {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "node labels is " + labels.typ.String()}
	}
	if properties.typ != TypeMap {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "node properties is " + properties.typ.String()}
	}
	for i := range labels.items {
		if labels.items[i].typ != TypeString {
			return Null, &Error{Kind: ErrInvalidLabelType,
				Detail: "label is " + labels.items[i].typ.String()}
		}
	}
	return Value{
		typ: TypeNode, vtOff: vtNode, sig: SignatureNode,
		items: []Value{identity, labels, properties},
	}, nil
}

// NodeIdentity returns the identity field of a Node value, or Null if
// v is not a Node.
func (v Value) NodeIdentity() Value {
	if v.typ != TypeNode {
		return Null
	}
	return v.items[0]
}

// NodeLabels returns the label list of a Node value, or Null if v is
// not a Node.
func (v Value) NodeLabels() Value {
	if v.typ != TypeNode {
		return Null
	}
	return v.items[1]
}

// NodeProperties returns the property map of a Node value, or Null if
// v is not a Node.
func (v Value) NodeProperties() Value {
	if v.typ != TypeNode {
		return Null
	}
	return v.items[2]
}

/* relationship */

// Relationship returns a bound relationship value over five fields:
// identity, start and end node identities, a string type and a
// property map. The endpoints may each be Null, representing a
// relationship whose nodes are not resolved in this context.
func Relationship(identity, start, end, reltype, properties Value) (Value, error) {
	if identity.typ != TypeIdentity {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "relationship identity is " + identity.typ.String()}
	}
	if start.typ != TypeIdentity && start.typ != TypeNull {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "relationship start identity is " + start.typ.String()}
	}
	if end.typ != TypeIdentity && end.typ != TypeNull {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "relationship end identity is " + end.typ.String()}
	}
	if err := relCommon(reltype, properties); err != nil {
		return Null, err
	}
	return Value{
		typ: TypeRelationship, vtOff: vtRelationship, sig: SignatureRelationship,
		items: []Value{identity, start, end, reltype, properties},
	}, nil
}

// UnboundRelationship returns a relationship value that carries no
// endpoint identities: identity, string type and property map only.
// It shares the bound form's signature and is discriminated by its
// field count.
func UnboundRelationship(identity, reltype, properties Value) (Value, error) {
	if identity.typ != TypeIdentity {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "relationship identity is " + identity.typ.String()}
	}
	if err := relCommon(reltype, properties); err != nil {
		return Null, err
	}
	return Value{
		typ: TypeRelationship, vtOff: vtRelationship, sig: SignatureRelationship,
		items: []Value{identity, reltype, properties},
	}, nil
}

func relCommon(reltype, properties Value) error {
	if reltype.typ != TypeString {
		return &Error{Kind: ErrInvalidFieldType,
			Detail: "relationship type is " + reltype.typ.String()}
	}
	if properties.typ != TypeMap {
		return &Error{Kind: ErrInvalidFieldType,
			Detail: "relationship properties is " + properties.typ.String()}
	}
	return nil
}

// RelationshipIdentity returns the identity field of a Relationship
// value, or Null if v is not a Relationship.
func (v Value) RelationshipIdentity() Value {
	if v.typ != TypeRelationship {
		return Null
	}
	return v.items[0]
}

// RelationshipType returns the type string of a Relationship value,
// or Null if v is not a Relationship.
func (v Value) RelationshipType() Value {
	if v.typ != TypeRelationship {
		return Null
	}
	if len(v.items) == 5 {
		return v.items[3]
	}
	return v.items[1]
}

// RelationshipProperties returns the property map of a Relationship
// value, or Null if v is not a Relationship.
func (v Value) RelationshipProperties() Value {
	if v.typ != TypeRelationship {
		return Null
	}
	if len(v.items) == 5 {
		return v.items[4]
	}
	return v.items[2]
}

// RelationshipStartNodeIdentity returns the start node identity of a
// bound Relationship value. It is Null for unbound relationships, for
// bound relationships with unresolved endpoints, and when v is not a
// Relationship.
func (v Value) RelationshipStartNodeIdentity() Value {
	if v.typ != TypeRelationship || len(v.items) != 5 {
		return Null
	}
	return v.items[1]
}

// RelationshipEndNodeIdentity returns the end node identity of a
// bound Relationship value, with the same Null cases as the start
// accessor.
func (v Value) RelationshipEndNodeIdentity() Value {
	if v.typ != TypeRelationship || len(v.items) != 5 {
		return Null
	}
	return v.items[2]
}

/* path */

// Path returns a path value over three fields: a list of nodes, a
// list of relationships, and a flattened sequence of signed index
// pairs describing the traversal. Each pair (r, n) holds a 1-based
// relationship index whose sign encodes the traversal direction
// (negative means the relationship was traversed end to start) and a
// 0-based node index. The sequence must have even length and every
// index must be in range.
func Path(nodes, relationships, sequence Value) (Value, error) {
	if nodes.typ != TypeList || relationships.typ != TypeList ||
		sequence.typ != TypeList {
		return Null, &Error{Kind: ErrInvalidFieldType,
			Detail: "path fields must be lists"}
	}
	for i := range nodes.items {
		if nodes.items[i].typ != TypeNode {
			return Null, &Error{Kind: ErrInvalidPathNodeType,
				Detail: "path node is " + nodes.items[i].typ.String()}
		}
	}
	for i := range relationships.items {
		if relationships.items[i].typ != TypeRelationship {
			return Null, &Error{Kind: ErrInvalidPathRelationshipType,
				Detail: "path relationship is " + relationships.items[i].typ.String()}
		}
	}

	seq := sequence.items
	if len(seq)%2 != 0 {
		return Null, &Error{Kind: ErrInvalidPathSequenceLength,
			Detail: "sequence length is odd"}
	}
	nrels := int64(len(relationships.items))
	nnodes := int64(len(nodes.items))
	for i := 0; i < len(seq); i += 2 {
		if seq[i].typ != TypeInt || seq[i+1].typ != TypeInt {
			return Null, &Error{Kind: ErrInvalidPathSequenceIdxType,
				Detail: "sequence indexes must be integers"}
		}
		// Compared without negating: -ridx overflows for MinInt64.
		ridx := int64(seq[i].num)
		if ridx == 0 || ridx > nrels || ridx < -nrels {
			return Null, &Error{Kind: ErrInvalidPathSequenceIdxRange,
				Detail: "relationship index out of range"}
		}
		nidx := int64(seq[i+1].num)
		if nidx < 0 || nidx >= nnodes {
			return Null, &Error{Kind: ErrInvalidPathSequenceIdxRange,
				Detail: "node index out of range"}
		}
	}

	return Value{
		typ: TypePath, vtOff: vtPath, sig: SignaturePath,
		items: []Value{nodes, relationships, sequence},
	}, nil
}

// PathLength returns the number of hops of a Path value, or 0 if v is
// not a Path.
func (v Value) PathLength() int {
	if v.typ != TypePath {
		return 0
	}
	return len(v.items[2].items) / 2
}

// PathGetNode returns the node at the given hop of a Path value. Hop
// 0 is the path start. The result is Null if v is not a Path or hops
// exceeds the path length.
func (v Value) PathGetNode(hops int) Value {
	if v.typ != TypePath {
		return Null
	}
	nodes := v.items[0].items
	seq := v.items[2].items
	if hops < 0 || hops > len(seq)/2 {
		return Null
	}
	if hops == 0 {
		if len(nodes) == 0 {
			return Null
		}
		return nodes[0]
	}
	nidx := int64(seq[(hops-1)*2+1].num)
	return nodes[nidx]
}

// PathGetRelationship returns the relationship traversed at the given
// hop of a Path value and whether it was traversed in its stored
// start-to-end orientation. The relationship is Null if v is not a
// Path or hops is at or past the path length.
func (v Value) PathGetRelationship(hops int) (Value, bool) {
	if v.typ != TypePath {
		return Null, false
	}
	rels := v.items[1].items
	seq := v.items[2].items
	if hops < 0 || hops*2 >= len(seq) {
		return Null, false
	}
	ridx := int64(seq[hops*2].num)
	forward := ridx > 0
	if !forward {
		ridx = -ridx
	}
	return rels[ridx-1], forward
}

/* struct */

// Struct returns an opaque structure value with the given signature
// byte, borrowing fields without copying. No validation is performed;
// the graph composites are built on the same representation through
// their own validating constructors.
func Struct(signature byte, fields []Value) Value {
	return Value{typ: TypeStruct, vtOff: vtStruct, sig: signature, items: fields}
}

// Signature returns the signature byte of a struct-backed value
// (Struct, Node, Relationship or Path), or 0 otherwise.
func (v Value) Signature() byte {
	switch v.typ {
	case TypeStruct, TypeNode, TypeRelationship, TypePath:
		return v.sig
	}
	return 0
}

// StructSize returns the field count of a Struct value, or 0 if v is
// not a Struct.
func (v Value) StructSize() int {
	if v.typ != TypeStruct {
		return 0
	}
	return len(v.items)
}

// StructGet returns field i of a Struct value, or Null if v is not a
// Struct or i is out of range.
func (v Value) StructGet(i int) Value {
	if v.typ != TypeStruct || i < 0 || i >= len(v.items) {
		return Null
	}
	return v.items[i]
}

// Signature first, then field count, then fields pointwise.
func structEq(v, other *Value) bool {
	if v.sig != other.sig {
		return false
	}
	if len(v.items) != len(other.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Eq(other.items[i]) {
			return false
		}
	}
	return true
}
