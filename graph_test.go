package packval

import (
	"math"
	"testing"
)

func testNode(t *testing.T, id int64, label string) Value {
	t.Helper()
	node, err := Node(Identity(id), List([]Value{String(label)}), mustMap(t, nil))
	if err != nil {
		t.Fatalf("Node(%d): %v", id, err)
	}
	return node
}

func testRel(t *testing.T, id, start, end int64, reltype string) Value {
	t.Helper()
	rel, err := Relationship(Identity(id), Identity(start), Identity(end),
		String(reltype), mustMap(t, nil))
	if err != nil {
		t.Fatalf("Relationship(%d): %v", id, err)
	}
	return rel
}

func TestNodeValidation(t *testing.T) {
	labels := List([]Value{String("Person")})
	props := mustMap(t, nil)

	if _, err := Node(Int(1), labels, props); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("integer identity: err = %v", err)
	}
	if _, err := Node(Identity(1), String("Person"), props); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("non-list labels: err = %v", err)
	}
	if _, err := Node(Identity(1), labels, List(nil)); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("non-map properties: err = %v", err)
	}
	if _, err := Node(Identity(1), List([]Value{Int(7)}), props); KindOf(err) != ErrInvalidLabelType {
		t.Errorf("integer label: err = %v", err)
	}

	node, err := Node(Identity(1), labels, props)
	if err != nil {
		t.Fatalf("valid node: %v", err)
	}
	if !node.NodeIdentity().Eq(Identity(1)) {
		t.Errorf("NodeIdentity = %v", node.NodeIdentity())
	}
	if !node.NodeLabels().Eq(labels) {
		t.Errorf("NodeLabels = %v", node.NodeLabels())
	}
	if !node.NodeProperties().Eq(props) {
		t.Errorf("NodeProperties = %v", node.NodeProperties())
	}
}

func TestRelationshipValidation(t *testing.T) {
	props := mustMap(t, nil)

	if _, err := Relationship(Int(9), Identity(1), Identity(2), String("K"), props); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("integer identity: err = %v", err)
	}
	if _, err := Relationship(Identity(9), Int(1), Identity(2), String("K"), props); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("integer start: err = %v", err)
	}
	if _, err := Relationship(Identity(9), Identity(1), String("2"), String("K"), props); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("string end: err = %v", err)
	}
	if _, err := Relationship(Identity(9), Identity(1), Identity(2), Int(3), props); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("integer type: err = %v", err)
	}
	if _, err := Relationship(Identity(9), Identity(1), Identity(2), String("K"), List(nil)); KindOf(err) != ErrInvalidFieldType {
		t.Errorf("list properties: err = %v", err)
	}
	// Unresolved endpoints are representable as Null.
	if _, err := Relationship(Identity(9), Null, Null, String("K"), props); err != nil {
		t.Errorf("null endpoints: %v", err)
	}
}

func TestRelationshipAccessors(t *testing.T) {
	props := mustMap(t, []MapEntry{MapKV("since", Int(2010))})
	bound, err := Relationship(Identity(9), Identity(1), Identity(2), String("KNOWS"), props)
	if err != nil {
		t.Fatalf("bound: %v", err)
	}
	unbound, err := UnboundRelationship(Identity(9), String("KNOWS"), props)
	if err != nil {
		t.Fatalf("unbound: %v", err)
	}

	// Accessors branch on field count: bound carries 5 fields, unbound 3.
	for _, rel := range []Value{bound, unbound} {
		if !rel.RelationshipIdentity().Eq(Identity(9)) {
			t.Errorf("identity = %v", rel.RelationshipIdentity())
		}
		if !rel.RelationshipType().Eq(String("KNOWS")) {
			t.Errorf("type = %v", rel.RelationshipType())
		}
		if !rel.RelationshipProperties().Eq(props) {
			t.Errorf("properties = %v", rel.RelationshipProperties())
		}
	}
	if !bound.RelationshipStartNodeIdentity().Eq(Identity(1)) {
		t.Errorf("bound start = %v", bound.RelationshipStartNodeIdentity())
	}
	if !bound.RelationshipEndNodeIdentity().Eq(Identity(2)) {
		t.Errorf("bound end = %v", bound.RelationshipEndNodeIdentity())
	}
	if !unbound.RelationshipStartNodeIdentity().IsNull() {
		t.Error("unbound start must be Null")
	}
	if !unbound.RelationshipEndNodeIdentity().IsNull() {
		t.Error("unbound end must be Null")
	}

	// Bound and unbound share a signature but differ in field count,
	// so they never compare equal.
	if bound.Eq(unbound) {
		t.Error("bound and unbound relationships compare equal")
	}
}

func TestPathTraversal(t *testing.T) {
	n0 := testNode(t, 0, "A")
	n1 := testNode(t, 1, "B")
	n2 := testNode(t, 2, "C")
	r0 := testRel(t, 10, 0, 1, "X")
	r1 := testRel(t, 11, 2, 1, "Y")

	nodes := List([]Value{n0, n1, n2})
	rels := List([]Value{r0, r1})
	// Hop 1 follows r0 forward onto n1; hop 2 follows r1 against its
	// stored orientation onto n2.
	seq := List([]Value{Int(1), Int(1), Int(-2), Int(2)})

	path, err := Path(nodes, rels, seq)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if path.PathLength() != 2 {
		t.Fatalf("PathLength = %d, want 2", path.PathLength())
	}

	if got := path.PathGetNode(0); !got.Eq(n0) {
		t.Errorf("PathGetNode(0) = %v", got)
	}
	rel, forward := path.PathGetRelationship(0)
	if !rel.Eq(r0) || !forward {
		t.Errorf("PathGetRelationship(0) = %v, forward=%v", rel, forward)
	}
	if got := path.PathGetNode(1); !got.Eq(n1) {
		t.Errorf("PathGetNode(1) = %v", got)
	}
	rel, forward = path.PathGetRelationship(1)
	if !rel.Eq(r1) || forward {
		t.Errorf("PathGetRelationship(1) = %v, forward=%v", rel, forward)
	}
	if got := path.PathGetNode(2); !got.Eq(n2) {
		t.Errorf("PathGetNode(2) = %v", got)
	}

	if got := path.PathGetNode(3); !got.IsNull() {
		t.Errorf("PathGetNode past the end = %v, want Null", got)
	}
	if rel, _ := path.PathGetRelationship(2); !rel.IsNull() {
		t.Errorf("PathGetRelationship past the end = %v, want Null", rel)
	}
}

func TestPathSingleNode(t *testing.T) {
	n0 := testNode(t, 0, "A")
	path, err := Path(List([]Value{n0}), List(nil), List(nil))
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if path.PathLength() != 0 {
		t.Fatalf("PathLength = %d", path.PathLength())
	}
	if got := path.PathGetNode(0); !got.Eq(n0) {
		t.Errorf("PathGetNode(0) = %v", got)
	}
}

func TestPathValidation(t *testing.T) {
	n0 := testNode(t, 0, "A")
	n1 := testNode(t, 1, "B")
	r0 := testRel(t, 10, 0, 1, "X")
	nodes := List([]Value{n0, n1})
	rels := List([]Value{r0})

	cases := []struct {
		name  string
		nodes Value
		rels  Value
		seq   Value
		kind  ErrorKind
	}{
		{"non-list field", Int(1), rels, List(nil), ErrInvalidFieldType},
		{"non-node in nodes", List([]Value{Int(1)}), rels, List(nil), ErrInvalidPathNodeType},
		{"non-rel in rels", nodes, List([]Value{n0}), List(nil), ErrInvalidPathRelationshipType},
		{"odd sequence", nodes, rels, List([]Value{Int(1)}), ErrInvalidPathSequenceLength},
		{"non-int index", nodes, rels, List([]Value{String("1"), Int(0)}), ErrInvalidPathSequenceIdxType},
		{"zero rel index", nodes, rels, List([]Value{Int(0), Int(1)}), ErrInvalidPathSequenceIdxRange},
		{"rel index too large", nodes, rels, List([]Value{Int(2), Int(1)}), ErrInvalidPathSequenceIdxRange},
		{"negative rel index too large", nodes, rels, List([]Value{Int(-2), Int(1)}), ErrInvalidPathSequenceIdxRange},
		{"minimum int64 rel index", nodes, rels, List([]Value{Int(math.MinInt64), Int(1)}), ErrInvalidPathSequenceIdxRange},
		{"maximum int64 rel index", nodes, rels, List([]Value{Int(math.MaxInt64), Int(1)}), ErrInvalidPathSequenceIdxRange},
		{"node index at length", nodes, rels, List([]Value{Int(1), Int(2)}), ErrInvalidPathSequenceIdxRange},
		{"negative node index", nodes, rels, List([]Value{Int(1), Int(-1)}), ErrInvalidPathSequenceIdxRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := Path(c.nodes, c.rels, c.seq)
			if KindOf(err) != c.kind {
				t.Fatalf("err = %v, want kind %v", err, c.kind)
			}
			if !v.IsNull() {
				t.Fatalf("failed construction returned %v, want Null", v)
			}
		})
	}
}

func TestStructAccessors(t *testing.T) {
	s := Struct(0x66, []Value{Int(1), String("two")})
	if s.StructSize() != 2 {
		t.Fatalf("StructSize = %d", s.StructSize())
	}
	if got := s.StructGet(1); !got.Eq(String("two")) {
		t.Errorf("StructGet(1) = %v", got)
	}
	if got := s.StructGet(2); !got.IsNull() {
		t.Errorf("StructGet(2) = %v, want Null", got)
	}
	// Equality is signature first.
	if s.Eq(Struct(0x67, []Value{Int(1), String("two")})) {
		t.Error("structs with different signatures compare equal")
	}
	if s.Eq(Struct(0x66, []Value{Int(1)})) {
		t.Error("structs with different field counts compare equal")
	}
	if !s.Eq(Struct(0x66, []Value{Int(1), String("two")})) {
		t.Error("equal structs compare unequal")
	}
}
