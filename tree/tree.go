// Package tree implements the strictly tree-shaped container structure
// that a parsed interchange is reconstructed into: Interchange ->
// FunctionGroup -> Transaction -> (Loop | HierarchicalLoop)*, with
// upward, non-owning parent references.
//
// The source material this module generalizes from models these
// containers as a class hierarchy. Go has no implementation
// inheritance, so this package re-expresses it as a tagged variant
// (Node, holding a Kind plus the fields any kind might need) with two
// narrow capability interfaces, Container and HierarchicalContainer,
// that the structural parser dispatches on instead of on concrete
// type.
package tree

import (
	"github.com/dshills/gox12/spec"
	"github.com/dshills/gox12/x12"
)

// Kind tags the variant a Node represents.
type Kind int

const (
	KindInterchange Kind = iota
	KindFunctionGroup
	KindTransaction
	KindLoop
	KindHierarchicalLoop
)

func (k Kind) String() string {
	switch k {
	case KindInterchange:
		return "Interchange"
	case KindFunctionGroup:
		return "FunctionGroup"
	case KindTransaction:
		return "Transaction"
	case KindLoop:
		return "Loop"
	case KindHierarchicalLoop:
		return "HierarchicalLoop"
	default:
		return "Unknown"
	}
}

// Entry is one child of a Node, in document order. Exactly one of
// Segment or Child is set: a bare segment, or a nested container.
type Entry struct {
	Segment *SegmentEntry
	Child   *Node
}

// SegmentEntry wraps a raw element-decomposed segment as stored in the
// tree; see x12.Segment for field access.
type SegmentEntry struct {
	ID       string
	Elements []string // raw element values, positional, 1-indexed by slice position+1
}

// Node is one container in the tree. Which fields are meaningful
// depends on Kind.
type Node struct {
	Kind Kind

	// Parent is a non-owning upward reference; nil at the root. It
	// exists purely to support the detail-placement walk (§4.3.2) and
	// HL ascent (§4.3.1); nothing should ever need to reach the root
	// from application code by chasing this pointer except the parser
	// itself.
	Parent *Node

	// Children holds segments and nested containers in document
	// order.
	Children []Entry

	// Interchange fields.
	ISA    *SegmentEntry
	IEA    *SegmentEntry
	TA1s   []SegmentEntry
	Delims x12.Delimiters

	// FunctionGroup fields.
	GS *SegmentEntry
	GE *SegmentEntry

	// Transaction fields.
	ST       *SegmentEntry
	SE       *SegmentEntry
	HLoops   map[string]*Node // HL01 -> node, scoped to this transaction
	TxSpec   spec.TransactionSpecification

	// Loop fields (also used by HierarchicalLoop for its nested,
	// non-hierarchical loop children).
	LoopSpec spec.LoopSpecification

	// HierarchicalLoop-only fields.
	HLID      string
	HLParent  string
	LevelCode string
	HLSpec    spec.HierarchicalLoopSpecification
}

// AddSegmentResult communicates whether a segment was accepted, and if
// so, the stored entry.
type AddSegmentResult struct {
	Accepted bool
	Entry    *SegmentEntry
}

// Container is the capability shared by every node that may directly
// host segments and child loops: Transaction, Loop, and
// HierarchicalLoop.
type Container interface {
	// TryAddSegment accepts the segment if its id is a direct child
	// per this container's specification (or force is true). Returns
	// Accepted=false without mutating anything if the segment is not
	// this container's to take.
	TryAddSegment(id string, elements []string, force bool) AddSegmentResult

	// TryAddLoop starts a new, non-hierarchical child loop if id
	// matches some child LoopSpecification's Starts. Returns nil if
	// none matches.
	TryAddLoop(id string, elements []string) *Node

	// AsNode returns the underlying Node.
	AsNode() *Node
}

// HierarchicalContainer is the capability shared by nodes that may
// host HL children: Transaction and HierarchicalLoop.
type HierarchicalContainer interface {
	Container

	// AllowsHierarchicalLoop reports whether this container accepts
	// an HL child at the given level code.
	AllowsHierarchicalLoop(levelCode string) bool

	// HasHierarchicalSpecs reports whether this container accepts any
	// HL children at all, regardless of level code.
	HasHierarchicalSpecs() bool

	// TryAddHLoop constructs and attaches a new HierarchicalLoop child
	// if levelCode is accepted; returns nil otherwise. Does not check
	// HL ID uniqueness — callers (the structural parser) own the
	// transaction-scoped HLoops map.
	TryAddHLoop(id, parentID, levelCode string, elements []string) *Node
}

func entrySegment(id string, elements []string) SegmentEntry {
	return SegmentEntry{ID: id, Elements: elements}
}

func appendChildNode(parent *Node, child *Node) {
	child.Parent = parent
	parent.Children = append(parent.Children, Entry{Child: child})
}

func appendSegment(n *Node, se SegmentEntry) {
	n.Children = append(n.Children, Entry{Segment: &se})
}
