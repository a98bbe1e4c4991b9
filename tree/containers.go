package tree

import (
	"github.com/dshills/gox12/spec"
	"github.com/dshills/gox12/x12"
)

// transactionView, loopView, and hloopView adapt a *Node of the
// corresponding Kind to the Container/HierarchicalContainer
// interfaces. They hold no state beyond the Node pointer; all of it
// lives on Node itself so that walking the tree never needs to know
// which view produced a given Node.

type transactionView struct{ n *Node }
type loopView struct{ n *Node }
type hloopView struct{ n *Node }

// AsContainer adapts a Node to the capability interface appropriate
// for its Kind. Returns nil, false for Interchange and FunctionGroup,
// which host no segments or loops directly.
func AsContainer(n *Node) (Container, bool) {
	switch n.Kind {
	case KindTransaction:
		return transactionView{n}, true
	case KindLoop:
		return loopView{n}, true
	case KindHierarchicalLoop:
		return hloopView{n}, true
	default:
		return nil, false
	}
}

// AsHierarchicalContainer adapts a Node to HierarchicalContainer.
// Returns nil, false for any Kind that cannot host HL children.
func AsHierarchicalContainer(n *Node) (HierarchicalContainer, bool) {
	switch n.Kind {
	case KindTransaction:
		return transactionView{n}, true
	case KindHierarchicalLoop:
		return hloopView{n}, true
	default:
		return nil, false
	}
}

func (v transactionView) AsNode() *Node { return v.n }
func (v loopView) AsNode() *Node        { return v.n }
func (v hloopView) AsNode() *Node       { return v.n }

func (v transactionView) TryAddSegment(id string, elements []string, force bool) AddSegmentResult {
	if !force && !v.n.TxSpec.AllowsSegment(id) {
		return AddSegmentResult{}
	}
	se := entrySegment(id, elements)
	appendSegment(v.n, se)
	return AddSegmentResult{Accepted: true, Entry: &se}
}

func (v transactionView) TryAddLoop(id string, elements []string) *Node {
	ls, ok := v.n.TxSpec.LoopStartedBy(id)
	if !ok {
		return nil
	}
	child := &Node{Kind: KindLoop, LoopSpec: ls}
	appendChildNode(v.n, child)
	appendSegment(child, entrySegment(id, elements))
	return child
}

func (v transactionView) AllowsHierarchicalLoop(levelCode string) bool {
	return v.n.TxSpec.AllowsLevelCode(levelCode)
}

func (v transactionView) HasHierarchicalSpecs() bool {
	return len(v.n.TxSpec.HLoops) > 0
}

func (v transactionView) TryAddHLoop(id, parentID, levelCode string, elements []string) *Node {
	hs, ok := v.n.TxSpec.HLoopByLevelCode(levelCode)
	if !ok {
		return nil
	}
	child := &Node{Kind: KindHierarchicalLoop, HLID: id, HLParent: parentID, LevelCode: levelCode, HLSpec: hs}
	appendChildNode(v.n, child)
	appendSegment(child, entrySegment("HL", elements))
	return child
}

func (v loopView) TryAddSegment(id string, elements []string, force bool) AddSegmentResult {
	if !force && !v.n.LoopSpec.AllowsSegment(id) {
		return AddSegmentResult{}
	}
	se := entrySegment(id, elements)
	appendSegment(v.n, se)
	return AddSegmentResult{Accepted: true, Entry: &se}
}

func (v loopView) TryAddLoop(id string, elements []string) *Node {
	ls, ok := v.n.LoopSpec.LoopStartedBy(id)
	if !ok {
		return nil
	}
	child := &Node{Kind: KindLoop, LoopSpec: ls}
	appendChildNode(v.n, child)
	appendSegment(child, entrySegment(id, elements))
	return child
}

func (v hloopView) TryAddSegment(id string, elements []string, force bool) AddSegmentResult {
	if !force && !v.n.HLSpec.AllowsSegment(id) {
		return AddSegmentResult{}
	}
	se := entrySegment(id, elements)
	appendSegment(v.n, se)
	return AddSegmentResult{Accepted: true, Entry: &se}
}

func (v hloopView) TryAddLoop(id string, elements []string) *Node {
	ls, ok := v.n.HLSpec.LoopStartedBy(id)
	if !ok {
		return nil
	}
	child := &Node{Kind: KindLoop, LoopSpec: ls}
	appendChildNode(v.n, child)
	appendSegment(child, entrySegment(id, elements))
	return child
}

func (v hloopView) AllowsHierarchicalLoop(levelCode string) bool {
	return v.n.HLSpec.AllowsLevelCode(levelCode)
}

func (v hloopView) HasHierarchicalSpecs() bool {
	return v.n.HLSpec.HasHierarchicalSpecs()
}

func (v hloopView) TryAddHLoop(id, parentID, levelCode string, elements []string) *Node {
	hs, ok := v.n.HLSpec.HLoopByLevelCode(levelCode)
	if !ok {
		return nil
	}
	child := &Node{Kind: KindHierarchicalLoop, HLID: id, HLParent: parentID, LevelCode: levelCode, HLSpec: hs}
	appendChildNode(v.n, child)
	appendSegment(child, entrySegment("HL", elements))
	return child
}

// NewInterchange constructs a root Interchange node.
func NewInterchange(isa SegmentEntry, delims x12.Delimiters) *Node {
	return &Node{Kind: KindInterchange, ISA: &isa, Delims: delims}
}

// AddFunctionGroup attaches a new FunctionGroup child to an
// Interchange.
func AddFunctionGroup(interchange *Node, gs SegmentEntry) *Node {
	child := &Node{Kind: KindFunctionGroup, GS: &gs}
	appendChildNode(interchange, child)
	return child
}

// AddTransaction attaches a new Transaction child to a FunctionGroup,
// scoped to txSpec for the lifetime of the transaction.
func AddTransaction(group *Node, txSpec spec.TransactionSpecification) *Node {
	child := &Node{Kind: KindTransaction, TxSpec: txSpec, HLoops: make(map[string]*Node)}
	appendChildNode(group, child)
	return child
}

// Walk visits every segment under n in document order, including the
// ISA/GS/ST headers and IEA/GE/SE trailers held on envelope nodes,
// calling visit once per segment with the chain of Nodes from n down
// to the container that holds the segment.
func Walk(n *Node, visit func(path []*Node, seg *SegmentEntry)) {
	walk(n, nil, visit)
}

func walk(n *Node, path []*Node, visit func([]*Node, *SegmentEntry)) {
	path = append(path, n)
	var header, trailer *SegmentEntry
	switch n.Kind {
	case KindInterchange:
		header, trailer = n.ISA, n.IEA
	case KindFunctionGroup:
		header, trailer = n.GS, n.GE
	case KindTransaction:
		header, trailer = n.ST, n.SE
	}
	if header != nil {
		visit(path, header)
	}
	for _, entry := range n.Children {
		if entry.Segment != nil {
			visit(path, entry.Segment)
		} else if entry.Child != nil {
			walk(entry.Child, path, visit)
		}
	}
	if trailer != nil {
		visit(path, trailer)
	}
}
