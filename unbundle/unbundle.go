// Package unbundle splits one parsed interchange into several,
// either one per transaction or one per matching loop subtree. Both
// operations synthesize a new envelope around the extracted content
// and reparse it, so every output satisfies the same tree invariants
// as any direct parse.
package unbundle

import (
	"fmt"

	"github.com/dshills/gox12/parse"
	"github.com/dshills/gox12/serialize"
	"github.com/dshills/gox12/tree"
)

// Unbundler splits interchanges along transaction or loop boundaries.
type Unbundler struct {
	parserOpts []parse.ParserOption
}

// New constructs an Unbundler. opts configure the parser each
// synthesized interchange is reparsed with; they should normally
// match the options used for the original parse (same
// SpecificationFinder, same strict/lenient mode).
func New(opts ...parse.ParserOption) *Unbundler {
	return &Unbundler{parserOpts: opts}
}

// Error wraps a failure to synthesize or reparse an unbundled
// interchange.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unbundle: %s: %v", e.Message, e.Cause)
	}
	return "unbundle: " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// ByTransaction splits interchange into one interchange per (group,
// transaction) pair in document order, each wrapping the original
// ISA/GS/GE/IEA trailer segments around exactly one ST/SE body.
func (u *Unbundler) ByTransaction(interchange *tree.Node) ([]*tree.Node, error) {
	if interchange == nil || interchange.Kind != tree.KindInterchange {
		return nil, &Error{Message: "ByTransaction requires an Interchange node"}
	}

	var out []*tree.Node
	for _, entry := range interchange.Children {
		if entry.Child == nil || entry.Child.Kind != tree.KindFunctionGroup {
			continue
		}
		group := entry.Child
		for _, txEntry := range group.Children {
			if txEntry.Child == nil || txEntry.Child.Kind != tree.KindTransaction {
				continue
			}
			node, err := u.synthesize(interchange, group, txEntry.Child)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
		}
	}
	return out, nil
}

// ByLoop splits interchange into one interchange per maximal loop
// subtree matching loopID, in document order. Every transaction is
// searched independently; a loop nested inside another matching loop
// is not reported a second time. Each output carries the matching
// loop's full ancestor chain (so any hierarchical loop it is nested
// under reparses with the same parent linkage) plus the original
// transaction's own leading, non-loop segments such as BHT.
func (u *Unbundler) ByLoop(interchange *tree.Node, loopID string) ([]*tree.Node, error) {
	if interchange == nil || interchange.Kind != tree.KindInterchange {
		return nil, &Error{Message: "ByLoop requires an Interchange node"}
	}

	var out []*tree.Node
	for _, entry := range interchange.Children {
		if entry.Child == nil || entry.Child.Kind != tree.KindFunctionGroup {
			continue
		}
		group := entry.Child
		for _, txEntry := range group.Children {
			if txEntry.Child == nil || txEntry.Child.Kind != tree.KindTransaction {
				continue
			}
			tx := txEntry.Child
			for _, path := range findLoopPaths(tx, loopID) {
				standalone := &tree.Node{
					Kind:     tree.KindTransaction,
					ST:       tx.ST,
					SE:       tx.SE,
					TxSpec:   tx.TxSpec,
					HLoops:   make(map[string]*tree.Node),
					Children: append(leadingSegments(tx), tree.Entry{Child: rebuildChain(path)}),
				}
				node, err := u.synthesize(interchange, group, standalone)
				if err != nil {
					return nil, err
				}
				out = append(out, node)
			}
		}
	}
	return out, nil
}

// findLoopPaths returns, for every maximal Loop descendant of n whose
// LoopSpec.LoopID equals loopID, the chain of ancestor containers
// from n's direct child down to and including the match.
func findLoopPaths(n *tree.Node, loopID string) [][]*tree.Node {
	var out [][]*tree.Node
	for _, entry := range n.Children {
		if entry.Child == nil {
			continue
		}
		child := entry.Child
		if child.Kind == tree.KindLoop && child.LoopSpec.LoopID == loopID {
			out = append(out, []*tree.Node{child})
			continue
		}
		for _, sub := range findLoopPaths(child, loopID) {
			out = append(out, append([]*tree.Node{child}, sub...))
		}
	}
	return out
}

// leadingSegments returns a container's own direct segment entries
// (skipping nested containers).
func leadingSegments(n *tree.Node) []tree.Entry {
	var out []tree.Entry
	for _, e := range n.Children {
		if e.Segment != nil {
			out = append(out, e)
		}
	}
	return out
}

// rebuildChain reconstructs path as a single nested chain: each
// ancestor keeps its own direct segments (its HL header, or a loop's
// starting segment and siblings) but only the one child leading to
// the eventual match, whose full original subtree is preserved
// untouched.
func rebuildChain(path []*tree.Node) *tree.Node {
	node := path[len(path)-1]
	for i := len(path) - 2; i >= 0; i-- {
		wrapper := shallowCopy(path[i])
		wrapper.Children = append(wrapper.Children, tree.Entry{Child: node})
		node = wrapper
	}
	return node
}

// shallowCopy copies n's identifying fields and its own direct
// segment entries, dropping its nested child containers.
func shallowCopy(n *tree.Node) *tree.Node {
	cp := *n
	cp.Children = leadingSegments(n)
	return &cp
}

// synthesize wraps tx in a standalone functional group and
// interchange, reusing original's ISA/IEA and group's GS/GE trailer
// segments, then serializes and reparses the result.
func (u *Unbundler) synthesize(original, group, tx *tree.Node) (*tree.Node, error) {
	newGroup := &tree.Node{
		Kind:     tree.KindFunctionGroup,
		GS:       group.GS,
		GE:       group.GE,
		Children: []tree.Entry{{Child: tx}},
	}
	newInterchange := &tree.Node{
		Kind:     tree.KindInterchange,
		ISA:      original.ISA,
		IEA:      original.IEA,
		Delims:   original.Delims,
		Children: []tree.Entry{{Child: newGroup}},
	}

	data, err := serialize.New().Serialize(newInterchange)
	if err != nil {
		return nil, &Error{Message: "failed to synthesize interchange", Cause: err}
	}

	nodes, err := parse.New(u.parserOpts...).ParseString(string(data))
	if err != nil {
		return nil, &Error{Message: "synthesized interchange failed to reparse", Cause: err}
	}
	if len(nodes) != 1 {
		return nil, &Error{Message: "synthesized interchange did not reparse to exactly one interchange"}
	}
	return nodes[0], nil
}
