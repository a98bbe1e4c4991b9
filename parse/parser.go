package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/gox12/spec"
	"github.com/dshills/gox12/stream"
	"github.com/dshills/gox12/tree"
	"github.com/dshills/gox12/x12"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Parser is the structural parser: it turns a framed segment stream
// into a list of interchange trees, consulting a
// spec.TransactionSpecification to resolve ambiguous loop placement
// (the detail and hierarchical-loop placement algorithms).
//
// A Parser holds only configuration; all per-parse mutable state lives
// in an unexported parseState built fresh by each call to
// ParseMultiple, so a single Parser may be used concurrently across
// distinct streams as long as its Finder is safe for concurrent reads
// (spec.EmbeddedFinder and spec.YAMLFinder both are).
type Parser struct {
	strict       bool
	ignoredChars []byte
	finder       spec.Finder
	warnFn       x12.WarningFunc
	log          *logrus.Entry
}

// New constructs a Parser. Strict mode defaults to true; callers that
// want syntax-error tolerance must pass WithStrictMode(false)
// explicitly.
func New(opts ...ParserOption) *Parser {
	p := &Parser{strict: true}
	for _, opt := range opts {
		opt(p)
	}
	if p.finder == nil {
		p.finder = defaultFinder()
	}
	if p.log == nil {
		p.log = discardLogger()
	}
	return p
}

// ParseString is a convenience wrapper over ParseMultiple for
// in-memory input.
func (p *Parser) ParseString(s string) ([]*tree.Node, error) {
	return p.ParseMultiple(strings.NewReader(s))
}

// ParseMultiple reads every interchange framed in r and returns their
// container trees in document order. An empty stream yields a nil
// slice and a nil error. A non-empty structural error list at
// end-of-stream is raised as a single *x12.AggregateError and the
// partial trees are discarded, per this package's strict-by-default
// posture.
func (p *Parser) ParseMultiple(r io.Reader) ([]*tree.Node, error) {
	correlationID := uuid.NewString()
	log := p.log.WithField("correlation_id", correlationID)

	reader, err := stream.NewReader(r, stream.WithIgnoredChars(p.ignoredChars...))
	if err != nil {
		return nil, err
	}

	st := &parseState{
		p:             p,
		reader:        reader,
		delims:        reader.Delimiters(),
		agg:           &x12.AggregateError{CorrelationID: correlationID},
		correlationID: correlationID,
		log:           log,
	}

	for {
		raw, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &x12.StructuralError{Kind: x12.KindIO, Reason: err.Error(), Cause: err}
		}
		st.segmentIndex++
		st.dispatch(raw)
	}

	if !st.agg.Empty() {
		log.WithField("error_count", len(st.agg.Errors)).Warn("parse failed with structural errors")
		return nil, st.agg
	}
	return st.interchanges, nil
}

// parseState carries the mutable state of one ParseMultiple
// invocation: the open interchange/group/transaction, the insertion
// point the placement algorithms walk from, and the transaction-scoped
// HL id registry.
type parseState struct {
	p      *Parser
	reader *stream.Reader
	delims x12.Delimiters
	log    *logrus.Entry

	interchanges       []*tree.Node
	currentInterchange *tree.Node
	currentGroup       *tree.Node
	currentGroupCode   string
	currentTransaction *tree.Node
	currentContainer   *tree.Node

	segmentIndex   int
	containerStack []string

	agg           *x12.AggregateError
	correlationID string
}

func (st *parseState) dispatch(raw string) {
	id := stream.SegmentID(raw, st.delims)
	seg := x12.ParseSegment(raw, st.delims)

	switch id {
	case "ISA":
		st.startInterchange(raw, seg)
	case "IEA":
		st.endInterchange(seg)
	case "GS":
		st.startGroup(seg)
	case "GE":
		st.endGroup(seg)
	case "ST":
		st.startTransaction(seg)
	case "SE":
		st.endTransaction(seg)
	case "HL":
		st.placeHL(seg)
	case "TA1":
		st.attachTA1(seg)
	default:
		st.placeDetail(seg)
	}
}

func elementValues(seg x12.Segment) []string {
	out := make([]string, len(seg.Elements))
	for i, el := range seg.Elements {
		out[i] = el.Value
	}
	return out
}

func (st *parseState) recordError(kind x12.Kind, reason, segmentID, raw string) {
	se := &x12.StructuralError{
		Kind:         kind,
		SegmentIndex: st.segmentIndex,
		SegmentID:    segmentID,
		Segment:      raw,
		Reason:       reason,
	}
	if st.currentTransaction != nil {
		se.TransactionCode = st.currentTransaction.TxSpec.TransactionSetIdentifierCode
		if st.currentTransaction.ST != nil && len(st.currentTransaction.ST.Elements) >= 2 {
			se.ControlNumber = st.currentTransaction.ST.Elements[1]
		}
	}
	st.agg.Add(se)
	st.log.WithFields(logrus.Fields{
		"kind":       kind.String(),
		"segment_id": segmentID,
		"index":      st.segmentIndex,
	}).Debug(reason)
}

func (st *parseState) warn(message, segmentID, raw string) {
	w := x12.Warning{
		SegmentIndex: st.segmentIndex,
		SegmentID:    segmentID,
		Segment:      raw,
		Message:      message,
		FileIsValid:  false,
	}
	if st.currentInterchange != nil && st.currentInterchange.ISA != nil && len(st.currentInterchange.ISA.Elements) >= 13 {
		w.InterchangeControl = st.currentInterchange.ISA.Elements[12]
	}
	if st.currentGroup != nil && st.currentGroup.GS != nil && len(st.currentGroup.GS.Elements) >= 6 {
		w.GroupControl = st.currentGroup.GS.Elements[5]
	}
	if st.currentTransaction != nil && st.currentTransaction.ST != nil && len(st.currentTransaction.ST.Elements) >= 2 {
		w.TransactionControl = st.currentTransaction.ST.Elements[1]
	}
	st.log.WithField("segment_id", segmentID).Warn(message)
	if st.p.warnFn != nil {
		st.p.warnFn(w)
	}
}

func (st *parseState) startInterchange(raw string, seg x12.Segment) {
	newDelims, err := stream.RediscoverDelimiters(raw, st.delims.Terminator)
	if err != nil {
		st.recordError(x12.KindMalformedHeader, err.Error(), seg.ID, raw)
		return
	}
	st.delims = newDelims
	seg = x12.ParseSegment(raw, newDelims)

	node := tree.NewInterchange(tree.SegmentEntry{ID: "ISA", Elements: elementValues(seg)}, newDelims)
	st.interchanges = append(st.interchanges, node)
	st.currentInterchange = node
	st.currentGroup = nil
	st.currentTransaction = nil
	st.currentContainer = nil
}

func (st *parseState) endInterchange(seg x12.Segment) {
	if st.currentInterchange == nil {
		st.recordError(x12.KindMismatchSegment, "IEA with no open interchange", seg.ID, seg.String())
		return
	}
	st.currentInterchange.IEA = &tree.SegmentEntry{ID: "IEA", Elements: elementValues(seg)}
	st.currentInterchange = nil
	st.currentGroup = nil
	st.currentTransaction = nil
	st.currentContainer = nil
}

func (st *parseState) startGroup(seg x12.Segment) {
	if st.currentInterchange == nil {
		st.recordError(x12.KindMissingPrecedingSegment, "GS before ISA", seg.ID, seg.String())
		return
	}
	grp := tree.AddFunctionGroup(st.currentInterchange, tree.SegmentEntry{ID: "GS", Elements: elementValues(seg)})
	st.currentGroup = grp
	st.currentGroupCode = seg.Val(1)
	st.currentTransaction = nil
	st.currentContainer = nil
}

func (st *parseState) endGroup(seg x12.Segment) {
	if st.currentGroup == nil {
		st.recordError(x12.KindMismatchSegment, "GE with no open group", seg.ID, seg.String())
		return
	}
	st.currentGroup.GE = &tree.SegmentEntry{ID: "GE", Elements: elementValues(seg)}
	st.currentGroup = nil
	st.currentTransaction = nil
	st.currentContainer = nil
}

func (st *parseState) startTransaction(seg x12.Segment) {
	if st.currentGroup == nil {
		st.recordError(x12.KindMissingGsSegment, "ST with no open functional group", seg.ID, seg.String())
		return
	}

	versionRelease := ""
	if st.currentGroup.GS != nil && len(st.currentGroup.GS.Elements) >= 8 {
		versionRelease = st.currentGroup.GS.Elements[7]
	}
	txSpec, ok := st.p.finder.Find(st.currentGroupCode, versionRelease, seg.Val(1))
	if !ok {
		st.log.WithFields(logrus.Fields{
			"functional_group_code": st.currentGroupCode,
			"version_release":       versionRelease,
			"transaction_set":       seg.Val(1),
		}).Warn("no transaction specification found, detail segments will not be placeable")
	}

	tx := tree.AddTransaction(st.currentGroup, txSpec)
	tx.ST = &tree.SegmentEntry{ID: "ST", Elements: elementValues(seg)}
	st.currentTransaction = tx
	st.currentContainer = tx
	st.segmentIndex = 1
}

func (st *parseState) endTransaction(seg x12.Segment) {
	if st.currentTransaction == nil {
		st.recordError(x12.KindMismatchSegment, "SE with no open transaction", seg.ID, seg.String())
		return
	}
	st.currentTransaction.SE = &tree.SegmentEntry{ID: "SE", Elements: elementValues(seg)}
	st.currentTransaction = nil
	st.currentContainer = nil
}

func (st *parseState) attachTA1(seg x12.Segment) {
	if st.currentInterchange == nil {
		st.recordError(x12.KindMismatchSegment, "TA1 with no open interchange", seg.ID, seg.String())
		return
	}
	entry := tree.SegmentEntry{ID: "TA1", Elements: elementValues(seg)}
	st.currentInterchange.TA1s = append(st.currentInterchange.TA1s, entry)
	st.currentInterchange.Children = append(st.currentInterchange.Children, tree.Entry{Segment: &entry})
}

// placeHL implements the hierarchical-loop placement algorithm
// (SPEC_FULL.md §4.3.1).
func (st *parseState) placeHL(seg x12.Segment) {
	if st.currentTransaction == nil {
		st.recordError(x12.KindNoOpenTransaction, "HL with no open transaction", seg.ID, seg.String())
		return
	}

	id, parentID, levelCode := seg.Val(1), seg.Val(2), seg.Val(3)

	start := st.currentContainer
	if start == nil {
		start = st.currentTransaction
	}

	var anchor tree.HierarchicalContainer
	for cur := start; cur != nil; cur = cur.Parent {
		if hc, ok := tree.AsHierarchicalContainer(cur); ok && hc.AllowsHierarchicalLoop(levelCode) {
			anchor = hc
			break
		}
	}
	if anchor == nil {
		st.recordError(x12.KindInvalidHLoopSpecification,
			fmt.Sprintf("no ancestor accepts level code %q", levelCode), seg.ID, seg.String())
		return
	}

	target := anchor
	if parentID != "" {
		parentNode, found := st.currentTransaction.HLoops[parentID]
		if found {
			if hc, ok := tree.AsHierarchicalContainer(parentNode); ok {
				target = hc
			}
		} else {
			if st.p.strict {
				st.recordError(x12.KindMissingParentID,
					fmt.Sprintf("HL02 references unknown parent id %q", parentID), seg.ID, seg.String())
				return
			}
			st.warn(fmt.Sprintf("HL %q references unknown parent %q, attaching at nearest hierarchical ancestor instead", id, parentID), seg.ID, seg.String())
			// target remains anchor, per SPEC_FULL.md open-question decision 2.
		}
	}

	if _, exists := st.currentTransaction.HLoops[id]; exists {
		st.recordError(x12.KindHLoopIDExists, fmt.Sprintf("duplicate HL01 %q", id), seg.ID, seg.String())
		return
	}

	node := target.TryAddHLoop(id, parentID, levelCode, elementValues(seg))
	if node == nil {
		st.recordError(x12.KindInvalidHLoopSpecification,
			fmt.Sprintf("resolved parent does not accept level code %q", levelCode), seg.ID, seg.String())
		return
	}

	st.currentTransaction.HLoops[id] = node
	st.currentContainer = node
}

// placeDetail implements the detail-segment placement algorithm
// (SPEC_FULL.md §4.3.2): walk the current container upward, trying
// each ancestor's add_segment then add_loop, until the segment is
// placed or the walk reaches the open transaction.
func (st *parseState) placeDetail(seg x12.Segment) {
	if st.currentTransaction == nil {
		st.recordError(x12.KindNoOpenTransaction, "detail segment with no open transaction", seg.ID, seg.String())
		return
	}

	original := st.currentContainer
	if original == nil {
		original = st.currentTransaction
	}
	st.containerStack = st.containerStack[:0]

	for cur := original; cur != nil; cur = cur.Parent {
		c, ok := tree.AsContainer(cur)
		if ok {
			if res := c.TryAddSegment(seg.ID, elementValues(seg), false); res.Accepted {
				if seg.ID == "LE" {
					st.currentContainer = cur.Parent
				}
				return
			}
			if loopNode := c.TryAddLoop(seg.ID, elementValues(seg)); loopNode != nil {
				st.currentContainer = loopNode
				return
			}
		}

		if cur.Kind == tree.KindTransaction {
			if st.p.strict {
				st.recordError(x12.KindSegmentCannotBeIdentified,
					fmt.Sprintf("breadcrumbs: %v", st.containerStack), seg.ID, seg.String())
				return
			}
			oc, _ := tree.AsContainer(original)
			oc.TryAddSegment(seg.ID, elementValues(seg), true)
			lastPopped := ""
			if len(st.containerStack) > 0 {
				lastPopped = st.containerStack[len(st.containerStack)-1]
			}
			st.warn(fmt.Sprintf("segment %s could not be identified, forced onto last known container (last popped: %s)", seg.ID, lastPopped), seg.ID, seg.String())
			st.currentContainer = original
			return
		}

		st.containerStack = append(st.containerStack, breadcrumbFor(cur))
	}
}

func breadcrumbFor(n *tree.Node) string {
	switch n.Kind {
	case tree.KindHierarchicalLoop:
		return fmt.Sprintf("%s[%s]", n.HLSpec.Name, n.HLID)
	case tree.KindLoop:
		return n.LoopSpec.LoopID
	default:
		return n.Kind.String()
	}
}
