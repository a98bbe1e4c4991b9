package serialize

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dshills/gox12/tree"
	"github.com/dshills/gox12/x12"
)

// Serializer converts interchange trees to their X12 wire-format
// bytes.
type Serializer interface {
	// Serialize renders one interchange's full wire form: ISA,
	// every functional group and transaction it contains in document
	// order, and the closing IEA.
	Serialize(interchange *tree.Node) ([]byte, error)

	// SerializeToWriter writes the same output to w in a single Write.
	// ctx is checked once, before serialization starts; it is not
	// checked again between children.
	SerializeToWriter(ctx context.Context, w io.Writer, interchange *tree.Node) error
}

type serializer struct {
	config serializerConfig
}

// New creates a new Serializer with the given options.
func New(opts ...SerializerOption) Serializer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &serializer{config: cfg}
}

// Serialize implements Serializer.
func (s *serializer) Serialize(interchange *tree.Node) ([]byte, error) {
	if interchange == nil {
		return nil, &Error{Message: "cannot serialize nil interchange"}
	}
	if interchange.Kind != tree.KindInterchange {
		return nil, &Error{Message: fmt.Sprintf("expected an Interchange node, got %s", interchange.Kind)}
	}

	estimatedSize := len(interchange.Children) * 100
	var buf bytes.Buffer
	buf.Grow(estimatedSize)

	if err := s.writeInterchange(&buf, interchange); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeToWriter implements Serializer.
func (s *serializer) SerializeToWriter(ctx context.Context, w io.Writer, interchange *tree.Node) error {
	if interchange == nil {
		return &Error{Message: "cannot serialize nil interchange"}
	}
	if interchange.Kind != tree.KindInterchange {
		return &Error{Message: fmt.Sprintf("expected an Interchange node, got %s", interchange.Kind)}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := s.Serialize(interchange)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return &Error{Message: "failed to write interchange", Cause: err}
	}
	return nil
}

func (s *serializer) writeSegment(buf *bytes.Buffer, se *tree.SegmentEntry, delims x12.Delimiters) {
	seg := x12.Segment{ID: se.ID}
	for i, v := range se.Elements {
		seg.Elements = append(seg.Elements, x12.Element{ID: elementID(i + 1), Value: v})
	}
	buf.Write(seg.Bytes(delims))
	buf.WriteByte(delims.Terminator)
	buf.WriteString(s.config.lineEnding)
}

func elementID(n int) string {
	if n < 10 {
		return fmt.Sprintf("0%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func (s *serializer) writeInterchange(buf *bytes.Buffer, n *tree.Node) error {
	delims := n.Delims
	if n.ISA == nil {
		return &Error{Message: "interchange has no ISA segment"}
	}
	s.writeSegment(buf, n.ISA, delims)

	for _, entry := range n.Children {
		switch {
		case entry.Segment != nil:
			s.writeSegment(buf, entry.Segment, delims)
		case entry.Child != nil && entry.Child.Kind == tree.KindFunctionGroup:
			if err := s.writeFunctionGroup(buf, entry.Child, delims); err != nil {
				return err
			}
		}
	}

	if n.IEA != nil {
		s.writeSegment(buf, n.IEA, delims)
	}
	return nil
}

func (s *serializer) writeFunctionGroup(buf *bytes.Buffer, n *tree.Node, delims x12.Delimiters) error {
	if n.GS != nil {
		s.writeSegment(buf, n.GS, delims)
	}
	for _, entry := range n.Children {
		if entry.Child != nil && entry.Child.Kind == tree.KindTransaction {
			if err := s.writeTransaction(buf, entry.Child, delims); err != nil {
				return err
			}
		}
	}
	if n.GE != nil {
		s.writeSegment(buf, n.GE, delims)
	}
	return nil
}

func (s *serializer) writeTransaction(buf *bytes.Buffer, n *tree.Node, delims x12.Delimiters) error {
	if n.ST != nil {
		s.writeSegment(buf, n.ST, delims)
	}
	s.writeChildren(buf, n, delims)
	if n.SE != nil {
		s.writeSegment(buf, n.SE, delims)
	}
	return nil
}

func (s *serializer) writeChildren(buf *bytes.Buffer, n *tree.Node, delims x12.Delimiters) {
	for _, entry := range n.Children {
		if entry.Segment != nil {
			s.writeSegment(buf, entry.Segment, delims)
			continue
		}
		if entry.Child == nil {
			continue
		}
		child := entry.Child
		switch child.Kind {
		case tree.KindHierarchicalLoop:
			s.writeHLoop(buf, child, delims)
		case tree.KindLoop:
			s.writeLoop(buf, child, delims)
		}
	}
}

func (s *serializer) writeLoop(buf *bytes.Buffer, n *tree.Node, delims x12.Delimiters) {
	s.writeChildren(buf, n, delims)
}

func (s *serializer) writeHLoop(buf *bytes.Buffer, n *tree.Node, delims x12.Delimiters) {
	s.writeChildren(buf, n, delims)
}

// Error represents an error that occurred during serialization.
type Error struct {
	// Message describes what went wrong.
	Message string
	// Segment is the segment id where the error occurred (if applicable).
	Segment string
	// Cause is the underlying error that caused this serialize error.
	Cause error
}

func (e *Error) Error() string {
	msg := "serialize error"
	if e.Segment != "" {
		msg = fmt.Sprintf("%s at segment %s", msg, e.Segment)
	}
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
