package serialize

import (
	"bufio"
	"io"
	"sync"

	"github.com/dshills/gox12/tree"
)

// Writer provides a streaming interface for writing interchanges.
// It buffers writes for efficiency and supports configurable
// serialization options.
type Writer interface {
	// Write serializes and writes an interchange to the underlying
	// writer.
	Write(interchange *tree.Node) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close flushes any remaining data and releases resources. After
	// Close is called, the Writer should not be used.
	Close() error
}

// writer is the concrete implementation of Writer.
type writer struct {
	w      *bufio.Writer
	enc    Serializer
	mu     sync.Mutex
	closed bool
}

// NewWriter creates a new Writer that writes serialized interchanges
// to w. The Writer uses buffered I/O for efficiency.
func NewWriter(w io.Writer, opts ...SerializerOption) Writer {
	return &writer{
		w:   bufio.NewWriter(w),
		enc: New(opts...),
	}
}

// Write serializes and writes an interchange to the underlying
// writer. This method is safe for concurrent use.
func (wr *writer) Write(interchange *tree.Node) error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.closed {
		return &Error{Message: "writer is closed"}
	}
	if interchange == nil {
		return &Error{Message: "cannot write nil interchange"}
	}

	data, err := wr.enc.Serialize(interchange)
	if err != nil {
		return err
	}
	if _, err := wr.w.Write(data); err != nil {
		return &Error{Message: "failed to write interchange", Cause: err}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer. This
// method is safe for concurrent use.
func (wr *writer) Flush() error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.closed {
		return &Error{Message: "writer is closed"}
	}
	if err := wr.w.Flush(); err != nil {
		return &Error{Message: "failed to flush buffer", Cause: err}
	}
	return nil
}

// Close flushes any remaining data and marks the writer as closed.
// After Close is called, subsequent Write or Flush calls return an
// error. This method is safe for concurrent use.
func (wr *writer) Close() error {
	wr.mu.Lock()
	defer wr.mu.Unlock()

	if wr.closed {
		return nil
	}

	err := wr.w.Flush()
	wr.closed = true
	if err != nil {
		return &Error{Message: "failed to flush on close", Cause: err}
	}
	return nil
}
