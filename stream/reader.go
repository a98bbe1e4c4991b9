// Package stream provides the framed reader that turns a byte stream
// into a sequence of segment strings: delimiter discovery plus
// segment-terminator framing, and nothing else. It has no opinion
// about envelope or loop structure; that is parse's job.
//
// Grounded on the buffered-reader framing style of
// github.com/dshills/golevel7's parse.Scanner, simplified since X12
// segment framing (split on a single terminator byte, no MLLP-style
// block framing) is considerably simpler than HL7's.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dshills/gox12/x12"
)

const isaHeaderLen = 106

// errNoMoreSegments is not returned by Next or used elsewhere in this
// package; a clean end of stream is reported as Next returning
// ("", io.EOF).
var errNoMoreSegments = errors.New("stream: no more segments")

// ReaderOption configures a Reader.
type ReaderOption func(*config)

type config struct {
	ignoredChars map[byte]struct{}
}

func defaultConfig() config {
	return config{ignoredChars: map[byte]struct{}{}}
}

// WithIgnoredChars configures bytes that are silently stripped
// between segments — typically CR and LF when an interchange has been
// formatted with line breaks for readability.
func WithIgnoredChars(chars ...byte) ReaderOption {
	return func(c *config) {
		for _, b := range chars {
			c.ignoredChars[b] = struct{}{}
		}
	}
}

// Reader discovers an interchange's delimiters from its ISA header and
// yields the segments of the underlying byte stream one at a time,
// without terminators.
type Reader struct {
	br     *bufio.Reader
	cfg    config
	delims x12.Delimiters
	header []byte
	done   bool

	// pendingISA holds the first ISA segment's text (without its
	// terminator), consumed from the stream during header discovery
	// before Next ever runs. The first call to Next replays it so the
	// initial ISA dispatches through the same path as every later one.
	pendingISA    string
	hasPendingISA bool
}

// NewReader constructs a Reader over r, reading and validating the
// first 106 bytes as an ISA header immediately. Returns
// x12.ErrHeaderTooShort or x12.ErrNotISASegment if a non-empty stream
// does not begin with a well-formed ISA. A zero-byte stream is not an
// error: the returned Reader's Next yields io.EOF at once.
func NewReader(r io.Reader, opts ...ReaderOption) (*Reader, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	br := bufio.NewReaderSize(r, 4096)
	header := make([]byte, isaHeaderLen)
	n, err := io.ReadFull(br, header)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			if n == 0 {
				// Empty stream is not an error; the caller treats it
				// as zero interchanges.
				return &Reader{br: br, cfg: cfg, done: true}, nil
			}
			return nil, fmt.Errorf("%w: got %d bytes", x12.ErrHeaderTooShort, n)
		}
		return nil, fmt.Errorf("stream: reading ISA header: %w", err)
	}

	delims, err := x12.ParseDelimiters(header)
	if err != nil {
		return nil, err
	}

	return &Reader{
		br:            br,
		cfg:           cfg,
		delims:        delims,
		header:        header,
		pendingISA:    string(header[:isaHeaderLen-1]),
		hasPendingISA: true,
	}, nil
}

// Delimiters returns the delimiter set discovered from the first ISA
// header this Reader has seen.
func (r *Reader) Delimiters() x12.Delimiters {
	return r.delims
}

// Header returns the raw bytes of the first ISA header.
func (r *Reader) Header() []byte {
	return r.header
}

// Next returns the next segment's text, without its terminator.
// Returns io.EOF once the stream is exhausted.
func (r *Reader) Next() (string, error) {
	if r.hasPendingISA {
		r.hasPendingISA = false
		return r.pendingISA, nil
	}
	if r.done {
		return "", io.EOF
	}

	var buf []byte
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.done = true
				if len(buf) == 0 {
					return "", io.EOF
				}
				return string(buf), nil
			}
			return "", fmt.Errorf("stream: reading segment: %w", err)
		}
		if b == r.delims.Terminator {
			return string(buf), nil
		}
		if _, ignored := r.cfg.ignoredChars[b]; ignored {
			continue
		}
		buf = append(buf, b)
	}
}

// SegmentID returns the identifier portion of a raw segment string:
// everything up to the first element separator, or the whole string
// if none is present.
func SegmentID(segment string, delims x12.Delimiters) string {
	for i := 0; i < len(segment); i++ {
		if segment[i] == delims.Element {
			return segment[:i]
		}
	}
	return segment
}

// RediscoverDelimiters re-extracts a fresh Delimiters set from a
// subsequent ISA segment's raw bytes within the same stream. A single
// Reader frames every segment in the stream using the terminator
// discovered from the very first ISA; element/component/repetition
// separators may legitimately differ per-interchange and are
// re-derived here for that interchange's own parsing and
// serialization. terminator is the byte this stream frames segments
// on (isaSegment arrives from Reader.Next with it already stripped).
// See SPEC_FULL.md's note on cross-interchange delimiter
// rediscovery.
func RediscoverDelimiters(isaSegment string, terminator byte) (x12.Delimiters, error) {
	header := []byte(isaSegment)
	header = append(header, terminator)
	if len(header) < isaHeaderLen {
		return x12.Delimiters{}, fmt.Errorf("%w: got %d bytes", x12.ErrHeaderTooShort, len(header))
	}
	return x12.ParseDelimiters(header[:isaHeaderLen])
}
