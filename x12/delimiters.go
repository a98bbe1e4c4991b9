package x12

import (
	"errors"
	"fmt"
)

// Fixed byte offsets within the 106-byte ISA header where each
// delimiter lives. See ParseDelimiters.
const (
	isaMinLength        = 106
	offsetElementSep    = 3
	offsetRepetitionSep = 82
	offsetComponentSep  = 104
	offsetSegmentTerm   = 105
)

// Sentinel errors for delimiter discovery.
var (
	ErrHeaderTooShort    = errors.New("x12: ISA header shorter than 106 bytes")
	ErrNotISASegment     = errors.New("x12: input does not begin with ISA")
	ErrDelimitersNotUnique = errors.New("x12: delimiter bytes are not pairwise distinct")
)

// Delimiters holds the four single-byte separators discovered from an
// interchange's ISA header.
type Delimiters struct {
	Element    byte
	Component  byte
	Repetition byte
	Terminator byte
}

// DefaultDelimiters returns the conventional HIPAA delimiter set:
// '*' element, ':' component, '^' repetition, '~' terminator.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Element:    '*',
		Component:  ':',
		Repetition: '^',
		Terminator: '~',
	}
}

// ParseDelimiters extracts the delimiter set from the first 106 bytes
// of an interchange. header must begin with "ISA". The repetition
// separator at byte 82 is a 5010-only convention; in 4010 interchanges
// that byte is typically a space, which is preserved verbatim (callers
// that only process 4010 documents may ignore Repetition).
func ParseDelimiters(header []byte) (Delimiters, error) {
	if len(header) < isaMinLength {
		return Delimiters{}, fmt.Errorf("%w: got %d bytes", ErrHeaderTooShort, len(header))
	}
	if string(header[0:3]) != "ISA" {
		return Delimiters{}, fmt.Errorf("%w: got %q", ErrNotISASegment, string(header[0:3]))
	}

	d := Delimiters{
		Element:    header[offsetElementSep],
		Repetition: header[offsetRepetitionSep],
		Component:  header[offsetComponentSep],
		Terminator: header[offsetSegmentTerm],
	}
	return d, nil
}

// Distinct reports whether the element, component, and terminator
// delimiters (the three that matter for tokenization) are pairwise
// distinct single bytes. Repetition is excluded since 4010 documents
// legitimately leave it blank or equal to another byte.
func (d Delimiters) Distinct() bool {
	return d.Element != d.Component &&
		d.Element != d.Terminator &&
		d.Component != d.Terminator
}

// Equal reports whether two delimiter sets describe the same wire
// encoding.
func (d Delimiters) Equal(other Delimiters) bool {
	return d == other
}

// String renders the delimiters for diagnostics, e.g. "*:^~".
func (d Delimiters) String() string {
	return string([]byte{d.Element, d.Component, d.Repetition, d.Terminator})
}
