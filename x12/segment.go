package x12

import (
	"strconv"
	"strings"
)

// Element is a single positional field within a segment. The segment
// identifier is position 0 and is not stored as an Element, so the
// first data element is Elements[0] in the raw slice but El(1) in the
// 1-indexed accessor below.
type Element struct {
	// ID is the element's position, e.g. "01", "02", matching the
	// X12 data-element numbering convention used in transaction
	// specifications and by github.com/tmc/x12-style decoders.
	ID string

	// Value is the raw, unescaped element text. Composite elements
	// are not pre-split; use Components to access them lazily.
	Value string
}

// Components splits a composite element on the component separator.
// A non-composite element returns a single-element slice equal to
// Value.
func (e Element) Components(delims Delimiters) []string {
	if !strings.ContainsRune(e.Value, rune(delims.Component)) {
		return []string{e.Value}
	}
	return strings.Split(e.Value, string(delims.Component))
}

// Segment is an ordered, 1-indexed list of elements, identifier
// first. Segments retain their original element strings for
// round-tripping; composite decomposition happens lazily via
// Element.Components.
type Segment struct {
	// ID is the segment identifier, e.g. "ISA", "HL", "CLM".
	ID string

	// Elements holds element 1 onward; the identifier is not
	// repeated here.
	Elements []Element

	// raw is the original segment text (sans terminator) as passed to
	// ParseSegment. Bytes does not read it; it rebuilds the text from
	// ID and Elements.
	raw string
}

// El returns the 1-indexed element at position n, or an empty Element
// if n is out of range. Segment identifier is position 0 and is not
// reachable through El; use ID instead.
func (s Segment) El(n int) Element {
	if n < 1 || n > len(s.Elements) {
		return Element{}
	}
	return s.Elements[n-1]
}

// Val is shorthand for El(n).Value.
func (s Segment) Val(n int) string {
	return s.El(n).Value
}

// ParseSegment splits raw segment text (without its terminator) into
// an identified, element-indexed Segment.
func ParseSegment(raw string, delims Delimiters) Segment {
	parts := strings.Split(raw, string(delims.Element))
	seg := Segment{raw: raw}
	if len(parts) == 0 {
		return seg
	}
	seg.ID = parts[0]
	seg.Elements = make([]Element, 0, len(parts)-1)
	for i, v := range parts[1:] {
		seg.Elements = append(seg.Elements, Element{
			ID:    elementNumber(i + 1),
			Value: v,
		})
	}
	return seg
}

// elementNumber renders a 1-based element index as a two-digit X12
// reference designator suffix, e.g. 1 -> "01", 12 -> "12".
func elementNumber(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Bytes re-encodes the segment (without its terminator) using the
// given delimiters. If the segment's elements have not been mutated
// since ParseSegment produced it and delims matches the delimiters it
// was parsed with, the result is byte-identical to the original raw
// text.
func (s Segment) Bytes(delims Delimiters) []byte {
	var b strings.Builder
	b.WriteString(s.ID)
	for _, el := range s.Elements {
		b.WriteByte(delims.Element)
		b.WriteString(el.Value)
	}
	return []byte(b.String())
}

// String returns the default-delimiter rendering of the segment.
func (s Segment) String() string {
	return string(s.Bytes(DefaultDelimiters()))
}
