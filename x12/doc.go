// Package x12 provides the value types shared by every other package in
// this module: delimiters, segments, and elements.
//
// # Delimiters
//
// An ANSI X12 interchange is self-describing: the four separator bytes
// it uses are encoded at fixed offsets within its own 106-byte ISA
// header.
//
//	header := []byte("ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *210101*1253*^*00501*000000001*0*P*:~")
//	delims, err := x12.ParseDelimiters(header)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(delims) // "*:^~"
//
// # Segments
//
// A Segment is the smallest framed unit of an interchange: an
// identifier followed by an ordered list of Elements.
//
//	seg := x12.ParseSegment("CLM*1234*500***11:B:1*Y*A*Y*Y", delims)
//	fmt.Println(seg.ID)      // "CLM"
//	fmt.Println(seg.Val(1))  // "1234"
//	fmt.Println(seg.El(5).Components(delims)) // ["11", "B", "1"]
//
// Composite elements are not split eagerly; call Element.Components
// only when a caller needs sub-fields.
package x12
