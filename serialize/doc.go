// Package serialize converts a parsed interchange tree back to its
// wire-format bytes.
//
// # Basic Usage
//
// Serialize an interchange to bytes:
//
//	ser := serialize.New()
//	data, err := ser.Serialize(interchange)
//	if err != nil {
//	    log.Fatal("serialize error:", err)
//	}
//
// Serialize directly to a writer:
//
//	ctx := context.Background()
//	err := ser.SerializeToWriter(ctx, conn, interchange)
//
// # Round Trip
//
// Parsing and re-serializing an interchange with no modification
// reproduces its original bytes, with two caveats: re-ordering of
// bytes within an element is never performed, and a lenient-mode
// parse that dropped or force-attached a segment changes what gets
// re-emitted accordingly.
//
//	p := parse.New()
//	interchanges, err := p.ParseString(raw)
//	ser := serialize.New()
//	out, err := ser.Serialize(interchanges[0])
//	// out == []byte(raw), assuming a strict, warning-free parse
//
// # Serializer Options
//
//	ser := serialize.New(serialize.WithLineEnding("\n"))
//
// # Streaming
//
// Writer wraps an io.Writer with buffering and is safe for
// concurrent use:
//
//	w := serialize.NewWriter(conn)
//	defer w.Close()
//	if err := w.Write(interchange); err != nil {
//	    log.Println("write error:", err)
//	}
package serialize
