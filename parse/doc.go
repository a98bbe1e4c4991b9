// Package parse turns a framed byte stream into a list of interchange
// container trees.
//
// # Basic usage
//
//	p := parse.New()
//	interchanges, err := p.ParseString(rawX12)
//	if err != nil {
//	    log.Fatal("parse error:", err)
//	}
//
// # Strict vs lenient mode
//
// Strict mode (the default) records an error for each structural
// anomaly, keeps parsing, and once the stream is exhausted returns a
// single *x12.AggregateError describing everything encountered.
// Lenient mode instead recovers: misplaced segments are forced onto
// the last known container and reported through the warning channel.
//
//	var warnings []x12.Warning
//	p := parse.New(
//	    parse.WithStrictMode(false),
//	    parse.WithWarningFunc(func(w x12.Warning) { warnings = append(warnings, w) }),
//	)
//
// # Specifications
//
// The parser consults a spec.Finder once per ST to resolve which
// loops and segments a transaction set allows. WithSpecificationFinder
// overrides the default embedded 837 specification with a file-backed
// or composite one.
package parse
