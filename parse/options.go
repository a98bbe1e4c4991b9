package parse

import (
	"io"

	"github.com/dshills/gox12/spec"
	"github.com/dshills/gox12/x12"
	"github.com/sirupsen/logrus"
)

// ParserOption configures a Parser at construction time, following the
// functional-options convention this module inherited from
// github.com/dshills/golevel7/parse.ParserOption.
type ParserOption func(*Parser)

// WithStrictMode toggles strict syntax-error handling. When strict is
// true (the default), structural anomalies raise errors and abandon
// the offending segment. When false, an HL02 naming an unknown parent
// and a detail segment no container accepts are downgraded to
// warnings and the parser recovers by forcing placement; every other
// structural anomaly is still raised as an error.
func WithStrictMode(strict bool) ParserOption {
	return func(p *Parser) { p.strict = strict }
}

// WithIgnoredChars configures bytes silently stripped between
// segments, typically CR and LF for interchanges formatted with line
// breaks for human readability.
func WithIgnoredChars(chars ...byte) ParserOption {
	return func(p *Parser) { p.ignoredChars = append(p.ignoredChars, chars...) }
}

// WithSpecificationFinder injects the Finder consulted once per ST. If
// not set, New installs an EmbeddedFinder pre-registered with
// spec.Embedded837() under functional group code "HC".
func WithSpecificationFinder(finder spec.Finder) ParserOption {
	return func(p *Parser) { p.finder = finder }
}

// WithWarningFunc registers the callback invoked synchronously for
// every lenient-mode recovery. The spec's warning channel supports a
// single subscriber; calling WithWarningFunc again replaces the
// previous one.
func WithWarningFunc(fn x12.WarningFunc) ParserOption {
	return func(p *Parser) { p.warnFn = fn }
}

// WithLogger injects a structured logger. A nil logger (the default)
// is replaced with a discard logger at construction.
func WithLogger(log *logrus.Entry) ParserOption {
	return func(p *Parser) { p.log = log }
}

func defaultFinder() spec.Finder {
	f := spec.NewEmbeddedFinder()
	f.Register("HC", spec.Embedded837())
	return f
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
